package csv

import (
	"strings"

	"github.com/ajitpratap0/csvio/pkg/models"
)

// tokenizeRecord converts one raw chunk of text into a Record by
// splitting it on every non-overlapping occurrence of the field
// delimiter. Empty fields are preserved: consecutive delimiters, or a
// delimiter at the start or end of the chunk, yield empty-string
// fields. No whitespace trimming is performed.
//
// An empty chunk yields a Record containing a single empty field,
// mirroring the split semantics ("" splits into [""]).
func tokenizeRecord(chunk, fieldDelimiter string) models.Record {
	parts := strings.Split(chunk, fieldDelimiter)
	return models.NewRecord(parts...)
}
