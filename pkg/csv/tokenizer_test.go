package csv

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ajitpratap0/csvio/pkg/models"
)

func TestTokenizeRecord(t *testing.T) {
	tests := []struct {
		name      string
		chunk     string
		delimiter string
		want      models.Record
	}{
		{"simple split", "a,b,c", ",", models.Record{"a", "b", "c"}},
		{"single field", "solo", ",", models.Record{"solo"}},
		{"empty chunk yields one empty field", "", ",", models.Record{""}},
		{"consecutive delimiters keep empty fields", "a,,c", ",", models.Record{"a", "", "c"}},
		{"leading delimiter", ",a", ",", models.Record{"", "a"}},
		{"trailing delimiter", "a,", ",", models.Record{"a", ""}},
		{"only delimiters", ",,", ",", models.Record{"", "", ""}},
		{"no whitespace trimming", " a , b ", ",", models.Record{" a ", " b "}},
		{"tab delimiter", "a\tb", "\t", models.Record{"a", "b"}},
		{"multi-character delimiter", "a||b||c", "||", models.Record{"a", "b", "c"}},
		{"non-overlapping occurrences", "a|||b", "||", models.Record{"a", "|b"}},
		{"delimiter absent", "a;b", ",", models.Record{"a;b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tokenizeRecord(tt.chunk, tt.delimiter)
			assert.Equal(t, tt.want, got)
		})
	}
}
