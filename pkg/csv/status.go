package csv

import (
	"github.com/ajitpratap0/csvio/pkg/models"
)

// OptionalBool is a bool measurement that may be absent. Valid
// reports whether Value has been computed; absent is distinct from
// false.
type OptionalBool struct {
	Value bool `json:"value"`
	Valid bool `json:"valid"`
}

// OptionalInt is an int measurement that may be absent.
type OptionalInt struct {
	Value int  `json:"value"`
	Valid bool `json:"valid"`
}

func someBool(v bool) OptionalBool { return OptionalBool{Value: v, Valid: true} }
func someInt(v int) OptionalInt    { return OptionalInt{Value: v, Valid: true} }

// Status is an immutable snapshot of a Table's structural health,
// computed in one pass by GetStatus. Each measurement is independently
// optional: an unset measurement means "not computed / not
// applicable", never "false".
type Status struct {
	// IsWellformed is true iff all records share one field count and
	// the table has at least one record.
	IsWellformed OptionalBool `json:"is_wellformed"`

	// AllRecordsHaveEqualNumFields is true iff every record has the
	// same field count. Vacuously true for tables with zero or one
	// records.
	AllRecordsHaveEqualNumFields OptionalBool `json:"all_records_have_equal_num_fields"`

	// HasNoBlankFields is true iff no field equals the empty string.
	// A field consisting solely of whitespace counts as non-blank.
	HasNoBlankFields OptionalBool `json:"has_no_blank_fields"`

	// NumRecords is the number of records in the table.
	NumRecords OptionalInt `json:"num_records"`

	// NumFields is the common field count, set only when
	// AllRecordsHaveEqualNumFields is true.
	NumFields OptionalInt `json:"num_fields"`

	// AllFieldsNumeral is true iff every field matches the numeral
	// grammar (signed decimal, signed exponential, or hexadecimal).
	// A table with zero fields in total is vacuously numeral.
	AllFieldsNumeral OptionalBool `json:"all_fields_numeral"`
}

// GetStatus walks the table once and derives its structural metrics.
// It never fails and never mutates the table; for any table, including
// an empty one, it returns a Status whose measurements are either
// populated or deliberately unset.
func (p *Parser) GetStatus(table *models.Table) Status {
	var status Status

	numRecords := table.NumRecords()
	status.NumRecords = someInt(numRecords)

	equalNumFields := true
	noBlank := true
	allNumeral := true
	commonFields := 0

	for i, record := range table.Records() {
		if i == 0 {
			commonFields = record.NumFields()
		} else if record.NumFields() != commonFields {
			equalNumFields = false
		}

		for _, field := range record {
			if field == "" {
				noBlank = false
			}
			if !isNumeral(field) {
				allNumeral = false
			}
		}
	}

	status.AllRecordsHaveEqualNumFields = someBool(equalNumFields)
	// NumFields is set exactly when the field counts agree; for an
	// empty table the vacuous common count is zero.
	if equalNumFields {
		status.NumFields = someInt(commonFields)
	}
	status.HasNoBlankFields = someBool(noBlank)
	status.AllFieldsNumeral = someBool(allNumeral)
	status.IsWellformed = someBool(equalNumFields && numRecords >= 1)

	return status
}
