// Package csvio provides a delimited-text (CSV) codec: it converts
// between a textual representation using configurable field and record
// delimiter strings and an in-memory tabular structure, and computes
// structural validity metrics over that structure.
//
// # Architecture
//
// The module is organized into focused packages:
//
//   - pkg/models: the Record/Table tabular model. Pure storage; rows
//     are not required to share a field count.
//   - pkg/csv: the codec core. RecordReader tokenizes one record at a
//     time from a stream, Parser assembles whole tables, encodes them
//     back to text, and derives Status snapshots.
//   - pkg/config: delimiter configuration with validation and YAML
//     load/save.
//   - pkg/errors: structured errors distinguishing file-open from
//     file-write failures.
//   - pkg/logger: zap-based structured logging.
//
// # Quick Start
//
// Read a CSV file and check its structure:
//
//	import "github.com/ajitpratap0/csvio/pkg/csv"
//
//	p := csv.NewParser()
//	table, err := p.ReadEntireFile("data.csv")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	status := p.GetStatus(table)
//	fmt.Println(status.NumRecords.Value)
//
// Malformed content is never an error: any text decodes into some
// Table, and structural judgments (well-formedness, uniform field
// counts, blank fields, numeral purity) are reported as data by
// GetStatus.
package csvio
