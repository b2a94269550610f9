// Package models provides the tabular data model for csvio.
// A Record is an ordered sequence of field strings and a Table is an
// ordered sequence of Records. The model is storage only: delimiter
// handling lives in pkg/csv and structural judgments are computed by
// the status analyzer, never enforced here. In particular, records in
// a Table are not required to share a field count.
package models

// Record is one row of tabular data: an ordered sequence of fields.
// Fields may be empty strings. Insertion order is column order.
type Record []string

// NewRecord creates a Record from the given fields. The fields are
// copied so the Record never shares storage with the caller's slice.
func NewRecord(fields ...string) Record {
	r := make(Record, len(fields))
	copy(r, fields)
	return r
}

// NumFields returns the number of fields in the record.
func (r Record) NumFields() int {
	return len(r)
}

// Clone returns a copy of the record with independent storage.
func (r Record) Clone() Record {
	if r == nil {
		return nil
	}
	c := make(Record, len(r))
	copy(c, r)
	return c
}

// Equal reports whether two records have the same fields in the same order.
func (r Record) Equal(other Record) bool {
	if len(r) != len(other) {
		return false
	}
	for i := range r {
		if r[i] != other[i] {
			return false
		}
	}
	return true
}

// Table is an ordered sequence of Records. Row order is insertion
// order. A Table exclusively owns its records; use Clone before
// handing rows to code that may mutate them.
type Table struct {
	records []Record
}

// NewTable creates an empty table. An optional capacity hint avoids
// regrowth when the caller knows the row count up front.
func NewTable(capacity ...int) *Table {
	c := 0
	if len(capacity) > 0 && capacity[0] > 0 {
		c = capacity[0]
	}
	return &Table{records: make([]Record, 0, c)}
}

// Append adds a record to the end of the table.
func (t *Table) Append(r Record) {
	t.records = append(t.records, r)
}

// NumRecords returns the number of records in the table.
func (t *Table) NumRecords() int {
	if t == nil {
		return 0
	}
	return len(t.records)
}

// Record returns the record at index i. It panics if i is out of
// range, matching slice indexing semantics.
func (t *Table) Record(i int) Record {
	return t.records[i]
}

// Records returns the underlying record slice in row order. The slice
// is shared with the table; callers must not grow it.
func (t *Table) Records() []Record {
	if t == nil {
		return nil
	}
	return t.records
}

// Clone returns a deep copy of the table. No storage is shared with
// the original.
func (t *Table) Clone() *Table {
	if t == nil {
		return nil
	}
	c := &Table{records: make([]Record, len(t.records))}
	for i, r := range t.records {
		c.records[i] = r.Clone()
	}
	return c
}

// Equal reports whether two tables contain the same records in the
// same order, field for field.
func (t *Table) Equal(other *Table) bool {
	if t.NumRecords() != other.NumRecords() {
		return false
	}
	for i := range t.records {
		if !t.records[i].Equal(other.records[i]) {
			return false
		}
	}
	return true
}

// Reset clears the table for reuse without deallocating the backing
// array.
func (t *Table) Reset() {
	t.records = t.records[:0]
}
