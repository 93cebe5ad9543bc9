// Package relation defines the value model of the engine: immutable rows
// and duplicate-free tables that the algebra operators transform.
package relation

import (
	"fmt"
	"sort"
	"strings"
)

// Row represents a single record of named scalar values.
// Rows are write-once: NewRow copies the caller's map and no mutating
// method exists, so a Row can safely serve as a set member. Equality is
// structural and order-independent (see Key).
type Row struct {
	data map[string]interface{}
	key  string
}

// NewRow creates a Row from the given column-to-value mapping.
// The map is copied, so later changes by the caller do not reach the Row.
// Values may be nil to represent NULL.
func NewRow(data map[string]interface{}) Row {
	copied := make(map[string]interface{}, len(data))
	for column, value := range data {
		copied[column] = value
	}
	return Row{
		data: copied,
		key:  structuralKey(copied),
	}
}

// structuralKey renders the row as a canonical string fingerprint.
// Columns are sorted so that two rows with the same content always
// produce the same key, and values carry their dynamic type so that
// int64(1) and "1" stay distinct.
func structuralKey(data map[string]interface{}) string {
	columns := make([]string, 0, len(data))
	for column := range data {
		columns = append(columns, column)
	}
	sort.Strings(columns)

	var b strings.Builder
	for _, column := range columns {
		b.WriteString(column)
		b.WriteByte(0x00)
		fmt.Fprintf(&b, "%T=%#v", data[column], data[column])
		b.WriteByte(0x1f)
	}
	return b.String()
}

// Get retrieves the value stored under the given column name.
// The second return value reports whether the column exists; a stored
// nil (NULL) returns (nil, true).
func (r Row) Get(column string) (interface{}, bool) {
	value, exists := r.data[column]
	return value, exists
}

// Columns returns the row's column names in sorted order.
func (r Row) Columns() []string {
	columns := make([]string, 0, len(r.data))
	for column := range r.data {
		columns = append(columns, column)
	}
	sort.Strings(columns)
	return columns
}

// Len returns the number of columns in the row.
func (r Row) Len() int {
	return len(r.data)
}

// Key returns the canonical structural fingerprint of the row.
// Two rows are the same set member exactly when their keys are equal.
func (r Row) Key() string {
	return r.key
}

// Equal reports whether both rows hold the same columns and values.
func (r Row) Equal(other Row) bool {
	return r.key == other.key
}

// Prefix returns a new Row with every column rewritten to "prefix.column".
// Used to disambiguate columns before combining two tables.
func (r Row) Prefix(prefix string) Row {
	prefixed := make(map[string]interface{}, len(r.data))
	for column, value := range r.data {
		prefixed[fmt.Sprintf("%s.%s", prefix, column)] = value
	}
	return NewRow(prefixed)
}

// Merge returns a new Row holding the columns of both rows.
// On a column collision the other row's value wins.
func (r Row) Merge(other Row) Row {
	merged := make(map[string]interface{}, len(r.data)+len(other.data))
	for column, value := range r.data {
		merged[column] = value
	}
	for column, value := range other.data {
		merged[column] = value
	}
	return NewRow(merged)
}

// ToMap returns a copy of the row's contents for callers that need a
// plain map. Mutating the returned map does not affect the Row.
func (r Row) ToMap() map[string]interface{} {
	copied := make(map[string]interface{}, len(r.data))
	for column, value := range r.data {
		copied[column] = value
	}
	return copied
}

// String returns a deterministic representation for debugging.
func (r Row) String() string {
	var b strings.Builder
	b.WriteString("Row{")
	for i, column := range r.Columns() {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%s: %v", column, r.data[column])
	}
	b.WriteString("}")
	return b.String()
}
