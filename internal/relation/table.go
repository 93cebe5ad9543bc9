package relation

import "sort"

// Table is a duplicate-free collection of rows. The underlying storage is
// an insertion-ordered slice, but callers must not depend on row order:
// a Table is a set, and Equal compares tables as sets.
// Operators never mutate a Table; every transformation allocates a new one.
type Table struct {
	rows []Row
}

// NewTable builds a Table from the given rows, collapsing structural
// duplicates. The first occurrence of a row wins, which keeps the
// internal order stable for debugging.
func NewTable(rows ...Row) Table {
	return Deduplicate(rows)
}

// Deduplicate collapses structurally equal rows into a Table.
// This is the single mechanism behind the "no duplicate rows in output"
// guarantee of every operator, and it is idempotent.
func Deduplicate(rows []Row) Table {
	seen := make(map[string]struct{}, len(rows))
	unique := make([]Row, 0, len(rows))
	for _, row := range rows {
		if _, found := seen[row.Key()]; found {
			continue
		}
		seen[row.Key()] = struct{}{}
		unique = append(unique, row)
	}
	return Table{rows: unique}
}

// Rows returns the table's rows. The slice is a copy; the rows themselves
// are immutable.
func (t Table) Rows() []Row {
	rows := make([]Row, len(t.rows))
	copy(rows, t.rows)
	return rows
}

// Size returns the number of rows in the table.
func (t Table) Size() int {
	return len(t.rows)
}

// Empty reports whether the table has no rows.
func (t Table) Empty() bool {
	return len(t.rows) == 0
}

// Columns returns the union of column names across all rows, sorted.
// An empty table has no well-defined schema; by choice it yields an
// empty slice rather than an error.
func (t Table) Columns() []string {
	set := make(map[string]struct{})
	for _, row := range t.rows {
		for _, column := range row.Columns() {
			set[column] = struct{}{}
		}
	}
	columns := make([]string, 0, len(set))
	for column := range set {
		columns = append(columns, column)
	}
	sort.Strings(columns)
	return columns
}

// Contains reports whether a structurally equal row is present.
func (t Table) Contains(row Row) bool {
	for _, candidate := range t.rows {
		if candidate.Equal(row) {
			return true
		}
	}
	return false
}

// Prefix returns a new Table with every row's columns rewritten to
// "name.column".
func (t Table) Prefix(name string) Table {
	prefixed := make([]Row, 0, len(t.rows))
	for _, row := range t.rows {
		prefixed = append(prefixed, row.Prefix(name))
	}
	return Deduplicate(prefixed)
}

// Equal reports whether both tables contain the same set of rows,
// regardless of internal order.
func (t Table) Equal(other Table) bool {
	if len(t.rows) != len(other.rows) {
		return false
	}
	keys := make(map[string]struct{}, len(other.rows))
	for _, row := range other.rows {
		keys[row.Key()] = struct{}{}
	}
	for _, row := range t.rows {
		if _, found := keys[row.Key()]; !found {
			return false
		}
	}
	return true
}
