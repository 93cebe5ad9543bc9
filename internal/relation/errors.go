package relation

import (
	"fmt"
	"strings"
)

// ColumnNotFoundError reports that an operation required a column some
// row does not have.
type ColumnNotFoundError struct {
	Operation string // operator that failed, e.g. "project"
	Column    string // missing column name
}

func (e *ColumnNotFoundError) Error() string {
	return fmt.Sprintf("%s: column %q not found in row", e.Operation, e.Column)
}

func NewColumnNotFound(operation, column string) *ColumnNotFoundError {
	return &ColumnNotFoundError{
		Operation: operation,
		Column:    column,
	}
}

// SchemaMismatchError reports that an operation requiring identical
// schemas was given tables with different column sets.
type SchemaMismatchError struct {
	Operation string
	Left      []string // left table's columns, sorted
	Right     []string // right table's columns, sorted
}

func (e *SchemaMismatchError) Error() string {
	return fmt.Sprintf("%s: schema mismatch - left columns [%s], right columns [%s]",
		e.Operation,
		strings.Join(e.Left, ", "),
		strings.Join(e.Right, ", "),
	)
}

func NewSchemaMismatch(operation string, left, right []string) *SchemaMismatchError {
	return &SchemaMismatchError{
		Operation: operation,
		Left:      left,
		Right:     right,
	}
}
