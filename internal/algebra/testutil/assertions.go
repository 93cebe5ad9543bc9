package testutil

import (
	"testing"

	"github.com/cosmic-cortex/relational-databases-from-scratch/internal/relation"
)

// AssertRowCount checks that the table has the expected number of rows
func AssertRowCount(t *testing.T, table relation.Table, expected int, context string) {
	t.Helper()
	if table.Size() != expected {
		t.Errorf("%s: expected %d rows, got %d", context, expected, table.Size())
	}
}

// AssertTablesEqual checks that both tables hold the same set of rows
func AssertTablesEqual(t *testing.T, actual, expected relation.Table, context string) {
	t.Helper()
	if !actual.Equal(expected) {
		t.Errorf("%s: tables differ\n  actual:   %v\n  expected: %v", context, actual.Rows(), expected.Rows())
	}
}

// AssertContainsRow checks that the table holds a structurally equal row
func AssertContainsRow(t *testing.T, table relation.Table, row relation.Row, context string) {
	t.Helper()
	if !table.Contains(row) {
		t.Errorf("%s: expected table to contain row %v", context, row)
	}
}

// AssertColumnExists checks that a column exists in a row
func AssertColumnExists(t *testing.T, row relation.Row, column, context string) {
	t.Helper()
	if _, exists := row.Get(column); !exists {
		t.Errorf("%s: expected column '%s' to exist", context, column)
	}
}

// AssertColumnNotExists checks that a column does not exist in a row
func AssertColumnNotExists(t *testing.T, row relation.Row, column, context string) {
	t.Helper()
	if _, exists := row.Get(column); exists {
		t.Errorf("%s: did not expect column '%s' to exist", context, column)
	}
}

// AssertNullValue checks that a column exists and holds an explicit NULL
func AssertNullValue(t *testing.T, row relation.Row, column, context string) {
	t.Helper()
	value, exists := row.Get(column)
	if !exists {
		t.Errorf("%s: expected column '%s' to exist with NULL value", context, column)
		return
	}
	if value != nil {
		t.Errorf("%s: expected NULL for column '%s', got: %v", context, column, value)
	}
}

// AssertNoError checks that an error is nil
func AssertNoError(t *testing.T, err error, context string) {
	t.Helper()
	if err != nil {
		t.Errorf("%s: expected no error, got: %v", context, err)
	}
}

// AssertError checks that an error is not nil
func AssertError(t *testing.T, err error, context string) {
	t.Helper()
	if err == nil {
		t.Errorf("%s: expected an error, got nil", context)
	}
}
