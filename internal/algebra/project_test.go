package algebra_test

import (
	"errors"
	"testing"

	"github.com/cosmic-cortex/relational-databases-from-scratch/internal/algebra"
	"github.com/cosmic-cortex/relational-databases-from-scratch/internal/algebra/testutil"
	"github.com/cosmic-cortex/relational-databases-from-scratch/internal/relation"
)

// TestProject_KeepsOnlyRequestedColumns projects employees down to id and name
func TestProject_KeepsOnlyRequestedColumns(t *testing.T) {
	employees := testutil.CreateEmployeesTable()

	result, err := algebra.Project(employees, []string{"id", "name"})
	testutil.AssertNoError(t, err, "project id, name")

	testutil.AssertRowCount(t, result, 5, "project id, name")
	for _, row := range result.Rows() {
		testutil.AssertColumnExists(t, row, "id", "projected row")
		testutil.AssertColumnExists(t, row, "name", "projected row")
		testutil.AssertColumnNotExists(t, row, "salary", "projected row")
		testutil.AssertColumnNotExists(t, row, "position", "projected row")
	}
}

// TestProject_ReducesCardinality is the defining behavior of projection:
// rows that agree on the projected columns collapse into one
func TestProject_ReducesCardinality(t *testing.T) {
	table := relation.NewTable(
		relation.NewRow(map[string]interface{}{"a": int64(1), "b": int64(1)}),
		relation.NewRow(map[string]interface{}{"a": int64(1), "b": int64(2)}),
	)

	result, err := algebra.Project(table, []string{"a"})
	testutil.AssertNoError(t, err, "project a")

	expected := relation.NewTable(relation.NewRow(map[string]interface{}{"a": int64(1)}))
	testutil.AssertTablesEqual(t, result, expected, "project collapses agreeing rows")
}

// TestProject_SharedPositionCollapses projects the sample employees down
// to position, collapsing the two Sales rows
func TestProject_SharedPositionCollapses(t *testing.T) {
	employees := testutil.CreateEmployeesTable()

	result, err := algebra.Project(employees, []string{"position"})
	testutil.AssertNoError(t, err, "project position")

	// 5 employees but only 4 distinct positions
	testutil.AssertRowCount(t, result, 4, "project position")
}

// TestProject_MissingColumn fails fast with a descriptive error
func TestProject_MissingColumn(t *testing.T) {
	employees := testutil.CreateEmployeesTable()

	_, err := algebra.Project(employees, []string{"id", "department"})
	testutil.AssertError(t, err, "project on missing column")

	var notFound *relation.ColumnNotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected ColumnNotFoundError, got %T: %v", err, err)
	}
	if notFound.Column != "department" {
		t.Errorf("expected error to name column 'department', got %q", notFound.Column)
	}
}

// TestProject_EmptyTable projects nothing and errors on nothing
func TestProject_EmptyTable(t *testing.T) {
	result, err := algebra.Project(relation.NewTable(), []string{"id"})
	testutil.AssertNoError(t, err, "project empty table")
	testutil.AssertRowCount(t, result, 0, "project empty table")
}
