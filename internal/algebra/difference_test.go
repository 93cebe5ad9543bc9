package algebra_test

import (
	"errors"
	"testing"

	"github.com/cosmic-cortex/relational-databases-from-scratch/internal/algebra"
	"github.com/cosmic-cortex/relational-databases-from-scratch/internal/algebra/testutil"
	"github.com/cosmic-cortex/relational-databases-from-scratch/internal/relation"
)

func numbered(values ...int64) relation.Table {
	rows := make([]relation.Row, 0, len(values))
	for _, value := range values {
		rows = append(rows, relation.NewRow(map[string]interface{}{"n": value}))
	}
	return relation.NewTable(rows...)
}

// TestDifference_Basic keeps the left rows absent from the right
func TestDifference_Basic(t *testing.T) {
	left := numbered(1, 2, 3, 4)
	right := numbered(2, 4)

	result, err := algebra.Difference(left, right)
	testutil.AssertNoError(t, err, "difference")

	testutil.AssertTablesEqual(t, result, numbered(1, 3), "difference")
}

// TestDifference_SchemaMismatch errors instead of returning wrong results
func TestDifference_SchemaMismatch(t *testing.T) {
	employees := testutil.CreateEmployeesTable()
	tasks := testutil.CreateTasksTable()

	_, err := algebra.Difference(employees, tasks)
	testutil.AssertError(t, err, "difference across schemas")

	var mismatch *relation.SchemaMismatchError
	if !errors.As(err, &mismatch) {
		t.Fatalf("expected SchemaMismatchError, got %T: %v", err, err)
	}
}

// TestDifference_EmptyOperands defines the degenerate cases: an empty
// table has no schema to conflict
func TestDifference_EmptyOperands(t *testing.T) {
	left := numbered(1, 2)

	result, err := algebra.Difference(left, relation.NewTable())
	testutil.AssertNoError(t, err, "difference with empty right")
	testutil.AssertTablesEqual(t, result, left, "difference with empty right")

	result, err = algebra.Difference(relation.NewTable(), left)
	testutil.AssertNoError(t, err, "difference with empty left")
	testutil.AssertRowCount(t, result, 0, "difference with empty left")
}

// TestDifference_DisjointFromRight checks difference(L, R) shares no row with R
func TestDifference_DisjointFromRight(t *testing.T) {
	left := numbered(1, 2, 3, 4, 5)
	right := numbered(3, 4, 5, 6)

	result, err := algebra.Difference(left, right)
	testutil.AssertNoError(t, err, "difference")

	overlap, err := algebra.Intersection(result, right)
	testutil.AssertNoError(t, err, "intersection of difference with right")
	testutil.AssertRowCount(t, overlap, 0, "difference(L, R) disjoint from R")
}

// TestIntersection_DerivationIdentity checks the literal derivation
// intersection(L, R) = difference(L, difference(L, R))
func TestIntersection_DerivationIdentity(t *testing.T) {
	left := numbered(1, 2, 3, 4)
	right := numbered(3, 4, 5)

	intersected, err := algebra.Intersection(left, right)
	testutil.AssertNoError(t, err, "intersection")

	absent, err := algebra.Difference(left, right)
	testutil.AssertNoError(t, err, "inner difference")
	derived, err := algebra.Difference(left, absent)
	testutil.AssertNoError(t, err, "outer difference")

	testutil.AssertTablesEqual(t, intersected, derived, "derivation identity")
	testutil.AssertTablesEqual(t, intersected, numbered(3, 4), "intersection value")
}

// TestIntersection_SchemaMismatch propagates the difference error
func TestIntersection_SchemaMismatch(t *testing.T) {
	employees := testutil.CreateEmployeesTable()
	tasks := testutil.CreateTasksTable()

	_, err := algebra.Intersection(employees, tasks)
	testutil.AssertError(t, err, "intersection across schemas")
}

// TestPartitionRoundTrip checks union(difference(L, R), intersection(L, R)) = L
func TestPartitionRoundTrip(t *testing.T) {
	left := numbered(1, 2, 3, 4, 5)
	right := numbered(4, 5, 6, 7)

	difference, err := algebra.Difference(left, right)
	testutil.AssertNoError(t, err, "difference")
	intersection, err := algebra.Intersection(left, right)
	testutil.AssertNoError(t, err, "intersection")

	testutil.AssertTablesEqual(t, algebra.Union(difference, intersection), left,
		"partition round trip")
}
