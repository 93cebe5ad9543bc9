package algebra

import (
	"log/slog"

	"github.com/cosmic-cortex/relational-databases-from-scratch/internal/relation"
)

// Difference returns the rows of left that are not structurally present
// in right. Both tables must share the same schema; mismatched schemas
// yield a SchemaMismatchError instead of a silently wrong result. An
// empty table has no schema to conflict, so it never triggers the check.
func Difference(left, right relation.Table) (relation.Table, error) {
	if err := requireSameSchema("difference", left, right); err != nil {
		return relation.Table{}, err
	}

	rightKeys := make(map[string]struct{}, right.Size())
	for _, row := range right.Rows() {
		rightKeys[row.Key()] = struct{}{}
	}

	kept := make([]relation.Row, 0, left.Size())
	for _, row := range left.Rows() {
		if _, found := rightKeys[row.Key()]; !found {
			kept = append(kept, row)
		}
	}

	result := relation.Deduplicate(kept)
	slog.Debug("difference completed",
		slog.Int("left_rows", left.Size()),
		slog.Int("right_rows", right.Size()),
		slog.Int("result_rows", result.Size()),
	)

	return result, nil
}

// Intersection returns the rows present in both tables. It is derived,
// not primitive: intersection(L, R) = difference(L, difference(L, R)).
// The derivation is kept literal because it documents that the operator
// basis is {select, project, rename, cross product, union, difference}.
func Intersection(left, right relation.Table) (relation.Table, error) {
	absent, err := Difference(left, right)
	if err != nil {
		return relation.Table{}, err
	}
	return Difference(left, absent)
}

// requireSameSchema errors when two non-empty tables have different
// column sets.
func requireSameSchema(operation string, left, right relation.Table) error {
	if left.Empty() || right.Empty() {
		return nil
	}
	leftColumns := left.Columns()
	rightColumns := right.Columns()
	if len(leftColumns) != len(rightColumns) {
		return relation.NewSchemaMismatch(operation, leftColumns, rightColumns)
	}
	for i := range leftColumns {
		if leftColumns[i] != rightColumns[i] {
			return relation.NewSchemaMismatch(operation, leftColumns, rightColumns)
		}
	}
	return nil
}
