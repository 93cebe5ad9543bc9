package algebra

import (
	"log/slog"

	"github.com/cosmic-cortex/relational-databases-from-scratch/internal/relation"
)

// ThetaJoin keeps the pairs (l, r) of the Cartesian product for which all
// conditions hold. Conditions see the unprefixed rows; the output carries
// "left."/"right." prefixed columns, so it equals Select over CrossProduct
// with the conditions adapted to the merged rows.
func ThetaJoin(left, right relation.Table, conditions []JoinCondition) relation.Table {
	joined := make([]relation.Row, 0)
	for _, leftRow := range left.Rows() {
		prefixedLeft := leftRow.Prefix(leftName)
		for _, rightRow := range right.Rows() {
			if !holdsAll(leftRow, rightRow, conditions) {
				continue
			}
			joined = append(joined, prefixedLeft.Merge(rightRow.Prefix(rightName)))
		}
	}

	result := relation.Deduplicate(joined)
	slog.Debug("theta join completed",
		slog.Int("left_rows", left.Size()),
		slog.Int("right_rows", right.Size()),
		slog.Int("conditions", len(conditions)),
		slog.Int("result_rows", result.Size()),
	)

	return result
}

// NaturalJoin joins both tables on equality of every column name they
// share, delegating to ThetaJoin with one equality condition per common
// column. The joined output is then coalesced back to unprefixed column
// names: each matched column pair collapses to a single column, and
// non-common names are unique across the inputs, so dropping the
// prefixes loses nothing. With no common columns this degenerates to an
// unprefixed cross product.
func NaturalJoin(left, right relation.Table) relation.Table {
	common := commonColumns(left, right)

	conditions := make([]JoinCondition, 0, len(common))
	for _, column := range common {
		column := column
		conditions = append(conditions, func(l, r relation.Row) bool {
			leftValue, _ := l.Get(column)
			rightValue, _ := r.Get(column)
			return leftValue == rightValue
		})
	}

	joined := ThetaJoin(left, right, conditions)
	result := coalesce(joined, left.Columns(), right.Columns())

	slog.Debug("natural join completed",
		slog.Any("common_columns", common),
		slog.Int("result_rows", result.Size()),
	)

	return result
}

func holdsAll(left, right relation.Row, conditions []JoinCondition) bool {
	for _, condition := range conditions {
		if !condition(left, right) {
			return false
		}
	}
	return true
}

// commonColumns returns the sorted intersection of both tables' schemas.
func commonColumns(left, right relation.Table) []string {
	rightSet := make(map[string]struct{})
	for _, column := range right.Columns() {
		rightSet[column] = struct{}{}
	}

	common := make([]string, 0)
	for _, column := range left.Columns() {
		if _, found := rightSet[column]; found {
			common = append(common, column)
		}
	}
	return common
}

// coalesce rewrites prefixed join output back to unprefixed column names.
// Matched columns carry equal values on both sides, so keeping one copy
// is lossless.
func coalesce(joined relation.Table, leftColumns, rightColumns []string) relation.Table {
	rows := make([]relation.Row, 0, joined.Size())
	for _, row := range joined.Rows() {
		values := make(map[string]interface{}, row.Len())
		for _, column := range leftColumns {
			if value, exists := row.Get(leftName + "." + column); exists {
				values[column] = value
			}
		}
		for _, column := range rightColumns {
			if value, exists := row.Get(rightName + "." + column); exists {
				values[column] = value
			}
		}
		rows = append(rows, relation.NewRow(values))
	}
	return relation.Deduplicate(rows)
}
