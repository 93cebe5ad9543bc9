package algebra

import (
	"log/slog"

	"github.com/cosmic-cortex/relational-databases-from-scratch/internal/relation"
)

// Default prefixes used when the caller supplies no table names.
const (
	leftName  = "left"
	rightName = "right"
)

// CrossProduct returns the Cartesian product of both tables, with left
// columns prefixed "left." and right columns prefixed "right.".
func CrossProduct(left, right relation.Table) relation.Table {
	return CrossProductAs(left, leftName, right, rightName)
}

// CrossProductAs is CrossProduct with caller-supplied table names as the
// column prefixes. It produces one row per (l, r) pair, holding the union
// of l's and r's prefixed columns, and costs O(|left|*|right|).
func CrossProductAs(left relation.Table, leftTable string, right relation.Table, rightTable string) relation.Table {
	combined := make([]relation.Row, 0, left.Size()*right.Size())
	for _, leftRow := range left.Rows() {
		prefixedLeft := leftRow.Prefix(leftTable)
		for _, rightRow := range right.Rows() {
			combined = append(combined, prefixedLeft.Merge(rightRow.Prefix(rightTable)))
		}
	}

	result := relation.Deduplicate(combined)
	slog.Debug("cross product completed",
		slog.String("left_prefix", leftTable),
		slog.String("right_prefix", rightTable),
		slog.Int("left_rows", left.Size()),
		slog.Int("right_rows", right.Size()),
		slog.Int("result_rows", result.Size()),
	)

	return result
}
