package algebra

import (
	"log/slog"

	"github.com/cosmic-cortex/relational-databases-from-scratch/internal/relation"
)

// Select keeps the rows for which all predicates return true.
// An empty predicate list selects every row.
func Select(table relation.Table, predicates []Predicate) relation.Table {
	kept := make([]relation.Row, 0, table.Size())
	for _, row := range table.Rows() {
		if matchesAll(row, predicates) {
			kept = append(kept, row)
		}
	}

	slog.Debug("select completed",
		slog.Int("input_rows", table.Size()),
		slog.Int("result_rows", len(kept)),
		slog.Int("predicates", len(predicates)),
	)

	return relation.Deduplicate(kept)
}

func matchesAll(row relation.Row, predicates []Predicate) bool {
	for _, predicate := range predicates {
		if !predicate(row) {
			return false
		}
	}
	return true
}
