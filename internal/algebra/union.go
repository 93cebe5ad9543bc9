package algebra

import (
	"log/slog"

	"github.com/cosmic-cortex/relational-databases-from-scratch/internal/relation"
)

// Union concatenates both tables and deduplicates. Schemas need not
// match: each side is first widened with an explicit nil (NULL) for
// every column only the other side has, so every output row carries the
// union of the input columns.
func Union(left, right relation.Table) relation.Table {
	leftColumns := left.Columns()
	rightColumns := right.Columns()

	combined := make([]relation.Row, 0, left.Size()+right.Size())
	combined = append(combined, padRows(left, missingColumns(leftColumns, rightColumns))...)
	combined = append(combined, padRows(right, missingColumns(rightColumns, leftColumns))...)

	result := relation.Deduplicate(combined)
	slog.Debug("union completed",
		slog.Int("left_rows", left.Size()),
		slog.Int("right_rows", right.Size()),
		slog.Int("result_rows", result.Size()),
	)

	return result
}

// missingColumns returns the columns of other that own lacks.
func missingColumns(own, other []string) []string {
	ownSet := make(map[string]struct{}, len(own))
	for _, column := range own {
		ownSet[column] = struct{}{}
	}

	missing := make([]string, 0)
	for _, column := range other {
		if _, found := ownSet[column]; !found {
			missing = append(missing, column)
		}
	}
	return missing
}

// padRows widens every row of the table with a nil value for each of the
// given columns.
func padRows(table relation.Table, columns []string) []relation.Row {
	rows := make([]relation.Row, 0, table.Size())
	for _, row := range table.Rows() {
		if len(columns) == 0 {
			rows = append(rows, row)
			continue
		}
		values := row.ToMap()
		for _, column := range columns {
			values[column] = nil
		}
		rows = append(rows, relation.NewRow(values))
	}
	return rows
}
