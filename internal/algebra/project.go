package algebra

import (
	"log/slog"

	"github.com/cosmic-cortex/relational-databases-from-scratch/internal/relation"
)

// Project builds, for each row, a new row containing only the requested
// columns. Distinct input rows that agree on the requested columns
// collapse into one output row, so projection can reduce cardinality.
// Returns a ColumnNotFoundError if any row lacks a requested column.
func Project(table relation.Table, columns []string) (relation.Table, error) {
	projected := make([]relation.Row, 0, table.Size())
	for _, row := range table.Rows() {
		values := make(map[string]interface{}, len(columns))
		for _, column := range columns {
			value, exists := row.Get(column)
			if !exists {
				return relation.Table{}, relation.NewColumnNotFound("project", column)
			}
			values[column] = value
		}
		projected = append(projected, relation.NewRow(values))
	}

	result := relation.Deduplicate(projected)
	slog.Debug("project completed",
		slog.Int("input_rows", table.Size()),
		slog.Int("result_rows", result.Size()),
		slog.Any("columns", columns),
	)

	return result, nil
}
