package algebra

import (
	"log/slog"

	"github.com/cosmic-cortex/relational-databases-from-scratch/internal/relation"
)

// Rename replaces column names according to the mapping; names absent
// from the mapping pass through unchanged.
//
// WARNING: rename is destructive. If the mapping sends two source columns
// to the same target name, the later source column (in sorted column
// order) overwrites the earlier one in each row. This is a documented
// hazard, not a validation error.
func Rename(table relation.Table, mapping map[string]string) relation.Table {
	renamed := make([]relation.Row, 0, table.Size())
	for _, row := range table.Rows() {
		values := make(map[string]interface{}, row.Len())
		for _, column := range row.Columns() {
			target := column
			if newName, mapped := mapping[column]; mapped {
				target = newName
			}
			value, _ := row.Get(column)
			values[target] = value
		}
		renamed = append(renamed, relation.NewRow(values))
	}

	result := relation.Deduplicate(renamed)
	slog.Debug("rename completed",
		slog.Int("input_rows", table.Size()),
		slog.Int("result_rows", result.Size()),
	)

	return result
}
