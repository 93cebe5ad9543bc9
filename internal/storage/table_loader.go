// Package storage builds relation tables from record-literal files.
// It exists for callers of the engine (the demo binary, tests); the
// engine itself never touches the filesystem.
package storage

import (
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cosmic-cortex/relational-databases-from-scratch/internal/relation"
)

// LoadTables reads a YAML file mapping table names to lists of flat
// records and builds one deduplicated table per entry.
//
//	employees:
//	  - id: 0
//	    name: Michael Scott
//	tasks:
//	  - id: 0
//	    employee_id: 0
func LoadTables(path string) (map[string]relation.Table, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var literals map[string][]map[string]interface{}
	if err := yaml.Unmarshal(raw, &literals); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	tables := make(map[string]relation.Table, len(literals))
	for name, records := range literals {
		rows := make([]relation.Row, 0, len(records))
		for _, record := range records {
			rows = append(rows, relation.NewRow(record))
		}
		table := relation.NewTable(rows...)
		tables[name] = table

		slog.Info("table loaded",
			slog.String("table", name),
			slog.Int("rows", table.Size()),
		)
	}

	return tables, nil
}
