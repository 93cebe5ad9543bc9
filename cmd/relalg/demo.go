package main

import (
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/cosmic-cortex/relational-databases-from-scratch/internal/algebra"
	"github.com/cosmic-cortex/relational-databases-from-scratch/internal/relation"
	"github.com/cosmic-cortex/relational-databases-from-scratch/internal/storage"
)

// runDemo drives every operator once over the employees/tasks dataset
// (or tables loaded from the --tables YAML file) and logs the results.
// The engine itself is a pure library; this command is its caller.
func runDemo(cmd *cobra.Command, args []string) {
	closeFn := setupLogging()
	defer closeFn()

	runID := uuid.New().String()
	logger := slog.Default().With(slog.String("run_id", runID))

	employees, tasks := sampleTables()

	if path, _ := cmd.Flags().GetString("tables"); path != "" {
		loaded, err := storage.LoadTables(path)
		if err != nil {
			logger.Error("failed to load tables", "error", err, "path", path)
			closeFn()
			os.Exit(1)
		}
		if t, ok := loaded["employees"]; ok {
			employees = t
		}
		if t, ok := loaded["tasks"]; ok {
			tasks = t
		}
	}

	logger.Info("demo starting",
		slog.Int("employees", employees.Size()),
		slog.Int("tasks", tasks.Size()),
	)

	// project
	salaries, err := algebra.Project(employees, []string{"salary"})
	if err != nil {
		logger.Error("project failed", "error", err)
		closeFn()
		os.Exit(1)
	}
	logTable(logger, "project employees -> salary", salaries)

	// select
	highEarners := algebra.Select(employees, []algebra.Predicate{
		func(row relation.Row) bool {
			salary, _ := row.Get("salary")
			value, ok := salary.(int64)
			return ok && value > 60000
		},
	})
	logTable(logger, "select salary > 60000", highEarners)

	// rename
	renamed := algebra.Rename(employees, map[string]string{"name": "full_name"})
	logTable(logger, "rename name -> full_name", renamed)

	// cross product
	pairs := algebra.CrossProductAs(employees, "employees", tasks, "tasks")
	logTable(logger, "cross product employees x tasks", pairs)

	// theta join
	assignments := algebra.ThetaJoin(employees, tasks, []algebra.JoinCondition{
		func(left, right relation.Row) bool {
			employeeID, _ := left.Get("id")
			taskOwner, _ := right.Get("employee_id")
			return employeeID == taskOwner
		},
	})
	logTable(logger, "theta join on id = employee_id", assignments)

	// natural join (common column: id)
	natural := algebra.NaturalJoin(employees, tasks)
	logTable(logger, "natural join employees |x| tasks", natural)

	// union across differing schemas (null padding)
	everything := algebra.Union(employees, tasks)
	logTable(logger, "union employees + tasks", everything)

	// difference and intersection need matching schemas
	sales, err := algebra.Project(
		algebra.Select(employees, []algebra.Predicate{isSales}),
		[]string{"id", "name"},
	)
	if err != nil {
		logger.Error("project failed", "error", err)
		closeFn()
		os.Exit(1)
	}
	roster, err := algebra.Project(employees, []string{"id", "name"})
	if err != nil {
		logger.Error("project failed", "error", err)
		closeFn()
		os.Exit(1)
	}

	nonSales, err := algebra.Difference(roster, sales)
	if err != nil {
		logger.Error("difference failed", "error", err)
		closeFn()
		os.Exit(1)
	}
	logTable(logger, "difference roster - sales", nonSales)

	salesAgain, err := algebra.Intersection(roster, sales)
	if err != nil {
		logger.Error("intersection failed", "error", err)
		closeFn()
		os.Exit(1)
	}
	logTable(logger, "intersection roster & sales", salesAgain)

	logger.Info("demo finished")
}

func isSales(row relation.Row) bool {
	position, _ := row.Get("position")
	return position == "Sales"
}

func logTable(logger *slog.Logger, operation string, table relation.Table) {
	logger.Info(operation, slog.Int("result_rows", table.Size()))
	for _, row := range table.Rows() {
		logger.Debug(operation, slog.String("row", row.String()))
	}
}

// sampleTables builds the built-in demo dataset.
func sampleTables() (relation.Table, relation.Table) {
	employees := relation.NewTable(
		employee(0, "Michael Scott", "Regional Manager", 100000),
		employee(1, "Dwight K. Schrute", "Assistant to the Regional Manager", 65000),
		employee(2, "Pamela Beesly", "Receptionist", 40000),
		employee(3, "James Halpert", "Sales", 55000),
		employee(4, "Stanley Hudson", "Sales", 60000),
	)
	tasks := relation.NewTable(
		task(0, 0, false),
		task(1, 0, false),
		task(2, 1, true),
		task(3, 1, true),
		task(4, 1, false),
		task(5, 2, true),
		task(6, 3, false),
		task(7, 3, false),
		task(8, 3, true),
		task(9, 3, false),
	)
	return employees, tasks
}

func employee(id int64, name, position string, salary int64) relation.Row {
	return relation.NewRow(map[string]interface{}{
		"id":       id,
		"name":     name,
		"position": position,
		"salary":   salary,
	})
}

func task(id, employeeID int64, completed bool) relation.Row {
	return relation.NewRow(map[string]interface{}{
		"id":          id,
		"employee_id": employeeID,
		"completed":   completed,
	})
}
