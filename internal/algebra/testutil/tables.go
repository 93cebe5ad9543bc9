// Package testutil provides shared fixtures and assertion helpers for
// operator tests.
package testutil

import (
	"github.com/cosmic-cortex/relational-databases-from-scratch/internal/relation"
)

// Employee builds one employee record.
func Employee(id int64, name, position string, salary int64) relation.Row {
	return relation.NewRow(map[string]interface{}{
		"id":       id,
		"name":     name,
		"position": position,
		"salary":   salary,
	})
}

// Task builds one task record.
func Task(id, employeeID int64, completed bool) relation.Row {
	return relation.NewRow(map[string]interface{}{
		"id":          id,
		"employee_id": employeeID,
		"completed":   completed,
	})
}

// CreateEmployeesTable returns the employees sample table used across
// operator tests.
func CreateEmployeesTable() relation.Table {
	return relation.NewTable(
		Employee(0, "Michael Scott", "Regional Manager", 100000),
		Employee(1, "Dwight K. Schrute", "Assistant to the Regional Manager", 65000),
		Employee(2, "Pamela Beesly", "Receptionist", 40000),
		Employee(3, "James Halpert", "Sales", 55000),
		Employee(4, "Stanley Hudson", "Sales", 60000),
	)
}

// CreateTasksTable returns the tasks sample table. Employee 4 (Stanley)
// has no tasks.
func CreateTasksTable() relation.Table {
	return relation.NewTable(
		Task(0, 0, false),
		Task(1, 0, false),
		Task(2, 1, true),
		Task(3, 1, true),
		Task(4, 1, false),
		Task(5, 2, true),
		Task(6, 3, false),
		Task(7, 3, false),
		Task(8, 3, true),
		Task(9, 3, false),
	)
}
