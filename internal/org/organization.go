package org

import (
	"github.com/joshsymonds/orgaudit/internal/models"
)

// Organization is a validated, read-only view of the roster: exactly one
// root, every manager reference resolved, no cycles. All accessors return
// copies so callers cannot mutate the model.
type Organization struct {
	index     map[string]int
	reports   map[string][]int
	employees []models.Employee
	root      int
}

// Employee returns the employee with the given identifier.
func (o *Organization) Employee(id string) (models.Employee, bool) {
	i, ok := o.index[id]
	if !ok {
		return models.Employee{}, false
	}
	return o.employees[i], true
}

// DirectReports returns the direct reports of id in load order.
// The result is empty for unknown identifiers and non-managers.
func (o *Organization) DirectReports(id string) []models.Employee {
	idx := o.reports[id]
	out := make([]models.Employee, 0, len(idx))
	for _, i := range idx {
		out = append(out, o.employees[i])
	}
	return out
}

// IsManager reports whether id has at least one direct report.
func (o *Organization) IsManager(id string) bool {
	return len(o.reports[id]) > 0
}

// Root returns the single employee without a manager.
func (o *Organization) Root() models.Employee {
	return o.employees[o.root]
}

// Employees returns every employee in load order.
func (o *Organization) Employees() []models.Employee {
	out := make([]models.Employee, len(o.employees))
	copy(out, o.employees)
	return out
}

// Len returns the number of employees.
func (o *Organization) Len() int {
	return len(o.employees)
}

// ManagerCount returns the number of employees with at least one direct report.
func (o *Organization) ManagerCount() int {
	return len(o.reports)
}
