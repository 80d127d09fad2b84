// Package models contains the value types shared by the organization model,
// the auditors and the report renderer.
package models

import (
	"fmt"
	"strings"
)

// Employee is a single record from the organization roster.
// Values are immutable once parsed; pass them by value.
type Employee struct {
	ID        string  `json:"id" yaml:"id"`
	FirstName string  `json:"first_name" yaml:"first_name"`
	LastName  string  `json:"last_name" yaml:"last_name"`
	ManagerID string  `json:"manager_id,omitempty" yaml:"manager_id,omitempty"`
	Salary    float64 `json:"salary" yaml:"salary"`
}

// IsRoot reports whether the employee has no manager.
func (e Employee) IsRoot() bool {
	return strings.TrimSpace(e.ManagerID) == ""
}

// FullName returns "First Last", collapsing missing parts.
func (e Employee) FullName() string {
	return strings.TrimSpace(e.FirstName + " " + e.LastName)
}

// String implements fmt.Stringer.
func (e Employee) String() string {
	return fmt.Sprintf("%s (ID: %s, Salary: %.2f)", e.FullName(), e.ID, e.Salary)
}
