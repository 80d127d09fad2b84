package models

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"slices"
	"strings"
)

// Finding kinds, used when deriving stable finding IDs.
const (
	KindCompensation = "compensation"
	KindSpan         = "span_of_control"
)

// CompensationFinding records a manager whose salary falls outside the
// configured band around the average salary of their direct reports.
type CompensationFinding struct {
	ID                  string    `json:"id"`
	Direction           Direction `json:"direction"`
	Manager             Employee  `json:"manager"`
	AverageReportSalary float64   `json:"average_report_salary"`
	LowerBound          float64   `json:"lower_bound"`
	UpperBound          float64   `json:"upper_bound"`
	Deviation           float64   `json:"deviation"`
}

// TooLow reports whether the manager earns less than the lower bound.
func (f CompensationFinding) TooLow() bool {
	return f.Direction == DirectionTooLow
}

// ExpectedBound returns the bound the manager missed.
func (f CompensationFinding) ExpectedBound() float64 {
	if f.TooLow() {
		return f.LowerBound
	}
	return f.UpperBound
}

// String implements fmt.Stringer.
func (f CompensationFinding) String() string {
	kind := "maximum"
	if f.TooLow() {
		kind = "minimum"
	}
	return fmt.Sprintf("%s earns %s than they should by %.2f (current: %.2f, avg subordinate: %.2f, expected %s: %.2f)",
		f.Manager.FullName(), f.Direction.Label(), f.Deviation,
		f.Manager.Salary, f.AverageReportSalary, kind, f.ExpectedBound())
}

// SpanFinding records an employee with too many managers between them and the root.
type SpanFinding struct {
	ID              string     `json:"id"`
	Employee        Employee   `json:"employee"`
	Chain           []Employee `json:"chain"`
	ManagersBetween int        `json:"managers_between"`
	Excess          int        `json:"excess"`
}

// ChainNames returns the full names along the chain, employee first.
func (f SpanFinding) ChainNames() []string {
	names := make([]string, 0, len(f.Chain))
	for _, e := range f.Chain {
		names = append(names, e.FullName())
	}
	return names
}

// String implements fmt.Stringer.
func (f SpanFinding) String() string {
	return fmt.Sprintf("%s has a reporting line that is too long by %d level(s) (%d managers between employee and root)\n  Reporting chain: %s",
		f.Employee.FullName(), f.Excess, f.ManagersBetween, strings.Join(f.ChainNames(), " -> "))
}

// Clone returns a copy whose chain does not alias the receiver's.
func (f SpanFinding) Clone() SpanFinding {
	f.Chain = slices.Clone(f.Chain)
	return f
}

// FindingID creates a stable, deterministic ID for a finding so that repeated
// audits of the same roster produce identical output.
func FindingID(kind, employeeID string) string {
	core := fmt.Sprintf("%s:%s", kind, employeeID)
	hash := sha256.Sum256([]byte(core))
	return hex.EncodeToString(hash[:8])
}
