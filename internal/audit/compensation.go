package audit

import (
	"github.com/joshsymonds/orgaudit/internal/config"
	"github.com/joshsymonds/orgaudit/internal/models"
	"github.com/joshsymonds/orgaudit/internal/org"
	"github.com/joshsymonds/orgaudit/pkg/logger"
)

// CompensationAuditor flags managers whose salary falls outside the policy
// band around the average salary of their direct reports.
type CompensationAuditor struct {
	logger   logger.Logger
	minRatio float64
	maxRatio float64
}

// NewCompensationAuditor creates a compensation auditor for policy.
func NewCompensationAuditor(policy config.Policy, opts ...Option) *CompensationAuditor {
	o := applyOptions(opts)
	return &CompensationAuditor{
		logger:   o.logger.With("auditor", "compensation"),
		minRatio: policy.Salary.MinRatio,
		maxRatio: policy.Salary.MaxRatio,
	}
}

// Audit checks every manager in load order. Only direct reports count
// toward the average; both bounds are inclusive.
func (a *CompensationAuditor) Audit(o *org.Organization) []models.CompensationFinding {
	findings := []models.CompensationFinding{}

	for _, e := range o.Employees() {
		if !o.IsManager(e.ID) {
			continue
		}
		if f, ok := a.check(e, o.DirectReports(e.ID)); ok {
			findings = append(findings, f)
		}
	}

	a.logger.Debug("Compensation audit complete", "findings", len(findings))
	return findings
}

func (a *CompensationAuditor) check(manager models.Employee, reports []models.Employee) (models.CompensationFinding, bool) {
	if len(reports) == 0 {
		return models.CompensationFinding{}, false
	}

	avg := averageSalary(reports)
	lower := avg * a.minRatio
	upper := avg * a.maxRatio

	f := models.CompensationFinding{
		ID:                  models.FindingID(models.KindCompensation, manager.ID),
		Manager:             manager,
		AverageReportSalary: avg,
		LowerBound:          lower,
		UpperBound:          upper,
	}

	switch {
	case manager.Salary < lower:
		f.Direction = models.DirectionTooLow
		f.Deviation = lower - manager.Salary
	case manager.Salary > upper:
		f.Direction = models.DirectionTooHigh
		f.Deviation = manager.Salary - upper
	default:
		return models.CompensationFinding{}, false
	}

	a.logger.Debug("Salary outside band",
		"manager", manager.ID,
		"direction", f.Direction,
		"deviation", f.Deviation)
	return f, true
}

func averageSalary(employees []models.Employee) float64 {
	var sum float64
	for _, e := range employees {
		sum += e.Salary
	}
	return sum / float64(len(employees))
}
