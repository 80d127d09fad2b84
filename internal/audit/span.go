package audit

import (
	"github.com/joshsymonds/orgaudit/internal/config"
	"github.com/joshsymonds/orgaudit/internal/models"
	"github.com/joshsymonds/orgaudit/internal/org"
	"github.com/joshsymonds/orgaudit/pkg/logger"
)

// SpanAuditor flags employees with more than the allowed number of managers
// standing between them and the root.
type SpanAuditor struct {
	logger   logger.Logger
	maxDepth int
	hopLimit int
}

// NewSpanAuditor creates a span-of-control auditor for policy.
func NewSpanAuditor(policy config.Policy, opts ...Option) *SpanAuditor {
	o := applyOptions(opts)
	hopLimit := policy.HopLimit
	if hopLimit <= 0 {
		hopLimit = config.DefaultHopLimit
	}
	return &SpanAuditor{
		logger:   o.logger.With("auditor", "span_of_control"),
		maxDepth: policy.MaxDepth,
		hopLimit: hopLimit,
	}
}

// Audit checks every non-root employee in load order. A chain that loops or
// exceeds the hop limit aborts the audit with CyclicReportingStructure.
func (a *SpanAuditor) Audit(o *org.Organization) ([]models.SpanFinding, error) {
	findings := []models.SpanFinding{}

	for _, e := range o.Employees() {
		if e.IsRoot() {
			continue
		}

		chain, err := a.Chain(o, e)
		if err != nil {
			return nil, err
		}

		// chain = [employee, m1, ..., root]; the employee and the root are
		// not "managers between".
		between := len(chain) - 2
		if between <= a.maxDepth {
			continue
		}

		findings = append(findings, models.SpanFinding{
			ID:              models.FindingID(models.KindSpan, e.ID),
			Employee:        e,
			Chain:           chain,
			ManagersBetween: between,
			Excess:          between - a.maxDepth,
		})
		a.logger.Debug("Reporting line too long", "employee", e.ID, "managers_between", between)
	}

	a.logger.Debug("Span-of-control audit complete", "findings", len(findings))
	return findings, nil
}

// Chain returns the reporting chain from e up to and including the root.
// It defends against loops independently of org.Builder.Finalize.
func (a *SpanAuditor) Chain(o *org.Organization, e models.Employee) ([]models.Employee, error) {
	chain := []models.Employee{e}
	seen := map[string]struct{}{e.ID: {}}

	cur := e
	for hops := 0; !cur.IsRoot(); hops++ {
		if hops >= a.hopLimit {
			return nil, &models.Error{Kind: models.ErrCyclicReportingStructure, EmployeeID: e.ID}
		}

		next, ok := o.Employee(cur.ManagerID)
		if !ok {
			return nil, &models.Error{
				Kind:       models.ErrUnknownManager,
				EmployeeID: cur.ID,
				OtherID:    cur.ManagerID,
			}
		}
		if _, loop := seen[next.ID]; loop {
			return nil, &models.Error{Kind: models.ErrCyclicReportingStructure, EmployeeID: next.ID}
		}

		seen[next.ID] = struct{}{}
		chain = append(chain, next)
		cur = next
	}

	return chain, nil
}
