// Package audit runs the compensation and span-of-control policies over a
// finalized organization.
package audit

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/joshsymonds/orgaudit/internal/config"
	"github.com/joshsymonds/orgaudit/internal/models"
	"github.com/joshsymonds/orgaudit/internal/org"
	"github.com/joshsymonds/orgaudit/pkg/logger"
)

// Option configures an auditor.
type Option func(*options)

type options struct {
	logger logger.Logger
}

// WithLogger sets the logger for an auditor.
func WithLogger(l logger.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

func applyOptions(opts []Option) *options {
	o := &options{logger: logger.NopLogger{}}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Summary provides high-level statistics for a run.
type Summary struct {
	Employees  int `json:"employees"`
	Managers   int `json:"managers"`
	Underpaid  int `json:"underpaid"`
	Overpaid   int `json:"overpaid"`
	LongChains int `json:"long_chains"`
}

// TotalFindings returns the number of findings across both audits.
func (s Summary) TotalFindings() int {
	return s.Underpaid + s.Overpaid + s.LongChains
}

// Result holds the ordered findings of both audits.
type Result struct {
	RunID        string                       `json:"run_id"`
	Compensation []models.CompensationFinding `json:"compensation"`
	Span         []models.SpanFinding         `json:"span_of_control"`
	Summary      Summary                      `json:"summary"`
}

// Underpaid returns the too-low compensation findings in order.
func (r *Result) Underpaid() []models.CompensationFinding {
	return filterDirection(r.Compensation, models.DirectionTooLow)
}

// Overpaid returns the too-high compensation findings in order.
func (r *Result) Overpaid() []models.CompensationFinding {
	return filterDirection(r.Compensation, models.DirectionTooHigh)
}

func filterDirection(findings []models.CompensationFinding, d models.Direction) []models.CompensationFinding {
	out := []models.CompensationFinding{}
	for _, f := range findings {
		if f.Direction == d {
			out = append(out, f)
		}
	}
	return out
}

// Run executes both audits over o. No partial result is returned on error.
func Run(o *org.Organization, policy config.Policy, opts ...Option) (*Result, error) {
	if err := policy.Validate(); err != nil {
		return nil, fmt.Errorf("invalid policy: %w", err)
	}

	runID := uuid.NewString()
	log := applyOptions(opts).logger.With("run_id", runID)

	compensation := NewCompensationAuditor(policy, WithLogger(log)).Audit(o)

	span, err := NewSpanAuditor(policy, WithLogger(log)).Audit(o)
	if err != nil {
		return nil, fmt.Errorf("span-of-control audit: %w", err)
	}

	result := &Result{
		RunID:        runID,
		Compensation: compensation,
		Span:         span,
	}
	result.Summary = Summary{
		Employees:  o.Len(),
		Managers:   o.ManagerCount(),
		Underpaid:  len(result.Underpaid()),
		Overpaid:   len(result.Overpaid()),
		LongChains: len(span),
	}

	log.Info("Audit complete",
		"employees", result.Summary.Employees,
		"managers", result.Summary.Managers,
		"underpaid", result.Summary.Underpaid,
		"overpaid", result.Summary.Overpaid,
		"long_chains", result.Summary.LongChains)

	return result, nil
}
