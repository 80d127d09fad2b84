// Package org builds and queries the validated organization tree.
//
// Employees are stored in an arena (a slice in load order) and linked through
// index maps rather than pointers, so the structure has no ownership cycles
// and acyclicity checks are plain walks over indices.
package org

import (
	"errors"

	"github.com/joshsymonds/orgaudit/internal/models"
	"github.com/joshsymonds/orgaudit/pkg/logger"
)

// ErrFinalized is returned when a Builder is used after Finalize.
var ErrFinalized = errors.New("org: builder already finalized")

// Option configures a Builder.
type Option func(*Builder)

// WithLogger sets the logger for the builder.
func WithLogger(l logger.Logger) Option {
	return func(b *Builder) {
		b.logger = l
	}
}

// Builder accumulates employees in arrival order and finalizes them into an
// Organization. A Builder is single-use.
type Builder struct {
	logger    logger.Logger
	index     map[string]int
	employees []models.Employee
	root      int
	finalized bool
}

// NewBuilder creates an empty builder.
func NewBuilder(opts ...Option) *Builder {
	b := &Builder{
		logger: logger.NopLogger{},
		index:  make(map[string]int),
		root:   -1,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Add appends an employee. It fails on a repeated identifier and on a second
// employee without a manager.
func (b *Builder) Add(e models.Employee) error {
	if b.finalized {
		return ErrFinalized
	}

	if _, dup := b.index[e.ID]; dup {
		return &models.Error{Kind: models.ErrDuplicateIdentifier, EmployeeID: e.ID}
	}

	if e.IsRoot() {
		if b.root >= 0 {
			return &models.Error{
				Kind:       models.ErrMultipleRoots,
				EmployeeID: e.ID,
				OtherID:    b.employees[b.root].ID,
			}
		}
		e.ManagerID = ""
		b.root = len(b.employees)
	}

	b.index[e.ID] = len(b.employees)
	b.employees = append(b.employees, e)
	return nil
}

// Len returns the number of employees added so far.
func (b *Builder) Len() int {
	return len(b.employees)
}

// Finalize validates the accumulated employees and returns the immutable
// Organization. On error no Organization is produced.
func (b *Builder) Finalize() (*Organization, error) {
	if b.finalized {
		return nil, ErrFinalized
	}
	b.finalized = true

	if b.root < 0 {
		return nil, &models.Error{Kind: models.ErrMissingRoot}
	}

	reports := make(map[string][]int)
	for i, e := range b.employees {
		if i == b.root {
			continue
		}
		if _, ok := b.index[e.ManagerID]; !ok {
			return nil, &models.Error{
				Kind:       models.ErrUnknownManager,
				EmployeeID: e.ID,
				OtherID:    e.ManagerID,
			}
		}
		reports[e.ManagerID] = append(reports[e.ManagerID], i)
	}

	if err := b.checkAcyclic(); err != nil {
		return nil, err
	}

	o := &Organization{
		employees: b.employees,
		index:     b.index,
		reports:   reports,
		root:      b.root,
	}

	b.logger.Debug("Organization finalized",
		"employees", o.Len(),
		"managers", o.ManagerCount(),
		"root", o.Root().ID)

	return o, nil
}

// checkAcyclic walks every employee upward. Each walk stamps the employees it
// passes with its own walk number; meeting the current stamp again means the
// chain loops without reaching the root. Employees already proven to reach
// the root are marked so later walks stop early.
func (b *Builder) checkAcyclic() error {
	const reachesRoot = -1

	state := make([]int, len(b.employees))
	state[b.root] = reachesRoot

	for start := range b.employees {
		walk := start + 1
		path := make([]int, 0, 8)

		cur := start
		for state[cur] != reachesRoot {
			if state[cur] == walk {
				return &models.Error{
					Kind:       models.ErrCyclicReportingStructure,
					EmployeeID: b.employees[cur].ID,
				}
			}
			state[cur] = walk
			path = append(path, cur)
			cur = b.index[b.employees[cur].ManagerID]
		}

		for _, i := range path {
			state[i] = reachesRoot
		}
	}

	return nil
}
