package models

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a load or analysis failure.
type ErrorKind string

const (
	// ErrMalformedRecord indicates a record with the wrong number of fields.
	ErrMalformedRecord ErrorKind = "MalformedRecord"
	// ErrInvalidSalary indicates an unparsable, non-finite or negative salary.
	ErrInvalidSalary ErrorKind = "InvalidSalary"
	// ErrDuplicateIdentifier indicates an identifier seen twice.
	ErrDuplicateIdentifier ErrorKind = "DuplicateIdentifier"
	// ErrMultipleRoots indicates more than one employee without a manager.
	ErrMultipleRoots ErrorKind = "MultipleRoots"
	// ErrMissingRoot indicates no employee without a manager.
	ErrMissingRoot ErrorKind = "MissingRoot"
	// ErrUnknownManager indicates a manager reference that does not resolve.
	ErrUnknownManager ErrorKind = "UnknownManager"
	// ErrCyclicReportingStructure indicates a manager chain that never reaches the root.
	ErrCyclicReportingStructure ErrorKind = "CyclicReportingStructure"
)

// Error is the structured error produced while loading or auditing an
// organization. It carries enough context for callers to build their own
// messages; Error() is a reasonable default.
type Error struct {
	Err        error
	Kind       ErrorKind
	EmployeeID string
	OtherID    string
	Value      string
	Line       int
}

// Error implements the error interface.
func (e *Error) Error() string {
	var msg string
	switch e.Kind {
	case ErrMalformedRecord:
		msg = fmt.Sprintf("malformed record %q", e.Value)
	case ErrInvalidSalary:
		msg = fmt.Sprintf("invalid salary for employee %s: %q", e.EmployeeID, e.Value)
	case ErrDuplicateIdentifier:
		msg = fmt.Sprintf("duplicate employee id %s", e.EmployeeID)
	case ErrMultipleRoots:
		msg = fmt.Sprintf("multiple roots found: %s and %s", e.OtherID, e.EmployeeID)
	case ErrMissingRoot:
		msg = "no root employee found"
	case ErrUnknownManager:
		msg = fmt.Sprintf("employee %s has unknown manager id %s", e.EmployeeID, e.OtherID)
	case ErrCyclicReportingStructure:
		msg = fmt.Sprintf("cyclic reporting structure detected at employee %s", e.EmployeeID)
	default:
		msg = string(e.Kind)
	}
	if e.Line > 0 {
		msg = fmt.Sprintf("line %d: %s", e.Line, msg)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches another *Error of the same kind, so errors.Is works against
// the sentinel values below.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && t.EmployeeID == "" && t.OtherID == "" && t.Value == "" && t.Line == 0
}

// Sentinels for errors.Is.
var (
	MalformedRecord          = &Error{Kind: ErrMalformedRecord}
	InvalidSalary            = &Error{Kind: ErrInvalidSalary}
	DuplicateIdentifier      = &Error{Kind: ErrDuplicateIdentifier}
	MultipleRoots            = &Error{Kind: ErrMultipleRoots}
	MissingRoot              = &Error{Kind: ErrMissingRoot}
	UnknownManager           = &Error{Kind: ErrUnknownManager}
	CyclicReportingStructure = &Error{Kind: ErrCyclicReportingStructure}
)

// KindOf returns the kind of the first *Error in err's chain.
func KindOf(err error) (ErrorKind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return "", false
}

// IsKind checks if err wraps an *Error of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	k, ok := KindOf(err)
	return ok && k == kind
}

// WithLine returns a copy of err annotated with a 1-based input line number.
// Errors that are not *Error are returned unchanged.
func WithLine(err error, line int) error {
	var e *Error
	if !errors.As(err, &e) {
		return err
	}
	annotated := *e
	annotated.Line = line
	return &annotated
}
