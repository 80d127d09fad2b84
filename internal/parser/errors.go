package parser

import (
	"errors"
	"fmt"
)

var (
	errMissingID = errors.New("employee id is empty")
	errNotFinite = errors.New("salary is not a finite number")
	errNegative  = errors.New("salary is negative")
)

type fieldCountError struct {
	got int
}

func (e fieldCountError) Error() string {
	return fmt.Sprintf("expected %d fields, got %d", FieldCount, e.got)
}
