// Package parser turns raw roster records into validated employees.
package parser

import (
	"math"
	"strconv"
	"strings"

	"github.com/joshsymonds/orgaudit/internal/models"
)

// FieldCount is the number of fields every roster record must carry:
// id, first name, last name, salary, manager id.
const FieldCount = 5

// Split splits line on delim, keeping trailing empty fields so that a record
// ending in an empty manager id still yields FieldCount fields.
func Split(line string, delim rune) []string {
	return strings.Split(line, string(delim))
}

// ParseRecord parses a single delimited record into an Employee.
// It has no side effects; errors are *models.Error values.
func ParseRecord(line string, delim rune) (models.Employee, error) {
	parts := Split(line, delim)
	if len(parts) != FieldCount {
		return models.Employee{}, &models.Error{
			Kind:  models.ErrMalformedRecord,
			Value: line,
			Err:   fieldCountError{got: len(parts)},
		}
	}

	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	id := parts[0]
	if id == "" {
		return models.Employee{}, &models.Error{
			Kind:  models.ErrMalformedRecord,
			Value: line,
			Err:   errMissingID,
		}
	}

	salary, err := parseSalary(parts[3])
	if err != nil {
		return models.Employee{}, &models.Error{
			Kind:       models.ErrInvalidSalary,
			EmployeeID: id,
			Value:      parts[3],
			Err:        err,
		}
	}

	return models.Employee{
		ID:        id,
		FirstName: parts[1],
		LastName:  parts[2],
		Salary:    salary,
		ManagerID: parts[4],
	}, nil
}

func parseSalary(raw string) (float64, error) {
	salary, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(salary) || math.IsInf(salary, 0) {
		return 0, errNotFinite
	}
	if salary < 0 {
		return 0, errNegative
	}
	return salary, nil
}
