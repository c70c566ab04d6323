package model

import (
	"errors"
	"fmt"
)

// ErrUnknownOperator is returned for comparison operators outside the table.
var ErrUnknownOperator = errors.New("unknown comparison operator")

// Comparison operator names shared by predicates and evolution triggers.
const (
	OpLessThan       = "less_than"
	OpLessOrEqual    = "less_or_equal"
	OpGreaterThan    = "greater_than"
	OpGreaterOrEqual = "greater_or_equal"
	OpEquals         = "equals"
	OpNotEquals      = "not_equals"
)

var operators = map[string]func(a, b float64) bool{
	OpLessThan:       func(a, b float64) bool { return a < b },
	OpLessOrEqual:    func(a, b float64) bool { return a <= b },
	OpGreaterThan:    func(a, b float64) bool { return a > b },
	OpGreaterOrEqual: func(a, b float64) bool { return a >= b },
	OpEquals:         func(a, b float64) bool { return a == b },
	OpNotEquals:      func(a, b float64) bool { return a != b },
}

// Compare evaluates "a op b".
func Compare(op string, a, b float64) (bool, error) {
	fn, ok := operators[op]
	if !ok {
		return false, fmt.Errorf("%w: %q", ErrUnknownOperator, op)
	}
	return fn(a, b), nil
}

// IsOperator reports whether op is in the comparison table.
func IsOperator(op string) bool {
	_, ok := operators[op]
	return ok
}
