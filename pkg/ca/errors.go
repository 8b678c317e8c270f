package ca

import "fmt"

// Code is a negative error code. Numeric values match the original header
// enum for backward compatibility with callers that compare codes directly.
type Code int

const (
	ErrAlreadyInitialized       Code = -1
	ErrCellsNull                Code = -2
	ErrAllocationFailed         Code = -3
	ErrInvalidState             Code = -4
	ErrInvalidStateCondition    Code = -5
	ErrInvalidRadius            Code = -6
	ErrInvalidNumStates         Code = -7
	ErrNeighborhoodAllocFailed  Code = -8
	ErrCustomRuleMissing        Code = -9
	ErrRadiusTooLarge           Code = -10
)

var codeMessages = map[Code]string{
	ErrAlreadyInitialized:      "Already-initialized",
	ErrCellsNull:               "Cells-null",
	ErrAllocationFailed:        "Allocation-failed",
	ErrInvalidState:            "Invalid-state",
	ErrInvalidStateCondition:   "Invalid-state-condition",
	ErrInvalidRadius:           "Invalid-radius",
	ErrInvalidNumStates:        "Invalid-num-states",
	ErrNeighborhoodAllocFailed: "Neighborhood-allocation-failed",
	ErrCustomRuleMissing:       "Custom-rule-missing",
	ErrRadiusTooLarge:          "Radius-too-large",
}

// Error wraps a Code as a Go error.
type Error struct {
	Code Code
}

func (e *Error) Error() string {
	msg, ok := codeMessages[e.Code]
	if !ok {
		return fmt.Sprintf("unknown error code %d", int(e.Code))
	}
	return msg
}

// Is reports whether target is an *Error with the same Code, so callers may
// use errors.Is(err, ca.NewError(ca.ErrInvalidRadius)) style checks.
func (e *Error) Is(target error) bool {
	other, ok := target.(*Error)
	return ok && other.Code == e.Code
}

// NewError constructs an *Error for the given code.
func NewError(c Code) *Error { return &Error{Code: c} }

// ErrorMessage formats a human-readable description of code, mirroring the
// engine façade's error_message operation.
func ErrorMessage(c Code) string {
	if msg, ok := codeMessages[c]; ok {
		return msg
	}
	return fmt.Sprintf("unknown error code %d", int(c))
}
