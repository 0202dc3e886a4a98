package agent

import (
	"errors"
	"fmt"
)

// Turn failure codes.
const (
	CodeProtocolViolation = "protocolViolation"
	CodeBudgetExceeded    = "budgetExceeded"
)

// TurnError aborts a turn. No structured output is produced alongside one.
type TurnError struct {
	Code    string
	Message string
}

func (e *TurnError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewProtocolViolation marks an attempted call outside the fixed capability
// set or outside the allowed order.
func NewProtocolViolation(format string, args ...any) error {
	return &TurnError{Code: CodeProtocolViolation, Message: fmt.Sprintf(format, args...)}
}

// NewBudgetExceeded marks a turn that hit the request or tool-call ceiling.
func NewBudgetExceeded(format string, args ...any) error {
	return &TurnError{Code: CodeBudgetExceeded, Message: fmt.Sprintf(format, args...)}
}

// TurnErrorCode extracts the code from a turn error, or "" for other errors.
func TurnErrorCode(err error) string {
	var te *TurnError
	if errors.As(err, &te) {
		return te.Code
	}
	return ""
}
