package booking

import (
	"errors"
	"fmt"
)

// Booking failure codes, surfaced to the transport layer for status mapping.
const (
	CodeNotFound          = "notFound"
	CodeOwnershipMismatch = "ownershipMismatch"
	CodeAlreadyBooked     = "alreadyBooked"
)

type BookingError struct {
	Code    string
	Message string
}

func (e *BookingError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewNotFound(format string, args ...any) error {
	return &BookingError{Code: CodeNotFound, Message: fmt.Sprintf(format, args...)}
}

func NewOwnershipMismatch(format string, args ...any) error {
	return &BookingError{Code: CodeOwnershipMismatch, Message: fmt.Sprintf(format, args...)}
}

func NewAlreadyBooked(format string, args ...any) error {
	return &BookingError{Code: CodeAlreadyBooked, Message: fmt.Sprintf(format, args...)}
}

// ErrorCode extracts the booking error code, or "" for other errors.
func ErrorCode(err error) string {
	var be *BookingError
	if errors.As(err, &be) {
		return be.Code
	}
	return ""
}
