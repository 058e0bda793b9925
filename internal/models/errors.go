package models

import "errors"

// ErrOrderNotFound is returned when a looked-up order id has no row.
var ErrOrderNotFound = errors.New("order not found")

// ValidationError reports a client payload that failed validation.
// Handlers map it to HTTP 400.
type ValidationError struct {
	Message string
}

func (e ValidationError) Error() string {
	return e.Message
}
