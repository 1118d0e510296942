// errors/errors.go
package errors

import (
	"fmt"
	"net/http"
)

// AppError is the error currency of the whole API: every failure a service or
// middleware signals carries an HTTP status, a machine-readable code and a
// human-readable message. Details hold optional structured context
// (validation violations, diagnostic text) and are the only place the
// original error text may surface.
type AppError struct {
	StatusCode int
	Code       string
	Message    string
	Details    interface{}
	Err        error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New builds an AppError with the given status, code and message.
func New(statusCode int, code, message string) *AppError {
	return &AppError{StatusCode: statusCode, Code: code, Message: message}
}

// WithDetails returns a copy carrying structured details. The receiver is
// not mutated so the package-level sentinels stay shareable.
func (e *AppError) WithDetails(details interface{}) *AppError {
	clone := *e
	clone.Details = details
	return &clone
}

// WithErr returns a copy wrapping the underlying cause.
func (e *AppError) WithErr(err error) *AppError {
	clone := *e
	clone.Err = err
	return &clone
}

// Internal wraps an unexpected failure as a generic 500. The original error
// text is attached in Details for diagnostics, never in the message.
func Internal(err error) *AppError {
	appErr := &AppError{
		StatusCode: http.StatusInternalServerError,
		Code:       CodeInternalError,
		Message:    "Something went wrong",
		Err:        err,
	}
	if err != nil {
		appErr.Details = err.Error()
	}
	return appErr
}
