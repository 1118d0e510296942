// errors/resource_errors.go
package errors

import "net/http"

const (
	CodeInvalidInput     = "INVALID_INPUT"
	CodeResourceNotFound = "RESOURCE_NOT_FOUND"
	CodeDatabaseError    = "DATABASE_ERROR"
)

var (
	ErrInvalidInput = New(http.StatusBadRequest, CodeInvalidInput, "Invalid input data")

	ErrUserNotFound     = New(http.StatusNotFound, CodeResourceNotFound, "User not found")
	ErrPatientNotFound  = New(http.StatusNotFound, CodeResourceNotFound, "Patient not found")
	ErrVisitNotFound    = New(http.StatusNotFound, CodeResourceNotFound, "Visit not found")
	ErrBookingNotFound  = New(http.StatusNotFound, CodeResourceNotFound, "Booking not found")
	ErrScheduleNotFound = New(http.StatusNotFound, CodeResourceNotFound, "Schedule not found")

	ErrDatabaseOperation = New(http.StatusInternalServerError, CodeDatabaseError, "Database operation failed")
)
