// util/validation_util.go

package util

import (
	"fmt"
	"unicode"

	"github.com/go-playground/validator/v10"

	"github.com/clinova/api/model"
)

type ValidationUtil struct {
	validate *validator.Validate
}

func NewValidationUtil() *ValidationUtil {
	return &ValidationUtil{validate: validator.New()}
}

// ValidateRegistration checks every registration rule and returns the full
// list of violations. It never stops at the first failure.
func (v *ValidationUtil) ValidateRegistration(input model.RegisterInput) []string {
	var violations []string

	if err := v.validate.Var(input.Name, "required,min=2,max=50"); err != nil {
		violations = append(violations, "name must be between 2 and 50 characters")
	}
	if err := v.validate.Var(input.Email, "required,email"); err != nil {
		violations = append(violations, "email must be a valid email address")
	}
	violations = append(violations, passwordViolations(input.Password)...)
	if _, err := model.ParseRole(input.Role); err != nil {
		violations = append(violations, "role must be one of admin, doctor, staff, patient")
	}

	return violations
}

// passwordViolations enforces the complexity policy: min length 8, at least
// one lowercase, one uppercase, one digit and one symbol.
func passwordViolations(password string) []string {
	var violations []string

	if len(password) < 8 {
		violations = append(violations, "password must be at least 8 characters long")
	}

	var hasLower, hasUpper, hasDigit, hasSymbol bool
	for _, r := range password {
		switch {
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			hasSymbol = true
		}
	}
	if !hasLower {
		violations = append(violations, "password must contain a lowercase letter")
	}
	if !hasUpper {
		violations = append(violations, "password must contain an uppercase letter")
	}
	if !hasDigit {
		violations = append(violations, "password must contain a digit")
	}
	if !hasSymbol {
		violations = append(violations, "password must contain a symbol")
	}

	return violations
}

func (v *ValidationUtil) ValidatePatient(patient model.Patient) error {
	if patient.Name == "" {
		return fmt.Errorf("patient name cannot be empty")
	}
	if patient.Phone == "" {
		return fmt.Errorf("patient phone cannot be empty")
	}
	if patient.Email != "" {
		if err := v.validate.Var(patient.Email, "email"); err != nil {
			return fmt.Errorf("patient email is not a valid email address")
		}
	}
	return nil
}

func (v *ValidationUtil) ValidateVisit(visit model.Visit) error {
	if visit.PatientID == "" {
		return fmt.Errorf("visit must reference a patient")
	}
	if visit.DoctorID == "" {
		return fmt.Errorf("visit must reference a doctor")
	}
	if visit.Date.IsZero() {
		return fmt.Errorf("visit date cannot be empty")
	}
	for _, p := range visit.Prescriptions {
		if p.Medication == "" {
			return fmt.Errorf("prescription medication cannot be empty")
		}
		if p.Dosage == "" {
			return fmt.Errorf("prescription dosage cannot be empty")
		}
	}
	for _, l := range visit.LabOrders {
		if l.TestName == "" {
			return fmt.Errorf("lab order test name cannot be empty")
		}
	}
	return nil
}

func (v *ValidationUtil) ValidateBooking(booking model.Booking) error {
	if booking.PatientID == "" {
		return fmt.Errorf("booking must reference a patient")
	}
	if booking.DoctorID == "" {
		return fmt.Errorf("booking must reference a doctor")
	}
	if booking.Date.IsZero() {
		return fmt.Errorf("booking date cannot be empty")
	}
	if booking.Slot == "" {
		return fmt.Errorf("booking slot cannot be empty")
	}
	if booking.Status != "" {
		if _, err := model.ParseBookingStatus(string(booking.Status)); err != nil {
			return fmt.Errorf("booking status must be one of pending, confirmed, cancelled, completed")
		}
	}
	return nil
}

var weekdays = map[string]bool{
	"monday": true, "tuesday": true, "wednesday": true, "thursday": true,
	"friday": true, "saturday": true, "sunday": true,
}

func (v *ValidationUtil) ValidateSchedule(schedule model.Schedule) error {
	if schedule.DoctorID == "" {
		return fmt.Errorf("schedule must reference a doctor")
	}
	if len(schedule.Days) == 0 {
		return fmt.Errorf("schedule must contain at least one day")
	}
	for _, day := range schedule.Days {
		if !weekdays[day.Weekday] {
			return fmt.Errorf("unknown weekday: %q", day.Weekday)
		}
	}
	return nil
}
