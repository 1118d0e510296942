// util/validation_util_test.go
package util_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/clinova/api/model"
	"github.com/clinova/api/util"
)

func validRegistration() model.RegisterInput {
	return model.RegisterInput{
		Name:     "Jordan Smith",
		Email:    "jordan@example.com",
		Password: "Sup3r$ecret",
		Role:     "doctor",
	}
}

func TestValidateRegistration(t *testing.T) {
	v := util.NewValidationUtil()

	t.Run("ValidInput", func(t *testing.T) {
		assert.Empty(t, v.ValidateRegistration(validRegistration()))
	})

	t.Run("PatientRoleIsAccepted", func(t *testing.T) {
		input := validRegistration()
		input.Role = "patient"
		assert.Empty(t, v.ValidateRegistration(input))
	})

	t.Run("CollectsEveryViolation", func(t *testing.T) {
		input := model.RegisterInput{
			Name:     "J",
			Email:    "not-an-email",
			Password: "short",
			Role:     "superuser",
		}
		violations := v.ValidateRegistration(input)

		assert.Contains(t, violations, "name must be between 2 and 50 characters")
		assert.Contains(t, violations, "email must be a valid email address")
		assert.Contains(t, violations, "password must be at least 8 characters long")
		assert.Contains(t, violations, "role must be one of admin, doctor, staff, patient")
		assert.GreaterOrEqual(t, len(violations), 4)
	})

	t.Run("RoleIsCaseSensitive", func(t *testing.T) {
		input := validRegistration()
		input.Role = "Admin"
		violations := v.ValidateRegistration(input)
		assert.Contains(t, violations, "role must be one of admin, doctor, staff, patient")
	})

	passwordCases := []struct {
		name      string
		password  string
		violation string
	}{
		{"TooShort", "Ab1$xyz", "password must be at least 8 characters long"},
		{"NoLowercase", "PASSWORD1$", "password must contain a lowercase letter"},
		{"NoUppercase", "password1$", "password must contain an uppercase letter"},
		{"NoDigit", "Password$$", "password must contain a digit"},
		{"NoSymbol", "Password11", "password must contain a symbol"},
	}
	for _, tc := range passwordCases {
		t.Run("Password_"+tc.name, func(t *testing.T) {
			input := validRegistration()
			input.Password = tc.password
			assert.Contains(t, v.ValidateRegistration(input), tc.violation)
		})
	}
}

func TestValidateBooking(t *testing.T) {
	v := util.NewValidationUtil()

	booking := model.Booking{
		PatientID: "p1",
		DoctorID:  "d1",
		Date:      time.Now(),
		Slot:      "09:00-09:30",
	}

	t.Run("Valid", func(t *testing.T) {
		assert.NoError(t, v.ValidateBooking(booking))
	})

	t.Run("MissingSlot", func(t *testing.T) {
		b := booking
		b.Slot = ""
		assert.Error(t, v.ValidateBooking(b))
	})

	t.Run("UnknownStatus", func(t *testing.T) {
		b := booking
		b.Status = model.BookingStatus("rescheduled")
		assert.Error(t, v.ValidateBooking(b))
	})
}

func TestValidateSchedule(t *testing.T) {
	v := util.NewValidationUtil()

	t.Run("Valid", func(t *testing.T) {
		schedule := model.Schedule{
			DoctorID: "d1",
			Days: []model.DaySlot{
				{Weekday: "monday", Slots: []string{"09:00-09:30"}},
			},
		}
		assert.NoError(t, v.ValidateSchedule(schedule))
	})

	t.Run("UnknownWeekday", func(t *testing.T) {
		schedule := model.Schedule{
			DoctorID: "d1",
			Days: []model.DaySlot{
				{Weekday: "someday", Slots: []string{"09:00-09:30"}},
			},
		}
		assert.Error(t, v.ValidateSchedule(schedule))
	})
}
