// model/booking.go
package model

import (
	"fmt"
	"time"
)

// BookingStatus is the lifecycle state of an appointment booking.
type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
	BookingCompleted BookingStatus = "completed"
)

// ParseBookingStatus validates a raw status string.
func ParseBookingStatus(s string) (BookingStatus, error) {
	switch BookingStatus(s) {
	case BookingPending, BookingConfirmed, BookingCancelled, BookingCompleted:
		return BookingStatus(s), nil
	}
	return "", fmt.Errorf("unknown booking status: %q", s)
}

// Booking is an appointment booking for a patient with a doctor.
type Booking struct {
	ID        string        `json:"id" bson:"_id"`
	PatientID string        `json:"patientId" bson:"patientId"`
	DoctorID  string        `json:"doctorId" bson:"doctorId"`
	Date      time.Time     `json:"date" bson:"date"`
	Slot      string        `json:"slot" bson:"slot"`
	Reason    string        `json:"reason,omitempty" bson:"reason,omitempty"`
	Status    BookingStatus `json:"status" bson:"status"`
	CreatedBy string        `json:"createdBy" bson:"createdBy"`
	CreatedAt time.Time     `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt" bson:"updatedAt"`
}

// BookingFilter narrows booking listings.
type BookingFilter struct {
	DoctorID  string
	PatientID string
	Status    string
}
