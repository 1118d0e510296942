// model/patient.go
package model

import "time"

// Patient is a clinic patient record.
type Patient struct {
	ID          string    `json:"id" bson:"_id"`
	Name        string    `json:"name" bson:"name"`
	Email       string    `json:"email,omitempty" bson:"email,omitempty"`
	Phone       string    `json:"phone" bson:"phone"`
	DateOfBirth string    `json:"dateOfBirth,omitempty" bson:"dateOfBirth,omitempty"`
	Gender      string    `json:"gender,omitempty" bson:"gender,omitempty"`
	Address     string    `json:"address,omitempty" bson:"address,omitempty"`
	BloodGroup  string    `json:"bloodGroup,omitempty" bson:"bloodGroup,omitempty"`
	CreatedBy   string    `json:"createdBy" bson:"createdBy"`
	CreatedAt   time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt" bson:"updatedAt"`
}

// PatientFilter narrows patient listings.
type PatientFilter struct {
	Name  string
	Phone string
}
