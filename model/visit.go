// model/visit.go
package model

import "time"

// Visit is a scheduled visit with its structured medical sub-documents.
type Visit struct {
	ID            string         `json:"id" bson:"_id"`
	PatientID     string         `json:"patientId" bson:"patientId"`
	DoctorID      string         `json:"doctorId" bson:"doctorId"`
	Date          time.Time      `json:"date" bson:"date"`
	Reason        string         `json:"reason,omitempty" bson:"reason,omitempty"`
	Diagnosis     string         `json:"diagnosis,omitempty" bson:"diagnosis,omitempty"`
	Notes         string         `json:"notes,omitempty" bson:"notes,omitempty"`
	Vitals        *Vitals        `json:"vitals,omitempty" bson:"vitals,omitempty"`
	Prescriptions []Prescription `json:"prescriptions,omitempty" bson:"prescriptions,omitempty"`
	LabOrders     []LabOrder     `json:"labOrders,omitempty" bson:"labOrders,omitempty"`
	CreatedBy     string         `json:"createdBy" bson:"createdBy"`
	CreatedAt     time.Time      `json:"createdAt" bson:"createdAt"`
	UpdatedAt     time.Time      `json:"updatedAt" bson:"updatedAt"`
}

// Vitals recorded at the start of a visit.
type Vitals struct {
	Temperature   float64 `json:"temperature,omitempty" bson:"temperature,omitempty"`
	Pulse         int     `json:"pulse,omitempty" bson:"pulse,omitempty"`
	BloodPressure string  `json:"bloodPressure,omitempty" bson:"bloodPressure,omitempty"`
	WeightKg      float64 `json:"weightKg,omitempty" bson:"weightKg,omitempty"`
	HeightCm      float64 `json:"heightCm,omitempty" bson:"heightCm,omitempty"`
}

// Prescription is a single prescribed medication line.
type Prescription struct {
	Medication string `json:"medication" bson:"medication"`
	Dosage     string `json:"dosage" bson:"dosage"`
	Frequency  string `json:"frequency,omitempty" bson:"frequency,omitempty"`
	Duration   string `json:"duration,omitempty" bson:"duration,omitempty"`
}

// LabOrder is a lab test requested during a visit.
type LabOrder struct {
	TestName string `json:"testName" bson:"testName"`
	Status   string `json:"status,omitempty" bson:"status,omitempty"`
	Result   string `json:"result,omitempty" bson:"result,omitempty"`
}
