// model/schedule.go
package model

import "time"

// Schedule is a doctor's weekly availability, keyed by doctor id. One
// document per doctor; upserts replace the whole week.
type Schedule struct {
	ID        string    `json:"id" bson:"_id"`
	DoctorID  string    `json:"doctorId" bson:"doctorId"`
	Days      []DaySlot `json:"days" bson:"days"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
}

// DaySlot lists the bookable slots for one weekday.
type DaySlot struct {
	Weekday string   `json:"weekday" bson:"weekday"` // "monday" .. "sunday"
	Slots   []string `json:"slots" bson:"slots"`     // e.g. "09:00-09:30"
}
