package models

import "time"

// TimeSlot is a bounded-capacity window during which a doctor accepts
// appointments. Date is "2006-01-02", times are "15:04".
type TimeSlot struct {
	ID              string    `json:"id" bson:"id"`
	DoctorID        string    `json:"doctorId" bson:"doctorId"`
	Date            string    `json:"date" bson:"date"`
	StartTime       string    `json:"startTime" bson:"startTime"`
	EndTime         string    `json:"endTime" bson:"endTime"`
	IsAvailable     bool      `json:"isAvailable" bson:"isAvailable"`
	MaxPatients     int       `json:"maxPatients" bson:"maxPatients"`
	CurrentPatients int       `json:"currentPatients" bson:"currentPatients"`
	Version         int64     `json:"version" bson:"version"`
	CreatedAt       time.Time `json:"createdAt" bson:"createdAt"`
}

// HasCapacity reports whether another booking still fits.
func (s TimeSlot) HasCapacity() bool {
	return s.CurrentPatients < s.MaxPatients
}

// SyncAvailability recomputes the stored availability flag from occupancy.
// Every occupancy write goes through this so the flag cannot drift.
func (s *TimeSlot) SyncAvailability() {
	s.IsAvailable = s.HasCapacity()
}
