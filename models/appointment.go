package models

import "time"

const (
	StatusScheduled = "scheduled"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// Appointment links a patient to a doctor's time slot. Date/start/end are
// copied from the slot at booking time. Appointments are never deleted,
// only moved between statuses.
type Appointment struct {
	ID         string    `json:"id" bson:"id"`
	PatientID  string    `json:"patientId" bson:"patientId"`
	DoctorID   string    `json:"doctorId" bson:"doctorId"`
	TimeSlotID string    `json:"timeSlotId" bson:"timeSlotId"`
	Date       string    `json:"date" bson:"date"`
	StartTime  string    `json:"startTime" bson:"startTime"`
	EndTime    string    `json:"endTime" bson:"endTime"`
	Status     string    `json:"status" bson:"status"`
	Notes      string    `json:"notes,omitempty" bson:"notes,omitempty"`
	Version    int64     `json:"version" bson:"version"`
	CreatedAt  time.Time `json:"createdAt" bson:"createdAt"`
}

// CanTransition reports whether the appointment may move to target.
// Completed and cancelled are terminal.
func (a Appointment) CanTransition(target string) bool {
	if a.Status != StatusScheduled {
		return false
	}
	return target == StatusCompleted || target == StatusCancelled
}
