package models

import "time"

// WeeklySchedule is a recurring availability template. At most one exists
// per doctor; resubmitting replaces the fields but keeps the id.
type WeeklySchedule struct {
	ID          string    `json:"id" bson:"id"`
	DoctorID    string    `json:"doctorId" bson:"doctorId"`
	Monday      bool      `json:"monday" bson:"monday"`
	Tuesday     bool      `json:"tuesday" bson:"tuesday"`
	Wednesday   bool      `json:"wednesday" bson:"wednesday"`
	Thursday    bool      `json:"thursday" bson:"thursday"`
	Friday      bool      `json:"friday" bson:"friday"`
	Saturday    bool      `json:"saturday" bson:"saturday"`
	Sunday      bool      `json:"sunday" bson:"sunday"`
	StartTime   string    `json:"startTime" bson:"startTime"`
	EndTime     string    `json:"endTime" bson:"endTime"`
	MaxPatients int       `json:"maxPatients" bson:"maxPatients"`
	CreatedAt   time.Time `json:"createdAt" bson:"createdAt"`
}

// EnabledOn reports whether the template covers the given weekday.
func (w WeeklySchedule) EnabledOn(day time.Weekday) bool {
	switch day {
	case time.Monday:
		return w.Monday
	case time.Tuesday:
		return w.Tuesday
	case time.Wednesday:
		return w.Wednesday
	case time.Thursday:
		return w.Thursday
	case time.Friday:
		return w.Friday
	case time.Saturday:
		return w.Saturday
	case time.Sunday:
		return w.Sunday
	}
	return false
}
