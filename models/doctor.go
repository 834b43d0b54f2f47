package models

import "time"

type Doctor struct {
	ID              string    `json:"id" bson:"id"`
	Name            string    `json:"name" bson:"name"`
	Email           string    `json:"email" bson:"email"`
	Phone           string    `json:"phone" bson:"phone"`
	Specialization  string    `json:"specialization" bson:"specialization"`
	Experience      int       `json:"experience" bson:"experience"`
	HospitalID      string    `json:"hospitalId" bson:"hospitalId"`
	HospitalName    string    `json:"hospitalName" bson:"hospitalName"`
	Qualification   string    `json:"qualification,omitempty" bson:"qualification,omitempty"`
	ConsultationFee int       `json:"consultationFee,omitempty" bson:"consultationFee,omitempty"`
	CreatedAt       time.Time `json:"createdAt" bson:"createdAt"`
}

// SearchFilters narrows a doctor search; empty fields match everything.
type SearchFilters struct {
	Specialization string `json:"specialization" form:"specialization"`
	DoctorName     string `json:"doctorName" form:"doctorName"`
	HospitalName   string `json:"hospitalName" form:"hospitalName"`
}
