package models

import "time"

// Portal roles. Every login belongs to exactly one of these.
const (
	RoleAdmin         = "admin"
	RoleHospitalAdmin = "hospital_admin"
	RoleDoctor        = "doctor"
	RolePatient       = "patient"
)

type User struct {
	ID           string    `json:"id" bson:"id"`
	Email        string    `json:"email" bson:"email"`
	Phone        string    `json:"phone,omitempty" bson:"phone,omitempty"`
	Name         string    `json:"name" bson:"name"`
	Role         string    `json:"role" bson:"role"`
	HospitalID   string    `json:"hospitalId,omitempty" bson:"hospitalId,omitempty"`
	Password     string    `json:"password,omitempty" bson:"password"`
	IsFirstLogin bool      `json:"isFirstLogin" bson:"isFirstLogin"`
	Token        string    `json:"token,omitempty" bson:"token,omitempty"`
	IsActive     bool      `json:"isActive" bson:"isActive"`
	CreatedAt    time.Time `json:"createdAt" bson:"createdAt"`
}
