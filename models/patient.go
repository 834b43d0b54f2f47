package models

import "time"

// Patient shares its id with the User record it signed up with.
type Patient struct {
	ID          string    `json:"id" bson:"id"`
	Name        string    `json:"name" bson:"name"`
	Email       string    `json:"email" bson:"email"`
	Phone       string    `json:"phone" bson:"phone"`
	Age         int       `json:"age,omitempty" bson:"age,omitempty"`
	Address     string    `json:"address,omitempty" bson:"address,omitempty"`
	DateOfBirth string    `json:"dateOfBirth,omitempty" bson:"dateOfBirth,omitempty"`
	Gender      string    `json:"gender,omitempty" bson:"gender,omitempty"`
	CreatedAt   time.Time `json:"createdAt" bson:"createdAt"`
}
