package models

import (
	"math"
	"time"
)

// UserDetails holds the personal and health fields collected on the
// details step. HbA1c is optional and only kept on diabetes-track programs.
type UserDetails struct {
	FullName     string   `bson:"fullName" json:"fullName"`
	MobileNumber string   `bson:"mobileNumber" json:"mobileNumber"`
	Email        string   `bson:"email" json:"email"`
	HeightCm     float64  `bson:"heightCm" json:"heightCm"`
	WeightKg     float64  `bson:"weightKg" json:"weightKg"`
	HbA1c        *float64 `bson:"hba1c,omitempty" json:"hba1c,omitempty"`
	BMI          float64  `bson:"bmi,omitempty" json:"bmi,omitempty"`
}

// ComputeBMI derives weight/(height/100)^2 rounded to one decimal.
// It returns 0 when either input is missing or non-positive.
func ComputeBMI(heightCm, weightKg float64) float64 {
	if heightCm <= 0 || weightKg <= 0 {
		return 0
	}
	m := heightCm / 100
	return math.Round(weightKg/(m*m)*10) / 10
}

// Profile is the persisted user record created once the email is verified.
type Profile struct {
	ID        string      `bson:"id" json:"id"`
	Details   UserDetails `bson:"details" json:"details"`
	ProgramID string      `bson:"programId" json:"programId"`
	CreatedAt time.Time   `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time   `bson:"updatedAt" json:"updatedAt"`
}

// Nutritionist identifies the consultant assigned to a new user.
type Nutritionist struct {
	ID          string `bson:"id" json:"id"`
	Name        string `bson:"name" json:"name"`
	CalendarRef string `bson:"calendarRef" json:"calendarRef"`
}
