// Package models contains data structures for the application's domain models.
package models

import "time"

// Allowed values for User.ActivityLevel.
const (
	ActivityLow      = "low"
	ActivityModerate = "moderate"
	ActivityHigh     = "high"
)

// Allowed values for User.Gender.
const (
	GenderMale   = "male"
	GenderFemale = "female"
)

// User represents an account in the fittrack application. The physical
// attributes are optional; metabolic recommendations stay unavailable until
// all of them are filled in.
type User struct {
	ID            uint     `gorm:"primaryKey" json:"id"`
	FullName      string   `gorm:"not null" json:"full_name"`
	Email         string   `gorm:"unique;not null" json:"email"`
	Password      string   `gorm:"not null" json:"-"`
	ProfilePic    string   `json:"profile_pic"`
	Age           *int     `json:"age,omitempty"`
	Gender        *string  `json:"gender,omitempty"`
	WeightKg      *float64 `json:"weight,omitempty"`
	HeightCm      *float64 `json:"height,omitempty"`
	ActivityLevel *string  `json:"activity_level,omitempty"`

	LastActiveAt *time.Time `json:"last_active_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// HasCompleteProfile reports whether every attribute needed for a calorie
// recommendation is present.
func (u *User) HasCompleteProfile() bool {
	return u.WeightKg != nil && u.HeightCm != nil && u.Age != nil && u.Gender != nil
}
