package models

import "time"

// CompletedWorkout is an append-only record of a finished workout. Name, type
// and intensity are denormalized from the template (when one was used) so the
// history survives later template changes. Entries are never mutated after
// creation, only deleted.
type CompletedWorkout struct {
	ID                     uint      `gorm:"primaryKey" json:"id"`
	UserID                 uint      `gorm:"not null;index:idx_workout_user_date" json:"user_id"`
	WorkoutTemplateID      *uint     `json:"workout_template_id,omitempty"`
	WorkoutName            string    `gorm:"not null" json:"workout_name"`
	WorkoutType            string    `gorm:"not null" json:"workout_type"`
	PlannedDurationMinutes int       `gorm:"not null" json:"planned_duration_minutes"`
	ActualDurationMinutes  int       `gorm:"not null" json:"actual_duration_minutes"`
	Intensity              string    `gorm:"not null" json:"intensity"`
	WorkoutDate            string    `gorm:"type:date;not null;index:idx_workout_user_date" json:"workout_date"`
	Notes                  string    `json:"notes,omitempty"`
	CompletedAt            time.Time `json:"completed_at"`
}
