package models

import "time"

// Defaults applied when a preferences row is created lazily.
const (
	DefaultFitnessLevel     = LevelBeginner
	DefaultDailyCalorieGoal = 2000
)

// UserPreferences holds per-user mutable settings. The row is created on
// first access with defaults, never at signup; see PreferenceService.Get.
type UserPreferences struct {
	ID                   uint      `gorm:"primaryKey" json:"id"`
	UserID               uint      `gorm:"unique;not null" json:"user_id"`
	FitnessLevel         string    `gorm:"not null" json:"fitness_level"`
	DailyCalorieGoal     int       `gorm:"not null" json:"daily_calorie_goal"`
	NotificationsEnabled bool      `gorm:"not null;default:true" json:"notifications_enabled"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}

// DefaultPreferences returns the preferences row created on first access.
func DefaultPreferences(userID uint) *UserPreferences {
	return &UserPreferences{
		UserID:               userID,
		FitnessLevel:         DefaultFitnessLevel,
		DailyCalorieGoal:     DefaultDailyCalorieGoal,
		NotificationsEnabled: true,
	}
}
