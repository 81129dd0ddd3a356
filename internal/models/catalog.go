package models

import "time"

// Intensity values shared by workout templates and completed workouts.
const (
	IntensityLight  = "light"
	IntensityMedium = "medium"
	IntensityHigh   = "high"
)

// Fitness levels for templates and user preferences.
const (
	LevelBeginner     = "beginner"
	LevelIntermediate = "intermediate"
	LevelAdvanced     = "advanced"
)

// FoodCategory groups catalog food items (fruits, vegetables, dairy, ...).
type FoodCategory struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"unique;not null" json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// FoodItem is a read-only catalog entry with nutrient densities per 100 grams.
type FoodItem struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	Name            string    `gorm:"not null;index" json:"name"`
	CategoryID      *uint     `json:"category_id,omitempty"`
	CaloriesPer100g float64   `gorm:"column:calories_per_100g;not null" json:"calories_per_100g"`
	ProteinPer100g  float64   `gorm:"column:protein_per_100g;not null;default:0" json:"protein_per_100g"`
	FatPer100g      float64   `gorm:"column:fat_per_100g;not null;default:0" json:"fat_per_100g"`
	CarbsPer100g    float64   `gorm:"column:carbs_per_100g;not null;default:0" json:"carbs_per_100g"`
	Description     string    `json:"description"`
	CreatedAt       time.Time `json:"created_at"`

	Category *FoodCategory `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
}

// WorkoutType groups workout templates (cardio, strength, ...).
type WorkoutType struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"unique;not null" json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// WorkoutTemplate is a read-only catalog entry describing a suggested workout.
type WorkoutTemplate struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	Name            string    `gorm:"not null" json:"name"`
	TypeID          *uint     `json:"type_id,omitempty"`
	DurationMinutes int       `gorm:"not null" json:"duration_minutes"`
	Intensity       string    `gorm:"not null" json:"intensity"`
	FitnessLevel    string    `gorm:"not null;index" json:"fitness_level"`
	Description     string    `json:"description"`
	Equipment       string    `json:"equipment"`
	CreatedAt       time.Time `json:"created_at"`

	Type *WorkoutType `gorm:"foreignKey:TypeID" json:"type,omitempty"`
}

// ValidIntensity reports whether s is a recognized intensity value.
func ValidIntensity(s string) bool {
	return s == IntensityLight || s == IntensityMedium || s == IntensityHigh
}

// ValidFitnessLevel reports whether s is a recognized fitness level.
func ValidFitnessLevel(s string) bool {
	return s == LevelBeginner || s == LevelIntermediate || s == LevelAdvanced
}
