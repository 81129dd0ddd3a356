// Package service implements the application's business logic on top of the
// repository layer. Services validate input, enforce ownership, and translate
// storage results into API-shaped values.
package service

import (
	"math"

	"fittrack/internal/models"
)

// Activity multipliers applied to BMR. Unrecognized levels fall back to the
// sedentary multiplier.
const (
	activityMultiplierLow      = 1.2
	activityMultiplierModerate = 1.55
	activityMultiplierHigh     = 1.725
)

// BMR computes basal metabolic rate with the Mifflin-St Jeor equation. The
// second return is false when gender is neither male nor female, which
// callers treat as an incomplete profile.
func BMR(weightKg, heightCm float64, ageYears int, gender string) (float64, bool) {
	base := 10*weightKg + 6.25*heightCm - 5*float64(ageYears)
	switch gender {
	case models.GenderMale:
		return base + 5, true
	case models.GenderFemale:
		return base - 161, true
	default:
		return 0, false
	}
}

// TDEE scales a BMR by the activity level multiplier and rounds to the
// nearest whole kilocalorie.
func TDEE(bmr float64, activityLevel string) int {
	multiplier := activityMultiplierLow
	switch activityLevel {
	case models.ActivityModerate:
		multiplier = activityMultiplierModerate
	case models.ActivityHigh:
		multiplier = activityMultiplierHigh
	}
	return int(math.Round(bmr * multiplier))
}

// RecommendedCalories derives a daily calorie target from the user's profile.
// It returns (0, false) unless weight, height, age, and a recognized gender
// are all present.
func RecommendedCalories(user *models.User) (int, bool) {
	if user == nil || !user.HasCompleteProfile() {
		return 0, false
	}
	bmr, ok := BMR(*user.WeightKg, *user.HeightCm, *user.Age, *user.Gender)
	if !ok {
		return 0, false
	}
	level := ""
	if user.ActivityLevel != nil {
		level = *user.ActivityLevel
	}
	return TDEE(bmr, level), true
}

// round2 rounds to two decimal places. Meal totals are rounded per entry and
// again after summing so aggregates match what a client would compute from
// the day view.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
