package service

import (
	"context"

	"fittrack/internal/models"
	"fittrack/internal/repository"
)

type PreferenceService struct {
	prefs repository.PreferenceRepository
}

// UpdatePreferencesInput carries optional setting changes; nil fields are
// left untouched.
type UpdatePreferencesInput struct {
	UserID               uint
	FitnessLevel         *string `json:"fitness_level"`
	DailyCalorieGoal     *int    `json:"daily_calorie_goal"`
	NotificationsEnabled *bool   `json:"notifications_enabled"`
}

func NewPreferenceService(prefs repository.PreferenceRepository) *PreferenceService {
	return &PreferenceService{prefs: prefs}
}

// Get returns the user's settings, creating the default row on first access.
// This get-or-create is the only place a preferences row is born; signup
// deliberately does not create one, which keeps registration a single-row
// write. A concurrent first read may lose the insert race, in which case the
// winner's row is re-read.
func (s *PreferenceService) Get(ctx context.Context, userID uint) (*models.UserPreferences, error) {
	prefs, err := s.prefs.GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if prefs != nil {
		return prefs, nil
	}

	prefs = models.DefaultPreferences(userID)
	if err := s.prefs.Create(ctx, prefs); err != nil {
		if models.IsCode(err, models.CodeConflict) {
			return s.prefs.GetByUser(ctx, userID)
		}
		return nil, err
	}
	return prefs, nil
}

// Update applies the non-nil fields of in and returns the stored settings.
func (s *PreferenceService) Update(ctx context.Context, in UpdatePreferencesInput) (*models.UserPreferences, error) {
	if in.FitnessLevel == nil && in.DailyCalorieGoal == nil && in.NotificationsEnabled == nil {
		return nil, models.NewValidationError("No preference fields provided")
	}

	prefs, err := s.Get(ctx, in.UserID)
	if err != nil {
		return nil, err
	}

	if in.FitnessLevel != nil {
		if !models.ValidFitnessLevel(*in.FitnessLevel) {
			return nil, models.NewValidationError("Fitness level must be beginner, intermediate, or advanced")
		}
		prefs.FitnessLevel = *in.FitnessLevel
	}
	if in.DailyCalorieGoal != nil {
		if *in.DailyCalorieGoal <= 0 {
			return nil, models.NewValidationError("Daily calorie goal must be a positive integer")
		}
		prefs.DailyCalorieGoal = *in.DailyCalorieGoal
	}
	if in.NotificationsEnabled != nil {
		prefs.NotificationsEnabled = *in.NotificationsEnabled
	}

	if err := s.prefs.Save(ctx, prefs); err != nil {
		return nil, err
	}
	return prefs, nil
}
