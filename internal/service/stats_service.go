package service

import (
	"context"

	"fittrack/internal/models"
	"fittrack/internal/repository"
)

type StatsService struct {
	users    repository.UserRepository
	meals    repository.MealRepository
	workouts repository.WorkoutRepository
	prefs    *PreferenceService
}

// Overview is a one-call account summary: profile, settings, lifetime ledger
// totals, and the calorie recommendation when the profile allows one.
type Overview struct {
	User                *models.User                `json:"user"`
	Preferences         *models.UserPreferences     `json:"preferences"`
	RecommendedCalories *int                        `json:"recommended_calories,omitempty"`
	Nutrition           *repository.MealLifetime    `json:"nutrition"`
	Workouts            *repository.WorkoutLifetime `json:"workouts"`
}

func NewStatsService(users repository.UserRepository, meals repository.MealRepository, workouts repository.WorkoutRepository, prefs *PreferenceService) *StatsService {
	return &StatsService{users: users, meals: meals, workouts: workouts, prefs: prefs}
}

func (s *StatsService) Overview(ctx context.Context, userID uint) (*Overview, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	prefs, err := s.prefs.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	nutrition, err := s.meals.Lifetime(ctx, userID)
	if err != nil {
		return nil, err
	}
	nutrition.TotalCalories = round2(nutrition.TotalCalories)
	workouts, err := s.workouts.Lifetime(ctx, userID)
	if err != nil {
		return nil, err
	}

	overview := &Overview{
		User:        user,
		Preferences: prefs,
		Nutrition:   nutrition,
		Workouts:    workouts,
	}
	if kcal, ok := RecommendedCalories(user); ok {
		overview.RecommendedCalories = &kcal
	}
	return overview, nil
}
