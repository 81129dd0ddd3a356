package service

import (
	"context"
	"math"

	"fittrack/internal/cache"
	"fittrack/internal/clock"
	"fittrack/internal/models"
	"fittrack/internal/observability"
	"fittrack/internal/repository"
)

const (
	workoutHistoryDefault = 50
	workoutHistoryMax     = 365

	randomTemplatesDefault = 3
	randomTemplatesMax     = 10

	recentDefault = 50
	recentMax     = 100
)

type WorkoutService struct {
	workouts repository.WorkoutRepository
	prefs    repository.PreferenceRepository
	clk      clock.Clock
}

type CompleteWorkoutInput struct {
	UserID         uint
	TemplateID     *uint  `json:"template_id"`
	Name           string `json:"name"`
	Type           string `json:"type"`
	PlannedMinutes *int   `json:"planned_minutes"`
	ActualMinutes  int    `json:"actual_minutes"`
	Intensity      string `json:"intensity"`
	Notes          string `json:"notes"`
	WorkoutDate    string `json:"workout_date"`
}

// WorkoutDayView is the day's completed workouts with simple aggregates.
type WorkoutDayView struct {
	Date          string                    `json:"date"`
	Entries       []models.CompletedWorkout `json:"entries"`
	TotalCount    int                       `json:"total_count"`
	TotalMinutes  int                       `json:"total_minutes"`
	PerTypeCounts map[string]int            `json:"per_type_counts"`
}

// WeeklyStats summarizes the rolling seven-day window ending today.
type WeeklyStats struct {
	From           string         `json:"from"`
	To             string         `json:"to"`
	TotalWorkouts  int            `json:"total_workouts"`
	TotalMinutes   int            `json:"total_minutes"`
	AverageMinutes int            `json:"average_minutes"`
	ActiveDayCount int            `json:"active_day_count"`
	PerTypeCounts  map[string]int `json:"per_type_counts"`
}

func NewWorkoutService(workouts repository.WorkoutRepository, prefs repository.PreferenceRepository, clk clock.Clock) *WorkoutService {
	return &WorkoutService{workouts: workouts, prefs: prefs, clk: clk}
}

// CompleteWorkout records a finished workout. A template id fills in any
// missing name, type, intensity, or planned duration; planned duration falls
// back to the actual one and intensity to medium.
func (s *WorkoutService) CompleteWorkout(ctx context.Context, in CompleteWorkoutInput) (*models.CompletedWorkout, error) {
	if in.TemplateID != nil {
		tpl, err := s.workouts.GetTemplate(ctx, *in.TemplateID)
		if err != nil {
			return nil, err
		}
		if in.Name == "" {
			in.Name = tpl.Name
		}
		if in.Type == "" && tpl.Type != nil {
			in.Type = tpl.Type.Name
		}
		if in.Intensity == "" {
			in.Intensity = tpl.Intensity
		}
		if in.PlannedMinutes == nil {
			in.PlannedMinutes = &tpl.DurationMinutes
		}
	}

	if in.Name == "" {
		return nil, models.NewValidationError("Workout name is required")
	}
	if in.Type == "" {
		return nil, models.NewValidationError("Workout type is required")
	}
	if in.ActualMinutes <= 0 {
		return nil, models.NewValidationError("Actual minutes must be greater than zero")
	}
	if in.Intensity == "" {
		in.Intensity = models.IntensityMedium
	}
	if !models.ValidIntensity(in.Intensity) {
		return nil, models.NewValidationError("Intensity must be light, medium, or high")
	}

	planned := in.ActualMinutes
	if in.PlannedMinutes != nil {
		if *in.PlannedMinutes <= 0 {
			return nil, models.NewValidationError("Planned minutes must be greater than zero")
		}
		planned = *in.PlannedMinutes
	}

	date := in.WorkoutDate
	if date == "" {
		date = s.clk.Today()
	} else if !clock.ValidDate(date) {
		return nil, models.NewValidationError("Date must be formatted YYYY-MM-DD")
	}

	workout := &models.CompletedWorkout{
		UserID:                 in.UserID,
		WorkoutTemplateID:      in.TemplateID,
		WorkoutName:            in.Name,
		WorkoutType:            in.Type,
		PlannedDurationMinutes: planned,
		ActualDurationMinutes:  in.ActualMinutes,
		Intensity:              in.Intensity,
		WorkoutDate:            date,
		Notes:                  in.Notes,
		CompletedAt:            s.clk.Now(),
	}
	if err := s.workouts.Create(ctx, workout); err != nil {
		return nil, err
	}
	observability.LedgerWrites.WithLabelValues("workout", "add").Inc()
	return workout, nil
}

func (s *WorkoutService) RemoveWorkout(ctx context.Context, userID, entryID uint) error {
	if err := s.workouts.Delete(ctx, userID, entryID); err != nil {
		return err
	}
	observability.LedgerWrites.WithLabelValues("workout", "remove").Inc()
	return nil
}

// TodayView returns the workouts completed on the caller's current date.
func (s *WorkoutService) TodayView(ctx context.Context, userID uint) (*WorkoutDayView, error) {
	today := s.clk.Today()
	entries, err := s.workouts.ListByDate(ctx, userID, today)
	if err != nil {
		return nil, err
	}

	view := &WorkoutDayView{Date: today, Entries: entries, PerTypeCounts: map[string]int{}}
	view.TotalCount = len(entries)
	for _, w := range entries {
		view.TotalMinutes += w.ActualDurationMinutes
		view.PerTypeCounts[w.WorkoutType]++
	}
	return view, nil
}

// WeeklyStats folds the workouts of the last seven calendar days, today
// inclusive. The window is recomputed on every call.
func (s *WorkoutService) WeeklyStats(ctx context.Context, userID uint) (*WeeklyStats, error) {
	to := s.clk.Today()
	from := clock.AddDays(to, -6)

	workouts, err := s.workouts.ListRange(ctx, userID, from, to)
	if err != nil {
		return nil, err
	}

	stats := &WeeklyStats{From: from, To: to, PerTypeCounts: map[string]int{}}
	activeDays := map[string]struct{}{}
	for _, w := range workouts {
		stats.TotalWorkouts++
		stats.TotalMinutes += w.ActualDurationMinutes
		stats.PerTypeCounts[w.WorkoutType]++
		activeDays[w.WorkoutDate] = struct{}{}
	}
	stats.ActiveDayCount = len(activeDays)
	if stats.TotalWorkouts > 0 {
		stats.AverageMinutes = int(math.Round(float64(stats.TotalMinutes) / float64(stats.TotalWorkouts)))
	}
	return stats, nil
}

// Recent lists individual completed workouts, newest first, optionally
// restricted to one date. limit is clamped to [1, 100] and defaults to 50.
func (s *WorkoutService) Recent(ctx context.Context, userID uint, date string, limit int) ([]models.CompletedWorkout, error) {
	if date != "" && !clock.ValidDate(date) {
		return nil, models.NewValidationError("Date must be formatted YYYY-MM-DD")
	}
	if limit <= 0 {
		limit = recentDefault
	}
	if limit > recentMax {
		limit = recentMax
	}
	return s.workouts.ListRecent(ctx, userID, date, limit)
}

// History returns per-day summaries, newest day first. limit is clamped to
// [1, 365] and defaults to 50 when zero or negative.
func (s *WorkoutService) History(ctx context.Context, userID uint, limit int) ([]repository.WorkoutDaySummary, error) {
	if limit <= 0 {
		limit = workoutHistoryDefault
	}
	if limit > workoutHistoryMax {
		limit = workoutHistoryMax
	}
	return s.workouts.DaySummaries(ctx, userID, limit)
}

// ListWorkoutTypes is a cached read-only catalog passthrough.
func (s *WorkoutService) ListWorkoutTypes(ctx context.Context) ([]repository.TypeCount, error) {
	var types []repository.TypeCount
	err := cache.Aside(ctx, cache.WorkoutTypesKey(), &types, cache.CatalogTTL, func() error {
		var ferr error
		types, ferr = s.workouts.ListTypes(ctx)
		return ferr
	})
	if err != nil {
		return nil, err
	}
	return types, nil
}

func (s *WorkoutService) ListTemplates(ctx context.Context, fitnessLevel string, typeID *uint) ([]models.WorkoutTemplate, error) {
	if fitnessLevel != "" && !models.ValidFitnessLevel(fitnessLevel) {
		return nil, models.NewValidationError("Fitness level must be beginner, intermediate, or advanced")
	}
	if typeID != nil {
		return s.workouts.ListTemplates(ctx, fitnessLevel, typeID)
	}
	var templates []models.WorkoutTemplate
	err := cache.Aside(ctx, cache.WorkoutTemplatesKey(fitnessLevel), &templates, cache.CatalogTTL, func() error {
		var ferr error
		templates, ferr = s.workouts.ListTemplates(ctx, fitnessLevel, nil)
		return ferr
	})
	if err != nil {
		return nil, err
	}
	return templates, nil
}

// RandomTemplates suggests count templates at the caller's stored fitness
// level; users without a preferences row get beginner suggestions.
func (s *WorkoutService) RandomTemplates(ctx context.Context, userID uint, count int) ([]models.WorkoutTemplate, error) {
	if count <= 0 {
		count = randomTemplatesDefault
	}
	if count > randomTemplatesMax {
		count = randomTemplatesMax
	}

	level := models.DefaultFitnessLevel
	prefs, err := s.prefs.GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if prefs != nil {
		level = prefs.FitnessLevel
	}

	return s.workouts.RandomTemplates(ctx, level, count)
}
