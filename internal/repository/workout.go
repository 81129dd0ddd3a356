package repository

import (
	"context"

	"fittrack/internal/models"

	"gorm.io/gorm"
)

// WorkoutDaySummary aggregates one day of a user's completed workouts.
type WorkoutDaySummary struct {
	Date         string `json:"date"`
	WorkoutCount int    `json:"workout_count"`
	TotalMinutes int    `json:"total_minutes"`
}

// WorkoutLifetime aggregates a user's whole workout ledger.
type WorkoutLifetime struct {
	TotalWorkouts int64 `json:"total_workouts"`
	TotalMinutes  int64 `json:"total_minutes"`
	ActiveDays    int64 `json:"active_days"`
}

// TypeCount is a workout type annotated with how many templates reference it.
type TypeCount struct {
	models.WorkoutType
	TemplateCount int64 `json:"template_count"`
}

// WorkoutRepository defines persistence operations for the workout ledger and
// the workout catalog. Ledger operations are scoped to the owning user.
type WorkoutRepository interface {
	Create(ctx context.Context, workout *models.CompletedWorkout) error
	Delete(ctx context.Context, userID, id uint) error
	ListByDate(ctx context.Context, userID uint, date string) ([]models.CompletedWorkout, error)
	ListRange(ctx context.Context, userID uint, from, to string) ([]models.CompletedWorkout, error)
	ListRecent(ctx context.Context, userID uint, date string, limit int) ([]models.CompletedWorkout, error)
	DaySummaries(ctx context.Context, userID uint, limit int) ([]WorkoutDaySummary, error)
	Lifetime(ctx context.Context, userID uint) (*WorkoutLifetime, error)

	GetTemplate(ctx context.Context, id uint) (*models.WorkoutTemplate, error)
	ListTypes(ctx context.Context) ([]TypeCount, error)
	ListTemplates(ctx context.Context, fitnessLevel string, typeID *uint) ([]models.WorkoutTemplate, error)
	RandomTemplates(ctx context.Context, fitnessLevel string, count int) ([]models.WorkoutTemplate, error)
}

type workoutRepository struct {
	db *gorm.DB
}

// NewWorkoutRepository returns a new WorkoutRepository implementation.
func NewWorkoutRepository(db *gorm.DB) WorkoutRepository {
	return &workoutRepository{db: db}
}

func (r *workoutRepository) Create(ctx context.Context, workout *models.CompletedWorkout) error {
	if err := r.db.WithContext(ctx).Create(workout).Error; err != nil {
		return classify(err, "Workout")
	}
	return nil
}

func (r *workoutRepository) Delete(ctx context.Context, userID, id uint) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&models.CompletedWorkout{})
	if res.Error != nil {
		return classify(res.Error, "Workout")
	}
	if res.RowsAffected == 0 {
		return models.NewNotFoundError("Workout")
	}
	return nil
}

func (r *workoutRepository) ListByDate(ctx context.Context, userID uint, date string) ([]models.CompletedWorkout, error) {
	var workouts []models.CompletedWorkout
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND workout_date = ?", userID, date).
		Order("completed_at ASC, id ASC").
		Find(&workouts).Error
	if err != nil {
		return nil, classify(err, "Workout")
	}
	return workouts, nil
}

// ListRange returns workouts with from <= workout_date <= to, oldest first.
func (r *workoutRepository) ListRange(ctx context.Context, userID uint, from, to string) ([]models.CompletedWorkout, error) {
	var workouts []models.CompletedWorkout
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND workout_date >= ? AND workout_date <= ?", userID, from, to).
		Order("workout_date ASC, completed_at ASC, id ASC").
		Find(&workouts).Error
	if err != nil {
		return nil, classify(err, "Workout")
	}
	return workouts, nil
}

// ListRecent returns the newest workouts first, optionally pinned to a single
// date when date is non-empty.
func (r *workoutRepository) ListRecent(ctx context.Context, userID uint, date string, limit int) ([]models.CompletedWorkout, error) {
	var workouts []models.CompletedWorkout
	q := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("workout_date DESC, completed_at DESC, id DESC").
		Limit(limit)
	if date != "" {
		q = q.Where("workout_date = ?", date)
	}
	if err := q.Find(&workouts).Error; err != nil {
		return nil, classify(err, "Workout")
	}
	return workouts, nil
}

func (r *workoutRepository) DaySummaries(ctx context.Context, userID uint, limit int) ([]WorkoutDaySummary, error) {
	var summaries []WorkoutDaySummary
	err := r.db.WithContext(ctx).
		Model(&models.CompletedWorkout{}).
		Select(`workout_date AS date,
			COUNT(*) AS workout_count,
			SUM(actual_duration_minutes) AS total_minutes`).
		Where("user_id = ?", userID).
		Group("workout_date").
		Order("workout_date DESC").
		Limit(limit).
		Scan(&summaries).Error
	if err != nil {
		return nil, classify(err, "Workout")
	}
	return summaries, nil
}

// Lifetime aggregates the user's entire ledger. An empty ledger yields zeros.
func (r *workoutRepository) Lifetime(ctx context.Context, userID uint) (*WorkoutLifetime, error) {
	var lifetime WorkoutLifetime
	err := r.db.WithContext(ctx).
		Model(&models.CompletedWorkout{}).
		Select(`COUNT(*) AS total_workouts,
			COALESCE(SUM(actual_duration_minutes), 0) AS total_minutes,
			COUNT(DISTINCT workout_date) AS active_days`).
		Where("user_id = ?", userID).
		Scan(&lifetime).Error
	if err != nil {
		return nil, classify(err, "Workout")
	}
	return &lifetime, nil
}

func (r *workoutRepository) GetTemplate(ctx context.Context, id uint) (*models.WorkoutTemplate, error) {
	var tpl models.WorkoutTemplate
	if err := r.db.WithContext(ctx).Preload("Type").First(&tpl, id).Error; err != nil {
		return nil, classify(err, "Workout template")
	}
	return &tpl, nil
}

func (r *workoutRepository) ListTypes(ctx context.Context) ([]TypeCount, error) {
	var types []TypeCount
	err := r.db.WithContext(ctx).
		Model(&models.WorkoutType{}).
		Select("workout_types.*, COUNT(workout_templates.id) AS template_count").
		Joins("LEFT JOIN workout_templates ON workout_templates.type_id = workout_types.id").
		Group("workout_types.id").
		Order("workout_types.name ASC").
		Scan(&types).Error
	if err != nil {
		return nil, classify(err, "Workout type")
	}
	return types, nil
}

func (r *workoutRepository) ListTemplates(ctx context.Context, fitnessLevel string, typeID *uint) ([]models.WorkoutTemplate, error) {
	var templates []models.WorkoutTemplate
	q := r.db.WithContext(ctx).Preload("Type").Order("name ASC")
	if fitnessLevel != "" {
		q = q.Where("fitness_level = ?", fitnessLevel)
	}
	if typeID != nil {
		q = q.Where("type_id = ?", *typeID)
	}
	if err := q.Find(&templates).Error; err != nil {
		return nil, classify(err, "Workout template")
	}
	return templates, nil
}

// RandomTemplates picks count templates at the user's fitness level in
// storage-random order. RANDOM() is understood by both Postgres and SQLite.
func (r *workoutRepository) RandomTemplates(ctx context.Context, fitnessLevel string, count int) ([]models.WorkoutTemplate, error) {
	var templates []models.WorkoutTemplate
	q := r.db.WithContext(ctx).Preload("Type").Order("RANDOM()").Limit(count)
	if fitnessLevel != "" {
		q = q.Where("fitness_level = ?", fitnessLevel)
	}
	if err := q.Find(&templates).Error; err != nil {
		return nil, classify(err, "Workout template")
	}
	return templates, nil
}
