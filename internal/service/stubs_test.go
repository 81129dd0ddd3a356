package service

import (
	"context"
	"errors"
	"testing"

	"fittrack/internal/models"
	"fittrack/internal/repository"
)

// Repo stubs shared by the service tests in this package. Each noop
// constructor returns a stub whose methods succeed with empty values; tests
// override the fn fields they care about.

type userRepoStub struct {
	getByIDFn    func(context.Context, uint) (*models.User, error)
	getByEmailFn func(context.Context, string) (*models.User, error)
	createFn     func(context.Context, *models.User) error
	updateFn     func(context.Context, *models.User) error
}

func (s *userRepoStub) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}
func (s *userRepoStub) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getByEmailFn(ctx, email)
}
func (s *userRepoStub) Create(ctx context.Context, user *models.User) error {
	return s.createFn(ctx, user)
}
func (s *userRepoStub) Update(ctx context.Context, user *models.User) error {
	return s.updateFn(ctx, user)
}

func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		getByIDFn:    func(context.Context, uint) (*models.User, error) { return &models.User{}, nil },
		getByEmailFn: func(context.Context, string) (*models.User, error) { return nil, nil },
		createFn:     func(context.Context, *models.User) error { return nil },
		updateFn:     func(context.Context, *models.User) error { return nil },
	}
}

type foodRepoStub struct {
	getItemFn        func(context.Context, uint) (*models.FoodItem, error)
	listItemsFn      func(context.Context, *uint) ([]models.FoodItem, error)
	listCategoriesFn func(context.Context) ([]repository.CategoryCount, error)
	searchFn         func(context.Context, string, *uint, int) ([]models.FoodItem, error)
}

func (s *foodRepoStub) GetItem(ctx context.Context, id uint) (*models.FoodItem, error) {
	return s.getItemFn(ctx, id)
}
func (s *foodRepoStub) ListItems(ctx context.Context, categoryID *uint) ([]models.FoodItem, error) {
	return s.listItemsFn(ctx, categoryID)
}
func (s *foodRepoStub) ListCategories(ctx context.Context) ([]repository.CategoryCount, error) {
	return s.listCategoriesFn(ctx)
}
func (s *foodRepoStub) Search(ctx context.Context, term string, categoryID *uint, limit int) ([]models.FoodItem, error) {
	return s.searchFn(ctx, term, categoryID, limit)
}

func noopFoodRepo() *foodRepoStub {
	return &foodRepoStub{
		getItemFn:        func(context.Context, uint) (*models.FoodItem, error) { return &models.FoodItem{}, nil },
		listItemsFn:      func(context.Context, *uint) ([]models.FoodItem, error) { return nil, nil },
		listCategoriesFn: func(context.Context) ([]repository.CategoryCount, error) { return nil, nil },
		searchFn:         func(context.Context, string, *uint, int) ([]models.FoodItem, error) { return nil, nil },
	}
}

type mealRepoStub struct {
	createFn         func(context.Context, *models.MealEntry) error
	getOwnedFn       func(context.Context, uint, uint) (*models.MealEntry, error)
	updateQuantityFn func(context.Context, uint, uint, float64) error
	deleteFn         func(context.Context, uint, uint) error
	deleteDayFn      func(context.Context, uint, string) (int64, error)
	listDayFn        func(context.Context, uint, string) ([]models.MealEntry, error)
	daySummariesFn   func(context.Context, uint, int) ([]repository.MealDaySummary, error)
	lifetimeFn       func(context.Context, uint) (*repository.MealLifetime, error)
}

func (s *mealRepoStub) Create(ctx context.Context, entry *models.MealEntry) error {
	return s.createFn(ctx, entry)
}
func (s *mealRepoStub) GetOwned(ctx context.Context, userID, id uint) (*models.MealEntry, error) {
	return s.getOwnedFn(ctx, userID, id)
}
func (s *mealRepoStub) UpdateQuantity(ctx context.Context, userID, id uint, qty float64) error {
	return s.updateQuantityFn(ctx, userID, id, qty)
}
func (s *mealRepoStub) Delete(ctx context.Context, userID, id uint) error {
	return s.deleteFn(ctx, userID, id)
}
func (s *mealRepoStub) DeleteDay(ctx context.Context, userID uint, date string) (int64, error) {
	return s.deleteDayFn(ctx, userID, date)
}
func (s *mealRepoStub) ListDay(ctx context.Context, userID uint, date string) ([]models.MealEntry, error) {
	return s.listDayFn(ctx, userID, date)
}
func (s *mealRepoStub) DaySummaries(ctx context.Context, userID uint, limit int) ([]repository.MealDaySummary, error) {
	return s.daySummariesFn(ctx, userID, limit)
}
func (s *mealRepoStub) Lifetime(ctx context.Context, userID uint) (*repository.MealLifetime, error) {
	return s.lifetimeFn(ctx, userID)
}

func noopMealRepo() *mealRepoStub {
	return &mealRepoStub{
		createFn:         func(context.Context, *models.MealEntry) error { return nil },
		getOwnedFn:       func(context.Context, uint, uint) (*models.MealEntry, error) { return &models.MealEntry{}, nil },
		updateQuantityFn: func(context.Context, uint, uint, float64) error { return nil },
		deleteFn:         func(context.Context, uint, uint) error { return nil },
		deleteDayFn:      func(context.Context, uint, string) (int64, error) { return 0, nil },
		listDayFn:        func(context.Context, uint, string) ([]models.MealEntry, error) { return nil, nil },
		daySummariesFn:   func(context.Context, uint, int) ([]repository.MealDaySummary, error) { return nil, nil },
		lifetimeFn: func(context.Context, uint) (*repository.MealLifetime, error) {
			return &repository.MealLifetime{}, nil
		},
	}
}

type workoutRepoStub struct {
	createFn          func(context.Context, *models.CompletedWorkout) error
	deleteFn          func(context.Context, uint, uint) error
	listByDateFn      func(context.Context, uint, string) ([]models.CompletedWorkout, error)
	listRangeFn       func(context.Context, uint, string, string) ([]models.CompletedWorkout, error)
	listRecentFn      func(context.Context, uint, string, int) ([]models.CompletedWorkout, error)
	daySummariesFn    func(context.Context, uint, int) ([]repository.WorkoutDaySummary, error)
	lifetimeFn        func(context.Context, uint) (*repository.WorkoutLifetime, error)
	getTemplateFn     func(context.Context, uint) (*models.WorkoutTemplate, error)
	listTypesFn       func(context.Context) ([]repository.TypeCount, error)
	listTemplatesFn   func(context.Context, string, *uint) ([]models.WorkoutTemplate, error)
	randomTemplatesFn func(context.Context, string, int) ([]models.WorkoutTemplate, error)
}

func (s *workoutRepoStub) Create(ctx context.Context, w *models.CompletedWorkout) error {
	return s.createFn(ctx, w)
}
func (s *workoutRepoStub) Delete(ctx context.Context, userID, id uint) error {
	return s.deleteFn(ctx, userID, id)
}
func (s *workoutRepoStub) ListByDate(ctx context.Context, userID uint, date string) ([]models.CompletedWorkout, error) {
	return s.listByDateFn(ctx, userID, date)
}
func (s *workoutRepoStub) ListRange(ctx context.Context, userID uint, from, to string) ([]models.CompletedWorkout, error) {
	return s.listRangeFn(ctx, userID, from, to)
}
func (s *workoutRepoStub) ListRecent(ctx context.Context, userID uint, date string, limit int) ([]models.CompletedWorkout, error) {
	return s.listRecentFn(ctx, userID, date, limit)
}
func (s *workoutRepoStub) DaySummaries(ctx context.Context, userID uint, limit int) ([]repository.WorkoutDaySummary, error) {
	return s.daySummariesFn(ctx, userID, limit)
}
func (s *workoutRepoStub) Lifetime(ctx context.Context, userID uint) (*repository.WorkoutLifetime, error) {
	return s.lifetimeFn(ctx, userID)
}
func (s *workoutRepoStub) GetTemplate(ctx context.Context, id uint) (*models.WorkoutTemplate, error) {
	return s.getTemplateFn(ctx, id)
}
func (s *workoutRepoStub) ListTypes(ctx context.Context) ([]repository.TypeCount, error) {
	return s.listTypesFn(ctx)
}
func (s *workoutRepoStub) ListTemplates(ctx context.Context, level string, typeID *uint) ([]models.WorkoutTemplate, error) {
	return s.listTemplatesFn(ctx, level, typeID)
}
func (s *workoutRepoStub) RandomTemplates(ctx context.Context, level string, count int) ([]models.WorkoutTemplate, error) {
	return s.randomTemplatesFn(ctx, level, count)
}

func noopWorkoutRepo() *workoutRepoStub {
	return &workoutRepoStub{
		createFn:     func(context.Context, *models.CompletedWorkout) error { return nil },
		deleteFn:     func(context.Context, uint, uint) error { return nil },
		listByDateFn: func(context.Context, uint, string) ([]models.CompletedWorkout, error) { return nil, nil },
		listRangeFn: func(context.Context, uint, string, string) ([]models.CompletedWorkout, error) {
			return nil, nil
		},
		listRecentFn: func(context.Context, uint, string, int) ([]models.CompletedWorkout, error) {
			return nil, nil
		},
		daySummariesFn: func(context.Context, uint, int) ([]repository.WorkoutDaySummary, error) {
			return nil, nil
		},
		lifetimeFn: func(context.Context, uint) (*repository.WorkoutLifetime, error) {
			return &repository.WorkoutLifetime{}, nil
		},
		getTemplateFn: func(context.Context, uint) (*models.WorkoutTemplate, error) {
			return &models.WorkoutTemplate{}, nil
		},
		listTypesFn: func(context.Context) ([]repository.TypeCount, error) { return nil, nil },
		listTemplatesFn: func(context.Context, string, *uint) ([]models.WorkoutTemplate, error) {
			return nil, nil
		},
		randomTemplatesFn: func(context.Context, string, int) ([]models.WorkoutTemplate, error) {
			return nil, nil
		},
	}
}

type prefRepoStub struct {
	getByUserFn func(context.Context, uint) (*models.UserPreferences, error)
	createFn    func(context.Context, *models.UserPreferences) error
	saveFn      func(context.Context, *models.UserPreferences) error
}

func (s *prefRepoStub) GetByUser(ctx context.Context, userID uint) (*models.UserPreferences, error) {
	return s.getByUserFn(ctx, userID)
}
func (s *prefRepoStub) Create(ctx context.Context, prefs *models.UserPreferences) error {
	return s.createFn(ctx, prefs)
}
func (s *prefRepoStub) Save(ctx context.Context, prefs *models.UserPreferences) error {
	return s.saveFn(ctx, prefs)
}

func noopPrefRepo() *prefRepoStub {
	return &prefRepoStub{
		getByUserFn: func(context.Context, uint) (*models.UserPreferences, error) { return nil, nil },
		createFn:    func(context.Context, *models.UserPreferences) error { return nil },
		saveFn:      func(context.Context, *models.UserPreferences) error { return nil },
	}
}

func assertCode(t *testing.T, err error, code string) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %s error, got nil", code)
	}
	var appErr *models.AppError
	if !errors.As(err, &appErr) || appErr.Code != code {
		t.Fatalf("expected %s app error, got %#v", code, err)
	}
}
