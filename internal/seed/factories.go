package seed

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"fittrack/internal/clock"
	"fittrack/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Factory builds demo entities and persists them to the database.
type Factory struct {
	db  *gorm.DB
	rng *rand.Rand
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB) *Factory {
	gofakeit.Seed(time.Now().UnixNano())
	return &Factory{db: db, rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// CreateUser inserts a demo account. All demo accounts share the password
// "password123" so they are easy to log into locally.
func (f *Factory) CreateUser() (*models.User, error) {
	hashed, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)

	age := f.rng.Intn(42) + 18
	gender := models.GenderMale
	if f.rng.Intn(2) == 0 {
		gender = models.GenderFemale
	}
	weight := 50 + f.rng.Float64()*50
	height := 150 + f.rng.Float64()*45
	levels := []string{models.ActivityLow, models.ActivityModerate, models.ActivityHigh}
	activity := levels[f.rng.Intn(len(levels))]

	user := &models.User{
		FullName:      gofakeit.Name(),
		Email:         gofakeit.Email(),
		Password:      string(hashed),
		Age:           &age,
		Gender:        &gender,
		WeightKg:      &weight,
		HeightCm:      &height,
		ActivityLevel: &activity,
	}
	if err := f.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// CreateMealHistory logs count meal entries for the user spread over the
// last 14 days.
func (f *Factory) CreateMealHistory(user *models.User, count int) error {
	var items []models.FoodItem
	if err := f.db.Find(&items).Error; err != nil {
		return err
	}
	if len(items) == 0 {
		return fmt.Errorf("seed: no food items; seed the catalog first")
	}

	for i := 0; i < count; i++ {
		item := items[f.rng.Intn(len(items))]
		daysBack := f.rng.Intn(14)
		consumed := time.Now().Add(-time.Duration(daysBack)*24*time.Hour -
			time.Duration(f.rng.Intn(12))*time.Hour)
		entry := models.MealEntry{
			UserID:        user.ID,
			FoodItemID:    item.ID,
			QuantityGrams: float64(f.rng.Intn(28)+3) * 10,
			MealDate:      consumed.Format(clock.DateLayout),
			ConsumedAt:    consumed,
		}
		if err := f.db.Create(&entry).Error; err != nil {
			return err
		}
	}
	return nil
}

// CreateWorkoutHistory logs count completed workouts for the user spread
// over the last 14 days, based on random catalog templates.
func (f *Factory) CreateWorkoutHistory(user *models.User, count int) error {
	var templates []models.WorkoutTemplate
	if err := f.db.Preload("Type").Find(&templates).Error; err != nil {
		return err
	}
	if len(templates) == 0 {
		return fmt.Errorf("seed: no workout templates; seed the catalog first")
	}

	for i := 0; i < count; i++ {
		tpl := templates[f.rng.Intn(len(templates))]
		daysBack := f.rng.Intn(14)
		completed := time.Now().Add(-time.Duration(daysBack)*24*time.Hour -
			time.Duration(f.rng.Intn(12))*time.Hour)
		typeName := "General"
		if tpl.Type != nil {
			typeName = tpl.Type.Name
		}
		workout := models.CompletedWorkout{
			UserID:                 user.ID,
			WorkoutTemplateID:      &tpl.ID,
			WorkoutName:            tpl.Name,
			WorkoutType:            typeName,
			PlannedDurationMinutes: tpl.DurationMinutes,
			ActualDurationMinutes:  tpl.DurationMinutes + f.rng.Intn(21) - 10,
			Intensity:              tpl.Intensity,
			WorkoutDate:            completed.Format(clock.DateLayout),
			CompletedAt:            completed,
		}
		if workout.ActualDurationMinutes <= 0 {
			workout.ActualDurationMinutes = tpl.DurationMinutes
		}
		if err := f.db.Create(&workout).Error; err != nil {
			return err
		}
	}
	return nil
}

// DemoData creates opts.NumUsers demo accounts, each with meal and workout
// history.
func (f *Factory) DemoData(opts Options) error {
	if opts.NumUsers <= 0 {
		return nil
	}
	meals := opts.MealsPerUser
	if meals <= 0 {
		meals = 25
	}
	workouts := opts.WorkoutsPerUser
	if workouts <= 0 {
		workouts = 8
	}

	for i := 0; i < opts.NumUsers; i++ {
		user, err := f.CreateUser()
		if err != nil {
			return err
		}
		if err := f.CreateMealHistory(user, meals); err != nil {
			return err
		}
		if err := f.CreateWorkoutHistory(user, workouts); err != nil {
			return err
		}
		log.Printf("seeded demo user %s", user.Email)
	}
	return nil
}
