// Package seed provides database seeding utilities for development and
// testing: the built-in food and workout catalogs plus fake demo accounts.
package seed

import (
	"errors"

	"fittrack/internal/models"

	"gorm.io/gorm"
)

// Options configuration for the seeder.
type Options struct {
	NumUsers        int
	MealsPerUser    int
	WorkoutsPerUser int
	ShouldClean     bool
}

func uintPtr(v uint) *uint { return &v }

// Catalog inserts the built-in food and workout catalogs. It is idempotent:
// when food categories already exist the call is a no-op, so it is safe to
// run on every startup.
func Catalog(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.FoodCategory{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	categories := []models.FoodCategory{
		{Name: "Fruits", Description: "Fresh and dried fruits"},
		{Name: "Vegetables", Description: "Fresh vegetables and greens"},
		{Name: "Grains", Description: "Cereals, bread, and pasta"},
		{Name: "Dairy", Description: "Milk, cheese, and yogurt"},
		{Name: "Meat", Description: "Meat and poultry"},
		{Name: "Fish", Description: "Fish and seafood"},
		{Name: "Legumes", Description: "Beans, lentils, and peas"},
		{Name: "Nuts", Description: "Nuts and seeds"},
		{Name: "Sweets", Description: "Sugar, confectionery, and desserts"},
	}
	if err := db.Create(&categories).Error; err != nil {
		return err
	}
	byName := make(map[string]uint, len(categories))
	for _, c := range categories {
		byName[c.Name] = c.ID
	}

	items := []models.FoodItem{
		{Name: "Apple", CategoryID: uintPtr(byName["Fruits"]), CaloriesPer100g: 52, ProteinPer100g: 0.3, FatPer100g: 0.2, CarbsPer100g: 14},
		{Name: "Banana", CategoryID: uintPtr(byName["Fruits"]), CaloriesPer100g: 89, ProteinPer100g: 1.1, FatPer100g: 0.3, CarbsPer100g: 23},
		{Name: "Broccoli", CategoryID: uintPtr(byName["Vegetables"]), CaloriesPer100g: 34, ProteinPer100g: 2.8, FatPer100g: 0.4, CarbsPer100g: 7},
		{Name: "Carrot", CategoryID: uintPtr(byName["Vegetables"]), CaloriesPer100g: 41, ProteinPer100g: 0.9, FatPer100g: 0.2, CarbsPer100g: 10},
		{Name: "Oatmeal", CategoryID: uintPtr(byName["Grains"]), CaloriesPer100g: 68, ProteinPer100g: 2.4, FatPer100g: 1.4, CarbsPer100g: 12},
		{Name: "White Rice", CategoryID: uintPtr(byName["Grains"]), CaloriesPer100g: 130, ProteinPer100g: 2.7, FatPer100g: 0.3, CarbsPer100g: 28},
		{Name: "Milk", CategoryID: uintPtr(byName["Dairy"]), CaloriesPer100g: 42, ProteinPer100g: 3.4, FatPer100g: 1, CarbsPer100g: 5},
		{Name: "Chicken Breast", CategoryID: uintPtr(byName["Meat"]), CaloriesPer100g: 165, ProteinPer100g: 31, FatPer100g: 3.6, CarbsPer100g: 0},
		{Name: "Salmon", CategoryID: uintPtr(byName["Fish"]), CaloriesPer100g: 208, ProteinPer100g: 20, FatPer100g: 13, CarbsPer100g: 0},
		{Name: "Lentils", CategoryID: uintPtr(byName["Legumes"]), CaloriesPer100g: 116, ProteinPer100g: 9, FatPer100g: 0.4, CarbsPer100g: 20},
		{Name: "Almonds", CategoryID: uintPtr(byName["Nuts"]), CaloriesPer100g: 579, ProteinPer100g: 21, FatPer100g: 50, CarbsPer100g: 22},
		{Name: "Dark Chocolate", CategoryID: uintPtr(byName["Sweets"]), CaloriesPer100g: 546, ProteinPer100g: 4.9, FatPer100g: 31, CarbsPer100g: 61},
	}
	if err := db.Create(&items).Error; err != nil {
		return err
	}

	types := []models.WorkoutType{
		{Name: "Cardio", Description: "Endurance and aerobic exercise"},
		{Name: "Strength", Description: "Resistance and weight training"},
		{Name: "Flexibility", Description: "Stretching and mobility work"},
		{Name: "Sports", Description: "Team and racket sports"},
		{Name: "Mind & Body", Description: "Yoga, pilates, and breathing"},
	}
	if err := db.Create(&types).Error; err != nil {
		return err
	}
	typeByName := make(map[string]uint, len(types))
	for _, t := range types {
		typeByName[t.Name] = t.ID
	}

	templates := []models.WorkoutTemplate{
		{Name: "Easy Walk", TypeID: uintPtr(typeByName["Cardio"]), DurationMinutes: 30, Intensity: models.IntensityLight, FitnessLevel: models.LevelBeginner, Description: "A brisk 30-minute walk", Equipment: "none"},
		{Name: "Morning Run", TypeID: uintPtr(typeByName["Cardio"]), DurationMinutes: 30, Intensity: models.IntensityMedium, FitnessLevel: models.LevelIntermediate, Description: "Steady-pace outdoor run", Equipment: "running shoes"},
		{Name: "Interval Sprints", TypeID: uintPtr(typeByName["Cardio"]), DurationMinutes: 25, Intensity: models.IntensityHigh, FitnessLevel: models.LevelAdvanced, Description: "High-intensity sprint intervals", Equipment: "none"},
		{Name: "Bodyweight Basics", TypeID: uintPtr(typeByName["Strength"]), DurationMinutes: 20, Intensity: models.IntensityLight, FitnessLevel: models.LevelBeginner, Description: "Squats, push-ups, and planks", Equipment: "none"},
		{Name: "Full Body Dumbbells", TypeID: uintPtr(typeByName["Strength"]), DurationMinutes: 45, Intensity: models.IntensityMedium, FitnessLevel: models.LevelIntermediate, Description: "Compound dumbbell circuit", Equipment: "dumbbells"},
		{Name: "Heavy Lifts", TypeID: uintPtr(typeByName["Strength"]), DurationMinutes: 60, Intensity: models.IntensityHigh, FitnessLevel: models.LevelAdvanced, Description: "Barbell squat, bench, deadlift", Equipment: "barbell, rack"},
		{Name: "Evening Stretch", TypeID: uintPtr(typeByName["Flexibility"]), DurationMinutes: 15, Intensity: models.IntensityLight, FitnessLevel: models.LevelBeginner, Description: "Full-body stretching routine", Equipment: "mat"},
		{Name: "Beginner Yoga", TypeID: uintPtr(typeByName["Mind & Body"]), DurationMinutes: 30, Intensity: models.IntensityLight, FitnessLevel: models.LevelBeginner, Description: "Gentle yoga flow", Equipment: "mat"},
	}
	return db.Create(&templates).Error
}

// Run populates the database with the catalog plus fake demo accounts and
// ledger history according to opts.
func Run(db *gorm.DB, opts Options) error {
	if db == nil {
		return errors.New("seed: nil database handle")
	}
	if opts.ShouldClean {
		if err := Clean(db); err != nil {
			return err
		}
	}
	if err := Catalog(db); err != nil {
		return err
	}

	f := NewFactory(db)
	return f.DemoData(opts)
}

// Clean removes all user data and catalog rows. Development only.
func Clean(db *gorm.DB) error {
	for _, model := range []any{
		&models.MealEntry{},
		&models.CompletedWorkout{},
		&models.UserPreferences{},
		&models.User{},
		&models.WorkoutTemplate{},
		&models.WorkoutType{},
		&models.FoodItem{},
		&models.FoodCategory{},
	} {
		if err := db.Where("1 = 1").Delete(model).Error; err != nil {
			return err
		}
	}
	return nil
}
