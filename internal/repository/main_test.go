package repository

import (
	"testing"

	"fittrack/internal/database"
	"fittrack/internal/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// newTestDB opens a fresh in-memory SQLite database with the full schema.
// MaxOpenConns(1) is required: each new connection to :memory: would
// otherwise see an empty database.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Discard,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))

	t.Cleanup(func() { _ = sqlDB.Close() })
	return db
}

// seedCatalog inserts a small known catalog and returns the food items and
// workout templates keyed by name.
func seedCatalog(t *testing.T, db *gorm.DB) (map[string]models.FoodItem, map[string]models.WorkoutTemplate) {
	t.Helper()

	fruits := models.FoodCategory{Name: "Fruits"}
	grains := models.FoodCategory{Name: "Grains"}
	require.NoError(t, db.Create(&fruits).Error)
	require.NoError(t, db.Create(&grains).Error)

	items := []models.FoodItem{
		{Name: "Apple", CategoryID: &fruits.ID, CaloriesPer100g: 52, ProteinPer100g: 0.3, FatPer100g: 0.2, CarbsPer100g: 14},
		{Name: "Banana", CategoryID: &fruits.ID, CaloriesPer100g: 89, ProteinPer100g: 1.1, FatPer100g: 0.3, CarbsPer100g: 23},
		{Name: "Oatmeal", CategoryID: &grains.ID, CaloriesPer100g: 68, ProteinPer100g: 2.4, FatPer100g: 1.4, CarbsPer100g: 12},
	}
	foodByName := make(map[string]models.FoodItem, len(items))
	for i := range items {
		require.NoError(t, db.Create(&items[i]).Error)
		foodByName[items[i].Name] = items[i]
	}

	cardio := models.WorkoutType{Name: "Cardio"}
	strength := models.WorkoutType{Name: "Strength"}
	require.NoError(t, db.Create(&cardio).Error)
	require.NoError(t, db.Create(&strength).Error)

	templates := []models.WorkoutTemplate{
		{Name: "Morning Run", TypeID: &cardio.ID, DurationMinutes: 30, Intensity: models.IntensityMedium, FitnessLevel: models.LevelBeginner},
		{Name: "Easy Walk", TypeID: &cardio.ID, DurationMinutes: 20, Intensity: models.IntensityLight, FitnessLevel: models.LevelBeginner},
		{Name: "Heavy Lifts", TypeID: &strength.ID, DurationMinutes: 45, Intensity: models.IntensityHigh, FitnessLevel: models.LevelAdvanced},
	}
	tplByName := make(map[string]models.WorkoutTemplate, len(templates))
	for i := range templates {
		require.NoError(t, db.Create(&templates[i]).Error)
		tplByName[templates[i].Name] = templates[i]
	}

	return foodByName, tplByName
}

// createTestUser inserts a user and returns its ID.
func createTestUser(t *testing.T, db *gorm.DB, email string) uint {
	t.Helper()
	user := models.User{FullName: "Test User", Email: email, Password: "$2a$10$hash"}
	require.NoError(t, db.Create(&user).Error)
	return user.ID
}
