package repository

import (
	"context"

	"fittrack/internal/models"

	"gorm.io/gorm"
)

// MealDaySummary aggregates one day of a user's meal ledger. The nutrient
// sums are over per-entry derived totals, each rounded to two decimals
// before summing.
type MealDaySummary struct {
	Date       string  `json:"date"`
	EntryCount int     `json:"entry_count"`
	Calories   float64 `json:"calories"`
	ProteinG   float64 `json:"protein_g"`
	FatG       float64 `json:"fat_g"`
	CarbsG     float64 `json:"carbs_g"`
}

// MealLifetime aggregates a user's whole meal ledger.
type MealLifetime struct {
	TotalEntries  int64   `json:"total_entries"`
	DaysTracked   int64   `json:"days_tracked"`
	TotalCalories float64 `json:"total_calories"`
}

// MealRepository defines persistence operations for the meal ledger.
// Every mutation and lookup is scoped to the owning user; a row owned by
// someone else is indistinguishable from a missing row.
type MealRepository interface {
	Create(ctx context.Context, entry *models.MealEntry) error
	GetOwned(ctx context.Context, userID, id uint) (*models.MealEntry, error)
	UpdateQuantity(ctx context.Context, userID, id uint, quantityGrams float64) error
	Delete(ctx context.Context, userID, id uint) error
	DeleteDay(ctx context.Context, userID uint, date string) (int64, error)
	ListDay(ctx context.Context, userID uint, date string) ([]models.MealEntry, error)
	DaySummaries(ctx context.Context, userID uint, limit int) ([]MealDaySummary, error)
	Lifetime(ctx context.Context, userID uint) (*MealLifetime, error)
}

type mealRepository struct {
	db *gorm.DB
}

// NewMealRepository returns a new MealRepository implementation.
func NewMealRepository(db *gorm.DB) MealRepository {
	return &mealRepository{db: db}
}

func (r *mealRepository) Create(ctx context.Context, entry *models.MealEntry) error {
	if err := r.db.WithContext(ctx).Create(entry).Error; err != nil {
		return classify(err, "Meal entry")
	}
	return nil
}

func (r *mealRepository) GetOwned(ctx context.Context, userID, id uint) (*models.MealEntry, error) {
	var entry models.MealEntry
	err := r.db.WithContext(ctx).
		Preload("FoodItem").
		Preload("FoodItem.Category").
		Where("user_id = ?", userID).
		First(&entry, id).Error
	if err != nil {
		return nil, classify(err, "Meal entry")
	}
	return &entry, nil
}

// UpdateQuantity changes only the quantity column so concurrent edits to the
// same entry cannot clobber unrelated fields.
func (r *mealRepository) UpdateQuantity(ctx context.Context, userID, id uint, quantityGrams float64) error {
	res := r.db.WithContext(ctx).
		Model(&models.MealEntry{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("quantity_grams", quantityGrams)
	if res.Error != nil {
		return classify(res.Error, "Meal entry")
	}
	if res.RowsAffected == 0 {
		return models.NewNotFoundError("Meal entry")
	}
	return nil
}

func (r *mealRepository) Delete(ctx context.Context, userID, id uint) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&models.MealEntry{})
	if res.Error != nil {
		return classify(res.Error, "Meal entry")
	}
	if res.RowsAffected == 0 {
		return models.NewNotFoundError("Meal entry")
	}
	return nil
}

// DeleteDay removes every entry the user logged on date and reports how many
// rows went away. An empty day deletes zero rows and is not an error.
func (r *mealRepository) DeleteDay(ctx context.Context, userID uint, date string) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("user_id = ? AND meal_date = ?", userID, date).
		Delete(&models.MealEntry{})
	if res.Error != nil {
		return 0, classify(res.Error, "Meal entry")
	}
	return res.RowsAffected, nil
}

func (r *mealRepository) ListDay(ctx context.Context, userID uint, date string) ([]models.MealEntry, error) {
	var entries []models.MealEntry
	err := r.db.WithContext(ctx).
		Preload("FoodItem").
		Preload("FoodItem.Category").
		Where("user_id = ? AND meal_date = ?", userID, date).
		Order("consumed_at ASC, id ASC").
		Find(&entries).Error
	if err != nil {
		return nil, classify(err, "Meal entry")
	}
	return entries, nil
}

// DaySummaries returns per-day nutrition totals for the most recent limit
// days that have at least one entry. Rounding happens per entry inside the
// SUM so the aggregate matches what a client would compute from the day view.
// The CAST keeps two-argument ROUND working on Postgres doubles.
func (r *mealRepository) DaySummaries(ctx context.Context, userID uint, limit int) ([]MealDaySummary, error) {
	var summaries []MealDaySummary
	err := r.db.WithContext(ctx).
		Model(&models.MealEntry{}).
		Select(`meal_entries.meal_date AS date,
			COUNT(*) AS entry_count,
			SUM(ROUND(CAST(food_items.calories_per_100g * meal_entries.quantity_grams / 100.0 AS NUMERIC), 2)) AS calories,
			SUM(ROUND(CAST(food_items.protein_per_100g * meal_entries.quantity_grams / 100.0 AS NUMERIC), 2)) AS protein_g,
			SUM(ROUND(CAST(food_items.fat_per_100g * meal_entries.quantity_grams / 100.0 AS NUMERIC), 2)) AS fat_g,
			SUM(ROUND(CAST(food_items.carbs_per_100g * meal_entries.quantity_grams / 100.0 AS NUMERIC), 2)) AS carbs_g`).
		Joins("JOIN food_items ON food_items.id = meal_entries.food_item_id").
		Where("meal_entries.user_id = ?", userID).
		Group("meal_entries.meal_date").
		Order("meal_entries.meal_date DESC").
		Limit(limit).
		Scan(&summaries).Error
	if err != nil {
		return nil, classify(err, "Meal entry")
	}
	return summaries, nil
}

// Lifetime aggregates the user's entire ledger. An empty ledger yields zeros.
func (r *mealRepository) Lifetime(ctx context.Context, userID uint) (*MealLifetime, error) {
	var lifetime MealLifetime
	err := r.db.WithContext(ctx).
		Model(&models.MealEntry{}).
		Select(`COUNT(*) AS total_entries,
			COUNT(DISTINCT meal_entries.meal_date) AS days_tracked,
			COALESCE(SUM(ROUND(CAST(food_items.calories_per_100g * meal_entries.quantity_grams / 100.0 AS NUMERIC), 2)), 0) AS total_calories`).
		Joins("JOIN food_items ON food_items.id = meal_entries.food_item_id").
		Where("meal_entries.user_id = ?", userID).
		Scan(&lifetime).Error
	if err != nil {
		return nil, classify(err, "Meal entry")
	}
	return &lifetime, nil
}
