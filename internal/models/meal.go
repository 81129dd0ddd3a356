package models

import "time"

// MealEntry is one consumed food record on a user's logical day. Nutrient
// totals are never stored; they are derived from QuantityGrams and the food
// item's per-100g densities at read time so the stored row can never drift
// from the catalog.
type MealEntry struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	UserID        uint      `gorm:"not null;index:idx_meal_user_date" json:"user_id"`
	FoodItemID    uint      `gorm:"not null" json:"food_item_id"`
	QuantityGrams float64   `gorm:"not null" json:"quantity_grams"`
	MealDate      string    `gorm:"type:date;not null;index:idx_meal_user_date" json:"meal_date"`
	ConsumedAt    time.Time `json:"consumed_at"`
	CreatedAt     time.Time `json:"created_at"`

	FoodItem *FoodItem `gorm:"foreignKey:FoodItemID" json:"food_item,omitempty"`
}
