package repository

import (
	"context"

	"fittrack/internal/models"

	"gorm.io/gorm"
)

// CategoryCount is a food category annotated with how many items it holds.
type CategoryCount struct {
	models.FoodCategory
	ItemCount int64 `json:"item_count"`
}

// FoodRepository defines read operations over the food catalog.
type FoodRepository interface {
	GetItem(ctx context.Context, id uint) (*models.FoodItem, error)
	ListItems(ctx context.Context, categoryID *uint) ([]models.FoodItem, error)
	ListCategories(ctx context.Context) ([]CategoryCount, error)
	Search(ctx context.Context, term string, categoryID *uint, limit int) ([]models.FoodItem, error)
}

type foodRepository struct {
	db *gorm.DB
}

// NewFoodRepository returns a new FoodRepository implementation.
func NewFoodRepository(db *gorm.DB) FoodRepository {
	return &foodRepository{db: db}
}

func (r *foodRepository) GetItem(ctx context.Context, id uint) (*models.FoodItem, error) {
	var item models.FoodItem
	if err := r.db.WithContext(ctx).Preload("Category").First(&item, id).Error; err != nil {
		return nil, classify(err, "Food item")
	}
	return &item, nil
}

func (r *foodRepository) ListItems(ctx context.Context, categoryID *uint) ([]models.FoodItem, error) {
	var items []models.FoodItem
	q := r.db.WithContext(ctx).Preload("Category").Order("name ASC")
	if categoryID != nil {
		q = q.Where("category_id = ?", *categoryID)
	}
	if err := q.Find(&items).Error; err != nil {
		return nil, classify(err, "Food item")
	}
	return items, nil
}

func (r *foodRepository) ListCategories(ctx context.Context) ([]CategoryCount, error) {
	var categories []CategoryCount
	err := r.db.WithContext(ctx).
		Model(&models.FoodCategory{}).
		Select("food_categories.*, COUNT(food_items.id) AS item_count").
		Joins("LEFT JOIN food_items ON food_items.category_id = food_categories.id").
		Group("food_categories.id").
		Order("food_categories.name ASC").
		Scan(&categories).Error
	if err != nil {
		return nil, classify(err, "Food category")
	}
	return categories, nil
}

func (r *foodRepository) Search(ctx context.Context, term string, categoryID *uint, limit int) ([]models.FoodItem, error) {
	var items []models.FoodItem
	q := r.db.WithContext(ctx).Preload("Category").
		Where("LOWER(name) LIKE ?", "%"+term+"%").
		Order("name ASC").
		Limit(limit)
	if categoryID != nil {
		q = q.Where("category_id = ?", *categoryID)
	}
	if err := q.Find(&items).Error; err != nil {
		return nil, classify(err, "Food item")
	}
	return items, nil
}
