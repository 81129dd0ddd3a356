package service

import (
	"context"
	"strings"

	"fittrack/internal/cache"
	"fittrack/internal/clock"
	"fittrack/internal/models"
	"fittrack/internal/observability"
	"fittrack/internal/repository"
)

const (
	// History depth bounds; requests outside the range are clamped, not
	// rejected.
	mealHistoryDefault = 30
	mealHistoryMax     = 365

	searchMinTermLen = 2
	searchPageSize   = 20
)

type MealService struct {
	meals repository.MealRepository
	food  repository.FoodRepository
	clk   clock.Clock
}

type AddMealInput struct {
	UserID        uint
	FoodItemID    uint    `json:"food_item_id"`
	QuantityGrams float64 `json:"quantity_grams"`
	MealDate      string  `json:"meal_date"`
}

// MealEntryView is a stored entry plus its four derived nutrient totals.
// Totals are always computed at read time from the catalog densities.
type MealEntryView struct {
	models.MealEntry
	Calories float64 `json:"calories"`
	ProteinG float64 `json:"protein_g"`
	FatG     float64 `json:"fat_g"`
	CarbsG   float64 `json:"carbs_g"`
}

type DayTotals struct {
	EntryCount int     `json:"entry_count"`
	Calories   float64 `json:"calories"`
	ProteinG   float64 `json:"protein_g"`
	FatG       float64 `json:"fat_g"`
	CarbsG     float64 `json:"carbs_g"`
}

type MealDayView struct {
	Date    string          `json:"date"`
	Entries []MealEntryView `json:"entries"`
	Totals  DayTotals       `json:"totals"`
}

func NewMealService(meals repository.MealRepository, food repository.FoodRepository, clk clock.Clock) *MealService {
	return &MealService{meals: meals, food: food, clk: clk}
}

// entryView derives the nutrient totals for one entry, each rounded to two
// decimals.
func entryView(e models.MealEntry) MealEntryView {
	v := MealEntryView{MealEntry: e}
	if e.FoodItem != nil {
		factor := e.QuantityGrams / 100
		v.Calories = round2(e.FoodItem.CaloriesPer100g * factor)
		v.ProteinG = round2(e.FoodItem.ProteinPer100g * factor)
		v.FatG = round2(e.FoodItem.FatPer100g * factor)
		v.CarbsG = round2(e.FoodItem.CarbsPer100g * factor)
	}
	return v
}

// resolveDate validates an explicit date or substitutes the clock's today.
func (s *MealService) resolveDate(date string) (string, error) {
	if date == "" {
		return s.clk.Today(), nil
	}
	if !clock.ValidDate(date) {
		return "", models.NewValidationError("Date must be formatted YYYY-MM-DD")
	}
	return date, nil
}

func (s *MealService) AddMeal(ctx context.Context, in AddMealInput) (*MealEntryView, error) {
	if in.QuantityGrams <= 0 {
		return nil, models.NewValidationError("Quantity must be greater than zero")
	}
	date, err := s.resolveDate(in.MealDate)
	if err != nil {
		return nil, err
	}

	item, err := s.food.GetItem(ctx, in.FoodItemID)
	if err != nil {
		return nil, err
	}

	entry := &models.MealEntry{
		UserID:        in.UserID,
		FoodItemID:    item.ID,
		QuantityGrams: in.QuantityGrams,
		MealDate:      date,
		ConsumedAt:    s.clk.Now(),
	}
	if err := s.meals.Create(ctx, entry); err != nil {
		return nil, err
	}
	observability.LedgerWrites.WithLabelValues("meal", "add").Inc()

	entry.FoodItem = item
	view := entryView(*entry)
	return &view, nil
}

func (s *MealService) UpdateQuantity(ctx context.Context, userID, entryID uint, quantityGrams float64) (*MealEntryView, error) {
	if quantityGrams <= 0 {
		return nil, models.NewValidationError("Quantity must be greater than zero")
	}
	if err := s.meals.UpdateQuantity(ctx, userID, entryID, quantityGrams); err != nil {
		return nil, err
	}
	observability.LedgerWrites.WithLabelValues("meal", "update").Inc()

	entry, err := s.meals.GetOwned(ctx, userID, entryID)
	if err != nil {
		return nil, err
	}
	view := entryView(*entry)
	return &view, nil
}

func (s *MealService) RemoveMeal(ctx context.Context, userID, entryID uint) error {
	if err := s.meals.Delete(ctx, userID, entryID); err != nil {
		return err
	}
	observability.LedgerWrites.WithLabelValues("meal", "remove").Inc()
	return nil
}

// ClearDay removes every entry on the given date (today when empty) and
// returns how many were removed. Zero is a valid result, not an error.
func (s *MealService) ClearDay(ctx context.Context, userID uint, date string) (int64, error) {
	resolved, err := s.resolveDate(date)
	if err != nil {
		return 0, err
	}
	removed, err := s.meals.DeleteDay(ctx, userID, resolved)
	if err != nil {
		return 0, err
	}
	if removed > 0 {
		observability.LedgerWrites.WithLabelValues("meal", "clear").Inc()
	}
	return removed, nil
}

// DayView returns the day's entries with derived totals and their sums. Each
// entry total is rounded, then the sums are rounded again.
func (s *MealService) DayView(ctx context.Context, userID uint, date string) (*MealDayView, error) {
	resolved, err := s.resolveDate(date)
	if err != nil {
		return nil, err
	}
	entries, err := s.meals.ListDay(ctx, userID, resolved)
	if err != nil {
		return nil, err
	}

	view := &MealDayView{Date: resolved, Entries: make([]MealEntryView, 0, len(entries))}
	for _, e := range entries {
		ev := entryView(e)
		view.Entries = append(view.Entries, ev)
		view.Totals.Calories += ev.Calories
		view.Totals.ProteinG += ev.ProteinG
		view.Totals.FatG += ev.FatG
		view.Totals.CarbsG += ev.CarbsG
	}
	view.Totals.EntryCount = len(entries)
	view.Totals.Calories = round2(view.Totals.Calories)
	view.Totals.ProteinG = round2(view.Totals.ProteinG)
	view.Totals.FatG = round2(view.Totals.FatG)
	view.Totals.CarbsG = round2(view.Totals.CarbsG)
	return view, nil
}

// History returns per-day summaries, newest day first. limit is clamped to
// [1, 365] and defaults to 30 when zero or negative.
func (s *MealService) History(ctx context.Context, userID uint, limit int) ([]repository.MealDaySummary, error) {
	if limit <= 0 {
		limit = mealHistoryDefault
	}
	if limit > mealHistoryMax {
		limit = mealHistoryMax
	}
	summaries, err := s.meals.DaySummaries(ctx, userID, limit)
	if err != nil {
		return nil, err
	}
	for i := range summaries {
		summaries[i].Calories = round2(summaries[i].Calories)
		summaries[i].ProteinG = round2(summaries[i].ProteinG)
		summaries[i].FatG = round2(summaries[i].FatG)
		summaries[i].CarbsG = round2(summaries[i].CarbsG)
	}
	return summaries, nil
}

// ListFoodItems is a read-only catalog passthrough, cached when unfiltered.
func (s *MealService) ListFoodItems(ctx context.Context, categoryID *uint) ([]models.FoodItem, error) {
	if categoryID != nil {
		return s.food.ListItems(ctx, categoryID)
	}
	var items []models.FoodItem
	err := cache.Aside(ctx, cache.FoodItemsKey(), &items, cache.CatalogTTL, func() error {
		var ferr error
		items, ferr = s.food.ListItems(ctx, nil)
		return ferr
	})
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (s *MealService) ListCategories(ctx context.Context) ([]repository.CategoryCount, error) {
	var categories []repository.CategoryCount
	err := cache.Aside(ctx, cache.FoodCategoriesKey(), &categories, cache.CatalogTTL, func() error {
		var ferr error
		categories, ferr = s.food.ListCategories(ctx)
		return ferr
	})
	if err != nil {
		return nil, err
	}
	return categories, nil
}

// SearchFoodItems matches case-insensitively on a substring of the name.
// Terms shorter than two characters are rejected; at most one page of
// results is returned.
func (s *MealService) SearchFoodItems(ctx context.Context, term string, categoryID *uint) ([]models.FoodItem, error) {
	term = strings.TrimSpace(term)
	if len(term) < searchMinTermLen {
		return nil, models.NewValidationError("Search term must be at least 2 characters")
	}
	return s.food.Search(ctx, strings.ToLower(term), categoryID, searchPageSize)
}
