package server

import (
	"fittrack/internal/models"
	"fittrack/internal/service"

	"github.com/gofiber/fiber/v2"
)

// AddMeal handles POST /api/nutrition/meals.
func (s *Server) AddMeal(c *fiber.Ctx) error {
	userID, err := s.currentUserID(c)
	if err != nil {
		return nil
	}

	var req service.AddMealInput
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, models.NewValidationError("Invalid request body"))
	}
	req.UserID = userID

	entry, err := s.mealService.AddMeal(c.Context(), req)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(entry)
}

// GetMealDay handles GET /api/nutrition/meals?date=YYYY-MM-DD. Omitting the
// date returns today's ledger.
func (s *Server) GetMealDay(c *fiber.Ctx) error {
	userID, err := s.currentUserID(c)
	if err != nil {
		return nil
	}

	view, err := s.mealService.DayView(c.Context(), userID, c.Query("date"))
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.JSON(view)
}

// UpdateMealQuantity handles PUT /api/nutrition/meals/:id.
func (s *Server) UpdateMealQuantity(c *fiber.Ctx) error {
	userID, err := s.currentUserID(c)
	if err != nil {
		return nil
	}
	entryID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		QuantityGrams float64 `json:"quantity_grams"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, models.NewValidationError("Invalid request body"))
	}

	entry, err := s.mealService.UpdateQuantity(c.Context(), userID, entryID, req.QuantityGrams)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.JSON(entry)
}

// DeleteMeal handles DELETE /api/nutrition/meals/:id.
func (s *Server) DeleteMeal(c *fiber.Ctx) error {
	userID, err := s.currentUserID(c)
	if err != nil {
		return nil
	}
	entryID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.mealService.RemoveMeal(c.Context(), userID, entryID); err != nil {
		return models.RespondWithError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Meal entry removed"})
}

// ClearMealDay handles DELETE /api/nutrition/meals?date=YYYY-MM-DD.
func (s *Server) ClearMealDay(c *fiber.Ctx) error {
	userID, err := s.currentUserID(c)
	if err != nil {
		return nil
	}

	removed, err := s.mealService.ClearDay(c.Context(), userID, c.Query("date"))
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.JSON(fiber.Map{"removed": removed})
}

// GetMealHistory handles GET /api/nutrition/meals/history?limit=N.
func (s *Server) GetMealHistory(c *fiber.Ctx) error {
	userID, err := s.currentUserID(c)
	if err != nil {
		return nil
	}

	summaries, err := s.mealService.History(c.Context(), userID, c.QueryInt("limit"))
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.JSON(fiber.Map{"days": summaries})
}

// GetFoodItems handles GET /api/nutrition/food-items?category_id=N.
func (s *Server) GetFoodItems(c *fiber.Ctx) error {
	categoryID, err := queryCategoryID(c)
	if err != nil {
		return nil
	}

	items, err := s.mealService.ListFoodItems(c.Context(), categoryID)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.JSON(fiber.Map{"items": items})
}

// GetFoodCategories handles GET /api/nutrition/categories.
func (s *Server) GetFoodCategories(c *fiber.Ctx) error {
	categories, err := s.mealService.ListCategories(c.Context())
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.JSON(fiber.Map{"categories": categories})
}

// SearchFoodItems handles GET /api/nutrition/food-items/search?q=term.
func (s *Server) SearchFoodItems(c *fiber.Ctx) error {
	categoryID, err := queryCategoryID(c)
	if err != nil {
		return nil
	}

	items, err := s.mealService.SearchFoodItems(c.Context(), c.Query("q"), categoryID)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.JSON(fiber.Map{"items": items})
}
