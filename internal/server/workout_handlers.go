package server

import (
	"fittrack/internal/models"
	"fittrack/internal/service"

	"github.com/gofiber/fiber/v2"
)

// CompleteWorkout handles POST /api/workouts/completed.
func (s *Server) CompleteWorkout(c *fiber.Ctx) error {
	userID, err := s.currentUserID(c)
	if err != nil {
		return nil
	}

	var req service.CompleteWorkoutInput
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, models.NewValidationError("Invalid request body"))
	}
	req.UserID = userID

	workout, err := s.workoutService.CompleteWorkout(c.Context(), req)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(workout)
}

// GetCompletedWorkouts handles GET /api/workouts/completed?date=...&limit=N.
func (s *Server) GetCompletedWorkouts(c *fiber.Ctx) error {
	userID, err := s.currentUserID(c)
	if err != nil {
		return nil
	}

	workouts, err := s.workoutService.Recent(c.Context(), userID, c.Query("date"), c.QueryInt("limit"))
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.JSON(fiber.Map{"workouts": workouts})
}

// DeleteWorkout handles DELETE /api/workouts/completed/:id.
func (s *Server) DeleteWorkout(c *fiber.Ctx) error {
	userID, err := s.currentUserID(c)
	if err != nil {
		return nil
	}
	entryID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.workoutService.RemoveWorkout(c.Context(), userID, entryID); err != nil {
		return models.RespondWithError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Workout removed"})
}

// GetTodayWorkouts handles GET /api/workouts/today.
func (s *Server) GetTodayWorkouts(c *fiber.Ctx) error {
	userID, err := s.currentUserID(c)
	if err != nil {
		return nil
	}

	view, err := s.workoutService.TodayView(c.Context(), userID)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.JSON(view)
}

// GetWeeklyStats handles GET /api/workouts/weekly-stats.
func (s *Server) GetWeeklyStats(c *fiber.Ctx) error {
	userID, err := s.currentUserID(c)
	if err != nil {
		return nil
	}

	stats, err := s.workoutService.WeeklyStats(c.Context(), userID)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.JSON(stats)
}

// GetWorkoutHistory handles GET /api/workouts/history?limit=N.
func (s *Server) GetWorkoutHistory(c *fiber.Ctx) error {
	userID, err := s.currentUserID(c)
	if err != nil {
		return nil
	}

	summaries, err := s.workoutService.History(c.Context(), userID, c.QueryInt("limit"))
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.JSON(fiber.Map{"days": summaries})
}

// GetWorkoutTypes handles GET /api/workouts/types.
func (s *Server) GetWorkoutTypes(c *fiber.Ctx) error {
	types, err := s.workoutService.ListWorkoutTypes(c.Context())
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.JSON(fiber.Map{"types": types})
}

// GetWorkoutTemplates handles GET /api/workouts/templates?fitness_level=...&type_id=N.
func (s *Server) GetWorkoutTemplates(c *fiber.Ctx) error {
	var typeID *uint
	if raw := c.Query("type_id"); raw != "" {
		id := c.QueryInt("type_id")
		if id <= 0 {
			return models.RespondWithError(c, models.NewValidationError("Invalid type ID"))
		}
		uid := uint(id)
		typeID = &uid
	}

	templates, err := s.workoutService.ListTemplates(c.Context(), c.Query("fitness_level"), typeID)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.JSON(fiber.Map{"templates": templates})
}

// GetRandomTemplates handles GET /api/workouts/templates/random?count=N.
func (s *Server) GetRandomTemplates(c *fiber.Ctx) error {
	userID, err := s.currentUserID(c)
	if err != nil {
		return nil
	}

	templates, err := s.workoutService.RandomTemplates(c.Context(), userID, c.QueryInt("count"))
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.JSON(fiber.Map{"templates": templates})
}
