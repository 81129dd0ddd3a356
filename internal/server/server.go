// Package server contains the HTTP handlers and routing for the API.
package server

import (
	"context"
	"fmt"
	"time"

	"fittrack/internal/cache"
	"fittrack/internal/clock"
	"fittrack/internal/config"
	"fittrack/internal/database"
	"fittrack/internal/middleware"
	"fittrack/internal/repository"
	"fittrack/internal/service"
	"fittrack/internal/token"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Server holds all dependencies and provides the HTTP handlers.
type Server struct {
	config         *config.Config
	db             *gorm.DB
	redis          *redis.Client
	promMiddleware *fiberprometheus.FiberPrometheus
	tokens         *token.Manager
	clk            clock.Clock

	userRepo    repository.UserRepository
	foodRepo    repository.FoodRepository
	mealRepo    repository.MealRepository
	workoutRepo repository.WorkoutRepository
	prefRepo    repository.PreferenceRepository

	authService    *service.AuthService
	mealService    *service.MealService
	workoutService *service.WorkoutService
	prefService    *service.PreferenceService
	statsService   *service.StatsService
}

// NewServer creates a server instance, establishing the database and Redis
// connections itself.
func NewServer(cfg *config.Config) (*Server, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}

	cache.InitRedis(cfg.RedisURL)
	return NewServerWithDeps(cfg, db, cache.GetClient()), nil
}

// NewServerWithDeps creates a Server from already-initialized dependencies.
// Used by the bootstrap layer and tests.
func NewServerWithDeps(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *Server {
	s := &Server{
		config:         cfg,
		db:             db,
		redis:          redisClient,
		promMiddleware: middleware.InitMetrics("fittrack-api"),
		tokens:         token.NewManager([]byte(cfg.JWTSecret)),
		clk:            clock.System{},
	}

	s.wireServices()
	return s
}

// wireServices builds the repository and service graph from the server's
// database handle, token manager, and clock.
func (s *Server) wireServices() {
	s.userRepo = repository.NewUserRepository(s.db)
	s.foodRepo = repository.NewFoodRepository(s.db)
	s.mealRepo = repository.NewMealRepository(s.db)
	s.workoutRepo = repository.NewWorkoutRepository(s.db)
	s.prefRepo = repository.NewPreferenceRepository(s.db)

	s.authService = service.NewAuthService(s.userRepo, s.tokens)
	s.mealService = service.NewMealService(s.mealRepo, s.foodRepo, s.clk)
	s.workoutService = service.NewWorkoutService(s.workoutRepo, s.prefRepo, s.clk)
	s.prefService = service.NewPreferenceService(s.prefRepo)
	s.statsService = service.NewStatsService(s.userRepo, s.mealRepo, s.workoutRepo, s.prefService)
}

// DB exposes the database handle for startup tasks such as catalog seeding.
func (s *Server) DB() *gorm.DB {
	return s.db
}

// SetupMiddleware configures the middleware stack for the Fiber app.
func (s *Server) SetupMiddleware(app *fiber.App) {
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(middleware.ContextMiddleware())

	if s.promMiddleware != nil {
		app.Use(s.promMiddleware.Middleware)
	}

	app.Use(helmet.New())
	app.Use(middleware.StructuredLogger())

	origins := s.config.AllowedOrigins
	if origins == "" {
		origins = "http://localhost:5173,http://localhost:3000"
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
		MaxAge:           86400,
	}))

	// Global rate limit; per-route Redis limits guard the expensive paths.
	app.Use(limiter.New(limiter.Config{
		Max:        120,
		Expiration: time.Minute,
		Next: func(c *fiber.Ctx) bool {
			return c.Method() == fiber.MethodOptions
		},
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "Too many requests, please try again later.",
			})
		},
	}))
}

// SetupRoutes configures all routes for the application.
func (s *Server) SetupRoutes(app *fiber.App) {
	api := app.Group("/api")

	app.Get("/health/live", s.LivenessCheck)
	app.Get("/health/ready", s.ReadinessCheck)
	app.Get("/health", s.ReadinessCheck)

	if s.promMiddleware != nil {
		s.promMiddleware.RegisterAt(app, "/metrics")
	}

	auth := api.Group("/auth")
	auth.Post("/signup", middleware.RateLimit(s.redis, 3, 10*time.Minute, "signup"), s.Signup)
	auth.Post("/login", middleware.RateLimit(s.redis, 10, 5*time.Minute, "login"), s.Login)
	auth.Post("/logout", s.Logout)

	protected := api.Group("", middleware.AuthRequired(s.authService))

	protected.Get("/auth/check", s.CheckSession)
	protected.Get("/auth/profile", s.GetMyProfile)
	protected.Put("/auth/profile", s.UpdateMyProfile)
	protected.Get("/auth/stats", s.GetMyStats)

	nutrition := api.Group("/nutrition")
	// Catalog browse/search is public, the ledger is not.
	nutrition.Get("/food-items", s.GetFoodItems)
	nutrition.Get("/food-items/search", middleware.RateLimit(s.redis, 30, time.Minute, "food_search"), s.SearchFoodItems)
	nutrition.Get("/categories", s.GetFoodCategories)

	meals := protected.Group("/nutrition/meals")
	meals.Post("/", s.AddMeal)
	meals.Get("/", s.GetMealDay)
	meals.Delete("/", s.ClearMealDay)
	meals.Get("/history", s.GetMealHistory)
	meals.Put("/:id", s.UpdateMealQuantity)
	meals.Delete("/:id", s.DeleteMeal)

	workouts := protected.Group("/workouts")
	workouts.Get("/types", s.GetWorkoutTypes)
	workouts.Get("/templates", s.GetWorkoutTemplates)
	workouts.Get("/templates/random", s.GetRandomTemplates)
	workouts.Post("/completed", s.CompleteWorkout)
	workouts.Get("/completed", s.GetCompletedWorkouts)
	workouts.Get("/today", s.GetTodayWorkouts)
	workouts.Get("/weekly-stats", s.GetWeeklyStats)
	workouts.Get("/history", s.GetWorkoutHistory)
	workouts.Delete("/completed/:id", s.DeleteWorkout)

	prefs := protected.Group("/preferences")
	prefs.Get("/", s.GetPreferences)
	prefs.Put("/", s.UpdatePreferences)
}

// LivenessCheck handles liveness probe requests.
func (s *Server) LivenessCheck(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status": "up",
		"time":   time.Now(),
	})
}

// ReadinessCheck reports database and Redis health. Redis is optional, so a
// missing cache degrades the report without failing readiness.
func (s *Server) ReadinessCheck(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	dbStatus := "healthy"
	sqlDB, err := s.db.DB()
	if err != nil {
		dbStatus = "unhealthy"
	} else if err := sqlDB.PingContext(ctx); err != nil {
		dbStatus = "unhealthy"
	}

	redisStatus := "healthy"
	if s.redis != nil {
		if err := s.redis.Ping(ctx).Err(); err != nil {
			redisStatus = "unhealthy"
		}
	} else {
		redisStatus = "unavailable"
	}

	status := fiber.StatusOK
	overall := "healthy"
	if dbStatus == "unhealthy" {
		status = fiber.StatusServiceUnavailable
		overall = "unhealthy"
	}

	return c.Status(status).JSON(fiber.Map{
		"status": overall,
		"checks": fiber.Map{
			"database": dbStatus,
			"redis":    redisStatus,
		},
		"time": time.Now(),
	})
}

// Shutdown releases server-held resources.
func (s *Server) Shutdown(ctx context.Context) error {
	_ = ctx
	if err := cache.Close(); err != nil {
		middleware.Logger.Warn("redis close failed", "error", err)
	}
	return database.Close(s.db)
}
