package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"fittrack/internal/clock"
	"fittrack/internal/config"
	"fittrack/internal/database"
	"fittrack/internal/models"
	"fittrack/internal/seed"
	"fittrack/internal/token"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// newTestServer builds a server over a fresh in-memory database with the
// catalog seeded, registers the routes on a bare Fiber app, and returns
// both. Prometheus middleware is left nil so repeated test setup does not
// re-register collectors.
func newTestServer(t *testing.T) (*fiber.App, *Server) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: gormlogger.Discard})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, database.Migrate(db))
	require.NoError(t, seed.Catalog(db))

	s := &Server{
		config: &config.Config{JWTSecret: "test-secret", Env: "test"},
		db:     db,
		tokens: token.NewManager([]byte("test-secret")),
		clk:    clock.Fixed{T: time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)},
	}
	s.wireServices()

	app := fiber.New()
	s.SetupRoutes(app)
	return app, s
}

func doJSON(t *testing.T, app *fiber.App, method, path, bearer string, body any) (*http.Response, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var decoded map[string]any
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	_ = resp.Body.Close()
	if len(raw) > 0 {
		_ = json.Unmarshal(raw, &decoded)
	}
	return resp, decoded
}

// signupUser registers a fresh account and returns its bearer token.
func signupUser(t *testing.T, app *fiber.App, email string) string {
	t.Helper()
	resp, body := doJSON(t, app, http.MethodPost, "/api/auth/signup", "", map[string]string{
		"full_name": "Test User",
		"email":     email,
		"password":  "secret1",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode, "signup failed: %v", body)
	tokenStr, _ := body["token"].(string)
	require.NotEmpty(t, tokenStr)
	return tokenStr
}

func TestSignupAndLogin(t *testing.T) {
	app, _ := newTestServer(t)

	tok := signupUser(t, app, "ada@example.com")
	require.NotEmpty(t, tok)

	// Duplicate signup conflicts.
	resp, _ := doJSON(t, app, http.MethodPost, "/api/auth/signup", "", map[string]string{
		"full_name": "Test User", "email": "ada@example.com", "password": "secret1",
	})
	require.Equal(t, http.StatusConflict, resp.StatusCode)

	// Login with the right password.
	resp, body := doJSON(t, app, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email": "ada@example.com", "password": "secret1",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NotEmpty(t, body["token"])

	// Wrong password and unknown email produce the same response.
	respWrong, bodyWrong := doJSON(t, app, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email": "ada@example.com", "password": "nope",
	})
	respUnknown, bodyUnknown := doJSON(t, app, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email": "ghost@example.com", "password": "nope",
	})
	require.Equal(t, http.StatusUnauthorized, respWrong.StatusCode)
	require.Equal(t, http.StatusUnauthorized, respUnknown.StatusCode)
	require.Equal(t, bodyWrong["error"], bodyUnknown["error"])
}

func TestAuthRequired(t *testing.T) {
	app, _ := newTestServer(t)

	resp, _ := doJSON(t, app, http.MethodGet, "/api/auth/profile", "", nil)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp, _ = doJSON(t, app, http.MethodGet, "/api/auth/profile", "not-a-token", nil)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestDeletedUserTokenRejected(t *testing.T) {
	app, s := newTestServer(t)
	tok := signupUser(t, app, "ghost@example.com")

	resp, _ := doJSON(t, app, http.MethodGet, "/api/auth/profile", tok, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// Remove the account out-of-band; the still-valid token must stop
	// authorizing requests, and above all must not let ledger writes create
	// rows owned by a nonexistent user.
	require.NoError(t, s.db.Where("email = ?", "ghost@example.com").Delete(&models.User{}).Error)

	resp, _ = doJSON(t, app, http.MethodGet, "/api/auth/profile", tok, nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, _ = doJSON(t, app, http.MethodPost, "/api/nutrition/meals/", tok, map[string]any{
		"food_item_id": 1, "quantity_grams": 100,
	})
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	var orphans int64
	require.NoError(t, s.db.Model(&models.MealEntry{}).Count(&orphans).Error)
	require.Zero(t, orphans)
}

func TestMealFlow(t *testing.T) {
	app, _ := newTestServer(t)
	tok := signupUser(t, app, "meals@example.com")

	// The seeded catalog is visible without auth.
	resp, body := doJSON(t, app, http.MethodGet, "/api/nutrition/food-items", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	items := body["items"].([]any)
	require.NotEmpty(t, items)

	// Find the apple (52 kcal per 100g).
	var appleID float64
	for _, it := range items {
		m := it.(map[string]any)
		if m["name"] == "Apple" {
			appleID = m["id"].(float64)
		}
	}
	require.NotZero(t, appleID)

	// Log 150g of apple; totals come back derived.
	resp, body = doJSON(t, app, http.MethodPost, "/api/nutrition/meals/", tok, map[string]any{
		"food_item_id": appleID, "quantity_grams": 150,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	require.InDelta(t, 78.0, body["calories"].(float64), 0.001)
	entryID := body["id"].(float64)

	// Today's view includes it.
	resp, body = doJSON(t, app, http.MethodGet, "/api/nutrition/meals/", tok, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	totals := body["totals"].(map[string]any)
	require.Equal(t, float64(1), totals["entry_count"])
	require.InDelta(t, 78.0, totals["calories"].(float64), 0.001)

	// Update the quantity; totals change.
	resp, body = doJSON(t, app, http.MethodPut,
		fmt.Sprintf("/api/nutrition/meals/%d", int(entryID)), tok,
		map[string]any{"quantity_grams": 200})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.InDelta(t, 104.0, body["calories"].(float64), 0.001)

	// Another user cannot see or delete it.
	other := signupUser(t, app, "other@example.com")
	resp, _ = doJSON(t, app, http.MethodDelete,
		fmt.Sprintf("/api/nutrition/meals/%d", int(entryID)), other, nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	// Clear the day.
	resp, body = doJSON(t, app, http.MethodDelete, "/api/nutrition/meals/", tok, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, float64(1), body["removed"])
}

func TestFoodSearch(t *testing.T) {
	app, _ := newTestServer(t)

	resp, _ := doJSON(t, app, http.MethodGet, "/api/nutrition/food-items/search?q=a", "", nil)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, body := doJSON(t, app, http.MethodGet, "/api/nutrition/food-items/search?q=APP", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	items := body["items"].([]any)
	require.Len(t, items, 1)
	require.Equal(t, "Apple", items[0].(map[string]any)["name"])
}

func TestWorkoutFlow(t *testing.T) {
	app, _ := newTestServer(t)
	tok := signupUser(t, app, "workouts@example.com")

	resp, body := doJSON(t, app, http.MethodPost, "/api/workouts/completed", tok, map[string]any{
		"name": "Morning Run", "type": "Cardio", "actual_minutes": 30,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	require.Equal(t, float64(30), body["planned_duration_minutes"])
	require.Equal(t, "medium", body["intensity"])
	workoutID := body["id"].(float64)

	resp, body = doJSON(t, app, http.MethodGet, "/api/workouts/today", tok, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, float64(1), body["total_count"])
	require.Equal(t, float64(30), body["total_minutes"])

	resp, body = doJSON(t, app, http.MethodGet, "/api/workouts/weekly-stats", tok, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, float64(1), body["total_workouts"])
	require.Equal(t, "2025-03-04", body["from"])
	require.Equal(t, "2025-03-10", body["to"])

	resp, _ = doJSON(t, app, http.MethodDelete,
		fmt.Sprintf("/api/workouts/completed/%d", int(workoutID)), tok, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = doJSON(t, app, http.MethodDelete,
		fmt.Sprintf("/api/workouts/completed/%d", int(workoutID)), tok, nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestWorkoutCatalog(t *testing.T) {
	app, _ := newTestServer(t)
	tok := signupUser(t, app, "catalog@example.com")

	resp, body := doJSON(t, app, http.MethodGet, "/api/workouts/types", tok, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NotEmpty(t, body["types"])

	resp, body = doJSON(t, app, http.MethodGet, "/api/workouts/templates?fitness_level=beginner", tok, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NotEmpty(t, body["templates"])

	resp, body = doJSON(t, app, http.MethodGet, "/api/workouts/templates/random?count=2", tok, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	templates := body["templates"].([]any)
	require.LessOrEqual(t, len(templates), 2)
	require.NotEmpty(t, templates)
}

func TestPreferencesFlow(t *testing.T) {
	app, _ := newTestServer(t)
	tok := signupUser(t, app, "prefs@example.com")

	// First read materializes defaults.
	resp, body := doJSON(t, app, http.MethodGet, "/api/preferences/", tok, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "beginner", body["fitness_level"])
	require.Equal(t, float64(2000), body["daily_calorie_goal"])

	resp, body = doJSON(t, app, http.MethodPut, "/api/preferences/", tok, map[string]any{
		"fitness_level": "advanced", "daily_calorie_goal": 2600,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "advanced", body["fitness_level"])

	resp, _ = doJSON(t, app, http.MethodPut, "/api/preferences/", tok, map[string]any{})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestProfileAndStats(t *testing.T) {
	app, _ := newTestServer(t)
	tok := signupUser(t, app, "profile@example.com")

	// Stats before the profile is complete: no recommendation.
	resp, body := doJSON(t, app, http.MethodGet, "/api/auth/stats", tok, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	_, has := body["recommended_calories"]
	require.False(t, has)

	resp, body = doJSON(t, app, http.MethodPut, "/api/auth/profile", tok, map[string]any{
		"age": 25, "gender": "male", "weight": 70, "height": 175, "activity_level": "moderate",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, float64(25), body["age"])

	resp, body = doJSON(t, app, http.MethodGet, "/api/auth/stats", tok, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, float64(2594), body["recommended_calories"])
}

func TestHealthEndpoints(t *testing.T) {
	app, _ := newTestServer(t)

	resp, body := doJSON(t, app, http.MethodGet, "/health/live", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "up", body["status"])

	resp, body = doJSON(t, app, http.MethodGet, "/health", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "healthy", body["status"])
}
