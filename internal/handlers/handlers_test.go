package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/fittrackpro/backend/internal/config"
	"github.com/fittrackpro/backend/internal/handlers"
	"github.com/fittrackpro/backend/internal/models"
	"github.com/fittrackpro/backend/internal/routes"
	"github.com/fittrackpro/backend/internal/services"
)

func setupApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Exercise{},
		&models.Workout{},
		&models.WorkoutExercise{},
	))

	cfg := &config.Config{JWTSecret: "test-secret", JWTExpiry: time.Hour}

	authService := services.NewAuthService(db, cfg)
	exerciseService := services.NewExerciseService(db)
	workoutService := services.NewWorkoutService(db)
	weService := services.NewWorkoutExerciseService(db)

	app := fiber.New()
	routes.Setup(app, cfg,
		handlers.NewAuthHandler(authService),
		handlers.NewHealthHandler(db),
		handlers.NewExerciseHandler(exerciseService),
		handlers.NewWorkoutHandler(workoutService),
		handlers.NewWorkoutExerciseHandler(weService),
	)
	return app, db
}

func seedExercise(t *testing.T, db *gorm.DB, name string, category models.Category, groups ...string) models.Exercise {
	t.Helper()
	ex := models.Exercise{
		ID:           uuid.New(),
		Name:         name,
		Category:     category,
		MuscleGroups: pq.StringArray(groups),
	}
	require.NoError(t, db.Create(&ex).Error)
	return ex
}

func request(t *testing.T, app *fiber.App, method, path, token string, body any) (*http.Response, []byte) {
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
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	resp.Body.Close()
	return resp, raw
}

func decode(t *testing.T, raw []byte, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(raw, out), "body: %s", raw)
}

func registerAndLogin(t *testing.T, app *fiber.App, email string) string {
	t.Helper()

	resp, _ := request(t, app, "POST", "/api/v1/register", "", fiber.Map{
		"email": email, "name": "Test User", "password": "password123",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp, raw := request(t, app, "POST", "/api/v1/login", "", fiber.Map{
		"email": email, "password": "password123",
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var login struct {
		Token string `json:"token"`
	}
	decode(t, raw, &login)
	require.NotEmpty(t, login.Token)
	return login.Token
}

func TestRegisterAndLoginFlow(t *testing.T) {
	app, _ := setupApp(t)

	resp, raw := request(t, app, "POST", "/api/v1/register", "", fiber.Map{
		"email": "sam@example.com", "password": "password123",
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, string(raw), "Email, name and password are required")

	resp, raw = request(t, app, "POST", "/api/v1/register", "", fiber.Map{
		"email": "sam@example.com", "name": "Sam", "password": "short",
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, string(raw), "Password must be at least 8 characters")

	resp, _ = request(t, app, "POST", "/api/v1/register", "", fiber.Map{
		"email": "sam@example.com", "name": "Sam", "password": "password123",
	})
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp, raw = request(t, app, "POST", "/api/v1/register", "", fiber.Map{
		"email": "sam@example.com", "name": "Sam", "password": "password123",
	})
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	assert.Contains(t, string(raw), "Email already registered")

	resp, raw = request(t, app, "POST", "/api/v1/login", "", fiber.Map{
		"email": "sam@example.com", "password": "wrong-password",
	})
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Contains(t, string(raw), "Authentication failed")

	resp, raw = request(t, app, "POST", "/api/v1/login", "", fiber.Map{
		"email": "sam@example.com", "password": "password123",
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var login struct {
		Token string `json:"token"`
	}
	decode(t, raw, &login)

	resp, raw = request(t, app, "POST", "/api/v1/me", login.Token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var me struct {
		Email string `json:"email"`
		Name  string `json:"name"`
	}
	decode(t, raw, &me)
	assert.Equal(t, "sam@example.com", me.Email)
	assert.Equal(t, "Sam", me.Name)
}

func TestExerciseCatalogEndpoints(t *testing.T) {
	app, db := setupApp(t)
	bench := seedExercise(t, db, "Bench Press", models.CategoryStrength, "chest", "arms")
	seedExercise(t, db, "Running", models.CategoryAerobic, "legs")
	token := registerAndLogin(t, app, "cat@example.com")

	resp, _ := request(t, app, "GET", "/api/v1/exercises", "", nil)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	resp, raw := request(t, app, "GET", "/api/v1/exercises", token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var list []map[string]any
	decode(t, raw, &list)
	assert.Len(t, list, 2)

	resp, raw = request(t, app, "GET", "/api/v1/exercises/category/Strength", token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	decode(t, raw, &list)
	require.Len(t, list, 1)
	assert.Equal(t, "Bench Press", list[0]["name"])

	resp, raw = request(t, app, "GET", "/api/v1/exercises/category/cardio", token, nil)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, string(raw), "Invalid Category")

	resp, raw = request(t, app, "GET", "/api/v1/exercises/muscleGroup/Chest", token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	decode(t, raw, &list)
	require.Len(t, list, 1)
	assert.Equal(t, "Bench Press", list[0]["name"])

	resp, raw = request(t, app, "GET", "/api/v1/exercises/muscleGroup/hands", token, nil)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, string(raw), "Invalid Muscle Group")

	resp, raw = request(t, app, "GET", "/api/v1/exercises/search", token, nil)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, string(raw), "No query parameter was passed")

	resp, raw = request(t, app, "GET", "/api/v1/exercises/search?query=bench", token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	decode(t, raw, &list)
	require.Len(t, list, 1)
	assert.Equal(t, "Bench Press", list[0]["name"])

	resp, raw = request(t, app, "GET", "/api/v1/exercises/"+bench.ID.String(), token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var single map[string]any
	decode(t, raw, &single)
	assert.Equal(t, "Bench Press", single["name"])

	resp, raw = request(t, app, "GET", "/api/v1/exercises/"+uuid.New().String(), token, nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Contains(t, string(raw), "Exercise not found")
}

func TestWorkoutLifecycle(t *testing.T) {
	app, db := setupApp(t)
	bench := seedExercise(t, db, "Bench Press", models.CategoryStrength, "chest")
	token := registerAndLogin(t, app, "lift@example.com")

	resp, raw := request(t, app, "POST", "/api/v1/workouts", token, fiber.Map{
		"notes": "no name given",
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, string(raw), "Workout name is required")

	resp, raw = request(t, app, "POST", "/api/v1/workouts", token, fiber.Map{
		"name": "Push Day", "notes": "heavy triples",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	var workout struct {
		ID   uuid.UUID `json:"id"`
		Name string    `json:"name"`
	}
	decode(t, raw, &workout)
	assert.Equal(t, "Push Day", workout.Name)

	wePath := fmt.Sprintf("/api/v1/workoutexercises/%s/exercises", workout.ID)

	// Strength metrics are all-or-nothing.
	resp, raw = request(t, app, "POST", wePath, token, fiber.Map{
		"exercise_id": bench.ID, "sets": 3, "reps": 8,
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	var vErr struct {
		Message string   `json:"message"`
		Errors  []string `json:"errors"`
	}
	decode(t, raw, &vErr)
	assert.Equal(t, "Validation failed", vErr.Message)
	assert.Contains(t, vErr.Errors, "Strength exercises must include sets, reps, and weight.")

	resp, raw = request(t, app, "POST", wePath, token, fiber.Map{
		"exercise_id": bench.ID, "sets": 3, "reps": 8, "weight": 80,
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	var we struct {
		ID       uuid.UUID `json:"id"`
		Sets     *int      `json:"sets"`
		Exercise struct {
			Name string `json:"name"`
		} `json:"exercise"`
	}
	decode(t, raw, &we)
	assert.Equal(t, "Bench Press", we.Exercise.Name)
	require.NotNil(t, we.Sets)
	assert.Equal(t, 3, *we.Sets)

	resp, raw = request(t, app, "POST", wePath, token, fiber.Map{
		"exercise_id": bench.ID, "sets": 5, "reps": 5, "weight": 90,
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, string(raw), "This exercise is already in the workout. Edit or remove it instead.")

	resp, raw = request(t, app, "GET", "/api/v1/workouts/"+workout.ID.String(), token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var detailed struct {
		Exercises []struct {
			Weight *float64 `json:"weight"`
		} `json:"exercises"`
	}
	decode(t, raw, &detailed)
	require.Len(t, detailed.Exercises, 1)
	require.NotNil(t, detailed.Exercises[0].Weight)
	assert.Equal(t, 80.0, *detailed.Exercises[0].Weight)

	// Another account cannot see or touch this workout.
	otherToken := registerAndLogin(t, app, "other@example.com")
	resp, raw = request(t, app, "GET", "/api/v1/workouts/"+workout.ID.String(), otherToken, nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Contains(t, string(raw), "Workout not found")

	resp, _ = request(t, app, "DELETE", wePath+"/"+we.ID.String(), otherToken, nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	resp, _ = request(t, app, "PUT", "/api/v1/workouts/"+workout.ID.String(), token, fiber.Map{})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp, raw = request(t, app, "PUT", "/api/v1/workouts/"+workout.ID.String(), token, fiber.Map{
		"name": "Push Day A",
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	decode(t, raw, &workout)
	assert.Equal(t, "Push Day A", workout.Name)

	resp, _ = request(t, app, "DELETE", wePath+"/"+we.ID.String(), token, nil)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)

	resp, raw = request(t, app, "GET", wePath, token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var remaining []map[string]any
	decode(t, raw, &remaining)
	assert.Empty(t, remaining)

	resp, raw = request(t, app, "DELETE", "/api/v1/workouts/"+workout.ID.String(), token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, string(raw), "Workout deleted")

	resp, _ = request(t, app, "GET", "/api/v1/workouts/"+workout.ID.String(), token, nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestHealthEndpoint(t *testing.T) {
	app, _ := setupApp(t)

	resp, raw := request(t, app, "GET", "/api/v1/health", "", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var health struct {
		Status string `json:"status"`
		DB     string `json:"db"`
	}
	decode(t, raw, &health)
	assert.Equal(t, "ok", health.Status)
	assert.Equal(t, "ok", health.DB)
}
