package routes

import (
	"time"

	"github.com/fittrackpro/backend/internal/config"
	"github.com/fittrackpro/backend/internal/handlers"
	"github.com/fittrackpro/backend/internal/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	authHandler *handlers.AuthHandler,
	healthHandler *handlers.HealthHandler,
	exerciseHandler *handlers.ExerciseHandler,
	workoutHandler *handlers.WorkoutHandler,
	weHandler *handlers.WorkoutExerciseHandler,
) {
	api := app.Group("/api/v1")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", healthHandler.Check)

	// Auth endpoints are public but get a stricter limit: 10 req/min per IP
	authLimiter := limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	})
	api.Post("/register", authLimiter, authHandler.Register)
	api.Post("/login", authLimiter, authHandler.Login)
	api.Post("/me", middleware.Protected(cfg), authHandler.CurrentUser)

	// Exercise catalog (read-only reference data)
	exercises := api.Group("/exercises", middleware.Protected(cfg))
	exercises.Get("/", exerciseHandler.List)
	exercises.Get("/category/:category", exerciseHandler.ListByCategory)
	exercises.Get("/muscleGroup/:muscleGroup", exerciseHandler.ListByMuscleGroup)
	// /search must register before /:id so the literal segment wins.
	exercises.Get("/search", exerciseHandler.Search)
	exercises.Get("/:id", exerciseHandler.GetByID)

	// Workouts (owner-scoped)
	workouts := api.Group("/workouts", middleware.Protected(cfg))
	workouts.Post("/", workoutHandler.Create)
	workouts.Get("/", workoutHandler.List)
	workouts.Get("/:id", workoutHandler.Get)
	workouts.Put("/:id", workoutHandler.Update)
	workouts.Delete("/:id", workoutHandler.Delete)

	// Workout exercises (owner-scoped through the parent workout)
	we := api.Group("/workoutexercises", middleware.Protected(cfg))
	we.Post("/:workoutId/exercises", weHandler.Create)
	we.Get("/:workoutId/exercises", weHandler.List)
	we.Put("/:workoutId/exercises/:id", weHandler.Update)
	we.Delete("/:workoutId/exercises/:id", weHandler.Delete)
}
