package handlers

import (
	"errors"

	"github.com/fittrackpro/backend/internal/auth"
	"github.com/fittrackpro/backend/internal/dto"
	"github.com/fittrackpro/backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type WorkoutExerciseHandler struct {
	weService *services.WorkoutExerciseService
}

func NewWorkoutExerciseHandler(weService *services.WorkoutExerciseService) *WorkoutExerciseHandler {
	return &WorkoutExerciseHandler{weService: weService}
}

func (h *WorkoutExerciseHandler) Create(c *fiber.Ctx) error {
	userID, err := auth.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Access denied",
		})
	}

	workoutID, err := uuid.Parse(c.Params("workoutId"))
	if err != nil {
		return workoutNotFound(c)
	}

	var req dto.CreateWorkoutExerciseRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	we, err := h.weService.Create(userID, workoutID, &req)
	if err != nil {
		return h.mapError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(dto.NewWorkoutExerciseResponse(we))
}

func (h *WorkoutExerciseHandler) List(c *fiber.Ctx) error {
	userID, err := auth.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Access denied",
		})
	}

	workoutID, err := uuid.Parse(c.Params("workoutId"))
	if err != nil {
		return workoutNotFound(c)
	}

	exercises, err := h.weService.List(userID, workoutID)
	if err != nil {
		return h.mapError(c, err)
	}

	resp := make([]dto.WorkoutExerciseResponse, 0, len(exercises))
	for i := range exercises {
		resp = append(resp, dto.NewWorkoutExerciseResponse(&exercises[i]))
	}
	return c.JSON(resp)
}

func (h *WorkoutExerciseHandler) Update(c *fiber.Ctx) error {
	userID, err := auth.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Access denied",
		})
	}

	workoutID, err := uuid.Parse(c.Params("workoutId"))
	if err != nil {
		return workoutNotFound(c)
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return workoutExerciseNotFound(c)
	}

	var req dto.UpdateWorkoutExerciseRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	we, err := h.weService.Update(userID, workoutID, id, &req)
	if err != nil {
		return h.mapError(c, err)
	}
	return c.JSON(dto.NewWorkoutExerciseResponse(we))
}

func (h *WorkoutExerciseHandler) Delete(c *fiber.Ctx) error {
	userID, err := auth.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Access denied",
		})
	}

	workoutID, err := uuid.Parse(c.Params("workoutId"))
	if err != nil {
		return workoutNotFound(c)
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return workoutExerciseNotFound(c)
	}

	if err := h.weService.Delete(userID, workoutID, id); err != nil {
		return h.mapError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *WorkoutExerciseHandler) mapError(c *fiber.Ctx, err error) error {
	var vErr *services.ValidationError
	switch {
	case errors.Is(err, services.ErrExerciseIDRequired):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "exerciseId is required",
		})
	case errors.Is(err, services.ErrWorkoutNotFound):
		return workoutNotFound(c)
	case errors.Is(err, services.ErrExerciseNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: "Exercise not found",
		})
	case errors.Is(err, services.ErrDuplicateExercise):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "This exercise is already in the workout. Edit or remove it instead.",
		})
	case errors.Is(err, services.ErrWorkoutExerciseNotFound):
		return workoutExerciseNotFound(c)
	case errors.As(err, &vErr):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ValidationErrorResponse{
			Error: true, Message: "Validation failed", Errors: vErr.Errors,
		})
	}
	return err
}

func workoutExerciseNotFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
		Error: true, Message: "WorkoutExercise not found",
	})
}
