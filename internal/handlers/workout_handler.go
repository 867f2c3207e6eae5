package handlers

import (
	"errors"

	"github.com/fittrackpro/backend/internal/auth"
	"github.com/fittrackpro/backend/internal/dto"
	"github.com/fittrackpro/backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type WorkoutHandler struct {
	workoutService *services.WorkoutService
}

func NewWorkoutHandler(workoutService *services.WorkoutService) *WorkoutHandler {
	return &WorkoutHandler{workoutService: workoutService}
}

func (h *WorkoutHandler) Create(c *fiber.Ctx) error {
	userID, err := auth.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Access denied",
		})
	}

	var req dto.CreateWorkoutRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	if req.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Workout name is required",
		})
	}

	workout, err := h.workoutService.Create(userID, &req)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(dto.NewWorkoutResponse(workout))
}

func (h *WorkoutHandler) List(c *fiber.Ctx) error {
	userID, err := auth.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Access denied",
		})
	}

	workouts, err := h.workoutService.List(userID)
	if err != nil {
		return err
	}

	resp := make([]dto.WorkoutResponse, 0, len(workouts))
	for i := range workouts {
		resp = append(resp, dto.NewWorkoutResponse(&workouts[i]))
	}
	return c.JSON(resp)
}

func (h *WorkoutHandler) Get(c *fiber.Ctx) error {
	userID, err := auth.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Access denied",
		})
	}

	workoutID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return workoutNotFound(c)
	}

	workout, err := h.workoutService.Get(workoutID, userID)
	if err != nil {
		if errors.Is(err, services.ErrWorkoutNotFound) {
			return workoutNotFound(c)
		}
		return err
	}
	return c.JSON(dto.NewWorkoutResponse(workout))
}

func (h *WorkoutHandler) Update(c *fiber.Ctx) error {
	userID, err := auth.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Access denied",
		})
	}

	workoutID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return workoutNotFound(c)
	}

	var req dto.UpdateWorkoutRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	workout, err := h.workoutService.Update(workoutID, userID, &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmptyUpdate):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: "Empty Update Error: At least one field should be included in update",
			})
		case errors.Is(err, services.ErrWorkoutNotFound):
			return workoutNotFound(c)
		}
		return err
	}
	return c.JSON(dto.NewWorkoutResponse(workout))
}

func (h *WorkoutHandler) Delete(c *fiber.Ctx) error {
	userID, err := auth.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Access denied",
		})
	}

	workoutID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return workoutNotFound(c)
	}

	if err := h.workoutService.Delete(workoutID, userID); err != nil {
		if errors.Is(err, services.ErrWorkoutNotFound) {
			return workoutNotFound(c)
		}
		return err
	}
	return c.JSON(dto.MessageResponse{Message: "Workout deleted"})
}

func workoutNotFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
		Error: true, Message: "Workout not found",
	})
}
