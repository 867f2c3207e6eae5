package handlers

import (
	"errors"

	"github.com/fittrackpro/backend/internal/dto"
	"github.com/fittrackpro/backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ExerciseHandler struct {
	exerciseService *services.ExerciseService
}

func NewExerciseHandler(exerciseService *services.ExerciseService) *ExerciseHandler {
	return &ExerciseHandler{exerciseService: exerciseService}
}

func (h *ExerciseHandler) List(c *fiber.Ctx) error {
	exercises, err := h.exerciseService.GetAll()
	if err != nil {
		return err
	}
	return c.JSON(exercises)
}

func (h *ExerciseHandler) ListByCategory(c *fiber.Ctx) error {
	exercises, err := h.exerciseService.GetByCategory(c.Params("category"))
	if err != nil {
		if errors.Is(err, services.ErrInvalidCategory) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: "Invalid Category",
			})
		}
		return err
	}
	return c.JSON(exercises)
}

func (h *ExerciseHandler) ListByMuscleGroup(c *fiber.Ctx) error {
	exercises, err := h.exerciseService.GetByMuscleGroup(c.Params("muscleGroup"))
	if err != nil {
		if errors.Is(err, services.ErrInvalidMuscleGroup) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: "Invalid Muscle Group",
			})
		}
		return err
	}
	return c.JSON(exercises)
}

func (h *ExerciseHandler) Search(c *fiber.Ctx) error {
	query := c.Query("query")
	if query == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "No query parameter was passed",
		})
	}

	exercises, err := h.exerciseService.Search(query)
	if err != nil {
		return err
	}
	return c.JSON(exercises)
}

func (h *ExerciseHandler) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: "Exercise not found",
		})
	}

	exercise, err := h.exerciseService.GetByID(id)
	if err != nil {
		if errors.Is(err, services.ErrExerciseNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Exercise not found",
			})
		}
		return err
	}
	return c.JSON(exercise)
}
