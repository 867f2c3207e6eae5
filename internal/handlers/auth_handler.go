package handlers

import (
	"errors"

	"github.com/fittrackpro/backend/internal/auth"
	"github.com/fittrackpro/backend/internal/dto"
	"github.com/fittrackpro/backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	authService *services.AuthService
}

func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	if err := h.authService.Register(&req); err != nil {
		switch {
		case errors.Is(err, services.ErrMissingFields):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: "Email, name and password are required",
			})
		case errors.Is(err, services.ErrPasswordTooShort):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: "Password must be at least 8 characters",
			})
		case errors.Is(err, services.ErrEmailTaken):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
				Error: true, Message: "Email already registered",
			})
		}
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(dto.MessageResponse{
		Message: "User created successfully",
	})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	token, err := h.authService.Login(&req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrMissingFields):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: "Email and password are required",
			})
		case errors.Is(err, services.ErrInvalidCredentials):
			// Same message for unknown email and wrong password.
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: true, Message: "Authentication failed",
			})
		}
		return err
	}

	return c.JSON(dto.LoginResponse{Token: token})
}

func (h *AuthHandler) CurrentUser(c *fiber.Ctx) error {
	userID, err := auth.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Access denied",
		})
	}

	user, err := h.authService.CurrentUser(userID)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "User not found",
			})
		}
		return err
	}

	return c.JSON(dto.UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		Name:      user.Name,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	})
}
