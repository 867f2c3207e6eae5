package middleware

import (
	"errors"

	"github.com/fittrackpro/backend/internal/config"
	"github.com/fittrackpro/backend/internal/dto"
	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// Protected gates a route behind a bearer token. The 401 message
// distinguishes a missing token, an expired one, and everything else.
func Protected(cfg *config.Config) fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey: jwtware.SigningKey{Key: []byte(cfg.JWTSecret)},
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			message := "Invalid Token"
			switch {
			case errors.Is(err, jwtware.ErrJWTMissingOrMalformed):
				message = "Access denied"
			case errors.Is(err, jwt.ErrTokenExpired):
				message = "Token expired"
			}
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error:   true,
				Message: message,
			})
		},
	})
}
