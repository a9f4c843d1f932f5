package server

import (
	"fmt"
	"strconv"
	"time"

	"github.com/gokulsivas/ThinkSync/internal/models"
	"github.com/gokulsivas/ThinkSync/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Register handles POST /api/auth/register
func (s *Server) Register(c *fiber.Ctx) error {
	var req service.RegisterInput
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	user, err := s.authService.Register(c.Context(), req)
	if err != nil {
		// A taken email answers 400 here; the API contract predates the
		// conflict code and clients key off the message.
		if appErr, ok := err.(*models.AppError); ok && appErr.Code == "CONFLICT" {
			return models.RespondWithError(c, fiber.StatusBadRequest, err)
		}
		return respondServiceError(c, err)
	}

	token, expiresIn, err := s.generateToken(user)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":      "Registration successful",
		"user":         user,
		"access_token": token,
		"token_type":   "bearer",
		"expires_in":   expiresIn,
	})
}

// Login handles POST /api/auth/login
func (s *Server) Login(c *fiber.Ctx) error {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	user, err := s.authService.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		return respondServiceError(c, err)
	}

	token, expiresIn, err := s.generateToken(user)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}

	return c.JSON(fiber.Map{
		"message":      "Login successful",
		"user":         user,
		"access_token": token,
		"token_type":   "bearer",
		"expires_in":   expiresIn,
	})
}

// MyProfile handles GET /api/auth/profile
func (s *Server) MyProfile(c *fiber.Ctx) error {
	identity := s.identity(c)

	user, err := s.authService.GetUser(c.Context(), identity.UserID)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"user":    user,
	})
}

// generateToken creates a signed JWT for the user and returns it together
// with the lifetime in seconds.
func (s *Server) generateToken(user *models.User) (string, int, error) {
	if s.config.JWTSecret == "" {
		return "", 0, fmt.Errorf("JWT secret not configured")
	}

	ttl := time.Duration(s.config.JWTTTLMinutes) * time.Minute
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   strconv.FormatUint(uint64(user.ID), 10),
		"email": user.Email,
		"role":  string(user.Role),
		"iss":   tokenIssuer,
		"aud":   tokenAudience,
		"exp":   now.Add(ttl).Unix(),
		"iat":   now.Unix(),
		"nbf":   now.Unix(),
		"jti":   generateJTI(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.config.JWTSecret))
	if err != nil {
		return "", 0, err
	}
	return signed, int(ttl.Seconds()), nil
}

// generateJTI creates a unique token ID.
func generateJTI() string {
	return fmt.Sprintf("%d-%s", time.Now().Unix(), uuid.New().String()[:8])
}
