package server

import (
	"bitacora/internal/models"
	"bitacora/internal/service"

	"github.com/gofiber/fiber/v2"
)

// Register handles POST /register. It validates every field at once, hashes
// the password, and returns the created user's public profile.
func (s *Server) Register(c *fiber.Ctx) error {
	var req struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	user, err := s.userService.Register(c.Context(), service.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return respondServiceError(c, "register user", 0, err)
	}

	return c.JSON(user.Profile())
}

// Login handles POST /login. The failure response is identical whether the
// email is unknown or the password mismatches.
func (s *Server) Login(c *fiber.Ctx) error {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	user, err := s.userService.Authenticate(c.Context(), req.Email, req.Password)
	if err != nil {
		return respondServiceError(c, "login", 0, err)
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return respondServiceError(c, "issue token", user.ID, models.NewInternalError(err))
	}

	return c.JSON(fiber.Map{"token": token})
}
