package server

import (
	"bitacora/internal/models"
	"bitacora/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetCurrentUser handles GET /user. The identity comes from the verified
// token; a 404 means the token outlived its backing row.
func (s *Server) GetCurrentUser(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	user, err := s.userService.GetUser(c.Context(), userID)
	if err != nil {
		return respondServiceError(c, "get current user", userID, err)
	}

	return c.JSON(user.Profile())
}

// GetUser handles GET /users/:id (public profile lookup).
func (s *Server) GetUser(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	user, err := s.userService.GetUser(c.Context(), id)
	if err != nil {
		return respondServiceError(c, "get user", id, err)
	}

	return c.JSON(user.Profile())
}

// UpdateUser handles PUT /users/:id. Only the account owner may update it;
// any subset of {name, email, password} is accepted but not an empty one.
func (s *Server) UpdateUser(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	targetID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if targetID != userID {
		return models.RespondWithError(c, fiber.StatusForbidden,
			models.NewForbiddenError("You can only update your own account"))
	}

	var req struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if parseErr := c.BodyParser(&req); parseErr != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	user, err := s.userService.UpdateUser(c.Context(), service.UpdateUserInput{
		UserID:   targetID,
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return respondServiceError(c, "update user", targetID, err)
	}

	return c.JSON(fiber.Map{
		"message": "User updated",
		"user":    user.Profile(),
	})
}

// DeleteUser handles DELETE /users/:id. Only the account owner may delete it.
func (s *Server) DeleteUser(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	targetID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if targetID != userID {
		return models.RespondWithError(c, fiber.StatusForbidden,
			models.NewForbiddenError("You can only delete your own account"))
	}

	if err := s.userService.DeleteUser(c.Context(), targetID); err != nil {
		return respondServiceError(c, "delete user", targetID, err)
	}

	return c.JSON(fiber.Map{"message": "User deleted"})
}
