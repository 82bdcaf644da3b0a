package server

import (
	"bitacora/internal/models"
	"bitacora/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetComments handles GET /posts/:id/comments (public). An unknown post id
// yields an empty list.
func (s *Server) GetComments(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	comments, err := s.commentService.ListComments(c.Context(), postID)
	if err != nil {
		return respondServiceError(c, "list comments", postID, err)
	}

	return c.JSON(comments)
}

// CreateComment handles POST /posts/:id/comments.
func (s *Server) CreateComment(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Content string `json:"content"`
	}
	if parseErr := c.BodyParser(&req); parseErr != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	comment, err := s.commentService.CreateComment(c.Context(), service.CreateCommentInput{
		UserID:  userID,
		PostID:  postID,
		Content: req.Content,
	})
	if err != nil {
		return respondServiceError(c, "create comment", postID, err)
	}

	return c.JSON(comment)
}

// UpdateComment handles PUT /comments/:id. The owner check is folded into the
// store mutation, so foreign and missing comments both come back as 404.
func (s *Server) UpdateComment(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	commentID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Content string `json:"content"`
	}
	if parseErr := c.BodyParser(&req); parseErr != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	comment, err := s.commentService.UpdateComment(c.Context(), service.UpdateCommentInput{
		UserID:    userID,
		CommentID: commentID,
		Content:   req.Content,
	})
	if err != nil {
		return respondServiceError(c, "update comment", commentID, err)
	}

	return c.JSON(fiber.Map{
		"id":      comment.ID,
		"content": comment.Content,
	})
}

// DeleteComment handles DELETE /comments/:id.
func (s *Server) DeleteComment(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	commentID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.commentService.DeleteComment(c.Context(), userID, commentID); err != nil {
		return respondServiceError(c, "delete comment", commentID, err)
	}

	return c.JSON(fiber.Map{"message": "Comment deleted"})
}
