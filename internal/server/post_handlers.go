package server

import (
	"bitacora/internal/models"
	"bitacora/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetAllPosts handles GET /posts/all (public). Every post is returned unless
// the caller paginates explicitly.
func (s *Server) GetAllPosts(c *fiber.Ctx) error {
	page := parsePagination(c)

	posts, err := s.postService.ListPosts(c.Context(), page.Limit, page.Offset)
	if err != nil {
		return respondServiceError(c, "list posts", 0, err)
	}

	return c.JSON(posts)
}

// GetMyPosts handles GET /posts, filtered to the authenticated caller.
func (s *Server) GetMyPosts(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	page := parsePagination(c)

	posts, err := s.postService.ListUserPosts(c.Context(), userID, page.Limit, page.Offset)
	if err != nil {
		return respondServiceError(c, "list user posts", userID, err)
	}

	return c.JSON(posts)
}

// GetPost handles GET /posts/:id (public).
func (s *Server) GetPost(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	post, err := s.postService.GetPost(c.Context(), id)
	if err != nil {
		return respondServiceError(c, "get post", id, err)
	}

	return c.JSON(post)
}

// CreatePost handles POST /posts. The owner is always the authenticated caller.
func (s *Server) CreatePost(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var req struct {
		Title   string `json:"title"`
		Content string `json:"content"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	post, err := s.postService.CreatePost(c.Context(), service.CreatePostInput{
		UserID:  userID,
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		return respondServiceError(c, "create post", userID, err)
	}

	return c.JSON(post)
}

// UpdatePost handles PUT /posts/:id. The post is loaded first, so an absent
// post yields 404 while a foreign post yields 403.
func (s *Server) UpdatePost(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Title   string `json:"title"`
		Content string `json:"content"`
	}
	if parseErr := c.BodyParser(&req); parseErr != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	post, err := s.postService.UpdatePost(c.Context(), service.UpdatePostInput{
		UserID:  userID,
		PostID:  postID,
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		return respondServiceError(c, "update post", postID, err)
	}

	return c.JSON(fiber.Map{
		"message": "Post updated",
		"post":    post,
	})
}

// DeletePost handles DELETE /posts/:id. The post's comments are removed with
// it in a single transaction.
func (s *Server) DeletePost(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.postService.DeletePost(c.Context(), userID, postID); err != nil {
		return respondServiceError(c, "delete post", postID, err)
	}

	return c.JSON(fiber.Map{"message": "Post and its comments deleted"})
}
