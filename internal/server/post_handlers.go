package server

import (
	"github.com/gokulsivas/ThinkSync/internal/models"
	"github.com/gokulsivas/ThinkSync/internal/service"

	"github.com/gofiber/fiber/v2"
)

// CreatePost handles POST /api/posts
func (s *Server) CreatePost(c *fiber.Ctx) error {
	var req struct {
		Content string `json:"content"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	identity := s.identity(c)
	post, err := s.postService.CreatePost(c.Context(), identity.UserID, req.Content)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Post submitted for review",
		"post":    post,
	})
}

// GetFeed handles GET /api/posts
func (s *Server) GetFeed(c *fiber.Ctx) error {
	identity := s.identity(c)
	page := parsePagination(c, 20)

	posts, err := s.postService.ListFeed(c.Context(), service.ListFeedInput{
		ViewerID:      identity.UserID,
		ViewerIsAdmin: identity.Role == models.RoleAdmin,
		Limit:         page.Limit,
		Offset:        page.Offset,
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"posts": posts,
	})
}

// GetMyPosts handles GET /api/posts/mine
func (s *Server) GetMyPosts(c *fiber.Ctx) error {
	identity := s.identity(c)
	page := parsePagination(c, 20)

	posts, err := s.postService.ListMine(c.Context(), identity.UserID, page.Limit, page.Offset)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"posts": posts,
	})
}
