package server

import (
	"github.com/gofiber/fiber/v2"
)

// GetPendingPosts handles GET /api/admin/post_authorizations
func (s *Server) GetPendingPosts(c *fiber.Ctx) error {
	rows, err := s.moderationService.ListPending(c.Context())
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"pending_posts": rows,
	})
}

// ApprovePost handles POST /api/admin/post_authorizations/:id/approve
func (s *Server) ApprovePost(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	post, svcErr := s.moderationService.Approve(c.Context(), postID)
	if svcErr != nil {
		return respondServiceError(c, svcErr)
	}

	return c.JSON(fiber.Map{
		"message": "Post approved",
		"post":    post,
	})
}

// RejectPost handles POST /api/admin/post_authorizations/:id/reject
func (s *Server) RejectPost(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	post, svcErr := s.moderationService.Reject(c.Context(), postID)
	if svcErr != nil {
		return respondServiceError(c, svcErr)
	}

	return c.JSON(fiber.Map{
		"message": "Post rejected",
		"post":    post,
	})
}
