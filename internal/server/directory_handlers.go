package server

import (
	"github.com/gokulsivas/ThinkSync/internal/models"
	"github.com/gokulsivas/ThinkSync/internal/service"

	"github.com/gofiber/fiber/v2"
)

func (s *Server) searchInputFromQuery(c *fiber.Ctx) service.SearchInput {
	identity := s.identity(c)
	return service.SearchInput{
		ViewerID:         identity.UserID,
		ViewerIsAdmin:    identity.Role == models.RoleAdmin,
		Query:            c.Query("q"),
		InstitutionTypes: parseCSVQuery(c, "institution_types"),
		FundingStatuses:  parseCSVQuery(c, "funding_statuses"),
		Regions:          parseCSVQuery(c, "regions"),
		ActiveOnly:       c.QueryBool("active_only", false),
		SortBy:           c.Query("sort_by", service.SortRelevance),
	}
}

// SearchResearchers handles GET /api/researchers
func (s *Server) SearchResearchers(c *fiber.Ctx) error {
	entries, err := s.directoryService.Search(c.Context(), s.searchInputFromQuery(c))
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"researchers": entries,
		"count":       len(entries),
	})
}

// ExportResearchers handles GET /api/researchers/export
func (s *Server) ExportResearchers(c *fiber.Ctx) error {
	data, err := s.directoryService.ExportCSV(c.Context(), s.searchInputFromQuery(c))
	if err != nil {
		return respondServiceError(c, err)
	}

	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="search_results.csv"`)
	return c.Send(data)
}

// CreateSavedSearch handles POST /api/searches
func (s *Server) CreateSavedSearch(c *fiber.Ctx) error {
	var req struct {
		Name             string   `json:"name"`
		Query            string   `json:"query"`
		InstitutionTypes []string `json:"institution_types"`
		FundingStatuses  []string `json:"funding_statuses"`
		Regions          []string `json:"regions"`
		ActiveOnly       bool     `json:"active_only"`
		SortBy           string   `json:"sort_by"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	identity := s.identity(c)
	search, err := s.directoryService.SaveSearch(c.Context(), service.SaveSearchInput{
		UserID:           identity.UserID,
		Name:             req.Name,
		Query:            req.Query,
		InstitutionTypes: req.InstitutionTypes,
		FundingStatuses:  req.FundingStatuses,
		Regions:          req.Regions,
		ActiveOnly:       req.ActiveOnly,
		SortBy:           req.SortBy,
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"saved_search": search,
	})
}

// GetSavedSearches handles GET /api/searches
func (s *Server) GetSavedSearches(c *fiber.Ctx) error {
	identity := s.identity(c)

	searches, err := s.directoryService.ListSavedSearches(c.Context(), identity.UserID)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"saved_searches": searches,
	})
}

// DeleteSavedSearch handles DELETE /api/searches/:id
func (s *Server) DeleteSavedSearch(c *fiber.Ctx) error {
	searchID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	identity := s.identity(c)
	if svcErr := s.directoryService.DeleteSavedSearch(c.Context(), searchID, identity.UserID); svcErr != nil {
		return respondServiceError(c, svcErr)
	}

	return c.JSON(fiber.Map{
		"success": true,
	})
}
