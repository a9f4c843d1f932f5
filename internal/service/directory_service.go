package service

import (
	"bytes"
	"context"
	"sort"
	"strconv"
	"strings"

	"github.com/gokulsivas/ThinkSync/internal/cache"
	"github.com/gokulsivas/ThinkSync/internal/models"
	"github.com/gokulsivas/ThinkSync/internal/repository"
)

// Directory sort options. Relevance keeps the storage order, so ties under
// any other sort preserve relevance order (the sorts are stable).
const (
	SortRelevance    = "relevance"
	SortHIndexDesc   = "h_index_desc"
	SortPubCountDesc = "pub_count_desc"
	SortNameAsc      = "name_asc"
)

// ResearcherEntry is one directory row, already redacted for the viewer.
type ResearcherEntry struct {
	UserID           uint     `json:"user_id"`
	Name             string   `json:"name"`
	Affiliation      string   `json:"affiliation"`
	Expertise        []string `json:"expertise"`
	HIndex           *int     `json:"h_index,omitempty"`
	PublicationCount *int     `json:"publication_count,omitempty"`
	Region           string   `json:"region"`
	InstitutionType  string   `json:"institution_type"`
	FundingStatus    string   `json:"funding_status"`
	IsActive         bool     `json:"is_active"`
	Summary          string   `json:"summary"`
	IsPublic         bool     `json:"is_public"`

	// retained for sorting after redaction hides the public fields
	hIndex   int
	pubCount int
}

// SearchInput is the directory search request. Filter sets OR within a
// category and AND across categories.
type SearchInput struct {
	ViewerID         uint
	ViewerIsAdmin    bool
	Query            string
	InstitutionTypes []string
	FundingStatuses  []string
	Regions          []string
	ActiveOnly       bool
	SortBy           string
}

// SaveSearchInput is the payload for persisting a named search snapshot.
type SaveSearchInput struct {
	UserID           uint
	Name             string
	Query            string
	InstitutionTypes []string
	FundingStatuses  []string
	Regions          []string
	ActiveOnly       bool
	SortBy           string
}

// DirectoryService implements researcher search, saved searches and CSV
// export over the joined user+profile rows.
type DirectoryService struct {
	userRepo  repository.UserRepository
	savedRepo repository.SavedSearchRepository
}

// NewDirectoryService returns a new DirectoryService.
func NewDirectoryService(userRepo repository.UserRepository, savedRepo repository.SavedSearchRepository) *DirectoryService {
	return &DirectoryService{userRepo: userRepo, savedRepo: savedRepo}
}

// Search filters, redacts and sorts the researcher directory for the viewer.
func (s *DirectoryService) Search(ctx context.Context, in SearchInput) ([]ResearcherEntry, error) {
	entries, err := s.loadEntries(ctx, in.ViewerID, in.ViewerIsAdmin)
	if err != nil {
		return nil, err
	}

	filtered := filterEntries(entries, in)
	sortEntries(filtered, in.SortBy)
	return filtered, nil
}

func (s *DirectoryService) loadEntries(ctx context.Context, viewerID uint, viewerIsAdmin bool) ([]ResearcherEntry, error) {
	var users []models.User
	err := cache.Aside(ctx, cache.DirectoryKey, &users, cache.DirectoryTTL, func() error {
		var fetchErr error
		users, fetchErr = s.userRepo.ListWithProfiles(ctx)
		return fetchErr
	})
	if err != nil {
		return nil, err
	}

	entries := make([]ResearcherEntry, 0, len(users))
	for i := range users {
		user := &users[i]
		if user.Profile == nil {
			continue
		}
		profile := user.Profile
		profile.Normalize()

		entry := ResearcherEntry{
			UserID:          user.ID,
			Name:            user.Name,
			Affiliation:     user.Affiliation,
			Expertise:       profile.ResearchInterests,
			Region:          profile.Region,
			InstitutionType: profile.InstitutionType,
			FundingStatus:   profile.FundingStatus,
			IsActive:        profile.IsActive,
			Summary:         profile.Bio,
			IsPublic:        profile.IsPublic,
			hIndex:          profile.HIndex,
			pubCount:        profile.PublicationCount,
		}

		redact := !profile.IsPublic && user.ID != viewerID && !viewerIsAdmin
		if !redact {
			h := profile.HIndex
			p := profile.PublicationCount
			entry.HIndex = &h
			entry.PublicationCount = &p
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func filterEntries(entries []ResearcherEntry, in SearchInput) []ResearcherEntry {
	query := strings.ToLower(strings.TrimSpace(in.Query))
	out := make([]ResearcherEntry, 0, len(entries))

	for _, e := range entries {
		if in.ActiveOnly && !e.IsActive {
			continue
		}
		if !matchesSet(in.InstitutionTypes, e.InstitutionType) {
			continue
		}
		if !matchesSet(in.FundingStatuses, e.FundingStatus) {
			continue
		}
		if !matchesSet(in.Regions, e.Region) {
			continue
		}
		if query != "" && !matchesQuery(e, query) {
			continue
		}
		out = append(out, e)
	}
	return out
}

// matchesSet implements OR-within-category: an empty set matches everything.
func matchesSet(set []string, value string) bool {
	if len(set) == 0 {
		return true
	}
	for _, s := range set {
		if strings.EqualFold(s, value) {
			return true
		}
	}
	return false
}

func matchesQuery(e ResearcherEntry, query string) bool {
	if strings.Contains(strings.ToLower(e.Name), query) {
		return true
	}
	if strings.Contains(strings.ToLower(e.Affiliation), query) {
		return true
	}
	for _, topic := range e.Expertise {
		if strings.Contains(strings.ToLower(topic), query) {
			return true
		}
	}
	return false
}

func sortEntries(entries []ResearcherEntry, sortBy string) {
	switch sortBy {
	case SortHIndexDesc:
		sort.SliceStable(entries, func(i, j int) bool {
			return entries[i].hIndex > entries[j].hIndex
		})
	case SortPubCountDesc:
		sort.SliceStable(entries, func(i, j int) bool {
			return entries[i].pubCount > entries[j].pubCount
		})
	case SortNameAsc:
		sort.SliceStable(entries, func(i, j int) bool {
			return strings.ToLower(entries[i].Name) < strings.ToLower(entries[j].Name)
		})
	default:
		// relevance: keep input order
	}
}

// ExportCSV renders the filtered, sorted result set with the fixed column
// order the export contract promises. Expertise and Summary cells are always
// quoted; the other cells only when they contain a delimiter. Redacted
// numeric fields export as empty cells.
func (s *DirectoryService) ExportCSV(ctx context.Context, in SearchInput) ([]byte, error) {
	entries, err := s.Search(ctx, in)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	buf.WriteString("Name,Affiliation,Expertise,h-Index,Publication Count,Region,Institution Type,Funding Status,Active,Summary\n")

	for _, e := range entries {
		active := "No"
		if e.IsActive {
			active = "Yes"
		}
		cells := []string{
			csvCell(e.Name, false),
			csvCell(e.Affiliation, false),
			csvCell(strings.Join(e.Expertise, "; "), true),
			intCell(e.HIndex),
			intCell(e.PublicationCount),
			csvCell(e.Region, false),
			csvCell(e.InstitutionType, false),
			csvCell(e.FundingStatus, false),
			active,
			csvCell(e.Summary, true),
		}
		buf.WriteString(strings.Join(cells, ","))
		buf.WriteByte('\n')
	}

	return buf.Bytes(), nil
}

func csvCell(s string, forceQuote bool) string {
	if forceQuote || strings.ContainsAny(s, ",\"\n") {
		return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
	}
	return s
}

func intCell(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}

// SaveSearch persists a named snapshot of the full search state.
func (s *DirectoryService) SaveSearch(ctx context.Context, in SaveSearchInput) (*models.SavedSearch, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, models.NewValidationError("Search name is required")
	}
	switch in.SortBy {
	case "", SortRelevance, SortHIndexDesc, SortPubCountDesc, SortNameAsc:
	default:
		return nil, models.NewValidationError("Unknown sort option")
	}

	search := &models.SavedSearch{
		UserID:           in.UserID,
		Name:             name,
		Query:            in.Query,
		InstitutionTypes: in.InstitutionTypes,
		FundingStatuses:  in.FundingStatuses,
		Regions:          in.Regions,
		ActiveOnly:       in.ActiveOnly,
		SortBy:           in.SortBy,
	}
	if search.SortBy == "" {
		search.SortBy = SortRelevance
	}
	if err := s.savedRepo.Create(ctx, search); err != nil {
		return nil, err
	}
	return search, nil
}

// ListSavedSearches returns the caller's saved searches, newest first.
func (s *DirectoryService) ListSavedSearches(ctx context.Context, userID uint) ([]models.SavedSearch, error) {
	return s.savedRepo.ListByUser(ctx, userID)
}

// DeleteSavedSearch removes one of the caller's saved searches.
func (s *DirectoryService) DeleteSavedSearch(ctx context.Context, id, userID uint) error {
	return s.savedRepo.Delete(ctx, id, userID)
}
