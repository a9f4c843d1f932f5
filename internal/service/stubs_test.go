package service

import (
	"context"
	"errors"
	"testing"

	"github.com/gokulsivas/ThinkSync/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// userRepoStub is a stub for repository.UserRepository.
type userRepoStub struct {
	getByIDFn          func(context.Context, uint) (*models.User, error)
	getByEmailFn       func(context.Context, string) (*models.User, error)
	createFn           func(context.Context, *models.User) error
	updateFn           func(context.Context, *models.User) error
	listWithProfilesFn func(context.Context) ([]models.User, error)
}

func (s *userRepoStub) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}
func (s *userRepoStub) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getByEmailFn(ctx, email)
}
func (s *userRepoStub) Create(ctx context.Context, user *models.User) error {
	return s.createFn(ctx, user)
}
func (s *userRepoStub) Update(ctx context.Context, user *models.User) error {
	return s.updateFn(ctx, user)
}
func (s *userRepoStub) ListWithProfiles(ctx context.Context) ([]models.User, error) {
	return s.listWithProfilesFn(ctx)
}

func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		getByIDFn:          func(_ context.Context, id uint) (*models.User, error) { return &models.User{ID: id}, nil },
		getByEmailFn:       func(_ context.Context, _ string) (*models.User, error) { return nil, nil },
		createFn:           func(_ context.Context, u *models.User) error { u.ID = 1; return nil },
		updateFn:           func(_ context.Context, _ *models.User) error { return nil },
		listWithProfilesFn: func(_ context.Context) ([]models.User, error) { return nil, nil },
	}
}

// profileRepoStub is a stub for repository.ProfileRepository.
type profileRepoStub struct {
	getByUserIDFn func(context.Context, uint) (*models.Profile, error)
	createFn      func(context.Context, *models.Profile) error
	saveFn        func(context.Context, *models.Profile) error
}

func (s *profileRepoStub) GetByUserID(ctx context.Context, userID uint) (*models.Profile, error) {
	return s.getByUserIDFn(ctx, userID)
}
func (s *profileRepoStub) Create(ctx context.Context, profile *models.Profile) error {
	return s.createFn(ctx, profile)
}
func (s *profileRepoStub) Save(ctx context.Context, profile *models.Profile) error {
	return s.saveFn(ctx, profile)
}

func noopProfileRepo() *profileRepoStub {
	return &profileRepoStub{
		getByUserIDFn: func(_ context.Context, userID uint) (*models.Profile, error) {
			return &models.Profile{ID: userID, UserID: userID, IsPublic: true, IsActive: true}, nil
		},
		createFn: func(_ context.Context, _ *models.Profile) error { return nil },
		saveFn:   func(_ context.Context, _ *models.Profile) error { return nil },
	}
}

// postRepoStub is a stub for repository.PostRepository.
type postRepoStub struct {
	createFn       func(context.Context, *models.Post) error
	getByIDFn      func(context.Context, uint) (*models.Post, error)
	listVisibleFn  func(context.Context, uint, bool, int, int) ([]models.Post, error)
	listByAuthorFn func(context.Context, uint, int, int) ([]models.Post, error)
	listPendingFn  func(context.Context) ([]models.Post, error)
	updateStatusFn func(context.Context, uint, models.PostStatus) error
}

func (s *postRepoStub) Create(ctx context.Context, post *models.Post) error {
	return s.createFn(ctx, post)
}
func (s *postRepoStub) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	return s.getByIDFn(ctx, id)
}
func (s *postRepoStub) ListVisible(ctx context.Context, viewerID uint, viewerIsAdmin bool, limit, offset int) ([]models.Post, error) {
	return s.listVisibleFn(ctx, viewerID, viewerIsAdmin, limit, offset)
}
func (s *postRepoStub) ListByAuthor(ctx context.Context, authorID uint, limit, offset int) ([]models.Post, error) {
	return s.listByAuthorFn(ctx, authorID, limit, offset)
}
func (s *postRepoStub) ListPending(ctx context.Context) ([]models.Post, error) {
	return s.listPendingFn(ctx)
}
func (s *postRepoStub) UpdateStatus(ctx context.Context, id uint, status models.PostStatus) error {
	return s.updateStatusFn(ctx, id, status)
}

func noopPostRepo() *postRepoStub {
	return &postRepoStub{
		createFn:  func(_ context.Context, p *models.Post) error { p.ID = 1; return nil },
		getByIDFn: func(_ context.Context, id uint) (*models.Post, error) { return &models.Post{ID: id}, nil },
		listVisibleFn: func(_ context.Context, _ uint, _ bool, _, _ int) ([]models.Post, error) {
			return nil, nil
		},
		listByAuthorFn: func(_ context.Context, _ uint, _, _ int) ([]models.Post, error) { return nil, nil },
		listPendingFn:  func(_ context.Context) ([]models.Post, error) { return nil, nil },
		updateStatusFn: func(_ context.Context, _ uint, _ models.PostStatus) error { return nil },
	}
}

// chatRepoStub is a stub for repository.ChatRepository.
type chatRepoStub struct {
	findDirectFn     func(context.Context, uint, uint) (*models.Conversation, error)
	createConvFn     func(context.Context, *models.Conversation) error
	getConvFn        func(context.Context, uint) (*models.Conversation, error)
	getUserConvsFn   func(context.Context, uint) ([]*models.Conversation, error)
	addParticipantFn func(context.Context, uint, uint) error
	isParticipantFn  func(context.Context, uint, uint) (bool, error)
	createMessageFn  func(context.Context, *models.Message) error
	getMessagesFn    func(context.Context, uint, int, int) ([]*models.Message, error)
	markConvReadFn   func(context.Context, uint, uint) error
}

func (s *chatRepoStub) FindDirectConversation(ctx context.Context, a, b uint) (*models.Conversation, error) {
	return s.findDirectFn(ctx, a, b)
}
func (s *chatRepoStub) CreateConversation(ctx context.Context, conv *models.Conversation) error {
	return s.createConvFn(ctx, conv)
}
func (s *chatRepoStub) GetConversation(ctx context.Context, id uint) (*models.Conversation, error) {
	return s.getConvFn(ctx, id)
}
func (s *chatRepoStub) GetUserConversations(ctx context.Context, userID uint) ([]*models.Conversation, error) {
	return s.getUserConvsFn(ctx, userID)
}
func (s *chatRepoStub) AddParticipant(ctx context.Context, convID, userID uint) error {
	return s.addParticipantFn(ctx, convID, userID)
}
func (s *chatRepoStub) IsParticipant(ctx context.Context, convID, userID uint) (bool, error) {
	return s.isParticipantFn(ctx, convID, userID)
}
func (s *chatRepoStub) CreateMessage(ctx context.Context, msg *models.Message) error {
	return s.createMessageFn(ctx, msg)
}
func (s *chatRepoStub) GetMessages(ctx context.Context, convID uint, limit, offset int) ([]*models.Message, error) {
	return s.getMessagesFn(ctx, convID, limit, offset)
}
func (s *chatRepoStub) MarkConversationRead(ctx context.Context, convID, userID uint) error {
	return s.markConvReadFn(ctx, convID, userID)
}

func noopChatRepo() *chatRepoStub {
	return &chatRepoStub{
		findDirectFn:     func(_ context.Context, _, _ uint) (*models.Conversation, error) { return nil, nil },
		createConvFn:     func(_ context.Context, c *models.Conversation) error { c.ID = 1; return nil },
		getConvFn:        func(_ context.Context, id uint) (*models.Conversation, error) { return &models.Conversation{ID: id}, nil },
		getUserConvsFn:   func(_ context.Context, _ uint) ([]*models.Conversation, error) { return nil, nil },
		addParticipantFn: func(_ context.Context, _, _ uint) error { return nil },
		isParticipantFn:  func(_ context.Context, _, _ uint) (bool, error) { return true, nil },
		createMessageFn:  func(_ context.Context, m *models.Message) error { m.ID = 1; return nil },
		getMessagesFn:    func(_ context.Context, _ uint, _, _ int) ([]*models.Message, error) { return nil, nil },
		markConvReadFn:   func(_ context.Context, _, _ uint) error { return nil },
	}
}

// savedSearchRepoStub is a stub for repository.SavedSearchRepository.
type savedSearchRepoStub struct {
	createFn     func(context.Context, *models.SavedSearch) error
	listByUserFn func(context.Context, uint) ([]models.SavedSearch, error)
	deleteFn     func(context.Context, uint, uint) error
}

func (s *savedSearchRepoStub) Create(ctx context.Context, search *models.SavedSearch) error {
	return s.createFn(ctx, search)
}
func (s *savedSearchRepoStub) ListByUser(ctx context.Context, userID uint) ([]models.SavedSearch, error) {
	return s.listByUserFn(ctx, userID)
}
func (s *savedSearchRepoStub) Delete(ctx context.Context, id, userID uint) error {
	return s.deleteFn(ctx, id, userID)
}

func noopSavedSearchRepo() *savedSearchRepoStub {
	return &savedSearchRepoStub{
		createFn:     func(_ context.Context, ss *models.SavedSearch) error { ss.ID = 1; return nil },
		listByUserFn: func(_ context.Context, _ uint) ([]models.SavedSearch, error) { return nil, nil },
		deleteFn:     func(_ context.Context, _, _ uint) error { return nil },
	}
}

// assertAppErrorCode asserts that err is an AppError with the given code.
func assertAppErrorCode(t *testing.T, err error, code string) {
	t.Helper()
	require.Error(t, err)
	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr), "expected AppError, got %T: %v", err, err)
	assert.Equal(t, code, appErr.Code)
}

func assertValidationError(t *testing.T, err error) {
	t.Helper()
	assertAppErrorCode(t, err, "VALIDATION_ERROR")
}
