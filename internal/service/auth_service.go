// Package service contains the application's business logic layer.
package service

import (
	"context"

	"github.com/gokulsivas/ThinkSync/internal/middleware"
	"github.com/gokulsivas/ThinkSync/internal/models"
	"github.com/gokulsivas/ThinkSync/internal/repository"
	"github.com/gokulsivas/ThinkSync/internal/validation"

	"golang.org/x/crypto/bcrypt"
)

// AuthService handles account registration and credential verification.
type AuthService struct {
	userRepo    repository.UserRepository
	profileRepo repository.ProfileRepository
}

// RegisterInput carries the registration payload after JSON binding.
type RegisterInput struct {
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,max=72"`
	ConfirmPassword string `json:"confirm_password" validate:"required"`
	Name            string `json:"name" validate:"required,min=1,max=200"`
	Title           string `json:"title" validate:"max=200"`
	Affiliation     string `json:"affiliation" validate:"max=300"`
}

// NewAuthService returns a new AuthService.
func NewAuthService(userRepo repository.UserRepository, profileRepo repository.ProfileRepository) *AuthService {
	return &AuthService{userRepo: userRepo, profileRepo: profileRepo}
}

// Register creates the account and its empty profile. A taken email is a
// conflict; the HTTP layer decides the status code for that.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	if err := validation.Struct(&in); err != nil {
		middleware.RegistrationAttempts.WithLabelValues("invalid").Inc()
		return nil, models.NewValidationError(err.Error())
	}
	if in.Password != in.ConfirmPassword {
		middleware.RegistrationAttempts.WithLabelValues("invalid").Inc()
		return nil, models.NewValidationError("Passwords do not match")
	}

	email := validation.NormalizeEmail(in.Email)
	existing, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		middleware.RegistrationAttempts.WithLabelValues("conflict").Inc()
		return nil, models.NewConflictError("User with this email already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	user := &models.User{
		Email:        email,
		PasswordHash: string(hash),
		Name:         in.Name,
		Title:        in.Title,
		Affiliation:  in.Affiliation,
		Role:         models.RoleUser,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	profile := &models.Profile{UserID: user.ID, IsPublic: true, IsActive: true}
	if err := s.profileRepo.Create(ctx, profile); err != nil {
		return nil, err
	}
	user.Profile = profile

	middleware.RegistrationAttempts.WithLabelValues("success").Inc()
	middleware.Logger.InfoContext(ctx, "user registered", "user_id", user.ID)
	return user, nil
}

// Login verifies the credentials. Unknown email and wrong password return
// the same message so the response does not leak which one failed.
func (s *AuthService) Login(ctx context.Context, email, password string) (*models.User, error) {
	email = validation.NormalizeEmail(email)
	if email == "" || password == "" {
		middleware.LoginAttempts.WithLabelValues("invalid").Inc()
		return nil, models.NewValidationError("Email and password are required")
	}

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		middleware.LoginAttempts.WithLabelValues("failure").Inc()
		return nil, models.NewValidationError("Invalid email or password. Please try again.")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		middleware.LoginAttempts.WithLabelValues("failure").Inc()
		return nil, models.NewValidationError("Invalid email or password. Please try again.")
	}

	middleware.LoginAttempts.WithLabelValues("success").Inc()
	return user, nil
}

// GetUser loads a user by ID for the authenticated-profile route.
func (s *AuthService) GetUser(ctx context.Context, id uint) (*models.User, error) {
	return s.userRepo.GetByID(ctx, id)
}
