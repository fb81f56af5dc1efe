package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"taskly-be/internal/entities"
	"taskly-be/internal/models"
	"taskly-be/internal/repository"
)

//go:generate mockgen -source=auth_service.go -destination=../mocks/mock_auth_service.go -package=mocks

// AuthService defines the interface for account business logic
type AuthService interface {
	Register(ctx context.Context, req *models.RegisterRequest) (*entities.User, error)
	Authenticate(ctx context.Context, req *models.LoginRequest) (*entities.User, error)
	ChangePassword(ctx context.Context, user *entities.User, req *models.PasswordChangeRequest) (*entities.User, error)
	DeleteAccount(ctx context.Context, userID uint) error
}

type authService struct {
	userRepo repository.UserRepository
	cost     int
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo repository.UserRepository) AuthService {
	return NewAuthServiceWithCost(userRepo, bcrypt.DefaultCost)
}

// NewAuthServiceWithCost lets tests trade hash strength for speed.
func NewAuthServiceWithCost(userRepo repository.UserRepository, cost int) AuthService {
	return &authService{userRepo: userRepo, cost: cost}
}

const duplicateUsernameMessage = "A user with that username already exists."

// Register creates a new user account
func (s *authService) Register(ctx context.Context, req *models.RegisterRequest) (*entities.User, error) {
	username := strings.TrimSpace(req.Username)

	taken, err := s.userRepo.UsernameTaken(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}
	if taken {
		return nil, fieldError("username", duplicateUsernameMessage)
	}

	hash, err := s.hash(req.Password1)
	if err != nil {
		return nil, err
	}

	user := &entities.User{
		Username:     username,
		Email:        strings.TrimSpace(req.Email),
		PasswordHash: hash,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, fieldError("username", duplicateUsernameMessage)
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}

// Authenticate checks a username and password. Unknown users and wrong
// passwords fail the same way.
func (s *authService) Authenticate(ctx context.Context, req *models.LoginRequest) (*entities.User, error) {
	user, err := s.userRepo.FindByUsername(ctx, req.Username)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

// ChangePassword verifies the old password and stores the new one. The
// returned user carries the bumped token version.
func (s *authService) ChangePassword(ctx context.Context, user *entities.User, req *models.PasswordChangeRequest) (*entities.User, error) {
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.OldPassword)); err != nil {
		return nil, fieldError("old_password", "Your old password was entered incorrectly. Please enter it again.")
	}

	hash, err := s.hash(req.NewPassword1)
	if err != nil {
		return nil, err
	}

	updated, err := s.userRepo.UpdatePassword(ctx, user.ID, hash)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to update password: %w", err)
	}
	return updated, nil
}

// DeleteAccount removes the user and everything they own.
func (s *authService) DeleteAccount(ctx context.Context, userID uint) error {
	return s.userRepo.Delete(ctx, userID)
}

func (s *authService) hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashed), nil
}
