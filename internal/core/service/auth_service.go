package service

import (
	"context"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/autoyard/inventory-system/internal/core/domain"
	"github.com/autoyard/inventory-system/internal/core/ports"
)

// dummyHash is a bcrypt hash of an unguessable throwaway value. Login runs a
// comparison against it when the username does not exist so the unknown-user
// and wrong-password paths cost the same and return the same error.
var dummyHash = func() []byte {
	h, err := bcrypt.GenerateFromPassword([]byte("inventory-system-equalizer"), bcrypt.DefaultCost)
	if err != nil {
		panic(err)
	}
	return h
}()

// AuthService implements registration, login, and actor lookup.
type AuthService struct {
	repo   ports.UserRepository
	tokens *TokenService
}

func NewAuthService(repo ports.UserRepository, tokens *TokenService) *AuthService {
	return &AuthService{repo: repo, tokens: tokens}
}

// Register creates a non-admin account. Admin accounts exist only through
// bootstrap seeding.
func (s *AuthService) Register(ctx context.Context, username, password string) (*domain.User, error) {
	if username == "" {
		return nil, &domain.FieldError{Field: "username", Reason: "is required"}
	}
	if password == "" {
		return nil, &domain.FieldError{Field: "password", Reason: "is required"}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Username:     username,
		PasswordHash: string(hash),
		IsAdmin:      false,
		CreatedAt:    time.Now().UTC(),
	}
	return s.repo.Create(ctx, user)
}

// Login verifies credentials and issues a session token.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, *domain.User, error) {
	if username == "" || password == "" {
		return "", nil, &domain.FieldError{Field: "credentials", Reason: "username and password are required"}
	}

	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		// Equalize with the wrong-password path before failing.
		_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
		return "", nil, domain.ErrInvalidCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// CurrentUser resolves a user by the identity embedded in a session token.
func (s *AuthService) CurrentUser(ctx context.Context, userID string) (*domain.User, error) {
	return s.repo.FindByID(ctx, userID)
}
