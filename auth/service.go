package auth

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"travel-buddy/models"
)

// DefaultHashCost matches the cost existing password hashes were created with.
const DefaultHashCost = 12

// bcrypt only accepts passwords up to this length.
const maxPasswordBytes = 72

// Service registers users and exchanges credentials for tokens.
type Service struct {
	repo     *UserRepository
	tokens   *TokenIssuer
	hashCost int
}

func NewService(repo *UserRepository, tokens *TokenIssuer, hashCost int) *Service {
	return &Service{repo: repo, tokens: tokens, hashCost: hashCost}
}

// Register creates a user. Name, email and password are all required.
func (s *Service) Register(ctx context.Context, name, email, password string) (models.User, error) {
	name = strings.TrimSpace(name)
	email = normalizeEmail(email)
	if name == "" || email == "" || password == "" {
		return models.User{}, ErrMissingField
	}
	if len(password) > maxPasswordBytes {
		return models.User{}, ErrPasswordTooLong
	}

	if _, err := s.repo.FindByEmail(ctx, email); err == nil {
		return models.User{}, fmt.Errorf("%w: %s", ErrEmailInUse, email)
	} else if !errors.Is(err, ErrUserNotFound) {
		return models.User{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.hashCost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return models.User{}, ErrPasswordTooLong
	}
	if err != nil {
		return models.User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	u := models.User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, u); err != nil {
		return models.User{}, err
	}
	log.Printf("[AuthService] Registered user %s", u.ID)
	return u, nil
}

// Login verifies credentials and returns a session token.
func (s *Service) Login(ctx context.Context, email, password string) (string, models.User, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return "", models.User{}, ErrMissingField
	}

	u, err := s.repo.FindByEmail(ctx, email)
	if errors.Is(err, ErrUserNotFound) {
		return "", models.User{}, ErrInvalidCredentials
	}
	if err != nil {
		return "", models.User{}, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return "", models.User{}, ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(u.ID)
	if err != nil {
		return "", models.User{}, err
	}
	return token, u, nil
}

// Authenticate resolves a bearer token to its user id.
func (s *Service) Authenticate(token string) (string, error) {
	return s.tokens.Verify(token)
}

// Me loads the user behind an authenticated id.
func (s *Service) Me(ctx context.Context, userID string) (models.User, error) {
	return s.repo.FindByID(ctx, userID)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
