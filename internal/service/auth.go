package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/google/uuid"

	"github.com/applytrack/applytrack/internal/auth"
	"github.com/applytrack/applytrack/internal/metrics"
	"github.com/applytrack/applytrack/internal/model"
	"github.com/applytrack/applytrack/internal/repository"
	"github.com/applytrack/applytrack/internal/token"
)

// User field constraints.
const (
	minNameLength     = 3
	maxNameLength     = 50
	minPasswordLength = 8
)

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// UserStore defines the persistence operations the auth service needs.
type UserStore interface {
	CreateUser(ctx context.Context, user *model.User) error
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
}

// AuthService orchestrates registration and login.
type AuthService struct {
	users   UserStore
	tokens  *token.Manager
	metrics metrics.Recorder
}

// NewAuthService creates a new AuthService.
func NewAuthService(users UserStore, tokens *token.Manager, recorder metrics.Recorder) *AuthService {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	return &AuthService{
		users:   users,
		tokens:  tokens,
		metrics: recorder,
	}
}

// Session is the result of a successful register or login:
// the display name plus a fresh bearer token.
type Session struct {
	Name  string
	Token string
}

// Register creates a new user and issues a token bound to it.
// The password is hashed here, before the record is constructed;
// plaintext never reaches the repository.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (*Session, error) {
	if err := validateRegistration(name, email, password); err != nil {
		return nil, err
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &model.User{
		ID:           uuid.New().String(),
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.users.CreateUser(ctx, user); err != nil {
		if errors.Is(err, repository.ErrEmailExists) {
			return nil, ErrDuplicateEmail
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	tok, err := s.tokens.Issue(user.ID, user.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	s.metrics.IncUserRegistered()

	return &Session{Name: user.Name, Token: tok}, nil
}

// Login verifies credentials and issues a fresh token.
// Unknown email and wrong password collapse into the same error so the
// response does not leak which check failed.
func (s *AuthService) Login(ctx context.Context, email, password string) (*Session, error) {
	if email == "" || password == "" {
		return nil, ErrMissingCredentials
	}

	user, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			s.metrics.IncAuthRejected()
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if !auth.VerifyPassword(password, user.PasswordHash) {
		s.metrics.IncAuthRejected()
		return nil, ErrInvalidCredentials
	}

	tok, err := s.tokens.Issue(user.ID, user.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	s.metrics.IncUserLoggedIn()

	return &Session{Name: user.Name, Token: tok}, nil
}

// validateRegistration checks the user schema constraints and collects
// one message per violated field.
func validateRegistration(name, email, password string) error {
	var messages []string

	if len(name) < minNameLength || len(name) > maxNameLength {
		messages = append(messages, fmt.Sprintf("name must be between %d and %d characters", minNameLength, maxNameLength))
	}

	if !emailRegex.MatchString(email) {
		messages = append(messages, "please provide a valid email address")
	}

	if len(password) < minPasswordLength {
		messages = append(messages, fmt.Sprintf("password must be at least %d characters", minPasswordLength))
	}

	if len(messages) > 0 {
		return &ValidationError{Messages: messages}
	}

	return nil
}
