package auth

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"time"

	"github.com/google/uuid"

	"github.com/redmonkez12/glp1-companion/internal/logging"
	"github.com/redmonkez12/glp1-companion/internal/user"
	"github.com/redmonkez12/glp1-companion/internal/validation"
)

// SessionTokenDuration is how long an issued token stays valid
const SessionTokenDuration = 7 * 24 * time.Hour

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUnauthenticated    = errors.New("unauthenticated")
	ErrMissingToken       = errors.New("missing token")
)

// RegisterInput is the payload accepted by Register
type RegisterInput struct {
	Email     string  `json:"email" validate:"required,email,max=254"`
	Password  string  `json:"password" validate:"required,min=6,max=128"`
	FirstName string  `json:"firstName" validate:"required,notblank,max=100"`
	LastName  string  `json:"lastName" validate:"required,notblank,max=100"`
	Condition *string `json:"condition,omitempty" validate:"omitempty,max=100"`
}

// LoginInput is the payload accepted by Login
type LoginInput struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// AuthResult is returned by Register and Login
type AuthResult struct {
	Token string     `json:"token"`
	User  *user.User `json:"user"`
}

// Service handles authentication business logic
type Service struct {
	users        user.Store
	tokens       TokenService
	emailService EmailService
	logger       *logging.Logger
}

// NewService wires the authenticator. emailService may be nil, in which
// case no welcome mail is sent.
func NewService(users user.Store, tokens TokenService, emailService EmailService, logger *logging.Logger) *Service {
	return &Service{
		users:        users,
		tokens:       tokens,
		emailService: emailService,
		logger:       logger,
	}
}

// Register creates a new user account and issues a session token
func (s *Service) Register(ctx context.Context, in RegisterInput) (*AuthResult, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	if _, err := mail.ParseAddress(in.Email); err != nil {
		return nil, validation.NewError("email", "must be a valid email address")
	}

	// Hash password using argon2id
	passwordHash, err := hashPassword(in.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	newUser, err := s.users.Create(ctx, &user.User{
		Email:        user.NormalizeEmail(in.Email),
		PasswordHash: passwordHash,
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Condition:    in.Condition,
	})
	if err != nil {
		if errors.Is(err, user.ErrDuplicateEmail) {
			return nil, user.ErrDuplicateEmail
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	token, err := s.tokens.CreateToken(newUser.ID, newUser.Email, SessionTokenDuration)
	if err != nil {
		return nil, fmt.Errorf("failed to create token: %w", err)
	}

	if s.emailService != nil {
		// Send welcome email in a goroutine (non-blocking)
		go func(email, firstName string) {
			// Create a new context for the goroutine to avoid cancellation issues
			emailCtx := context.Background()
			if err := s.emailService.SendWelcomeEmail(emailCtx, email, firstName); err != nil {
				s.logger.Warn("failed to send welcome email", "user_id", newUser.ID, "error", err)
			}
		}(newUser.Email, newUser.FirstName)
	}

	return &AuthResult{Token: token, User: newUser}, nil
}

// Login authenticates a user and returns a fresh token.
// Unknown email and wrong password are indistinguishable to the caller.
func (s *Service) Login(ctx context.Context, in LoginInput) (*AuthResult, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}

	existingUser, err := s.users.GetByEmail(ctx, user.NormalizeEmail(in.Email))
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			verifyPassword(dummyHash(), in.Password)
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if !verifyPassword(existingUser.PasswordHash, in.Password) {
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokens.CreateToken(existingUser.ID, existingUser.Email, SessionTokenDuration)
	if err != nil {
		return nil, fmt.Errorf("failed to create token: %w", err)
	}

	return &AuthResult{Token: token, User: existingUser}, nil
}

// Verify checks a session token and returns the user it was issued to.
// Token problems wrap ErrUnauthenticated; a deleted user yields user.ErrNotFound.
func (s *Service) Verify(ctx context.Context, token string) (*user.User, error) {
	if token == "" {
		return nil, fmt.Errorf("%w: %w", ErrUnauthenticated, ErrMissingToken)
	}

	claims, err := s.tokens.VerifyToken(token)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnauthenticated, err)
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnauthenticated, ErrInvalidToken)
	}

	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return nil, user.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return u, nil
}

// UpdatePreferences replaces the user's preferences
func (s *Service) UpdatePreferences(ctx context.Context, userID uuid.UUID, prefs user.Preferences) (*user.User, error) {
	if err := validation.Struct(prefs); err != nil {
		return nil, err
	}

	u, err := s.users.UpdatePreferences(ctx, userID, &prefs)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return nil, user.ErrNotFound
		}
		return nil, fmt.Errorf("failed to update preferences: %w", err)
	}

	return u, nil
}
