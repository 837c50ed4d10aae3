package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/lucaskane/eventboard/internal/auth"
	"github.com/lucaskane/eventboard/internal/model"
	"github.com/lucaskane/eventboard/internal/repository"
)

// ErrInvalidCredentials is returned when a login's email or password is
// wrong. Which of the two was wrong is deliberately not disclosed.
var ErrInvalidCredentials = errors.New("invalid credentials")

// AuthService handles account creation and credential exchange. Everything
// downstream identifies callers only by the principal id inside the token.
type AuthService struct {
	users    UserStore
	tokens   *auth.JWTManager
	validate *validator.Validate
}

// NewAuthService constructs an AuthService with its dependencies.
func NewAuthService(users UserStore, tokens *auth.JWTManager) *AuthService {
	return &AuthService{users: users, tokens: tokens, validate: newValidator()}
}

// Signup creates an account and returns a fresh token for it.
func (s *AuthService) Signup(ctx context.Context, req model.SignupRequest) (*model.AuthResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, validationError(err)
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user, err := s.users.Create(ctx, req.Username, req.Email, hash)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateUser) {
			return nil, repository.ErrDuplicateUser
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	token, err := s.tokens.Generate(user.ID)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}
	return &model.AuthResponse{Token: token, User: *user}, nil
}

// Login exchanges valid credentials for a token.
func (s *AuthService) Login(ctx context.Context, req model.LoginRequest) (*model.AuthResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, validationError(err)
	}

	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("look up user: %w", err)
	}
	if !auth.CheckPassword(user.PasswordHash, req.Password) {
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokens.Generate(user.ID)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}
	return &model.AuthResponse{Token: token, User: *user}, nil
}
