package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/lucaskane/eventboard/internal/auth"
	"github.com/lucaskane/eventboard/internal/model"
	"github.com/lucaskane/eventboard/internal/repository"
)

type stubUserStore struct {
	createFn     func(ctx context.Context, username, email, passwordHash string) (*model.User, error)
	getByEmailFn func(ctx context.Context, email string) (*model.User, error)
}

func (s stubUserStore) Create(ctx context.Context, username, email, passwordHash string) (*model.User, error) {
	return s.createFn(ctx, username, email, passwordHash)
}

func (s stubUserStore) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	return s.getByEmailFn(ctx, email)
}

func testTokens() *auth.JWTManager {
	return auth.NewJWTManager("test-secret", time.Hour, "eventboard")
}

func TestSignupIssuesToken(t *testing.T) {
	userID := uuid.New().String()
	store := stubUserStore{
		createFn: func(_ context.Context, username, email, passwordHash string) (*model.User, error) {
			require.Equal(t, "alice", username)
			require.NotEqual(t, "long-enough-pw", passwordHash, "password must be stored hashed")
			return &model.User{ID: userID, Username: username, Email: email}, nil
		},
	}

	svc := NewAuthService(store, testTokens())
	resp, err := svc.Signup(context.Background(), model.SignupRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "long-enough-pw",
	})
	require.NoError(t, err)
	require.Equal(t, userID, resp.User.ID)

	claims, err := testTokens().Validate(resp.Token)
	require.NoError(t, err)
	require.Equal(t, userID, claims.Subject)
}

func TestSignupValidation(t *testing.T) {
	svc := NewAuthService(stubUserStore{}, testTokens())

	cases := map[string]model.SignupRequest{
		"missing username": {Email: "a@example.com", Password: "long-enough-pw"},
		"bad email":        {Username: "alice", Email: "nope", Password: "long-enough-pw"},
		"short password":   {Username: "alice", Email: "a@example.com", Password: "short"},
	}
	for name, req := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := svc.Signup(context.Background(), req)
			require.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestSignupDuplicate(t *testing.T) {
	store := stubUserStore{
		createFn: func(context.Context, string, string, string) (*model.User, error) {
			return nil, repository.ErrDuplicateUser
		},
	}

	svc := NewAuthService(store, testTokens())
	_, err := svc.Signup(context.Background(), model.SignupRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "long-enough-pw",
	})
	require.ErrorIs(t, err, repository.ErrDuplicateUser)
}

func TestLoginSuccess(t *testing.T) {
	hash, err := auth.HashPassword("long-enough-pw")
	require.NoError(t, err)
	userID := uuid.New().String()

	store := stubUserStore{
		getByEmailFn: func(_ context.Context, email string) (*model.User, error) {
			require.Equal(t, "alice@example.com", email)
			return &model.User{ID: userID, Email: email, PasswordHash: hash}, nil
		},
	}

	svc := NewAuthService(store, testTokens())
	resp, err := svc.Login(context.Background(), model.LoginRequest{
		Email:    "alice@example.com",
		Password: "long-enough-pw",
	})
	require.NoError(t, err)

	claims, err := testTokens().Validate(resp.Token)
	require.NoError(t, err)
	require.Equal(t, userID, claims.Subject)
}

func TestLoginBadCredentials(t *testing.T) {
	hash, err := auth.HashPassword("correct-password")
	require.NoError(t, err)

	known := stubUserStore{
		getByEmailFn: func(_ context.Context, email string) (*model.User, error) {
			return &model.User{ID: uuid.New().String(), Email: email, PasswordHash: hash}, nil
		},
	}
	unknown := stubUserStore{
		getByEmailFn: func(context.Context, string) (*model.User, error) {
			return nil, repository.ErrNotFound
		},
	}

	_, err = NewAuthService(known, testTokens()).Login(context.Background(), model.LoginRequest{
		Email:    "alice@example.com",
		Password: "wrong-password",
	})
	require.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = NewAuthService(unknown, testTokens()).Login(context.Background(), model.LoginRequest{
		Email:    "ghost@example.com",
		Password: "whatever",
	})
	require.ErrorIs(t, err, ErrInvalidCredentials, "unknown email and wrong password must be indistinguishable")
}
