package auth

import (
	"errors"
	"testing"
	"time"
)

func TestJWTGenerateValidate(t *testing.T) {
	manager := NewJWTManager("secret", time.Hour, "eventboard")
	token, err := manager.Generate("user-1")
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	claims, err := manager.Validate(token)
	if err != nil {
		t.Fatalf("validate token: %v", err)
	}
	if claims.Subject != "user-1" {
		t.Fatalf("unexpected claims: %#v", claims)
	}
}

func TestJWTGenerateEmptySubject(t *testing.T) {
	manager := NewJWTManager("secret", time.Hour, "eventboard")
	if _, err := manager.Generate(""); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected invalid token error, got %v", err)
	}
}

func TestJWTValidateMissing(t *testing.T) {
	manager := NewJWTManager("secret", time.Hour, "eventboard")
	if _, err := manager.Validate(""); !errors.Is(err, ErrMissingToken) {
		t.Fatalf("expected missing token error, got %v", err)
	}
}

func TestJWTValidateWrongSecret(t *testing.T) {
	token, err := NewJWTManager("secret-a", time.Hour, "eventboard").Generate("user-1")
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}
	if _, err := NewJWTManager("secret-b", time.Hour, "eventboard").Validate(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected invalid token error, got %v", err)
	}
}

func TestJWTValidateExpired(t *testing.T) {
	token, err := NewJWTManager("secret", -time.Minute, "eventboard").Generate("user-1")
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}
	if _, err := NewJWTManager("secret", -time.Minute, "eventboard").Validate(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected invalid token error, got %v", err)
	}
}

func TestTokenFromHeader(t *testing.T) {
	if _, err := TokenFromHeader(""); !errors.Is(err, ErrMissingToken) {
		t.Fatalf("expected missing token error, got %v", err)
	}
	if _, err := TokenFromHeader("Basic abc"); !errors.Is(err, ErrMissingToken) {
		t.Fatalf("expected missing token error, got %v", err)
	}
	if token, err := TokenFromHeader("Bearer abc"); err != nil || token != "abc" {
		t.Fatalf("expected token, got %q err %v", token, err)
	}
	if token, err := TokenFromHeader("bearer abc"); err != nil || token != "abc" {
		t.Fatalf("expected case-insensitive scheme, got %q err %v", token, err)
	}
}

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("hunter2hunter2")
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	if !CheckPassword(hash, "hunter2hunter2") {
		t.Fatal("expected password to match its hash")
	}
	if CheckPassword(hash, "wrong-password") {
		t.Fatal("expected mismatched password to fail")
	}
}
