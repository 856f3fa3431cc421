package jwt

import (
	"errors"
	"testing"
	"time"
)

func TestVerifyToken_RoundTrip(t *testing.T) {
	mgr := NewManager("secret", time.Hour)

	token, err := mgr.GenerateToken(42, "tester", 10)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	claims, err := mgr.VerifyToken(token)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if claims.UserID != 42 || claims.Nickname != "tester" || claims.Level != 10 {
		t.Errorf("unexpected claims: %+v", claims)
	}
}

func TestVerifyToken_Expired(t *testing.T) {
	mgr := NewManager("secret", -time.Minute)

	token, err := mgr.GenerateToken(42, "tester", 1)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	_, err = mgr.VerifyToken(token)
	if !errors.Is(err, ErrExpiredToken) {
		t.Errorf("expected ErrExpiredToken, got %v", err)
	}
}

func TestVerifyToken_WrongSecret(t *testing.T) {
	token, err := NewManager("one", time.Hour).GenerateToken(1, "", 1)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	_, err = NewManager("two", time.Hour).VerifyToken(token)
	if !errors.Is(err, ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken, got %v", err)
	}
}

func TestVerifyToken_Garbage(t *testing.T) {
	_, err := NewManager("secret", time.Hour).VerifyToken("not.a.token")
	if !errors.Is(err, ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken, got %v", err)
	}
}
