package auth

import (
	"testing"
	"time"
)

func TestSignAndVerify(t *testing.T) {
	tokens := NewTokens("test-secret", time.Hour)

	signed, err := tokens.Sign("user-1", "+237650000000")
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	claims, err := tokens.Verify(signed)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if claims.UserID != "user-1" {
		t.Fatalf("expected user-1, got %s", claims.UserID)
	}
	if claims.Phone != "+237650000000" {
		t.Fatalf("unexpected phone claim %s", claims.Phone)
	}
}

func TestVerifyWrongSecret(t *testing.T) {
	tokens := NewTokens("secret-a", time.Hour)
	other := NewTokens("secret-b", time.Hour)

	signed, err := tokens.Sign("user-1", "123")
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := other.Verify(signed); err == nil {
		t.Fatalf("expected verification failure with wrong secret")
	}
}

func TestVerifyExpired(t *testing.T) {
	tokens := NewTokens("test-secret", time.Hour)

	issued := time.Now().Add(-2 * time.Hour)
	tokens.now = func() time.Time { return issued }
	signed, err := tokens.Sign("user-1", "123")
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	tokens.now = time.Now
	if _, err := tokens.Verify(signed); err == nil {
		t.Fatalf("expected expired token to be rejected")
	}
}

func TestVerifyGarbage(t *testing.T) {
	tokens := NewTokens("test-secret", time.Hour)
	if _, err := tokens.Verify("not.a.token"); err == nil {
		t.Fatalf("expected malformed token to be rejected")
	}
}
