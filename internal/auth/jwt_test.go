package auth

import (
	"testing"
	"time"
)

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken("secret", 42, "pro", time.Hour)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	claims, err := ValidateToken("secret", token)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if claims.UserID != 42 {
		t.Errorf("user_id = %d, want 42", claims.UserID)
	}
	if claims.Tier != "pro" {
		t.Errorf("tier = %s, want pro", claims.Tier)
	}
}

func TestExpiredTokenRejected(t *testing.T) {
	token, err := GenerateToken("secret", 1, "free", -time.Minute)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if _, err := ValidateToken("secret", token); err == nil {
		t.Fatal("expired token accepted")
	}
}

func TestWrongSecretRejected(t *testing.T) {
	token, _ := GenerateToken("secret", 1, "free", time.Hour)
	if _, err := ValidateToken("other-secret", token); err == nil {
		t.Fatal("token accepted with wrong secret")
	}
}

func TestGarbageRejected(t *testing.T) {
	if _, err := ValidateToken("secret", "not-a-jwt"); err == nil {
		t.Fatal("garbage accepted")
	}
}
