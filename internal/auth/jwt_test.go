package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const testSecret = "test-secret-at-least-32-chars-long-for-security"

func TestJWTManager_GenerateAndValidate_Success(t *testing.T) {
	manager := NewJWTManager(testSecret, "swsgraph-test", 15*time.Minute)

	token, err := manager.GenerateToken("svc-portal", "javerage", 0)
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}
	if token == "" {
		t.Fatal("expected non-empty token")
	}

	id, err := manager.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken failed: %v", err)
	}
	if id.Subject != "svc-portal" {
		t.Errorf("expected subject svc-portal, got %q", id.Subject)
	}
	if id.ActAs != "javerage" {
		t.Errorf("expected act_as javerage, got %q", id.ActAs)
	}
	if id.ActingAs() != "javerage" {
		t.Errorf("expected to act as javerage, got %q", id.ActingAs())
	}
	if _, err := uuid.Parse(id.TokenID); err != nil {
		t.Errorf("expected a uuid token id, got %q", id.TokenID)
	}
}

func TestJWTManager_NoActAs_UsesSubject(t *testing.T) {
	manager := NewJWTManager(testSecret, "swsgraph-test", 15*time.Minute)

	token, err := manager.GenerateToken(" bill ", "  ", 0)
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	id, err := manager.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken failed: %v", err)
	}
	if id.ActAs != "" {
		t.Errorf("expected no act_as, got %q", id.ActAs)
	}
	if id.ActingAs() != "bill" {
		t.Errorf("expected to act as the subject, got %q", id.ActingAs())
	}
}

func TestJWTManager_GenerateToken_EmptySubject(t *testing.T) {
	manager := NewJWTManager(testSecret, "swsgraph-test", 15*time.Minute)

	if _, err := manager.GenerateToken("   ", "javerage", 0); err == nil {
		t.Fatal("expected error for empty subject, got nil")
	}
}

func TestJWTManager_GenerateToken_TTLOverride(t *testing.T) {
	manager := NewJWTManager(testSecret, "swsgraph-test", time.Hour)

	token, err := manager.GenerateToken("svc", "", 2*time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	claims := &tokenClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		t.Fatalf("ParseUnverified failed: %v", err)
	}
	lifetime := claims.ExpiresAt.Sub(claims.IssuedAt.Time)
	if lifetime != 2*time.Minute {
		t.Errorf("expected a 2m lifetime, got %s", lifetime)
	}
}

func TestJWTManager_ValidateToken_Expired(t *testing.T) {
	manager := NewJWTManager(testSecret, "swsgraph-test", 15*time.Minute)

	// GenerateToken treats a negative ttl as the default, so sign by hand.
	claims := tokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "svc",
			Issuer:    "swsgraph-test",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign failed: %v", err)
	}

	_, err = manager.ValidateToken(signed)
	if err == nil {
		t.Fatal("expected error for expired token, got nil")
	}
	if !strings.Contains(err.Error(), "expired") {
		t.Errorf("expected expiry-related error, got: %v", err)
	}
}

func TestJWTManager_ValidateToken_MissingExpiry(t *testing.T) {
	manager := NewJWTManager(testSecret, "swsgraph-test", 15*time.Minute)

	claims := tokenClaims{RegisteredClaims: jwt.RegisteredClaims{Subject: "svc", Issuer: "swsgraph-test"}}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign failed: %v", err)
	}

	if _, err := manager.ValidateToken(signed); err == nil {
		t.Fatal("expected error for token without exp, got nil")
	}
}

func TestJWTManager_ValidateToken_InvalidSignature(t *testing.T) {
	manager1 := NewJWTManager(testSecret, "swsgraph-test", 15*time.Minute)
	manager2 := NewJWTManager("different-secret-32-chars-long-for-security!!", "swsgraph-test", 15*time.Minute)

	token, err := manager1.GenerateToken("svc", "javerage", 0)
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	if _, err := manager2.ValidateToken(token); err == nil {
		t.Fatal("expected error for invalid signature, got nil")
	}
}

func TestJWTManager_ValidateToken_Malformed(t *testing.T) {
	manager := NewJWTManager(testSecret, "swsgraph-test", 15*time.Minute)

	malformedTokens := []string{
		"not.a.jwt",
		"invalid-token",
		"header.payload", // Missing signature
	}

	for _, token := range malformedTokens {
		if _, err := manager.ValidateToken(token); err == nil {
			t.Errorf("expected error for malformed token %q, got nil", token)
		}
	}
}

func TestJWTManager_ValidateToken_WrongIssuer(t *testing.T) {
	manager1 := NewJWTManager(testSecret, "swsgraph-test", 15*time.Minute)
	manager2 := NewJWTManager(testSecret, "wrong-issuer", 15*time.Minute)

	token, err := manager1.GenerateToken("svc", "", 0)
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	_, err = manager2.ValidateToken(token)
	if err == nil {
		t.Fatal("expected error for wrong issuer, got nil")
	}
	if !strings.Contains(err.Error(), "invalid issuer") {
		t.Errorf("expected 'invalid issuer' error, got: %v", err)
	}
}

func TestJWTManager_ValidateToken_EmptyString(t *testing.T) {
	manager := NewJWTManager(testSecret, "swsgraph-test", 15*time.Minute)

	_, err := manager.ValidateToken("")
	if err == nil {
		t.Fatal("expected error for empty token, got nil")
	}
	if !strings.Contains(err.Error(), "empty") {
		t.Errorf("expected 'empty' error, got: %v", err)
	}
}
