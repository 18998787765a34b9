package crypto

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestGenerateToken_WithJTI(t *testing.T) {
	token, jti, err := GenerateToken("test-secret", "ops", "ADMIN", time.Hour)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if token == "" {
		t.Error("Expected token to be generated")
	}
	if jti == "" {
		t.Error("Expected JTI to be generated")
	}

	claims, err := ParseToken("test-secret", token)
	if err != nil {
		t.Fatalf("Expected no error parsing token, got %v", err)
	}
	if claims.ID != jti {
		t.Errorf("Expected JTI %s, got %s", jti, claims.ID)
	}
	if claims.Sub != "ops" {
		t.Errorf("Expected subject ops, got %s", claims.Sub)
	}
	if claims.Role != "ADMIN" {
		t.Errorf("Expected role ADMIN, got %s", claims.Role)
	}
}

func TestGenerateToken_EmptySecret(t *testing.T) {
	if _, _, err := GenerateToken("", "ops", "ADMIN", time.Hour); err == nil {
		t.Error("Expected error for empty secret")
	}
}

func TestParseToken_WrongSecret(t *testing.T) {
	token, _, err := GenerateToken("secret-a", "ops", "ADMIN", time.Hour)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if _, err := ParseToken("secret-b", token); err == nil {
		t.Error("Expected error for wrong secret")
	}
}

func TestParseToken_Expired(t *testing.T) {
	c := Claims{
		Sub:  "ops",
		Role: "ADMIN",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if _, err := ParseToken("test-secret", token); err == nil {
		t.Error("Expected error for expired token")
	}
}

func TestParseToken_RejectsOtherAlgorithms(t *testing.T) {
	c := Claims{Sub: "ops", Role: "ADMIN"}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, c).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if _, err := ParseToken("test-secret", token); err == nil {
		t.Error("Expected error for HS512 token")
	}
}

func TestParseToken_Garbage(t *testing.T) {
	if _, err := ParseToken("test-secret", "not-a-token"); err == nil {
		t.Error("Expected error for malformed token")
	}
}
