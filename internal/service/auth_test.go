package service

import (
	"testing"
	"time"

	"simpleeval/config"
	"simpleeval/internal/core"

	"github.com/golang-jwt/jwt/v4"
)

func testAuthConfig(secret string) *config.Configuration {
	conf := &config.Configuration{}
	conf.Auth.JWTSecret = secret
	return conf
}

func signTestToken(t *testing.T, secret string, claims *core.Claims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}

func TestParseToken(t *testing.T) {
	const secret = "test-secret"
	s := &AuthService{config: testAuthConfig(secret)}

	t.Run("valid token", func(t *testing.T) {
		token := signTestToken(t, secret, &core.Claims{
			UserID:         "6650f0a1b2c3d4e5f6a7b8c9",
			OrganizationID: "6650f0a1b2c3d4e5f6a7b8ca",
			Role:           core.RoleAdmin,
			RegisteredClaims: jwt.RegisteredClaims{
				ID:        "token-id",
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		})

		claims, err := s.ParseToken(token)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if claims.UserID != "6650f0a1b2c3d4e5f6a7b8c9" {
			t.Errorf("UserID = %q", claims.UserID)
		}
		if claims.OrganizationID != "6650f0a1b2c3d4e5f6a7b8ca" {
			t.Errorf("OrganizationID = %q", claims.OrganizationID)
		}
		if claims.ID != "token-id" {
			t.Errorf("token ID = %q", claims.ID)
		}
	})

	t.Run("expired token", func(t *testing.T) {
		token := signTestToken(t, secret, &core.Claims{
			UserID: "6650f0a1b2c3d4e5f6a7b8c9",
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			},
		})

		if _, err := s.ParseToken(token); err == nil {
			t.Fatal("expected error for expired token")
		}
	})

	t.Run("wrong secret", func(t *testing.T) {
		token := signTestToken(t, "other-secret", &core.Claims{
			UserID: "6650f0a1b2c3d4e5f6a7b8c9",
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		})

		if _, err := s.ParseToken(token); err == nil {
			t.Fatal("expected error for wrong signing key")
		}
	})

	t.Run("garbage token", func(t *testing.T) {
		if _, err := s.ParseToken("not.a.token"); err == nil {
			t.Fatal("expected error for malformed token")
		}
	})
}
