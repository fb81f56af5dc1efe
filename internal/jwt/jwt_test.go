package jwt

import (
	"errors"
	"testing"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
)

func TestGenerateAndValidate(t *testing.T) {
	svc := NewJWTService("secret", time.Hour)

	token, err := svc.GenerateToken(&Claims{
		UserID:           7,
		Version:          2,
		DarkMode:         true,
		RegisteredClaims: gojwt.RegisteredClaims{ID: "session-1"},
	})
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	claims, err := svc.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken failed: %v", err)
	}
	if claims.UserID != 7 || claims.Version != 2 || !claims.DarkMode || claims.ID != "session-1" {
		t.Errorf("got %+v", claims)
	}
	if claims.ExpiresAt == nil || time.Until(claims.ExpiresAt.Time) > time.Hour {
		t.Errorf("ExpiresAt: got %v, want within an hour", claims.ExpiresAt)
	}
}

func TestValidateRejects(t *testing.T) {
	svc := NewJWTService("secret", time.Hour)

	expired, err := svc.GenerateToken(&Claims{
		UserID: 1,
		RegisteredClaims: gojwt.RegisteredClaims{
			ExpiresAt: gojwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	})
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}
	foreign, err := NewJWTService("other", time.Hour).GenerateToken(&Claims{UserID: 1})
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	tests := []struct {
		name  string
		token string
	}{
		{"expired", expired},
		{"wrong secret", foreign},
		{"garbage", "not-a-token"},
		{"empty", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.ValidateToken(tt.token); !errors.Is(err, ErrInvalidToken) {
				t.Errorf("got %v, want ErrInvalidToken", err)
			}
		})
	}
}
