package utils

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
)

func TestGenerateAndValidateJWT(t *testing.T) {
	tokenStr, err := GenerateJWT("admin@constructioninnovation.local")
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}

	token, err := ValidateJWT(tokenStr)
	if err != nil {
		t.Fatalf("ValidateJWT: %v", err)
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		t.Fatal("expected map claims")
	}
	if claims["email"] != "admin@constructioninnovation.local" {
		t.Errorf("email claim = %v", claims["email"])
	}
	if claims["type"] != "access" {
		t.Errorf("type claim = %v", claims["type"])
	}
}

func TestValidateJWTRejectsGarbage(t *testing.T) {
	if _, err := ValidateJWT("not.a.token"); err == nil {
		t.Error("expected error for malformed token")
	}
}

func TestRefreshTokenCarriesSession(t *testing.T) {
	tokenStr, err := GenerateRefreshToken("admin@constructioninnovation.local", "session-123")
	if err != nil {
		t.Fatalf("GenerateRefreshToken: %v", err)
	}
	token, err := ValidateJWT(tokenStr)
	if err != nil {
		t.Fatalf("ValidateJWT: %v", err)
	}
	claims := token.Claims.(jwt.MapClaims)
	if claims["sessionId"] != "session-123" || claims["type"] != "refresh" {
		t.Errorf("claims = %v", claims)
	}
}

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if !ValidatePassword(hash, "correct horse battery staple") {
		t.Error("expected matching password to validate")
	}
	if ValidatePassword(hash, "wrong password") {
		t.Error("expected wrong password to fail")
	}
}
