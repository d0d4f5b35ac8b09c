package services

import (
	"os"
	"testing"

	"main/utils"

	"github.com/golang-jwt/jwt/v5"
)

func initTestJWT(t *testing.T) {
	t.Helper()
	os.Setenv("GO_ENV", "test")
	utils.InitJWT()
}

func parseClaims(t *testing.T, tokenString string) jwt.MapClaims {
	t.Helper()
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return []byte(utils.JWTSecretKey), nil
	})
	if err != nil {
		t.Fatalf("failed to parse token: %v", err)
	}
	if !token.Valid {
		t.Fatal("token is not valid")
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		t.Fatal("unexpected claims type")
	}
	return claims
}

func TestGenerateToken(t *testing.T) {
	initTestJWT(t)

	tokenString, err := GenerateToken("user-123")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	claims := parseClaims(t, tokenString)
	if claims["user_id"] != "user-123" {
		t.Errorf("user_id = %v, want user-123", claims["user_id"])
	}
	if claims["iss"] != TokenIssuer {
		t.Errorf("iss = %v, want %s", claims["iss"], TokenIssuer)
	}
	if _, hasType := claims["type"]; hasType {
		t.Error("access token should not carry a type claim")
	}
	if claims["exp"] == nil {
		t.Error("missing exp claim")
	}
}

func TestGenerateRefreshToken(t *testing.T) {
	initTestJWT(t)

	tokenString, err := GenerateRefreshToken("user-123")
	if err != nil {
		t.Fatalf("GenerateRefreshToken: %v", err)
	}

	claims := parseClaims(t, tokenString)
	if claims["type"] != "refresh" {
		t.Errorf("type = %v, want refresh", claims["type"])
	}
	if claims["user_id"] != "user-123" {
		t.Errorf("user_id = %v, want user-123", claims["user_id"])
	}
}

func TestIsTokenBlacklistedWithoutRedis(t *testing.T) {
	// Without an initialized blacklist nothing is considered revoked.
	TokenBlacklist = nil
	if IsTokenBlacklisted("any-token") {
		t.Error("nil blacklist should report tokens as not blacklisted")
	}
}
