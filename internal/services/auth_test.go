package services

import (
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"
)

func testTokens() TokenService {
	return TokenService{
		Secret:     []byte("test-secret"),
		Issuer:     "raydan-forum",
		AccessTTL:  time.Hour,
		RefreshTTL: 24 * time.Hour,
	}
}

func TestHashAndVerifyPassword(t *testing.T) {
	tokens := testTokens()
	hash, err := tokens.HashPassword("correct horse battery")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if !tokens.VerifyPassword("correct horse battery", hash) {
		t.Fatalf("valid password rejected")
	}
	if tokens.VerifyPassword("wrong password", hash) {
		t.Fatalf("invalid password accepted")
	}
}

func TestVerifyPasswordBcryptFallback(t *testing.T) {
	tokens := testTokens()
	hash, err := bcrypt.GenerateFromPassword([]byte("legacy-pass"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	if !tokens.VerifyPassword("legacy-pass", string(hash)) {
		t.Fatalf("bcrypt hash rejected")
	}
	if tokens.VerifyPassword("other", string(hash)) {
		t.Fatalf("invalid bcrypt password accepted")
	}
}

func TestAccessTokenRoundtrip(t *testing.T) {
	tokens := testTokens()
	signed, expiresAt, err := tokens.CreateAccessToken("admin-1", "admin@raydanforum.org", RoleSuperAdmin)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if expiresAt <= time.Now().Unix() {
		t.Fatalf("expiry in the past: %d", expiresAt)
	}
	token, claims, err := tokens.ParseToken(signed)
	if err != nil || !token.Valid {
		t.Fatalf("parse: %v", err)
	}
	if claims["typ"] != "access" {
		t.Fatalf("typ = %v", claims["typ"])
	}
	if claims["sub"] != "admin-1" || claims["role"] != RoleSuperAdmin {
		t.Fatalf("claims = %v", claims)
	}
}

func TestRefreshTokenCarriesType(t *testing.T) {
	tokens := testTokens()
	signed, err := tokens.CreateRefreshToken("admin-1")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	token, claims, err := tokens.ParseToken(signed)
	if err != nil || !token.Valid {
		t.Fatalf("parse: %v", err)
	}
	if claims["typ"] != "refresh" {
		t.Fatalf("typ = %v", claims["typ"])
	}
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	signed, _, err := testTokens().CreateAccessToken("admin-1", "a@b.c", RoleEditor)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	other := testTokens()
	other.Secret = []byte("different-secret")
	token, _, err := other.ParseToken(signed)
	if err == nil && token.Valid {
		t.Fatalf("token signed with another secret accepted")
	}
}

func TestParseTokenRejectsWrongIssuer(t *testing.T) {
	issuing := testTokens()
	issuing.Issuer = "someone-else"
	signed, _, err := issuing.CreateAccessToken("admin-1", "a@b.c", RoleEditor)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	token, _, err := testTokens().ParseToken(signed)
	if err == nil && token.Valid {
		t.Fatalf("token from another issuer accepted")
	}
}
