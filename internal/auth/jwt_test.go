package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/YairBetsalel/tutor-path-finder/internal/model"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	userID := uuid.New()

	token, err := NewAccessToken("secret", "tutor-path-finder", time.Minute, userID, model.RoleParent)
	if err != nil {
		t.Fatalf("NewAccessToken: %v", err)
	}

	claims, err := ParseToken("secret", "tutor-path-finder", token)
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}
	if claims.UserID != userID {
		t.Errorf("user id = %v, want %v", claims.UserID, userID)
	}
	if claims.Role != model.RoleParent {
		t.Errorf("role = %q, want parent", claims.Role)
	}
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	token, err := NewAccessToken("secret", "tutor-path-finder", time.Minute, uuid.New(), model.RoleStudent)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := ParseToken("other-secret", "tutor-path-finder", token); err == nil {
		t.Error("token accepted with wrong secret")
	}
}

func TestParseTokenRejectsWrongIssuer(t *testing.T) {
	token, err := NewAccessToken("secret", "someone-else", time.Minute, uuid.New(), model.RoleStudent)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := ParseToken("secret", "tutor-path-finder", token); err == nil {
		t.Error("token accepted with wrong issuer")
	}
}

func TestParseTokenRejectsExpired(t *testing.T) {
	token, err := NewAccessToken("secret", "tutor-path-finder", -time.Minute, uuid.New(), model.RoleStudent)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := ParseToken("secret", "tutor-path-finder", token); err == nil {
		t.Error("expired token accepted")
	}
}

func TestRefreshTokenHashing(t *testing.T) {
	token, err := NewRefreshToken()
	if err != nil {
		t.Fatalf("NewRefreshToken: %v", err)
	}
	other, err := NewRefreshToken()
	if err != nil {
		t.Fatal(err)
	}

	if token == other {
		t.Error("two refresh tokens are identical")
	}
	if HashToken(token) == token {
		t.Error("hash equals the raw token")
	}
	if HashToken(token) != HashToken(token) {
		t.Error("hash is not deterministic")
	}
	if HashToken(token) == HashToken(other) {
		t.Error("different tokens share a hash")
	}
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}

	if err := CheckPassword(hash, "correct horse battery staple"); err != nil {
		t.Errorf("valid password rejected: %v", err)
	}
	if err := CheckPassword(hash, "wrong"); err == nil {
		t.Error("wrong password accepted")
	}
}
