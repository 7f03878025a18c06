package utils

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	t.Setenv("ACCESS_TOKEN_SECRET", "test-access-secret")

	userID := primitive.NewObjectID()
	token, err := GenerateAccessToken(userID, "jo@example.com", "user")
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}

	claims, err := ValidateAccessToken(token)
	if err != nil {
		t.Fatalf("ValidateAccessToken: %v", err)
	}
	if claims.UserID != userID {
		t.Errorf("user id: got %s, want %s", claims.UserID.Hex(), userID.Hex())
	}
	if claims.Email != "jo@example.com" {
		t.Errorf("email: got %q", claims.Email)
	}
	if claims.Role != "user" {
		t.Errorf("role: got %q", claims.Role)
	}
}

func TestRefreshTokenNotValidAsAccessToken(t *testing.T) {
	t.Setenv("ACCESS_TOKEN_SECRET", "test-access-secret")
	t.Setenv("REFRESH_TOKEN_SECRET", "test-refresh-secret")

	token, err := GenerateRefreshToken(primitive.NewObjectID())
	if err != nil {
		t.Fatalf("GenerateRefreshToken: %v", err)
	}
	if _, err := ValidateAccessToken(token); err == nil {
		t.Error("refresh token must not validate as an access token")
	}
}

func TestMissingSecretFails(t *testing.T) {
	t.Setenv("ACCESS_TOKEN_SECRET", "")

	if _, err := GenerateAccessToken(primitive.NewObjectID(), "jo@example.com", "user"); err == nil {
		t.Error("expected error when ACCESS_TOKEN_SECRET is unset")
	}
}
