package services

import (
	"context"

	"contentcraft/internal/domain/models"
)

// RegisterRequest carries the payload for account creation
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest carries the payload for authentication
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResult is returned by both register and login
type AuthResult struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	UserID      string `json:"user_id"`
	Email       string `json:"email"`
}

// ValidateResult confirms a bearer token's identity. A response is only
// produced for a token that verified, so Valid is always true on success.
type ValidateResult struct {
	Valid  bool   `json:"valid"`
	UserID string `json:"user_id"`
	Email  string `json:"email"`
}

// IdentityService issues and resolves user identities
type IdentityService interface {
	// Register creates an account and returns a fresh bearer token.
	// Fails with a conflict error if the email is already registered.
	Register(ctx context.Context, req *RegisterRequest) (*AuthResult, error)

	// Login verifies credentials and returns a fresh bearer token
	Login(ctx context.Context, req *LoginRequest) (*AuthResult, error)

	// Resolve returns the identity for an already-verified user ID.
	// Backs the GET /auth/validate endpoint.
	Resolve(ctx context.Context, userID string) (*models.Identity, error)
}
