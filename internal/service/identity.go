package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"

	"contentcraft/internal/auth"
	"contentcraft/internal/domain"
	"contentcraft/internal/domain/models"
	"contentcraft/internal/domain/repositories"
	"contentcraft/internal/domain/services"
)

// identityService implements the IdentityService interface
type identityService struct {
	identityRepo repositories.IdentityRepository
	tokens       *auth.TokenManager
	logger       *slog.Logger
}

// NewIdentityService creates a new identity service
func NewIdentityService(
	identityRepo repositories.IdentityRepository,
	tokens *auth.TokenManager,
	logger *slog.Logger,
) services.IdentityService {
	return &identityService{
		identityRepo: identityRepo,
		tokens:       tokens,
		logger:       logger,
	}
}

// Register creates a new account and logs it in
func (s *identityService) Register(ctx context.Context, req *services.RegisterRequest) (*services.AuthResult, error) {
	if err := s.validateCredentials(req.Email, req.Password); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	email := normalizeEmail(req.Email)

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	identity := &models.Identity{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    time.Now(),
	}

	if err := s.identityRepo.Create(ctx, identity); err != nil {
		return nil, err
	}

	s.logger.Info("identity registered",
		"id", identity.ID,
		"email", identity.Email,
	)

	return s.issueToken(identity)
}

// Login verifies credentials and issues a fresh token
func (s *identityService) Login(ctx context.Context, req *services.LoginRequest) (*services.AuthResult, error) {
	if err := s.validateCredentials(req.Email, req.Password); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	email := normalizeEmail(req.Email)

	identity, err := s.identityRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			// Same error as a wrong password so the endpoint does not leak
			// which emails are registered.
			return nil, fmt.Errorf("invalid credentials: %w", domain.ErrUnauthorized)
		}
		return nil, err
	}

	if !auth.CheckPassword(identity.PasswordHash, req.Password) {
		return nil, fmt.Errorf("invalid credentials: %w", domain.ErrUnauthorized)
	}

	s.logger.Info("identity logged in", "id", identity.ID)

	return s.issueToken(identity)
}

// Resolve returns the identity behind a verified token subject
func (s *identityService) Resolve(ctx context.Context, userID string) (*models.Identity, error) {
	identity, err := s.identityRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			// Token subject no longer exists; treat as an auth failure, not
			// a missing resource.
			return nil, fmt.Errorf("unknown identity: %w", domain.ErrUnauthorized)
		}
		return nil, err
	}
	return identity, nil
}

func (s *identityService) issueToken(identity *models.Identity) (*services.AuthResult, error) {
	token, err := s.tokens.Issue(identity.ID, identity.Email)
	if err != nil {
		return nil, fmt.Errorf("issuing token: %w", err)
	}
	return &services.AuthResult{
		AccessToken: token,
		TokenType:   "bearer",
		UserID:      identity.ID,
		Email:       identity.Email,
	}, nil
}

func (s *identityService) validateCredentials(email, password string) error {
	creds := struct {
		Email    string
		Password string
	}{Email: strings.TrimSpace(email), Password: password}

	return validation.ValidateStruct(&creds,
		validation.Field(&creds.Email, validation.Required, is.Email),
		// bcrypt truncates past 72 bytes
		validation.Field(&creds.Password, validation.Required, validation.Length(8, 72)),
	)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
