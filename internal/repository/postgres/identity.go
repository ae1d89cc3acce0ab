package postgres

import (
	"context"
	"fmt"

	"contentcraft/internal/domain"
	"contentcraft/internal/domain/models"
	"contentcraft/internal/domain/repositories"
)

// IdentityRepository implements repositories.IdentityRepository using PostgreSQL
type IdentityRepository struct {
	config RepositoryConfig
}

// NewIdentityRepository creates a new PostgreSQL identity repository
func NewIdentityRepository(config RepositoryConfig) repositories.IdentityRepository {
	return &IdentityRepository{config: config}
}

func (r *IdentityRepository) Create(ctx context.Context, identity *models.Identity) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (id, email, password_hash, created_at)
		VALUES ($1, $2, $3, $4)
	`, r.config.Tables.Identities)

	executor := GetExecutor(ctx, r.config.Pool)
	_, err := executor.Exec(ctx, query,
		identity.ID, identity.Email, identity.PasswordHash, identity.CreatedAt)
	if err != nil {
		if IsPgDuplicateError(err) {
			return &domain.ConflictError{
				Message:      fmt.Sprintf("email %s is already registered", identity.Email),
				ResourceType: "identity",
				ResourceID:   identity.Email,
			}
		}
		return fmt.Errorf("creating identity: %w", err)
	}
	return nil
}

func (r *IdentityRepository) GetByEmail(ctx context.Context, email string) (*models.Identity, error) {
	query := fmt.Sprintf(`
		SELECT id, email, password_hash, created_at
		FROM %s
		WHERE email = $1
	`, r.config.Tables.Identities)

	executor := GetExecutor(ctx, r.config.Pool)
	var identity models.Identity
	err := executor.QueryRow(ctx, query, email).Scan(
		&identity.ID, &identity.Email, &identity.PasswordHash, &identity.CreatedAt)
	if err != nil {
		if IsPgNoRowsError(err) {
			return nil, fmt.Errorf("identity %s: %w", email, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("getting identity by email: %w", err)
	}
	return &identity, nil
}

func (r *IdentityRepository) GetByID(ctx context.Context, id string) (*models.Identity, error) {
	query := fmt.Sprintf(`
		SELECT id, email, password_hash, created_at
		FROM %s
		WHERE id = $1
	`, r.config.Tables.Identities)

	executor := GetExecutor(ctx, r.config.Pool)
	var identity models.Identity
	err := executor.QueryRow(ctx, query, id).Scan(
		&identity.ID, &identity.Email, &identity.PasswordHash, &identity.CreatedAt)
	if err != nil {
		if IsPgNoRowsError(err) {
			return nil, fmt.Errorf("identity %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("getting identity by id: %w", err)
	}
	return &identity, nil
}
