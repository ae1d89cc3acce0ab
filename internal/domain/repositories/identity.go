package repositories

import (
	"context"

	"contentcraft/internal/domain/models"
)

// IdentityRepository defines data access operations for user accounts
type IdentityRepository interface {
	// Create inserts a new identity. Returns a ConflictError if the email
	// is already registered.
	Create(ctx context.Context, identity *models.Identity) error

	// GetByEmail retrieves an identity by email
	GetByEmail(ctx context.Context, email string) (*models.Identity, error)

	// GetByID retrieves an identity by ID
	GetByID(ctx context.Context, id string) (*models.Identity, error)
}
