package repositories

import (
	"context"

	"contentcraft/internal/domain/models"
)

// ProjectRepository defines data access operations for projects.
// All reads are ownership-scoped: a project owned by another identity is
// indistinguishable from a missing one.
type ProjectRepository interface {
	// Create creates a new project
	Create(ctx context.Context, project *models.Project) error

	// GetByID retrieves a project by ID for the given owner
	GetByID(ctx context.Context, id, userID string) (*models.Project, error)

	// List retrieves all projects for a user, newest first
	List(ctx context.Context, userID string) ([]models.Project, error)

	// Delete removes a project and cascades to its sections, revisions,
	// feedback and comments in one transaction
	Delete(ctx context.Context, id, userID string) error

	// Touch bumps the project's updated_at timestamp
	Touch(ctx context.Context, id string) error
}

// ProjectLocker serializes generation per project across processes.
type ProjectLocker interface {
	// TryLock attempts to take the per-project generation lock without
	// blocking. On success ok is true and release must be called to free
	// the lock. On contention ok is false and release is nil.
	TryLock(ctx context.Context, projectID string) (release func(), ok bool, err error)
}
