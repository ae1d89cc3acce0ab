package repositories

import (
	"context"

	"contentcraft/internal/domain/models"
)

// RevisionRepository defines data access operations for the append-only
// refinement ledger
type RevisionRepository interface {
	// Create appends a revision. Revisions are never updated or deleted.
	Create(ctx context.Context, revision *models.Revision) error

	// ListBySection returns a section's revisions, most recent first,
	// scoped to the given owner
	ListBySection(ctx context.Context, sectionID, userID string) ([]models.Revision, error)
}
