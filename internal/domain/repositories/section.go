package repositories

import (
	"context"
	"time"

	"contentcraft/internal/domain/models"
)

// SectionRepository defines data access operations for sections
type SectionRepository interface {
	// CreateBatch inserts the seeded sections for a new project
	CreateBatch(ctx context.Context, sections []*models.Section) error

	// ListByProject returns a project's sections ordered by order_index.
	// Ownership of the project must be checked by the caller.
	ListByProject(ctx context.Context, projectID string) ([]models.Section, error)

	// GetForOwner retrieves a section together with its parent project,
	// scoped to the given owner
	GetForOwner(ctx context.Context, sectionID, userID string) (*models.Section, *models.Project, error)

	// UpdateContent replaces a section's content. When onlyIfNull is set the
	// write applies only while content is still null (generation guard).
	UpdateContent(ctx context.Context, sectionID, content string, updatedAt time.Time, onlyIfNull bool) error
}
