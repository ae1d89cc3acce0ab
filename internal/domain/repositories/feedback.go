package repositories

import (
	"context"

	"contentcraft/internal/domain/models"
)

// FeedbackRepository defines data access for the single per-section
// feedback record (upsert semantics)
type FeedbackRepository interface {
	// Upsert inserts or overwrites the feedback row for a section
	Upsert(ctx context.Context, feedback *models.Feedback) error

	// GetBySection returns the feedback row for a section scoped to the
	// given owner, or ErrNotFound when none has been submitted
	GetBySection(ctx context.Context, sectionID, userID string) (*models.Feedback, error)
}

// CommentRepository defines data access for the append-only comment store
type CommentRepository interface {
	// Create appends a comment
	Create(ctx context.Context, comment *models.Comment) error

	// ListBySection returns a section's comments, most recent first,
	// scoped to the given owner
	ListBySection(ctx context.Context, sectionID, userID string) ([]models.Comment, error)
}
