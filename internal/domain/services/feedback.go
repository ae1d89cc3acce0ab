package services

import (
	"context"

	"contentcraft/internal/domain/models"
)

// SubmitFeedbackRequest upserts the single feedback record of a section.
// An empty sentiment keeps the previously stored one.
type SubmitFeedbackRequest struct {
	UserID    string           `json:"-"`
	SectionID string           `json:"section_id"`
	Sentiment models.Sentiment `json:"feedback"`
	Comment   string           `json:"comment"`
}

// AddCommentRequest appends a standalone comment to a section
type AddCommentRequest struct {
	UserID    string `json:"-"`
	SectionID string `json:"-"`
	Text      string `json:"comment"`
}

// FeedbackService manages the two distinct per-section stores: the single
// upserted feedback record and the append-only comment list.
type FeedbackService interface {
	// SubmitFeedback overwrites the section's feedback record
	SubmitFeedback(ctx context.Context, req *SubmitFeedbackRequest) (*models.Feedback, error)

	// GetFeedback returns the section's feedback record; when none exists a
	// zero record with sentiment "none" is returned
	GetFeedback(ctx context.Context, sectionID, userID string) (*models.Feedback, error)

	// AddComment appends a comment; blank text is rejected
	AddComment(ctx context.Context, req *AddCommentRequest) (*models.Comment, error)

	// ListComments returns a section's comments, most recent first
	ListComments(ctx context.Context, sectionID, userID string) ([]models.Comment, error)
}
