package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"contentcraft/internal/domain"
	"contentcraft/internal/domain/models"
	"contentcraft/internal/domain/repositories"
	"contentcraft/internal/domain/services"
)

const maxCommentLength = 2000

// feedbackService implements the FeedbackService interface
type feedbackService struct {
	sectionRepo  repositories.SectionRepository
	feedbackRepo repositories.FeedbackRepository
	commentRepo  repositories.CommentRepository
	logger       *slog.Logger
}

// NewFeedbackService creates a new feedback service
func NewFeedbackService(
	sectionRepo repositories.SectionRepository,
	feedbackRepo repositories.FeedbackRepository,
	commentRepo repositories.CommentRepository,
	logger *slog.Logger,
) services.FeedbackService {
	return &feedbackService{
		sectionRepo:  sectionRepo,
		feedbackRepo: feedbackRepo,
		commentRepo:  commentRepo,
		logger:       logger,
	}
}

// SubmitFeedback overwrites the section's single feedback record. An empty
// sentiment in the request keeps whatever sentiment was stored before, so a
// comment-only submission does not wipe a like.
func (s *feedbackService) SubmitFeedback(ctx context.Context, req *services.SubmitFeedbackRequest) (*models.Feedback, error) {
	if req.Sentiment != "" && !req.Sentiment.Valid() {
		return nil, fmt.Errorf("%w: feedback must be %q, %q or %q",
			domain.ErrValidation, models.SentimentLike, models.SentimentDislike, models.SentimentNone)
	}
	if len(req.Comment) > maxCommentLength {
		return nil, fmt.Errorf("%w: comment exceeds %d characters", domain.ErrValidation, maxCommentLength)
	}

	if _, _, err := s.sectionRepo.GetForOwner(ctx, req.SectionID, req.UserID); err != nil {
		return nil, err
	}

	sentiment := req.Sentiment
	if sentiment == "" {
		sentiment = models.SentimentNone
		if existing, err := s.feedbackRepo.GetBySection(ctx, req.SectionID, req.UserID); err == nil {
			sentiment = existing.Sentiment
		} else if !errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
	}

	feedback := &models.Feedback{
		SectionID: req.SectionID,
		Sentiment: sentiment,
		Comment:   strings.TrimSpace(req.Comment),
		UpdatedAt: time.Now(),
	}
	if err := s.feedbackRepo.Upsert(ctx, feedback); err != nil {
		return nil, err
	}

	s.logger.Info("feedback submitted",
		"section_id", req.SectionID,
		"sentiment", sentiment,
	)
	return feedback, nil
}

// GetFeedback returns the section's feedback record, defaulting to a zero
// record when none has been submitted yet
func (s *feedbackService) GetFeedback(ctx context.Context, sectionID, userID string) (*models.Feedback, error) {
	if _, _, err := s.sectionRepo.GetForOwner(ctx, sectionID, userID); err != nil {
		return nil, err
	}

	feedback, err := s.feedbackRepo.GetBySection(ctx, sectionID, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return &models.Feedback{
				SectionID: sectionID,
				Sentiment: models.SentimentNone,
			}, nil
		}
		return nil, err
	}
	return feedback, nil
}

// AddComment appends a comment to the section
func (s *feedbackService) AddComment(ctx context.Context, req *services.AddCommentRequest) (*models.Comment, error) {
	text := strings.TrimSpace(req.Text)
	if text == "" {
		return nil, fmt.Errorf("%w: comment cannot be blank", domain.ErrValidation)
	}
	if len(text) > maxCommentLength {
		return nil, fmt.Errorf("%w: comment exceeds %d characters", domain.ErrValidation, maxCommentLength)
	}

	if _, _, err := s.sectionRepo.GetForOwner(ctx, req.SectionID, req.UserID); err != nil {
		return nil, err
	}

	comment := &models.Comment{
		ID:        uuid.NewString(),
		SectionID: req.SectionID,
		Text:      text,
		CreatedAt: time.Now(),
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}

	s.logger.Info("comment added", "section_id", req.SectionID, "comment_id", comment.ID)
	return comment, nil
}

// ListComments returns the section's comments, most recent first
func (s *feedbackService) ListComments(ctx context.Context, sectionID, userID string) ([]models.Comment, error) {
	if _, _, err := s.sectionRepo.GetForOwner(ctx, sectionID, userID); err != nil {
		return nil, err
	}
	return s.commentRepo.ListBySection(ctx, sectionID, userID)
}
