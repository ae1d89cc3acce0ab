package postgres

import (
	"context"
	"fmt"

	"contentcraft/internal/domain"
	"contentcraft/internal/domain/models"
	"contentcraft/internal/domain/repositories"
)

// FeedbackRepository implements repositories.FeedbackRepository using PostgreSQL
type FeedbackRepository struct {
	config RepositoryConfig
}

// NewFeedbackRepository creates a new PostgreSQL feedback repository
func NewFeedbackRepository(config RepositoryConfig) repositories.FeedbackRepository {
	return &FeedbackRepository{config: config}
}

func (r *FeedbackRepository) Upsert(ctx context.Context, feedback *models.Feedback) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (section_id, sentiment, comment, updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (section_id) DO UPDATE
		SET sentiment = EXCLUDED.sentiment,
		    comment = EXCLUDED.comment,
		    updated_at = EXCLUDED.updated_at
	`, r.config.Tables.Feedback)

	executor := GetExecutor(ctx, r.config.Pool)
	_, err := executor.Exec(ctx, query,
		feedback.SectionID, string(feedback.Sentiment), feedback.Comment, feedback.UpdatedAt)
	if err != nil {
		return fmt.Errorf("upserting feedback: %w", err)
	}
	return nil
}

func (r *FeedbackRepository) GetBySection(ctx context.Context, sectionID, userID string) (*models.Feedback, error) {
	query := fmt.Sprintf(`
		SELECT f.section_id, f.sentiment, f.comment, f.updated_at
		FROM %s f
		JOIN %s s ON s.id = f.section_id
		JOIN %s p ON p.id = s.project_id
		WHERE f.section_id = $1 AND p.user_id = $2
	`, r.config.Tables.Feedback, r.config.Tables.Sections, r.config.Tables.Projects)

	executor := GetExecutor(ctx, r.config.Pool)
	var f models.Feedback
	var sentiment string
	err := executor.QueryRow(ctx, query, sectionID, userID).Scan(
		&f.SectionID, &sentiment, &f.Comment, &f.UpdatedAt)
	if err != nil {
		if IsPgNoRowsError(err) {
			return nil, fmt.Errorf("feedback for section %s: %w", sectionID, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("getting feedback: %w", err)
	}
	f.Sentiment = models.Sentiment(sentiment)
	return &f, nil
}

// CommentRepository implements repositories.CommentRepository using PostgreSQL
type CommentRepository struct {
	config RepositoryConfig
}

// NewCommentRepository creates a new PostgreSQL comment repository
func NewCommentRepository(config RepositoryConfig) repositories.CommentRepository {
	return &CommentRepository{config: config}
}

func (r *CommentRepository) Create(ctx context.Context, comment *models.Comment) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (id, section_id, text, created_at)
		VALUES ($1, $2, $3, $4)
	`, r.config.Tables.Comments)

	executor := GetExecutor(ctx, r.config.Pool)
	_, err := executor.Exec(ctx, query,
		comment.ID, comment.SectionID, comment.Text, comment.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating comment: %w", err)
	}
	return nil
}

func (r *CommentRepository) ListBySection(ctx context.Context, sectionID, userID string) ([]models.Comment, error) {
	query := fmt.Sprintf(`
		SELECT c.id, c.section_id, c.text, c.created_at
		FROM %s c
		JOIN %s s ON s.id = c.section_id
		JOIN %s p ON p.id = s.project_id
		WHERE c.section_id = $1 AND p.user_id = $2
		ORDER BY c.created_at DESC
	`, r.config.Tables.Comments, r.config.Tables.Sections, r.config.Tables.Projects)

	executor := GetExecutor(ctx, r.config.Pool)
	rows, err := executor.Query(ctx, query, sectionID, userID)
	if err != nil {
		return nil, fmt.Errorf("listing comments: %w", err)
	}
	defer rows.Close()

	comments := []models.Comment{}
	for rows.Next() {
		var c models.Comment
		err := rows.Scan(&c.ID, &c.SectionID, &c.Text, &c.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("scanning comment row: %w", err)
		}
		comments = append(comments, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating comment rows: %w", err)
	}
	return comments, nil
}
