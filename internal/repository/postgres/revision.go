package postgres

import (
	"context"
	"fmt"

	"contentcraft/internal/domain/models"
	"contentcraft/internal/domain/repositories"
)

// RevisionRepository implements repositories.RevisionRepository using PostgreSQL
type RevisionRepository struct {
	config RepositoryConfig
}

// NewRevisionRepository creates a new PostgreSQL revision repository
func NewRevisionRepository(config RepositoryConfig) repositories.RevisionRepository {
	return &RevisionRepository{config: config}
}

func (r *RevisionRepository) Create(ctx context.Context, revision *models.Revision) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (id, section_id, prompt, response, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, r.config.Tables.Revisions)

	executor := GetExecutor(ctx, r.config.Pool)
	_, err := executor.Exec(ctx, query,
		revision.ID, revision.SectionID, revision.Prompt,
		revision.Response, revision.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating revision: %w", err)
	}
	return nil
}

func (r *RevisionRepository) ListBySection(ctx context.Context, sectionID, userID string) ([]models.Revision, error) {
	query := fmt.Sprintf(`
		SELECT rv.id, rv.section_id, rv.prompt, rv.response, rv.created_at
		FROM %s rv
		JOIN %s s ON s.id = rv.section_id
		JOIN %s p ON p.id = s.project_id
		WHERE rv.section_id = $1 AND p.user_id = $2
		ORDER BY rv.created_at DESC
	`, r.config.Tables.Revisions, r.config.Tables.Sections, r.config.Tables.Projects)

	executor := GetExecutor(ctx, r.config.Pool)
	rows, err := executor.Query(ctx, query, sectionID, userID)
	if err != nil {
		return nil, fmt.Errorf("listing revisions: %w", err)
	}
	defer rows.Close()

	revisions := []models.Revision{}
	for rows.Next() {
		var rv models.Revision
		err := rows.Scan(&rv.ID, &rv.SectionID, &rv.Prompt, &rv.Response, &rv.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("scanning revision row: %w", err)
		}
		revisions = append(revisions, rv)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating revision rows: %w", err)
	}
	return revisions, nil
}
