package postgres

import (
	"context"
	"fmt"
	"time"

	"contentcraft/internal/domain"
	"contentcraft/internal/domain/models"
	"contentcraft/internal/domain/repositories"
)

// SectionRepository implements repositories.SectionRepository using PostgreSQL
type SectionRepository struct {
	config RepositoryConfig
}

// NewSectionRepository creates a new PostgreSQL section repository
func NewSectionRepository(config RepositoryConfig) repositories.SectionRepository {
	return &SectionRepository{config: config}
}

func (r *SectionRepository) CreateBatch(ctx context.Context, sections []*models.Section) error {
	if len(sections) == 0 {
		return nil
	}

	query := fmt.Sprintf(`
		INSERT INTO %s (id, project_id, order_index, title, content, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, r.config.Tables.Sections)

	executor := GetExecutor(ctx, r.config.Pool)
	for _, section := range sections {
		_, err := executor.Exec(ctx, query,
			section.ID, section.ProjectID, section.OrderIndex,
			section.Title, section.Content, section.CreatedAt, section.UpdatedAt)
		if err != nil {
			return fmt.Errorf("creating section %d: %w", section.OrderIndex, err)
		}
	}
	return nil
}

func (r *SectionRepository) ListByProject(ctx context.Context, projectID string) ([]models.Section, error) {
	query := fmt.Sprintf(`
		SELECT id, project_id, order_index, title, content, created_at, updated_at
		FROM %s
		WHERE project_id = $1
		ORDER BY order_index ASC
	`, r.config.Tables.Sections)

	executor := GetExecutor(ctx, r.config.Pool)
	rows, err := executor.Query(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("listing sections: %w", err)
	}
	defer rows.Close()

	sections := []models.Section{}
	for rows.Next() {
		var s models.Section
		err := rows.Scan(&s.ID, &s.ProjectID, &s.OrderIndex, &s.Title,
			&s.Content, &s.CreatedAt, &s.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("scanning section row: %w", err)
		}
		sections = append(sections, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating section rows: %w", err)
	}
	return sections, nil
}

// GetForOwner joins through the projects table so a section belonging to
// another user reads as not found.
func (r *SectionRepository) GetForOwner(ctx context.Context, sectionID, userID string) (*models.Section, *models.Project, error) {
	query := fmt.Sprintf(`
		SELECT s.id, s.project_id, s.order_index, s.title, s.content,
		       s.created_at, s.updated_at,
		       p.id, p.user_id, p.name, p.kind, p.topic, p.created_at, p.updated_at
		FROM %s s
		JOIN %s p ON p.id = s.project_id
		WHERE s.id = $1 AND p.user_id = $2
	`, r.config.Tables.Sections, r.config.Tables.Projects)

	executor := GetExecutor(ctx, r.config.Pool)
	var s models.Section
	var p models.Project
	var kind string
	err := executor.QueryRow(ctx, query, sectionID, userID).Scan(
		&s.ID, &s.ProjectID, &s.OrderIndex, &s.Title, &s.Content,
		&s.CreatedAt, &s.UpdatedAt,
		&p.ID, &p.UserID, &p.Name, &kind, &p.Topic, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if IsPgNoRowsError(err) {
			return nil, nil, fmt.Errorf("section %s: %w", sectionID, domain.ErrNotFound)
		}
		return nil, nil, fmt.Errorf("getting section: %w", err)
	}
	p.Kind = models.ProjectKind(kind)
	return &s, &p, nil
}

func (r *SectionRepository) UpdateContent(ctx context.Context, sectionID, content string, updatedAt time.Time, onlyIfNull bool) error {
	guard := ""
	if onlyIfNull {
		guard = " AND content IS NULL"
	}
	query := fmt.Sprintf(`
		UPDATE %s SET content = $2, updated_at = $3
		WHERE id = $1%s
	`, r.config.Tables.Sections, guard)

	executor := GetExecutor(ctx, r.config.Pool)
	tag, err := executor.Exec(ctx, query, sectionID, content, updatedAt)
	if err != nil {
		return fmt.Errorf("updating section content: %w", err)
	}
	if tag.RowsAffected() == 0 {
		if onlyIfNull {
			// Content was filled concurrently; the guard did its job.
			return nil
		}
		return fmt.Errorf("section %s: %w", sectionID, domain.ErrNotFound)
	}
	return nil
}
