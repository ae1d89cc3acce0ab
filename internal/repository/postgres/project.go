package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"contentcraft/internal/domain"
	"contentcraft/internal/domain/models"
	"contentcraft/internal/domain/repositories"
)

// ProjectRepository implements repositories.ProjectRepository using PostgreSQL
type ProjectRepository struct {
	config RepositoryConfig
	txm    repositories.TransactionManager
}

// NewProjectRepository creates a new PostgreSQL project repository
func NewProjectRepository(config RepositoryConfig, txm repositories.TransactionManager) repositories.ProjectRepository {
	return &ProjectRepository{config: config, txm: txm}
}

func (r *ProjectRepository) Create(ctx context.Context, project *models.Project) error {
	configJSON, err := json.Marshal(project.Config)
	if err != nil {
		return fmt.Errorf("marshaling project config: %w", err)
	}

	query := fmt.Sprintf(`
		INSERT INTO %s (id, user_id, name, kind, topic, config, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, r.config.Tables.Projects)

	executor := GetExecutor(ctx, r.config.Pool)
	_, err = executor.Exec(ctx, query,
		project.ID, project.UserID, project.Name, string(project.Kind),
		project.Topic, configJSON, project.CreatedAt, project.UpdatedAt)
	if err != nil {
		if IsPgDuplicateError(err) {
			return &domain.ConflictError{
				Message:      fmt.Sprintf("project %s already exists", project.ID),
				ResourceType: "project",
				ResourceID:   project.ID,
			}
		}
		return fmt.Errorf("creating project: %w", err)
	}
	return nil
}

func (r *ProjectRepository) GetByID(ctx context.Context, id, userID string) (*models.Project, error) {
	query := fmt.Sprintf(`
		SELECT id, user_id, name, kind, topic, config, created_at, updated_at
		FROM %s
		WHERE id = $1 AND user_id = $2
	`, r.config.Tables.Projects)

	executor := GetExecutor(ctx, r.config.Pool)
	project, err := scanProject(executor.QueryRow(ctx, query, id, userID))
	if err != nil {
		if IsPgNoRowsError(err) {
			return nil, fmt.Errorf("project %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("getting project: %w", err)
	}
	return project, nil
}

func (r *ProjectRepository) List(ctx context.Context, userID string) ([]models.Project, error) {
	query := fmt.Sprintf(`
		SELECT id, user_id, name, kind, topic, config, created_at, updated_at
		FROM %s
		WHERE user_id = $1
		ORDER BY created_at DESC
	`, r.config.Tables.Projects)

	executor := GetExecutor(ctx, r.config.Pool)
	rows, err := executor.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("listing projects: %w", err)
	}
	defer rows.Close()

	projects := []models.Project{}
	for rows.Next() {
		project, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning project row: %w", err)
		}
		projects = append(projects, *project)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating project rows: %w", err)
	}
	return projects, nil
}

// Delete removes the project and all its dependents. Children go first so
// the foreign keys never block: comments and feedback and revisions hang
// off sections, sections hang off the project.
func (r *ProjectRepository) Delete(ctx context.Context, id, userID string) error {
	// Ownership check before mutating anything.
	if _, err := r.GetByID(ctx, id, userID); err != nil {
		return err
	}

	return r.txm.ExecTx(ctx, func(txCtx context.Context) error {
		executor := GetExecutor(txCtx, r.config.Pool)
		t := r.config.Tables

		sectionFilter := fmt.Sprintf(
			`section_id IN (SELECT id FROM %s WHERE project_id = $1)`, t.Sections)

		stmts := []string{
			fmt.Sprintf(`DELETE FROM %s WHERE %s`, t.Comments, sectionFilter),
			fmt.Sprintf(`DELETE FROM %s WHERE %s`, t.Feedback, sectionFilter),
			fmt.Sprintf(`DELETE FROM %s WHERE %s`, t.Revisions, sectionFilter),
			fmt.Sprintf(`DELETE FROM %s WHERE project_id = $1`, t.Sections),
			fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, t.Projects),
		}
		for _, stmt := range stmts {
			if _, err := executor.Exec(txCtx, stmt, id); err != nil {
				return fmt.Errorf("deleting project %s: %w", id, err)
			}
		}
		return nil
	})
}

func (r *ProjectRepository) Touch(ctx context.Context, id string) error {
	query := fmt.Sprintf(`
		UPDATE %s SET updated_at = now() WHERE id = $1
	`, r.config.Tables.Projects)

	executor := GetExecutor(ctx, r.config.Pool)
	if _, err := executor.Exec(ctx, query, id); err != nil {
		return fmt.Errorf("touching project %s: %w", id, err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanProject(row rowScanner) (*models.Project, error) {
	var project models.Project
	var kind string
	var configJSON []byte
	err := row.Scan(&project.ID, &project.UserID, &project.Name, &kind,
		&project.Topic, &configJSON, &project.CreatedAt, &project.UpdatedAt)
	if err != nil {
		return nil, err
	}
	project.Kind = models.ProjectKind(kind)
	if err := json.Unmarshal(configJSON, &project.Config); err != nil {
		return nil, fmt.Errorf("unmarshaling project config: %w", err)
	}
	return &project, nil
}
