package services

import (
	"context"

	"contentcraft/internal/domain/models"
)

// CreateProjectRequest carries the payload for project creation.
// Config is the ordered list of section/slide titles; it seeds one null
// Section per title synchronously with the project.
type CreateProjectRequest struct {
	UserID string             `json:"-"`
	Name   string             `json:"name"`
	Kind   models.ProjectKind `json:"kind"`
	Topic  string             `json:"topic"`
	Config []string           `json:"config"`
}

// ProjectService manages projects and their seeded sections
type ProjectService interface {
	// CreateProject creates a project and seeds its sections in one
	// transaction
	CreateProject(ctx context.Context, req *CreateProjectRequest) (*models.Project, error)

	// GetProject retrieves a project by ID
	GetProject(ctx context.Context, id, userID string) (*models.Project, error)

	// ListProjects retrieves all projects for a user
	ListProjects(ctx context.Context, userID string) ([]models.Project, error)

	// DeleteProject deletes a project and everything it owns
	DeleteProject(ctx context.Context, id, userID string) error

	// ListSections returns a project's sections in order
	ListSections(ctx context.Context, projectID, userID string) ([]models.Section, error)
}
