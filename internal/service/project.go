package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"contentcraft/internal/domain"
	"contentcraft/internal/domain/models"
	"contentcraft/internal/domain/repositories"
	"contentcraft/internal/domain/services"
)

const (
	maxProjectNameLength = 200
	maxTopicLength       = 500
	maxSectionCount      = 50
	maxSectionTitleLen   = 300
)

// projectService implements the ProjectService interface
type projectService struct {
	projectRepo repositories.ProjectRepository
	sectionRepo repositories.SectionRepository
	txm         repositories.TransactionManager
	logger      *slog.Logger
}

// NewProjectService creates a new project service
func NewProjectService(
	projectRepo repositories.ProjectRepository,
	sectionRepo repositories.SectionRepository,
	txm repositories.TransactionManager,
	logger *slog.Logger,
) services.ProjectService {
	return &projectService{
		projectRepo: projectRepo,
		sectionRepo: sectionRepo,
		txm:         txm,
		logger:      logger,
	}
}

// CreateProject creates a project and seeds one empty section per config
// title, atomically. A project is never visible without its sections.
func (s *projectService) CreateProject(ctx context.Context, req *services.CreateProjectRequest) (*models.Project, error) {
	if err := s.validateCreateRequest(req); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	now := time.Now()
	project := &models.Project{
		ID:        uuid.NewString(),
		UserID:    req.UserID,
		Name:      strings.TrimSpace(req.Name),
		Kind:      req.Kind,
		Topic:     strings.TrimSpace(req.Topic),
		Config:    trimAll(req.Config),
		CreatedAt: now,
		UpdatedAt: now,
	}

	sections := make([]*models.Section, len(project.Config))
	for i, title := range project.Config {
		sections[i] = &models.Section{
			ID:         uuid.NewString(),
			ProjectID:  project.ID,
			OrderIndex: i,
			Title:      title,
			Content:    nil,
			CreatedAt:  now,
			UpdatedAt:  now,
		}
	}

	err := s.txm.ExecTx(ctx, func(txCtx context.Context) error {
		if err := s.projectRepo.Create(txCtx, project); err != nil {
			return err
		}
		return s.sectionRepo.CreateBatch(txCtx, sections)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("project created",
		"id", project.ID,
		"kind", project.Kind,
		"sections", len(sections),
		"user_id", req.UserID,
	)

	return project, nil
}

// GetProject retrieves a project by ID
func (s *projectService) GetProject(ctx context.Context, id, userID string) (*models.Project, error) {
	return s.projectRepo.GetByID(ctx, id, userID)
}

// ListProjects retrieves all projects for a user
func (s *projectService) ListProjects(ctx context.Context, userID string) ([]models.Project, error) {
	return s.projectRepo.List(ctx, userID)
}

// DeleteProject deletes a project and all its dependents
func (s *projectService) DeleteProject(ctx context.Context, id, userID string) error {
	if err := s.projectRepo.Delete(ctx, id, userID); err != nil {
		return err
	}

	s.logger.Info("project deleted", "id", id, "user_id", userID)
	return nil
}

// ListSections returns the project's sections in order
func (s *projectService) ListSections(ctx context.Context, projectID, userID string) ([]models.Section, error) {
	// Ownership gate: a foreign project must read as not found.
	if _, err := s.projectRepo.GetByID(ctx, projectID, userID); err != nil {
		return nil, err
	}
	return s.sectionRepo.ListByProject(ctx, projectID)
}

func (s *projectService) validateCreateRequest(req *services.CreateProjectRequest) error {
	return validation.ValidateStruct(req,
		validation.Field(&req.UserID, validation.Required),
		validation.Field(&req.Name,
			validation.Required,
			validation.Length(1, maxProjectNameLength),
			validation.By(validateNotBlank("name")),
		),
		validation.Field(&req.Kind, validation.Required, validation.By(validateKind)),
		validation.Field(&req.Topic,
			validation.Required,
			validation.Length(1, maxTopicLength),
			validation.By(validateNotBlank("topic")),
		),
		validation.Field(&req.Config,
			validation.Required,
			validation.Length(1, maxSectionCount),
			validation.Each(
				validation.Required,
				validation.Length(1, maxSectionTitleLen),
				validation.By(validateNotBlank("section title")),
			),
		),
	)
}

func validateKind(value interface{}) error {
	kind, ok := value.(models.ProjectKind)
	if !ok || !kind.Valid() {
		return fmt.Errorf("kind must be %q or %q", models.KindDocument, models.KindSlideshow)
	}
	return nil
}

func validateNotBlank(field string) validation.RuleFunc {
	return func(value interface{}) error {
		s, ok := value.(string)
		if !ok {
			return fmt.Errorf("%s must be a string", field)
		}
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s cannot be blank", field)
		}
		return nil
	}
}

func trimAll(values []string) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = strings.TrimSpace(v)
	}
	return out
}
