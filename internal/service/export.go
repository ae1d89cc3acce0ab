package service

import (
	"context"
	"fmt"
	"log/slog"

	"contentcraft/internal/domain"
	"contentcraft/internal/domain/models"
	"contentcraft/internal/domain/repositories"
	"contentcraft/internal/domain/services"
	"contentcraft/internal/export"
)

// exportService implements the ExportService interface
type exportService struct {
	projectRepo repositories.ProjectRepository
	sectionRepo repositories.SectionRepository
	logger      *slog.Logger
}

// NewExportService creates a new export service
func NewExportService(
	projectRepo repositories.ProjectRepository,
	sectionRepo repositories.SectionRepository,
	logger *slog.Logger,
) services.ExportService {
	return &exportService{
		projectRepo: projectRepo,
		sectionRepo: sectionRepo,
		logger:      logger,
	}
}

// Export renders the project to its download format. Only fully generated
// projects export; a partially generated one is a validation failure, not a
// half-empty file.
func (s *exportService) Export(ctx context.Context, projectID, userID string) (*services.ExportResult, error) {
	project, err := s.projectRepo.GetByID(ctx, projectID, userID)
	if err != nil {
		return nil, err
	}

	sections, err := s.sectionRepo.ListByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if len(sections) == 0 {
		return nil, fmt.Errorf("%w: project has no sections to export", domain.ErrValidation)
	}

	contents := make([]export.SectionContent, len(sections))
	for i, section := range sections {
		if !section.HasContent() {
			return nil, fmt.Errorf("%w: section %q has not been generated yet", domain.ErrValidation, section.Title)
		}
		contents[i] = export.SectionContent{Title: section.Title, Content: *section.Content}
	}

	var data []byte
	var mimeType string
	if project.Kind == models.KindSlideshow {
		data, err = export.RenderPptx(project.Name, project.Topic, contents)
		mimeType = export.MIMETypePptx
	} else {
		data, err = export.RenderDocx(project.Name, contents)
		mimeType = export.MIMETypeDocx
	}
	if err != nil {
		return nil, fmt.Errorf("rendering export: %w", err)
	}

	filename := export.Filename(project.Name, project.Kind.FileExtension())

	s.logger.Info("project exported",
		"project_id", projectID,
		"kind", project.Kind,
		"bytes", len(data),
	)

	return &services.ExportResult{
		Data:     data,
		Filename: filename,
		MIMEType: mimeType,
	}, nil
}
