package service

import (
	"context"
	"errors"
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
	"contentcraft/internal/llm"
)

const maxRefinePromptLength = 2000

// generationService implements the GenerationService interface
type generationService struct {
	projectRepo  repositories.ProjectRepository
	sectionRepo  repositories.SectionRepository
	revisionRepo repositories.RevisionRepository
	locker       repositories.ProjectLocker
	txm          repositories.TransactionManager
	generator    llm.Generator
	timeout      time.Duration
	logger       *slog.Logger
}

// NewGenerationService creates a new generation service. Every upstream call
// is bounded by timeout, independent of which provider backs the generator.
func NewGenerationService(
	projectRepo repositories.ProjectRepository,
	sectionRepo repositories.SectionRepository,
	revisionRepo repositories.RevisionRepository,
	locker repositories.ProjectLocker,
	txm repositories.TransactionManager,
	generator llm.Generator,
	timeout time.Duration,
	logger *slog.Logger,
) services.GenerationService {
	return &generationService{
		projectRepo:  projectRepo,
		sectionRepo:  sectionRepo,
		revisionRepo: revisionRepo,
		locker:       locker,
		txm:          txm,
		generator:    generator,
		timeout:      timeout,
		logger:       logger,
	}
}

// generateText runs one upstream call under the configured deadline, so a
// hung provider surfaces as a retryable timeout instead of a stuck request.
func (s *generationService) generateText(ctx context.Context, userPrompt string) (string, error) {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}
	return s.generator.GenerateText(ctx, generateSystemPrompt, userPrompt)
}

// TriggerGeneration fills every ungenerated section of the project.
//
// Idempotence rests on three layers: a cheap pre-check that skips the lock
// entirely when everything is already generated, a per-project advisory lock
// that serializes concurrent triggers, and a content-IS-NULL write guard as
// the last line of defense. Each section is written as soon as it is
// generated, so a mid-run failure keeps the completed prefix.
func (s *generationService) TriggerGeneration(ctx context.Context, projectID, userID string) (*services.GenerationResult, error) {
	project, err := s.projectRepo.GetByID(ctx, projectID, userID)
	if err != nil {
		return nil, err
	}

	sections, err := s.sectionRepo.ListByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if allGenerated(sections) {
		return &services.GenerationResult{AlreadyGenerated: true, Sections: sections}, nil
	}

	release, ok, err := s.locker.TryLock(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, &domain.ConflictError{
			Message:      "generation is already in progress for this project",
			ResourceType: "project",
			ResourceID:   projectID,
		}
	}
	defer release()

	// Re-read under the lock: another trigger may have finished between the
	// pre-check and the lock acquisition.
	sections, err = s.sectionRepo.ListByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if allGenerated(sections) {
		return &services.GenerationResult{AlreadyGenerated: true, Sections: sections}, nil
	}

	s.logger.Info("generation started",
		"project_id", projectID,
		"kind", project.Kind,
		"pending", countPending(sections),
	)

	total := len(sections)
	for i := range sections {
		if sections[i].HasContent() {
			continue
		}

		prompt := buildSectionPrompt(project, &sections[i], total, sections[:i])
		content, err := s.generateText(ctx, prompt)
		if err != nil {
			upErr := classifyUpstream("generate", err)
			s.logger.Error("generation failed partway",
				"project_id", projectID,
				"section_id", sections[i].ID,
				"order_index", sections[i].OrderIndex,
				"error", upErr,
			)
			// Completed sections are already persisted; report them so the
			// caller can see how far generation got.
			return &services.GenerationResult{Sections: sections}, upErr
		}

		now := time.Now()
		if err := s.sectionRepo.UpdateContent(ctx, sections[i].ID, content, now, true); err != nil {
			return &services.GenerationResult{Sections: sections}, err
		}
		sections[i].Content = &content
		sections[i].UpdatedAt = now
	}

	if err := s.projectRepo.Touch(ctx, projectID); err != nil {
		return nil, err
	}

	s.logger.Info("generation completed", "project_id", projectID, "sections", total)
	return &services.GenerationResult{Sections: sections}, nil
}

// RefineSection rewrites one section per the user's instruction. The content
// swap and the revision append commit together; an upstream failure leaves
// the section untouched.
func (s *generationService) RefineSection(ctx context.Context, req *services.RefineRequest) (*services.RefineResult, error) {
	if err := s.validateRefineRequest(req); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	section, project, err := s.sectionRepo.GetForOwner(ctx, req.SectionID, req.UserID)
	if err != nil {
		return nil, err
	}
	if !section.HasContent() {
		return nil, fmt.Errorf("%w: section has no content to refine", domain.ErrValidation)
	}

	instruction := strings.TrimSpace(req.Prompt)
	prompt := buildRefinePrompt(project, section, instruction)
	refined, err := s.generateText(ctx, prompt)
	if err != nil {
		return nil, classifyUpstream("refine", err)
	}

	now := time.Now()
	revision := &models.Revision{
		ID:        uuid.NewString(),
		SectionID: section.ID,
		Prompt:    instruction,
		Response:  refined,
		CreatedAt: now,
	}

	err = s.txm.ExecTx(ctx, func(txCtx context.Context) error {
		if err := s.sectionRepo.UpdateContent(txCtx, section.ID, refined, now, false); err != nil {
			return err
		}
		if err := s.revisionRepo.Create(txCtx, revision); err != nil {
			return err
		}
		return s.projectRepo.Touch(txCtx, section.ProjectID)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("section refined",
		"section_id", section.ID,
		"project_id", section.ProjectID,
		"revision_id", revision.ID,
	)

	revisions, err := s.revisionRepo.ListBySection(ctx, section.ID, req.UserID)
	if err != nil {
		return nil, err
	}

	return &services.RefineResult{
		SectionID: section.ID,
		Content:   refined,
		Revisions: revisions,
	}, nil
}

// ListRevisions returns the refinement ledger for a section
func (s *generationService) ListRevisions(ctx context.Context, sectionID, userID string) ([]models.Revision, error) {
	if _, _, err := s.sectionRepo.GetForOwner(ctx, sectionID, userID); err != nil {
		return nil, err
	}
	return s.revisionRepo.ListBySection(ctx, sectionID, userID)
}

// SuggestOutline asks the LLM for section headings or slide titles
func (s *generationService) SuggestOutline(ctx context.Context, req *services.OutlineRequest) (*services.OutlineResult, error) {
	if err := s.validateOutlineRequest(req); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	topic := strings.TrimSpace(req.Topic)
	response, err := s.generateText(ctx, buildOutlinePrompt(req.Kind, topic))
	if err != nil {
		return nil, classifyUpstream("outline", err)
	}

	items := parseOutlineItems(response)
	if len(items) == 0 {
		return nil, classifyUpstream("outline", &llm.RequestError{
			Provider: s.generator.Name(),
			Message:  "outline response contained no usable lines",
		})
	}

	return &services.OutlineResult{Kind: req.Kind, Topic: topic, Items: items}, nil
}

func (s *generationService) validateRefineRequest(req *services.RefineRequest) error {
	return validation.ValidateStruct(req,
		validation.Field(&req.UserID, validation.Required),
		validation.Field(&req.SectionID, validation.Required),
		validation.Field(&req.Prompt,
			validation.Required,
			validation.Length(1, maxRefinePromptLength),
			validation.By(validateNotBlank("prompt")),
		),
	)
}

func (s *generationService) validateOutlineRequest(req *services.OutlineRequest) error {
	return validation.ValidateStruct(req,
		validation.Field(&req.Kind, validation.Required, validation.By(validateKind)),
		validation.Field(&req.Topic,
			validation.Required,
			validation.Length(1, maxTopicLength),
			validation.By(validateNotBlank("topic")),
		),
	)
}

// classifyUpstream maps a generator failure onto the retryability taxonomy:
// explicit provider rejections must not be blindly retried, everything else
// (timeouts, network) may be.
func classifyUpstream(op string, err error) *domain.UpstreamError {
	var reqErr *llm.RequestError
	if errors.As(err, &reqErr) {
		return &domain.UpstreamError{Op: op, Kind: domain.UpstreamRejected, Err: err}
	}
	return &domain.UpstreamError{Op: op, Kind: domain.UpstreamUnavailable, Err: err}
}

func allGenerated(sections []models.Section) bool {
	if len(sections) == 0 {
		return false
	}
	for i := range sections {
		if !sections[i].HasContent() {
			return false
		}
	}
	return true
}

func countPending(sections []models.Section) int {
	n := 0
	for i := range sections {
		if !sections[i].HasContent() {
			n++
		}
	}
	return n
}
