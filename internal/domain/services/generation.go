package services

import (
	"context"

	"contentcraft/internal/domain/models"
)

// GenerationResult reports the outcome of a generation trigger. When
// AlreadyGenerated is true no upstream calls were made and Sections carries
// the existing content unchanged.
type GenerationResult struct {
	AlreadyGenerated bool             `json:"-"`
	Sections         []models.Section `json:"sections"`
}

// RefineRequest carries one refinement instruction for a section
type RefineRequest struct {
	UserID    string `json:"-"`
	SectionID string `json:"section_id"`
	Prompt    string `json:"prompt"`
}

// RefineResult carries the refined content plus the updated revision
// ledger, most recent first
type RefineResult struct {
	SectionID string            `json:"section_id"`
	Content   string            `json:"content"`
	Revisions []models.Revision `json:"revisions"`
}

// OutlineRequest asks the LLM to propose section/slide titles for a topic
type OutlineRequest struct {
	Kind  models.ProjectKind `json:"type"`
	Topic string             `json:"topic"`
}

// OutlineResult is the proposed ordered title list
type OutlineResult struct {
	Kind  models.ProjectKind `json:"type"`
	Topic string             `json:"topic"`
	Items []string           `json:"items"`
}

// GenerationService orchestrates the LLM-backed lifecycle: idempotent batch
// generation, per-section refinement, the revision ledger and outline
// suggestions.
type GenerationService interface {
	// TriggerGeneration fills every null section of the project in order
	// index order, earlier sections serving as context for later ones.
	// Safe to call repeatedly: a fully generated project yields an
	// AlreadyGenerated result with zero upstream calls, and concurrent
	// triggers are serialized per project at the storage layer. A partial
	// upstream failure returns the sections populated so far alongside the
	// error.
	TriggerGeneration(ctx context.Context, projectID, userID string) (*GenerationResult, error)

	// RefineSection rewrites one section per the instruction, replacing its
	// content and appending a revision atomically. Nothing is written when
	// the upstream call fails.
	RefineSection(ctx context.Context, req *RefineRequest) (*RefineResult, error)

	// ListRevisions returns a section's refinement ledger, most recent first
	ListRevisions(ctx context.Context, sectionID, userID string) ([]models.Revision, error)

	// SuggestOutline asks the LLM for section headings (documents) or slide
	// titles (slideshows) for a topic
	SuggestOutline(ctx context.Context, req *OutlineRequest) (*OutlineResult, error)
}
