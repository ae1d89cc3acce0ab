package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"contentcraft/internal/domain"
	"contentcraft/internal/domain/services"
	"contentcraft/internal/httputil"
)

// GenerationHandler handles LLM generation HTTP requests
type GenerationHandler struct {
	generationService services.GenerationService
	logger            *slog.Logger
}

// NewGenerationHandler creates a new generation handler
func NewGenerationHandler(generationService services.GenerationService, logger *slog.Logger) *GenerationHandler {
	return &GenerationHandler{
		generationService: generationService,
		logger:            logger,
	}
}

type generateContentRequest struct {
	ProjectID string `json:"project_id"`
}

// GenerateContent triggers generation for every ungenerated section
// POST /api/generate-content
func (h *GenerationHandler) GenerateContent(w http.ResponseWriter, r *http.Request) {
	var req generateContentRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.ProjectID == "" {
		httputil.RespondError(w, http.StatusBadRequest, "project_id is required")
		return
	}

	result, err := h.generationService.TriggerGeneration(r.Context(), req.ProjectID, httputil.GetUserID(r))
	if err != nil {
		// A mid-run upstream failure still carries the sections generated so
		// far; surface them alongside the error.
		var upstreamErr *domain.UpstreamError
		if errors.As(err, &upstreamErr) && result != nil {
			httputil.RespondErrorWithExtras(w, http.StatusBadGateway, upstreamErr.Error(),
				map[string]interface{}{
					"retryable": upstreamErr.Retryable(),
					"sections":  result.Sections,
				})
			return
		}
		handleError(w, err)
		return
	}

	message := "Content generated successfully"
	if result.AlreadyGenerated {
		message = "Content already generated"
	}
	httputil.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"message":   message,
		"generated": !result.AlreadyGenerated,
		"sections":  result.Sections,
	})
}

// RefineContent rewrites one section per the user's instruction
// POST /api/refine-content
func (h *GenerationHandler) RefineContent(w http.ResponseWriter, r *http.Request) {
	var req services.RefineRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	req.UserID = httputil.GetUserID(r)

	result, err := h.generationService.RefineSection(r.Context(), &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, result)
}

// ListRevisions returns a section's refinement ledger, most recent first
// GET /api/sections/{id}/revisions
func (h *GenerationHandler) ListRevisions(w http.ResponseWriter, r *http.Request) {
	revisions, err := h.generationService.ListRevisions(r.Context(), r.PathValue("id"), httputil.GetUserID(r))
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, revisions)
}

// SuggestTemplate asks the LLM for an outline for a topic
// POST /api/ai-template
func (h *GenerationHandler) SuggestTemplate(w http.ResponseWriter, r *http.Request) {
	var req services.OutlineRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.generationService.SuggestOutline(r.Context(), &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, result)
}
