package handler

import (
	"log/slog"
	"net/http"

	"contentcraft/internal/domain/services"
	"contentcraft/internal/httputil"
)

// FeedbackHandler handles feedback and comment HTTP requests
type FeedbackHandler struct {
	feedbackService services.FeedbackService
	logger          *slog.Logger
}

// NewFeedbackHandler creates a new feedback handler
func NewFeedbackHandler(feedbackService services.FeedbackService, logger *slog.Logger) *FeedbackHandler {
	return &FeedbackHandler{
		feedbackService: feedbackService,
		logger:          logger,
	}
}

// SubmitFeedback upserts the section's single feedback record
// POST /api/feedback
func (h *FeedbackHandler) SubmitFeedback(w http.ResponseWriter, r *http.Request) {
	var req services.SubmitFeedbackRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.SectionID == "" {
		httputil.RespondError(w, http.StatusBadRequest, "section_id is required")
		return
	}
	req.UserID = httputil.GetUserID(r)

	feedback, err := h.feedbackService.SubmitFeedback(r.Context(), &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, feedback)
}

// GetFeedback returns the section's feedback record
// GET /api/sections/{id}/feedback
func (h *FeedbackHandler) GetFeedback(w http.ResponseWriter, r *http.Request) {
	feedback, err := h.feedbackService.GetFeedback(r.Context(), r.PathValue("id"), httputil.GetUserID(r))
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, feedback)
}

// AddComment appends a comment to the section
// POST /api/sections/{id}/comments
func (h *FeedbackHandler) AddComment(w http.ResponseWriter, r *http.Request) {
	var req services.AddCommentRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	req.SectionID = r.PathValue("id")
	req.UserID = httputil.GetUserID(r)

	comment, err := h.feedbackService.AddComment(r.Context(), &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, comment)
}

// ListComments returns a section's comments, most recent first
// GET /api/sections/{id}/comments
func (h *FeedbackHandler) ListComments(w http.ResponseWriter, r *http.Request) {
	comments, err := h.feedbackService.ListComments(r.Context(), r.PathValue("id"), httputil.GetUserID(r))
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, comments)
}
