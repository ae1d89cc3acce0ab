package handler

import (
	"log/slog"
	"net/http"

	"contentcraft/internal/domain/services"
	"contentcraft/internal/httputil"
)

// AuthHandler handles authentication HTTP requests
type AuthHandler struct {
	identityService services.IdentityService
	logger          *slog.Logger
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(identityService services.IdentityService, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		identityService: identityService,
		logger:          logger,
	}
}

// Register creates an account and returns a bearer token
// POST /api/auth/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req services.RegisterRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.identityService.Register(r.Context(), &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, result)
}

// Login verifies credentials and returns a bearer token
// POST /api/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req services.LoginRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.identityService.Login(r.Context(), &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, result)
}

// Validate confirms the bearer token and returns its identity
// GET /api/auth/validate
func (h *AuthHandler) Validate(w http.ResponseWriter, r *http.Request) {
	identity, err := h.identityService.Resolve(r.Context(), httputil.GetUserID(r))
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, services.ValidateResult{
		Valid:  true,
		UserID: identity.ID,
		Email:  identity.Email,
	})
}
