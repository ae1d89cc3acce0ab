package handler

import (
	"errors"
	"net/http"

	"contentcraft/internal/domain"
	"contentcraft/internal/httputil"
)

// handleError converts domain errors to HTTP responses
func handleError(w http.ResponseWriter, err error) {
	var conflictErr *domain.ConflictError
	var upstreamErr *domain.UpstreamError

	switch {
	case errors.Is(err, domain.ErrValidation):
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		httputil.RespondError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		httputil.RespondError(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, domain.ErrForbidden):
		httputil.RespondError(w, http.StatusForbidden, err.Error())
	case errors.As(err, &conflictErr):
		httputil.RespondError(w, http.StatusConflict, conflictErr.Error())
	case errors.As(err, &upstreamErr):
		httputil.RespondErrorWithExtras(w, http.StatusBadGateway, upstreamErr.Error(),
			map[string]interface{}{"retryable": upstreamErr.Retryable()})
	default:
		httputil.RespondError(w, http.StatusInternalServerError, "internal server error")
	}
}
