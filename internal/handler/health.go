package handler

import (
	"net/http"

	"contentcraft/internal/httputil"
)

// Health reports process liveness
// GET /health
func Health(w http.ResponseWriter, r *http.Request) {
	httputil.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
