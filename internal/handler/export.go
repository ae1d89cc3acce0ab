package handler

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"contentcraft/internal/domain/services"
	"contentcraft/internal/httputil"
)

// ExportHandler handles document export HTTP requests
type ExportHandler struct {
	exportService services.ExportService
	logger        *slog.Logger
}

// NewExportHandler creates a new export handler
func NewExportHandler(exportService services.ExportService, logger *slog.Logger) *ExportHandler {
	return &ExportHandler{
		exportService: exportService,
		logger:        logger,
	}
}

// Export renders the project and streams it as a download
// GET /api/export/{project_id}
func (h *ExportHandler) Export(w http.ResponseWriter, r *http.Request) {
	result, err := h.exportService.Export(r.Context(), r.PathValue("project_id"), httputil.GetUserID(r))
	if err != nil {
		handleError(w, err)
		return
	}

	w.Header().Set("Content-Type", result.MIMEType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.Filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(result.Data)))
	w.WriteHeader(http.StatusOK)
	w.Write(result.Data)
}
