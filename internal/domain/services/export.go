package services

import "context"

// ExportResult is a rendered document ready for download
type ExportResult struct {
	Data     []byte
	Filename string
	MIMEType string
}

// ExportService renders a fully generated project to its download format.
// Rendering is a pure function of stored state: the same snapshot always
// yields the same bytes.
type ExportService interface {
	// Export renders the project. Fails with a validation error while any
	// section content is still null.
	Export(ctx context.Context, projectID, userID string) (*ExportResult, error)
}
