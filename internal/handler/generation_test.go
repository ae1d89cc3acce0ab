package handler

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"contentcraft/internal/domain"
	"contentcraft/internal/domain/models"
	"contentcraft/internal/domain/services"
)

type fakeGenerationService struct {
	triggerResult *services.GenerationResult
	triggerErr    error
	refineResult  *services.RefineResult
	refineErr     error
}

func (f *fakeGenerationService) TriggerGeneration(context.Context, string, string) (*services.GenerationResult, error) {
	return f.triggerResult, f.triggerErr
}

func (f *fakeGenerationService) RefineSection(context.Context, *services.RefineRequest) (*services.RefineResult, error) {
	return f.refineResult, f.refineErr
}

func (f *fakeGenerationService) ListRevisions(context.Context, string, string) ([]models.Revision, error) {
	return nil, nil
}

func (f *fakeGenerationService) SuggestOutline(context.Context, *services.OutlineRequest) (*services.OutlineResult, error) {
	return nil, nil
}

func newGenerationHandler(svc services.GenerationService) *GenerationHandler {
	return NewGenerationHandler(svc, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func postJSON(t *testing.T, h http.HandlerFunc, body string) *httptest.ResponseRecorder {
	t.Helper()
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	r.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h(w, r)
	return w
}

func TestGenerateContent(t *testing.T) {
	content := "done"

	t.Run("fresh generation", func(t *testing.T) {
		svc := &fakeGenerationService{
			triggerResult: &services.GenerationResult{
				Sections: []models.Section{{ID: "s1", Content: &content}},
			},
		}
		w := postJSON(t, newGenerationHandler(svc).GenerateContent, `{"project_id":"p1"}`)

		if w.Code != http.StatusOK {
			t.Fatalf("status = %d", w.Code)
		}
		var resp map[string]interface{}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decoding response: %v", err)
		}
		if resp["message"] != "Content generated successfully" {
			t.Errorf("message = %v", resp["message"])
		}
		if resp["generated"] != true {
			t.Errorf("generated = %v, want true", resp["generated"])
		}
	})

	t.Run("already generated", func(t *testing.T) {
		svc := &fakeGenerationService{
			triggerResult: &services.GenerationResult{AlreadyGenerated: true},
		}
		w := postJSON(t, newGenerationHandler(svc).GenerateContent, `{"project_id":"p1"}`)

		var resp map[string]interface{}
		json.Unmarshal(w.Body.Bytes(), &resp)
		if resp["message"] != "Content already generated" {
			t.Errorf("message = %v", resp["message"])
		}
		if resp["generated"] != false {
			t.Errorf("generated = %v, want false", resp["generated"])
		}
	})

	t.Run("partial failure returns 502 with sections and retryability", func(t *testing.T) {
		svc := &fakeGenerationService{
			triggerResult: &services.GenerationResult{
				Sections: []models.Section{{ID: "s1", Content: &content}, {ID: "s2"}},
			},
			triggerErr: &domain.UpstreamError{
				Op: "generate", Kind: domain.UpstreamUnavailable, Err: errors.New("timeout"),
			},
		}
		w := postJSON(t, newGenerationHandler(svc).GenerateContent, `{"project_id":"p1"}`)

		if w.Code != http.StatusBadGateway {
			t.Fatalf("status = %d, want 502", w.Code)
		}
		var resp map[string]interface{}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decoding response: %v", err)
		}
		if resp["retryable"] != true {
			t.Errorf("retryable = %v, want true", resp["retryable"])
		}
		sections, ok := resp["sections"].([]interface{})
		if !ok || len(sections) != 2 {
			t.Errorf("sections = %v, want the partial snapshot", resp["sections"])
		}
	})

	t.Run("conflict while generation in progress", func(t *testing.T) {
		svc := &fakeGenerationService{
			triggerErr: &domain.ConflictError{Message: "generation is already in progress for this project"},
		}
		w := postJSON(t, newGenerationHandler(svc).GenerateContent, `{"project_id":"p1"}`)

		if w.Code != http.StatusConflict {
			t.Fatalf("status = %d, want 409", w.Code)
		}
	})

	t.Run("missing project_id", func(t *testing.T) {
		w := postJSON(t, newGenerationHandler(&fakeGenerationService{}).GenerateContent, `{}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", w.Code)
		}
	})

	t.Run("malformed body", func(t *testing.T) {
		w := postJSON(t, newGenerationHandler(&fakeGenerationService{}).GenerateContent, `{`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", w.Code)
		}
	})
}

func TestHandleError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"validation", domain.ErrValidation, http.StatusBadRequest},
		{"not found", domain.ErrNotFound, http.StatusNotFound},
		{"unauthorized", domain.ErrUnauthorized, http.StatusUnauthorized},
		{"forbidden", domain.ErrForbidden, http.StatusForbidden},
		{"conflict", &domain.ConflictError{Message: "dup"}, http.StatusConflict},
		{"upstream", &domain.UpstreamError{Op: "generate", Kind: domain.UpstreamRejected, Err: errors.New("no")}, http.StatusBadGateway},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			handleError(w, tt.err)
			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}
			if got := w.Header().Get("Content-Type"); got != "application/problem+json" {
				t.Errorf("Content-Type = %q", got)
			}
		})
	}
}
