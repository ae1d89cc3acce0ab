package service

import (
	"context"
	"errors"
	"testing"

	"contentcraft/internal/domain"
	"contentcraft/internal/domain/models"
	"contentcraft/internal/domain/services"
)

func newProjectFixture() (*fakeStore, services.ProjectService) {
	store := newFakeStore()
	svc := NewProjectService(
		&fakeProjectRepo{store}, &fakeSectionRepo{store}, fakeTxManager{}, testLogger())
	return store, svc
}

func TestCreateProject(t *testing.T) {
	t.Run("seeds one null section per config title", func(t *testing.T) {
		store, svc := newProjectFixture()

		project, err := svc.CreateProject(context.Background(), &services.CreateProjectRequest{
			UserID: "u1",
			Name:   "My Deck",
			Kind:   models.KindSlideshow,
			Topic:  "climate",
			Config: []string{"Intro", "Data", "Outlook"},
		})
		if err != nil {
			t.Fatalf("CreateProject() error = %v", err)
		}

		sections, err := svc.ListSections(context.Background(), project.ID, "u1")
		if err != nil {
			t.Fatalf("ListSections() error = %v", err)
		}
		if len(sections) != 3 {
			t.Fatalf("sections = %d, want 3", len(sections))
		}
		for i, section := range sections {
			if section.OrderIndex != i {
				t.Errorf("section %d OrderIndex = %d", i, section.OrderIndex)
			}
			if section.Content != nil {
				t.Errorf("section %d content = %q, want null", i, *section.Content)
			}
		}
		if sections[0].Title != "Intro" || sections[2].Title != "Outlook" {
			t.Errorf("section titles out of order: %q, %q", sections[0].Title, sections[2].Title)
		}
		if len(store.projects) != 1 {
			t.Errorf("projects stored = %d", len(store.projects))
		}
	})

	t.Run("rejects bad input", func(t *testing.T) {
		_, svc := newProjectFixture()
		tests := []struct {
			name string
			req  services.CreateProjectRequest
		}{
			{"missing name", services.CreateProjectRequest{
				UserID: "u1", Kind: models.KindDocument, Topic: "t", Config: []string{"a"}}},
			{"blank name", services.CreateProjectRequest{
				UserID: "u1", Name: "   ", Kind: models.KindDocument, Topic: "t", Config: []string{"a"}}},
			{"unknown kind", services.CreateProjectRequest{
				UserID: "u1", Name: "n", Kind: "spreadsheet", Topic: "t", Config: []string{"a"}}},
			{"missing topic", services.CreateProjectRequest{
				UserID: "u1", Name: "n", Kind: models.KindDocument, Config: []string{"a"}}},
			{"empty config", services.CreateProjectRequest{
				UserID: "u1", Name: "n", Kind: models.KindDocument, Topic: "t", Config: []string{}}},
			{"blank section title", services.CreateProjectRequest{
				UserID: "u1", Name: "n", Kind: models.KindDocument, Topic: "t", Config: []string{"a", "  "}}},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				if _, err := svc.CreateProject(context.Background(), &tt.req); !errors.Is(err, domain.ErrValidation) {
					t.Errorf("CreateProject() error = %v, want validation", err)
				}
			})
		}
	})
}

func TestDeleteProject(t *testing.T) {
	store, svc := newProjectFixture()

	project, err := svc.CreateProject(context.Background(), &services.CreateProjectRequest{
		UserID: "u1", Name: "Doomed", Kind: models.KindDocument,
		Topic: "t", Config: []string{"a", "b"},
	})
	if err != nil {
		t.Fatalf("CreateProject() error = %v", err)
	}

	if err := svc.DeleteProject(context.Background(), project.ID, "u1"); err != nil {
		t.Fatalf("DeleteProject() error = %v", err)
	}
	if len(store.projects) != 0 {
		t.Errorf("projects remaining = %d", len(store.projects))
	}
	if len(store.sections) != 0 {
		t.Errorf("sections remaining = %d", len(store.sections))
	}

	if err := svc.DeleteProject(context.Background(), project.ID, "u1"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("second DeleteProject() error = %v, want not found", err)
	}
}

func TestListSections_ForeignProject(t *testing.T) {
	_, svc := newProjectFixture()

	project, err := svc.CreateProject(context.Background(), &services.CreateProjectRequest{
		UserID: "u1", Name: "Private", Kind: models.KindDocument,
		Topic: "t", Config: []string{"a"},
	})
	if err != nil {
		t.Fatalf("CreateProject() error = %v", err)
	}

	if _, err := svc.ListSections(context.Background(), project.ID, "intruder"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("ListSections() error = %v, want not found", err)
	}
}
