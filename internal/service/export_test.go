package service

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"contentcraft/internal/domain"
	"contentcraft/internal/domain/models"
	"contentcraft/internal/domain/services"
	"contentcraft/internal/export"
)

func newExportFixture(kind models.ProjectKind, contents []*string) (services.ExportService, *fakeStore) {
	store := newFakeStore()
	now := time.Now()
	store.addProject(&models.Project{
		ID: "p1", UserID: "u1", Name: "Annual Report", Kind: kind,
		Topic: "finance", Config: []string{"Intro", "Numbers"}, CreatedAt: now, UpdatedAt: now,
	})
	titles := []string{"Intro", "Numbers"}
	for i, title := range titles {
		store.addSection(&models.Section{
			ID: title, ProjectID: "p1", OrderIndex: i, Title: title,
			Content: contents[i], CreatedAt: now, UpdatedAt: now,
		})
	}
	svc := NewExportService(&fakeProjectRepo{store}, &fakeSectionRepo{store}, testLogger())
	return svc, store
}

func TestExport(t *testing.T) {
	t.Run("document exports as docx", func(t *testing.T) {
		svc, _ := newExportFixture(models.KindDocument,
			[]*string{strPtr("intro text"), strPtr("numbers text")})

		result, err := svc.Export(context.Background(), "p1", "u1")
		if err != nil {
			t.Fatalf("Export() error = %v", err)
		}
		if result.Filename != "Annual_Report.docx" {
			t.Errorf("Filename = %q", result.Filename)
		}
		if result.MIMEType != export.MIMETypeDocx {
			t.Errorf("MIMEType = %q", result.MIMEType)
		}

		zr, err := zip.NewReader(bytes.NewReader(result.Data), int64(len(result.Data)))
		if err != nil {
			t.Fatalf("output is not a zip archive: %v", err)
		}
		names := map[string]bool{}
		for _, f := range zr.File {
			names[f.Name] = true
		}
		for _, want := range []string{"[Content_Types].xml", "word/document.xml", "word/styles.xml"} {
			if !names[want] {
				t.Errorf("archive missing %s", want)
			}
		}
	})

	t.Run("slideshow exports as pptx with one slide per section plus title", func(t *testing.T) {
		svc, _ := newExportFixture(models.KindSlideshow,
			[]*string{strPtr("- point one\n- point two"), strPtr("- point three")})

		result, err := svc.Export(context.Background(), "p1", "u1")
		if err != nil {
			t.Fatalf("Export() error = %v", err)
		}
		if result.Filename != "Annual_Report.pptx" {
			t.Errorf("Filename = %q", result.Filename)
		}
		if result.MIMEType != export.MIMETypePptx {
			t.Errorf("MIMEType = %q", result.MIMEType)
		}

		zr, err := zip.NewReader(bytes.NewReader(result.Data), int64(len(result.Data)))
		if err != nil {
			t.Fatalf("output is not a zip archive: %v", err)
		}
		slides := 0
		for _, f := range zr.File {
			if len(f.Name) > len("ppt/slides/") && f.Name[:len("ppt/slides/")] == "ppt/slides/" &&
				f.Name[len(f.Name)-4:] == ".xml" && !bytes.Contains([]byte(f.Name), []byte("_rels")) {
				slides++
			}
		}
		if slides != 3 {
			t.Errorf("slides = %d, want 3 (title + 2 sections)", slides)
		}
	})

	t.Run("same snapshot renders identical bytes", func(t *testing.T) {
		svc, _ := newExportFixture(models.KindDocument,
			[]*string{strPtr("stable"), strPtr("content")})

		first, err := svc.Export(context.Background(), "p1", "u1")
		if err != nil {
			t.Fatalf("first Export() error = %v", err)
		}
		second, err := svc.Export(context.Background(), "p1", "u1")
		if err != nil {
			t.Fatalf("second Export() error = %v", err)
		}
		if !bytes.Equal(first.Data, second.Data) {
			t.Error("repeated export produced different bytes")
		}
	})

	t.Run("partially generated project cannot export", func(t *testing.T) {
		svc, _ := newExportFixture(models.KindDocument, []*string{strPtr("done"), nil})

		_, err := svc.Export(context.Background(), "p1", "u1")
		if !errors.Is(err, domain.ErrValidation) {
			t.Fatalf("Export() error = %v, want validation", err)
		}
	})

	t.Run("foreign project reads as not found", func(t *testing.T) {
		svc, _ := newExportFixture(models.KindDocument, []*string{strPtr("a"), strPtr("b")})

		_, err := svc.Export(context.Background(), "p1", "intruder")
		if !errors.Is(err, domain.ErrNotFound) {
			t.Fatalf("Export() error = %v, want not found", err)
		}
	})
}
