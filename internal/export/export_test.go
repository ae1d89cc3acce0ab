package export

import (
	"archive/zip"
	"bytes"
	"io"
	"strings"
	"testing"
)

func readEntry(t *testing.T, data []byte, name string) string {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("opening archive: %v", err)
	}
	for _, f := range zr.File {
		if f.Name == name {
			rc, err := f.Open()
			if err != nil {
				t.Fatalf("opening %s: %v", name, err)
			}
			defer rc.Close()
			content, err := io.ReadAll(rc)
			if err != nil {
				t.Fatalf("reading %s: %v", name, err)
			}
			return string(content)
		}
	}
	t.Fatalf("entry %s not found", name)
	return ""
}

func TestRenderDocx(t *testing.T) {
	sections := []SectionContent{
		{Title: "Intro & Scope", Content: "First paragraph.\nSecond paragraph."},
		{Title: "Data", Content: "Numbers <here>."},
	}

	data, err := RenderDocx("Q3 Report", sections)
	if err != nil {
		t.Fatalf("RenderDocx() error = %v", err)
	}

	doc := readEntry(t, data, "word/document.xml")
	for _, want := range []string{
		"Q3 Report",
		"Intro &amp; Scope",
		"First paragraph.",
		"Second paragraph.",
		"Numbers &lt;here&gt;.",
	} {
		if !strings.Contains(doc, want) {
			t.Errorf("document.xml missing %q", want)
		}
	}
	if strings.Contains(doc, "<here>") {
		t.Error("content was not XML-escaped")
	}

	// Heading before body, title first.
	if strings.Index(doc, "Q3 Report") > strings.Index(doc, "Intro") {
		t.Error("title does not precede sections")
	}
}

func TestRenderDocx_Deterministic(t *testing.T) {
	sections := []SectionContent{{Title: "A", Content: "b"}}

	first, err := RenderDocx("Same", sections)
	if err != nil {
		t.Fatalf("RenderDocx() error = %v", err)
	}
	second, err := RenderDocx("Same", sections)
	if err != nil {
		t.Fatalf("RenderDocx() error = %v", err)
	}
	if !bytes.Equal(first, second) {
		t.Error("identical input produced different bytes")
	}
}

func TestRenderPptx(t *testing.T) {
	sections := []SectionContent{
		{Title: "Findings", Content: "• bullet one\n- bullet two\n\nbullet three"},
	}

	data, err := RenderPptx("Deck & Co", "strategy", sections)
	if err != nil {
		t.Fatalf("RenderPptx() error = %v", err)
	}

	title := readEntry(t, data, "ppt/slides/slide1.xml")
	if !strings.Contains(title, "Deck &amp; Co") {
		t.Error("title slide missing escaped project name")
	}
	if !strings.Contains(title, "strategy") {
		t.Error("title slide missing topic")
	}

	body := readEntry(t, data, "ppt/slides/slide2.xml")
	for _, want := range []string{"Findings", "bullet one", "bullet two", "bullet three"} {
		if !strings.Contains(body, want) {
			t.Errorf("content slide missing %q", want)
		}
	}
	// Bullet decoration must be stripped before rendering.
	if strings.Contains(body, "• bullet one") {
		t.Error("leading bullet character was not stripped")
	}

	presentation := readEntry(t, data, "ppt/presentation.xml")
	if !strings.Contains(presentation, `cx="9144000" cy="6858000"`) {
		t.Error("slide size not taken from styles")
	}
}

func TestContentLines(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"plain lines", "a\nb", []string{"a", "b"}},
		{"bullets stripped", "• one\n- two\n* three", []string{"one", "two", "three"}},
		{"blanks dropped", "a\n\n  \nb", []string{"a", "b"}},
		{"empty", "", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := contentLines(tt.input)
			if len(got) != len(tt.want) {
				t.Fatalf("contentLines() = %v, want %v", got, tt.want)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("line %d = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestFilename(t *testing.T) {
	if got := Filename("Annual Report 2026", "docx"); got != "Annual_Report_2026.docx" {
		t.Errorf("Filename() = %q", got)
	}
	if got := Filename("deck", "pptx"); got != "deck.pptx" {
		t.Errorf("Filename() = %q", got)
	}
}
