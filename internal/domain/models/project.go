package models

import "time"

// ProjectKind distinguishes Word-style documents from slide decks.
// The kind is immutable after creation.
type ProjectKind string

const (
	KindDocument  ProjectKind = "document"
	KindSlideshow ProjectKind = "slideshow"
)

// Valid reports whether the kind is one of the two supported values.
func (k ProjectKind) Valid() bool {
	return k == KindDocument || k == KindSlideshow
}

// FileExtension returns the export file extension for this kind.
func (k ProjectKind) FileExtension() string {
	if k == KindSlideshow {
		return "pptx"
	}
	return "docx"
}

// Project is a user-owned authoring unit. Config holds the ordered
// section/slide titles that seed Section creation; it is stored as JSONB
// and reconstructed on read.
type Project struct {
	ID        string      `json:"id" db:"id"`
	UserID    string      `json:"user_id" db:"user_id"`
	Name      string      `json:"name" db:"name"`
	Kind      ProjectKind `json:"kind" db:"kind"`
	Topic     string      `json:"topic" db:"topic"`
	Config    []string    `json:"config" db:"config"`
	CreatedAt time.Time   `json:"created_at" db:"created_at"`
	UpdatedAt time.Time   `json:"updated_at" db:"updated_at"`
}
