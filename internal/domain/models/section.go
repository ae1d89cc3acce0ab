package models

import "time"

// Section is one titled content unit of a Project (a document section or a
// slide). OrderIndex is zero-based and dense within the project; Content is
// nil exactly until the first generation pass fills it.
type Section struct {
	ID         string    `json:"id" db:"id"`
	ProjectID  string    `json:"project_id" db:"project_id"`
	OrderIndex int       `json:"order_index" db:"order_index"`
	Title      string    `json:"title" db:"title"`
	Content    *string   `json:"content" db:"content"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time `json:"updated_at" db:"updated_at"`
}

// HasContent reports whether the section has been generated.
func (s *Section) HasContent() bool {
	return s.Content != nil
}
