package models

import "time"

// Revision is an immutable ledger entry recording one refinement: the
// instruction the user gave and the content it produced. Rows are never
// mutated or deleted; reads are most-recent-first.
type Revision struct {
	ID        string    `json:"id" db:"id"`
	SectionID string    `json:"section_id" db:"section_id"`
	Prompt    string    `json:"prompt" db:"prompt"`
	Response  string    `json:"response" db:"response"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
