package models

import "time"

// Sentiment is the like/dislike state of a section's single feedback record.
type Sentiment string

const (
	SentimentLike    Sentiment = "like"
	SentimentDislike Sentiment = "dislike"
	SentimentNone    Sentiment = "none"
)

// Valid reports whether the sentiment is a supported value.
func (s Sentiment) Valid() bool {
	return s == SentimentLike || s == SentimentDislike || s == SentimentNone
}

// Feedback is the at-most-one per section like/dislike record. Re-submitting
// overwrites sentiment and comment (upsert), it never appends.
type Feedback struct {
	SectionID string    `json:"section_id" db:"section_id"`
	Sentiment Sentiment `json:"feedback" db:"sentiment"`
	Comment   string    `json:"comment" db:"comment"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// Comment is a standalone free-text note on a section, independent of the
// single Feedback record. Append-only.
type Comment struct {
	ID        string    `json:"id" db:"id"`
	SectionID string    `json:"section_id" db:"section_id"`
	Text      string    `json:"comment" db:"text"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
