package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

const (
	MinRating = 1
	MaxRating = 5
)

// Feedback is a single submission received through a source. It is
// immutable except for deletion.
type Feedback struct {
	ID        uuid.UUID       `json:"id"        db:"id"`
	SourceID  uuid.UUID       `json:"source"    db:"source"`
	Rating    int             `json:"rating"    db:"rating"`
	Message   string          `json:"message"   db:"message"`
	Metadata  json.RawMessage `json:"metadata"  db:"metadata"`
	CreatedAt time.Time       `json:"createdAt" db:"created_at"`
}

// FeedbackItem is a feedback record together with its serial number inside
// its source at the time of the read.
type FeedbackItem struct {
	Feedback
	Serial int `json:"serial" db:"serial"`
}

// FeedbackPage is the result of a feedback listing. TotalCount is the
// source's total number of items (not the filtered count), except for a
// serial lookup where it is the number of matched items.
type FeedbackPage struct {
	Items      []FeedbackItem `json:"items"`
	TotalCount int            `json:"totalCount"`
}

// EmptyFeedbackPage returns a page with no items and a non-nil slice.
func EmptyFeedbackPage() *FeedbackPage {
	return &FeedbackPage{Items: []FeedbackItem{}}
}

// FeedbackFilter selects a window of a source's feedback under the
// newest-first ordering. An empty Query matches every item; otherwise the
// message must contain Query, case-insensitively.
type FeedbackFilter struct {
	SourceID uuid.UUID
	Query    string
	Offset   int
	Limit    int
}
