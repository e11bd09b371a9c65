package models

import "time"

// Recording metadata is read-only in this scope; no write operation
// exists, the collection is only ever listed.
type Recording struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	URL        string    `json:"url"`
	Duration   int       `json:"duration"`
	RecordedAt time.Time `json:"recordedAt"`
}
