package models

import "time"

// PersonalNote has upsert semantics: saving with an existing ID
// overwrites content and timestamp, saving without an ID creates.
type PersonalNote struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type NoteDraft struct {
	ID      string `json:"id"`
	Content string `json:"content" validate:"required"`
}

// SharedNote is append-only; author attribution is assigned by the store.
type SharedNote struct {
	ID         string    `json:"id"`
	AuthorID   string    `json:"authorId"`
	AuthorName string    `json:"authorName"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"createdAt"`
}

type SharedNoteDraft struct {
	Content string `json:"content" validate:"required"`
}
