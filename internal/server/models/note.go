package models

import "time"

// Note belongs to exactly one owner. Tags are kept normalized: trimmed,
// deduplicated, sorted, no empty strings.
type Note struct {
	ID        string
	OwnerID   string
	Title     string
	Body      string
	Tags      []string
	CreatedAt time.Time
	UpdatedAt time.Time
}
