package models

import "time"

// Collaboration grants a user read/update access to a note they do not
// own. The (NoteID, UserID) pair is unique; the owner never appears here.
type Collaboration struct {
	ID        string
	NoteID    string
	UserID    string
	CreatedAt time.Time
}
