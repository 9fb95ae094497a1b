// Package models holds the persistent entities of the service.
package models

import "time"

// User is immutable after registration: there are no update or delete
// operations for accounts.
type User struct {
	ID           string
	Username     string
	PasswordHash string
	FullName     string
	CreatedAt    time.Time
}
