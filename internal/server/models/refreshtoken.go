package models

import "time"

// RefreshToken is a ledger row. A refresh token is exchangeable for new
// access tokens only while its string is present in the ledger; logout
// removes it. Expiry, if any, lives inside the signed token itself.
type RefreshToken struct {
	Token     string
	UserID    string
	CreatedAt time.Time
}
