// Package tokens declares the revocation ledger: the set of refresh
// tokens currently valid for exchange.
package tokens

import "context"

// Repository is the ledger contract. A refresh token is live exactly
// while its string is present; logout removes it. Add and Remove are
// atomic per token; tokens are independent, so no cross-token locking is
// required.
type Repository interface {
	// Add records a freshly issued refresh token for the user.
	Add(ctx context.Context, userID, token string) error

	// Remove revokes a token. Returns common.ErrorNotFound if the token
	// is not in the ledger (already revoked or never issued).
	Remove(ctx context.Context, token string) error

	// Contains reports whether the token is in the ledger.
	Contains(ctx context.Context, token string) (bool, error)
}
