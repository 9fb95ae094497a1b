// Package common defines the sentinel errors shared across repository,
// service, and transport layers. Callers should use errors.Is to match
// these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// Service-level errors (generic/internal flow control).
	ErrorInternal = errors.New("internal error")

	// Credential check failed. Unknown username and wrong password
	// intentionally produce this same value.
	ErrorUnauthorized = errors.New("invalid username or password")

	// Caller is known but lacks the required permission on the target.
	ErrorForbidden = errors.New("permission denied")

	// Token malformed or its signature does not verify.
	ErrInvalidToken = errors.New("invalid token")

	// A required precondition does not hold: refresh token not in the
	// ledger, duplicate collaboration grant, owner granted to themselves.
	ErrorPrecondition = errors.New("precondition failed")
)
