// Package services contains the business logic behind the exposed
// operations: session lifecycle, note CRUD behind the guard, and
// collaborator management.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"noteshare/internal/common"
	"noteshare/internal/server/auth"
	"noteshare/internal/server/models"
	"noteshare/internal/server/repositories/repomanager"
)

// TokenPair bundles a short-lived access token and a long-lived refresh
// token.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// AuthService handles registration, login, token refresh, and logout.
// Session state is exactly the revocation ledger: a refresh token is live
// while present there, and access tokens are pure signatures with a TTL.
type AuthService struct {
	db      *sql.DB
	manager repomanager.RepositoryManager
	tokens  *auth.TokenService
}

func NewAuthService(db *sql.DB, m repomanager.RepositoryManager, tokens *auth.TokenService) *AuthService {
	return &AuthService{db: db, manager: m, tokens: tokens}
}

// dummyHash is compared against when the username is unknown, so a miss
// costs the same as a mismatch. bcrypt hash of an unguessable throwaway.
var dummyHash = []byte("$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy")

// Register creates a new user. The password is stored only as a bcrypt
// hash. A taken username yields common.ErrorAlreadyExists.
func (s *AuthService) Register(ctx context.Context, username, password, fullName string) (*models.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, fmt.Errorf("username and password are required: %w", common.ErrorPrecondition)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, common.ErrorInternal
	}

	user := &models.User{
		Username:     username,
		PasswordHash: string(hash),
		FullName:     fullName,
	}

	user, err = s.manager.Users(s.db).Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, common.ErrorAlreadyExists
		}
		return nil, common.ErrorInternal
	}
	return user, nil
}

// Login checks the credentials and, on success, mints a token pair and
// records the refresh token in the ledger. Unknown username and wrong
// password return the identical error value.
func (s *AuthService) Login(ctx context.Context, username, password string) (*TokenPair, error) {
	user, err := s.manager.Users(s.db).FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			// Burn a comparison so the miss takes as long as a mismatch.
			_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
			return nil, common.ErrorUnauthorized
		}
		return nil, common.ErrorInternal
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, common.ErrorUnauthorized
	}

	access, err := s.tokens.IssueAccessToken(user.ID)
	if err != nil {
		return nil, common.ErrorInternal
	}
	refresh, err := s.tokens.IssueRefreshToken(user.ID)
	if err != nil {
		return nil, common.ErrorInternal
	}

	if err := s.manager.RefreshTokens(s.db).Add(ctx, user.ID, refresh); err != nil {
		return nil, common.ErrorInternal
	}

	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

// Refresh exchanges a live refresh token for a new access token. The
// refresh token is not rotated. A token with a bad signature yields
// common.ErrInvalidToken; a well-signed token missing from the ledger
// (revoked or never issued) yields common.ErrorPrecondition.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	userID, err := s.tokens.VerifyRefreshToken(refreshToken)
	if err != nil {
		return "", common.ErrInvalidToken
	}

	live, err := s.manager.RefreshTokens(s.db).Contains(ctx, refreshToken)
	if err != nil {
		return "", common.ErrorInternal
	}
	if !live {
		return "", fmt.Errorf("refresh token not recognized: %w", common.ErrorPrecondition)
	}

	access, err := s.tokens.IssueAccessToken(userID)
	if err != nil {
		return "", common.ErrorInternal
	}
	return access, nil
}

// Logout revokes a refresh token. A second logout with the same token
// fails with common.ErrorPrecondition, signaling caller error.
func (s *AuthService) Logout(ctx context.Context, refreshToken string) error {
	err := s.manager.RefreshTokens(s.db).Remove(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return fmt.Errorf("refresh token not recognized: %w", common.ErrorPrecondition)
		}
		return common.ErrorInternal
	}
	return nil
}
