// Package auth implements the token service: issuing and verifying the
// two classes of signed bearer tokens. Access tokens are short-lived and
// carry an expiry claim; refresh tokens carry none and are revoked through
// the ledger instead. The two classes are signed with distinct secrets so
// a leaked access-token secret cannot forge long-lived refresh tokens.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"noteshare/internal/common"
)

// Claims extends the registered claims with the authenticated user id.
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"uid"`
}

// TokenService mints and verifies HS256 tokens. Verification is a pure
// function of the token string and the secret; there is no state here.
type TokenService struct {
	accessSecret  []byte
	refreshSecret []byte
	accessTTL     time.Duration
}

func NewTokenService(accessSecret, refreshSecret []byte, accessTTL time.Duration) *TokenService {
	return &TokenService{
		accessSecret:  accessSecret,
		refreshSecret: refreshSecret,
		accessTTL:     accessTTL,
	}
}

// IssueAccessToken returns a signed token embedding userID and an expiry
// of now+TTL. It has no side effects and is never persisted.
func (s *TokenService) IssueAccessToken(userID string) (string, error) {
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.accessTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
		UserID: userID,
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.accessSecret)
}

// IssueRefreshToken returns a signed token embedding userID and no expiry.
// The random jti keeps two tokens for the same user distinct, so revoking
// one session never touches another. The caller is responsible for adding
// the returned string to the revocation ledger.
func (s *TokenService) IssueRefreshToken(userID string) (string, error) {
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:       uuid.NewString(),
			IssuedAt: jwt.NewNumericDate(time.Now()),
		},
		UserID: userID,
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.refreshSecret)
}

// VerifyAccessToken returns the user id carried by the token, or
// common.ErrInvalidToken if the signature, expiry, or claims are bad.
func (s *TokenService) VerifyAccessToken(tokenString string) (string, error) {
	return verify(tokenString, s.accessSecret)
}

// VerifyRefreshToken is the refresh-secret counterpart of
// VerifyAccessToken. It does not consult the revocation ledger.
func (s *TokenService) VerifyRefreshToken(tokenString string) (string, error) {
	return verify(tokenString, s.refreshSecret)
}

func verify(tokenString string, secret []byte) (string, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, common.ErrInvalidToken
		}
		return secret, nil
	})
	if err != nil || !token.Valid {
		return "", common.ErrInvalidToken
	}

	if claims.UserID == "" {
		return "", common.ErrInvalidToken
	}

	return claims.UserID, nil
}
