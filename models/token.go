package models

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// SessionClaims is the JWT claim set of a session token.
//
// Besides the registered claims (exp, iat, iss) it carries the user's
// identifier and display name so that clients can decode them without an
// extra request.
type SessionClaims struct {
	UserID string `json:"user_id"`
	Name   string `json:"name"`
	jwt.RegisteredClaims
}

// Token wraps a session JWT with convenience accessors.
type Token struct {
	// Token is the underlying JWT token used for signing and claim inspection.
	*jwt.Token `json:"-"`

	// SignedString is the compact JWS representation of the token
	// (base64url-encoded header.payload.signature). This exact string is
	// stored on the user record and compared verbatim on every request.
	SignedString string `json:"-"`

	// UserID is the owner identifier extracted from the "user_id" claim.
	UserID uuid.UUID `json:"-"`

	// Name is the owner display name extracted from the "name" claim.
	Name string `json:"-"`
}

// ParseUserID converts the "user_id" claim to a [uuid.UUID].
func (c *SessionClaims) ParseUserID() (uuid.UUID, error) {
	if c.UserID == "" {
		return uuid.Nil, fmt.Errorf("empty user_id claim")
	}

	id, err := uuid.Parse(c.UserID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("error converting user_id claim to UUID: %w", err)
	}

	return id, nil
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
