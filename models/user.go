package models

import (
	"time"

	"github.com/google/uuid"
)

// User represents an account of the social network.
// The JSON shape mirrors the stored document: identifiers are exposed as
// "_id" and the password hash and session token are serialised as-is.
type User struct {
	// ID is the opaque unique identifier of the user.
	ID uuid.UUID `json:"_id"`

	// Email is the unique login identifier of the user.
	Email string `json:"email"`

	// Name is the display name of the user.
	Name string `json:"name"`

	// Password is the bcrypt hash of the user's password.
	// It is never plaintext once the user is persisted.
	Password string `json:"password"`

	// Token is the currently active session token, or nil when the user has
	// never logged in. Each login replaces it, so only one session is valid
	// at a time.
	Token *string `json:"token"`

	// Following lists identifiers of users this user follows.
	// The list may contain duplicates.
	Following []uuid.UUID `json:"following"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"createdAt"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// FollowEntry is a single element of the following/followers lists.
type FollowEntry struct {
	Name string `json:"name"`
}
