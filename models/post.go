package models

import (
	"time"

	"github.com/google/uuid"
)

// Post is a piece of content published by a user.
type Post struct {
	// ID is the unique identifier of the post.
	ID uuid.UUID `json:"_id"`

	// UserID is the identifier of the user that created the post.
	UserID uuid.UUID `json:"user_id"`

	Title   string `json:"title"`
	Content string `json:"content"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the Post model.
func (p Post) TableName() string {
	return "posts"
}

// PostUpdate describes a partial update of a post.
// Only non-nil fields are written.
type PostUpdate struct {
	// ID is the identifier of the post to update. Taken from the URL.
	ID uuid.UUID `json:"-"`

	// CallerID is the authenticated user performing the update.
	CallerID uuid.UUID `json:"-"`

	Title   *string `json:"title,omitempty"`
	Content *string `json:"content,omitempty"`
}

// IsEmpty reports whether the update carries no fields to change.
func (u PostUpdate) IsEmpty() bool {
	return u.Title == nil && u.Content == nil
}
