//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock
package store

import (
	"context"

	"github.com/MKhiriev/go-social-api/models"
	"github.com/google/uuid"
)

// UserRepository persists user accounts, their session tokens and the
// follow graph stored in the users.following column.
type UserRepository interface {
	// CreateUser inserts a user and returns the stored record.
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	// FindUserByEmail returns the user with the given email.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	// FindUserByID returns the user with the given id.
	FindUserByID(ctx context.Context, userID uuid.UUID) (models.User, error)
	// FindUserBySession returns the user whose id and stored token both match.
	FindUserBySession(ctx context.Context, userID uuid.UUID, token string) (models.User, error)
	// UpdateSessionToken stores token as the user's current session token.
	UpdateSessionToken(ctx context.Context, userID uuid.UUID, token string) error
	// ReplaceFollowing overwrites the following list and returns the updated user.
	ReplaceFollowing(ctx context.Context, userID uuid.UUID, following []uuid.UUID) (models.User, error)
	// GetFollowing returns names of the users the given user follows.
	GetFollowing(ctx context.Context, userID uuid.UUID) ([]models.FollowEntry, error)
	// GetFollowers returns names of the users that follow the given user.
	GetFollowers(ctx context.Context, userID uuid.UUID) ([]models.FollowEntry, error)
}

// PostRepository persists posts.
type PostRepository interface {
	CreatePost(ctx context.Context, post models.Post) (models.Post, error)
	// UpdatePost applies the non-nil fields of update. Returns
	// [ErrPostNotFound] if no post has update.ID.
	UpdatePost(ctx context.Context, update models.PostUpdate) (models.Post, error)
	// DeletePost removes the post. Deleting a missing post is not an error.
	DeletePost(ctx context.Context, postID uuid.UUID) error
	FindPostByID(ctx context.Context, postID uuid.UUID) (models.Post, error)
}

// ErrorClassificator decides whether a failed database operation may be
// retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
