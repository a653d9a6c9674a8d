//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock
package service

import (
	"context"

	"github.com/MKhiriev/go-social-api/models"
	"github.com/google/uuid"
)

type AuthService interface {
	RegisterUser(ctx context.Context, request models.RegisterRequest) (models.User, error)
	Login(ctx context.Context, request models.LoginRequest) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
	// Authenticate parses tokenString and checks that it is the session token
	// currently stored for its owner.
	Authenticate(ctx context.Context, tokenString string) (models.Token, error)
}

type PostService interface {
	CreatePost(ctx context.Context, post models.Post) (models.Post, error)
	UpdatePost(ctx context.Context, update models.PostUpdate) (models.Post, error)
	DeletePost(ctx context.Context, postID, callerID uuid.UUID) error
}

type FollowService interface {
	Follow(ctx context.Context, userID, targetID uuid.UUID) (models.User, error)
	Unfollow(ctx context.Context, userID, targetID uuid.UUID) (models.User, error)
	Following(ctx context.Context, userID uuid.UUID) ([]models.FollowEntry, error)
	Followers(ctx context.Context, userID uuid.UUID) ([]models.FollowEntry, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
