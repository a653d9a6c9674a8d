// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides a Go client for the go-social-api HTTP API.
//
// [APIClient] hides the REST details: request encoding, the Authorization
// header carrying the session token, and the mapping of HTTP statuses to the
// sentinel errors in errors.go so that callers can use [errors.Is]
// (e.g. [ErrUnauthorized] for 401, [ErrForbidden] for 403).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-social-api/models"
	"github.com/google/uuid"
)

// APIClient talks to a go-social-api server.
type APIClient interface {
	// SetToken stores the session token sent with every authenticated
	// request. Login calls it automatically.
	SetToken(token string)

	// Token returns the session token currently held, or "".
	Token() string

	// Register creates an account and returns the stored user record.
	Register(ctx context.Context, request models.RegisterRequest) (models.User, error)

	// Login opens a session and stores its token via SetToken.
	Login(ctx context.Context, request models.LoginRequest) (models.LoginResponse, error)

	CreatePost(ctx context.Context, request models.PostRequest) (models.Post, error)

	// UpdatePost sends a partial update. It returns nil without error when
	// the server knows no post with postID.
	UpdatePost(ctx context.Context, postID uuid.UUID, update models.PostUpdate) (*models.Post, error)

	DeletePost(ctx context.Context, postID uuid.UUID) error

	Follow(ctx context.Context, userID uuid.UUID) (models.User, error)
	Unfollow(ctx context.Context, userID uuid.UUID) (models.User, error)
	Following(ctx context.Context) ([]models.FollowEntry, error)
	Followers(ctx context.Context) ([]models.FollowEntry, error)

	// Greeting calls GET / with param1 and returns the HTML body.
	Greeting(ctx context.Context, param1 string) (string, error)

	// Version returns the server version.
	Version(ctx context.Context) (string, error)
}
