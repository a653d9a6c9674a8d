package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-social-api/internal/config"
	"github.com/MKhiriev/go-social-api/internal/logger"
	"github.com/MKhiriev/go-social-api/internal/store"
	"github.com/MKhiriev/go-social-api/models"
	"github.com/google/uuid"
)

// postService is the concrete implementation of PostService backed by a
// PostRepository.
//
// By default any authenticated caller may update or delete any post. When
// enforceOwnership is set, mutations by anyone other than the post's owner
// fail with ErrUnauthorizedAccessToAnotherPost.
type postService struct {
	postRepository   store.PostRepository
	enforceOwnership bool
	logger           *logger.Logger
}

func NewPostService(postRepository store.PostRepository, cfg config.App, logger *logger.Logger) PostService {
	return &postService{
		postRepository:   postRepository,
		enforceOwnership: cfg.EnforcePostOwnership,
		logger:           logger,
	}
}

func (p *postService) CreatePost(ctx context.Context, post models.Post) (models.Post, error) {
	log := logger.FromContext(ctx)

	created, err := p.postRepository.CreatePost(ctx, post)
	if err != nil {
		log.Err(err).Str("user_id", post.UserID.String()).Msg("post creation failed")
		return models.Post{}, fmt.Errorf("post creation failed: %w", err)
	}

	return created, nil
}

// UpdatePost overwrites the provided fields of the post and bumps its
// updated_at timestamp. An update without fields writes nothing and returns
// the post as stored. Returns ErrPostNotFound when no post has update.ID.
func (p *postService) UpdatePost(ctx context.Context, update models.PostUpdate) (models.Post, error) {
	log := logger.FromContext(ctx)

	if err := p.checkOwnership(ctx, update.ID, update.CallerID); err != nil {
		return models.Post{}, err
	}

	if update.IsEmpty() {
		return p.findPost(ctx, update.ID)
	}

	updated, err := p.postRepository.UpdatePost(ctx, update)
	if err != nil {
		if errors.Is(err, store.ErrPostNotFound) {
			log.Debug().Str("post_id", update.ID.String()).Msg("post to update was not found")
			return models.Post{}, ErrPostNotFound
		}
		log.Err(err).Str("post_id", update.ID.String()).Msg("post update failed")
		return models.Post{}, fmt.Errorf("post update failed: %w", err)
	}

	return updated, nil
}

// DeletePost removes the post. Deleting a post that does not exist succeeds.
func (p *postService) DeletePost(ctx context.Context, postID, callerID uuid.UUID) error {
	log := logger.FromContext(ctx)

	err := p.checkOwnership(ctx, postID, callerID)
	if errors.Is(err, ErrPostNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	if err = p.postRepository.DeletePost(ctx, postID); err != nil {
		log.Err(err).Str("post_id", postID.String()).Msg("post deletion failed")
		return fmt.Errorf("post deletion failed: %w", err)
	}

	return nil
}

func (p *postService) findPost(ctx context.Context, postID uuid.UUID) (models.Post, error) {
	post, err := p.postRepository.FindPostByID(ctx, postID)
	if err != nil {
		if errors.Is(err, store.ErrPostNotFound) {
			return models.Post{}, ErrPostNotFound
		}
		logger.FromContext(ctx).Err(err).Str("post_id", postID.String()).Msg("post lookup failed")
		return models.Post{}, fmt.Errorf("post lookup failed: %w", err)
	}

	return post, nil
}

// checkOwnership is a no-op unless ownership enforcement is enabled.
func (p *postService) checkOwnership(ctx context.Context, postID, callerID uuid.UUID) error {
	if !p.enforceOwnership {
		return nil
	}

	post, err := p.findPost(ctx, postID)
	if err != nil {
		return err
	}

	if post.UserID != callerID {
		logger.FromContext(ctx).Warn().
			Str("post_id", postID.String()).
			Str("owner_id", post.UserID.String()).
			Str("caller_id", callerID.String()).
			Msg("attempt to modify another user's post")
		return ErrUnauthorizedAccessToAnotherPost
	}

	return nil
}
