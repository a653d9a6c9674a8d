package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-social-api/internal/validators"
	"github.com/MKhiriev/go-social-api/models"
	"github.com/google/uuid"
)

// PostValidationService is a PostService decorator that rejects malformed
// input with ErrInvalidDataProvided before it reaches the wrapped service.
type PostValidationService struct {
	inner     PostService
	validator validators.Validator
}

func NewPostValidationService() PostServiceWrapper {
	return &PostValidationService{
		validator: validators.NewSocialValidator(),
	}
}

func (v *PostValidationService) CreatePost(ctx context.Context, post models.Post) (models.Post, error) {
	if err := v.validator.Validate(ctx, post); err != nil {
		return models.Post{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.CreatePost(ctx, post)
}

func (v *PostValidationService) UpdatePost(ctx context.Context, update models.PostUpdate) (models.Post, error) {
	if err := v.validator.Validate(ctx, update); err != nil {
		return models.Post{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.UpdatePost(ctx, update)
}

func (v *PostValidationService) DeletePost(ctx context.Context, postID, callerID uuid.UUID) error {
	err := v.validator.Validate(ctx, models.PostUpdate{ID: postID, CallerID: callerID})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.DeletePost(ctx, postID, callerID)
}

func (v *PostValidationService) Wrap(wrapped PostService) PostService {
	v.inner = wrapped
	return v
}
