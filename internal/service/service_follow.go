package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-social-api/internal/logger"
	"github.com/MKhiriev/go-social-api/internal/store"
	"github.com/MKhiriev/go-social-api/models"
	"github.com/google/uuid"
)

// followService maintains the follow graph kept in each user's following
// list.
//
// Follow and Unfollow read the caller's list, modify it in memory and write it
// back as a whole. The two steps are not atomic: concurrent calls for the same
// user may overwrite each other's change.
type followService struct {
	userRepository store.UserRepository
	logger         *logger.Logger
}

func NewFollowService(userRepository store.UserRepository, logger *logger.Logger) FollowService {
	return &followService{
		userRepository: userRepository,
		logger:         logger,
	}
}

// Follow appends targetID to the caller's following list. Neither the
// existence of the target nor duplicates are checked.
func (f *followService) Follow(ctx context.Context, userID, targetID uuid.UUID) (models.User, error) {
	return f.replaceFollowing(ctx, userID, func(following []uuid.UUID) []uuid.UUID {
		return append(following, targetID)
	})
}

// Unfollow removes every occurrence of targetID from the caller's following
// list.
func (f *followService) Unfollow(ctx context.Context, userID, targetID uuid.UUID) (models.User, error) {
	return f.replaceFollowing(ctx, userID, func(following []uuid.UUID) []uuid.UUID {
		kept := make([]uuid.UUID, 0, len(following))
		for _, id := range following {
			if id != targetID {
				kept = append(kept, id)
			}
		}
		return kept
	})
}

func (f *followService) Following(ctx context.Context, userID uuid.UUID) ([]models.FollowEntry, error) {
	entries, err := f.userRepository.GetFollowing(ctx, userID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("user_id", userID.String()).Msg("following lookup failed")
		return nil, fmt.Errorf("following lookup failed: %w", err)
	}

	return entries, nil
}

func (f *followService) Followers(ctx context.Context, userID uuid.UUID) ([]models.FollowEntry, error) {
	entries, err := f.userRepository.GetFollowers(ctx, userID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("user_id", userID.String()).Msg("followers lookup failed")
		return nil, fmt.Errorf("followers lookup failed: %w", err)
	}

	return entries, nil
}

func (f *followService) replaceFollowing(ctx context.Context, userID uuid.UUID, change func([]uuid.UUID) []uuid.UUID) (models.User, error) {
	log := logger.FromContext(ctx)

	user, err := f.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		log.Err(err).Str("user_id", userID.String()).Msg("user lookup failed")
		if errors.Is(err, store.ErrNoUserWasFound) {
			return models.User{}, ErrUserNotFound
		}
		return models.User{}, fmt.Errorf("user lookup failed: %w", err)
	}

	following := change(append([]uuid.UUID(nil), user.Following...))
	if following == nil {
		following = []uuid.UUID{}
	}

	updated, err := f.userRepository.ReplaceFollowing(ctx, userID, following)
	if err != nil {
		log.Err(err).Str("user_id", userID.String()).Msg("following update failed")
		return models.User{}, fmt.Errorf("following update failed: %w", err)
	}

	return updated, nil
}
