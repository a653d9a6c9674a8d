package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-social-api/internal/logger"
	"github.com/MKhiriev/go-social-api/models"
	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
)

// postRepository is the PostgreSQL-backed implementation of [PostRepository].
type postRepository struct {
	*DB
	logger *logger.Logger
}

func NewPostRepository(db *DB, logger *logger.Logger) PostRepository {
	logger.Debug().Msg("creating post repository")
	return &postRepository{
		DB:     db,
		logger: logger,
	}
}

func scanPost(row rowScanner) (models.Post, error) {
	var post models.Post
	err := row.Scan(
		&post.ID,
		&post.UserID,
		&post.Title,
		&post.Content,
		&post.CreatedAt,
		&post.UpdatedAt,
	)
	return post, err
}

func classifyPostError(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ErrPostNotFound
	}

	switch postgresError(err) {
	case pgerrcode.ForeignKeyViolation:
		return ErrNoUserWasFound
	case pgerrcode.InvalidTextRepresentation:
		return ErrInvalidID
	}

	return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
}

// CreatePost inserts post and returns it with the server-assigned id and
// timestamps. A user_id without a matching user yields [ErrNoUserWasFound].
func (p *postRepository) CreatePost(ctx context.Context, post models.Post) (models.Post, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCreatePostQuery(ctx, post)
	if err != nil {
		log.Err(err).Str("func", "postRepository.CreatePost").Msg("failed to create query")
		return models.Post{}, err
	}

	created, err := scanPost(p.DB.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).
			Str("func", "postRepository.CreatePost").
			Str("user_id", post.UserID.String()).
			Msg("failed to insert post")
		return models.Post{}, classifyPostError(err)
	}

	return created, nil
}

func (p *postRepository) UpdatePost(ctx context.Context, update models.PostUpdate) (models.Post, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdatePostQuery(ctx, update)
	if err != nil {
		log.Err(err).Str("func", "postRepository.UpdatePost").Msg("failed to create query")
		return models.Post{}, err
	}

	updated, err := scanPost(p.DB.QueryRowContext(ctx, query, args...))
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			log.Err(err).
				Str("func", "postRepository.UpdatePost").
				Str("post_id", update.ID.String()).
				Msg("failed to update post")
		}
		return models.Post{}, classifyPostError(err)
	}

	return updated, nil
}

func (p *postRepository) DeletePost(ctx context.Context, postID uuid.UUID) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeletePostQuery(ctx, postID)
	if err != nil {
		log.Err(err).Str("func", "postRepository.DeletePost").Msg("failed to create query")
		return err
	}

	result, err := p.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "postRepository.DeletePost").
			Str("post_id", postID.String()).
			Msg("failed to delete post")
		return classifyPostError(err)
	}

	if affected, _ := result.RowsAffected(); affected == 0 {
		log.Debug().
			Str("func", "postRepository.DeletePost").
			Str("post_id", postID.String()).
			Msg("no post to delete")
	}

	return nil
}

func (p *postRepository) FindPostByID(ctx context.Context, postID uuid.UUID) (models.Post, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindPostByIDQuery(ctx, postID)
	if err != nil {
		log.Err(err).Str("func", "postRepository.FindPostByID").Msg("failed to create query")
		return models.Post{}, err
	}

	var post models.Post
	err = p.DB.withRetry(ctx, func() error {
		var scanErr error
		post, scanErr = scanPost(p.DB.QueryRowContext(ctx, query, args...))
		return scanErr
	})
	if err != nil {
		return models.Post{}, classifyPostError(err)
	}

	return post, nil
}
