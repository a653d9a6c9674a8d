package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-social-api/internal/logger"
	"github.com/MKhiriev/go-social-api/models"
	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPostRepo(t *testing.T) (*postRepository, sqlmock.Sqlmock) {
	db, mock := newTestDB(t)
	return &postRepository{DB: db, logger: logger.Nop()}, mock
}

func strPtr(s string) *string { return &s }

func TestCreatePost(t *testing.T) {
	userID := uuid.New()
	postID := uuid.New()
	now := time.Now()

	tests := []struct {
		name    string
		setup   func(mock sqlmock.Sqlmock)
		wantErr error
	}{
		{
			name: "created",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("INSERT INTO posts \\(user_id,title,content\\) VALUES \\(\\$1,\\$2,\\$3\\) RETURNING").
					WithArgs(userID, "Hello", "World").
					WillReturnRows(sqlmock.NewRows(postColumns).
						AddRow(postID.String(), userID.String(), "Hello", "World", now, now))
			},
		},
		{
			name: "unknown user",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("INSERT INTO posts").
					WillReturnError(pgError(pgerrcode.ForeignKeyViolation))
			},
			wantErr: ErrNoUserWasFound,
		},
		{
			name: "db error",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("INSERT INTO posts").
					WillReturnError(errors.New("boom"))
			},
			wantErr: ErrExecutingQuery,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestPostRepo(t)
			tt.setup(mock)

			post, err := repo.CreatePost(context.Background(), models.Post{UserID: userID, Title: "Hello", Content: "World"})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, postID, post.ID)
			assert.Equal(t, userID, post.UserID)
			assert.Equal(t, now, post.CreatedAt)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestUpdatePost_OnlyTitle(t *testing.T) {
	repo, mock := newTestPostRepo(t)
	postID := uuid.New()
	now := time.Now()

	mock.ExpectQuery("UPDATE posts SET updated_at = now\\(\\), title = \\$1 WHERE id = \\$2 RETURNING").
		WithArgs("New", postID).
		WillReturnRows(sqlmock.NewRows(postColumns).
			AddRow(postID.String(), uuid.NewString(), "New", "old content", now, now))

	post, err := repo.UpdatePost(context.Background(), models.PostUpdate{ID: postID, Title: strPtr("New")})
	require.NoError(t, err)
	assert.Equal(t, "New", post.Title)
	assert.Equal(t, "old content", post.Content)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdatePost_NotFound(t *testing.T) {
	repo, mock := newTestPostRepo(t)

	mock.ExpectQuery("UPDATE posts").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.UpdatePost(context.Background(), models.PostUpdate{ID: uuid.New(), Content: strPtr("x")})
	assert.ErrorIs(t, err, ErrPostNotFound)
}

func TestDeletePost(t *testing.T) {
	postID := uuid.New()

	t.Run("deleted", func(t *testing.T) {
		repo, mock := newTestPostRepo(t)
		mock.ExpectExec("DELETE FROM posts WHERE id = \\$1").
			WithArgs(postID).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.DeletePost(context.Background(), postID))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing post is not an error", func(t *testing.T) {
		repo, mock := newTestPostRepo(t)
		mock.ExpectExec("DELETE FROM posts").
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.NoError(t, repo.DeletePost(context.Background(), postID))
	})

	t.Run("db error", func(t *testing.T) {
		repo, mock := newTestPostRepo(t)
		mock.ExpectExec("DELETE FROM posts").
			WillReturnError(errors.New("boom"))

		assert.ErrorIs(t, repo.DeletePost(context.Background(), postID), ErrExecutingQuery)
	})
}

func TestFindPostByID(t *testing.T) {
	repo, mock := newTestPostRepo(t)
	postID := uuid.New()
	ownerID := uuid.New()
	now := time.Now()

	mock.ExpectQuery("SELECT (.+) FROM posts WHERE id = \\$1").
		WithArgs(postID).
		WillReturnRows(sqlmock.NewRows(postColumns).
			AddRow(postID.String(), ownerID.String(), "t", "c", now, now))

	post, err := repo.FindPostByID(context.Background(), postID)
	require.NoError(t, err)
	assert.Equal(t, ownerID, post.UserID)
}

// TestFindPostByID_NonRetryableErrorIsNotRetried verifies that a single
// failing attempt is made for errors not classified as retryable.
func TestFindPostByID_NonRetryableErrorIsNotRetried(t *testing.T) {
	repo, mock := newTestPostRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM posts").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindPostByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrPostNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNewStorages(t *testing.T) {
	db, _ := newTestDB(t)

	storages := NewStorages(db, logger.Nop())
	require.NotNil(t, storages)
	assert.NotNil(t, storages.UserRepository)
	assert.NotNil(t, storages.PostRepository)
}
