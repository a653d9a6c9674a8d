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
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return &DB{DB: db, errorClassificator: NewPostgresErrorClassifier(), logger: logger.Nop()}, mock
}

func newTestUserRepo(t *testing.T) (*userRepository, sqlmock.Sqlmock) {
	db, mock := newTestDB(t)
	return &userRepository{db: db, logger: logger.Nop()}, mock
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func userRows() *sqlmock.Rows {
	return sqlmock.NewRows(userColumns)
}

func TestCreateUser_Success(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	id := uuid.New()
	now := time.Now()
	user := models.User{Email: "john@example.com", Name: "John", Password: "hash"}

	mock.ExpectQuery("INSERT INTO users").
		WithArgs(user.Email, user.Name, user.Password).
		WillReturnRows(userRows().AddRow(id.String(), user.Email, user.Name, user.Password, nil, "{}", now))

	created, err := repo.CreateUser(context.Background(), user)
	require.NoError(t, err)
	assert.Equal(t, id, created.ID)
	assert.Equal(t, "john@example.com", created.Email)
	assert.Nil(t, created.Token)
	assert.Empty(t, created.Following)
	assert.NotNil(t, created.Following)
	assert.Equal(t, now, created.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateUser_UniqueViolation(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("INSERT INTO users").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.CreateUser(context.Background(), models.User{Email: "john@example.com"})
	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
}

func TestCreateUser_UnexpectedDBError(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("INSERT INTO users").
		WillReturnError(errors.New("db network error"))

	_, err := repo.CreateUser(context.Background(), models.User{Email: "john@example.com"})
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestCreateUser_ScanError(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	rows := sqlmock.NewRows([]string{"id"}).AddRow(uuid.NewString()) // wrong shape → scan error

	mock.ExpectQuery("INSERT INTO users").WillReturnRows(rows)

	_, err := repo.CreateUser(context.Background(), models.User{Email: "john@example.com"})
	assert.Error(t, err)
}

func TestFindUserByEmail(t *testing.T) {
	followed := uuid.New()
	token := "tok"

	tests := []struct {
		name    string
		setup   func(mock sqlmock.Sqlmock)
		wantErr error
		check   func(t *testing.T, u models.User)
	}{
		{
			name: "found",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT (.+) FROM users WHERE email = \\$1").
					WithArgs("john@example.com").
					WillReturnRows(userRows().AddRow(uuid.NewString(), "john@example.com", "John", "hash", token, "{"+followed.String()+"}", time.Now()))
			},
			check: func(t *testing.T, u models.User) {
				assert.Equal(t, "John", u.Name)
				require.NotNil(t, u.Token)
				assert.Equal(t, token, *u.Token)
				assert.Equal(t, []uuid.UUID{followed}, u.Following)
			},
		},
		{
			name: "not found",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT (.+) FROM users").
					WithArgs("john@example.com").
					WillReturnError(sql.ErrNoRows)
			},
			wantErr: ErrNoUserWasFound,
		},
		{
			name: "unexpected error",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT (.+) FROM users").
					WithArgs("john@example.com").
					WillReturnError(errors.New("db failure"))
			},
			wantErr: ErrExecutingQuery,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestUserRepo(t)
			tt.setup(mock)

			u, err := repo.FindUserByEmail(context.Background(), "john@example.com")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			tt.check(t, u)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestFindUserByID_InvalidID(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM users WHERE id = \\$1").
		WillReturnError(pgError(pgerrcode.InvalidTextRepresentation))

	_, err := repo.FindUserByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrInvalidID)
}

// TestFindUserByID_RetriesTransientError verifies that a connection failure
// is retried and the second attempt's result is returned.
func TestFindUserByID_RetriesTransientError(t *testing.T) {
	repo, mock := newTestUserRepo(t)
	id := uuid.New()

	mock.ExpectQuery("SELECT (.+) FROM users WHERE id = \\$1").
		WithArgs(id).
		WillReturnError(pgError(pgerrcode.ConnectionFailure))
	mock.ExpectQuery("SELECT (.+) FROM users WHERE id = \\$1").
		WithArgs(id).
		WillReturnRows(userRows().AddRow(id.String(), "a@b.c", "Ann", "hash", nil, "{}", time.Now()))

	u, err := repo.FindUserByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, id, u.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindUserBySession(t *testing.T) {
	repo, mock := newTestUserRepo(t)
	id := uuid.New()

	mock.ExpectQuery("SELECT (.+) FROM users WHERE \\(id = \\$1 AND token = \\$2\\)").
		WithArgs(id, "stale").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindUserBySession(context.Background(), id, "stale")
	assert.ErrorIs(t, err, ErrNoUserWasFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateSessionToken(t *testing.T) {
	id := uuid.New()

	t.Run("updated", func(t *testing.T) {
		repo, mock := newTestUserRepo(t)
		mock.ExpectExec("UPDATE users SET token = \\$1 WHERE id = \\$2").
			WithArgs("new-token", id).
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, repo.UpdateSessionToken(context.Background(), id, "new-token"))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no such user", func(t *testing.T) {
		repo, mock := newTestUserRepo(t)
		mock.ExpectExec("UPDATE users").
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.UpdateSessionToken(context.Background(), id, "new-token")
		assert.ErrorIs(t, err, ErrNoUserWasFound)
	})

	t.Run("db error", func(t *testing.T) {
		repo, mock := newTestUserRepo(t)
		mock.ExpectExec("UPDATE users").
			WillReturnError(errors.New("boom"))

		err := repo.UpdateSessionToken(context.Background(), id, "new-token")
		assert.ErrorIs(t, err, ErrExecutingQuery)
	})
}

func TestReplaceFollowing(t *testing.T) {
	repo, mock := newTestUserRepo(t)
	id := uuid.New()
	a, b := uuid.New(), uuid.New()
	following := []uuid.UUID{a, b, a}
	literal := "{" + a.String() + "," + b.String() + "," + a.String() + "}"

	mock.ExpectQuery("UPDATE users SET following = \\$1::uuid\\[\\] WHERE id = \\$2 RETURNING").
		WithArgs(literal, id).
		WillReturnRows(userRows().AddRow(id.String(), "a@b.c", "Ann", "hash", "tok", literal, time.Now()))

	u, err := repo.ReplaceFollowing(context.Background(), id, following)
	require.NoError(t, err)
	assert.Equal(t, following, u.Following)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReplaceFollowing_UnknownUser(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("UPDATE users SET following").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.ReplaceFollowing(context.Background(), uuid.New(), nil)
	assert.ErrorIs(t, err, ErrNoUserWasFound)
}

func TestGetFollowing(t *testing.T) {
	repo, mock := newTestUserRepo(t)
	id := uuid.New()

	mock.ExpectQuery("SELECT name FROM users WHERE id = ANY \\(SELECT unnest\\(following\\) FROM users WHERE id = \\$1\\)").
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows([]string{"name"}).AddRow("Bob").AddRow("Carol"))

	entries, err := repo.GetFollowing(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, []models.FollowEntry{{Name: "Bob"}, {Name: "Carol"}}, entries)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetFollowers_Empty(t *testing.T) {
	repo, mock := newTestUserRepo(t)
	id := uuid.New()

	mock.ExpectQuery("SELECT name FROM users WHERE following @> ARRAY\\[\\$1\\]::uuid\\[\\]").
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows([]string{"name"}))

	entries, err := repo.GetFollowers(context.Background(), id)
	require.NoError(t, err)
	assert.NotNil(t, entries)
	assert.Empty(t, entries)
}

func TestGetFollowers_RowError(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("SELECT name FROM users").
		WillReturnRows(sqlmock.NewRows([]string{"name"}).
			AddRow("Bob").
			RowError(0, errors.New("broken row")))

	_, err := repo.GetFollowers(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrScanningRows)
}

func TestGetFollowing_QueryError(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("SELECT name FROM users").
		WillReturnError(errors.New("db failure"))

	_, err := repo.GetFollowing(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrExecutingQuery)
}
