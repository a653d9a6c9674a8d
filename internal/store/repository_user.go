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

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// It handles account creation, session token bookkeeping and the follow graph
// against the "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (models.User, error) {
	var user models.User
	err := row.Scan(
		&user.ID,
		&user.Email,
		&user.Name,
		&user.Password,
		&user.Token,
		(*uuidArray)(&user.Following),
		&user.CreatedAt,
	)
	return user, err
}

// classifyUserError maps driver errors of single-row user queries to
// repository sentinels.
func classifyUserError(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNoUserWasFound
	}

	switch postgresError(err) {
	case pgerrcode.UniqueViolation:
		return ErrEmailAlreadyExists
	case pgerrcode.InvalidTextRepresentation:
		return ErrInvalidID
	}

	return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
}

// CreateUser persists a new user record and returns the fully populated
// [models.User] with server-assigned fields (ID, Following, CreatedAt).
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrEmailAlreadyExists].
//   - Any other driver-level error → wrapped [ErrExecutingQuery].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCreateUserQuery(ctx, user)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("failed to create query")
		return models.User{}, err
	}

	created, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Str("email", user.Email).Msg("error inserting user")
		return models.User{}, classifyUserError(err)
	}

	return created, nil
}

// FindUserByEmail retrieves the user registered with email.
// Returns [ErrNoUserWasFound] if there is none.
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindUserByEmailQuery(ctx, email)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserByEmail").Msg("failed to create query")
		return models.User{}, err
	}

	return r.findOne(ctx, "*userRepository.FindUserByEmail", query, args)
}

// FindUserByID retrieves the user with the given id.
// Returns [ErrNoUserWasFound] if there is none.
func (r *userRepository) FindUserByID(ctx context.Context, userID uuid.UUID) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindUserByIDQuery(ctx, userID)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserByID").Msg("failed to create query")
		return models.User{}, err
	}

	return r.findOne(ctx, "*userRepository.FindUserByID", query, args)
}

// FindUserBySession retrieves the user whose id and stored token both match.
// Returns [ErrNoUserWasFound] when the token is stale or the user is gone.
func (r *userRepository) FindUserBySession(ctx context.Context, userID uuid.UUID, token string) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindUserBySessionQuery(ctx, userID, token)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserBySession").Msg("failed to create query")
		return models.User{}, err
	}

	return r.findOne(ctx, "*userRepository.FindUserBySession", query, args)
}

func (r *userRepository) findOne(ctx context.Context, funcName, query string, args []any) (models.User, error) {
	log := logger.FromContext(ctx)

	var user models.User
	err := r.db.withRetry(ctx, func() error {
		var scanErr error
		user, scanErr = scanUser(r.db.QueryRowContext(ctx, query, args...))
		return scanErr
	})
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			log.Err(err).Str("func", funcName).Msg("error finding user")
		}
		return models.User{}, classifyUserError(err)
	}

	return user, nil
}

// UpdateSessionToken overwrites the stored session token of the user.
// Returns [ErrNoUserWasFound] if no row was updated.
func (r *userRepository) UpdateSessionToken(ctx context.Context, userID uuid.UUID, token string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateSessionTokenQuery(ctx, userID, token)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateSessionToken").Msg("failed to create query")
		return err
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateSessionToken").Str("user_id", userID.String()).Msg("error updating session token")
		return classifyUserError(err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrNoUserWasFound
	}

	return nil
}

// ReplaceFollowing stores following as the complete following list of the
// user and returns the updated record.
func (r *userRepository) ReplaceFollowing(ctx context.Context, userID uuid.UUID, following []uuid.UUID) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildReplaceFollowingQuery(ctx, userID, following)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.ReplaceFollowing").Msg("failed to create query")
		return models.User{}, err
	}

	updated, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).
			Str("func", "*userRepository.ReplaceFollowing").
			Str("user_id", userID.String()).
			Int("following count", len(following)).
			Msg("error replacing following list")
		return models.User{}, classifyUserError(err)
	}

	return updated, nil
}

// GetFollowing returns the names of users followed by userID.
// An unknown user yields an empty list.
func (r *userRepository) GetFollowing(ctx context.Context, userID uuid.UUID) ([]models.FollowEntry, error) {
	query, args, err := buildGetFollowingQuery(ctx, userID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*userRepository.GetFollowing").Msg("failed to create query")
		return nil, err
	}

	return r.queryNames(ctx, "*userRepository.GetFollowing", query, args)
}

// GetFollowers returns the names of users whose following list contains userID.
func (r *userRepository) GetFollowers(ctx context.Context, userID uuid.UUID) ([]models.FollowEntry, error) {
	query, args, err := buildGetFollowersQuery(ctx, userID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*userRepository.GetFollowers").Msg("failed to create query")
		return nil, err
	}

	return r.queryNames(ctx, "*userRepository.GetFollowers", query, args)
}

func (r *userRepository) queryNames(ctx context.Context, funcName, query string, args []any) ([]models.FollowEntry, error) {
	log := logger.FromContext(ctx)

	var rows *sql.Rows
	err := r.db.withRetry(ctx, func() error {
		var queryErr error
		rows, queryErr = r.db.QueryContext(ctx, query, args...)
		return queryErr
	})
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to execute query")
		return nil, classifyUserError(err)
	}
	defer rows.Close()

	entries := make([]models.FollowEntry, 0)
	for rows.Next() {
		var entry models.FollowEntry
		if scanErr := rows.Scan(&entry.Name); scanErr != nil {
			log.Err(scanErr).Str("func", funcName).Msg("failed to scan name row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		entries = append(entries, entry)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", funcName).Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return entries, nil
}
