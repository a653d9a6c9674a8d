package store

import (
	"context"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-social-api/models"
	"github.com/google/uuid"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var (
	userColumns = []string{"id", "email", "name", "password", "token", "following", "created_at"}
	postColumns = []string{"id", "user_id", "title", "content", "created_at", "updated_at"}
)

func returning(columns []string) string {
	return "RETURNING " + strings.Join(columns, ", ")
}

func toSQL(b sq.Sqlizer) (string, []any, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// ── users ─────────────────────────────────────────────────────────────────────

func buildCreateUserQuery(ctx context.Context, user models.User) (string, []any, error) {
	return toSQL(psql.
		Insert(models.User{}.TableName()).
		Columns("email", "name", "password").
		Values(user.Email, user.Name, user.Password).
		Suffix(returning(userColumns)))
}

func buildFindUserByEmailQuery(ctx context.Context, email string) (string, []any, error) {
	return toSQL(psql.
		Select(userColumns...).
		From(models.User{}.TableName()).
		Where(sq.Eq{"email": email}).
		Limit(1))
}

func buildFindUserByIDQuery(ctx context.Context, userID uuid.UUID) (string, []any, error) {
	return toSQL(psql.
		Select(userColumns...).
		From(models.User{}.TableName()).
		Where(sq.Eq{"id": userID}))
}

// buildFindUserBySessionQuery matches both the id and the currently stored
// token, so tokens replaced by a later login no longer resolve to a user.
func buildFindUserBySessionQuery(ctx context.Context, userID uuid.UUID, token string) (string, []any, error) {
	return toSQL(psql.
		Select(userColumns...).
		From(models.User{}.TableName()).
		Where(sq.And{
			sq.Eq{"id": userID},
			sq.Eq{"token": token},
		}))
}

func buildUpdateSessionTokenQuery(ctx context.Context, userID uuid.UUID, token string) (string, []any, error) {
	return toSQL(psql.
		Update(models.User{}.TableName()).
		Set("token", token).
		Where(sq.Eq{"id": userID}))
}

func buildReplaceFollowingQuery(ctx context.Context, userID uuid.UUID, following []uuid.UUID) (string, []any, error) {
	return toSQL(psql.
		Update(models.User{}.TableName()).
		Set("following", sq.Expr("?::uuid[]", uuidArray(following))).
		Where(sq.Eq{"id": userID}).
		Suffix(returning(userColumns)))
}

// buildGetFollowingQuery resolves the ids stored in the user's following
// array to user names. Each followed user appears once even if its id is
// stored several times.
func buildGetFollowingQuery(ctx context.Context, userID uuid.UUID) (string, []any, error) {
	return toSQL(psql.
		Select("name").
		From(models.User{}.TableName()).
		Where(sq.Expr("id = ANY (SELECT unnest(following) FROM users WHERE id = ?)", userID)).
		OrderBy("created_at", "id"))
}

func buildGetFollowersQuery(ctx context.Context, userID uuid.UUID) (string, []any, error) {
	return toSQL(psql.
		Select("name").
		From(models.User{}.TableName()).
		Where(sq.Expr("following @> ARRAY[?]::uuid[]", userID)).
		OrderBy("created_at", "id"))
}

// ── posts ─────────────────────────────────────────────────────────────────────

func buildCreatePostQuery(ctx context.Context, post models.Post) (string, []any, error) {
	return toSQL(psql.
		Insert(models.Post{}.TableName()).
		Columns("user_id", "title", "content").
		Values(post.UserID, post.Title, post.Content).
		Suffix(returning(postColumns)))
}

// buildUpdatePostQuery sets only the fields present in update and always
// refreshes updated_at.
func buildUpdatePostQuery(ctx context.Context, update models.PostUpdate) (string, []any, error) {
	builder := psql.
		Update(models.Post{}.TableName()).
		Set("updated_at", sq.Expr("now()"))

	if update.Title != nil {
		builder = builder.Set("title", *update.Title)
	}
	if update.Content != nil {
		builder = builder.Set("content", *update.Content)
	}

	return toSQL(builder.
		Where(sq.Eq{"id": update.ID}).
		Suffix(returning(postColumns)))
}

func buildDeletePostQuery(ctx context.Context, postID uuid.UUID) (string, []any, error) {
	return toSQL(psql.
		Delete(models.Post{}.TableName()).
		Where(sq.Eq{"id": postID}))
}

func buildFindPostByIDQuery(ctx context.Context, postID uuid.UUID) (string, []any, error) {
	return toSQL(psql.
		Select(postColumns...).
		From(models.Post{}.TableName()).
		Where(sq.Eq{"id": postID}))
}
