package session

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/linkup-team/linkup-gateway/internal/domain"
)

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Repository persists gateway sessions in Postgres. Sessions carry the
// backend bearer token, which is why they live server-side rather than in
// the caller.
type Repository struct {
	db DBExecutor
}

// NewRepository creates a new session repository
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create stores a new session
func (r *Repository) Create(ctx context.Context, session *domain.Session) error {
	query, args, err := psql.Insert("sessions").
		Columns(
			"id",
			"user_id",
			"nickname",
			"role",
			"token",
			"created_at",
			"expires_at",
		).
		Values(
			session.ID,
			session.UserID,
			session.Nickname,
			string(session.Role),
			session.Token,
			session.CreatedAt,
			session.ExpiresAt,
		).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// GetByID fetches a session by id
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Session, error) {
	query, args, err := psql.Select(
		"id",
		"user_id",
		"nickname",
		"role",
		"token",
		"created_at",
		"expires_at",
	).
		From("sessions").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var (
		session domain.Session
		role    string
	)
	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&session.ID,
		&session.UserID,
		&session.Nickname,
		&role,
		&session.Token,
		&session.CreatedAt,
		&session.ExpiresAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("%w: GetByID - scan: %v", ErrScanRow, err)
	}

	session.Role = domain.Role(role)
	return &session, nil
}

// Delete removes a session by id
func (r *Repository) Delete(ctx context.Context, id string) error {
	query, args, err := psql.Delete("sessions").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrSessionNotFound
	}

	return nil
}

// DeleteExpired removes all sessions past their expiry and returns how many
// were removed
func (r *Repository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	query, args, err := psql.Delete("sessions").
		Where(squirrel.Lt{"expires_at": now}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteExpired - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteExpired - execute delete: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteExpired - rows affected: %v", ErrExecQuery, err)
	}

	return affected, nil
}
