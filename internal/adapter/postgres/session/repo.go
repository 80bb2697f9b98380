// Package session implements the user session repository.
package session

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/leettrack-dev/leettrack-backend/internal/adapter/postgres"
	"github.com/leettrack-dev/leettrack-backend/internal/domain"
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Repo provides session persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new session repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const getSQL = `
SELECT session_id, github_id, username, avatar_url, created_at
FROM user_sessions
WHERE session_id = $1`

// Create stores a new session.
func (r *Repo) Create(ctx context.Context, s domain.Session) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Insert("user_sessions").
		Columns("session_id", "github_id", "username", "avatar_url", "created_at").
		Values(s.ID, s.GitHubID, s.Username, s.AvatarURL, s.CreatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}

	if _, err := q.Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "session", s.ID.String())
	}
	return nil
}

// Get looks up a session by id. Returns domain.ErrNotFound for unknown or
// revoked sessions.
func (r *Repo) Get(ctx context.Context, id uuid.UUID) (domain.Session, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var s domain.Session
	err := q.QueryRow(ctx, getSQL, id).
		Scan(&s.ID, &s.GitHubID, &s.Username, &s.AvatarURL, &s.CreatedAt)
	if err != nil {
		return domain.Session{}, postgres.MapError(err, "session", id.String())
	}
	return s, nil
}

// Delete revokes a session. Deleting an already revoked session is not an
// error, logout is idempotent.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := q.Exec(ctx, "DELETE FROM user_sessions WHERE session_id = $1", id); err != nil {
		return postgres.MapError(err, "session", id.String())
	}
	return nil
}
