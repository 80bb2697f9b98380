// Package tag implements the tag registry repository.
package tag

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/leettrack-dev/leettrack-backend/internal/adapter/postgres"
	"github.com/leettrack-dev/leettrack-backend/internal/domain"
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Repo provides tag persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new tag repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const listSQL = `
SELECT tag_name
FROM tags
ORDER BY tag_name`

const existSQL = `
SELECT tag_name
FROM tags
WHERE tag_name = ANY($1::text[])`

// List returns all registered tags sorted by name.
func (r *Repo) List(ctx context.Context) ([]domain.Tag, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listSQL)
	if err != nil {
		return nil, fmt.Errorf("list tags: %w", err)
	}
	defer rows.Close()

	tags := []domain.Tag{}
	for rows.Next() {
		var t domain.Tag
		if err := rows.Scan(&t.Name); err != nil {
			return nil, fmt.Errorf("scan tag: %w", err)
		}
		tags = append(tags, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list tags: %w", err)
	}

	return tags, nil
}

// Create registers a new tag. Returns domain.ErrAlreadyExists when the name
// is taken.
func (r *Repo) Create(ctx context.Context, name string) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Insert("tags").
		Columns("tag_name").
		Values(name).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}

	if _, err := q.Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "tag", name)
	}
	return nil
}

// Delete removes a tag. The question_tags FK cascades, so every link to
// questions disappears in the same statement. Returns domain.ErrNotFound
// when no such tag exists.
func (r *Repo) Delete(ctx context.Context, name string) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	ct, err := q.Exec(ctx, "DELETE FROM tags WHERE tag_name = $1", name)
	if err != nil {
		return postgres.MapError(err, "tag", name)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("tag %q: %w", name, domain.ErrNotFound)
	}
	return nil
}

// Exist reports which of the given names are registered tags.
func (r *Repo) Exist(ctx context.Context, names []string) (map[string]bool, error) {
	found := make(map[string]bool, len(names))
	if len(names) == 0 {
		return found, nil
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, existSQL, names)
	if err != nil {
		return nil, fmt.Errorf("check tags: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan tag: %w", err)
		}
		found[name] = true
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("check tags: %w", err)
	}

	return found, nil
}
