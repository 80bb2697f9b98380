// Package state implements the question state repository: the
// question_status table plus the question_tags M2M table. A question with
// no row has the zero state; reads never fail on absence.
package state

import (
	"context"
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/leettrack-dev/leettrack-backend/internal/adapter/postgres"
	"github.com/leettrack-dev/leettrack-backend/internal/domain"
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Repo provides question state persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new question state repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const getStatusSQL = `
SELECT done, difficulty
FROM question_status
WHERE question_number = $1`

const getTagsSQL = `
SELECT tag_name
FROM question_tags
WHERE question_number = $1
ORDER BY tag_name`

const getStatusByNumbersSQL = `
SELECT question_number, done, difficulty
FROM question_status
WHERE question_number = ANY($1::int4[])`

const getTagsByNumbersSQL = `
SELECT question_number, tag_name
FROM question_tags
WHERE question_number = ANY($1::int4[])
ORDER BY question_number, tag_name`

const countDoneSQL = `
SELECT count(*)
FROM question_status
WHERE question_number = ANY($1::int4[]) AND done`

// Get returns the state of one question. A question without a stored row
// yields the zero state, not an error.
func (r *Repo) Get(ctx context.Context, number int) (domain.QuestionState, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	s := domain.ZeroState(number)

	var done bool
	var difficulty string
	err := q.QueryRow(ctx, getStatusSQL, int32(number)).Scan(&done, &difficulty)
	switch {
	case err == nil:
		s.Done = done
		s.Difficulty = domain.Difficulty(difficulty)
	case errors.Is(err, pgx.ErrNoRows):
		// zero state
	default:
		return domain.QuestionState{}, postgres.MapError(err, "question_status", fmt.Sprint(number))
	}

	rows, err := q.Query(ctx, getTagsSQL, int32(number))
	if err != nil {
		return domain.QuestionState{}, fmt.Errorf("get question tags: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var tag string
		if err := rows.Scan(&tag); err != nil {
			return domain.QuestionState{}, fmt.Errorf("scan question tag: %w", err)
		}
		s.Tags = append(s.Tags, tag)
	}
	if err := rows.Err(); err != nil {
		return domain.QuestionState{}, fmt.Errorf("get question tags: %w", err)
	}

	return s, nil
}

// GetByNumbers returns the stored states for the given question numbers,
// keyed by number. Numbers without a row are absent from the map; the
// caller fills in zero states.
func (r *Repo) GetByNumbers(ctx context.Context, numbers []int) (map[int]domain.QuestionState, error) {
	states := make(map[int]domain.QuestionState, len(numbers))
	if len(numbers) == 0 {
		return states, nil
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	arg := toInt32(numbers)

	rows, err := q.Query(ctx, getStatusByNumbersSQL, arg)
	if err != nil {
		return nil, fmt.Errorf("get question statuses: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			number     int32
			done       bool
			difficulty string
		)
		if err := rows.Scan(&number, &done, &difficulty); err != nil {
			return nil, fmt.Errorf("scan question status: %w", err)
		}
		s := domain.ZeroState(int(number))
		s.Done = done
		s.Difficulty = domain.Difficulty(difficulty)
		states[int(number)] = s
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("get question statuses: %w", err)
	}

	tagRows, err := q.Query(ctx, getTagsByNumbersSQL, arg)
	if err != nil {
		return nil, fmt.Errorf("get question tags: %w", err)
	}
	defer tagRows.Close()

	for tagRows.Next() {
		var (
			number int32
			tag    string
		)
		if err := tagRows.Scan(&number, &tag); err != nil {
			return nil, fmt.Errorf("scan question tag: %w", err)
		}
		s, ok := states[int(number)]
		if !ok {
			s = domain.ZeroState(int(number))
		}
		s.Tags = append(s.Tags, tag)
		states[int(number)] = s
	}
	if err := tagRows.Err(); err != nil {
		return nil, fmt.Errorf("get question tags: %w", err)
	}

	return states, nil
}

// Upsert applies a partial update to a question's status row, creating the
// row when absent. Nil fields keep their stored (or default) values.
func (r *Repo) Upsert(ctx context.Context, number int, params domain.QuestionStateUpdate) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	done := false
	if params.Done != nil {
		done = *params.Done
	}
	difficulty := domain.DifficultyUnset
	if params.Difficulty != nil {
		difficulty = *params.Difficulty
	}

	// Only the provided fields overwrite an existing row.
	var sets []string
	if params.Done != nil {
		sets = append(sets, "done = EXCLUDED.done")
	}
	if params.Difficulty != nil {
		sets = append(sets, "difficulty = EXCLUDED.difficulty")
	}
	suffix := "ON CONFLICT (question_number) DO NOTHING"
	if len(sets) > 0 {
		suffix = "ON CONFLICT (question_number) DO UPDATE SET " + strings.Join(sets, ", ")
	}

	sql, args, err := qb.Insert("question_status").
		Columns("question_number", "done", "difficulty").
		Values(int32(number), done, difficulty.String()).
		Suffix(suffix).
		ToSql()
	if err != nil {
		return fmt.Errorf("build upsert: %w", err)
	}

	if _, err := q.Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "question_status", fmt.Sprint(number))
	}
	return nil
}

// ReplaceTags replaces the full tag set of a question. Meant to run inside
// a transaction together with tag existence validation.
func (r *Repo) ReplaceTags(ctx context.Context, number int, tags []string) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := q.Exec(ctx,
		"DELETE FROM question_tags WHERE question_number = $1", int32(number),
	); err != nil {
		return fmt.Errorf("clear question tags: %w", err)
	}

	if len(tags) == 0 {
		return nil
	}

	insert := qb.Insert("question_tags").Columns("question_number", "tag_name")
	for _, tag := range tags {
		insert = insert.Values(int32(number), tag)
	}

	sql, args, err := insert.ToSql()
	if err != nil {
		return fmt.Errorf("build tags insert: %w", err)
	}

	if _, err := q.Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "question_tags", fmt.Sprint(number))
	}
	return nil
}

// CountDone returns how many of the given question numbers are marked done.
func (r *Repo) CountDone(ctx context.Context, numbers []int) (int, error) {
	if len(numbers) == 0 {
		return 0, nil
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)

	var count int
	if err := q.QueryRow(ctx, countDoneSQL, toInt32(numbers)).Scan(&count); err != nil {
		return 0, fmt.Errorf("count done: %w", err)
	}
	return count, nil
}

func toInt32(numbers []int) []int32 {
	out := make([]int32, len(numbers))
	for i, n := range numbers {
		out[i] = int32(n)
	}
	return out
}
