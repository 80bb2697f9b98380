// Package catalogstore implements persistence for the question catalog and
// the curated lists. The server loads both once at startup; the seeder is
// the only writer.
package catalogstore

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/leettrack-dev/leettrack-backend/internal/adapter/postgres"
	"github.com/leettrack-dev/leettrack-backend/internal/domain"
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Repo provides catalog persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new catalog repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const loadQuestionsSQL = `
SELECT question_number, problem
FROM questions
ORDER BY question_number`

const loadListsSQL = `
SELECT name, display_name
FROM lists
ORDER BY position`

const loadListQuestionsSQL = `
SELECT list_name, question_number
FROM list_questions
ORDER BY list_name, position`

// Load reads the whole catalog: every question plus every list with its
// ordered question numbers. Lists come back in their configured display
// order.
func (r *Repo) Load(ctx context.Context) ([]domain.Question, []domain.List, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, loadQuestionsSQL)
	if err != nil {
		return nil, nil, fmt.Errorf("load questions: %w", err)
	}
	defer rows.Close()

	var questions []domain.Question
	for rows.Next() {
		var (
			number int32
			qu     domain.Question
		)
		if err := rows.Scan(&number, &qu.Problem); err != nil {
			return nil, nil, fmt.Errorf("scan question: %w", err)
		}
		qu.Number = int(number)
		questions = append(questions, qu)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("load questions: %w", err)
	}

	listRows, err := q.Query(ctx, loadListsSQL)
	if err != nil {
		return nil, nil, fmt.Errorf("load lists: %w", err)
	}
	defer listRows.Close()

	var lists []domain.List
	index := map[string]int{}
	for listRows.Next() {
		var l domain.List
		if err := listRows.Scan(&l.Name, &l.DisplayName); err != nil {
			return nil, nil, fmt.Errorf("scan list: %w", err)
		}
		index[l.Name] = len(lists)
		lists = append(lists, l)
	}
	if err := listRows.Err(); err != nil {
		return nil, nil, fmt.Errorf("load lists: %w", err)
	}

	memberRows, err := q.Query(ctx, loadListQuestionsSQL)
	if err != nil {
		return nil, nil, fmt.Errorf("load list questions: %w", err)
	}
	defer memberRows.Close()

	for memberRows.Next() {
		var (
			listName string
			number   int32
		)
		if err := memberRows.Scan(&listName, &number); err != nil {
			return nil, nil, fmt.Errorf("scan list question: %w", err)
		}
		i, ok := index[listName]
		if !ok {
			return nil, nil, fmt.Errorf("list question references unknown list %q", listName)
		}
		lists[i].Numbers = append(lists[i].Numbers, int(number))
	}
	if err := memberRows.Err(); err != nil {
		return nil, nil, fmt.Errorf("load list questions: %w", err)
	}

	return questions, lists, nil
}

// UpsertQuestions writes catalog questions in one batch, updating the
// problem title of ones that already exist.
func (r *Repo) UpsertQuestions(ctx context.Context, questions []domain.Question) error {
	if len(questions) == 0 {
		return nil
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)

	batch := &pgx.Batch{}
	for _, qu := range questions {
		sql, args, err := qb.Insert("questions").
			Columns("question_number", "problem").
			Values(int32(qu.Number), qu.Problem).
			Suffix("ON CONFLICT (question_number) DO UPDATE SET problem = EXCLUDED.problem").
			ToSql()
		if err != nil {
			return fmt.Errorf("build question upsert: %w", err)
		}
		batch.Queue(sql, args...)
	}

	br := q.SendBatch(ctx, batch)
	defer br.Close()

	for i := range questions {
		if _, err := br.Exec(); err != nil {
			return postgres.MapError(err, "question", fmt.Sprint(questions[i].Number))
		}
	}
	return nil
}

// ReplaceList rewrites a list definition and its full membership. position
// fixes where the list appears in GET /api/lists. Meant to run inside a
// transaction so readers never see a half-written list.
func (r *Repo) ReplaceList(ctx context.Context, list domain.List, position int) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Insert("lists").
		Columns("name", "display_name", "position").
		Values(list.Name, list.DisplayName, position).
		Suffix("ON CONFLICT (name) DO UPDATE SET display_name = EXCLUDED.display_name, position = EXCLUDED.position").
		ToSql()
	if err != nil {
		return fmt.Errorf("build list upsert: %w", err)
	}
	if _, err := q.Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "list", list.Name)
	}

	if _, err := q.Exec(ctx, "DELETE FROM list_questions WHERE list_name = $1", list.Name); err != nil {
		return fmt.Errorf("clear list questions: %w", err)
	}

	if len(list.Numbers) == 0 {
		return nil
	}

	insert := qb.Insert("list_questions").Columns("list_name", "position", "question_number")
	for i, number := range list.Numbers {
		insert = insert.Values(list.Name, i, int32(number))
	}
	sql, args, err = insert.ToSql()
	if err != nil {
		return fmt.Errorf("build list questions insert: %w", err)
	}
	if _, err := q.Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "list", list.Name)
	}
	return nil
}
