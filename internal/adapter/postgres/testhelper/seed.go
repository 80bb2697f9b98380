package testhelper

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/leettrack-dev/leettrack-backend/internal/domain"
)

// questionSeq hands out unique question numbers so parallel tests sharing
// one database never collide.
var (
	questionSeq atomic.Int32
	listSeq     atomic.Int32
)

// SeedQuestions inserts n catalog questions with unique numbers and
// generated problem titles, and returns them.
func SeedQuestions(t *testing.T, pool *pgxpool.Pool, n int) []domain.Question {
	t.Helper()
	ctx := context.Background()

	questions := make([]domain.Question, 0, n)
	for i := 0; i < n; i++ {
		q := domain.Question{
			Number:  int(questionSeq.Add(1)),
			Problem: "Problem " + uuid.New().String()[:8],
		}
		_, err := pool.Exec(ctx,
			`INSERT INTO questions (question_number, problem) VALUES ($1, $2)
			 ON CONFLICT (question_number) DO UPDATE SET problem = EXCLUDED.problem`,
			int32(q.Number), q.Problem,
		)
		if err != nil {
			t.Fatalf("testhelper: SeedQuestions insert question %d: %v", q.Number, err)
		}
		questions = append(questions, q)
	}
	return questions
}

// SeedList inserts a list with the given ordered question numbers. The
// questions must already exist (see SeedQuestions).
func SeedList(t *testing.T, pool *pgxpool.Pool, name string, numbers []int) domain.List {
	t.Helper()
	ctx := context.Background()

	list := domain.List{Name: name, DisplayName: "List " + name, Numbers: numbers}

	position := NextListPosition()
	_, err := pool.Exec(ctx,
		`INSERT INTO lists (name, display_name, position) VALUES ($1, $2, $3)`,
		list.Name, list.DisplayName, position,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedList insert list: %v", err)
	}

	for i, number := range numbers {
		_, err := pool.Exec(ctx,
			`INSERT INTO list_questions (list_name, position, question_number) VALUES ($1, $2, $3)`,
			list.Name, i, int32(number),
		)
		if err != nil {
			t.Fatalf("testhelper: SeedList insert member %d: %v", number, err)
		}
	}
	return list
}

// NextListPosition hands out a unique list display position.
func NextListPosition() int {
	return int(listSeq.Add(1))
}

// SeedTag registers a tag.
func SeedTag(t *testing.T, pool *pgxpool.Pool, name string) domain.Tag {
	t.Helper()

	_, err := pool.Exec(context.Background(),
		`INSERT INTO tags (tag_name) VALUES ($1)`, name)
	if err != nil {
		t.Fatalf("testhelper: SeedTag insert %q: %v", name, err)
	}
	return domain.Tag{Name: name}
}

// SeedSession creates a user session and returns it.
func SeedSession(t *testing.T, pool *pgxpool.Pool) domain.Session {
	t.Helper()

	suffix := uuid.New().String()[:8]
	s := domain.Session{
		ID:        uuid.New(),
		GitHubID:  int64(len(suffix)) * 1000,
		Username:  "testuser-" + suffix,
		AvatarURL: "https://example.com/avatar/" + suffix + ".png",
		CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO user_sessions (session_id, github_id, username, avatar_url, created_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		s.ID, s.GitHubID, s.Username, s.AvatarURL, s.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedSession insert: %v", err)
	}
	return s
}
