package seeder

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/leettrack-dev/leettrack-backend/internal/domain"
)

type catalogStore interface {
	UpsertQuestions(ctx context.Context, questions []domain.Question) error
	ReplaceList(ctx context.Context, list domain.List, position int) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Pipeline seeds the catalog tables from configured CSV sources.
type Pipeline struct {
	store catalogStore
	tx    txManager
	log   *slog.Logger
}

// NewPipeline creates a seeding pipeline.
func NewPipeline(log *slog.Logger, store catalogStore, tx txManager) *Pipeline {
	return &Pipeline{
		store: store,
		tx:    tx,
		log:   log.With("component", "seeder"),
	}
}

// Run parses every source file, then writes the union of all questions and
// every list in a single transaction. Parsing happens first so a broken
// file aborts the run before anything touches the database.
func (p *Pipeline) Run(ctx context.Context, cfg Config) error {
	lists := make([]domain.List, 0, len(cfg.Lists))
	union := make(map[int]domain.Question)
	var questions []domain.Question

	for _, src := range cfg.Lists {
		qs, err := p.parseFile(src.File)
		if err != nil {
			return fmt.Errorf("list %q: %w", src.Name, err)
		}

		list := domain.List{
			Name:        src.Name,
			DisplayName: src.DisplayName,
			Numbers:     make([]int, 0, len(qs)),
		}
		for _, q := range qs {
			list.Numbers = append(list.Numbers, q.Number)
			if prev, ok := union[q.Number]; ok && prev.Problem != q.Problem {
				return fmt.Errorf("question %d has conflicting titles %q and %q",
					q.Number, prev.Problem, q.Problem)
			}
			if _, ok := union[q.Number]; !ok {
				union[q.Number] = q
				questions = append(questions, q)
			}
		}
		lists = append(lists, list)

		p.log.InfoContext(ctx, "parsed list source",
			slog.String("list", src.Name),
			slog.String("file", src.File),
			slog.Int("questions", len(qs)),
		)
	}

	err := p.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := p.store.UpsertQuestions(ctx, questions); err != nil {
			return fmt.Errorf("upsert questions: %w", err)
		}
		for i, list := range lists {
			if err := p.store.ReplaceList(ctx, list, i); err != nil {
				return fmt.Errorf("replace list %q: %w", list.Name, err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	p.log.InfoContext(ctx, "catalog seeded",
		slog.Int("questions", len(questions)),
		slog.Int("lists", len(lists)),
	)
	return nil
}

func (p *Pipeline) parseFile(path string) ([]domain.Question, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	qs, err := ParseCSV(f)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return qs, nil
}
