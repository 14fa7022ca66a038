package app

import (
	"context"
	"fmt"

	"github.com/abhisek/skillforge/internal/content"
	"github.com/abhisek/skillforge/internal/evaluate"
	"github.com/abhisek/skillforge/internal/llm"
	"github.com/abhisek/skillforge/internal/mastery"
	"github.com/abhisek/skillforge/internal/spacedrep"
	"github.com/abhisek/skillforge/internal/store"
)

// App wires the engine together: persistence, the generation provider,
// and the domain services on top of them.
type App struct {
	Store     *store.Store
	Provider  llm.Provider
	Content   *content.Service
	Evaluator *evaluate.Evaluator
	Scheduler *spacedrep.Scheduler
	Mastery   *mastery.Service
}

// Options tweaks construction. A nil Provider means "build one from the
// environment"; set SkipProvider for commands that never call out.
type Options struct {
	Provider     llm.Provider
	SkipProvider bool
}

// New opens the store at dbPath and wires all services.
func New(ctx context.Context, dbPath string, opts Options) (*App, error) {
	s, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	provider := opts.Provider
	if provider == nil && !opts.SkipProvider {
		provider, err = llm.NewProvider(ctx, llm.ConfigFromEnv(), s.RequestLog())
		if err != nil {
			s.Close()
			return nil, fmt.Errorf("configure provider: %w", err)
		}
	}

	evaluator := evaluate.NewEvaluator(provider, evaluate.DefaultConfig())
	scheduler := spacedrep.NewScheduler(s.Reviews())

	return &App{
		Store:     s,
		Provider:  provider,
		Content:   content.NewService(provider, s.Catalog(), content.DefaultConfig()),
		Evaluator: evaluator,
		Scheduler: scheduler,
		Mastery: mastery.NewService(mastery.Config{
			Catalog:     s.Catalog(),
			Progress:    s.Progress(),
			Completions: s.Completions(),
			Attempts:    s.Attempts(),
			Evaluator:   evaluator,
			Scheduler:   scheduler,
		}),
	}, nil
}

// Close releases the store.
func (a *App) Close() error {
	return a.Store.Close()
}
