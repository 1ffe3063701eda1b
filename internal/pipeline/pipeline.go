package pipeline

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/panjf2000/ants/v2"

	"cmsearch/internal/config"
	"cmsearch/internal/fasta"
	"cmsearch/internal/model"
	"cmsearch/internal/search"
)

// Pipeline fans the per-sequence search out across a fixed-size worker pool
// and aggregates the results deterministically. The model is the only shared
// object; it is immutable, so workers need no locks of their own.
type Pipeline struct {
	model  *model.Model
	cfg    config.Search
	logger *slog.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline) error

// WithLogger sets a custom logger. Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) error {
		if logger == nil {
			logger = slog.Default()
		}
		p.logger = logger
		return nil
	}
}

// New creates a Pipeline for one search run.
func New(m *model.Model, cfg config.Search, opts ...Option) (*Pipeline, error) {
	if m == nil {
		return nil, fmt.Errorf("pipeline: nil model")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	p := &Pipeline{model: m, cfg: cfg, logger: slog.Default()}
	for _, opt := range opts {
		if err := opt(p); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// Search runs both strands of every sequence through the filter and refine
// stages and returns the aggregated hit list. Output order is deterministic
// for a given input set regardless of worker count or completion order.
func (p *Pipeline) Search(seqs []fasta.Record) ([]search.Hit, error) {
	p.logger.Info("starting search pipeline",
		"sequences", len(seqs), "workers", p.cfg.Threads)

	pool, err := ants.NewPool(p.cfg.Threads)
	if err != nil {
		return nil, fmt.Errorf("pipeline: worker pool: %w", err)
	}
	defer pool.Release()

	var (
		mu  sync.Mutex
		wg  sync.WaitGroup
		raw []search.Hit
	)
	for _, rec := range seqs {
		rec := rec
		wg.Add(1)
		submitErr := pool.Submit(func() {
			defer wg.Done()
			hits := search.Sequence(p.model, rec)
			if len(hits) == 0 {
				return
			}
			mu.Lock()
			raw = append(raw, hits...)
			mu.Unlock()
		})
		if submitErr != nil {
			wg.Done()
			wg.Wait()
			return nil, fmt.Errorf("pipeline: submit: %w", submitErr)
		}
	}
	wg.Wait()

	p.logger.Info("search pipeline collected hits", "raw", len(raw))
	hits := Aggregate(raw, p.cfg)
	p.logger.Info("search pipeline finished", "hits", len(hits))
	return hits, nil
}
