package catalog

import (
	"context"
	"log/slog"
	"time"

	"github.com/nao1215/solarreport/internal/model"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is the number of files parsed at the same time.
const DefaultConcurrency = 4

// BatchLoader loads several catalog files concurrently and merges them.
type BatchLoader struct {
	// concurrency is the maximum number of files parsed at once.
	concurrency int

	logger *slog.Logger
}

// BatchOption configures a BatchLoader.
type BatchOption func(*BatchLoader)

// WithConcurrency sets the maximum number of files parsed at once.
// Non-positive values are ignored.
func WithConcurrency(n int) BatchOption {
	return func(b *BatchLoader) {
		if n > 0 {
			b.concurrency = n
		}
	}
}

// WithBatchLogger sets a custom logger for batch loading.
func WithBatchLogger(logger *slog.Logger) BatchOption {
	return func(b *BatchLoader) {
		b.logger = logger
	}
}

// NewBatchLoader creates a BatchLoader.
func NewBatchLoader(opts ...BatchOption) *BatchLoader {
	b := &BatchLoader{
		concurrency: DefaultConcurrency,
	}

	for _, opt := range opts {
		opt(b)
	}

	if b.logger == nil {
		b.logger = slog.Default()
	}

	return b
}

// LoadAll parses every file in paths and merges them into one catalog in
// the order the paths were given, regardless of which file finished first.
// The first failing file cancels the remaining work and its error is
// returned. The merged catalog is validated again so that planet ids stay
// unique across files.
func (b *BatchLoader) LoadAll(ctx context.Context, paths []string) (*model.Catalog, error) {
	if len(paths) == 0 {
		return nil, ErrNoCatalogFiles
	}

	b.logger.Info("loading catalogs",
		"files", len(paths),
		"concurrency", b.concurrency,
	)
	startTime := time.Now()

	// Each goroutine writes only its own index.
	results := make([]*model.Catalog, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(b.concurrency)

	for i, path := range paths {
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			c, err := Load(path)
			if err != nil {
				return err
			}
			results[i] = c

			b.logger.Debug("catalog loaded",
				"path", path,
				"planets", len(c.Planets),
				"moons", len(c.Moons),
			)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	merged := &model.Catalog{}
	for _, c := range results {
		merged.Merge(c)
	}
	if err := Validate(merged); err != nil {
		return nil, err
	}

	b.logger.Info("catalogs loaded",
		"planets", len(merged.Planets),
		"elapsed", time.Since(startTime),
	)

	return merged, nil
}

// LoadAll loads paths with a default BatchLoader.
func LoadAll(ctx context.Context, paths ...string) (*model.Catalog, error) {
	return NewBatchLoader().LoadAll(ctx, paths)
}
