// Package service wires provider integrations, the conversion
// pipeline and export together behind one entry point.
package service

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"sync"
	"time"

	"github.com/fieldline/spadl/internal/adapters/export"
	"github.com/fieldline/spadl/internal/adapters/provider"
	"github.com/fieldline/spadl/internal/domain/convert"
	"github.com/fieldline/spadl/internal/domain/dribble"
	"github.com/fieldline/spadl/internal/domain/spadl"
	"github.com/fieldline/spadl/pkg/logger"
	"github.com/fieldline/spadl/pkg/metrics"
)

// Default service configuration constants.
const (
	defaultProvider = "jsonfile"
)

// Service converts provider match feeds into action tables.
type Service struct {
	// Configuration
	providerName string
	homeTeamID   string
	format       export.Format
	workers      int
	dribbleOpts  []dribble.Option

	// Core components
	converter *convert.Converter

	// Logging
	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithProvider selects the provider integration by name.
func WithProvider(name string) Option {
	return func(s *Service) {
		if name != "" {
			s.providerName = name
		}
	}
}

// WithHomeTeamID pins the team attacking in the fixed orientation of
// the output. Empty defers to the feed metadata.
func WithHomeTeamID(id string) Option {
	return func(s *Service) {
		s.homeTeamID = id
	}
}

// WithFormat sets the export encoding.
func WithFormat(f export.Format) Option {
	return func(s *Service) {
		if f != "" {
			s.format = f
		}
	}
}

// WithBatchWorkers caps how many matches convert concurrently in
// ConvertBatch.
func WithBatchWorkers(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.workers = n
		}
	}
}

// WithDribbleOptions forwards threshold options to dribble synthesis.
func WithDribbleOptions(opts ...dribble.Option) Option {
	return func(s *Service) {
		s.dribbleOpts = append(s.dribbleOpts, opts...)
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(log logger.Logger) Option {
	return func(s *Service) {
		if log != nil {
			s.logger = log
		}
	}
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		providerName: defaultProvider,
		format:       export.FormatCSV,
		workers:      runtime.NumCPU(),
		logger:       logger.Nop(),
	}

	// Apply all options
	for _, opt := range opts {
		opt(s)
	}

	s.converter = convert.New(
		convert.WithLogger(s.logger),
		convert.WithDribbleOptions(s.dribbleOpts...),
	)

	return s
}

// Convert loads one match from the configured provider and runs the
// conversion pipeline. The integration is looked up before anything
// is read, so a provider that was not compiled in fails fast with
// provider.ErrMissingIntegration.
func (s *Service) Convert(ctx context.Context, source string) ([]spadl.Action, error) {
	loader, err := provider.Lookup(s.providerName)
	if err != nil {
		metrics.RecordMissingIntegration()
		s.logger.Error(ctx, "provider integration missing",
			logger.String("provider", s.providerName),
			logger.Err(err),
		)
		return nil, err
	}

	ds, err := loader.Load(ctx, source)
	if err != nil {
		return nil, fmt.Errorf("load events from %q: %w", source, err)
	}

	return s.converter.ToActions(ctx, *ds, s.homeTeamID)
}

// ConvertToFile converts one match and writes the table to dest in
// the configured format. A dest of "-" writes to stdout.
func (s *Service) ConvertToFile(ctx context.Context, source, dest string) error {
	actions, err := s.Convert(ctx, source)
	if err != nil {
		return err
	}

	if dest == "" || dest == "-" {
		return export.Write(os.Stdout, s.format, actions)
	}

	f, err := os.Create(dest)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	if err := export.Write(f, s.format, actions); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close output: %w", err)
	}

	s.logger.Info(ctx, "action table written",
		logger.String("source", source),
		logger.String("dest", dest),
		logger.String("format", string(s.format)),
		logger.Int("actions", len(actions)),
	)
	return nil
}

// BatchResult is the outcome of converting one source in a batch.
type BatchResult struct {
	Source  string
	Actions []spadl.Action
	Err     error
}

// ConvertBatch converts many sources with a bounded number of
// concurrent conversions. Results come back in input order, and a
// failing source lands in its result instead of stopping the batch.
// The integration is checked once before any work starts.
func (s *Service) ConvertBatch(ctx context.Context, sources []string) ([]BatchResult, error) {
	if _, err := provider.Lookup(s.providerName); err != nil {
		metrics.RecordMissingIntegration()
		return nil, err
	}

	start := time.Now()
	results := make([]BatchResult, len(sources))
	jobs := make(chan int)

	workers := s.workers
	if workers > len(sources) {
		workers = len(sources)
	}

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				actions, err := s.Convert(ctx, sources[i])
				results[i] = BatchResult{Source: sources[i], Actions: actions, Err: err}
			}
		}()
	}

	// Workers drain the job channel even after cancellation; a
	// canceled context surfaces as a per-source error instead of a
	// stuck batch.
	for i := range sources {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
		}
	}
	s.logger.Info(ctx, "batch converted",
		logger.Int("sources", len(sources)),
		logger.Int("failed", failed),
		logger.Int("workers", workers),
		logger.Duration("took", time.Since(start)),
	)
	return results, nil
}
