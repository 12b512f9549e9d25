// Package convert turns provider event datasets into canonical
// action tables: coordinates normalized to the metric pitch, every
// event classified into the closed vocabulary, non-actions dropped,
// dribbles synthesized and the finished table checked against the
// schema.
package convert

import (
	"context"
	"fmt"
	"time"

	"github.com/fieldline/spadl/internal/domain/dribble"
	"github.com/fieldline/spadl/internal/domain/event"
	"github.com/fieldline/spadl/internal/domain/pitch"
	"github.com/fieldline/spadl/internal/domain/spadl"
	"github.com/fieldline/spadl/pkg/logger"
	"github.com/fieldline/spadl/pkg/metrics"
)

// Option applies a configuration option to the Converter.
type Option func(*Converter)

// WithLogger sets the logger used for progress and summary records.
func WithLogger(log logger.Logger) Option {
	return func(c *Converter) {
		if log != nil {
			c.log = log
		}
	}
}

// WithDribbleOptions forwards threshold options to dribble synthesis.
func WithDribbleOptions(opts ...dribble.Option) Option {
	return func(c *Converter) {
		c.dribbleOpts = append(c.dribbleOpts, opts...)
	}
}

// Converter assembles action tables from event datasets.
type Converter struct {
	log         logger.Logger
	dribbleOpts []dribble.Option
}

// New creates a Converter with configuration options.
func New(opts ...Option) *Converter {
	c := &Converter{
		log: logger.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ToActions converts one match worth of events into the canonical
// action table. homeTeamID names the team attacking in the fixed
// orientation of the output; it is recorded but never flips a
// coordinate, because the orientation is whatever the provider
// recorded, only rescaled. The returned table is in canonical order
// with dense ids and has passed schema validation.
func (c *Converter) ToActions(ctx context.Context, ds event.Dataset, homeTeamID string) ([]spadl.Action, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("convert game %s: %w", ds.Metadata.GameID, err)
	}
	if homeTeamID == "" {
		homeTeamID = ds.Metadata.HomeTeamID
	}

	start := time.Now()
	metrics.RecordEventsRead(len(ds.Events))
	c.log.Debug(ctx, "converting dataset",
		logger.String("game_id", ds.Metadata.GameID),
		logger.String("provider", ds.Metadata.Provider),
		logger.String("home_team_id", homeTeamID),
		logger.Int("events", len(ds.Events)),
	)

	normalized := ds.Transform(pitch.Standard())

	actions := make([]spadl.Action, 0, len(normalized.Events))
	dropped := 0
	for _, ev := range normalized.Events {
		cls := classify(ev)
		if cls.Type == spadl.TypeNonAction {
			dropped++
			metrics.RecordNonActionDropped()
			continue
		}
		actions = append(actions, spadl.Action{
			GameID:          normalized.Metadata.GameID,
			OriginalEventID: ev.ID,
			PeriodID:        ev.PeriodID,
			TimeSeconds:     ev.Timestamp.Seconds(),
			TeamID:          cloneString(ev.TeamID),
			PlayerID:        cloneString(ev.PlayerID),
			Start:           startLocation(ev),
			End:             endLocation(ev),
			Type:            cls.Type,
			Result:          cls.Result,
			BodyPart:        cls.BodyPart,
		})
	}

	spadl.SortTable(actions)
	spadl.Renumber(actions)

	actions, added := dribble.Add(actions, c.dribbleOpts...)
	metrics.RecordDribblesSynthesized(added)
	for _, a := range actions {
		metrics.RecordActionProduced(a.Type.String())
	}

	if err := spadl.ValidateTable(actions); err != nil {
		metrics.RecordSchemaFailure()
		return nil, fmt.Errorf("convert game %s: %w", ds.Metadata.GameID, err)
	}

	metrics.RecordConversion()
	metrics.RecordConversionDuration(float64(time.Since(start).Milliseconds()))
	c.log.Info(ctx, "dataset converted",
		logger.String("game_id", ds.Metadata.GameID),
		logger.Int("actions", len(actions)),
		logger.Int("non_actions", dropped),
		logger.Int("dribbles", added),
		logger.Duration("took", time.Since(start)),
	)
	return actions, nil
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
