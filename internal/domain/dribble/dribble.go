// Package dribble synthesizes dribble actions. Providers rarely emit
// an explicit event for a player moving with the ball, so the gap
// between two consecutive actions of the same team is filled with a
// dribble when the distance and timing make one plausible.
package dribble

import (
	"time"

	"github.com/fieldline/spadl/internal/domain/spadl"
)

// Default insertion thresholds.
const (
	defaultMinLength   = 3.0  // meters
	defaultMaxLength   = 60.0 // meters
	defaultMaxDuration = 10 * time.Second
)

// Option applies a configuration option to the inserter.
type Option func(*inserter)

// WithMinLength sets the minimum gap, in meters, that still counts as
// a dribble. Anything shorter is treated as the same spot.
func WithMinLength(meters float64) Option {
	return func(in *inserter) {
		if meters > 0 {
			in.minLength = meters
		}
	}
}

// WithMaxLength sets the maximum gap, in meters, that still counts as
// a dribble. Anything longer was a ball travelling, not a player.
func WithMaxLength(meters float64) Option {
	return func(in *inserter) {
		if meters > 0 {
			in.maxLength = meters
		}
	}
}

// WithMaxDuration sets how much time may pass between two actions for
// a dribble to connect them.
func WithMaxDuration(d time.Duration) Option {
	return func(in *inserter) {
		if d > 0 {
			in.maxDuration = d
		}
	}
}

type inserter struct {
	minLength   float64
	maxLength   float64
	maxDuration time.Duration
}

// Add inserts a synthetic dribble between every pair of consecutive
// actions of the same team in the same period of the same game whose
// locations are between the length thresholds apart and whose clocks
// are close enough. The input must already be in canonical order; the
// result is resorted and renumbered. The second return value is the
// number of dribbles inserted.
func Add(actions []spadl.Action, opts ...Option) ([]spadl.Action, int) {
	in := &inserter{
		minLength:   defaultMinLength,
		maxLength:   defaultMaxLength,
		maxDuration: defaultMaxDuration,
	}
	for _, opt := range opts {
		opt(in)
	}

	out := make([]spadl.Action, 0, len(actions))
	inserted := 0
	for i, a := range actions {
		out = append(out, a)
		if i+1 == len(actions) {
			break
		}
		if d, ok := in.between(a, actions[i+1]); ok {
			out = append(out, d)
			inserted++
		}
	}

	spadl.SortTable(out)
	spadl.Renumber(out)
	return out, inserted
}

// between decides whether a dribble connects a to b and builds it.
// The dribble runs from where a ended to where b started, halfway
// between the two clocks, credited to the player acting in b.
func (in *inserter) between(a, b spadl.Action) (spadl.Action, bool) {
	if a.GameID != b.GameID || a.PeriodID != b.PeriodID {
		return spadl.Action{}, false
	}
	if a.TeamID == nil || b.TeamID == nil || *a.TeamID != *b.TeamID {
		return spadl.Action{}, false
	}
	if a.End == nil || b.Start == nil {
		return spadl.Action{}, false
	}

	distSq := a.End.DistSq(*b.Start)
	if distSq < in.minLength*in.minLength || distSq > in.maxLength*in.maxLength {
		return spadl.Action{}, false
	}
	if b.TimeSeconds-a.TimeSeconds >= in.maxDuration.Seconds() {
		return spadl.Action{}, false
	}

	start := *a.End
	end := *b.Start
	return spadl.Action{
		GameID:          b.GameID,
		OriginalEventID: a.OriginalEventID,
		PeriodID:        b.PeriodID,
		TimeSeconds:     (a.TimeSeconds + b.TimeSeconds) / 2,
		TeamID:          b.TeamID,
		PlayerID:        b.PlayerID,
		Start:           &start,
		End:             &end,
		Type:            spadl.TypeDribble,
		Result:          spadl.ResultSuccess,
		BodyPart:        spadl.BodyPartFoot,
	}, true
}
