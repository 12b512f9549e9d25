// Package testfeed generates synthetic match feeds for exercising
// the conversion pipeline without real provider data. Feeds come out
// in a provider-native top-left coordinate system, so a conversion of
// a generated match covers the full normalization path.
package testfeed

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/fieldline/spadl/internal/domain/event"
	"github.com/fieldline/spadl/internal/domain/pitch"
)

// Default generation configuration constants.
const (
	defaultEvents = 200
	defaultHome   = "home"
	defaultAway   = "away"
	rosterSize    = 11

	// Provider-native pitch extents.
	pitchLength = 120.0
	pitchWidth  = 80.0

	// Every missingIDStride-th event ships without an id to exercise
	// id backfill on decode.
	missingIDStride = 20
)

// Bounds for the per-event kind draw, out of 100.
const (
	drawPass     = 58
	drawCarry    = 73
	drawTakeOn   = 81
	drawShot     = 88
	drawRecovery = 94
)

// Config holds configuration for feed generation.
type Config struct {
	GameID     string // match identifier; generated when empty
	HomeTeamID string // defaults to "home"
	AwayTeamID string // defaults to "away"
	Events     int    // number of events to generate
	Seed       int64  // rng seed; 0 seeds from the clock
}

// Stats holds generation statistics.
type Stats struct {
	Events int
	ByKind map[string]int
}

// Generate builds one synthetic match dataset. The same seed yields
// the same match.
func Generate(ctx context.Context, cfg Config) (*event.Dataset, *Stats, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, fmt.Errorf("generate feed: %w", err)
	}
	if cfg.Events <= 0 {
		cfg.Events = defaultEvents
	}
	if cfg.GameID == "" {
		cfg.GameID = "match-" + uuid.NewString()[:8]
	}
	if cfg.HomeTeamID == "" {
		cfg.HomeTeamID = defaultHome
	}
	if cfg.AwayTeamID == "" {
		cfg.AwayTeamID = defaultAway
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	g := &generator{
		cfg: cfg,
		rng: rand.New(rand.NewSource(seed)), //nolint:gosec // deterministic seed for reproducible feeds
		stats: &Stats{
			ByKind: make(map[string]int),
		},
		team: cfg.HomeTeamID,
		pos:  pitch.Point{X: pitchLength / 2, Y: pitchWidth / 2},
	}

	ds := &event.Dataset{
		Metadata: event.Metadata{
			GameID:     cfg.GameID,
			Provider:   "testfeed",
			HomeTeamID: cfg.HomeTeamID,
			AwayTeamID: cfg.AwayTeamID,
			CoordinateSystem: pitch.System{
				Origin:   pitch.OriginTopLeft,
				Vertical: pitch.TopToBottom,
				X:        pitch.Dimension{Min: 0, Max: pitchLength},
				Y:        pitch.Dimension{Min: 0, Max: pitchWidth},
			},
		},
		Events: make([]event.Event, 0, cfg.Events),
	}

	// Two halves, clock restarting at the break.
	half := cfg.Events / 2
	for i := 0; i < cfg.Events; i++ {
		if i%64 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, nil, fmt.Errorf("generate feed: %w", err)
			}
		}
		period := 1
		if i >= half {
			period = 2
		}
		if i == half {
			g.clock = 0
			g.team = cfg.AwayTeamID
			g.pos = pitch.Point{X: pitchLength / 2, Y: pitchWidth / 2}
		}

		ev := g.next(period)
		if i%missingIDStride == missingIDStride-1 {
			ev.ID = ""
		}
		ds.Events = append(ds.Events, ev)
	}

	g.stats.Events = len(ds.Events)
	return ds, g.stats, nil
}

type generator struct {
	cfg   Config
	rng   *rand.Rand
	stats *Stats

	team  string
	pos   pitch.Point
	clock float64
}

// next produces one event and advances the match state.
func (g *generator) next(period int) event.Event {
	g.clock += 1.5 + g.rng.Float64()*5

	ev := event.Event{
		ID:          uuid.NewString(),
		PeriodID:    period,
		Timestamp:   time.Duration(g.clock * float64(time.Second)),
		TeamID:      strptr(g.team),
		PlayerID:    strptr(g.player()),
		Coordinates: clone(g.pos),
	}

	switch draw := g.rng.Intn(100); {
	case draw < drawPass:
		g.fillPass(&ev)
	case draw < drawCarry:
		g.fillCarry(&ev)
	case draw < drawTakeOn:
		g.fillTakeOn(&ev)
	case draw < drawShot:
		g.fillShot(&ev)
	case draw < drawRecovery:
		ev.Kind = event.KindRecovery
	default:
		ev.Kind = event.KindFoulCommitted
		g.swapTeams()
	}

	g.stats.ByKind[ev.Kind.String()]++
	return ev
}

func (g *generator) fillPass(ev *event.Event) {
	ev.Kind = event.KindPass

	qs := event.QualifierSet(0)
	if g.rng.Intn(100) < 8 {
		switch g.rng.Intn(4) {
		case 0:
			qs = qs.With(event.QualifierFreeKick)
		case 1:
			qs = qs.With(event.QualifierCornerKick)
			g.pos = pitch.Point{X: pitchLength, Y: float64(g.rng.Intn(2)) * pitchWidth}
			*ev.Coordinates = g.pos
		case 2:
			qs = qs.With(event.QualifierGoalKick)
		default:
			qs = qs.With(event.QualifierThrowIn)
		}
	}
	switch g.rng.Intn(10) {
	case 0:
		qs = qs.With(event.QualifierHead)
	case 1:
		qs = qs.With(event.QualifierLeftFoot)
	default:
		qs = qs.With(event.QualifierRightFoot)
	}
	if g.rng.Intn(100) < 12 {
		qs = qs.With(event.QualifierCross)
	} else if g.rng.Intn(100) < 10 {
		qs = qs.With(event.QualifierHighPass)
	}
	ev.Qualifiers = qs

	target := g.walk(30)
	switch g.rng.Intn(100) {
	case 0, 1, 2, 3:
		ev.Result = event.ResultOut
		g.swapTeams()
	case 4, 5, 6:
		ev.Result = event.ResultOffside
		g.swapTeams()
	default:
		if g.rng.Intn(100) < 82 {
			ev.Result = event.ResultComplete
			ev.ReceiverCoordinates = clone(target)
			g.pos = target
		} else {
			ev.Result = event.ResultIncomplete
			g.swapTeams()
			g.pos = target
		}
	}
}

func (g *generator) fillCarry(ev *event.Event) {
	ev.Kind = event.KindCarry
	end := g.walk(12)
	ev.EndCoordinates = clone(end)
	g.pos = end
}

func (g *generator) fillTakeOn(ev *event.Event) {
	ev.Kind = event.KindTakeOn
	if g.rng.Intn(100) < 55 {
		ev.Result = event.ResultComplete
	} else {
		ev.Result = event.ResultIncomplete
		g.swapTeams()
	}
}

func (g *generator) fillShot(ev *event.Event) {
	ev.Kind = event.KindShot

	// Shots come from the attacking third.
	g.pos = pitch.Point{
		X: pitchLength - 25 + g.rng.Float64()*23,
		Y: pitchWidth/2 - 15 + g.rng.Float64()*30,
	}
	*ev.Coordinates = g.pos

	qs := event.QualifierSet(0)
	if g.rng.Intn(2) == 0 {
		qs = qs.With(event.QualifierRightFoot)
	} else {
		qs = qs.With(event.QualifierLeftFoot)
	}
	if g.rng.Intn(100) < 10 {
		qs = qs.With(event.QualifierHead)
	}
	if g.rng.Intn(100) < 5 {
		qs = qs.With(event.QualifierPenalty)
	}
	ev.Qualifiers = qs

	ev.ResultCoordinates = &pitch.Point{
		X: pitchLength,
		Y: pitchWidth/2 - 4 + g.rng.Float64()*8,
	}

	switch draw := g.rng.Intn(100); {
	case draw < 14:
		ev.Result = event.ResultGoal
	case draw < 16:
		ev.Result = event.ResultOwnGoal
	case draw < 55:
		ev.Result = event.ResultSaved
		g.swapTeams()
	case draw < 65:
		ev.Result = event.ResultPost
		g.swapTeams()
	default:
		ev.Result = event.ResultOffTarget
		g.swapTeams()
	}
}

// walk moves the ball up to spread meters along each axis, clamped to
// the pitch.
func (g *generator) walk(spread float64) pitch.Point {
	return pitch.Point{
		X: clamp(g.pos.X+(g.rng.Float64()*2-1)*spread, 0, pitchLength),
		Y: clamp(g.pos.Y+(g.rng.Float64()*2-1)*spread, 0, pitchWidth),
	}
}

func (g *generator) swapTeams() {
	if g.team == g.cfg.HomeTeamID {
		g.team = g.cfg.AwayTeamID
	} else {
		g.team = g.cfg.HomeTeamID
	}
}

func (g *generator) player() string {
	return fmt.Sprintf("%s-p%d", g.team, 1+g.rng.Intn(rosterSize))
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clone(p pitch.Point) *pitch.Point {
	q := p
	return &q
}

func strptr(s string) *string {
	return &s
}
