// Package jsonfile is the bundled provider integration. It reads and
// writes match feeds in the canonical JSON format: one object with
// the match metadata, including the provider's coordinate system, and
// the raw event list.
package jsonfile

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/fieldline/spadl/internal/adapters/provider"
	"github.com/fieldline/spadl/internal/domain/event"
	"github.com/fieldline/spadl/internal/domain/pitch"
)

// Name the integration registers under.
const Name = "jsonfile"

func init() {
	provider.Register(Name, &Loader{})
}

// Loader implements provider.Loader for feed files on disk.
type Loader struct{}

// Load reads the feed file at source.
func (l *Loader) Load(ctx context.Context, source string) (*event.Dataset, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("load %s: %w", source, err)
	}
	f, err := os.Open(source)
	if err != nil {
		return nil, fmt.Errorf("load feed: %w", err)
	}
	defer f.Close()

	ds, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", source, err)
	}
	return ds, nil
}

type feed struct {
	Metadata feedMetadata `json:"metadata"`
	Events   []feedEvent  `json:"events"`
}

type feedMetadata struct {
	GameID           string       `json:"game_id"`
	Provider         string       `json:"provider,omitempty"`
	HomeTeamID       string       `json:"home_team_id,omitempty"`
	AwayTeamID       string       `json:"away_team_id,omitempty"`
	CoordinateSystem pitch.System `json:"coordinate_system"`
}

type feedEvent struct {
	ID                  string             `json:"event_id,omitempty"`
	Type                event.Kind         `json:"type"`
	PeriodID            int                `json:"period_id"`
	Timestamp           float64            `json:"timestamp"`
	TeamID              *string            `json:"team_id,omitempty"`
	PlayerID            *string            `json:"player_id,omitempty"`
	Coordinates         *pitch.Point       `json:"coordinates,omitempty"`
	ReceiverCoordinates *pitch.Point       `json:"receiver_coordinates,omitempty"`
	EndCoordinates      *pitch.Point       `json:"end_coordinates,omitempty"`
	ResultCoordinates   *pitch.Point       `json:"result_coordinates,omitempty"`
	Result              event.Result       `json:"result,omitempty"`
	Qualifiers          event.QualifierSet `json:"qualifiers,omitempty"`
}

// Decode reads one feed from r. Events without an id get a generated
// uuid so every action can point back at its source event.
func Decode(r io.Reader) (*event.Dataset, error) {
	var in feed
	dec := json.NewDecoder(r)
	if err := dec.Decode(&in); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFeed, err)
	}
	if in.Metadata.GameID == "" {
		return nil, fmt.Errorf("%w: metadata.game_id is required", ErrInvalidFeed)
	}
	sys := in.Metadata.CoordinateSystem
	if sys.X.Length() <= 0 || sys.Y.Length() <= 0 {
		return nil, fmt.Errorf("%w: degenerate coordinate system", ErrInvalidFeed)
	}

	ds := &event.Dataset{
		Metadata: event.Metadata{
			GameID:           in.Metadata.GameID,
			Provider:         in.Metadata.Provider,
			HomeTeamID:       in.Metadata.HomeTeamID,
			AwayTeamID:       in.Metadata.AwayTeamID,
			CoordinateSystem: sys,
		},
		Events: make([]event.Event, 0, len(in.Events)),
	}
	for _, fe := range in.Events {
		id := fe.ID
		if id == "" {
			id = uuid.NewString()
		}
		ds.Events = append(ds.Events, event.Event{
			ID:                  id,
			Kind:                fe.Type,
			PeriodID:            fe.PeriodID,
			Timestamp:           time.Duration(fe.Timestamp * float64(time.Second)),
			TeamID:              fe.TeamID,
			PlayerID:            fe.PlayerID,
			Coordinates:         fe.Coordinates,
			ReceiverCoordinates: fe.ReceiverCoordinates,
			EndCoordinates:      fe.EndCoordinates,
			ResultCoordinates:   fe.ResultCoordinates,
			Result:              fe.Result,
			Qualifiers:          fe.Qualifiers,
		})
	}
	return ds, nil
}

// Encode writes ds to w in the feed format, indented for fixtures.
func Encode(w io.Writer, ds event.Dataset) error {
	out := feed{
		Metadata: feedMetadata{
			GameID:           ds.Metadata.GameID,
			Provider:         ds.Metadata.Provider,
			HomeTeamID:       ds.Metadata.HomeTeamID,
			AwayTeamID:       ds.Metadata.AwayTeamID,
			CoordinateSystem: ds.Metadata.CoordinateSystem,
		},
		Events: make([]feedEvent, 0, len(ds.Events)),
	}
	for _, ev := range ds.Events {
		out.Events = append(out.Events, feedEvent{
			ID:                  ev.ID,
			Type:                ev.Kind,
			PeriodID:            ev.PeriodID,
			Timestamp:           ev.Timestamp.Seconds(),
			TeamID:              ev.TeamID,
			PlayerID:            ev.PlayerID,
			Coordinates:         ev.Coordinates,
			ReceiverCoordinates: ev.ReceiverCoordinates,
			EndCoordinates:      ev.EndCoordinates,
			ResultCoordinates:   ev.ResultCoordinates,
			Result:              ev.Result,
			Qualifiers:          ev.Qualifiers,
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode feed: %w", err)
	}
	return nil
}

// WriteFile writes ds as a feed file at path.
func WriteFile(path string, ds event.Dataset) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("write feed: %w", err)
	}
	if err := Encode(f, ds); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("write feed: %w", err)
	}
	return nil
}
