// Package event contains the provider-facing match event model.
//
// A Dataset is one match worth of events plus the metadata needed to
// interpret them, most importantly the coordinate system locations
// were recorded in. Everything downstream works on a Dataset that has
// been transformed to the metric pitch.
package event

import (
	"time"

	"github.com/fieldline/spadl/internal/domain/pitch"
)

// Event is a single raw match event as a provider recorded it.
// Identifiers and locations a provider may omit are pointers; a nil
// location means neither coordinate is known.
type Event struct {
	ID        string
	Kind      Kind
	PeriodID  int
	Timestamp time.Duration // elapsed time within the period

	TeamID   *string
	PlayerID *string

	Coordinates         *pitch.Point // where the event happened
	ReceiverCoordinates *pitch.Point // pass only: where the receiver took the ball
	EndCoordinates      *pitch.Point // carry only: where the carry ended
	ResultCoordinates   *pitch.Point // shot only: where the ball ended up

	Result     Result
	Qualifiers QualifierSet
}

// Metadata describes the match a set of events belongs to.
type Metadata struct {
	GameID           string
	Provider         string
	HomeTeamID       string
	AwayTeamID       string
	CoordinateSystem pitch.System
}

// Dataset is one match worth of events.
type Dataset struct {
	Metadata Metadata
	Events   []Event
}

// Transform returns a copy of the dataset with every recorded
// location re-expressed in the target coordinate system. Events
// without a location stay without one.
func (d Dataset) Transform(to pitch.System) Dataset {
	from := d.Metadata.CoordinateSystem
	out := d
	out.Metadata.CoordinateSystem = to
	out.Events = make([]Event, len(d.Events))
	for i, ev := range d.Events {
		ev.Coordinates = convertPoint(ev.Coordinates, from, to)
		ev.ReceiverCoordinates = convertPoint(ev.ReceiverCoordinates, from, to)
		ev.EndCoordinates = convertPoint(ev.EndCoordinates, from, to)
		ev.ResultCoordinates = convertPoint(ev.ResultCoordinates, from, to)
		out.Events[i] = ev
	}
	return out
}

func convertPoint(p *pitch.Point, from, to pitch.System) *pitch.Point {
	if p == nil {
		return nil
	}
	q := pitch.Convert(*p, from, to)
	return &q
}
