package convert

import (
	"github.com/fieldline/spadl/internal/domain/event"
	"github.com/fieldline/spadl/internal/domain/pitch"
)

// startLocation copies where the event happened, if known.
func startLocation(ev event.Event) *pitch.Point {
	return clonePoint(ev.Coordinates)
}

// endLocation picks where the resulting action ended. A completed
// pass ends where the receiver took the ball, a carry where it was
// recorded to end, a shot where the ball came down. Everything else
// ends where it started. An event without any location keeps an
// unknown end; unknown is not the same as not moving.
func endLocation(ev event.Event) *pitch.Point {
	switch {
	case ev.Kind == event.KindPass && ev.Result == event.ResultComplete && ev.ReceiverCoordinates != nil:
		return clonePoint(ev.ReceiverCoordinates)
	case ev.Kind == event.KindCarry && ev.EndCoordinates != nil:
		return clonePoint(ev.EndCoordinates)
	case ev.Kind == event.KindShot && ev.ResultCoordinates != nil:
		return clonePoint(ev.ResultCoordinates)
	default:
		return clonePoint(ev.Coordinates)
	}
}

func clonePoint(p *pitch.Point) *pitch.Point {
	if p == nil {
		return nil
	}
	q := *p
	return &q
}
