package convert

import (
	"context"
	"errors"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/fieldline/spadl/internal/domain/dribble"
	"github.com/fieldline/spadl/internal/domain/event"
	"github.com/fieldline/spadl/internal/domain/pitch"
	"github.com/fieldline/spadl/internal/domain/spadl"
)

func strp(s string) *string {
	return &s
}

// fixtureDataset is a small match in a top-left 120x80 provider
// system, with events deliberately out of order.
func fixtureDataset() event.Dataset {
	home, away := strp("h"), strp("a")
	return event.Dataset{
		Metadata: event.Metadata{
			GameID:     "g-42",
			Provider:   "testfeed",
			HomeTeamID: "h",
			AwayTeamID: "a",
			CoordinateSystem: pitch.System{
				Origin:   pitch.OriginTopLeft,
				Vertical: pitch.TopToBottom,
				X:        pitch.Dimension{Min: 0, Max: 120},
				Y:        pitch.Dimension{Min: 0, Max: 80},
			},
		},
		Events: []event.Event{
			{
				ID:                "e-shot",
				Kind:              event.KindShot,
				PeriodID:          1,
				Timestamp:         20 * time.Second,
				TeamID:            home,
				PlayerID:          strp("p2"),
				Coordinates:       pt(108, 40),
				ResultCoordinates: pt(120, 40),
				Result:            event.ResultGoal,
				Qualifiers:        event.Qualifiers(event.QualifierRightFoot),
			},
			{
				ID:        "e-card",
				Kind:      event.KindCard,
				PeriodID:  1,
				Timestamp: 30 * time.Second,
				TeamID:    away,
			},
			{
				ID:                  "e-ko",
				Kind:                event.KindPass,
				PeriodID:            1,
				Timestamp:           0,
				TeamID:              home,
				PlayerID:            strp("p1"),
				Coordinates:         pt(60, 40),
				ReceiverCoordinates: pt(50, 40),
				Result:              event.ResultComplete,
				Qualifiers:          event.Qualifiers(event.QualifierKickOff),
			},
			{
				ID:          "e-takeon",
				Kind:        event.KindTakeOn,
				PeriodID:    2,
				Timestamp:   3 * time.Second,
				TeamID:      away,
				PlayerID:    strp("p9"),
				Coordinates: pt(30, 40),
				Result:      event.ResultComplete,
			},
			{
				ID:          "e-rec",
				Kind:        event.KindRecovery,
				PeriodID:    2,
				Timestamp:   0,
				TeamID:      away,
				PlayerID:    strp("p8"),
				Coordinates: pt(20, 45),
			},
			{
				ID:                  "e-pass2",
				Kind:                event.KindPass,
				PeriodID:            1,
				Timestamp:           5 * time.Second,
				TeamID:              home,
				PlayerID:            strp("p1"),
				Coordinates:         pt(50, 40),
				ReceiverCoordinates: pt(90, 30),
				Result:              event.ResultIncomplete,
			},
		},
	}
}

func TestToActions(t *testing.T) {
	Convey("Given a scrambled provider dataset", t, func() {
		c := New()
		ds := fixtureDataset()

		Convey("When converting it", func() {
			got, err := c.ToActions(context.Background(), ds, "h")
			So(err, ShouldBeNil)

			Convey("Then non-actions are gone and a dribble fills the gap", func() {
				types := make([]spadl.ActionType, 0, len(got))
				for _, a := range got {
					types = append(types, a.Type)
				}
				So(types, ShouldResemble, []spadl.ActionType{
					spadl.TypePass,
					spadl.TypePass,
					spadl.TypeShot,
					spadl.TypeInterception,
					spadl.TypeDribble,
					spadl.TypeTakeOn,
				})
			})

			Convey("Then the table is in canonical order with dense ids", func() {
				for i, a := range got {
					So(a.ActionID, ShouldEqual, i)
					So(a.GameID, ShouldEqual, "g-42")
					if i > 0 {
						prev := got[i-1]
						ordered := prev.PeriodID < a.PeriodID ||
							(prev.PeriodID == a.PeriodID && prev.TimeSeconds <= a.TimeSeconds)
						So(ordered, ShouldBeTrue)
					}
				}
				So(spadl.ValidateTable(got), ShouldBeNil)
			})

			Convey("Then locations are rescaled and flipped into the metric pitch", func() {
				kickoff := got[0]
				So(kickoff.Start.X, ShouldAlmostEqual, 52.5)
				So(kickoff.Start.Y, ShouldAlmostEqual, 34)
				So(kickoff.End.X, ShouldAlmostEqual, 43.75)
				So(kickoff.End.Y, ShouldAlmostEqual, 34)

				shot := got[2]
				So(shot.OriginalEventID, ShouldEqual, "e-shot")
				So(shot.End.X, ShouldAlmostEqual, 105)
				So(shot.End.Y, ShouldAlmostEqual, 34)

				recovery := got[3]
				So(recovery.Start.X, ShouldAlmostEqual, 17.5)
				So(recovery.Start.Y, ShouldAlmostEqual, 29.75)
			})

			Convey("Then clocks are carried over in seconds", func() {
				So(got[1].TimeSeconds, ShouldAlmostEqual, 5)
				So(got[2].TimeSeconds, ShouldAlmostEqual, 20)
			})

			Convey("Then an incomplete pass ends where it started", func() {
				incomplete := got[1]
				So(incomplete.Result, ShouldEqual, spadl.ResultFail)
				So(incomplete.End.X, ShouldAlmostEqual, incomplete.Start.X)
				So(incomplete.End.Y, ShouldAlmostEqual, incomplete.Start.Y)
			})

			Convey("Then the synthetic dribble sits between its neighbors", func() {
				d := got[4]
				So(d.PeriodID, ShouldEqual, 2)
				So(d.TimeSeconds, ShouldAlmostEqual, 1.5)
				So(*d.TeamID, ShouldEqual, "a")
				So(*d.PlayerID, ShouldEqual, "p9")
				So(d.OriginalEventID, ShouldEqual, "e-rec")
			})

			Convey("Then the dropped card left no trace", func() {
				for _, a := range got {
					So(a.Type, ShouldNotEqual, spadl.TypeNonAction)
					So(a.OriginalEventID, ShouldNotEqual, "e-card")
				}
			})
		})

		Convey("When converting the same dataset twice", func() {
			first, err1 := c.ToActions(context.Background(), ds, "h")
			second, err2 := c.ToActions(context.Background(), ds, "h")

			Convey("Then the output is deterministic", func() {
				So(err1, ShouldBeNil)
				So(err2, ShouldBeNil)
				So(second, ShouldResemble, first)
			})
		})
	})

	Convey("Given an empty dataset", t, func() {
		c := New()
		got, err := c.ToActions(context.Background(), event.Dataset{
			Metadata: event.Metadata{GameID: "g-0", CoordinateSystem: pitch.Standard()},
		}, "")

		Convey("Then an empty table is a valid table", func() {
			So(err, ShouldBeNil)
			So(got, ShouldHaveLength, 0)
		})
	})

	Convey("Given a dataset with a location outside the provider pitch", t, func() {
		c := New()
		ds := fixtureDataset()
		ds.Events = append(ds.Events, event.Event{
			ID:          "e-bad",
			Kind:        event.KindPass,
			PeriodID:    1,
			Timestamp:   40 * time.Second,
			TeamID:      strp("h"),
			Coordinates: pt(130, 40),
		})

		Convey("When converting it", func() {
			_, err := c.ToActions(context.Background(), ds, "h")

			Convey("Then the table fails schema validation", func() {
				So(err, ShouldNotBeNil)
				So(errors.Is(err, spadl.ErrSchema), ShouldBeTrue)
			})
		})
	})

	Convey("Given a canceled context", t, func() {
		c := New()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := c.ToActions(ctx, fixtureDataset(), "h")

		Convey("Then conversion refuses to start", func() {
			So(err, ShouldNotBeNil)
			So(errors.Is(err, context.Canceled), ShouldBeTrue)
		})
	})

	Convey("Given custom dribble thresholds", t, func() {
		c := New(WithDribbleOptions(dribble.WithMaxDuration(20 * time.Second)))

		Convey("When the maximum duration admits the slow gap before the shot", func() {
			got, err := c.ToActions(context.Background(), fixtureDataset(), "h")
			So(err, ShouldBeNil)

			Convey("Then a second dribble appears in the first period", func() {
				So(got, ShouldHaveLength, 7)
				d := got[2]
				So(d.Type, ShouldEqual, spadl.TypeDribble)
				So(d.PeriodID, ShouldEqual, 1)
				So(d.TimeSeconds, ShouldAlmostEqual, 12.5)
			})
		})
	})
}
