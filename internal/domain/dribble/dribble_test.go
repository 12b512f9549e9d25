package dribble

import (
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/fieldline/spadl/internal/domain/pitch"
	"github.com/fieldline/spadl/internal/domain/spadl"
)

func pt(x, y float64) *pitch.Point {
	return &pitch.Point{X: x, Y: y}
}

func strptr(s string) *string {
	return &s
}

// pair builds two consecutive pass actions of the given teams with a
// configurable gap between the end of the first and the start of the
// second.
func pair(teamA, teamB string, gap, dt float64) []spadl.Action {
	actions := []spadl.Action{
		{
			GameID:          "g1",
			OriginalEventID: "e1",
			ActionID:        0,
			PeriodID:        1,
			TimeSeconds:     10,
			TeamID:          strptr(teamA),
			PlayerID:        strptr("p1"),
			Start:           pt(20, 30),
			End:             pt(30, 30),
			Type:            spadl.TypePass,
			Result:          spadl.ResultSuccess,
			BodyPart:        spadl.BodyPartFoot,
		},
		{
			GameID:          "g1",
			OriginalEventID: "e2",
			ActionID:        1,
			PeriodID:        1,
			TimeSeconds:     10 + dt,
			TeamID:          strptr(teamB),
			PlayerID:        strptr("p2"),
			Start:           pt(30+gap, 30),
			End:             pt(60, 30),
			Type:            spadl.TypePass,
			Result:          spadl.ResultSuccess,
			BodyPart:        spadl.BodyPartFoot,
		},
	}
	return actions
}

func TestAdd(t *testing.T) {
	Convey("Given two same-team actions separated on the pitch", t, func() {
		actions := pair("t1", "t1", 10, 4)

		Convey("When inserting dribbles", func() {
			got, n := Add(actions)

			Convey("Then one dribble connects them", func() {
				So(n, ShouldEqual, 1)
				So(got, ShouldHaveLength, 3)

				d := got[1]
				So(d.Type, ShouldEqual, spadl.TypeDribble)
				So(d.Result, ShouldEqual, spadl.ResultSuccess)
				So(d.BodyPart, ShouldEqual, spadl.BodyPartFoot)
			})

			Convey("Then the dribble runs from the first end to the second start", func() {
				d := got[1]
				So(d.Start.X, ShouldAlmostEqual, 30)
				So(d.Start.Y, ShouldAlmostEqual, 30)
				So(d.End.X, ShouldAlmostEqual, 40)
				So(d.End.Y, ShouldAlmostEqual, 30)
			})

			Convey("Then clock, credit and provenance follow the rule", func() {
				d := got[1]
				So(d.TimeSeconds, ShouldAlmostEqual, 12)
				So(*d.TeamID, ShouldEqual, "t1")
				So(*d.PlayerID, ShouldEqual, "p2")
				So(d.OriginalEventID, ShouldEqual, "e1")
			})

			Convey("Then the table is renumbered densely", func() {
				So(got[0].ActionID, ShouldEqual, 0)
				So(got[1].ActionID, ShouldEqual, 1)
				So(got[2].ActionID, ShouldEqual, 2)
				So(spadl.ValidateTable(got), ShouldBeNil)
			})
		})
	})

	Convey("Given pairs that must not produce a dribble", t, func() {
		Convey("When the gap is shorter than the minimum", func() {
			got, n := Add(pair("t1", "t1", 2, 4))
			So(n, ShouldEqual, 0)
			So(got, ShouldHaveLength, 2)
		})

		Convey("When the gap is longer than the maximum", func() {
			got, n := Add(pair("t1", "t1", 65, 4))
			So(n, ShouldEqual, 0)
			So(got, ShouldHaveLength, 2)
		})

		Convey("When too much time passed", func() {
			_, n := Add(pair("t1", "t1", 10, 10))
			So(n, ShouldEqual, 0)
		})

		Convey("When the teams differ", func() {
			_, n := Add(pair("t1", "t2", 10, 4))
			So(n, ShouldEqual, 0)
		})

		Convey("When a team is unknown", func() {
			actions := pair("t1", "t1", 10, 4)
			actions[0].TeamID = nil
			_, n := Add(actions)
			So(n, ShouldEqual, 0)
		})

		Convey("When the periods differ", func() {
			actions := pair("t1", "t1", 10, 4)
			actions[1].PeriodID = 2
			_, n := Add(actions)
			So(n, ShouldEqual, 0)
		})

		Convey("When a location is missing", func() {
			actions := pair("t1", "t1", 10, 4)
			actions[0].End = nil
			_, n := Add(actions)
			So(n, ShouldEqual, 0)
		})
	})

	Convey("Given boundary distances", t, func() {
		Convey("When the gap equals the minimum length", func() {
			_, n := Add(pair("t1", "t1", 3, 4))

			Convey("Then the boundary is inclusive", func() {
				So(n, ShouldEqual, 1)
			})
		})

		Convey("When the gap equals the maximum length", func() {
			_, n := Add(pair("t1", "t1", 60, 4))
			So(n, ShouldEqual, 1)
		})
	})

	Convey("Given custom thresholds", t, func() {
		Convey("When the minimum length is raised", func() {
			_, n := Add(pair("t1", "t1", 10, 4), WithMinLength(15))
			So(n, ShouldEqual, 0)
		})

		Convey("When the maximum duration is tightened", func() {
			_, n := Add(pair("t1", "t1", 10, 4), WithMaxDuration(3*time.Second))
			So(n, ShouldEqual, 0)
		})

		Convey("When the maximum length is lowered", func() {
			_, n := Add(pair("t1", "t1", 10, 4), WithMaxLength(5))
			So(n, ShouldEqual, 0)
		})

		Convey("When an option is given a nonsense value", func() {
			_, n := Add(pair("t1", "t1", 10, 4), WithMinLength(-1))

			Convey("Then the default is kept", func() {
				So(n, ShouldEqual, 1)
			})
		})
	})

	Convey("Given an empty table", t, func() {
		got, n := Add(nil)
		So(n, ShouldEqual, 0)
		So(got, ShouldHaveLength, 0)
	})
}
