package event

import (
	"encoding/json"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/fieldline/spadl/internal/domain/pitch"
)

func pt(x, y float64) *pitch.Point {
	return &pitch.Point{X: x, Y: y}
}

func TestDatasetTransform(t *testing.T) {
	provider := pitch.System{
		Origin:   pitch.OriginTopLeft,
		Vertical: pitch.TopToBottom,
		X:        pitch.Dimension{Min: 0, Max: 100},
		Y:        pitch.Dimension{Min: 0, Max: 100},
	}
	metric := pitch.System{
		Origin:   pitch.OriginBottomLeft,
		Vertical: pitch.BottomToTop,
		X:        pitch.Dimension{Min: 0, Max: 105},
		Y:        pitch.Dimension{Min: 0, Max: 68},
	}

	Convey("Given a dataset recorded in a top-left percent system", t, func() {
		ds := Dataset{
			Metadata: Metadata{
				GameID:           "g1",
				Provider:         "testfeed",
				CoordinateSystem: provider,
			},
			Events: []Event{
				{
					ID:                  "e1",
					Kind:                KindPass,
					PeriodID:            1,
					Timestamp:           5 * time.Second,
					Coordinates:         pt(0, 0),
					ReceiverCoordinates: pt(100, 100),
				},
				{
					ID:   "e2",
					Kind: KindShot,
				},
			},
		}

		Convey("When transforming to the metric system", func() {
			got := ds.Transform(metric)

			Convey("Then every location is rescaled and flipped", func() {
				So(got.Events[0].Coordinates.X, ShouldAlmostEqual, 0)
				So(got.Events[0].Coordinates.Y, ShouldAlmostEqual, 68)
				So(got.Events[0].ReceiverCoordinates.X, ShouldAlmostEqual, 105)
				So(got.Events[0].ReceiverCoordinates.Y, ShouldAlmostEqual, 0)
			})

			Convey("Then missing locations stay missing", func() {
				So(got.Events[1].Coordinates, ShouldBeNil)
				So(got.Events[1].EndCoordinates, ShouldBeNil)
			})

			Convey("Then the metadata records the new system", func() {
				So(got.Metadata.CoordinateSystem, ShouldResemble, metric)
			})

			Convey("Then the source dataset is untouched", func() {
				So(ds.Metadata.CoordinateSystem, ShouldResemble, provider)
				So(ds.Events[0].Coordinates.Y, ShouldAlmostEqual, 0)
			})
		})
	})
}

func TestQualifierSet(t *testing.T) {
	Convey("Given a qualifier set", t, func() {
		s := Qualifiers(QualifierFreeKick, QualifierCross, QualifierHead)

		Convey("When testing membership", func() {
			So(s.Has(QualifierFreeKick), ShouldBeTrue)
			So(s.Has(QualifierCross), ShouldBeTrue)
			So(s.Has(QualifierPenalty), ShouldBeFalse)
		})

		Convey("When testing any-of membership", func() {
			So(s.HasAny(QualifierChippedPass, QualifierCross, QualifierHighPass), ShouldBeTrue)
			So(s.HasAny(QualifierChippedPass, QualifierHighPass), ShouldBeFalse)
			So(s.HasAny(), ShouldBeFalse)
		})

		Convey("When extending the set", func() {
			s2 := s.With(QualifierPenalty)

			So(s2.Has(QualifierPenalty), ShouldBeTrue)
			So(s.Has(QualifierPenalty), ShouldBeFalse)
		})

		Convey("When listing names", func() {
			So(s.Names(), ShouldResemble, []string{"free_kick", "head", "cross"})
		})
	})
}

func TestQualifierSetJSON(t *testing.T) {
	Convey("Given a qualifier array in a feed", t, func() {
		Convey("When the array holds known and unknown names", func() {
			var s QualifierSet
			err := json.Unmarshal([]byte(`["cross","zonal_marking","head"]`), &s)

			Convey("Then unknown names are dropped", func() {
				So(err, ShouldBeNil)
				So(s, ShouldEqual, Qualifiers(QualifierCross, QualifierHead))
			})
		})

		Convey("When round-tripping a set", func() {
			s := Qualifiers(QualifierGoalKick, QualifierHighPass)
			raw, err := json.Marshal(s)
			So(err, ShouldBeNil)

			var back QualifierSet
			So(json.Unmarshal(raw, &back), ShouldBeNil)

			Convey("Then the set survives unchanged", func() {
				So(back, ShouldEqual, s)
			})
		})
	})
}

func TestKindJSON(t *testing.T) {
	Convey("Given event kind names in a feed", t, func() {
		Convey("When decoding a known kind", func() {
			var k Kind
			So(json.Unmarshal([]byte(`"take_on"`), &k), ShouldBeNil)
			So(k, ShouldEqual, KindTakeOn)
		})

		Convey("When decoding an unknown kind", func() {
			var k Kind
			So(json.Unmarshal([]byte(`"pressure"`), &k), ShouldBeNil)

			Convey("Then it degrades to generic", func() {
				So(k, ShouldEqual, KindGeneric)
			})
		})

		Convey("When parsing strictly", func() {
			_, err := ParseKind("pressure")
			So(err, ShouldNotBeNil)
		})
	})
}

func TestResultJSON(t *testing.T) {
	Convey("Given event result names in a feed", t, func() {
		Convey("When decoding a known result", func() {
			var r Result
			So(json.Unmarshal([]byte(`"own_goal"`), &r), ShouldBeNil)
			So(r, ShouldEqual, ResultOwnGoal)
		})

		Convey("When decoding an unknown result", func() {
			var r Result
			So(json.Unmarshal([]byte(`"deflected"`), &r), ShouldBeNil)
			So(r, ShouldEqual, ResultNone)
		})

		Convey("When parsing the empty string", func() {
			r, err := ParseResult("")
			So(err, ShouldBeNil)
			So(r, ShouldEqual, ResultNone)
		})
	})
}
