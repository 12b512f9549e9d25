// Package pitch defines pitch coordinate conventions and conversions
// between them.
//
// A provider's convention is described by a System: which corner the
// axes are measured from, which way the vertical axis grows, and the
// value range of each axis. Converting between systems rescales
// through the unit square; it never flips by attacking direction, so
// a fixed home/away orientation survives the transform untouched.
package pitch

import (
	"encoding/json"
	"fmt"
)

// Point is a location on the pitch. Optional locations are carried as
// *Point so that both coordinates are present or absent together.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// DistSq returns the squared euclidean distance between two points.
func (p Point) DistSq(q Point) float64 {
	dx := p.X - q.X
	dy := p.Y - q.Y
	return dx*dx + dy*dy
}

// Origin identifies the corner (or center spot) a provider measures from.
type Origin uint8

// Supported origins.
const (
	OriginBottomLeft Origin = iota
	OriginTopLeft
	OriginCenter
)

var originNames = map[Origin]string{
	OriginBottomLeft: "bottom_left",
	OriginTopLeft:    "top_left",
	OriginCenter:     "center",
}

func (o Origin) String() string {
	if name, ok := originNames[o]; ok {
		return name
	}
	return fmt.Sprintf("origin(%d)", uint8(o))
}

// ParseOrigin maps a stable origin name back to its value.
func ParseOrigin(name string) (Origin, error) {
	for o, n := range originNames {
		if n == name {
			return o, nil
		}
	}
	return OriginBottomLeft, fmt.Errorf("unknown origin: %q", name)
}

// MarshalJSON encodes the origin as its stable name.
func (o Origin) MarshalJSON() ([]byte, error) {
	return json.Marshal(o.String())
}

// UnmarshalJSON decodes the origin from its stable name.
func (o *Origin) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	parsed, err := ParseOrigin(name)
	if err != nil {
		return err
	}
	*o = parsed
	return nil
}

// VerticalOrientation says which way a system's y axis grows.
type VerticalOrientation uint8

// Supported vertical orientations.
const (
	BottomToTop VerticalOrientation = iota
	TopToBottom
)

var verticalNames = map[VerticalOrientation]string{
	BottomToTop: "bottom_to_top",
	TopToBottom: "top_to_bottom",
}

func (v VerticalOrientation) String() string {
	if name, ok := verticalNames[v]; ok {
		return name
	}
	return fmt.Sprintf("vertical(%d)", uint8(v))
}

// ParseVerticalOrientation maps a stable orientation name back to its value.
func ParseVerticalOrientation(name string) (VerticalOrientation, error) {
	for v, n := range verticalNames {
		if n == name {
			return v, nil
		}
	}
	return BottomToTop, fmt.Errorf("unknown vertical orientation: %q", name)
}

// MarshalJSON encodes the orientation as its stable name.
func (v VerticalOrientation) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.String())
}

// UnmarshalJSON decodes the orientation from its stable name.
func (v *VerticalOrientation) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	parsed, err := ParseVerticalOrientation(name)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// Dimension is the closed value range of one axis.
type Dimension struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Length returns the extent of the dimension.
func (d Dimension) Length() float64 {
	return d.Max - d.Min
}

// System is one full coordinate convention: origin corner, vertical
// direction and the value range of both axes. The origin is
// descriptive; any displacement it implies is carried by the axis
// ranges (a center origin comes with ranges like [-52.5, 52.5]).
type System struct {
	Origin   Origin              `json:"origin"`
	Vertical VerticalOrientation `json:"vertical_orientation"`
	X        Dimension           `json:"x"`
	Y        Dimension           `json:"y"`
}

// Extents, in meters, of the standard metric pitch.
const (
	StandardLength float64 = 105
	StandardWidth  float64 = 68
)

// Standard returns the metric coordinate system all converted output
// shares: origin at the bottom-left corner, y growing up the pitch,
// axes in meters.
func Standard() System {
	return System{
		Origin:   OriginBottomLeft,
		Vertical: BottomToTop,
		X:        Dimension{Min: 0, Max: StandardLength},
		Y:        Dimension{Min: 0, Max: StandardWidth},
	}
}

// Convert re-expresses p, measured under from, in the to system.
// The x axis is rescaled; the y axis is rescaled and flipped if the
// two systems grow in opposite vertical directions.
func Convert(p Point, from, to System) Point {
	u := fraction(p.X, from.X)
	v := fraction(p.Y, from.Y)
	if from.Vertical != to.Vertical {
		v = 1 - v
	}
	return Point{
		X: to.X.Min + u*to.X.Length(),
		Y: to.Y.Min + v*to.Y.Length(),
	}
}

func fraction(val float64, d Dimension) float64 {
	return (val - d.Min) / d.Length()
}
