package render

import (
	"math"

	"github.com/osuushi/grahamscan"
)

// Viewport maps world coordinates, where y grows upward, onto image
// coordinates, where y grows downward. The world bounding box is shifted so
// that its top left corner lands at (Padding, Padding).
type Viewport struct {
	Bounds  grahamscan.Bounds
	Padding float64
}

func NewViewport(bounds grahamscan.Bounds, padding float64) Viewport {
	// Nothing drawn yet. Use a zero sized box at the origin.
	if math.IsInf(bounds.XMin, 1) {
		bounds = grahamscan.Bounds{}
	}
	return Viewport{Bounds: bounds, Padding: padding}
}

func (v Viewport) Width() float64 {
	return v.Bounds.XMax - v.Bounds.XMin + 2*v.Padding
}

func (v Viewport) Height() float64 {
	return v.Bounds.YMax - v.Bounds.YMin + 2*v.Padding
}

func (v Viewport) ToImage(p Point) Point {
	return Point{
		X: p.X - v.Bounds.XMin + v.Padding,
		Y: v.Bounds.YMax - p.Y + v.Padding,
	}
}

// Axes returns the parts of the x and y axes which fall inside the world
// bounds. An axis that misses the bounds entirely is omitted.
func (v Viewport) Axes() []Segment {
	var axes []Segment
	b := v.Bounds
	if b.YMin <= 0 && 0 <= b.YMax {
		axes = append(axes, Segment{Start: Point{X: b.XMin, Y: 0}, End: Point{X: b.XMax, Y: 0}})
	}
	if b.XMin <= 0 && 0 <= b.XMax {
		axes = append(axes, Segment{Start: Point{X: 0, Y: b.YMin}, End: Point{X: 0, Y: b.YMax}})
	}
	return axes
}
