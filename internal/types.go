package internal

import "math"

// Points are plain values. Two points are the same point exactly when their
// coordinates compare equal, so duplicates in the input stay duplicates.
type Point struct {
	X float64
	Y float64
}

type Polygon struct {
	Points []Point
}

// Axis aligned bounding box. The zero point set has the empty box, where the
// minimums are +Inf and the maximums are -Inf.
type Bounds struct {
	XMin, XMax float64
	YMin, YMax float64
}

func EmptyBounds() Bounds {
	return Bounds{
		XMin: math.Inf(1),
		XMax: math.Inf(-1),
		YMin: math.Inf(1),
		YMax: math.Inf(-1),
	}
}

// Comparator returns a negative number when p sorts before q, a positive
// number when it sorts after, and zero when the two are tied.
type Comparator func(p, q Point) int
