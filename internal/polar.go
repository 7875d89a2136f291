package internal

import "math"

// PolarOrder orders points by the angle they make with the positive x-axis as
// seen from Anchor, sweeping counterclockwise. It only makes sense when no
// point lies below the anchor, which is guaranteed when the anchor is the
// lowest point of the set.
type PolarOrder struct {
	Anchor Point
}

// Value is the cotangent of the angle between the x-axis and the line through
// the anchor and p. It decreases as the angle grows from 0 to pi, so sorting
// by Value descending sorts by angle ascending.
//
// On the horizontal line through the anchor, points to the right (and the
// anchor itself) get +Inf and points to the left get -Inf.
func (o PolarOrder) Value(p Point) float64 {
	a := o.Anchor
	if a.Y == p.Y {
		if p.X > a.X || p == a {
			return math.Inf(1)
		}
		return math.Inf(-1)
	}
	return (a.X - p.X) / (a.Y - p.Y)
}

// Compare sorts by Value descending. Points on the same ray from the anchor
// sort nearest first. For rays with a non-negative Value, that is the same as
// sorting by X ascending, but it also separates points on the vertical ray,
// and keeps the farthest point of the first ray when that ray leans left.
func (o PolarOrder) Compare(p, q Point) int {
	pv, qv := o.Value(p), o.Value(q)
	switch {
	case pv > qv:
		return -1
	case pv < qv:
		return 1
	}

	pd, qd := o.Anchor.DistanceSquared(p), o.Anchor.DistanceSquared(q)
	switch {
	case pd < qd:
		return -1
	case pd > qd:
		return 1
	}
	return 0
}

func (o PolarOrder) Comparator() Comparator {
	return o.Compare
}
