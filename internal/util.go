package internal

import "math"

// Anchor convention: among points with the same Y value, the one with the
// smaller X value is "lower". Unlike a tolerance based comparison, this is
// exact, since the anchor must be a member of the set.
func (p Point) Below(otherPoint Point) bool {
	if p.Y == otherPoint.Y {
		return p.X < otherPoint.X
	}
	return p.Y < otherPoint.Y
}

func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

func (p Point) DistanceSquared(q Point) float64 {
	d := p.Sub(q)
	return d.X*d.X + d.Y*d.Y
}

func (p Point) IsFinite() bool {
	return !math.IsInf(p.X, 0) && !math.IsInf(p.Y, 0) && !math.IsNaN(p.X) && !math.IsNaN(p.Y)
}

// Cross product of (b - a) and (c - a). Positive means a -> b -> c is a
// counterclockwise (left) turn, negative is clockwise, zero is collinear.
func Cross(a, b, c Point) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}

// Only strict left turns count. Collinear triples are rejected so that the
// middle point of a straight run is dropped from the hull.
func IsLeftTurn(a, b, c Point) bool {
	return Cross(a, b, c) > 0
}

// Often we want to treat an array as a circular buffer. This gives the modular
// index given length n, but unlike the raw modulo operator, it only gives positive values
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}
