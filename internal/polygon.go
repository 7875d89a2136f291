package internal

import "math"

// Shoelace formula. Positive for counterclockwise polygons.
func (poly Polygon) SignedArea() float64 {
	var area float64
	for i, vertex := range poly.Points {
		nextVertex := poly.Points[CircularIndex(i+1, len(poly.Points))]
		area += vertex.X*nextVertex.Y - nextVertex.X*vertex.Y
	}
	return area / 2
}

func (poly Polygon) Area() float64 {
	return math.Abs(poly.SignedArea())
}

func (poly Polygon) IsCCW() bool {
	return poly.SignedArea() > 0
}

func (poly Polygon) IsCW() bool {
	return poly.SignedArea() < 0
}

// Every consecutive triple, including the ones that wrap around, is a strict
// left turn. Polygons with fewer than three points are never strictly convex.
func (poly Polygon) IsStrictlyConvex() bool {
	n := len(poly.Points)
	if n < 3 {
		return false
	}
	for i := range poly.Points {
		a := poly.Points[i]
		b := poly.Points[CircularIndex(i+1, n)]
		c := poly.Points[CircularIndex(i+2, n)]
		if !IsLeftTurn(a, b, c) {
			return false
		}
	}
	return true
}

// Point-in-polygon for counterclockwise convex polygons. Points on the
// boundary count as inside. Degenerate hulls (a point or a segment) contain
// exactly the points on them.
func (poly Polygon) Contains(p Point) bool {
	switch len(poly.Points) {
	case 0:
		return false
	case 1:
		return poly.Points[0] == p
	case 2:
		return onSegment(poly.Points[0], poly.Points[1], p)
	}
	for i, vertex := range poly.Points {
		nextVertex := poly.Points[CircularIndex(i+1, len(poly.Points))]
		if Cross(vertex, nextVertex, p) < 0 {
			return false
		}
	}
	return true
}

func onSegment(a, b, p Point) bool {
	if Cross(a, b, p) != 0 {
		return false
	}
	return math.Min(a.X, b.X) <= p.X && p.X <= math.Max(a.X, b.X) &&
		math.Min(a.Y, b.Y) <= p.Y && p.Y <= math.Max(a.Y, b.Y)
}

func (poly Polygon) Reverse() Polygon {
	newPoly := Polygon{}
	for i := len(poly.Points) - 1; i >= 0; i-- {
		newPoly.Points = append(newPoly.Points, poly.Points[i])
	}
	return newPoly
}
