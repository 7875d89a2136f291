package internal

import (
	"fmt"
	"iter"
)

// A growable, ordered collection of points which keeps its bounding box and
// anchor up to date as points are appended. The anchor is the lowest point,
// with ties going to the leftmost one (see Point.Below).
//
// The zero value is an empty set ready for use.
type PointSet struct {
	points    []Point
	bounds    Bounds
	anchor    Point
	hasAnchor bool
}

func NewPointSet(points ...Point) *PointSet {
	set := &PointSet{points: make([]Point, 0, len(points))}
	for _, p := range points {
		set.Append(p)
	}
	return set
}

// Append adds p to the end of the set. The aggregates are updated
// incrementally, so queries never rescan the points.
func (s *PointSet) Append(p Point) {
	if !s.hasAnchor {
		s.bounds = Bounds{XMin: p.X, XMax: p.X, YMin: p.Y, YMax: p.Y}
		s.anchor = p
		s.hasAnchor = true
	} else {
		if p.X < s.bounds.XMin {
			s.bounds.XMin = p.X
		}
		if p.X > s.bounds.XMax {
			s.bounds.XMax = p.X
		}
		if p.Y < s.bounds.YMin {
			s.bounds.YMin = p.Y
		}
		if p.Y > s.bounds.YMax {
			s.bounds.YMax = p.Y
		}
		if p.Below(s.anchor) {
			s.anchor = p
		}
	}
	s.points = append(s.points, p)
}

func (s *PointSet) Len() int {
	return len(s.points)
}

func (s *PointSet) At(i int) Point {
	return s.points[i]
}

// IndexOf returns the index of the first point equal to p.
func (s *PointSet) IndexOf(p Point) (int, error) {
	for i, q := range s.points {
		if q == p {
			return i, nil
		}
	}
	return -1, notFound(p)
}

func (s *PointSet) Contains(p Point) bool {
	_, err := s.IndexOf(p)
	return err == nil
}

// Anchor returns the lowest, then leftmost, point of the set.
func (s *PointSet) Anchor() (Point, error) {
	if !s.hasAnchor {
		return Point{}, ErrEmptySet
	}
	return s.anchor, nil
}

func (s *PointSet) mustAnchor() Point {
	if !s.hasAnchor {
		throw(ErrEmptySet)
	}
	return s.anchor
}

func (s *PointSet) Bounds() Bounds {
	if !s.hasAnchor {
		return EmptyBounds()
	}
	return s.bounds
}

// All iterates over the points in their current order.
func (s *PointSet) All() iter.Seq2[int, Point] {
	return func(yield func(int, Point) bool) {
		for i, p := range s.points {
			if !yield(i, p) {
				return
			}
		}
	}
}

// Points returns a copy of the points in their current order.
func (s *PointSet) Points() []Point {
	return append([]Point(nil), s.points...)
}

func (s *PointSet) Clone() *PointSet {
	clone := *s
	clone.points = s.Points()
	return &clone
}

func (s *PointSet) swap(i, j int) {
	s.points[i], s.points[j] = s.points[j], s.points[i]
}

func (s *PointSet) String() string {
	return fmt.Sprintf("PointSet%v", s.points)
}
