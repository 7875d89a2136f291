// Convex hulls of planar point sets for Go.
//
// This package computes the convex hull of a finite set of 2-D points with a
// Graham scan. The hull is a subsequence of the input, starting at the lowest
// (then leftmost) point and winding counterclockwise. Points in the middle of
// a hull edge are not part of the hull.
package grahamscan

import "github.com/osuushi/grahamscan/internal"

type Point = internal.Point
type Polygon = internal.Polygon
type PointSet = internal.PointSet
type Bounds = internal.Bounds

var (
	// Returned when the hull of an empty set is requested.
	ErrEmptySet = internal.ErrEmptySet
	// Returned by PointSet.IndexOf for a point that is not in the set.
	ErrNotFound = internal.ErrNotFound
)

func NewPointSet(points ...Point) *PointSet {
	return internal.NewPointSet(points...)
}

// Compute the convex hull of the given points. The slice is not modified.
//
// Three or fewer points are returned unchanged, in their original order.
func ConvexHull(points ...Point) (Polygon, error) {
	return HullOf(internal.NewPointSet(points...))
}

// Compute the convex hull of a point set. The set is reordered in place: its
// anchor moves to the front, and the hull vertices end up as its first
// points. Clone the set first if its order matters.
func HullOf(set *PointSet) (result Polygon, err error) {
	defer func() {
		recoveredErr := internal.HandleHullPanicRecover(recover())
		if recoveredErr != nil {
			result = Polygon{}
			err = recoveredErr
		}
	}()
	return set.ConvexHull(), nil
}
