package internal

// Sets with fewer points than this are their own hull, and are returned as is.
const MinScanSize = 4

// ConvexHull computes the convex hull of the set with a Graham scan. The hull
// starts at the anchor and winds counterclockwise. Only strict left turns are
// kept, so points in the middle of a straight edge are dropped, and so are
// duplicates.
//
// Note that this reorders the set in place: the anchor is moved to the front,
// the rest are sorted by angle around it, and the scan swaps hull points into
// the front of the set. The returned polygon is a copy and does not alias the
// set.
//
// Panics with ErrEmptySet if the set is empty.
func (s *PointSet) ConvexHull() Polygon {
	anchor := s.mustAnchor()
	if len(s.points) < MinScanSize {
		return Polygon{Points: s.Points()}
	}

	s.sortAroundAnchor(anchor)
	stack := scan(s.points)
	return Polygon{Points: append([]Point(nil), stack.Slice()...)}
}

// Moves the anchor to the front and sorts the rest by polar angle around it.
func (s *PointSet) sortAroundAnchor(anchor Point) {
	i, err := s.IndexOf(anchor)
	if err != nil {
		fatalf("anchor %v is not in the set: %v", anchor, err)
	}
	s.swap(0, i)
	QuickSort(s.points[1:], PolarOrder{Anchor: anchor}.Comparator())
}

// The scan proper. points[0] must be the anchor, and the rest must be in
// polar order around it. The hull is built on a stack over the same slice.
func scan(points []Point) *PointStack {
	stack := NewPointStack(points, 2)
	for i := 2; i < len(points); i++ {
		// Pop until the new point makes a left turn with the top two. The
		// anchor at the bottom is never popped.
		for stack.Len() > 1 && !IsLeftTurn(stack.PeekAt(1), stack.Peek(), points[i]) {
			stack.Pop()
		}
		stack.Push(i)
	}

	// Every point was a copy of the anchor.
	if stack.Len() == 2 && stack.Peek() == points[0] {
		stack.Pop()
	}
	return stack
}
