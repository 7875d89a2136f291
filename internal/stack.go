package internal

// A stack of points which lives in the prefix of a slice it does not own
// exclusively. Pushing swaps a point from further along the slice into the
// slot just above the top, and popping only moves the cursor, so the popped
// point stays in the slice and can be swapped out again later.
//
// The scan uses this to build the hull inside the point set's own storage.
type PointStack struct {
	points []Point
	top    int
}

// Creates a stack over points whose first size elements are already on it.
func NewPointStack(points []Point, size int) *PointStack {
	if size < 0 || size > len(points) {
		fatalf("stack size %d out of range for %d points", size, len(points))
	}
	return &PointStack{points: points, top: size - 1}
}

// Push moves points[i] onto the stack. i must not be inside the stack.
func (s *PointStack) Push(i int) {
	if i <= s.top || i >= len(s.points) {
		fatalf("cannot push index %d onto stack with top %d", i, s.top)
	}
	s.top++
	s.points[s.top], s.points[i] = s.points[i], s.points[s.top]
}

func (s *PointStack) Pop() Point {
	if s.Empty() {
		fatalf("pop from empty point stack")
	}
	p := s.points[s.top]
	s.top--
	return p
}

func (s *PointStack) Peek() Point {
	return s.PeekAt(0)
}

// PeekAt returns the point depth entries below the top.
func (s *PointStack) PeekAt(depth int) Point {
	if depth < 0 || depth > s.top {
		fatalf("peek at depth %d on stack of size %d", depth, s.Len())
	}
	return s.points[s.top-depth]
}

func (s *PointStack) Len() int {
	return s.top + 1
}

func (s *PointStack) Empty() bool {
	return s.top < 0
}

// Slice returns the stack contents, bottom first. It aliases the underlying
// storage.
func (s *PointStack) Slice() []Point {
	return s.points[:s.top+1]
}
