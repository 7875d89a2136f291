package internal

// This contains no actual tests. It is just a helper for checking that a hull
// is valid for its input. The rules are:
// 1. Every hull vertex is one of the input points.
// 2. Every input point is inside the hull or on its boundary.
// 3. The hull starts at the anchor of the input.
// 4. Every turn of the hull, including the ones through the anchor, is a
//    strict left turn.
// Inputs below MinScanSize are returned unchanged, so only rule 1 applies.

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func AssertValidHull(t *testing.T, input []Point, hull Polygon) {
	t.Helper()
	set := NewPointSet(input...)
	for _, p := range hull.Points {
		require.True(t, set.Contains(p), "hull vertex %v is not an input point", p)
	}

	if len(input) < MinScanSize {
		require.Equal(t, input, hull.Points, "small inputs are their own hull")
		return
	}

	anchor, err := set.Anchor()
	require.NoError(t, err)
	require.NotEmpty(t, hull.Points)
	assert.Equal(t, anchor, hull.Points[0], "hull must start at the anchor")

	for _, p := range input {
		assert.True(t, hull.Contains(p), "point %v is outside the hull %v", p, hull.Points)
	}

	if len(hull.Points) >= 3 {
		assert.True(t, hull.IsStrictlyConvex(), "hull %v has a turn that is not strictly left", hull.Points)
		assert.True(t, hull.IsCCW(), "hull %v is not counterclockwise", hull.Points)
	}
}

// Copy of the input, so that the in place reordering in one run does not
// leak into another.
func hullOf(points []Point) Polygon {
	return NewPointSet(points...).ConvexHull()
}
