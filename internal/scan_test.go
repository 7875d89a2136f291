package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvexHull_SquareWithInteriorPoint(t *testing.T) {
	input := []Point{{0, 0}, {2, 0}, {2, 2}, {0, 2}, {1, 1}}
	hull := hullOf(input)
	assert.Equal(t, []Point{{0, 0}, {2, 0}, {2, 2}, {0, 2}}, hull.Points)
	AssertValidHull(t, input, hull)
}

func TestConvexHull_SmallSetsAreUnchanged(t *testing.T) {
	for _, input := range [][]Point{
		{{0, 0}, {1, 1}, {2, 2}},
		{{2, 2}, {0, 0}, {1, 1}},
		{{5, 5}, {1, 0}},
		{{3, -1}},
		{{1, 1}, {1, 1}, {1, 1}},
	} {
		set := NewPointSet(input...)
		hull := set.ConvexHull()
		assert.Equal(t, input, hull.Points)
		assert.Equal(t, input, set.Points(), "small sets are not reordered")
	}
}

func TestConvexHull_Duplicates(t *testing.T) {
	input := []Point{{0, 0}, {0, 0}, {1, 0}, {0, 1}}
	hull := hullOf(input)
	assert.Equal(t, []Point{{0, 0}, {1, 0}, {0, 1}}, hull.Points)
	AssertValidHull(t, input, hull)

	// Duplicated hull vertices away from the anchor
	input = []Point{{0, 0}, {4, 0}, {4, 0}, {4, 4}, {0, 4}, {4, 4}, {2, 2}, {0, 0}}
	hull = hullOf(input)
	assert.Equal(t, []Point{{0, 0}, {4, 0}, {4, 4}, {0, 4}}, hull.Points)
	AssertValidHull(t, input, hull)
}

func TestConvexHull_AllPointsEqual(t *testing.T) {
	input := []Point{{1, 1}, {1, 1}, {1, 1}, {1, 1}, {1, 1}}
	hull := hullOf(input)
	assert.Equal(t, []Point{{1, 1}}, hull.Points)
	AssertValidHull(t, input, hull)
}

func TestConvexHull_Collinear(t *testing.T) {
	// Only the two ends of a straight run survive
	for _, input := range [][]Point{
		{{0, 0}, {1, 1}, {2, 2}, {3, 3}},
		{{2, 2}, {3, 3}, {0, 0}, {1, 1}},
		{{3, 3}, {1, 1}, {2, 2}, {0, 0}, {2, 2}},
	} {
		hull := hullOf(input)
		assert.Equal(t, []Point{{0, 0}, {3, 3}}, hull.Points, "input %v", input)
		AssertValidHull(t, input, hull)
	}

	horizontal := []Point{{3, 0}, {1, 0}, {0, 0}, {2, 0}}
	assert.Equal(t, []Point{{0, 0}, {3, 0}}, hullOf(horizontal).Points)

	vertical := []Point{{0, 2}, {0, 3}, {0, 0}, {0, 1}}
	assert.Equal(t, []Point{{0, 0}, {0, 3}}, hullOf(vertical).Points)

	leftLeaning := []Point{{-1, 1}, {-3, 3}, {0, 0}, {-2, 2}}
	assert.Equal(t, []Point{{0, 0}, {-3, 3}}, hullOf(leftLeaning).Points)
}

func TestConvexHull_LeftLeaningFirstEdge(t *testing.T) {
	// The first edge out of the anchor leans left, so its far end has a
	// smaller x than the point in the middle of it.
	input := []Point{{0, 0}, {-1, 1}, {-2, 2}, {-3, 1}}
	hull := hullOf(input)
	assert.Equal(t, []Point{{0, 0}, {-2, 2}, {-3, 1}}, hull.Points)
	AssertValidHull(t, input, hull)
}

func TestConvexHull_PointsOnEdges(t *testing.T) {
	input := []Point{{0, 0}, {1, 0}, {2, 0}, {2, 1}, {2, 2}, {1, 2}, {0, 2}, {0, 1}, {1, 1}}
	hull := hullOf(input)
	assert.Equal(t, []Point{{0, 0}, {2, 0}, {2, 2}, {0, 2}}, hull.Points)
	AssertValidHull(t, input, hull)
}

func TestConvexHull_Fixtures(t *testing.T) {
	tests := []struct {
		name     string
		input    []Point
		expected []Point
	}{
		{"square", LoadFixture("square"), []Point{{0, 0}, {20, 0}, {20, 20}, {0, 20}}},
		{"pentagon", LoadFixture("pentagon"), []Point{{50, 0}, {98, 35}, {79, 90}, {21, 90}, {2, 35}}},
		{"grid", Grid(5), []Point{{0, 0}, {4, 0}, {4, 4}, {0, 4}}},
		{"diamond", Diamond(), []Point{{0, -4}, {4, 0}, {0, 4}, {-4, 0}}},
		{"star", Star(), []Point{{3, -10}, {10, 0}, {3, 10}, {-8, 6}, {-8, -6}}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			hull := hullOf(test.input)
			assert.Equal(t, test.expected, hull.Points)
			AssertValidHull(t, test.input, hull)
		})
	}
}

func TestConvexHull_Properties(t *testing.T) {
	inputs := map[string][]Point{
		"scatter": LoadFixture("scatter"),
		"grid":    Grid(9),
		"dense":   RandomPoints(1, 1000, 20),
		"sparse":  RandomPoints(2, 50, 1000),
		"tiny":    RandomPoints(3, 4, 2),
	}
	for seed := uint64(10); seed < 30; seed++ {
		inputs["random"+string(rune('A'+seed-10))] = RandomPoints(seed, int(seed*7), 100)
	}

	for name, input := range inputs {
		t.Run(name, func(t *testing.T) {
			hull := hullOf(input)
			AssertValidHull(t, input, hull)

			// Same input, same output
			assert.Equal(t, hull, hullOf(input))

			// A hull is its own hull
			assert.Equal(t, hull, hullOf(hull.Points))
		})
	}
}

func TestConvexHull_ReordersTheSet(t *testing.T) {
	input := []Point{{1, 1}, {2, 2}, {0, 2}, {2, 0}, {0, 0}}
	set := NewPointSet(input...)
	hull := set.ConvexHull()

	require.Equal(t, []Point{{0, 0}, {2, 0}, {2, 2}, {0, 2}}, hull.Points)
	assert.Equal(t, hull.Points, set.Points()[:len(hull.Points)], "the hull is built at the front of the set")
	assert.ElementsMatch(t, input, set.Points(), "reordering keeps every point")

	// The returned hull does not alias the set
	set.swap(0, 1)
	assert.Equal(t, Point{0, 0}, hull.Points[0])
}

func TestConvexHull_EmptySetPanics(t *testing.T) {
	err := func() (err error) {
		defer func() {
			err = HandleHullPanicRecover(recover())
		}()
		NewPointSet().ConvexHull()
		return nil
	}()
	assert.ErrorIs(t, err, ErrEmptySet)
}
