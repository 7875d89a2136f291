package internal

import (
	"embed"
	"log"
	"math/rand/v2"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
)

// This file parses the svg fixtures and outputs point lists. This is not a
// full svg reader. It collects the centers of every circle and the vertices of
// every polygon, in document order. If anything goes wrong, it panics.
//
// Fixtures are available by name in the fixtures/ directory, sans extension.
// Coordinates are taken as is, without flipping the y axis.

//go:embed fixtures
var fixtures embed.FS

func LoadFixture(name string) []Point {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}

	defer fixture.Close()
	rootEl, err := svgparser.Parse(fixture, true)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}

	var points []Point
	for _, el := range rootEl.Children {
		switch el.Name {
		case "circle":
			points = append(points, Point{
				X: parseFixtureFloat(el.Attributes["cx"]),
				Y: parseFixtureFloat(el.Attributes["cy"]),
			})
		case "polygon":
			for _, pointString := range strings.Fields(el.Attributes["points"]) {
				pointStrings := strings.Split(pointString, ",")
				if len(pointStrings) != 2 {
					log.Fatalf("Invalid point string %q", pointString)
				}
				points = append(points, Point{
					X: parseFixtureFloat(pointStrings[0]),
					Y: parseFixtureFloat(pointStrings[1]),
				})
			}
		}
	}
	if len(points) == 0 {
		log.Fatalf("No points found in fixture %q", name)
	}
	return points
}

func parseFixtureFloat(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		log.Fatalf("Invalid coordinate %q: %v", s, err)
	}
	return v
}

// Some ad hoc fixtures. All coordinates are small integers so that the cross
// products in the assertions are exact.

// Square grid of n x n points, from (0, 0) to (n-1, n-1).
func Grid(n int) []Point {
	var points []Point
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			points = append(points, Point{X: float64(x), Y: float64(y)})
		}
	}
	return points
}

// Diamond with extra points along every edge and a few inside.
func Diamond() []Point {
	return []Point{
		{0, -4}, {2, -2}, {4, 0}, {2, 2}, {0, 4}, {-2, 2}, {-4, 0}, {-2, -2},
		{1, -3}, {3, -1}, {3, 1}, {1, 3}, {-1, 3}, {-3, 1}, {-3, -1}, {-1, -3},
		{0, 0}, {1, 1}, {-1, 0}, {0, -2},
	}
}

// A ten pointed star. The inner points are all inside the hull of the outer
// ones.
func Star() []Point {
	return []Point{
		{10, 0}, {3, 2}, {3, 10}, {-1, 4}, {-8, 6},
		{-4, 0}, {-8, -6}, {-1, -4}, {3, -10}, {3, -2},
	}
}

// Uniformly random points with integer coordinates in [-max, max].
func RandomPoints(seed uint64, n int, max int) []Point {
	rng := rand.New(rand.NewPCG(seed, seed))
	points := make([]Point, n)
	for i := range points {
		points[i] = Point{
			X: float64(rng.IntN(2*max+1) - max),
			Y: float64(rng.IntN(2*max+1) - max),
		}
	}
	return points
}
