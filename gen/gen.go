// Package gen generates point sets for trying out and testing the hull.
package gen

import (
	"math/rand/v2"

	petname "github.com/dustinkirkland/golang-petname"
	"github.com/osuushi/grahamscan"
)

type Point = grahamscan.Point

func init() {
	// Names only need to avoid collisions between runs.
	petname.NonDeterministicMode()
}

func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}

func randf(rng *rand.Rand, min, max float64) float64 {
	return rng.Float64()*(max-min) + min
}

// Uniform returns n points spread uniformly over the square [min, max]^2.
func Uniform(rng *rand.Rand, n int, min, max float64) []Point {
	points := make([]Point, n)
	for i := range points {
		points[i] = Point{X: randf(rng, min, max), Y: randf(rng, min, max)}
	}
	return points
}

// UniformInts is like Uniform, but the coordinates are whole numbers, which
// makes collinear points and duplicates likely.
func UniformInts(rng *rand.Rand, n int, min, max int) []Point {
	points := make([]Point, n)
	for i := range points {
		points[i] = Point{
			X: float64(min + rng.IntN(max-min+1)),
			Y: float64(min + rng.IntN(max-min+1)),
		}
	}
	return points
}

// Grid returns n x n points with the given spacing, centered on the origin.
func Grid(n int, step float64) []Point {
	points := make([]Point, 0, n*n)
	offset := step * float64(n-1) / 2
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			points = append(points, Point{
				X: float64(col)*step - offset,
				Y: float64(row)*step - offset,
			})
		}
	}
	return points
}

// Mixed returns 100 points in 10 rows of 10. Even rows are random integers in
// [-100, 100], and odd rows lie on a lattice with spacing 9, which puts plenty
// of collinear points into the mix.
func Mixed(rng *rand.Rand) []Point {
	var points []Point
	for i := 1; i <= 10; i++ {
		for j := 1; j <= 10; j++ {
			if i%2 == 0 {
				points = append(points, UniformInts(rng, 1, -100, 100)...)
			} else {
				points = append(points, Point{X: float64(-i * 9), Y: float64(-j * 9)})
			}
		}
	}
	return points
}

// DefaultName is a random, readable file name for generated points.
func DefaultName() string {
	return petname.Generate(2, "-") + ".txt"
}
