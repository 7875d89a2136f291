// Package render draws points, line segments and hulls to SVG documents and
// PNG images.
package render

import (
	"io"
	"os"

	"github.com/osuushi/grahamscan"
	"github.com/pkg/errors"
)

type Point = grahamscan.Point

type Segment struct {
	Start, End Point
}

// ErrFileExists is returned by the Save methods instead of overwriting a file.
var ErrFileExists = errors.New("file already exists")

// Canvas collects points and lines in memory until they are written out. The
// drawing area is the bounding box of the points, so lines should only join
// points that were drawn too.
type Canvas struct {
	style    Style
	points   *grahamscan.PointSet
	lines    []Segment
	outlines []Segment
}

func NewCanvas(style Style) *Canvas {
	return &Canvas{style: style, points: grahamscan.NewPointSet()}
}

func (c *Canvas) DrawPoint(p Point) {
	c.points.Append(p)
}

func (c *Canvas) DrawLine(start, end Point) {
	c.lines = append(c.lines, Segment{start, end})
}

// DrawHull outlines a hull by joining consecutive vertices and closing the
// loop back to the first one.
func (c *Canvas) DrawHull(hull grahamscan.Polygon) {
	for i, vertex := range hull.Points {
		next := hull.Points[(i+1)%len(hull.Points)]
		c.outlines = append(c.outlines, Segment{vertex, next})
	}
}

func (c *Canvas) Viewport() Viewport {
	return NewViewport(c.points.Bounds(), c.style.Padding)
}

func (c *Canvas) SaveSVG(path string) error {
	return c.save(path, c.WriteSVG)
}

func (c *Canvas) SavePNG(path string) error {
	return c.save(path, c.WritePNG)
}

func (c *Canvas) save(path string, write func(io.Writer) error) (err error) {
	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if os.IsExist(err) {
		return errors.Wrap(ErrFileExists, path)
	}
	if err != nil {
		return errors.Wrap(err, "creating image")
	}
	defer func() {
		if closeErr := file.Close(); err == nil {
			err = errors.Wrap(closeErr, "closing image")
		}
	}()
	return write(file)
}
