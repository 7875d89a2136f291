package render

import (
	"io"
	"math"
	"os"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/pkg/errors"
)

// WritePNG rasterizes the canvas. Each world unit becomes RasterScale pixels.
func (c *Canvas) WritePNG(out io.Writer) error {
	return errors.Wrap(c.rasterize().EncodePNG(out), "writing png")
}

func (c *Canvas) rasterize() *gg.Context {
	s := c.style
	v := c.Viewport()
	scale := s.RasterScale
	padding := s.Padding * scale

	// Set up the context
	width := int(math.Ceil(scale*v.Width())) + 1
	height := int(math.Ceil(scale*v.Height())) + 1
	dc := gg.NewContext(width, height)
	dc.SetHexColor(s.Background)
	dc.DrawRectangle(0, 0, float64(width), float64(height))
	dc.Fill()

	// Flip the context so the origin is at the bottom left
	dc.Translate(0, float64(height))
	dc.Scale(1, -1)

	// Translate for padding
	dc.Translate(padding, padding)
	// Scale
	dc.Scale(scale, scale)
	// Translate to min
	dc.Translate(-v.Bounds.XMin, -v.Bounds.YMin)

	// Line widths are in pixels, unaffected by the scale above
	strokeWidth := math.Max(1, s.StrokeWidth*scale)
	if s.Axes {
		dc.SetHexColor(s.AxesColor)
		dc.SetLineWidth(math.Max(1, strokeWidth/2))
		for _, axis := range v.Axes() {
			dc.DrawLine(axis.Start.X, axis.Start.Y, axis.End.X, axis.End.Y)
			dc.Stroke()
		}
	}

	dc.SetHexColor(s.PointColor)
	for _, p := range c.points.All() {
		dc.DrawPoint(p.X, p.Y, math.Max(1, s.MarkerRadius*scale))
		dc.Fill()
	}

	dc.SetLineWidth(strokeWidth)
	for _, line := range c.lines {
		dc.DrawLine(line.Start.X, line.Start.Y, line.End.X, line.End.Y)
		dc.Stroke()
	}

	dc.SetHexColor(s.HullColor)
	for _, line := range c.outlines {
		dc.DrawLine(line.Start.X, line.Start.Y, line.End.X, line.End.Y)
		dc.Stroke()
	}
	return dc
}

// Preview prints a PNG file inline in the terminal. Only terminals which
// support the iTerm image protocol will show anything.
func Preview(path string, out io.Writer) error {
	if _, err := os.Stat(path); err != nil {
		return errors.Wrap(err, "preview")
	}
	imgcat.CatFile(path, out)
	return nil
}
