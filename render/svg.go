package render

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/pkg/errors"
)

const svgPrelude = `<?xml version="1.0" standalone="no"?>
<!DOCTYPE svg PUBLIC "-//W3C//DTD SVG 1.1//EN"
"http://www.w3.org/Graphics/SVG/1.1/DTD/svg11.dtd">
`

// WriteSVG writes the canvas as a standalone SVG 1.1 document. Axes come
// first, then point markers, then lines, then hull outlines, so outlines are
// drawn on top.
func (c *Canvas) WriteSVG(out io.Writer) error {
	w := bufio.NewWriter(out)
	v := c.Viewport()
	s := c.style

	width, height := num(v.Width()), num(v.Height())
	fmt.Fprint(w, svgPrelude)
	fmt.Fprintf(w, "<svg width=\"100%%\" height=\"100%%\" viewBox=\"0 0 %s %s\" version=\"1.1\"\n", width, height)
	fmt.Fprint(w, "xmlns=\"http://www.w3.org/2000/svg\">\n")
	fmt.Fprintf(w, "<rect x=\"0\" y=\"0\" width=\"%s\" height=\"%s\" fill=\"%s\"/>\n", width, height, s.Background)

	if s.Axes {
		for _, axis := range v.Axes() {
			writeSVGLine(w, v, axis, s.AxesColor, s.StrokeWidth/2)
		}
	}
	for _, p := range c.points.All() {
		q := v.ToImage(p)
		fmt.Fprintf(w, "<circle cx=\"%s\" cy=\"%s\" r=\"%s\" fill=\"%s\"/>\n",
			num(q.X), num(q.Y), num(s.MarkerRadius), s.PointColor)
	}
	for _, line := range c.lines {
		writeSVGLine(w, v, line, s.PointColor, s.StrokeWidth)
	}
	for _, line := range c.outlines {
		writeSVGLine(w, v, line, s.HullColor, s.StrokeWidth)
	}
	fmt.Fprint(w, "</svg>\n")
	return errors.Wrap(w.Flush(), "writing svg")
}

func writeSVGLine(w io.Writer, v Viewport, line Segment, color string, width float64) {
	start, end := v.ToImage(line.Start), v.ToImage(line.End)
	fmt.Fprintf(w, "<line x1=\"%s\" y1=\"%s\" x2=\"%s\" y2=\"%s\" stroke=\"%s\" stroke-width=\"%s\"/>\n",
		num(start.X), num(start.Y), num(end.X), num(end.Y), color, num(width))
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
