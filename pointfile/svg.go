package pointfile

import (
	"io"
	"strings"

	"github.com/JoshVarga/svgparser"
	"github.com/pkg/errors"
)

// ReadSVG collects points from an SVG document: the center of every circle
// and every vertex of every polygon, in document order. The coordinates are
// taken as they are written, without undoing any flip of the y axis.
func ReadSVG(in io.Reader) ([]Point, error) {
	root, err := svgparser.Parse(in, false)
	if err != nil {
		return nil, errors.Wrap(err, "parsing svg")
	}

	points := []Point{}
	var visit func(el *svgparser.Element) error
	visit = func(el *svgparser.Element) error {
		switch el.Name {
		case "circle":
			p, err := parseSVGPoint(el.Attributes["cx"], el.Attributes["cy"])
			if err != nil {
				return errors.Wrap(err, "circle")
			}
			points = append(points, p)
		case "polygon", "polyline":
			for _, pair := range splitPointList(el.Attributes["points"]) {
				p, err := parseSVGPoint(pair[0], pair[1])
				if err != nil {
					return errors.Wrap(err, el.Name)
				}
				points = append(points, p)
			}
		}
		for _, child := range el.Children {
			if err := visit(child); err != nil {
				return err
			}
		}
		return nil
	}
	if err := visit(root); err != nil {
		return nil, err
	}
	return points, nil
}

func parseSVGPoint(xs, ys string) (Point, error) {
	x, err := parseCoordinate(xs)
	if err != nil {
		return Point{}, errors.Wrapf(err, "x coordinate %q", xs)
	}
	y, err := parseCoordinate(ys)
	if err != nil {
		return Point{}, errors.Wrapf(err, "y coordinate %q", ys)
	}
	return Point{X: x, Y: y}, nil
}

// SVG point lists separate numbers with commas and/or whitespace. A trailing
// odd number is paired with an empty string so that it fails to parse.
func splitPointList(s string) [][2]string {
	numbers := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	var pairs [][2]string
	for i := 0; i < len(numbers); i += 2 {
		pair := [2]string{numbers[i], ""}
		if i+1 < len(numbers) {
			pair[1] = numbers[i+1]
		}
		pairs = append(pairs, pair)
	}
	return pairs
}

