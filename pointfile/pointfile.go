// Package pointfile reads and writes point lists.
//
// The text format has one point per line, given as two whitespace separated
// numbers "x y". Blank lines and lines starting with '#' are ignored. SVG
// files can also be used as a point source, in which case the centers of
// circles and the vertices of polygons are collected.
package pointfile

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/osuushi/grahamscan"
	"github.com/pkg/errors"
)

type Point = grahamscan.Point

// FormatError reports a line that could not be read as a point.
type FormatError struct {
	Line int
	Text string
	Err  error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("line %d: %q: %v", e.Line, e.Text, e.Err)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

var (
	errMissingField = errors.New("expected two coordinates")
	errNotFinite    = errors.New("coordinate is not finite")
)

// Read parses points in the text format. Nothing is returned unless the whole
// input is valid.
func Read(in io.Reader) ([]Point, error) {
	points := []Point{}
	scanner := bufio.NewScanner(in)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		point, err := parsePoint(line)
		if err != nil {
			return nil, &FormatError{Line: lineNumber, Text: line, Err: err}
		}
		points = append(points, point)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading points")
	}
	return points, nil
}

func parsePoint(line string) (Point, error) {
	parts := strings.Fields(line)
	if len(parts) < 2 {
		return Point{}, errMissingField
	}
	x, err := parseCoordinate(parts[0])
	if err != nil {
		return Point{}, err
	}
	y, err := parseCoordinate(parts[1])
	if err != nil {
		return Point{}, err
	}
	return Point{X: x, Y: y}, nil
}

func parseCoordinate(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, errNotFinite
	}
	return v, nil
}

// ReadFile loads a point set from path. Files ending in ".svg" are read with
// ReadSVG, anything else as text.
func ReadFile(path string) (*grahamscan.PointSet, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening point file")
	}
	defer file.Close()

	var points []Point
	if strings.EqualFold(filepath.Ext(path), ".svg") {
		points, err = ReadSVG(file)
	} else {
		points, err = Read(file)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", path)
	}
	return grahamscan.NewPointSet(points...), nil
}

// Write outputs points in the text format, using the shortest representation
// that reads back to the same value.
func Write(out io.Writer, points []Point) error {
	w := bufio.NewWriter(out)
	for _, p := range points {
		fmt.Fprintf(w, "%s %s\n", formatCoordinate(p.X), formatCoordinate(p.Y))
	}
	return errors.Wrap(w.Flush(), "writing points")
}

func formatCoordinate(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// WriteFile writes points to a new file at path. An existing file is never
// overwritten.
func WriteFile(path string, points []Point) (err error) {
	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return errors.Wrap(err, "creating point file")
	}
	defer func() {
		if closeErr := file.Close(); err == nil {
			err = errors.Wrap(closeErr, "closing point file")
		}
	}()
	return Write(file, points)
}
