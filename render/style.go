package render

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Style controls how a Canvas is drawn. Lengths are in world units, except for
// RasterScale, which is the number of pixels per world unit in PNG output.
// Colors are hex strings such as "#ff8800".
type Style struct {
	Padding      float64 `yaml:"padding"`
	MarkerRadius float64 `yaml:"marker_radius"`
	StrokeWidth  float64 `yaml:"stroke_width"`
	Background   string  `yaml:"background"`
	PointColor   string  `yaml:"point_color"`
	HullColor    string  `yaml:"hull_color"`
	AxesColor    string  `yaml:"axes_color"`
	Axes         bool    `yaml:"axes"`
	RasterScale  float64 `yaml:"raster_scale"`
}

func DefaultStyle() Style {
	return Style{
		Padding:      5,
		MarkerRadius: 0.5,
		StrokeWidth:  0.25,
		Background:   "#ffffff",
		PointColor:   "#000000",
		HullColor:    "#d0342c",
		AxesColor:    "#9e9e9e",
		Axes:         true,
		RasterScale:  4,
	}
}

// LoadStyle reads a YAML style file. Fields missing from the file keep their
// default values, and unknown fields are an error.
func LoadStyle(path string) (Style, error) {
	file, err := os.Open(path)
	if err != nil {
		return Style{}, errors.Wrap(err, "opening style")
	}
	defer file.Close()
	style, err := DecodeStyle(file)
	return style, errors.Wrapf(err, "loading style %s", path)
}

func DecodeStyle(in io.Reader) (Style, error) {
	style := DefaultStyle()
	decoder := yaml.NewDecoder(in)
	decoder.KnownFields(true)
	if err := decoder.Decode(&style); err != nil && err != io.EOF {
		return Style{}, errors.Wrap(err, "decoding style")
	}
	if err := style.Validate(); err != nil {
		return Style{}, err
	}
	return style, nil
}

func (s Style) Validate() error {
	switch {
	case s.Padding < 0:
		return errors.Errorf("padding must not be negative, got %v", s.Padding)
	case s.MarkerRadius <= 0:
		return errors.Errorf("marker_radius must be positive, got %v", s.MarkerRadius)
	case s.StrokeWidth <= 0:
		return errors.Errorf("stroke_width must be positive, got %v", s.StrokeWidth)
	case s.RasterScale <= 0:
		return errors.Errorf("raster_scale must be positive, got %v", s.RasterScale)
	}
	for name, color := range map[string]string{
		"background":  s.Background,
		"point_color": s.PointColor,
		"hull_color":  s.HullColor,
		"axes_color":  s.AxesColor,
	} {
		if !isHexColor(color) {
			return errors.Errorf("%s must be a hex color, got %q", name, color)
		}
	}
	return nil
}

func isHexColor(s string) bool {
	if len(s) != 4 && len(s) != 7 || s[0] != '#' {
		return false
	}
	for _, r := range s[1:] {
		if !('0' <= r && r <= '9' || 'a' <= r && r <= 'f' || 'A' <= r && r <= 'F') {
			return false
		}
	}
	return true
}
