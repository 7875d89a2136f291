package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/logrusorgru/aurora"
	"github.com/osuushi/grahamscan"
	"github.com/osuushi/grahamscan/gen"
	"github.com/osuushi/grahamscan/pointfile"
	"github.com/osuushi/grahamscan/render"
	"github.com/pkg/errors"
	"github.com/pkg/profile"
	"gopkg.in/alecthomas/kingpin.v2"
)

// Computes the convex hull of a point file and draws it. Input is one point
// per line in the form "x y", or an SVG file whose circles and polygons are
// used as points. Without an input file, points are read from stdin.
//
// Images are never overwritten. If the output file exists, nothing is written.

var (
	app = kingpin.New("grahamscan", "Convex hulls of planar point sets.")

	hullCmd     = app.Command("hull", "Compute the hull of a point file and draw it.").Default()
	hullInput   = hullCmd.Arg("input", "Point file. Points are read from stdin when omitted.").String()
	hullOutput  = hullCmd.Flag("output", "SVG file to write.").Short('o').String()
	hullPNG     = hullCmd.Flag("png", "PNG file to write.").String()
	hullPreview = hullCmd.Flag("preview", "Show the PNG in the terminal (iTerm only).").Bool()
	hullStyle   = hullCmd.Flag("style", "YAML style file.").ExistingFile()
	hullQuiet   = hullCmd.Flag("quiet", "Only print errors.").Short('q').Bool()

	genCmd    = app.Command("generate", "Write a random point file.")
	genOutput = genCmd.Flag("output", "File to write. Defaults to a random name.").Short('o').String()
	genSeed   = genCmd.Flag("seed", "Random seed.").Default("1").Uint64()
	genCount  = genCmd.Flag("count", "Number of points for the uniform mode.").Default("100").Int()
	genMode   = genCmd.Flag("mode", "Point distribution.").Default("mixed").Enum("mixed", "uniform", "grid")

	profileDir = app.Flag("profile", "Write a CPU profile to this directory.").String()
	noColor    = app.Flag("no-color", "Disable colored output.").Bool()
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("grahamscan: ")

	command := kingpin.MustParse(app.Parse(os.Args[1:]))
	au := aurora.NewAurora(!*noColor)
	if err := run(command, au); err != nil {
		log.Print(au.Red(err))
		os.Exit(1)
	}
}

func run(command string, au aurora.Aurora) error {
	if *profileDir != "" {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(*profileDir), profile.Quiet).Stop()
	}

	switch command {
	case hullCmd.FullCommand():
		return runHull(au, os.Stdin, os.Stdout)
	case genCmd.FullCommand():
		return runGenerate(au, os.Stdout)
	}
	return errors.Errorf("unknown command %q", command)
}

func runHull(au aurora.Aurora, stdin io.Reader, stdout io.Writer) error {
	style := render.DefaultStyle()
	if *hullStyle != "" {
		var err error
		if style, err = render.LoadStyle(*hullStyle); err != nil {
			return err
		}
	}

	set, err := readPointSet(*hullInput, stdin)
	if err != nil {
		return err
	}

	canvas := render.NewCanvas(style)
	for _, p := range set.All() {
		canvas.DrawPoint(p)
	}

	hull, err := grahamscan.HullOf(set)
	if err != nil {
		return errors.Wrap(err, "computing hull")
	}
	canvas.DrawHull(hull)

	if !*hullQuiet {
		printSummary(au, stdout, set.Len(), hull)
	}

	if *hullOutput != "" {
		if err := canvas.SaveSVG(*hullOutput); err != nil {
			return err
		}
	}
	if *hullPNG != "" {
		if err := canvas.SavePNG(*hullPNG); err != nil {
			return err
		}
		if *hullPreview {
			return render.Preview(*hullPNG, stdout)
		}
	} else if *hullPreview {
		return errors.New("--preview needs --png")
	}
	return nil
}

func readPointSet(path string, stdin io.Reader) (*grahamscan.PointSet, error) {
	if path != "" {
		return pointfile.ReadFile(path)
	}
	points, err := pointfile.Read(stdin)
	if err != nil {
		return nil, errors.Wrap(err, "reading stdin")
	}
	return grahamscan.NewPointSet(points...), nil
}

func printSummary(au aurora.Aurora, out io.Writer, count int, hull grahamscan.Polygon) {
	fmt.Fprintf(out, "Read %s points, hull has %s vertices, area %s\n",
		au.Bold(count), au.Bold(len(hull.Points)), au.Bold(fmt.Sprintf("%g", hull.Area())))
	for _, p := range hull.Points {
		fmt.Fprintf(out, "%s %g %g\n", au.Cyan("*"), p.X, p.Y)
	}
}

func runGenerate(au aurora.Aurora, stdout io.Writer) error {
	rng := gen.NewRand(*genSeed)
	var points []grahamscan.Point
	switch *genMode {
	case "mixed":
		points = gen.Mixed(rng)
	case "uniform":
		points = gen.UniformInts(rng, *genCount, -100, 100)
	case "grid":
		points = gen.Grid(10, 10)
	}

	path := *genOutput
	if path == "" {
		path = gen.DefaultName()
	}
	if err := pointfile.WriteFile(path, points); err != nil {
		return err
	}
	fmt.Fprintf(stdout, "Wrote %s points to %s\n", au.Bold(len(points)), au.Green(path))
	return nil
}
