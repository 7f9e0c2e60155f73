// Command pathtool inspects and edits SVG path data with the geom library.
//
//	pathtool bounds "M0 0L10 0L10 10Z"
//	pathtool contains -x 2 -y 1 "M0 0L10 0L10 10Z"
//	pathtool clip --rect 0,0,5,5 "M0 0L10 0L10 10Z"
//	pathtool transform --rotate 90 "M0 0L10 0"
//	pathtool render -W 64 -H 64 -o out.png "M8 8H56V56H8Z"
package main

import (
	"fmt"
	"image/png"
	"io"
	"log/slog"
	"math"
	"os"
	"strings"

	"github.com/tdewolff/argp"
	"github.com/tdewolff/parse/v2/strconv"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/geom"
	"github.com/gogpu/geom/raster"
	"github.com/gogpu/geom/svgpath"
)

// stdout is replaced in tests.
var stdout io.Writer = os.Stdout

var printer = message.NewPrinter(language.English)

type Main struct{}

type Bounds struct {
	Tight   bool   `desc:"Tight bounds over curve extrema instead of control points"`
	Config  string `short:"c" desc:"TOML config file"`
	Verbose bool   `short:"v" desc:"Debug logging to stderr"`
	Path    string `index:"0" desc:"SVG path data"`
}

type Info struct {
	Config  string `short:"c" desc:"TOML config file"`
	Verbose bool   `short:"v" desc:"Debug logging to stderr"`
	Path    string `index:"0" desc:"SVG path data"`
}

type Contains struct {
	X       float64 `short:"x" desc:"Point x"`
	Y       float64 `short:"y" desc:"Point y"`
	EvenOdd bool    `desc:"Use the even-odd fill rule"`
	Config  string  `short:"c" desc:"TOML config file"`
	Verbose bool    `short:"v" desc:"Debug logging to stderr"`
	Path    string  `index:"0" desc:"SVG path data"`
}

type Clip struct {
	Rect    string `short:"r" desc:"Clip rectangle as x,y,w,h"`
	Config  string `short:"c" desc:"TOML config file"`
	Verbose bool   `short:"v" desc:"Debug logging to stderr"`
	Path    string `index:"0" desc:"SVG path data"`
}

type Transform struct {
	Translate string  `short:"t" default:"0,0" desc:"Translation as tx,ty"`
	Scale     string  `short:"s" default:"1,1" desc:"Scale as sx,sy"`
	Rotate    float64 `desc:"Rotation in degrees"`
	Config    string  `short:"c" desc:"TOML config file"`
	Verbose   bool    `short:"v" desc:"Debug logging to stderr"`
	Path      string  `index:"0" desc:"SVG path data"`
}

type Render struct {
	Width   int    `short:"W" default:"256" desc:"Image width"`
	Height  int    `short:"H" default:"256" desc:"Image height"`
	Output  string `short:"o" default:"out.png" desc:"Output PNG file"`
	Config  string `short:"c" desc:"TOML config file"`
	Verbose bool   `short:"v" desc:"Debug logging to stderr"`
	Path    string `index:"0" desc:"SVG path data"`
}

func main() {
	root := argp.NewCmd(&Main{}, "Inspect and edit SVG path data")
	root.AddCmd(&Bounds{}, "bounds", "Print the bounding box")
	root.AddCmd(&Info{}, "info", "Print segment count, area, length and detected primitive")
	root.AddCmd(&Contains{}, "contains", "Test whether a point is inside the path")
	root.AddCmd(&Clip{}, "clip", "Intersect the path with a rectangle")
	root.AddCmd(&Transform{}, "transform", "Scale, rotate and translate the path")
	root.AddCmd(&Render{}, "render", "Rasterize the path to a PNG mask")
	root.Parse()
	root.PrintHelp()
}

func (cmd *Main) Run() error {
	return argp.ShowUsage
}

// load sets up logging, reads the config and parses the path argument.
func load(data, config string, verbose bool) (*geom.Path, error) {
	if verbose {
		geom.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}
	cfg := geom.DefaultConfig()
	if config != "" {
		var err error
		if cfg, err = geom.LoadConfigFile(config); err != nil {
			return nil, err
		}
		geom.Logger().Debug("pathtool: loaded config", slog.String("file", config))
	}
	if strings.TrimSpace(data) == "" {
		return nil, argp.ShowUsage
	}
	return svgpath.Parse(data, cfg.PathOptions()...)
}

// parseFloats reads exactly n comma separated numbers.
func parseFloats(s string, n int) ([]float64, error) {
	fields := strings.Split(s, ",")
	if len(fields) != n {
		return nil, fmt.Errorf("%q: want %d comma separated numbers", s, n)
	}
	out := make([]float64, n)
	for i, f := range fields {
		b := []byte(strings.TrimSpace(f))
		v, m := strconv.ParseFloat(b)
		if m == 0 || m != len(b) {
			return nil, fmt.Errorf("%q: bad number %q", s, f)
		}
		out[i] = v
	}
	return out, nil
}

func printRect(r geom.Rect) {
	printer.Fprintf(stdout, "x=%.4f y=%.4f w=%.4f h=%.4f\n", r.X, r.Y, r.W, r.H)
}

func (cmd *Bounds) Run() error {
	p, err := load(cmd.Path, cmd.Config, cmd.Verbose)
	if err != nil {
		return err
	}
	if cmd.Tight {
		printRect(p.TightBounds())
	} else {
		printRect(p.Bounds())
	}
	return nil
}

func (cmd *Info) Run() error {
	p, err := load(cmd.Path, cmd.Config, cmd.Verbose)
	if err != nil {
		return err
	}
	printer.Fprintf(stdout, "segments: %d\n", p.Len())
	printer.Fprintf(stdout, "fill rule: %v\n", p.FillRule())
	printer.Fprintf(stdout, "area: %.4f\n", math.Abs(p.Area()))
	printer.Fprintf(stdout, "length: %.4f\n", p.Length())
	printer.Fprintf(stdout, "primitive: %v\n", geom.DetectPrimitive(p).Kind)
	return nil
}

func (cmd *Contains) Run() error {
	p, err := load(cmd.Path, cmd.Config, cmd.Verbose)
	if err != nil {
		return err
	}
	if cmd.EvenOdd {
		p.SetFillRule(geom.FillRuleEvenOdd)
	}
	printer.Fprintf(stdout, "%t\n", p.Contains(cmd.X, cmd.Y))
	return nil
}

func (cmd *Clip) Run() error {
	if cmd.Rect == "" {
		fmt.Fprintln(os.Stderr, "ERROR: must specify clip rectangle")
		return argp.ShowUsage
	}
	v, err := parseFloats(cmd.Rect, 4)
	if err != nil {
		return err
	}
	p, err := load(cmd.Path, cmd.Config, cmd.Verbose)
	if err != nil {
		return err
	}
	if !p.Intersect(geom.NewRect(v[0], v[1], v[2], v[3])) {
		fmt.Fprintln(stdout, "empty")
		return nil
	}
	fmt.Fprintln(stdout, svgpath.Format(p))
	return nil
}

func (cmd *Transform) Run() error {
	t, err := parseFloats(cmd.Translate, 2)
	if err != nil {
		return err
	}
	s, err := parseFloats(cmd.Scale, 2)
	if err != nil {
		return err
	}
	p, err := load(cmd.Path, cmd.Config, cmd.Verbose)
	if err != nil {
		return err
	}
	// Scale first, then rotate, then translate.
	m := geom.Translate(t[0], t[1]).
		Multiply(geom.Rotate(cmd.Rotate * math.Pi / 180)).
		Multiply(geom.Scale(s[0], s[1]))
	p.Transform(m)
	fmt.Fprintln(stdout, svgpath.Format(p))
	return nil
}

func (cmd *Render) Run() error {
	if cmd.Width <= 0 || cmd.Height <= 0 {
		fmt.Fprintln(os.Stderr, "ERROR: image size must be positive")
		return argp.ShowUsage
	}
	p, err := load(cmd.Path, cmd.Config, cmd.Verbose)
	if err != nil {
		return err
	}
	mask := raster.Fill(p, cmd.Width, cmd.Height)
	geom.Logger().Debug("pathtool: rendered",
		slog.Any("pixel_bounds", raster.PixelBounds(p)),
		slog.String("output", cmd.Output))

	f, err := os.Create(cmd.Output)
	if err != nil {
		return err
	}
	if err := png.Encode(f, mask); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
