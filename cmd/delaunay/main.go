// Command delaunay triangulates point sets and polygons, legalizes the result
// into a Delaunay mesh and derives its Voronoi diagram.
//
// Input is a scene (.json), an SVG polygon (.svg), or text on stdin: newline
// separated "x y" points. In text, a blank line ends the polygon boundary and
// any points after it are interior points.
package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"time"

	"go.uber.org/zap"
	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/osuushi/delaunay/advanced"
	"github.com/osuushi/delaunay/config"
	"github.com/osuushi/delaunay/internal/server"
	"github.com/osuushi/delaunay/logger"
	"github.com/osuushi/delaunay/render"
)

var (
	app = kingpin.New("delaunay", "Delaunay meshes and Voronoi diagrams.")

	configPath = app.Flag("config", "YAML config file.").Short('c').ExistingFile()
	logLevel   = app.Flag("log-level", "Log level, overriding the config.").Enum("debug", "info", "warn", "error")
	methodName = app.Flag("method", "Triangulation method, overriding the input's default.").Short('m').Enum("fan", "earclip")
	raw        = app.Flag("raw", "Skip legalization.").Bool()
	pngPath    = app.Flag("png", "Write a PNG rendering to this path.").String()
	svgPath    = app.Flag("svg", "Write an SVG rendering to this path.").String()
	htmlPath   = app.Flag("html", "Write an interactive echarts page to this path.").String()
	preview    = app.Flag("preview", "Show the PNG inline when stdout is an iTerm compatible terminal.").Bool()
	dump       = app.Flag("dump", "Dump the mesh structure after the summary.").Bool()

	meshCmd   = app.Command("mesh", "Triangulate and legalize, then list the triangles.").Default()
	meshInput = inputArg(meshCmd)

	polygonCmd   = app.Command("polygon", "Ear-clip a polygon, then legalize and list the triangles.")
	polygonInput = polygonCmd.Arg("input", "Polygon (.svg) or text points; - for stdin.").Required().String()

	hullCmd   = app.Command("hull", "Print the convex hull, counterclockwise.")
	hullInput = inputArg(hullCmd)

	voronoiCmd   = app.Command("voronoi", "Print the Voronoi edges.")
	voronoiInput = inputArg(voronoiCmd)
	voronoiSite  = voronoiCmd.Flag("site", "Only this site's cell: a server name or a vertex index.").String()

	flipCmd   = app.Command("flip", "Flip the triangle under a point with its first illegal neighbor.")
	flipInput = inputArg(flipCmd)
	flipAt    = flipCmd.Flag("at", "Point to hit-test, as \"x,y\".").Required().String()
	flipPixel = flipCmd.Flag("pixel", "Read --at as a pixel of the rendered image rather than world coordinates.").Bool()

	serveCmd  = app.Command("serve", "Serve the interactive demo page.")
	serveAddr = serveCmd.Flag("addr", "Listen address.").Default(":8080").String()
	serveSeed = serveCmd.Flag("seed", "Seed for random sites; 0 uses the clock.").Int64()
)

func inputArg(cmd *kingpin.CmdClause) *string {
	return cmd.Arg("input", "Scene (.json), polygon (.svg) or text points; - or nothing for stdin.").String()
}

// env carries what every command needs.
type env struct {
	cfg *config.Config
	log *zap.Logger
	out  io.Writer
	in   io.Reader
	opts options
}

func main() {
	command := kingpin.MustParse(app.Parse(os.Args[1:]))

	cfg, err := config.Load(*configPath)
	app.FatalIfError(err, "config")
	if *logLevel != "" {
		cfg.Log.Level = *logLevel
	}
	level, err := logger.ParseLevel(cfg.Log.Level)
	app.FatalIfError(err, "log level")
	log := logger.New(os.Stderr, level)
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	e := &env{cfg: cfg, log: log, out: os.Stdout, in: os.Stdin, opts: flagOptions()}
	switch command {
	case meshCmd.FullCommand():
		err = e.runMesh(ctx, *meshInput)
	case polygonCmd.FullCommand():
		e.opts.method = advanced.EarClip.String()
		err = e.runMesh(ctx, *polygonInput)
	case hullCmd.FullCommand():
		err = e.runHull(*hullInput)
	case voronoiCmd.FullCommand():
		err = e.runVoronoi(ctx, *voronoiInput, *voronoiSite)
	case flipCmd.FullCommand():
		err = e.runFlip(ctx, *flipInput, *flipAt, *flipPixel)
	case serveCmd.FullCommand():
		seed := *serveSeed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		err = server.New(cfg, log, level, seed).ListenAndServe(ctx, *serveAddr)
	}
	app.FatalIfError(err, "%s", command)
}

// method picks the triangulation method: the flag, then ear clipping for
// polygon inputs, then the config.
func (e *env) method(in *input) (advanced.Method, error) {
	if e.opts.method != "" {
		return advanced.ParseMethod(e.opts.method)
	}
	if in.Polygon {
		return advanced.EarClip, nil
	}
	return e.cfg.Method()
}

// options are the global output and behavior flags, copied out of kingpin so
// commands can run without it.
type options struct {
	method         string
	raw            bool
	png, svg, html string
	preview, dump  bool
	color          bool
}

func flagOptions() options {
	return options{
		method:  *methodName,
		raw:     *raw,
		png:     *pngPath,
		svg:     *svgPath,
		html:    *htmlPath,
		preview: *preview,
		dump:    *dump,
		color:   render.IsTerminal(os.Stdout),
	}
}
