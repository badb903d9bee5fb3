// Package server is the interactive demo: a form for generating sites, an
// echarts view of the resulting mesh and its Voronoi diagram, and the build's
// log alongside.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"html"
	"io"
	"math/rand"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/osuushi/delaunay/advanced"
	"github.com/osuushi/delaunay/config"
	"github.com/osuushi/delaunay/internal/pipeline"
	"github.com/osuushi/delaunay/logger"
	"github.com/osuushi/delaunay/render"
	"github.com/osuushi/delaunay/scene"
)

const (
	defaultSize  = 1000
	defaultSites = 12
	maxSize      = 5000
	maxSites     = 500
)

type Server struct {
	cfg   *config.Config
	log   *zap.Logger
	level zapcore.Level

	mu  sync.Mutex
	rng *rand.Rand
}

// New makes a server that builds meshes with cfg. Request logs are captured
// at level and shown on the page; log receives one line per request.
func New(cfg *config.Config, log *zap.Logger, level zapcore.Level, seed int64) *Server {
	return &Server{
		cfg:   cfg,
		log:   log,
		level: level,
		rng:   rand.New(rand.NewSource(seed)),
	}
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handlePage)
	mux.HandleFunc("/api/mesh", s.handleAPI)
	return mux
}

// ListenAndServe serves on addr until ctx is done, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	errc := make(chan error, 1)
	go func() {
		errc <- srv.ListenAndServe()
	}()
	s.log.Info("serving", zap.String("addr", addr))

	select {
	case err := <-errc:
		return errors.Wrap(err, "listen")
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

type pageParams struct {
	Width, Height, Sites int
	Random, Voronoi      bool
}

func parsePageParams(r *http.Request) pageParams {
	params := pageParams{
		Width:   defaultSize,
		Height:  defaultSize,
		Sites:   defaultSites,
		Random:  true,
		Voronoi: true,
	}
	if r.Method != http.MethodPost {
		return params
	}
	if err := r.ParseForm(); err != nil {
		return params
	}
	params.Width = formInt(r, "width", defaultSize, maxSize)
	params.Height = formInt(r, "height", defaultSize, maxSize)
	params.Sites = formInt(r, "sites", defaultSites, maxSites)
	params.Random = r.FormValue("random") == "true"
	params.Voronoi = r.FormValue("voronoi") == "true"
	return params
}

// formInt reads a positive integer field, clamped to max. Missing or
// malformed values give def.
func formInt(r *http.Request, key string, def, max int) int {
	v, err := strconv.Atoi(r.FormValue(key))
	if err != nil || v <= 0 {
		return def
	}
	if v > max {
		return max
	}
	return v
}

func (s *Server) sites(params pageParams) []advanced.Point {
	if !params.Random {
		return GridSites(params.Sites, params.Width, params.Height)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return RandomSites(s.rng, params.Sites, params.Width, params.Height)
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	params := parsePageParams(r)
	capture := logger.NewCapture(s.level)
	defer capture.Logger.Sync()

	sites := s.sites(params)
	capture.Logger.Info("generated sites",
		zap.Int("count", len(sites)),
		zap.Bool("random", params.Random),
		zap.Int("width", params.Width),
		zap.Int("height", params.Height),
	)

	result, err := pipeline.Run(r.Context(), s.cfg, capture.Logger, pipeline.Request{
		Points: sites,
		Method: advanced.Fan,
		Site:   advanced.NoSite,
	})
	if err != nil {
		capture.Logger.Error("build failed", zap.Error(err))
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprintln(w, pagePart1)
	if result != nil {
		style := pipeline.Style(s.cfg)
		style.Voronoi = params.Voronoi
		frame := result.Frame(nil, nil, 0)
		title := fmt.Sprintf("%d sites, %d triangles", len(result.Mesh.Points), len(result.Mesh.Triangles))
		if err := render.RenderChart(w, frame, style, title); err != nil {
			s.log.Error("chart render failed", zap.Error(err))
		}
	} else {
		fmt.Fprintf(w, "<p class=\"error\">%s</p>\n", html.EscapeString(err.Error()))
	}
	fmt.Fprintln(w, pagePart2)
	fmt.Fprintln(w, capture.HTML())
	fmt.Fprintln(w, pagePart3)

	s.log.Info("page built", zap.Int("sites", len(sites)), zap.Error(err))
}

// MeshResponse is the JSON answer of /api/mesh.
type MeshResponse struct {
	Points    []string       `json:"points"`
	Triangles [][3]int       `json:"triangles"`
	Voronoi   []VoronoiEntry `json:"voronoi"`
	Delaunay  bool           `json:"delaunay"`
	Skipped   []string       `json:"skipped,omitempty"`
	Error     string         `json:"error,omitempty"`
}

type VoronoiEntry struct {
	From  string `json:"from"`
	To    string `json:"to"`
	Sites [2]int `json:"sites"`
}

// handleAPI meshes a posted scene and answers with the mesh as JSON. A
// ?site=name query restricts the Voronoi part to that server's cell.
func (s *Server) handleAPI(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		http.Error(w, "POST a scene", http.StatusMethodNotAllowed)
		return
	}
	sc, err := scene.Load(io.LimitReader(r.Body, 1<<20))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, MeshResponse{Error: err.Error()})
		return
	}
	site := advanced.NoSite
	if name := r.URL.Query().Get("site"); name != "" {
		if site = sc.ServerIndex(name); site < 0 {
			writeJSON(w, http.StatusBadRequest, MeshResponse{Error: fmt.Sprintf("no server named %q", name)})
			return
		}
	}

	result, err := pipeline.Run(r.Context(), s.cfg, s.log, pipeline.Request{
		Points: sc.Sites(),
		Method: advanced.Fan,
		Site:   site,
	})
	if result == nil {
		writeJSON(w, http.StatusUnprocessableEntity, MeshResponse{Error: err.Error(), Skipped: sc.Skipped})
		return
	}
	resp := MeshResponse{
		Points:    make([]string, len(result.Mesh.Points)),
		Triangles: make([][3]int, len(result.Mesh.Triangles)),
		Voronoi:   make([]VoronoiEntry, len(result.Diagram.Edges)),
		Delaunay:  result.Delaunay,
		Skipped:   sc.Skipped,
	}
	if err != nil {
		resp.Error = err.Error()
	}
	for i, p := range result.Mesh.Points {
		resp.Points[i] = scene.FormatPosition(p)
	}
	for i, t := range result.Mesh.Triangles {
		resp.Triangles[i] = t.V
	}
	for i, e := range result.Diagram.Edges {
		resp.Voronoi[i] = VoronoiEntry{
			From:  scene.FormatPosition(e.A),
			To:    scene.FormatPosition(e.B),
			Sites: e.Sites,
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.Encode(v)
}
