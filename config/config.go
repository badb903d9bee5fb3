// Package config loads the YAML file shared by the CLI and the demo server.
//
// Every field is optional. Anything missing keeps its value from Default, so
// a config file only needs to name what it changes:
//
//	legalize:
//	  max_iterations: 5000
//	render:
//	  voronoi: false
package config

import (
	"io"
	"os"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/osuushi/delaunay/advanced"
)

type Config struct {
	Triangulation Triangulation `yaml:"triangulation"`
	Legalize      Legalize      `yaml:"legalize"`
	Render        Render        `yaml:"render"`
	Log           Log           `yaml:"log"`
}

type Triangulation struct {
	// "fan" or "earclip"
	Method             string  `yaml:"method"`
	Epsilon            float64 `yaml:"epsilon"`
	AreaTolerance      float64 `yaml:"area_tolerance"`
	DuplicateTolerance float64 `yaml:"duplicate_tolerance"`
}

type Legalize struct {
	MaxIterations int `yaml:"max_iterations"`
	// Zero means no deadline.
	Timeout time.Duration `yaml:"timeout"`
}

type Render struct {
	Width   int  `yaml:"width"`
	Height  int  `yaml:"height"`
	Margin  int  `yaml:"margin"`
	Circles bool `yaml:"circles"`
	Voronoi bool `yaml:"voronoi"`
	Labels  bool `yaml:"labels"`
}

type Log struct {
	Level string `yaml:"level"`
}

func Default() *Config {
	return &Config{
		Triangulation: Triangulation{
			Method:             advanced.Fan.String(),
			Epsilon:            advanced.DefaultEpsilon,
			AreaTolerance:      advanced.DefaultAreaTolerance,
			DuplicateTolerance: advanced.DefaultDuplicateTolerance,
		},
		Legalize: Legalize{
			MaxIterations: advanced.DefaultMaxIterations,
		},
		Render: Render{
			Width:   800,
			Height:  800,
			Margin:  20,
			Circles: true,
			Voronoi: true,
			Labels:  true,
		},
		Log: Log{
			Level: "info",
		},
	}
}

// Load reads the file at path over the defaults. An empty path returns the
// defaults unchanged.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open config")
	}
	defer f.Close()
	cfg, err := Read(f)
	if err != nil {
		return nil, errors.Wrapf(err, "config %s", path)
	}
	return cfg, nil
}

// Read decodes YAML from r over the defaults. Unknown keys are an error, so
// a misspelled option does not silently fall back to its default.
func Read(r io.Reader) (*Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && err != io.EOF {
		return nil, errors.Wrap(err, "decode")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if _, err := advanced.ParseMethod(c.Triangulation.Method); err != nil {
		return err
	}
	if c.Triangulation.Epsilon < 0 || c.Triangulation.AreaTolerance < 0 || c.Triangulation.DuplicateTolerance < 0 {
		return errors.New("tolerances must not be negative")
	}
	if c.Legalize.MaxIterations < 1 {
		return errors.Errorf("max_iterations must be positive, got %d", c.Legalize.MaxIterations)
	}
	if c.Legalize.Timeout < 0 {
		return errors.Errorf("negative timeout %s", c.Legalize.Timeout)
	}
	if c.Render.Width < 1 || c.Render.Height < 1 {
		return errors.Errorf("render size %dx%d is empty", c.Render.Width, c.Render.Height)
	}
	if c.Render.Margin < 0 || 2*c.Render.Margin >= c.Render.Width || 2*c.Render.Margin >= c.Render.Height {
		return errors.Errorf("margin %d does not fit in %dx%d", c.Render.Margin, c.Render.Width, c.Render.Height)
	}
	return nil
}

// Method is the configured triangulation method.
func (c *Config) Method() (advanced.Method, error) {
	m, err := advanced.ParseMethod(c.Triangulation.Method)
	return m, errors.Wrap(err, "triangulation.method")
}

// Options converts the engine sections into engine options, logging to log.
func (c *Config) Options(log *zap.Logger) []advanced.Option {
	return []advanced.Option{
		advanced.WithEpsilon(c.Triangulation.Epsilon),
		advanced.WithAreaTolerance(c.Triangulation.AreaTolerance),
		advanced.WithDuplicateTolerance(c.Triangulation.DuplicateTolerance),
		advanced.WithMaxIterations(c.Legalize.MaxIterations),
		advanced.WithLogger(log),
	}
}
