package config

import (
	"fmt"
	"os"
	"slices"

	"github.com/san-kum/gridplot/internal/figure"
	"gopkg.in/yaml.v3"
)

const (
	DefaultDataFile = "data.csv"
	DefaultXColumn  = "Element"
	DefaultWidth    = 1000
	DefaultHeight   = 800
	DefaultTitle    = "gridplot"
	DefaultRows     = 2
	DefaultCols     = 2
)

// Viewers a figure can be presented with.
const (
	ViewerWindow = "window"
	ViewerTUI    = "tui"
	ViewerASCII  = "ascii"
)

var Viewers = []string{ViewerWindow, ViewerTUI, ViewerASCII}

type Config struct {
	DataFile string        `yaml:"data_file"`
	XColumn  string        `yaml:"x_column"`
	Viewer   string        `yaml:"viewer"`
	Window   WindowConfig  `yaml:"window"`
	Grid     GridConfig    `yaml:"grid"`
	Panels   []PanelConfig `yaml:"panels"`
}

type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

type GridConfig struct {
	Rows int `yaml:"rows"`
	Cols int `yaml:"cols"`
}

type PanelConfig struct {
	Title  string         `yaml:"title"`
	Series []SeriesConfig `yaml:"series,omitempty"`
}

type SeriesConfig struct {
	Column string `yaml:"column"`
	Label  string `yaml:"label,omitempty"`
}

// DefaultConfig shows data.csv in a window with the default panel layout.
func DefaultConfig() *Config {
	cfg := &Config{
		DataFile: DefaultDataFile,
		Viewer:   ViewerWindow,
		Window: WindowConfig{
			Width:  DefaultWidth,
			Height: DefaultHeight,
			Title:  DefaultTitle,
		},
	}
	cfg.SetLayout(figure.DefaultLayout())
	return cfg
}

// Load overlays the YAML file at path on DefaultConfig. A panels list in the
// file replaces the default panels as a whole.
func Load(path string) (*Config, error) {
	return LoadWith(path, DefaultConfig())
}

// LoadWith overlays the YAML file at path on base, e.g. a preset.
func LoadWith(path string, base *Config) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, base); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return base, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if c.DataFile == "" {
		return fmt.Errorf("config: data_file is empty")
	}
	if !slices.Contains(Viewers, c.Viewer) {
		return fmt.Errorf("config: unknown viewer %q (available: %v)", c.Viewer, Viewers)
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("config: window size %dx%d", c.Window.Width, c.Window.Height)
	}
	if err := c.Layout().Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// Layout converts the panel section to a figure layout.
func (c *Config) Layout() figure.Layout {
	layout := figure.Layout{
		XColumn: c.XColumn,
		Rows:    c.Grid.Rows,
		Cols:    c.Grid.Cols,
		Panels:  make([]figure.PanelSpec, len(c.Panels)),
	}
	for i, p := range c.Panels {
		spec := figure.PanelSpec{Title: p.Title}
		for _, s := range p.Series {
			spec.Series = append(spec.Series, figure.SeriesSpec{Column: s.Column, Label: s.Label})
		}
		layout.Panels[i] = spec
	}
	return layout
}

// SetLayout replaces the panel section with layout.
func (c *Config) SetLayout(layout figure.Layout) {
	c.XColumn = layout.XColumn
	c.Grid = GridConfig{Rows: layout.Rows, Cols: layout.Cols}
	c.Panels = make([]PanelConfig, len(layout.Panels))
	for i, p := range layout.Panels {
		pc := PanelConfig{Title: p.Title}
		for _, s := range p.Series {
			pc.Series = append(pc.Series, SeriesConfig{Column: s.Column, Label: s.Label})
		}
		c.Panels[i] = pc
	}
}
