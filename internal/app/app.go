// Package app composes loading, rendering and presentation of a figure.
package app

import (
	"fmt"
	"log/slog"

	"github.com/san-kum/gridplot/internal/config"
	"github.com/san-kum/gridplot/internal/figure"
	"github.com/san-kum/gridplot/internal/table"
)

// Presenter shows a rendered figure. Interactive presenters block until the
// user closes them.
type Presenter interface {
	Present(fig *figure.Figure) error
}

// PresenterFunc adapts a function to Presenter.
type PresenterFunc func(fig *figure.Figure) error

func (f PresenterFunc) Present(fig *figure.Figure) error { return f(fig) }

// Load reads cfg.DataFile and validates it against every column the
// configured layout draws.
func Load(cfg *config.Config, logger *slog.Logger) (*table.Table, error) {
	layout := cfg.Layout()
	schema := table.NewSchema(layout.RequiredColumns()...)

	t, err := table.Load(cfg.DataFile, schema)
	if err != nil {
		return nil, err
	}
	logger.Debug("table loaded", "source", t.Source(), "rows", t.Len(), "columns", len(t.Columns()))
	return t, nil
}

// Render loads the data and builds the figure without presenting it.
func Render(cfg *config.Config, logger *slog.Logger) (*figure.Figure, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	t, err := Load(cfg, logger)
	if err != nil {
		return nil, err
	}

	fig, err := figure.Render(t, cfg.Layout())
	if err != nil {
		return nil, err
	}
	for _, p := range fig.Panels {
		logger.Debug("panel rendered", "title", p.Title, "series", len(p.Series))
	}
	return fig, nil
}

// Run is the whole pipeline: load, render, then present.
func Run(cfg *config.Config, presenter Presenter, logger *slog.Logger) error {
	fig, err := Render(cfg, logger)
	if err != nil {
		return err
	}

	logger.Info("presenting figure", "viewer", cfg.Viewer, "panels", len(fig.Panels))
	if err := presenter.Present(fig); err != nil {
		return fmt.Errorf("present: %w", err)
	}
	return nil
}
