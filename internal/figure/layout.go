package figure

import (
	"errors"
	"fmt"
)

// ErrLayout indicates a layout that cannot be placed on its grid.
var ErrLayout = errors.New("figure: invalid layout")

// SeriesSpec selects one column to draw against the x axis.
type SeriesSpec struct {
	Column string
	Label  string
}

// DisplayLabel is the legend text; the column name when no label is set.
func (s SeriesSpec) DisplayLabel() string {
	if s.Label == "" {
		return s.Column
	}
	return s.Label
}

// PanelSpec is one subplot. An empty Series list draws a titled panel with
// an empty legend.
type PanelSpec struct {
	Title  string
	Series []SeriesSpec
}

// Layout places panels row-major on a Rows x Cols grid.
type Layout struct {
	XColumn string
	Rows    int
	Cols    int
	Panels  []PanelSpec
}

// DefaultLayout reproduces the grid-cell overview: velocity, external force,
// pressure/density and temperature. Only velocity and density are enabled;
// the other columns of a grid cell are opted into through configuration.
func DefaultLayout() Layout {
	return Layout{
		XColumn: "Element",
		Rows:    2,
		Cols:    2,
		Panels: []PanelSpec{
			{
				Title: "Velocity",
				Series: []SeriesSpec{
					{Column: "data.velocity.x", Label: "Velocity X"},
					{Column: "data.velocity.y", Label: "Velocity Y"},
				},
			},
			{Title: "External Force"},
			{
				Title: "Pressure and Density",
				Series: []SeriesSpec{
					{Column: "data.density", Label: "Density"},
				},
			},
			{Title: "Temperature"},
		},
	}
}

func (l Layout) Validate() error {
	if l.XColumn == "" {
		return fmt.Errorf("%w: no x column", ErrLayout)
	}
	if l.Rows <= 0 || l.Cols <= 0 {
		return fmt.Errorf("%w: grid %dx%d", ErrLayout, l.Rows, l.Cols)
	}
	if len(l.Panels) > l.Rows*l.Cols {
		return fmt.Errorf("%w: %d panels do not fit a %dx%d grid", ErrLayout, len(l.Panels), l.Rows, l.Cols)
	}
	for i, p := range l.Panels {
		for j, s := range p.Series {
			if s.Column == "" {
				return fmt.Errorf("%w: panel %d (%q) series %d has no column", ErrLayout, i+1, p.Title, j+1)
			}
		}
	}
	return nil
}

// RequiredColumns lists the x column and every enabled series column once,
// in first-use order.
func (l Layout) RequiredColumns() []string {
	seen := make(map[string]bool)
	var cols []string
	add := func(name string) {
		if name == "" || seen[name] {
			return
		}
		seen[name] = true
		cols = append(cols, name)
	}

	add(l.XColumn)
	for _, p := range l.Panels {
		for _, s := range p.Series {
			add(s.Column)
		}
	}
	return cols
}
