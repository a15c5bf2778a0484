package figure

import (
	"fmt"

	"github.com/san-kum/gridplot/internal/table"
)

// Column failures surface with the table sentinels so callers can match
// against either package.
var (
	ErrMissingColumn  = table.ErrMissingColumn
	ErrNonNumericData = table.ErrNonNumericData
)

// Series is one plotted line. X and Y are the column values unchanged.
type Series struct {
	Label  string
	Column string
	X      []float64
	Y      []float64
}

func (s Series) Len() int { return len(s.Y) }

type Panel struct {
	Title  string
	XLabel string
	Series []Series
}

// Legend returns the legend entries in draw order; empty for a panel
// without series.
func (p Panel) Legend() []string {
	out := make([]string, len(p.Series))
	for i, s := range p.Series {
		out[i] = s.Label
	}
	return out
}

// Figure is the fully resolved content of the panel grid.
type Figure struct {
	Rows   int
	Cols   int
	Panels []Panel
}

func (f *Figure) Titles() []string {
	out := make([]string, len(f.Panels))
	for i, p := range f.Panels {
		out[i] = p.Title
	}
	return out
}

// Render fills every panel of layout from t, in layout order. Panels are
// populated in one pass; the first bad column aborts the whole figure.
func Render(t *table.Table, layout Layout) (*Figure, error) {
	if err := layout.Validate(); err != nil {
		return nil, err
	}

	xs, err := t.Floats(layout.XColumn)
	if err != nil {
		return nil, fmt.Errorf("x axis: %w", err)
	}

	fig := &Figure{
		Rows:   layout.Rows,
		Cols:   layout.Cols,
		Panels: make([]Panel, 0, len(layout.Panels)),
	}

	for _, spec := range layout.Panels {
		panel := Panel{
			Title:  spec.Title,
			XLabel: layout.XColumn,
			Series: make([]Series, 0, len(spec.Series)),
		}
		for _, ss := range spec.Series {
			ys, err := t.Floats(ss.Column)
			if err != nil {
				return nil, fmt.Errorf("panel %q: %w", spec.Title, err)
			}
			x := make([]float64, len(xs))
			copy(x, xs)
			panel.Series = append(panel.Series, Series{
				Label:  ss.DisplayLabel(),
				Column: ss.Column,
				X:      x,
				Y:      ys,
			})
		}
		fig.Panels = append(fig.Panels, panel)
	}

	return fig, nil
}
