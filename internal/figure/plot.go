package figure

import (
	"fmt"
	"image"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// DPI used when rasterizing a figure for on-screen viewers.
const DPI = 96

var tiles = draw.Tiles{
	PadTop:    vg.Points(6),
	PadBottom: vg.Points(6),
	PadLeft:   vg.Points(6),
	PadRight:  vg.Points(6),
	PadX:      vg.Points(18),
	PadY:      vg.Points(18),
}

// Plot builds the gonum plot for a single panel: title, x label, a grid,
// one line per series and its legend entry.
func (p Panel) Plot() (*plot.Plot, error) {
	pl := plot.New()
	pl.Title.Text = p.Title
	pl.X.Label.Text = p.XLabel
	pl.Legend.Top = true
	pl.Add(plotter.NewGrid())

	for i, s := range p.Series {
		pts := make(plotter.XYs, len(s.Y))
		for j := range pts {
			pts[j].X = s.X[j]
			pts[j].Y = s.Y[j]
		}

		line, err := plotter.NewLine(pts)
		if err != nil {
			return nil, fmt.Errorf("panel %q series %q: %w", p.Title, s.Label, err)
		}
		line.Color = plotutil.Color(i)
		line.Width = vg.Points(1.5)

		pl.Add(line)
		pl.Legend.Add(s.Label, line)
	}

	return pl, nil
}

// Plots returns the panel plots arranged row-major on the figure grid.
// Cells without a panel hold a blank plot with hidden axes.
func (f *Figure) Plots() ([][]*plot.Plot, error) {
	plots := make([][]*plot.Plot, f.Rows)
	for r := range plots {
		plots[r] = make([]*plot.Plot, f.Cols)
		for c := range plots[r] {
			i := r*f.Cols + c
			if i >= len(f.Panels) {
				blank := plot.New()
				blank.HideAxes()
				plots[r][c] = blank
				continue
			}
			p, err := f.Panels[i].Plot()
			if err != nil {
				return nil, err
			}
			plots[r][c] = p
		}
	}
	return plots, nil
}

// Draw lays the panels out on dc with aligned axes and tile padding.
func (f *Figure) Draw(dc draw.Canvas) error {
	plots, err := f.Plots()
	if err != nil {
		return err
	}

	t := tiles
	t.Rows, t.Cols = f.Rows, f.Cols

	canvases := plot.Align(plots, t, dc)
	for r := range plots {
		for c := range plots[r] {
			plots[r][c].Draw(canvases[r][c])
		}
	}
	return nil
}

// Image rasterizes the figure to a width x height pixel image in memory.
func (f *Figure) Image(width, height int) (image.Image, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("figure: image size %dx%d", width, height)
	}

	w := vg.Length(width) * vg.Inch / DPI
	h := vg.Length(height) * vg.Inch / DPI
	c := vgimg.NewWith(vgimg.UseWH(w, h), vgimg.UseDPI(DPI))

	if err := f.Draw(draw.New(c)); err != nil {
		return nil, err
	}
	return c.Image(), nil
}
