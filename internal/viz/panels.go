package viz

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/gridplot/internal/figure"
	"github.com/san-kum/gridplot/internal/metrics"
)

const (
	minPlotWidth  = 10
	minPlotHeight = 3
	// border, padding and the y-axis label gutter asciigraph adds
	panelChromeX = 18
	// title, legend, x-range caption and border
	panelChromeY = 6
)

// PanelView renders one panel into a fixed-size box.
type PanelView struct {
	Panel  figure.Panel
	Width  int
	Height int
	Theme  Theme
	Stats  bool
}

func (v PanelView) Render() string {
	t := v.Theme
	title := lipgloss.NewStyle().Bold(true).Foreground(t.Title).Render(v.Panel.Title)

	body := v.plot()
	lines := []string{title, body, v.legend()}
	if v.Stats {
		lines = append(lines, v.stats())
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(0, 1).
		Width(max(v.Width-2, 1))

	return box.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func (v PanelView) plot() string {
	muted := lipgloss.NewStyle().Foreground(v.Theme.Muted)

	var data [][]float64
	var colors []asciigraph.AnsiColor
	var xmin, xmax float64
	for i, s := range v.Panel.Series {
		if s.Len() == 0 {
			continue
		}
		if len(data) == 0 {
			xmin, xmax = s.X[0], s.X[len(s.X)-1]
		}
		data = append(data, s.Y)
		colors = append(colors, v.Theme.SeriesColor(i))
	}

	height := max(v.Height-panelChromeY, minPlotHeight)
	if len(data) == 0 {
		blank := strings.Repeat("\n", height/2) + "(no series)" + strings.Repeat("\n", height-height/2)
		return muted.Render(blank)
	}

	return asciigraph.PlotMany(data,
		asciigraph.Height(height),
		asciigraph.Width(max(v.Width-panelChromeX, minPlotWidth)),
		asciigraph.SeriesColors(colors...),
		asciigraph.Caption(fmt.Sprintf("%s %g … %g", v.Panel.XLabel, xmin, xmax)),
	)
}

func (v PanelView) legend() string {
	text := lipgloss.NewStyle().Foreground(v.Theme.Text)
	if len(v.Panel.Series) == 0 {
		return lipgloss.NewStyle().Foreground(v.Theme.Muted).Render("legend: (empty)")
	}
	parts := make([]string, len(v.Panel.Series))
	for i, label := range v.Panel.Legend() {
		parts[i] = v.Theme.swatch(i) + " " + text.Render(label)
	}
	return strings.Join(parts, "  ")
}

func (v PanelView) stats() string {
	muted := lipgloss.NewStyle().Foreground(v.Theme.Muted)
	var sb strings.Builder
	for i, s := range v.Panel.Series {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sum := metrics.Summarize(s.Label, s.Y)
		fmt.Fprintf(&sb, "%s n=%d min=%.4g max=%.4g mean=%.4g rms=%.4g",
			sum.Name(), sum.Count(), sum.Min(), sum.Max(), sum.Mean(), sum.RMS())
	}
	return muted.Render(sb.String())
}

// Grid joins the panel boxes of fig row-major into one block.
func Grid(fig *figure.Figure, width, height int, theme Theme, stats bool) string {
	cellW := width / max(fig.Cols, 1)
	cellH := height / max(fig.Rows, 1)

	rows := make([]string, 0, fig.Rows)
	for r := 0; r < fig.Rows; r++ {
		cells := make([]string, 0, fig.Cols)
		for c := 0; c < fig.Cols; c++ {
			i := r*fig.Cols + c
			if i >= len(fig.Panels) {
				break
			}
			cells = append(cells, PanelView{
				Panel:  fig.Panels[i],
				Width:  cellW,
				Height: cellH,
				Theme:  theme,
				Stats:  stats,
			}.Render())
		}
		if len(cells) == 0 {
			break
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// PrintOptions sizes the non-interactive rendition.
type PrintOptions struct {
	Width  int
	Height int
	Theme  Theme
	Stats  bool
}

// Print writes every panel of fig to w, one after another.
func Print(w io.Writer, fig *figure.Figure, opts PrintOptions) error {
	if opts.Width <= 0 {
		opts.Width = 80
	}
	if opts.Height <= 0 {
		opts.Height = 16
	}
	if len(opts.Theme.Series) == 0 {
		opts.Theme = ThemeClassic
	}

	for _, p := range fig.Panels {
		view := PanelView{Panel: p, Width: opts.Width, Height: opts.Height, Theme: opts.Theme, Stats: opts.Stats}
		if _, err := fmt.Fprintln(w, view.Render()); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}
