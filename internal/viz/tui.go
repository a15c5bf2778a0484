package viz

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/gridplot/internal/figure"
)

const (
	defaultWidth  = 120
	defaultHeight = 40
	// rows kept free for the help line
	footerHeight = 2
)

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

// Options configures the interactive viewer.
type Options struct {
	Title string
	Theme string
	Stats bool
}

// Model is the Bubble Tea model of the figure viewer. focus is -1 while the
// whole grid is shown and a panel index otherwise.
type Model struct {
	fig           *figure.Figure
	title         string
	theme         int
	focus         int
	stats         bool
	width, height int
}

func NewModel(fig *figure.Figure, opts Options) Model {
	theme := 0
	for i, t := range Themes {
		if t.Name == opts.Theme {
			theme = i
		}
	}
	return Model{
		fig:    fig,
		title:  opts.Title,
		theme:  theme,
		focus:  -1,
		stats:  opts.Stats,
		width:  defaultWidth,
		height: defaultHeight,
	}
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "tab":
			m.focus = m.cycle(1)
		case "shift+tab":
			m.focus = m.cycle(-1)
		case "s":
			m.stats = !m.stats
		case "t":
			m.theme = (m.theme + 1) % len(Themes)
		}
	}
	return m, nil
}

// cycle steps focus through -1, 0 .. len(panels)-1 and wraps.
func (m Model) cycle(dir int) int {
	n := len(m.fig.Panels) + 1
	return ((m.focus+1+dir)%n+n)%n - 1
}

func (m Model) Focus() int       { return m.focus }
func (m Model) Stats() bool      { return m.stats }
func (m Model) Theme() Theme     { return Themes[m.theme] }
func (m Model) Size() (int, int) { return m.width, m.height }

func (m Model) View() string {
	theme := Themes[m.theme]
	h := max(m.height-footerHeight, 1)

	var body string
	if m.focus >= 0 && m.focus < len(m.fig.Panels) {
		body = PanelView{
			Panel:  m.fig.Panels[m.focus],
			Width:  m.width,
			Height: h,
			Theme:  theme,
			Stats:  m.stats,
		}.Render()
	} else {
		body = Grid(m.fig, m.width, h, theme, m.stats)
	}

	help := fmt.Sprintf("%s  tab: focus  s: stats  t: theme (%s)  q: quit", m.title, theme.Name)
	return lipgloss.JoinVertical(lipgloss.Left, body, helpStyle.Render(help))
}

// Run shows fig in the terminal and blocks until the user quits.
func Run(fig *figure.Figure, opts Options) error {
	p := tea.NewProgram(NewModel(fig, opts), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}
