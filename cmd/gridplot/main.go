package main

import (
	"fmt"
	"log/slog"
	"os"
	"text/tabwriter"

	"github.com/san-kum/gridplot/internal/app"
	"github.com/san-kum/gridplot/internal/config"
	"github.com/san-kum/gridplot/internal/figure"
	"github.com/san-kum/gridplot/internal/gui"
	"github.com/san-kum/gridplot/internal/logging"
	"github.com/san-kum/gridplot/internal/metrics"
	"github.com/san-kum/gridplot/internal/table"
	"github.com/san-kum/gridplot/internal/viz"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	dataFile   string
	configFile string
	preset     string
	logLevel   string
	seqURL     string
	viewer     string
	theme      string
	stats      bool
	width      int
	height     int

	logger   = slog.Default()
	closeLog = func() {}
)

// main registers the commands and flags and runs the root command, which
// shows data.csv when no subcommand is given. It exits with status 1 when
// any command returns an error.
func main() {
	rootCmd := newRootCmd()
	err := rootCmd.Execute()
	closeLog()
	if err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:               "gridplot",
		Short:             "plot simulation grid-cell dumps",
		SilenceUsage:      true,
		Args:              cobra.NoArgs,
		PersistentPreRunE: setupLogging,
		RunE:              show,
	}

	rootCmd.PersistentFlags().StringVar(&dataFile, "data", config.DefaultDataFile, "input csv file")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use preset configuration")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&seqURL, "seq-url", "", "seq server url for log shipping")
	addViewerFlags(rootCmd)

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "show the figure",
		Args:  cobra.NoArgs,
		RunE:  show,
	}
	addViewerFlags(showCmd)

	plotCmd := &cobra.Command{
		Use:   "plot",
		Short: "print the panels as ascii graphs",
		Args:  cobra.NoArgs,
		RunE:  plotASCII,
	}
	plotCmd.Flags().IntVar(&width, "width", 80, "panel width in columns")
	plotCmd.Flags().IntVar(&height, "height", 16, "panel height in rows")
	plotCmd.Flags().BoolVar(&stats, "stats", false, "show series statistics")
	plotCmd.Flags().StringVar(&theme, "theme", viz.ThemeClassic.Name, "color theme")

	columnsCmd := &cobra.Command{
		Use:   "columns",
		Short: "list the columns of the data file",
		Args:  cobra.NoArgs,
		RunE:  listColumns,
	}

	describeCmd := &cobra.Command{
		Use:   "describe",
		Short: "summarize every plotted series",
		Args:  cobra.NoArgs,
		RunE:  describe,
	}

	panelsCmd := &cobra.Command{
		Use:   "panels",
		Short: "print the effective configuration",
		Args:  cobra.NoArgs,
		RunE:  printPanels,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, p := range config.ListPresets() {
				fmt.Printf("  %s\n", p)
			}
			return nil
		},
	}

	rootCmd.AddCommand(showCmd, plotCmd, columnsCmd, describeCmd, panelsCmd, presetsCmd)
	return rootCmd
}

func addViewerFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&viewer, "viewer", "", "viewer (window, tui, ascii)")
	cmd.Flags().StringVar(&theme, "theme", viz.ThemeClassic.Name, "terminal color theme")
	cmd.Flags().BoolVar(&stats, "stats", false, "show series statistics in the terminal viewer")
}

func setupLogging(cmd *cobra.Command, args []string) error {
	if seqURL == "" {
		seqURL = os.Getenv("GRIDPLOT_SEQ_URL")
	}
	l, closeFn, err := logging.Setup(logging.Options{Level: logLevel, SeqURL: seqURL, Output: os.Stderr})
	if err != nil {
		return err
	}
	logger, closeLog = l, closeFn
	slog.SetDefault(logger)
	return nil
}

// loadConfig applies, in order: defaults or preset, config file, flags.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	}

	if configFile != "" {
		loaded, err := config.LoadWith(configFile, cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("data") {
		cfg.DataFile = dataFile
	}
	if f := cmd.Flags().Lookup("viewer"); f != nil && f.Changed {
		cfg.Viewer = viewer
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func presenterFor(cfg *config.Config) app.Presenter {
	switch cfg.Viewer {
	case config.ViewerTUI:
		return app.PresenterFunc(func(fig *figure.Figure) error {
			return viz.Run(fig, viz.Options{Title: cfg.DataFile, Theme: theme, Stats: stats})
		})
	case config.ViewerASCII:
		return app.PresenterFunc(func(fig *figure.Figure) error {
			return viz.Print(os.Stdout, fig, viz.PrintOptions{Theme: viz.GetTheme(theme), Stats: stats})
		})
	default:
		return app.PresenterFunc(func(fig *figure.Figure) error {
			return gui.Show(fig, gui.Options{
				Width:  cfg.Window.Width,
				Height: cfg.Window.Height,
				Title:  cfg.Window.Title,
			})
		})
	}
}

func show(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	return app.Run(cfg, presenterFor(cfg), logger)
}

func plotASCII(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	fig, err := app.Render(cfg, logger)
	if err != nil {
		return err
	}

	fmt.Printf("data: %s\n", cfg.DataFile)
	fmt.Printf("panels: %d\n\n", len(fig.Panels))

	return viz.Print(os.Stdout, fig, viz.PrintOptions{
		Width:  width,
		Height: height,
		Theme:  viz.GetTheme(theme),
		Stats:  stats,
	})
}

func listColumns(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	t, err := table.Load(cfg.DataFile, table.Schema{})
	if err != nil {
		return err
	}

	required := make(map[string]bool)
	for _, name := range cfg.Layout().RequiredColumns() {
		required[name] = true
	}

	fmt.Printf("%s: %d rows\n\n", t.Source(), t.Len())

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "COLUMN\tNUMERIC\tPLOTTED")
	for _, name := range t.Columns() {
		fmt.Fprintf(w, "%s\t%t\t%t\n", name, t.IsNumeric(name), required[name])
	}
	for _, name := range cfg.Layout().RequiredColumns() {
		if !t.Has(name) {
			fmt.Fprintf(w, "%s\t-\tmissing\n", name)
		}
	}
	return w.Flush()
}

func describe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	fig, err := app.Render(cfg, logger)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PANEL\tSERIES\tCOLUMN\tN\tMIN\tMAX\tMEAN\tRMS")

	for _, p := range fig.Panels {
		if len(p.Series) == 0 {
			fmt.Fprintf(w, "%s\t-\t-\t0\t-\t-\t-\t-\n", p.Title)
			continue
		}
		for _, s := range p.Series {
			sum := metrics.Summarize(s.Label, s.Y)
			fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%.6g\t%.6g\t%.6g\t%.6g\n",
				p.Title, s.Label, s.Column, sum.Count(), sum.Min(), sum.Max(), sum.Mean(), sum.RMS())
		}
	}

	return w.Flush()
}

func printPanels(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	enc := yaml.NewEncoder(os.Stdout)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return err
	}
	return enc.Close()
}
