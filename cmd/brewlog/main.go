package main

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/jask/brewlog/internal/brew"
	"github.com/jask/brewlog/internal/brewtable"
	"github.com/jask/brewlog/internal/config"
	"github.com/jask/brewlog/internal/tui"
)

type session struct {
	configPath string
	verbose    bool

	cfg    config.Config
	logger *zap.Logger
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	s := &session{logger: zap.NewNop()}

	root := &cobra.Command{
		Use:   "brewlog",
		Short: "Browse the homebrew log as a sortable table",
		Long: `brewlog shows the brew log in an interactive table.

Click a column header (or focus it with ←/→ and press enter) to sort by it.
Each click moves through ascending, descending and back to log order.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return s.setup()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = s.logger.Sync()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return s.runInteractive()
		},
	}
	root.PersistentFlags().StringVar(&s.configPath, "config", "", "config file (default $HOME/.config/brewlog/config.toml)")
	root.PersistentFlags().BoolVarP(&s.verbose, "verbose", "v", false, "debug logging")

	root.AddCommand(newPrintCmd(s))
	return root
}

func newPrintCmd(s *session) *cobra.Command {
	var (
		sortBy string
		desc   bool
		width  int
	)
	cmd := &cobra.Command{
		Use:   "print",
		Short: "Render the table once to stdout",
		Example: `  brewlog print --sort og
  brewlog print --sort "brew date" --desc`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			state, err := sortFromFlags(sortBy, desc)
			if err != nil {
				return err
			}
			opts, err := s.formatOptions()
			if err != nil {
				return err
			}
			grid := brewtable.Build(brew.SampleLog(), brewtable.Columns(), state, opts.Format)
			s.logger.Info("print table", zap.Int("rows", len(grid.Rows)), zap.Stringer("direction", state.Direction))
			_, err = fmt.Fprintln(cmd.OutOrStdout(), tui.RenderTable(grid, -1, width))
			return err
		},
	}
	cmd.Flags().StringVar(&sortBy, "sort", "", "column to sort by (field or header label)")
	cmd.Flags().BoolVar(&desc, "desc", false, "sort descending")
	cmd.Flags().IntVar(&width, "width", 0, "clip lines to this many cells (0 for no limit)")
	return cmd
}

func sortFromFlags(sortBy string, desc bool) (brewtable.SortState, error) {
	if sortBy == "" {
		if desc {
			return brewtable.SortState{}, fmt.Errorf("--desc needs --sort")
		}
		return brewtable.SortState{}, nil
	}
	col, err := brewtable.Lookup(brewtable.Columns(), sortBy)
	if err != nil {
		return brewtable.SortState{}, fmt.Errorf("--sort: %w", err)
	}
	dir := brewtable.Ascending
	if desc {
		dir = brewtable.Descending
	}
	return brewtable.SortState{Column: col, Direction: dir}, nil
}

func (s *session) setup() error {
	cfg, err := config.Load(s.configPath)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	s.cfg = cfg

	logger, err := newLogger(cfg.Log, s.verbose)
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	s.logger = logger
	s.logger.Info("config loaded",
		zap.String("locale", cfg.UI.Locale),
		zap.String("sort_cycle", cfg.UI.SortCycle),
	)
	return nil
}

func (s *session) formatOptions() (tui.Options, error) {
	policy, err := s.cfg.UI.CyclePolicy()
	if err != nil {
		return tui.Options{}, err
	}
	return tui.Options{Policy: policy, Format: s.cfg.UI.FormatOptions(), Logger: s.logger}, nil
}

func (s *session) runInteractive() error {
	opts, err := s.formatOptions()
	if err != nil {
		return err
	}
	p := tea.NewProgram(tui.New(brew.SampleLog(), opts), tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run table: %w", err)
	}
	return nil
}

// newLogger writes JSON logs to the configured file; the terminal belongs
// to the table.
func newLogger(cfg config.LogConfig, verbose bool) (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	level, err := zap.ParseAtomicLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("log.level: %w", err)
	}
	zc.Level = level
	if verbose {
		zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	if err := os.MkdirAll(filepath.Dir(cfg.Path), 0o755); err != nil {
		return nil, fmt.Errorf("mkdir log dir: %w", err)
	}
	zc.OutputPaths = []string{cfg.Path}
	zc.ErrorOutputPaths = []string{cfg.Path}
	return zc.Build()
}
