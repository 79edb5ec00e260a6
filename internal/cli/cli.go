package cli

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/cardgrid/pkg/buildinfo"
	"github.com/matzehuels/cardgrid/pkg/config"
	"github.com/matzehuels/cardgrid/pkg/errors"
	"github.com/matzehuels/cardgrid/pkg/grid"
	"github.com/matzehuels/cardgrid/pkg/pipeline"
	"github.com/matzehuels/cardgrid/pkg/termsize"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for directories and display.
const appName = "cardgrid"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// configPath overrides the XDG config location (--config).
	configPath string
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           appName,
		Short:         "Cardgrid packs text cards into a terminal-width grid",
		Long:          `Cardgrid renders records as multi-line text cards and packs them into as many bordered columns as fit the terminal.`,
		Version:       buildinfo.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default: $XDG_CONFIG_HOME/cardgrid/config.toml)")

	// Register all subcommands
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.previewCommand())
	root.AddCommand(c.cardCommand())
	root.AddCommand(c.justifyCommand())
	root.AddCommand(c.configCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Config & Runner
// =============================================================================

// resolveConfigPath returns --config or the XDG default.
func (c *CLI) resolveConfigPath() (string, error) {
	if c.configPath != "" {
		return c.configPath, nil
	}
	return config.DefaultPath()
}

// loadConfig loads the configuration, falling back to defaults when no
// file exists.
func (c *CLI) loadConfig() (config.Config, error) {
	path, err := c.resolveConfigPath()
	if err != nil {
		c.Logger.Debug("no config path, using defaults", "error", err)
		return config.Default(), nil
	}
	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, err
	}
	c.Logger.Debug("loaded config", "path", path)
	return cfg, nil
}

// newRunner creates a pipeline runner that sizes auto-width grids by the
// terminal behind out. Writers that are not files never query a TTY.
func newRunner(logger *log.Logger, out io.Writer) *pipeline.Runner {
	var terminal termsize.Provider
	if f, ok := out.(*os.File); ok {
		terminal = termsize.ForFile(f)
	}
	return pipeline.NewRunner(logger, terminal)
}

// =============================================================================
// Grid Flags
// =============================================================================

// gridFlags are the packing overrides shared by several commands. Only
// flags the user actually set override the config file.
type gridFlags struct {
	width         int
	fallbackWidth int
	maxColumns    int
	strategy      string
	uniform       bool
}

func (f *gridFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&f.width, "width", "w", grid.AutoWidth, "width budget in columns (0: terminal width)")
	cmd.Flags().IntVar(&f.fallbackWidth, "fallback-width", termsize.DefaultFallback, "width used when the terminal size is unknown")
	cmd.Flags().IntVarP(&f.maxColumns, "max-columns", "c", 0, "maximum number of grid columns (0: no limit)")
	cmd.Flags().StringVarP(&f.strategy, "strategy", "s", grid.StrategyExact, "packing strategy: exact, fast")
	cmd.Flags().BoolVar(&f.uniform, "uniform", false, "fail when cards have different line counts")
}

func (f *gridFlags) apply(cmd *cobra.Command, g *config.GridConfig) {
	flags := cmd.Flags()
	if flags.Changed("width") {
		g.Width = f.width
	}
	if flags.Changed("fallback-width") {
		g.FallbackWidth = f.fallbackWidth
	}
	if flags.Changed("max-columns") {
		g.MaxColumns = f.maxColumns
	}
	if flags.Changed("strategy") {
		g.Strategy = f.strategy
	}
	if flags.Changed("uniform") {
		g.RequireUniformHeight = f.uniform
	}
}

// =============================================================================
// Error Reporting
// =============================================================================

// ReportError prints err as a status line. Structured errors show their
// message without the code; the code is logged at debug level.
func (c *CLI) ReportError(err error) {
	if code := errors.GetCode(err); code != "" {
		c.Logger.Debug("command failed", "code", code, "error", err)
	}
	printError("%s", errors.UserMessage(err))
}
