package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/hupe1980/slidego"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	configPath string
}

// New creates a new CLI instance logging to w.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: log.NewWithOptions(w, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.00",
			Level:           level,
		}),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "slidego",
		Short:        "Explore the 15-puzzle state graph",
		Long:         `slidego searches the 15-puzzle state graph breadth-first, recording every visited board with the board it was reached from.`,
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&c.configPath, "config", "", "TOML file with session settings")

	root.AddCommand(c.solveCommand())
	root.AddCommand(c.exploreCommand())
	root.AddCommand(c.encodeCommand())
	root.AddCommand(c.decodeCommand())

	return root
}

// openSession loads the configuration and opens a Session whose log records
// carry a run id.
func (c *CLI) openSession(cmd *cobra.Command) (*slidego.Session, Config, error) {
	cfg, err := LoadConfig(c.configPath)
	if err != nil {
		return nil, cfg, err
	}
	if err := cfg.applyFlags(cmd.Flags()); err != nil {
		return nil, cfg, err
	}

	logger := slidego.NewLogger(c.Logger).WithRun(uuid.NewString())
	opts, err := cfg.options(logger)
	if err != nil {
		return nil, cfg, err
	}

	s, err := slidego.New(opts...)
	if err != nil {
		return nil, cfg, err
	}

	c.Logger.Debug("session opened", "table_size", cfg.TableSize, "memory_limit", cfg.MemoryLimit)
	return s, cfg, nil
}
