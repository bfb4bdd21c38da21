// Package cli implements the adventofcode command-line interface.
//
// # Commands
//
//   - run: solve one or more puzzle days, caching answers per input
//   - list: show the registered solvers and whether their inputs exist
//   - graph: draw a cable graph file as DOT, SVG or PNG
//   - cache: inspect or clear the answer cache
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. The logger is
// carried in the command context and shared with the solver runner.
//
// # Configuration
//
// An optional TOML file at $XDG_CONFIG_HOME/adventofcode/config.toml (or
// the path given by --config) sets defaults for the puzzle year, the input
// directory and caching. Flags override it.
package cli

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/awlodge/adventofcode/internal/y2025"
	"github.com/awlodge/adventofcode/pkg/buildinfo"
	"github.com/awlodge/adventofcode/pkg/cache"
	"github.com/awlodge/adventofcode/pkg/observability"
	"github.com/awlodge/adventofcode/pkg/runner"
	"github.com/awlodge/adventofcode/pkg/solver"
)

// appName is the application name used for directories and display.
const appName = "adventofcode"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger   *log.Logger
	Registry *solver.Registry

	config      Config
	configPath  string
	interactive bool
}

// New creates a CLI that logs to w and knows every built-in solver.
func New(w io.Writer, level log.Level) *CLI {
	reg := solver.NewRegistry()
	if err := y2025.Register(reg); err != nil {
		panic(err)
	}

	interactive := false
	if f, ok := w.(*os.File); ok {
		interactive = isatty.IsTerminal(f.Fd())
	}

	return &CLI{
		Logger:      newLogger(w, level),
		Registry:    reg,
		config:      defaultConfig(),
		interactive: interactive,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	tmpl := buildinfo.Template()
	root := &cobra.Command{
		Use:           appName,
		Short:         "Solve Advent of Code puzzles",
		Long:          `adventofcode runs puzzle solvers against your inputs, caches their answers and renders puzzle graphs.`,
		Version:       buildinfo.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(c.configPath)
			if err != nil {
				return err
			}
			c.config = cfg

			observability.SetSolverHooks(logHooks{logger: c.Logger})
			observability.SetCacheHooks(logHooks{logger: c.Logger})
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(tmpl)
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/adventofcode/config.toml)")

	root.AddCommand(c.runCommand())
	root.AddCommand(c.listCommand())
	root.AddCommand(c.graphCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// newRunner creates a solver runner for CLI use.
func (c *CLI) newRunner(noCache bool) (*runner.Runner, error) {
	ch, err := newCache(noCache)
	if err != nil {
		return nil, err
	}
	keyer := cache.NewScopedKeyer(cache.NewDefaultKeyer(), buildinfo.Version+":")
	r := runner.NewRunner(c.Registry, ch, keyer, c.Logger)
	r.TTL = c.config.CacheTTL
	return r, nil
}

func newCache(noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	dir, err := cacheDir()
	if err != nil {
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}

// cacheDir returns the cache directory using XDG standard (~/.cache/adventofcode/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// configDir returns the config directory using XDG standard (~/.config/adventofcode/).
func configDir() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName), nil
}
