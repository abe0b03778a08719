// Package cli implements the edgewalk command-line interface.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/edgewalk/edgewalk/internal/config"
	"github.com/edgewalk/edgewalk/pkg/buildinfo"
	"github.com/edgewalk/edgewalk/pkg/cache"
	"github.com/edgewalk/edgewalk/pkg/engine"
)

// =============================================================================
// Constants
// =============================================================================

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

	// ConfigPath overrides the default config file location (--config).
	ConfigPath string
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "edgewalk",
		Short:        "Edgewalk runs graph algorithms over edge-list files",
		Long:         `Edgewalk reads undirected weighted graphs from comma-separated edge lists and runs traversals, independent-set enumeration, minimum spanning trees, and graph coloring over them.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.ConfigPath, "config", "", "config file (default: $XDG_CONFIG_HOME/edgewalk/config.toml)")

	// Register all subcommands
	root.AddCommand(c.bfsCommand())
	root.AddCommand(c.dfsCommand())
	root.AddCommand(c.misCommand())
	root.AddCommand(c.mstCommand())
	root.AddCommand(c.colorCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Runner Factory
// =============================================================================

// loadConfig resolves the effective configuration for a command invocation.
func (c *CLI) loadConfig() (config.Config, error) {
	return config.LoadOrDefault(c.ConfigPath)
}

// newRunner creates an algorithm runner for CLI use.
func (c *CLI) newRunner(cfg config.Config, noCache bool) (*engine.Runner, error) {
	store, err := newCache(cfg, noCache)
	if err != nil {
		return nil, err
	}
	return engine.NewRunner(store, c.Logger), nil
}

func newCache(cfg config.Config, noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	return cfg.Cache.Open()
}
