// SPDX-License-Identifier: MIT

// Package cli implements the mumoro command-line interface.
//
// # Commands
//
//   - search: compute the Pareto set of itineraries between two stops
//   - info:   summarize a network document
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging, including the
// per-search summary emitted by the martins package.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// appName is the binary name used in usage and version output.
const appName = "mumoro"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// version is injected at build time via ldflags.
var version = "dev"

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a CLI whose logger writes to w at the given level.
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
		Use:          appName,
		Short:        "Multi-objective itinerary search over multimodal networks",
		Long:         `mumoro finds every Pareto-optimal itinerary between two stops of a multimodal, time-dependent transport network, trading arrival time against fares, transfers or any other edge attribute.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
		},
	}

	root.AddCommand(c.searchCommand())
	root.AddCommand(c.infoCommand())

	return root
}
