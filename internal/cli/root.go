// Package cli implements the tor-nodes command-line interface.
//
// The main commands are:
//   - map: render the relay world map to an SVG file
//   - export: write relay address lists as CSV files
//   - serve: render the map once and serve it over HTTP
//   - fetch-world: download the country boundary dataset
//
// All commands support --verbose (-v) for debug-level logging and an
// optional --config TOML file. Loggers are passed through context.Context.
package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/ling0x/tor-nodes/pkg/buildinfo"
)

// Execute runs the tor-nodes CLI and returns an error if any command
// fails. Logging defaults to info level on stderr; --verbose switches to
// debug. The logger is attached to the command context and accessible to
// all commands via loggerFromContext.
func Execute(ctx context.Context) error {
	var (
		verbose    bool
		configPath string
	)

	root := &cobra.Command{
		Use:          "tor-nodes",
		Short:        "tor-nodes maps and exports the public Tor relay network",
		Long:         `tor-nodes fetches the live relay census from Onionoo and turns it into a colour-coded SVG world map or CSV address lists, with an optional GeoIP fallback for relays the census leaves unplaced.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(os.Stderr, level)))
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&configPath, "config", "", "optional TOML config file")

	root.AddCommand(newMapCmd(&configPath))
	root.AddCommand(newExportCmd(&configPath))
	root.AddCommand(newServeCmd(&configPath))
	root.AddCommand(newFetchWorldCmd(&configPath))

	return root.ExecuteContext(ctx)
}
