package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ling0x/tor-nodes/pkg/export"
	"github.com/ling0x/tor-nodes/pkg/onionoo"
)

func newExportCmd(configPath *string) *cobra.Command {
	var (
		url string
		dir string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write relay address lists as CSV files",
		Long:  "Export fetches the relay census and writes all.csv, guards.csv and exits.csv, one fingerprint,ipaddr,port row per OR address. Files are published atomically.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}
			if url == "" {
				url = cfg.OnionooURL
			}
			return runExport(cmd.Context(), url, dir)
		},
	}

	cmd.Flags().StringVar(&url, "url", "", "Onionoo details URL (default: public Onionoo)")
	cmd.Flags().StringVarP(&dir, "dir", "d", ".", "output directory")
	return cmd
}

func runExport(ctx context.Context, url, dir string) error {
	logger := loggerFromContext(ctx)

	p := newProgress(logger)
	relays, err := onionoo.NewClient(url).Details(ctx)
	if err != nil {
		return err
	}
	p.done(fmt.Sprintf("Fetched %d relays", len(relays)))

	if err := export.Write(dir, relays); err != nil {
		return err
	}
	logger.Infof("Wrote %s, %s, %s in %s", export.FileAll, export.FileGuards, export.FileExits, dir)
	return nil
}
