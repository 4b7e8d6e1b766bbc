package cli

import (
	"context"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	apperrors "github.com/ling0x/tor-nodes/pkg/errors"
	"github.com/ling0x/tor-nodes/pkg/geojson"
)

// worldGeoJSONURL is the Natural Earth 110m country boundaries dataset.
const worldGeoJSONURL = "https://raw.githubusercontent.com/datasets/geo-countries/master/data/countries.geojson"

func newFetchWorldCmd(configPath *string) *cobra.Command {
	var dest string

	cmd := &cobra.Command{
		Use:   "fetch-world",
		Short: "Download the country boundary dataset",
		Long:  "Fetch-world downloads the Natural Earth country boundary GeoJSON used by the map and serve commands. An existing file is never re-downloaded.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}
			if dest == "" {
				dest = cfg.WorldPath
			}
			return runFetchWorld(cmd.Context(), dest)
		},
	}

	cmd.Flags().StringVarP(&dest, "dest", "o", "", "destination path (default assets/world.geojson)")
	return cmd
}

func runFetchWorld(ctx context.Context, dest string) error {
	logger := loggerFromContext(ctx)

	if _, err := os.Stat(dest); err == nil {
		logger.Infof("%s already exists, skipping download", dest)
		return nil
	}

	if dir := filepath.Dir(dest); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return apperrors.Wrap(apperrors.ErrCodeInternal, err, "create %s", dir)
		}
	}

	logger.Infof("Downloading %s", worldGeoJSONURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, worldGeoJSONURL, nil)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrCodeInternal, err, "build download request")
	}
	client := &http.Client{Timeout: 2 * time.Minute}
	resp, err := client.Do(req)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrCodeNetwork, err, "download boundary dataset")
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return apperrors.New(apperrors.ErrCodeNetwork, "boundary dataset download returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrCodeNetwork, err, "read boundary dataset")
	}

	// Decode once before saving so a truncated or bogus download never
	// replaces a usable dataset.
	if _, err := geojson.Decode(body); err != nil {
		return err
	}

	if err := os.WriteFile(dest, body, 0o644); err != nil {
		return apperrors.Wrap(apperrors.ErrCodeInternal, err, "write %s", dest)
	}
	logger.Infof("Saved %d bytes to %s", len(body), dest)
	return nil
}
