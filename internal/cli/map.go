package cli

import (
	"context"
	"fmt"
	"net"
	"os"

	"github.com/spf13/cobra"

	apperrors "github.com/ling0x/tor-nodes/pkg/errors"
	"github.com/ling0x/tor-nodes/pkg/geoip"
	"github.com/ling0x/tor-nodes/pkg/geojson"
	"github.com/ling0x/tor-nodes/pkg/onionoo"
	"github.com/ling0x/tor-nodes/pkg/worldmap"
)

// mapOpts holds the inputs of the map pipeline, shared by the map and
// serve commands. Empty fields fall back to config values.
type mapOpts struct {
	url    string // Onionoo details endpoint
	world  string // boundary dataset path
	mmdb   string // GeoLite2-City database path
	output string // SVG output path (map command only)
}

func (o *mapOpts) applyConfig(cfg Config) {
	if o.url == "" {
		o.url = cfg.OnionooURL
	}
	if o.world == "" {
		o.world = cfg.WorldPath
	}
	if o.mmdb == "" {
		o.mmdb = cfg.MMDBPath
	}
	if o.output == "" {
		o.output = cfg.Output
	}
}

// addMapFlags registers the pipeline input flags shared with serve.
func addMapFlags(cmd *cobra.Command, opts *mapOpts) {
	cmd.Flags().StringVar(&opts.url, "url", "", "Onionoo details URL (default: public Onionoo)")
	cmd.Flags().StringVar(&opts.world, "world", "", "country boundary GeoJSON path")
	cmd.Flags().StringVar(&opts.mmdb, "mmdb", "", "GeoLite2-City database for coordinate fallback")
}

func newMapCmd(configPath *string) *cobra.Command {
	var opts mapOpts

	cmd := &cobra.Command{
		Use:   "map",
		Short: "Render the relay world map to an SVG file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}
			opts.applyConfig(cfg)
			return runMap(cmd.Context(), &opts)
		},
	}

	addMapFlags(cmd, &opts)
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default map.svg)")
	return cmd
}

func runMap(ctx context.Context, opts *mapOpts) error {
	logger := loggerFromContext(ctx)

	svg, err := buildMap(ctx, opts)
	if err != nil {
		return err
	}

	if err := os.WriteFile(opts.output, svg, 0o644); err != nil {
		return apperrors.Wrap(apperrors.ErrCodeInternal, err, "write %s", opts.output)
	}
	logger.Infof("Wrote %s (%d bytes)", opts.output, len(svg))
	return nil
}

// buildMap runs the full map pipeline: load boundaries, fetch the census,
// fill missing coordinates from GeoIP, render. Any failure before the
// render is fatal to the run; the render itself cannot fail.
func buildMap(ctx context.Context, opts *mapOpts) ([]byte, error) {
	logger := loggerFromContext(ctx)

	data, err := os.ReadFile(opts.world)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeNotFound, err,
			"read boundary dataset %s (run 'tor-nodes fetch-world' to download it)", opts.world)
	}
	world, err := geojson.Decode(data)
	if err != nil {
		return nil, err
	}
	logger.Infof("Loaded %d boundary features", len(world.Features))

	p := newProgress(logger)
	relays, err := onionoo.NewClient(opts.url).Details(ctx)
	if err != nil {
		return nil, err
	}
	p.done(fmt.Sprintf("Fetched %d relays", len(relays)))

	resolver, err := geoip.Open(opts.mmdb)
	if err != nil {
		logger.Warnf("GeoIP database unusable, coordinate fallback disabled: %v", err)
	}
	defer resolver.Close()
	if resolver.Enabled() {
		filled := fillPositions(relays, resolver)
		logger.Infof("GeoIP fallback placed %d relays", filled)
	} else {
		logger.Debugf("No GeoIP database at %s, coordinate fallback disabled", opts.mmdb)
	}

	placed := 0
	for _, r := range relays {
		if _, _, ok := r.Position(); ok {
			placed++
		}
	}
	logger.Infof("Relays with coordinates: %d/%d", placed, len(relays))

	return worldmap.Render(relays, world), nil
}

// fillPositions looks up coordinates for relays the census left unplaced,
// keyed on the first OR address that resolves. Returns the number of
// relays placed.
func fillPositions(relays []onionoo.Relay, resolver *geoip.Resolver) int {
	filled := 0
	for i := range relays {
		if _, _, ok := relays[i].Position(); ok {
			continue
		}
		for _, addr := range relays[i].ORAddresses {
			ap, ok := onionoo.ParseORAddress(addr)
			if !ok {
				continue
			}
			if lat, lon, ok := resolver.Lookup(net.IP(ap.Addr().AsSlice())); ok {
				relays[i].SetPosition(lat, lon)
				filled++
				break
			}
		}
	}
	return filled
}
