package cli

import (
	"github.com/BurntSushi/toml"

	apperrors "github.com/ling0x/tor-nodes/pkg/errors"
	"github.com/ling0x/tor-nodes/pkg/onionoo"
)

// Default locations for the on-disk collaborators. The boundary dataset and
// GeoIP database live next to the binary by convention; fetch-world
// provisions the former.
const (
	defaultWorldPath = "assets/world.geojson"
	defaultMMDBPath  = "assets/GeoLite2-City.mmdb"
	defaultOutput    = "map.svg"
)

// Config holds the optional TOML configuration. Every field has a working
// default; command-line flags override config values.
type Config struct {
	OnionooURL string `toml:"onionoo_url"`
	WorldPath  string `toml:"world_path"`
	MMDBPath   string `toml:"mmdb_path"`
	Output     string `toml:"output"`
}

func defaultConfig() Config {
	return Config{
		OnionooURL: onionoo.DefaultURL,
		WorldPath:  defaultWorldPath,
		MMDBPath:   defaultMMDBPath,
		Output:     defaultOutput,
	}
}

// loadConfig reads a TOML config file over the defaults. An empty path
// returns the defaults unchanged.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, apperrors.Wrap(apperrors.ErrCodeInvalidInput, err, "load config %s", path)
	}
	return cfg, nil
}
