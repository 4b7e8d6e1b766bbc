// Package geoip provides the coordinate-fallback lookup for relays whose
// census entry carries no position.
//
// The database handle is explicit: the caller constructs a Resolver once
// and passes it to whatever needs it. A missing database file is the
// constructible disabled state, not an error — lookups on a disabled
// resolver simply report no result.
package geoip

import (
	"net"
	"os"

	"github.com/oschwald/geoip2-golang"
)

// Resolver wraps an optional GeoLite2-City database. The zero value (and
// [Disabled]) is a valid resolver that never finds anything.
type Resolver struct {
	db *geoip2.Reader
}

// Disabled returns a resolver with no backing database.
func Disabled() *Resolver {
	return &Resolver{}
}

// Open opens the GeoLite2-City database at path. A path that does not
// exist yields a disabled resolver and no error; a file that exists but
// cannot be read yields a disabled resolver and the underlying error so
// the caller can warn about it. Neither case is fatal.
func Open(path string) (*Resolver, error) {
	if _, err := os.Stat(path); err != nil {
		return Disabled(), nil
	}
	db, err := geoip2.Open(path)
	if err != nil {
		return Disabled(), err
	}
	return &Resolver{db: db}, nil
}

// Enabled reports whether a database is backing this resolver.
func (r *Resolver) Enabled() bool {
	return r.db != nil
}

// Lookup returns the approximate coordinates for ip. ok is false when the
// resolver is disabled, the address is unresolvable, or the database entry
// has no location. A (0, 0) location is treated as absent; the database
// encodes unknown locations as zeros.
func (r *Resolver) Lookup(ip net.IP) (lat, lon float64, ok bool) {
	if r.db == nil || ip == nil {
		return 0, 0, false
	}
	city, err := r.db.City(ip)
	if err != nil {
		return 0, 0, false
	}
	lat = city.Location.Latitude
	lon = city.Location.Longitude
	if lat == 0 && lon == 0 {
		return 0, 0, false
	}
	return lat, lon, true
}

// Close releases the database handle. Closing a disabled resolver is a
// no-op.
func (r *Resolver) Close() error {
	if r.db == nil {
		return nil
	}
	return r.db.Close()
}
