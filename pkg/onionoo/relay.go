// Package onionoo fetches the live relay census from the Onionoo API and
// models the subset of the details document this tool consumes.
package onionoo

import (
	"net/netip"
	"strings"
)

// Relay is one entry of the Onionoo details document. Latitude, longitude
// and country are optional: a minority of relays carry no position and some
// carry no country code.
type Relay struct {
	Fingerprint string   `json:"fingerprint"`
	ORAddresses []string `json:"or_addresses"`
	Flags       []string `json:"flags"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
	Country     string   `json:"country"`
}

// HasFlag reports whether the relay carries the named flag,
// case-insensitively.
func (r Relay) HasFlag(name string) bool {
	for _, f := range r.Flags {
		if strings.EqualFold(f, name) {
			return true
		}
	}
	return false
}

// IsGuard reports whether the relay carries the Guard flag.
func (r Relay) IsGuard() bool { return r.HasFlag("Guard") }

// IsExit reports whether the relay carries the Exit flag.
func (r Relay) IsExit() bool { return r.HasFlag("Exit") }

// Position returns the relay's coordinates. ok is false when either
// coordinate is absent from the census.
func (r Relay) Position() (lat, lon float64, ok bool) {
	if r.Latitude == nil || r.Longitude == nil {
		return 0, 0, false
	}
	return *r.Latitude, *r.Longitude, true
}

// SetPosition records coordinates on the relay, e.g. from a GeoIP fallback
// lookup when the census omits them.
func (r *Relay) SetPosition(lat, lon float64) {
	r.Latitude = &lat
	r.Longitude = &lon
}

// ParseORAddress parses an Onionoo OR-address string into an address/port
// pair. Onionoo uses two formats:
//
//	IPv4 — "1.2.3.4:9001"
//	IPv6 — "[dead:beef::1]:443"
//
// Both are exactly what [netip.ParseAddrPort] accepts.
func ParseORAddress(addr string) (netip.AddrPort, bool) {
	ap, err := netip.ParseAddrPort(addr)
	if err != nil {
		return netip.AddrPort{}, false
	}
	return ap, true
}
