package worldmap

import (
	"cmp"
	"slices"
	"strings"

	"github.com/ling0x/tor-nodes/pkg/onionoo"
)

// CountryCount is one entry of the ranked per-country relay tally.
type CountryCount struct {
	Code  string
	Count int
}

// CountryCounts groups relays by uppercased country code and returns the
// full ranking, sorted by count descending with ties broken by ascending
// code so the output is deterministic. Relays without a country code are
// excluded from the tally (they still count toward the legend totals).
func CountryCounts(relays []onionoo.Relay) []CountryCount {
	byCode := make(map[string]int)
	for _, r := range relays {
		if r.Country == "" {
			continue
		}
		byCode[strings.ToUpper(r.Country)]++
	}

	counts := make([]CountryCount, 0, len(byCode))
	for code, n := range byCode {
		counts = append(counts, CountryCount{Code: code, Count: n})
	}
	slices.SortFunc(counts, func(a, b CountryCount) int {
		if c := cmp.Compare(b.Count, a.Count); c != 0 {
			return c
		}
		return cmp.Compare(a.Code, b.Code)
	})
	return counts
}

// Summary holds the counts reported on the legend's summary line.
//
// Guards and Exits are counted independently of each other: a relay
// carrying both flags increments both counters even though Classify draws
// it once, as a Guard. The reported role counts can therefore sum to more
// than Total. Middles is the remainder, floored at zero.
type Summary struct {
	Total   int
	Guards  int
	Exits   int
	Middles int
}

// Summarize counts relays per role for the legend summary line. Relays
// without a position still count here.
func Summarize(relays []onionoo.Relay) Summary {
	s := Summary{Total: len(relays)}
	for _, r := range relays {
		if r.IsGuard() {
			s.Guards++
		}
		if r.IsExit() {
			s.Exits++
		}
	}
	s.Middles = max(s.Total-s.Guards-s.Exits, 0)
	return s
}
