package worldmap

import (
	"fmt"

	"github.com/ling0x/tor-nodes/pkg/geojson"
	"github.com/ling0x/tor-nodes/pkg/onionoo"
)

// Fixed palette for the non-dot layers.
const (
	colorBackground  = "#0c1a2e"
	colorGraticule   = "#162032"
	colorLand        = "#1d3461"
	colorLandStroke  = "#2d4a7a"
	colorLegendText  = "#e2e8f0"
	colorSummaryText = "#64748b"
	colorSidebarHead = "#cbd5e1"
	colorSidebarText = "#94a3b8"
)

// Fixed layout offsets for the text blocks. These are tied to the canvas
// constants in project.go.
const (
	legendX     = 16.0
	legendY     = CanvasHeight - 70
	legendStep  = 20.0
	sidebarX    = CanvasWidth - 95
	sidebarY    = 20.0
	sidebarStep = 13.0
	sidebarTop  = 10
)

// Render produces the complete SVG map document for the given relays and
// boundary features. The layer stack is fixed and order-significant:
// background, graticule, boundary polygons, relay dots (middles first,
// guards/exits on top), legend, country sidebar. Render never fails; it is
// a pure function of already-decoded input and is byte-deterministic.
func Render(relays []onionoo.Relay, world *geojson.FeatureCollection) []byte {
	b := &builder{}
	b.raw("<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n")
	b.open("svg",
		"xmlns", "http://www.w3.org/2000/svg",
		"width", num(CanvasWidth),
		"height", num(CanvasHeight),
		"viewBox", fmt.Sprintf("0 0 %s %s", num(CanvasWidth), num(CanvasHeight)),
	)
	b.text("title", "Tor Relay World Map")
	b.text("desc", "Live Tor relay positions. Guards: purple, Exits: red, Middles: yellow.")

	b.element("rect", "width", num(CanvasWidth), "height", num(CanvasHeight), "fill", colorBackground)

	renderGraticule(b)
	renderBoundaries(b, world)
	renderDots(b, relays)
	renderLegend(b, relays)
	renderSidebar(b, relays)

	b.close("svg")
	return b.bytes()
}

// renderGraticule draws reference lines at every 30 degrees of longitude
// and latitude.
func renderGraticule(b *builder) {
	b.open("g", "stroke", colorGraticule, "stroke-width", "0.5")
	for lon := -180; lon <= 180; lon += 30 {
		x, _ := Project(float64(lon), 0)
		b.element("line", "x1", fixed(x, 1), "y1", "0", "x2", fixed(x, 1), "y2", num(CanvasHeight))
	}
	for lat := -90; lat <= 90; lat += 30 {
		_, y := Project(0, float64(lat))
		b.element("line", "x1", "0", "y1", fixed(y, 1), "x2", num(CanvasWidth), "y2", fixed(y, 1))
	}
	b.close("g")
}

// renderBoundaries fills the country polygons. Drawn before the dots so no
// dot is ever occluded by land fill.
func renderBoundaries(b *builder, world *geojson.FeatureCollection) {
	b.open("g", "fill", colorLand, "stroke", colorLandStroke, "stroke-width", "0.5")
	if world != nil {
		for _, feature := range world.Features {
			for _, d := range GeometryPaths(feature.Geometry) {
				b.element("path", "d", d)
			}
		}
	}
	b.close("g")
}

// renderDots draws the relays in two passes so guard and exit dots always
// sit above middle dots, even at overlapping positions. Within a pass,
// relays keep their input order. Relays without a position draw nothing.
func renderDots(b *builder, relays []onionoo.Relay) {
	b.open("g", "stroke", colorBackground, "stroke-width", "0.6")
	for _, notablePass := range []bool{false, true} {
		for _, relay := range relays {
			style := Classify(relay.Flags)
			if (style.Role != RoleMiddle) != notablePass {
				continue
			}
			lat, lon, ok := relay.Position()
			if !ok {
				continue
			}
			x, y := Project(lon, lat)
			b.element("circle",
				"cx", fixed(x, 1), "cy", fixed(y, 1),
				"r", num(style.Radius), "fill", style.Color)
		}
	}
	b.close("g")
}

// renderLegend draws one swatch per role plus the summary count line.
func renderLegend(b *builder, relays []onionoo.Relay) {
	entries := []struct {
		color, label string
	}{
		{ColorMiddle, "Middle"},
		{ColorGuard, "Guard"},
		{ColorExit, "Exit"},
	}

	b.open("g", "font-family", "monospace", "font-size", "12", "fill", colorLegendText)
	ly := legendY
	for _, e := range entries {
		b.element("circle",
			"cx", fixed(legendX+6, 1), "cy", fixed(ly, 1), "r", "6",
			"fill", e.color, "stroke", colorBackground, "stroke-width", "0.8")
		b.text("text", e.label, "x", fixed(legendX+16, 1), "y", fixed(ly+4.5, 1))
		ly += legendStep
	}

	s := Summarize(relays)
	b.text("text",
		fmt.Sprintf("total: %d  guards: %d  exits: %d  middles: %d", s.Total, s.Guards, s.Exits, s.Middles),
		"x", fixed(legendX, 1), "y", fixed(CanvasHeight-8, 1),
		"font-size", "10", "fill", colorSummaryText)
	b.close("g")
}

// renderSidebar lists the top relay countries in rank order.
func renderSidebar(b *builder, relays []onionoo.Relay) {
	b.open("g", "font-family", "monospace", "font-size", "10", "fill", colorSidebarText)
	cy := sidebarY
	b.text("text", "Top countries",
		"x", fixed(sidebarX, 1), "y", fixed(cy, 1),
		"font-size", "11", "fill", colorSidebarHead)
	cy += 14

	counts := CountryCounts(relays)
	if len(counts) > sidebarTop {
		counts = counts[:sidebarTop]
	}
	for _, c := range counts {
		b.text("text", fmt.Sprintf("%s  %d", c.Code, c.Count),
			"x", fixed(sidebarX, 1), "y", fixed(cy, 1))
		cy += sidebarStep
	}
	b.close("g")
}
