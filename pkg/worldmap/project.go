// Package worldmap renders a static SVG world map of Tor relays, coloured
// by role, over country boundary polygons.
//
// The whole pipeline is a pure function of its two inputs (relay census,
// boundary features): rendering the same input twice produces byte-identical
// output. Nothing in this package performs I/O.
package worldmap

// Canvas dimensions in pixels. The projection and every fixed layout offset
// (legend block, country sidebar) share these constants; changing one
// requires recomputing the offsets.
const (
	CanvasWidth  = 1200.0
	CanvasHeight = 600.0
)

// Project maps (longitude, latitude) in degrees to canvas pixels using the
// equirectangular (plate carrée) projection. There is no clamping:
// coordinates outside [-180,180]/[-90,90] extrapolate to off-canvas points.
func Project(lon, lat float64) (x, y float64) {
	x = (lon + 180) / 360 * CanvasWidth
	y = (90 - lat) / 180 * CanvasHeight
	return x, y
}
