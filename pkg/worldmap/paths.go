package worldmap

import (
	"fmt"
	"math"
	"strings"

	"github.com/ling0x/tor-nodes/pkg/geojson"
)

// GeometryPaths converts one boundary geometry into SVG path data strings,
// one per ring, in ring order (outer ring first, then holes; polygon by
// polygon for multi-polygons). Geometries of unknown kind yield no paths.
func GeometryPaths(g geojson.Geometry) []string {
	rings := g.Rings()
	paths := make([]string, 0, len(rings))
	for _, ring := range rings {
		paths = append(paths, ringPath(ring))
	}
	return paths
}

// ringPath projects a ring into path data. Vertices with non-finite
// coordinates are skipped individually, which can distort the shape but
// never drops the ring. The path always ends with a close instruction,
// even for an empty ring.
func ringPath(ring geojson.Ring) string {
	var d strings.Builder
	first := true
	for _, v := range ring {
		if !usable(v) {
			continue
		}
		x, y := Project(v.Lon, v.Lat)
		if first {
			fmt.Fprintf(&d, "M%.2f,%.2f", x, y)
			first = false
		} else {
			fmt.Fprintf(&d, "L%.2f,%.2f", x, y)
		}
	}
	d.WriteByte('Z')
	return d.String()
}

func usable(v geojson.Vertex) bool {
	return !math.IsNaN(v.Lon) && !math.IsInf(v.Lon, 0) &&
		!math.IsNaN(v.Lat) && !math.IsInf(v.Lat, 0)
}
