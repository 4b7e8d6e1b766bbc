// Package geojson decodes country boundary GeoJSON into a typed geometry
// model.
//
// The decode happens once, up front: the untyped JSON tree is walked a
// single time and converted into [FeatureCollection]. Consumers (the map
// renderer) only ever see the typed variant, never the raw document.
//
// The decode is deliberately lossy at the vertex level: a coordinate entry
// that is not a `[lon, lat]` pair of numbers is dropped, not the ring or
// feature that contains it. Unknown geometry types are tolerated and carried
// as [KindNone]. Only a malformed top-level document is an error.
package geojson

import (
	"encoding/json"

	apperrors "github.com/ling0x/tor-nodes/pkg/errors"
)

// Kind identifies the geometry variant carried by a [Geometry].
type Kind int

const (
	// KindNone marks a feature whose geometry was missing or of an
	// unsupported type. It produces no rings.
	KindNone Kind = iota
	// KindPolygon is a single polygon: one outer ring plus optional holes.
	KindPolygon
	// KindMultiPolygon is an ordered collection of polygons.
	KindMultiPolygon
)

// Vertex is one (longitude, latitude) pair in degrees.
type Vertex struct {
	Lon float64
	Lat float64
}

// Ring is an ordered, implicitly closed loop of vertices.
type Ring []Vertex

// Geometry is the tagged variant for boundary shapes. Exactly one of
// Polygon or MultiPolygon is populated, selected by Kind.
type Geometry struct {
	Kind         Kind
	Polygon      []Ring
	MultiPolygon [][]Ring
}

// Rings returns every ring of the geometry in drawing order: outer ring
// first, then holes, polygon by polygon for multi-polygons.
func (g Geometry) Rings() []Ring {
	switch g.Kind {
	case KindPolygon:
		return g.Polygon
	case KindMultiPolygon:
		var rings []Ring
		for _, poly := range g.MultiPolygon {
			rings = append(rings, poly...)
		}
		return rings
	default:
		return nil
	}
}

// Feature is one named boundary region.
type Feature struct {
	Name     string
	Geometry Geometry
}

// FeatureCollection is the typed form of a GeoJSON FeatureCollection.
type FeatureCollection struct {
	Features []Feature
}

// Decode parses a GeoJSON document into a FeatureCollection.
//
// Accepted top-level types are "FeatureCollection" and a bare "Feature".
// Anything else, or a document that is not a JSON object, is an error.
func Decode(data []byte) (*FeatureCollection, error) {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInvalidGeoJSON, err, "parse boundary document")
	}

	t, _ := raw["type"].(string)
	switch t {
	case "FeatureCollection":
		fc := &FeatureCollection{}
		features, _ := raw["features"].([]any)
		for _, f := range features {
			if fm, ok := f.(map[string]any); ok {
				fc.Features = append(fc.Features, decodeFeature(fm))
			}
		}
		return fc, nil
	case "Feature":
		return &FeatureCollection{Features: []Feature{decodeFeature(raw)}}, nil
	case "":
		return nil, apperrors.New(apperrors.ErrCodeInvalidGeoJSON, "missing type field")
	default:
		return nil, apperrors.New(apperrors.ErrCodeInvalidGeoJSON, "unsupported document type %q", t)
	}
}

func decodeFeature(fm map[string]any) Feature {
	f := Feature{Name: featureName(fm)}
	if g, ok := fm["geometry"].(map[string]any); ok {
		f.Geometry = decodeGeometry(g)
	}
	return f
}

// featureName pulls a display name out of the feature properties. The
// Natural Earth dataset uses ADMIN; name is the common GeoJSON fallback.
func featureName(fm map[string]any) string {
	props, _ := fm["properties"].(map[string]any)
	for _, key := range []string{"ADMIN", "name", "NAME"} {
		if s, ok := props[key].(string); ok && s != "" {
			return s
		}
	}
	return ""
}

func decodeGeometry(g map[string]any) Geometry {
	gt, _ := g["type"].(string)
	switch gt {
	case "Polygon":
		return Geometry{Kind: KindPolygon, Polygon: decodePolygon(g["coordinates"])}
	case "MultiPolygon":
		var polys [][]Ring
		if arr, ok := g["coordinates"].([]any); ok {
			for _, poly := range arr {
				polys = append(polys, decodePolygon(poly))
			}
		}
		return Geometry{Kind: KindMultiPolygon, MultiPolygon: polys}
	default:
		return Geometry{Kind: KindNone}
	}
}

func decodePolygon(v any) []Ring {
	arr, ok := v.([]any)
	if !ok {
		return nil
	}
	rings := make([]Ring, 0, len(arr))
	for _, r := range arr {
		rings = append(rings, decodeRing(r))
	}
	return rings
}

func decodeRing(v any) Ring {
	arr, ok := v.([]any)
	if !ok {
		return nil
	}
	ring := make(Ring, 0, len(arr))
	for _, pt := range arr {
		if vx, ok := decodeVertex(pt); ok {
			ring = append(ring, vx)
		}
	}
	return ring
}

func decodeVertex(v any) (Vertex, bool) {
	a, ok := v.([]any)
	if !ok || len(a) < 2 {
		return Vertex{}, false
	}
	lon, lok := a[0].(float64)
	lat, aok := a[1].(float64)
	if !lok || !aok {
		return Vertex{}, false
	}
	return Vertex{Lon: lon, Lat: lat}, true
}
