package geojson

import (
	"testing"

	apperrors "github.com/ling0x/tor-nodes/pkg/errors"
)

func TestDecodeFeatureCollection(t *testing.T) {
	doc := `{
		"type": "FeatureCollection",
		"features": [
			{
				"type": "Feature",
				"properties": {"ADMIN": "Testland"},
				"geometry": {
					"type": "Polygon",
					"coordinates": [[[0,0],[10,0],[10,10],[0,10],[0,0]]]
				}
			},
			{
				"type": "Feature",
				"properties": {"name": "Isles"},
				"geometry": {
					"type": "MultiPolygon",
					"coordinates": [
						[[[20,20],[25,20],[25,25]]],
						[[[30,30],[35,30],[35,35]]]
					]
				}
			}
		]
	}`

	fc, err := Decode([]byte(doc))
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}
	if len(fc.Features) != 2 {
		t.Fatalf("Features count = %d, want 2", len(fc.Features))
	}

	poly := fc.Features[0]
	if poly.Name != "Testland" {
		t.Errorf("Name = %q, want %q", poly.Name, "Testland")
	}
	if poly.Geometry.Kind != KindPolygon {
		t.Fatalf("Kind = %v, want KindPolygon", poly.Geometry.Kind)
	}
	if got := len(poly.Geometry.Rings()); got != 1 {
		t.Errorf("Polygon rings = %d, want 1", got)
	}
	if got := len(poly.Geometry.Polygon[0]); got != 5 {
		t.Errorf("ring vertices = %d, want 5", got)
	}

	multi := fc.Features[1]
	if multi.Name != "Isles" {
		t.Errorf("Name = %q, want %q", multi.Name, "Isles")
	}
	if multi.Geometry.Kind != KindMultiPolygon {
		t.Fatalf("Kind = %v, want KindMultiPolygon", multi.Geometry.Kind)
	}
	if got := len(multi.Geometry.Rings()); got != 2 {
		t.Errorf("MultiPolygon rings = %d, want 2", got)
	}
}

func TestDecodeDropsMalformedVertices(t *testing.T) {
	doc := `{
		"type": "Feature",
		"geometry": {
			"type": "Polygon",
			"coordinates": [[[0,0],["bad","pair"],[10,10],[20],[20,0]]]
		}
	}`

	fc, err := Decode([]byte(doc))
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}
	rings := fc.Features[0].Geometry.Rings()
	if len(rings) != 1 {
		t.Fatalf("rings = %d, want 1", len(rings))
	}
	// Two malformed entries dropped, three valid vertices kept.
	if got := len(rings[0]); got != 3 {
		t.Errorf("usable vertices = %d, want 3", got)
	}
	want := Ring{{0, 0}, {10, 10}, {20, 0}}
	for i, v := range want {
		if rings[0][i] != v {
			t.Errorf("vertex[%d] = %v, want %v", i, rings[0][i], v)
		}
	}
}

func TestDecodeUnknownGeometryType(t *testing.T) {
	doc := `{
		"type": "FeatureCollection",
		"features": [
			{"type": "Feature", "geometry": {"type": "GeometryCollection", "geometries": []}}
		]
	}`

	fc, err := Decode([]byte(doc))
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}
	if len(fc.Features) != 1 {
		t.Fatalf("Features count = %d, want 1", len(fc.Features))
	}
	if fc.Features[0].Geometry.Kind != KindNone {
		t.Errorf("Kind = %v, want KindNone", fc.Features[0].Geometry.Kind)
	}
	if rings := fc.Features[0].Geometry.Rings(); rings != nil {
		t.Errorf("Rings() = %v, want nil", rings)
	}
}

func TestDecodeMalformedDocument(t *testing.T) {
	cases := []struct {
		name string
		doc  string
	}{
		{"not json", "{nope"},
		{"missing type", `{"features": []}`},
		{"wrong type", `{"type": "Point", "coordinates": [0, 0]}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Decode([]byte(tc.doc))
			if err == nil {
				t.Fatal("Decode() expected error, got nil")
			}
			if !apperrors.Is(err, apperrors.ErrCodeInvalidGeoJSON) {
				t.Errorf("error code = %v, want INVALID_GEOJSON", apperrors.GetCode(err))
			}
		})
	}
}
