package onionoo

import "testing"

func TestHasFlagCaseInsensitive(t *testing.T) {
	r := Relay{Flags: []string{"Running", "guard", "V2Dir"}}

	if !r.HasFlag("Guard") {
		t.Error("HasFlag(Guard) = false, want true")
	}
	if !r.IsGuard() {
		t.Error("IsGuard() = false, want true")
	}
	if r.IsExit() {
		t.Error("IsExit() = true, want false")
	}
	if r.HasFlag("Stable") {
		t.Error("HasFlag(Stable) = true, want false")
	}
}

func TestPosition(t *testing.T) {
	lat, lon := 48.2, 16.4
	r := Relay{Latitude: &lat, Longitude: &lon}
	gotLat, gotLon, ok := r.Position()
	if !ok || gotLat != 48.2 || gotLon != 16.4 {
		t.Errorf("Position() = (%v, %v, %v), want (48.2, 16.4, true)", gotLat, gotLon, ok)
	}

	// Either coordinate missing means no position.
	half := Relay{Latitude: &lat}
	if _, _, ok := half.Position(); ok {
		t.Error("Position() with missing longitude should not be ok")
	}
	if _, _, ok := (Relay{}).Position(); ok {
		t.Error("Position() on empty relay should not be ok")
	}
}

func TestSetPosition(t *testing.T) {
	var r Relay
	r.SetPosition(-33.9, 18.4)
	lat, lon, ok := r.Position()
	if !ok || lat != -33.9 || lon != 18.4 {
		t.Errorf("after SetPosition: (%v, %v, %v), want (-33.9, 18.4, true)", lat, lon, ok)
	}
}

func TestParseORAddress(t *testing.T) {
	cases := []struct {
		in       string
		wantAddr string
		wantPort uint16
		ok       bool
	}{
		{"1.2.3.4:9001", "1.2.3.4", 9001, true},
		{"[dead:beef::1]:443", "dead:beef::1", 443, true},
		{"1.2.3.4", "", 0, false},
		{"dead:beef::1:443", "", 0, false}, // IPv6 without brackets is ambiguous
		{"1.2.3.4:notaport", "", 0, false},
		{"", "", 0, false},
	}

	for _, tc := range cases {
		ap, ok := ParseORAddress(tc.in)
		if ok != tc.ok {
			t.Errorf("ParseORAddress(%q) ok = %v, want %v", tc.in, ok, tc.ok)
			continue
		}
		if !ok {
			continue
		}
		if got := ap.Addr().String(); got != tc.wantAddr {
			t.Errorf("ParseORAddress(%q) addr = %q, want %q", tc.in, got, tc.wantAddr)
		}
		if ap.Port() != tc.wantPort {
			t.Errorf("ParseORAddress(%q) port = %d, want %d", tc.in, ap.Port(), tc.wantPort)
		}
	}
}
