package worldmap

import (
	"strings"
	"testing"
)

func TestBuilderEscapesCentrally(t *testing.T) {
	b := &builder{}
	b.open("g", "data-label", `a<b&"c"`)
	b.text("text", "guards & exits <both>", "x", "1")
	b.close("g")

	out := string(b.bytes())
	if !strings.Contains(out, `data-label="a&lt;b&amp;&#34;c&#34;"`) {
		t.Errorf("attribute not escaped: %q", out)
	}
	if !strings.Contains(out, "guards &amp; exits &lt;both&gt;") {
		t.Errorf("text content not escaped: %q", out)
	}
}

func TestBuilderNesting(t *testing.T) {
	b := &builder{}
	b.open("svg")
	b.open("g", "fill", "#fff")
	b.element("circle", "cx", "1", "cy", "2", "r", "3")
	b.close("g")
	b.close("svg")

	want := "<svg>\n" +
		"  <g fill=\"#fff\">\n" +
		"    <circle cx=\"1\" cy=\"2\" r=\"3\"/>\n" +
		"  </g>\n" +
		"</svg>\n"
	if got := string(b.bytes()); got != want {
		t.Errorf("builder output:\n%q\nwant:\n%q", got, want)
	}
}

func TestNumberFormatting(t *testing.T) {
	if got := num(1200); got != "1200" {
		t.Errorf("num(1200) = %q, want 1200", got)
	}
	if got := num(0.5); got != "0.5" {
		t.Errorf("num(0.5) = %q, want 0.5", got)
	}
	if got := fixed(266.6666, 2); got != "266.67" {
		t.Errorf("fixed(266.6666, 2) = %q, want 266.67", got)
	}
	if got := fixed(600, 1); got != "600.0" {
		t.Errorf("fixed(600, 1) = %q, want 600.0", got)
	}
}
