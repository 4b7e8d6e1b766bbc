package worldmap

import (
	"bytes"
	"encoding/xml"
	"strconv"
)

// builder assembles an SVG document element by element. All attribute
// values and text content pass through one central escape, so call sites
// never hand-format markup.
type builder struct {
	buf    bytes.Buffer
	indent int
}

func (b *builder) raw(s string) {
	b.buf.WriteString(s)
}

// open writes an opening tag with the given alternating key/value
// attribute pairs and indents its children one level deeper.
func (b *builder) open(name string, attrs ...string) {
	b.writeTag(name, attrs, false)
	b.indent++
}

// close writes the closing tag for a previously opened element.
func (b *builder) close(name string) {
	b.indent--
	b.pad()
	b.buf.WriteString("</" + name + ">\n")
}

// element writes a self-closing element.
func (b *builder) element(name string, attrs ...string) {
	b.writeTag(name, attrs, true)
}

// text writes an element containing escaped character data.
func (b *builder) text(name, content string, attrs ...string) {
	b.pad()
	b.buf.WriteByte('<')
	b.buf.WriteString(name)
	b.writeAttrs(attrs)
	b.buf.WriteByte('>')
	b.buf.WriteString(escape(content))
	b.buf.WriteString("</" + name + ">\n")
}

func (b *builder) writeTag(name string, attrs []string, selfClose bool) {
	b.pad()
	b.buf.WriteByte('<')
	b.buf.WriteString(name)
	b.writeAttrs(attrs)
	if selfClose {
		b.buf.WriteByte('/')
	}
	b.buf.WriteString(">\n")
}

func (b *builder) writeAttrs(attrs []string) {
	for i := 0; i+1 < len(attrs); i += 2 {
		b.buf.WriteByte(' ')
		b.buf.WriteString(attrs[i])
		b.buf.WriteString(`="`)
		b.buf.WriteString(escape(attrs[i+1]))
		b.buf.WriteByte('"')
	}
}

func (b *builder) pad() {
	for i := 0; i < b.indent; i++ {
		b.buf.WriteString("  ")
	}
}

func (b *builder) bytes() []byte {
	return b.buf.Bytes()
}

func escape(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}

// fixed formats v with a fixed number of decimals, matching the precision
// used for projected coordinates.
func fixed(v float64, prec int) string {
	return strconv.FormatFloat(v, 'f', prec, 64)
}

// num formats v with trailing zeros trimmed (1200, 0.5, 4).
func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
