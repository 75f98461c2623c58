// Package hexdump renders raw packet bytes as addressed 16-byte rows.
package hexdump

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// BytesPerLine is the number of bytes rendered on each row.
const BytesPerLine = 16

// Span is a half-open byte range [Offset, Offset+Length).
type Span struct {
	Offset int
	Length int
}

// Contains reports whether the absolute byte index falls inside the span.
func (s Span) Contains(index int) bool {
	if s.Length <= 0 {
		return false
	}
	return index >= s.Offset && index < s.Offset+s.Length
}

// Marker decorates a highlighted two-digit hex byte.
type Marker func(hexByte string) string

// Brackets marks a byte as [ab]; used when colors are disabled.
func Brackets(hexByte string) string {
	return "[" + hexByte + "]"
}

// StyleMarker marks bytes with a lipgloss style.
func StyleMarker(style lipgloss.Style) Marker {
	return func(hexByte string) string {
		return style.Render(hexByte)
	}
}

// HighlightStyle is the bright green used for highlighted bytes.
var HighlightStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))

// Render formats data as rows of 16 bytes prefixed by a 4-digit offset label.
// Bytes inside highlight are passed through mark; a nil highlight marks nothing
// and a nil mark falls back to Brackets. Ranges past the end are clipped.
func Render(data []byte, highlight *Span, mark Marker) string {
	if mark == nil {
		mark = Brackets
	}
	var b strings.Builder
	for start := 0; start < len(data); start += BytesPerLine {
		end := min(start+BytesPerLine, len(data))
		if start > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%04x ", start)
		for i := start; i < end; i++ {
			b.WriteByte(' ')
			cell := fmt.Sprintf("%02x", data[i])
			if highlight != nil && highlight.Contains(i) {
				cell = mark(cell)
			}
			b.WriteString(cell)
		}
	}
	return b.String()
}
