package hexdump

import (
	"encoding/hex"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sequence(n int) []byte {
	data := make([]byte, n)
	for i := range data {
		data[i] = byte(i * 7)
	}
	return data
}

// cells strips offset labels and returns the rendered byte cells per line.
func cells(t *testing.T, out string) [][]string {
	t.Helper()
	if out == "" {
		return nil
	}
	var rows [][]string
	for _, line := range strings.Split(out, "\n") {
		fields := strings.Fields(line)
		require.NotEmpty(t, fields)
		require.Len(t, fields[0], 4, "offset label %q", fields[0])
		rows = append(rows, fields[1:])
	}
	return rows
}

func TestRenderEmpty(t *testing.T) {
	assert.Equal(t, "", Render(nil, nil, nil))
	assert.Equal(t, "", Render([]byte{}, &Span{Offset: 0, Length: 4}, nil))
}

func TestRenderLayout(t *testing.T) {
	data := []byte{0x00, 0x1a, 0xff}
	assert.Equal(t, "0000  00 1a ff", Render(data, nil, nil))

	out := Render(sequence(20), nil, nil)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "0000  00 07 0e"))
	assert.True(t, strings.HasPrefix(lines[1], "0010  70 77"))
}

func TestRenderReconstructsInput(t *testing.T) {
	for _, n := range []int{1, 15, 16, 17, 32, 42, 71, 106} {
		data := sequence(n)
		out := Render(data, nil, nil)
		rows := cells(t, out)
		require.Len(t, rows, (n+BytesPerLine-1)/BytesPerLine, "n=%d", n)
		var joined strings.Builder
		for _, row := range rows {
			require.LessOrEqual(t, len(row), BytesPerLine)
			joined.WriteString(strings.Join(row, ""))
		}
		assert.Equal(t, hex.EncodeToString(data), joined.String(), "n=%d", n)
	}
}

func TestRenderOffsetLabels(t *testing.T) {
	out := Render(sequence(50), nil, nil)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 4)
	for i, want := range []string{"0000", "0010", "0020", "0030"} {
		assert.True(t, strings.HasPrefix(lines[i], want+"  "), "line %d: %q", i, lines[i])
	}
}

func TestRenderHighlightInside(t *testing.T) {
	data := sequence(42)
	span := Span{Offset: 12, Length: 6}
	rows := cells(t, Render(data, &span, Brackets))

	var marked []int
	index := 0
	for _, row := range rows {
		for _, cell := range row {
			if strings.HasPrefix(cell, "[") {
				assert.Equal(t, Brackets(hex.EncodeToString(data[index:index+1])), cell)
				marked = append(marked, index)
			}
			index++
		}
	}
	assert.Equal(t, []int{12, 13, 14, 15, 16, 17}, marked)
}

func TestRenderHighlightEdgeCases(t *testing.T) {
	data := sequence(20)
	cases := []struct {
		name string
		span *Span
		want int
	}{
		{name: "absent", span: nil, want: 0},
		{name: "zero length", span: &Span{Offset: 3, Length: 0}, want: 0},
		{name: "negative length", span: &Span{Offset: 3, Length: -2}, want: 0},
		{name: "clipped at end", span: &Span{Offset: 18, Length: 10}, want: 2},
		{name: "past end", span: &Span{Offset: 40, Length: 2}, want: 0},
		{name: "whole input", span: &Span{Offset: 0, Length: 20}, want: 20},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out := Render(data, tc.span, Brackets)
			assert.Equal(t, tc.want, strings.Count(out, "["))
		})
	}
}

func TestRenderDoesNotMutateInput(t *testing.T) {
	data := sequence(33)
	original := append([]byte(nil), data...)
	_ = Render(data, &Span{Offset: 1, Length: 30}, func(s string) string { return strings.ToUpper(s) })
	assert.Equal(t, original, data)
}

func TestRenderCustomMarker(t *testing.T) {
	out := Render([]byte{0x08, 0x06}, &Span{Offset: 1, Length: 1}, func(s string) string { return "<" + s + ">" })
	assert.Equal(t, "0000  08 <06>", out)
}
