package source

import (
	"fmt"

	"fortio.org/safecast"
)

// LineCol represents a human-readable position in the input.
type LineCol struct {
	Line uint32 // 1-based
	Col  uint32 // 1-based, in bytes
}

func (lc LineCol) String() string {
	return fmt.Sprintf("%d:%d", lc.Line, lc.Col)
}

// Text is a single conversion input together with its line index.
// AsciiMath sources are usually one line; the index only matters for dumps
// of multi-line input.
type Text struct {
	Content string
	LineIdx []uint32
}

// NewText indexes src for span resolution.
func NewText(src string) *Text {
	if _, err := safecast.Conv[uint32](len(src)); err != nil {
		panic(fmt.Errorf("len text overflow: %w", err))
	}
	return &Text{
		Content: src,
		LineIdx: buildLineIndex(src),
	}
}

// Len returns the byte length of the content as uint32.
func (t *Text) Len() uint32 {
	n, err := safecast.Conv[uint32](len(t.Content))
	if err != nil {
		panic(fmt.Errorf("len text overflow: %w", err))
	}
	return n
}

// Resolve converts a span into start and end line/column pairs.
func (t *Text) Resolve(span Span) (start, end LineCol) {
	return toLineCol(t.LineIdx, span.Start), toLineCol(t.LineIdx, span.End)
}
