package lexer

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"polymath/internal/source"

	"fortio.org/safecast"
)

// Cursor is a byte position inside the conversion input.
type Cursor struct {
	Src string
	Off uint32
	// Limit is the exclusive upper bound for Off.
	Limit uint32
}

// NewCursor creates a new cursor over src.
func NewCursor(src string) Cursor {
	limit, err := safecast.Conv[uint32](len(src))
	if err != nil {
		panic(fmt.Errorf("input length overflow: %w", err))
	}
	return Cursor{Src: src, Limit: limit}
}

// EOF reports whether the cursor is at the end of input.
func (c *Cursor) EOF() bool {
	return c.Off >= c.Limit
}

// Peek returns the current byte, or 0 at end of input.
func (c *Cursor) Peek() byte {
	if c.EOF() {
		return 0
	}
	return c.Src[c.Off]
}

// Rest returns the unread part of the input.
func (c *Cursor) Rest() string {
	return c.Src[c.Off:c.Limit]
}

// HasPrefix reports whether the unread input starts with p.
func (c *Cursor) HasPrefix(p string) bool {
	return strings.HasPrefix(c.Rest(), p)
}

// Bump advances one byte and returns it.
func (c *Cursor) Bump() byte {
	if c.EOF() {
		return 0
	}
	b := c.Src[c.Off]
	c.Off++
	return b
}

// BumpN advances n bytes, clamped to the limit.
func (c *Cursor) BumpN(n int) {
	step, err := safecast.Conv[uint32](n)
	if err != nil || c.Off+step > c.Limit {
		c.Off = c.Limit
		return
	}
	c.Off += step
}

// BumpRune advances over one UTF-8 scalar value. Invalid bytes count as one.
func (c *Cursor) BumpRune() {
	if c.EOF() {
		return
	}
	_, size := utf8.DecodeRuneInString(c.Rest())
	c.BumpN(size)
}

// Eat consumes the next byte if it matches b.
func (c *Cursor) Eat(b byte) bool {
	if !c.EOF() && c.Src[c.Off] == b {
		c.Off++
		return true
	}
	return false
}

// Mark это метка, чтобы быстро получать Span читаемого фрагмента
type Mark uint32

// Mark saves the current position.
func (c *Cursor) Mark() Mark {
	return Mark(c.Off)
}

// SpanFrom returns the span from m to the current position.
func (c *Cursor) SpanFrom(m Mark) source.Span {
	return source.Span{Start: uint32(m), End: c.Off}
}

// Reset moves the cursor back to m.
func (c *Cursor) Reset(m Mark) {
	c.Off = uint32(m)
}
