// Package parse implements the recipe text parser: a small combinator
// layer with explicit commit/backtrack semantics, and the grammar built
// on top of it. The entry point is AsRecipe.
package parse

// Cursor is a position-tracked view over an immutable input buffer.
// Cursors are cheap value copies; saving one before trying an
// alternative and discarding the copy on failure is how the combinator
// layer backtracks.
type Cursor struct {
	src string
	off int
}

// NewCursor returns a cursor at the start of input.
func NewCursor(input string) Cursor {
	return Cursor{src: input}
}

// Offset reports the current byte offset, for error messages.
func (c Cursor) Offset() int {
	return c.off
}

// EOF reports whether the cursor has consumed all input.
func (c Cursor) EOF() bool {
	return c.off >= len(c.src)
}

// Remaining returns the number of unconsumed bytes.
func (c Cursor) Remaining() int {
	return len(c.src) - c.off
}

// Peek returns the next n bytes without advancing. The second return is
// false when fewer than n bytes remain.
func (c Cursor) Peek(n int) (string, bool) {
	if c.off+n > len(c.src) {
		return c.src[c.off:], false
	}
	return c.src[c.off : c.off+n], true
}

// Byte returns the byte at the cursor without advancing, or false at
// end of input.
func (c Cursor) Byte() (byte, bool) {
	if c.EOF() {
		return 0, false
	}
	return c.src[c.off], true
}

// Advance returns a cursor moved forward by n bytes.
func (c Cursor) Advance(n int) Cursor {
	c.off += n
	if c.off > len(c.src) {
		c.off = len(c.src)
	}
	return c
}

// Between returns the input spanned from c up to end.
func (c Cursor) Between(end Cursor) string {
	return c.src[c.off:end.off]
}
