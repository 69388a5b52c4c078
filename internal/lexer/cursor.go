package lexer

import (
	"fmt"
	"unicode/utf8"

	"fortio.org/safecast"

	"hybridlex/internal/source"
)

// Cursor tracks the scan position inside one file: a byte offset plus the
// human-readable line and column of the character at that offset. It only
// moves forward; reading past the end yields the zero rune, never an error.
type Cursor struct {
	file  *source.File
	off   uint32
	limit uint32 // exclusive upper bound for off
	line  uint32 // 1-based
	col   uint32 // 1-based, counts characters, not bytes
}

// NewCursor creates a cursor at the start of the provided file.
func NewCursor(f *source.File) Cursor {
	limit, err := safecast.Conv[uint32](len(f.Content))
	if err != nil {
		panic(fmt.Errorf("len file content overflow: %w", err))
	}
	return Cursor{
		file:  f,
		off:   0,
		limit: limit,
		line:  1,
		col:   1,
	}
}

// EOF reports whether the cursor has passed the last character.
func (c *Cursor) EOF() bool {
	return c.off >= c.limit
}

// Peek returns the character at the current offset, or 0 at end of input.
func (c *Cursor) Peek() rune {
	r, _ := c.decodeAt(c.off)
	return r
}

// PeekNext returns the character after the current one, or 0 if there is none.
func (c *Cursor) PeekNext() rune {
	_, size := c.decodeAt(c.off)
	if size == 0 {
		return 0
	}
	r, _ := c.decodeAt(c.off + size)
	return r
}

// Bump consumes one character and returns it. Column advances by one,
// except for '\n' which increments the line and resets the column to 1.
func (c *Cursor) Bump() rune {
	r, size := c.decodeAt(c.off)
	if size == 0 {
		return 0
	}
	c.off += size
	if r == '\n' {
		c.line++
		c.col = 1
	} else {
		c.col++
	}
	return r
}

// Pos returns the 1-based line and column of the current character.
func (c *Cursor) Pos() (line, col uint32) {
	return c.line, c.col
}

// Mark is a saved byte offset used to slice out a finished lexeme.
type Mark uint32

// Mark saves the current offset.
func (c *Cursor) Mark() Mark {
	return Mark(c.off)
}

// LexemeFrom returns a materialized copy of the source text between the
// mark and the current offset.
func (c *Cursor) LexemeFrom(m Mark) string {
	return string(c.file.Content[m:c.off])
}

// decodeAt reads the rune starting at the given offset. Returns size 0 at
// or past the limit. Bytes that are not valid UTF-8 come back as
// utf8.RuneError with size 1, so the scan always makes progress.
func (c *Cursor) decodeAt(off uint32) (rune, uint32) {
	if off >= c.limit {
		return 0, 0
	}
	b := c.file.Content[off]
	if b < utf8.RuneSelf { // fast-path ASCII
		return rune(b), 1
	}
	r, sz := utf8.DecodeRune(c.file.Content[off:c.limit])
	return r, uint32(sz)
}
