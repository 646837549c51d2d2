package json5

import "unicode/utf8"

// cursor walks a string one rune at a time with one rune of lookahead.
// ch holds the current rune; once the input is exhausted eof is set and
// ch is 0.
type cursor struct {
	input string
	pos   int // byte offset just past ch
	ch    rune
	eof   bool
}

func newCursor(input string) *cursor {
	c := &cursor{input: input}
	c.advance()
	return c
}

func (c *cursor) advance() {
	if c.pos >= len(c.input) {
		c.ch, c.eof = 0, true
		return
	}
	r, size := utf8.DecodeRuneInString(c.input[c.pos:])
	c.ch = r
	c.pos += size
}

// peek returns the rune after ch without consuming anything.
func (c *cursor) peek() (rune, bool) {
	if c.pos >= len(c.input) {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(c.input[c.pos:])
	return r, true
}

// is reports whether the current rune is ch.
func (c *cursor) is(ch rune) bool {
	return !c.eof && c.ch == ch
}
