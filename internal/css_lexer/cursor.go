package css_lexer

import "unicode/utf8"

// cursor wraps the source string as a restartable sequence of
// (byte offset, char) pairs with cheap cloning: a cursor is just a string
// header and an int, so copying it (as peek() does when it snapshots the
// whole tokenizer state) is free.
type cursor struct {
	source string
	pos    int
}

func newCursor(source string) cursor {
	return cursor{source: source}
}

// peek1 returns the next rune and its byte offset without consuming it.
func (c cursor) peek1() (int, rune, bool) {
	if c.pos >= len(c.source) {
		return 0, 0, false
	}
	r, size := utf8.DecodeRuneInString(c.source[c.pos:])
	if size == 0 {
		return 0, 0, false
	}
	return c.pos, r, true
}

// peek2 returns the next two runes and the offset of the first, without
// consuming either.
func (c cursor) peek2() (int, rune, rune, bool) {
	start, first, ok := c.peek1()
	if !ok {
		return 0, 0, 0, false
	}
	_, firstSize := utf8.DecodeRuneInString(c.source[start:])
	rest := c.source[start+firstSize:]
	if len(rest) == 0 {
		return 0, 0, 0, false
	}
	second, size := utf8.DecodeRuneInString(rest)
	if size == 0 {
		return 0, 0, 0, false
	}
	return start, first, second, true
}

// peek3 returns the next three runes and the offset of the first, without
// consuming any of them.
func (c cursor) peek3() (int, rune, rune, rune, bool) {
	start, first, second, ok := c.peek2()
	if !ok {
		return 0, 0, 0, 0, false
	}
	_, firstSize := utf8.DecodeRuneInString(c.source[start:])
	_, secondSize := utf8.DecodeRuneInString(c.source[start+firstSize:])
	rest := c.source[start+firstSize+secondSize:]
	if len(rest) == 0 {
		return 0, 0, 0, 0, false
	}
	third, size := utf8.DecodeRuneInString(rest)
	if size == 0 {
		return 0, 0, 0, 0, false
	}
	return start, first, second, third, true
}

// next consumes and returns the next rune and its byte offset.
func (c *cursor) next() (int, rune, bool) {
	i, r, ok := c.peek1()
	if !ok {
		return 0, 0, false
	}
	c.pos += utf8.RuneLen(r)
	return i, r, true
}

// currentOffset is the byte offset of the next unconsumed character, or
// the input length at EOF.
func (c cursor) currentOffset() int {
	return c.pos
}
