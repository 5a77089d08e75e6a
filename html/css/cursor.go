package css

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// cursor reads characters from CSS source.
//
// Offsets count characters of the active charset, not bytes.
// The source is decoded eagerly; switching charsets re-decodes
// everything after the current position.
type cursor struct {
	src  []byte
	cs   charset
	text []rune
	offs []int // offs[i] is the byte offset of text[i] in src
	pos  int
}

func newCursor(src []byte, cs charset) *cursor {
	c := &cursor{src: src, cs: cs}
	c.text, c.offs = cs.decode(nil, nil, src, 0)
	return c
}

// setCharset switches the charset used for all unconsumed input.
func (c *cursor) setCharset(cs charset) {
	off := len(c.src)
	if c.pos < len(c.offs) {
		off = c.offs[c.pos]
	}
	c.cs = cs
	c.text, c.offs = cs.decode(c.text[:c.pos], c.offs[:c.pos], c.src[off:], off)
}

func (c *cursor) isEnd() bool {
	return c.pos >= len(c.text)
}

// peek returns up to n characters starting offset characters ahead.
func (c *cursor) peek(n, offset int) string {
	start := c.pos + offset
	if c.isEnd() || start >= len(c.text) {
		return ""
	}
	end := start + n
	if end > len(c.text) {
		end = len(c.text)
	}
	return string(c.text[start:end])
}

// peekRune returns the next character, or -1 at the end of input.
func (c *cursor) peekRune() rune {
	if c.isEnd() {
		return -1
	}
	return c.text[c.pos]
}

// comes reports whether lit is next in the input.
func (c *cursor) comes(lit string) bool {
	i := c.pos
	for _, r := range lit {
		if i >= len(c.text) || c.text[i] != r {
			return false
		}
		i++
	}
	return !c.isEnd()
}

func (c *cursor) consume(lit string) (string, error) {
	if !c.comes(lit) {
		got := c.peek(5, 0)
		if got == "" {
			got = "end of input"
		}
		return "", c.errorf(ErrUnexpectedToken, "expected %q, got %q", lit, got)
	}
	c.pos += utf8.RuneCountInString(lit)
	return lit, nil
}

func (c *cursor) consumeN(n int) (string, error) {
	if c.pos+n > len(c.text) {
		return "", c.errorf(ErrUnexpectedEnd, "tried to consume %d characters, exceeded end of input", n)
	}
	s := string(c.text[c.pos : c.pos+n])
	c.pos += n
	return s, nil
}

// consumeRun consumes the longest run of characters matching class,
// at most max characters long when max > 0.
func (c *cursor) consumeRun(class func(rune) bool, max int, what string) (string, error) {
	end := c.pos
	for end < len(c.text) && class(c.text[end]) {
		if max > 0 && end-c.pos == max {
			break
		}
		end++
	}
	if end == c.pos {
		return "", c.errorf(ErrPatternNotFound, "expected %s", what)
	}
	s := string(c.text[c.pos:end])
	c.pos = end
	return s, nil
}

// consumeUntil consumes everything up to, not including, marker.
func (c *cursor) consumeUntil(marker string) (string, error) {
	m := []rune(marker)
	for i := c.pos; i+len(m) <= len(c.text); i++ {
		if runesHavePrefix(c.text[i:], m) {
			s := string(c.text[c.pos:i])
			c.pos = i
			return s, nil
		}
	}
	return "", c.errorf(ErrMarkerNotFound, "required %q not found", marker)
}

func runesHavePrefix(text, prefix []rune) bool {
	if len(text) < len(prefix) {
		return false
	}
	for i, r := range prefix {
		if text[i] != r {
			return false
		}
	}
	return true
}

func (c *cursor) position() Position {
	p := Position{Line: 1, Col: 1}
	for _, r := range c.text[:c.pos] {
		if r == '\n' {
			p.Line++
			p.Col = 1
		} else {
			p.Col++
		}
	}
	return p
}

func (c *cursor) errorf(cause error, format string, v ...interface{}) *ParseError {
	return &ParseError{
		Err:     cause,
		Msg:     fmt.Sprintf(format, v...),
		Context: c.peek(5, 0),
		Pos:     c.position(),
	}
}

func isWhitespace(c rune) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f' || c == '\v'
}

// consumeWhitespace skips whitespace and comments.
func (c *cursor) consumeWhitespace() error {
	for {
		for !c.isEnd() && isWhitespace(c.text[c.pos]) {
			c.pos++
		}
		if !c.comes("/*") {
			return nil
		}
		c.pos += 2
		if _, err := c.consumeUntil("*/"); err != nil {
			return err
		}
		c.pos += 2
	}
}

func trimSpace(s string) string {
	return strings.TrimFunc(s, isWhitespace)
}
