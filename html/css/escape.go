package css

import (
	"strconv"
	"unicode/utf8"
)

// identThreshold is the highest code point that is not accepted as
// an identifier character on its own.
const identThreshold = 0xa1

func isHex(c rune) bool {
	return isDigit(c) || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}

func isLetter(c rune) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

func isDigit(c rune) bool {
	return '0' <= c && c <= '9'
}

func isIdentCodePoint(c rune) bool {
	return isLetter(c) || isDigit(c) || c == '-' || c == '_' || c > identThreshold
}

// parseCharacter reads one character, decoding backslash escapes.
//
// In identifier context only identifier characters are accepted and
// ok is false, with nothing consumed, when the next character is not one.
// Outside identifier context any character is accepted.
func (p *Parser) parseCharacter(ident bool) (s string, ok bool, err error) {
	c := p.cur
	if c.peekRune() == '\\' {
		c.pos++
		return p.escape()
	}
	if c.isEnd() {
		return "", false, nil
	}
	if ident && !isIdentCodePoint(c.peekRune()) {
		return "", false, nil
	}
	s, err = c.consumeN(1)
	return s, err == nil, err
}

// escape decodes the escape sequence following a consumed backslash.
func (p *Parser) escape() (string, bool, error) {
	c := p.cur

	// Line continuation.
	switch {
	case c.comes("\r\n"):
		c.pos += 2
		return "", true, nil
	case c.comes("\n"), c.comes("\r"), c.comes("\f"):
		c.pos++
		return "", true, nil
	}

	if !isHex(c.peekRune()) {
		s, err := c.consumeN(1)
		if err != nil {
			return "", false, err
		}
		return s, true, nil
	}

	digits, err := c.consumeRun(isHex, 6, "hex digits")
	if err != nil {
		return "", false, err
	}
	if len(digits) < 6 {
		// A single whitespace character terminates a short escape.
		if c.comes("\r\n") {
			c.pos += 2
		} else if isWhitespace(c.peekRune()) {
			c.pos++
		}
	}

	d, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return string(utf8.RuneError), true, nil
	}
	return p.cur.cs.encodeRune(rune(d)), true, nil
}
