package css

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// parseValueList parses comma-separated groups of values.
// It stops at the end of input or before any character in stop.
func (p *Parser) parseValueList(stop string) (ValueList, error) {
	var list ValueList
	var group ValueGroup
	for {
		if err := p.cur.consumeWhitespace(); err != nil {
			return nil, err
		}
		if p.cur.isEnd() || strings.ContainsRune(stop, p.cur.peekRune()) {
			break
		}
		if p.cur.comes(",") && group != nil {
			p.cur.pos++
			list = append(list, group)
			group = nil
			continue
		}
		v, err := p.parseSlashedValue()
		if err != nil {
			return nil, err
		}
		group = append(group, v)
	}
	if group != nil {
		list = append(list, group)
	}
	return list, nil
}

// parseSlashedValue parses a single value and any '/'-joined successors,
// grouping them left to right.
func (p *Parser) parseSlashedValue() (Value, error) {
	v, err := p.parseSingleValue()
	if err != nil {
		return nil, err
	}
	for {
		if err := p.cur.consumeWhitespace(); err != nil {
			return nil, err
		}
		if !p.cur.comes("/") {
			return v, nil
		}
		p.cur.pos++
		if err := p.cur.consumeWhitespace(); err != nil {
			return nil, err
		}
		right, err := p.parseSingleValue()
		if err != nil {
			return nil, err
		}
		v = &Slashed{Left: v, Right: right}
	}
}

func (p *Parser) parseSingleValue() (Value, error) {
	c := p.cur
	if err := c.consumeWhitespace(); err != nil {
		return nil, err
	}
	switch r := c.peekRune(); {
	case p.comesNumber():
		return p.parseNumericValue()
	case r == '#' || c.comes("rgb") || c.comes("hsl"):
		return p.parseColorValue()
	case c.comes("url"):
		return p.parseURLValue()
	case r == '\'' || r == '"':
		return p.parseStringValue()
	default:
		return p.parseIdentifier(true)
	}
}

// comesNumber reports whether a numeric value starts at the cursor.
func (p *Parser) comesNumber() bool {
	c := p.cur
	r := []rune(c.peek(3, 0))
	for len(r) < 3 {
		r = append(r, -1)
	}
	switch {
	case isDigit(r[0]):
		return true
	case r[0] == '-' || r[0] == '.':
		if isDigit(r[1]) {
			return true
		}
		return r[0] == '-' && r[1] == '.' && isDigit(r[2])
	}
	return false
}

func (p *Parser) parseNumericValue() (*Size, error) {
	c := p.cur
	var num strings.Builder
	if c.comes("-") {
		c.pos++
		num.WriteByte('-')
	}
	digits, dot := 0, false
	for !c.isEnd() {
		r := c.peekRune()
		if isDigit(r) {
			digits++
		} else if r == '.' && !dot {
			dot = true
		} else {
			break
		}
		num.WriteRune(r)
		c.pos++
	}
	if digits == 0 {
		return nil, c.errorf(ErrPatternNotFound, "expected number")
	}
	f, err := strconv.ParseFloat(num.String(), 64)
	if err != nil {
		return nil, c.errorf(ErrPatternNotFound, "invalid number %q", num.String())
	}

	size := &Size{Magnitude: f}
	for _, u := range units {
		if c.comes(string(u)) {
			c.pos += utf8.RuneCountInString(string(u))
			size.Unit = u
			break
		}
	}
	return size, nil
}

func (p *Parser) parseColorValue() (*Color, error) {
	c := p.cur
	if c.comes("#") {
		c.pos++
		start := c.position()
		hex, err := p.parseName()
		if err != nil {
			return nil, err
		}
		if len(hex) == 3 {
			hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
		}
		color := &Color{}
		for i, key := range []string{"r", "g", "b"} {
			var d uint64
			if len(hex) == 6 {
				d, err = strconv.ParseUint(hex[2*i:2*i+2], 16, 8)
			}
			if len(hex) != 6 || err != nil {
				return nil, &ParseError{
					Err:     ErrUnexpectedToken,
					Msg:     "invalid hex color #" + hex,
					Context: c.peek(5, 0),
					Pos:     start,
				}
			}
			color.Channels = append(color.Channels, Channel{Key: key, Value: &Size{Magnitude: float64(d)}})
		}
		return color, nil
	}

	mode, err := p.parseName()
	if err != nil {
		return nil, err
	}
	if err := c.consumeWhitespace(); err != nil {
		return nil, err
	}
	if _, err := c.consume("("); err != nil {
		return nil, err
	}
	color := &Color{}
	keys := []rune(mode)
	for i, key := range keys {
		if err := c.consumeWhitespace(); err != nil {
			return nil, err
		}
		v, err := p.parseNumericValue()
		if err != nil {
			return nil, err
		}
		color.Channels = append(color.Channels, Channel{Key: string(key), Value: v})
		if err := c.consumeWhitespace(); err != nil {
			return nil, err
		}
		if i < len(keys)-1 {
			if _, err := c.consume(","); err != nil {
				return nil, err
			}
		}
	}
	if _, err := c.consume(")"); err != nil {
		return nil, err
	}
	return color, nil
}

// parseURLValue parses url(...) or a bare string location.
func (p *Parser) parseURLValue() (*URL, error) {
	c := p.cur
	useURL := c.comes("url")
	if useURL {
		c.pos += 3
		if err := c.consumeWhitespace(); err != nil {
			return nil, err
		}
		if _, err := c.consume("("); err != nil {
			return nil, err
		}
	}
	if err := c.consumeWhitespace(); err != nil {
		return nil, err
	}
	s, err := p.parseStringValue()
	if err != nil {
		return nil, err
	}
	if useURL {
		if err := c.consumeWhitespace(); err != nil {
			return nil, err
		}
		if _, err := c.consume(")"); err != nil {
			return nil, err
		}
	}
	return &URL{Location: s}, nil
}

// isStringDelim reports whether r ends an unquoted string.
func isStringDelim(r rune) bool {
	switch r {
	case '{', '}', '(', ')', '<', '>', '[', ']':
		return true
	}
	return isWhitespace(r)
}

func (p *Parser) parseStringValue() (*String, error) {
	c := p.cur
	var quote rune
	if r := c.peekRune(); r == '\'' || r == '"' {
		quote = r
		c.pos++
	}

	var buf strings.Builder
	if quote == 0 {
		for !c.isEnd() && !isStringDelim(c.peekRune()) {
			s, _, err := p.parseCharacter(false)
			if err != nil {
				return nil, err
			}
			buf.WriteString(s)
		}
		return &String{Value: buf.String()}, nil
	}

	start := c.position()
	for c.peekRune() != quote {
		if c.isEnd() || (c.peekRune() == '\\' && c.pos+1 == len(c.text)) {
			return nil, &ParseError{
				Err: ErrUnterminatedString,
				Msg: "quoted string is not terminated",
				Pos: start,
			}
		}
		s, _, err := p.parseCharacter(false)
		if err != nil {
			return nil, err
		}
		buf.WriteString(s)
	}
	c.pos++
	return &String{Value: buf.String()}, nil
}

// parseName reads identifier characters. At least one is required;
// line continuations do not count.
func (p *Parser) parseName() (string, error) {
	var buf strings.Builder
	for {
		s, ok, err := p.parseCharacter(true)
		if err != nil {
			return "", err
		}
		if !ok {
			break
		}
		buf.WriteString(s)
	}
	if buf.Len() == 0 {
		got := p.cur.peek(5, 0)
		if got == "" {
			got = "end of input"
		}
		return "", p.cur.errorf(ErrInvalidIdentifier, "identifier expected, got %q", got)
	}
	return buf.String(), nil
}

// parseIdentifier parses an identifier, or a function call if allowFunc
// is set and '(' follows the name.
func (p *Parser) parseIdentifier(allowFunc bool) (Value, error) {
	name, err := p.parseName()
	if err != nil {
		return nil, err
	}
	if !allowFunc || !p.cur.comes("(") {
		return &Ident{Name: name}, nil
	}
	p.cur.pos++
	args, err := p.parseValueList(")")
	if err != nil {
		return nil, err
	}
	if _, err := p.cur.consume(")"); err != nil {
		return nil, err
	}
	return &Function{Name: name, Args: args}, nil
}
