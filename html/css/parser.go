package css

import (
	"strings"
)

// Parser parses CSS.
//
// A Parser holds the read position and the active charset of one
// document. It is not safe for concurrent use.
type Parser struct {
	cur  *cursor
	logf func(format string, v ...interface{})
}

// Option configures a Parser.
type Option func(*config)

type config struct {
	charset string
	logf    func(format string, v ...interface{})
}

// WithCharset sets the charset the source is decoded with until
// an @charset rule says otherwise. The default is DefaultCharset.
func WithCharset(name string) Option {
	return func(c *config) {
		c.charset = name
	}
}

// WithLogf sets a function for the parser's diagnostic messages.
func WithLogf(logf func(format string, v ...interface{})) Option {
	return func(c *config) {
		c.logf = logf
	}
}

// NewParser creates a parser for the CSS in src.
func NewParser(src []byte, opts ...Option) (*Parser, error) {
	cfg := config{charset: DefaultCharset}
	for _, opt := range opts {
		opt(&cfg)
	}
	cs, err := lookupCharset(cfg.charset)
	if err != nil {
		return nil, err
	}
	p := &Parser{
		cur:  newCursor(src, cs),
		logf: cfg.logf,
	}
	if p.logf == nil {
		p.logf = func(string, ...interface{}) {}
	}
	return p, nil
}

// Parse parses a style sheet.
func Parse(src []byte, opts ...Option) (*Document, error) {
	p, err := NewParser(src, opts...)
	if err != nil {
		return nil, err
	}
	return p.Parse()
}

// ParseString parses a style sheet held in a string.
func ParseString(src string, opts ...Option) (*Document, error) {
	return Parse([]byte(src), opts...)
}

// SetCharset changes the charset used to decode the rest of the source.
func (p *Parser) SetCharset(name string) error {
	cs, err := lookupCharset(name)
	if err != nil {
		return err
	}
	p.cur.setCharset(cs)
	return nil
}

// Charset reports the name of the active charset.
func (p *Parser) Charset() string {
	return p.cur.cs.name
}

// Parse parses the source as a style sheet.
// The first syntax error ends parsing and is returned as a *ParseError.
func (p *Parser) Parse() (*Document, error) {
	if err := p.cur.consumeWhitespace(); err != nil {
		return nil, err
	}
	doc := &Document{}
	items, err := p.parseList(true)
	if err != nil {
		return nil, err
	}
	doc.Items = items
	return doc, nil
}

// ParseDeclarations parses the source as a sequence of declarations
// without surrounding braces, as found in an HTML style attribute.
func (p *Parser) ParseDeclarations() ([]*Rule, error) {
	var rules []*Rule
	for {
		if err := p.cur.consumeWhitespace(); err != nil {
			return nil, err
		}
		if p.cur.isEnd() {
			return rules, nil
		}
		r, err := p.parseRule()
		if err != nil {
			return nil, err
		}
		rules = append(rules, r)
	}
}

// parseList parses items until the end of input or, for a nested
// list, until its closing brace.
func (p *Parser) parseList(root bool) ([]Item, error) {
	c := p.cur
	var items []Item
	for !c.isEnd() {
		switch c.peekRune() {
		case '@':
			item, err := p.parseAtRule()
			if err != nil {
				return nil, err
			}
			items = append(items, item)
		case '}':
			if root {
				return nil, c.errorf(ErrUnmatchedClosingBrace, "unopened {")
			}
			c.pos++
			return items, nil
		default:
			item, err := p.parseSelector()
			if err != nil {
				return nil, err
			}
			items = append(items, item)
		}
		if err := c.consumeWhitespace(); err != nil {
			return nil, err
		}
	}
	if !root {
		return nil, c.errorf(ErrUnclosedBlock, "unexpected end of document, missing }")
	}
	return items, nil
}

func (p *Parser) parseAtRule() (Item, error) {
	c := p.cur
	if _, err := c.consume("@"); err != nil {
		return nil, err
	}
	name, err := p.parseName()
	if err != nil {
		return nil, err
	}
	if err := c.consumeWhitespace(); err != nil {
		return nil, err
	}

	switch name {
	case "media":
		query, err := c.consumeUntil("{")
		if err != nil {
			return nil, err
		}
		c.pos++
		if err := c.consumeWhitespace(); err != nil {
			return nil, err
		}
		items, err := p.parseList(false)
		if err != nil {
			return nil, err
		}
		return &MediaQuery{Query: trimSpace(query), Items: items}, nil

	case "import":
		loc, err := p.parseURLValue()
		if err != nil {
			return nil, err
		}
		if err := c.consumeWhitespace(); err != nil {
			return nil, err
		}
		imp := &Import{Location: loc}
		if !c.comes(";") {
			media, err := c.consumeUntil(";")
			if err != nil {
				return nil, err
			}
			imp.Media = trimSpace(media)
		}
		if _, err := c.consume(";"); err != nil {
			return nil, err
		}
		return imp, nil

	case "charset":
		if r := c.peekRune(); r != '"' && r != '\'' {
			return nil, c.errorf(ErrUnexpectedToken, "expected quoted charset name")
		}
		name, err := p.parseStringValue()
		if err != nil {
			return nil, err
		}
		if err := c.consumeWhitespace(); err != nil {
			return nil, err
		}
		if _, err := c.consume(";"); err != nil {
			return nil, err
		}
		if err := p.SetCharset(name.Value); err != nil {
			p.logf("css: @charset %q ignored, decoding with %q: %v", name.Value, p.Charset(), err)
		} else {
			p.logf("css: switched charset to %q", name.Value)
		}
		return &Charset{Name: name}, nil

	default:
		// Unknown at-rule, such as @font-face.
		if _, err := c.consume("{"); err != nil {
			return nil, err
		}
		if err := c.consumeWhitespace(); err != nil {
			return nil, err
		}
		rule := &AtRule{Name: name}
		if rule.Rules, err = p.parseRuleSet(); err != nil {
			return nil, err
		}
		return rule, nil
	}
}

func (p *Parser) parseSelector() (*DeclarationBlock, error) {
	c := p.cur
	sel, err := c.consumeUntil("{")
	if err != nil {
		return nil, err
	}
	c.pos++
	if err := c.consumeWhitespace(); err != nil {
		return nil, err
	}
	block := &DeclarationBlock{Selector: trimSpace(sel)}
	if block.Rules, err = p.parseRuleSet(); err != nil {
		return nil, err
	}
	return block, nil
}

// parseRuleSet parses declarations up to and including a closing brace.
func (p *Parser) parseRuleSet() ([]*Rule, error) {
	c := p.cur
	var rules []*Rule
	for !c.comes("}") {
		if c.isEnd() {
			return nil, c.errorf(ErrUnclosedBlock, "unexpected end of document, missing }")
		}
		r, err := p.parseRule()
		if err != nil {
			return nil, err
		}
		rules = append(rules, r)
		if err := c.consumeWhitespace(); err != nil {
			return nil, err
		}
	}
	c.pos++
	return rules, nil
}

const important = "important"

func (p *Parser) parseRule() (*Rule, error) {
	c := p.cur
	prop, err := p.parseName()
	if err != nil {
		return nil, err
	}
	rule := &Rule{Property: prop}
	if err := c.consumeWhitespace(); err != nil {
		return nil, err
	}
	if _, err := c.consume(":"); err != nil {
		return nil, err
	}
	if rule.Values, err = p.parseValueList("};!"); err != nil {
		return nil, err
	}
	if c.comes("!") {
		c.pos++
		if err := c.consumeWhitespace(); err != nil {
			return nil, err
		}
		marker := c.peek(len(important), 0)
		if !strings.EqualFold(marker, important) {
			return nil, c.errorf(ErrInvalidImportantMarker, "! was followed by %q, expected %q", marker, important)
		}
		c.pos += len(important)
		rule.Important = true
		if err := c.consumeWhitespace(); err != nil {
			return nil, err
		}
	}
	if c.comes(";") {
		c.pos++
	}
	return rule, nil
}
