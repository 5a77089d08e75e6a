package css

// Node is any element of a parsed document:
// a *Document, an Item, a *Rule, or a Value.
type Node interface {
	node()
}

func (*Document) node()         {}
func (*DeclarationBlock) node() {}
func (*AtRule) node()           {}
func (*MediaQuery) node()       {}
func (*Import) node()           {}
func (*Charset) node()          {}
func (*Rule) node()             {}
func (*Size) node()             {}
func (*Color) node()            {}
func (*URL) node()              {}
func (*String) node()           {}
func (*Ident) node()            {}
func (*Function) node()         {}
func (*Slashed) node()          {}

// Document is the root of a parsed style sheet.
type Document struct {
	Items []Item
}

// Item is a top-level statement of a list:
// *DeclarationBlock, *AtRule, *MediaQuery, *Import, or *Charset.
type Item interface {
	Node
	item()
}

func (*DeclarationBlock) item() {}
func (*AtRule) item()           {}
func (*MediaQuery) item()       {}
func (*Import) item()           {}
func (*Charset) item()          {}

// List is an ordered sequence of items: a *Document or a *MediaQuery.
type List interface {
	Node
	ItemList() []Item
}

func (d *Document) ItemList() []Item   { return d.Items }
func (m *MediaQuery) ItemList() []Item { return m.Items }

// RuleSet is an item holding declarations: a *DeclarationBlock or an *AtRule.
type RuleSet interface {
	Item
	RuleList() []*Rule
	setRules([]*Rule)
}

func (b *DeclarationBlock) RuleList() []*Rule { return b.Rules }
func (a *AtRule) RuleList() []*Rule           { return a.Rules }

func (b *DeclarationBlock) setRules(r []*Rule) { b.Rules = r }
func (a *AtRule) setRules(r []*Rule)           { a.Rules = r }

// DeclarationBlock is a selector and its declarations.
// The selector is kept as written, without surrounding whitespace.
type DeclarationBlock struct {
	Selector string
	Rules    []*Rule
}

// AtRule is an at-rule the parser has no grammar for, such as @font-face.
// Its block is parsed as declarations.
type AtRule struct {
	Name  string
	Rules []*Rule
}

// MediaQuery is an @media block.
type MediaQuery struct {
	Query string // raw, unparsed
	Items []Item
}

// Import is an @import statement.
type Import struct {
	Location *URL   // quoted or bare locations are stored as a URL too
	Media    string // raw media query, "" if absent
}

// Charset is an @charset statement.
type Charset struct {
	Name *String
}

// Rule is a single declaration.
type Rule struct {
	Property  string
	Values    ValueList
	Important bool
}

// ValueList holds the comma-separated alternatives of a rule or
// function argument list.
type ValueList []ValueGroup

// ValueGroup is one alternative: whitespace-separated values.
type ValueGroup []Value

// Value is a single value:
// *Size, *Color, *URL, *String, *Ident, *Function, or *Slashed.
type Value interface {
	Node
	value()
}

func (*Size) value()     {}
func (*Color) value()    {}
func (*URL) value()      {}
func (*String) value()   {}
func (*Ident) value()    {}
func (*Function) value() {}
func (*Slashed) value()  {}

// Unit is the unit of a Size.
type Unit string

// Units recognized after a number, in matching order.
const (
	UnitNone    Unit = ""
	UnitPercent Unit = "%"
	UnitEm      Unit = "em"
	UnitEx      Unit = "ex"
	UnitPx      Unit = "px"
	UnitDeg     Unit = "deg"
	UnitS       Unit = "s"
	UnitCm      Unit = "cm"
	UnitPt      Unit = "pt"
	UnitIn      Unit = "in"
	UnitPc      Unit = "pc"
	UnitMm      Unit = "mm"
)

// units is matched first to last against the text following a number.
// The first literal match wins, so "s" is tried before later units.
var units = []Unit{
	UnitPercent,
	UnitEm,
	UnitEx,
	UnitPx,
	UnitDeg,
	UnitS,
	UnitCm,
	UnitPt,
	UnitIn,
	UnitPc,
	UnitMm,
}

// Size is a number with an optional unit.
type Size struct {
	Magnitude float64
	Unit      Unit
}

// Channel is one component of a Color.
type Channel struct {
	Key   string // a single letter, e.g. "r" or "a"
	Value *Size
}

// Color is a hex or functional color.
// The channels follow the letters of the color function name,
// or are r, g, b for the hex form.
type Color struct {
	Channels []Channel
}

// Channel returns the channel named key.
func (c *Color) Channel(key string) (*Size, bool) {
	for _, ch := range c.Channels {
		if ch.Key == key {
			return ch.Value, true
		}
	}
	return nil, false
}

// URL is a url() value or an @import location.
type URL struct {
	Location *String
}

// String is a decoded string, quoted or not in the source.
type String struct {
	Value string
}

// Ident is an identifier such as a keyword.
type Ident struct {
	Name string
}

// Function is a function call other than a color or url().
type Function struct {
	Name string
	Args ValueList
}

// Slashed is a pair of values joined by '/', as in "12px/1.5".
type Slashed struct {
	Left  Value
	Right Value
}
