package css

import (
	"testing"
)

func newTestParser(t *testing.T, src string, opts ...Option) *Parser {
	t.Helper()
	p, err := NewParser([]byte(src), opts...)
	if err != nil {
		t.Fatal(err)
	}
	return p
}

var parseCharacterTests = []struct {
	name    string
	input   string
	charset string
	ident   bool
	want    string
	ok      bool
	rest    string
}{
	{name: "hex", input: `\41`, want: "A", ok: true},
	{name: "hex_space", input: `\41 b`, want: "A", ok: true, rest: "b"},
	{name: "hex_one_space_only", input: `\41  b`, want: "A", ok: true, rest: " b"},
	{name: "hex_crlf", input: "\\41\r\nb", want: "A", ok: true, rest: "b"},
	{name: "hex_tab", input: "\\41\tb", want: "A", ok: true, rest: "b"},
	{name: "hex_six_digits", input: `\000041b`, want: "A", ok: true, rest: "b"},
	{name: "hex_six_digits_keeps_space", input: `\000041 b`, want: "A", ok: true, rest: " b"},
	{name: "snowman", input: `\2603`, want: "☃", ok: true},
	{name: "null", input: `\0`, want: "\uFFFD", ok: true},
	{name: "beyond_unicode", input: `\110000`, want: "\uFFFD", ok: true},
	{name: "surrogate", input: `\d800`, want: "\uFFFD", ok: true},
	{name: "literal", input: `\;x`, want: ";", ok: true, rest: "x"},
	{name: "literal_ident", input: `\ x`, ident: true, want: " ", ok: true, rest: "x"},
	{name: "continuation", input: "\\\nx", want: "", ok: true, rest: "x"},
	{name: "continuation_crlf", input: "\\\r\nx", want: "", ok: true, rest: "x"},
	{name: "raw", input: ";x", want: ";", ok: true, rest: "x"},
	{name: "ident_letter", input: "ab", ident: true, want: "a", ok: true, rest: "b"},
	{name: "ident_dash", input: "-a", ident: true, want: "-", ok: true, rest: "a"},
	{name: "ident_non_ascii", input: "éa", ident: true, want: "é", ok: true, rest: "a"},
	{name: "ident_stop", input: ";x", ident: true, ok: false, rest: ";x"},
	{name: "ident_nbsp_stop", input: "\u00a0x", ident: true, ok: false, rest: "\u00a0x"},
	{name: "end", input: "", ok: false},
	{name: "latin1_representable", input: `\e9`, charset: "iso-8859-1", want: "é", ok: true},
	{name: "latin1_unrepresentable", input: `\2603`, charset: "iso-8859-1", want: "\uFFFD", ok: true},
}

func TestParseCharacter(t *testing.T) {
	for _, test := range parseCharacterTests {
		t.Run(test.name, func(t *testing.T) {
			var opts []Option
			if test.charset != "" {
				opts = append(opts, WithCharset(test.charset))
			}
			p := newTestParser(t, test.input, opts...)
			got, ok, err := p.parseCharacter(test.ident)
			if err != nil {
				t.Fatal(err)
			}
			if got != test.want || ok != test.ok {
				t.Errorf("parseCharacter = %q, %v; want %q, %v", got, ok, test.want, test.ok)
			}
			if rest := p.cur.peek(100, 0); rest != test.rest {
				t.Errorf("rest = %q, want %q", rest, test.rest)
			}
		})
	}
}

func TestParseNameEscapes(t *testing.T) {
	p := newTestParser(t, `my\2603\ x:`)
	got, err := p.parseName()
	if err != nil {
		t.Fatal(err)
	}
	if want := "my☃ x"; got != want {
		t.Errorf("parseName = %q, want %q", got, want)
	}
}
