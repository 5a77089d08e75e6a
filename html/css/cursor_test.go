package css

import (
	"errors"
	"testing"
)

func newTestCursor(t *testing.T, src, charsetName string) *cursor {
	t.Helper()
	cs, err := lookupCharset(charsetName)
	if err != nil {
		t.Fatal(err)
	}
	return newCursor([]byte(src), cs)
}

func TestCursor(t *testing.T) {
	c := newTestCursor(t, "color: red; /* note */ x", "utf-8")

	if !c.comes("color") {
		t.Fatal(`comes("color") = false`)
	}
	if got := c.peek(3, 2); got != "lor" {
		t.Errorf("peek(3, 2) = %q, want %q", got, "lor")
	}
	if _, err := c.consume("colour"); !errors.Is(err, ErrUnexpectedToken) {
		t.Errorf(`consume("colour") err = %v, want ErrUnexpectedToken`, err)
	}
	if got, err := c.consume("color"); err != nil || got != "color" {
		t.Fatalf(`consume("color") = %q, %v`, got, err)
	}
	if got, err := c.consumeN(1); err != nil || got != ":" {
		t.Fatalf("consumeN(1) = %q, %v", got, err)
	}
	if err := c.consumeWhitespace(); err != nil {
		t.Fatal(err)
	}
	if got, err := c.consumeRun(isLetter, 0, "letters"); err != nil || got != "red" {
		t.Fatalf("consumeRun(isLetter) = %q, %v", got, err)
	}
	if _, err := c.consumeRun(isDigit, 0, "digits"); !errors.Is(err, ErrPatternNotFound) {
		t.Errorf("consumeRun(isDigit) err = %v, want ErrPatternNotFound", err)
	}
	if got, err := c.consumeUntil(";"); err != nil || got != "" {
		t.Fatalf(`consumeUntil(";") = %q, %v`, got, err)
	}
	if _, err := c.consumeUntil("}"); !errors.Is(err, ErrMarkerNotFound) {
		t.Errorf(`consumeUntil("}") err = %v, want ErrMarkerNotFound`, err)
	}
	c.pos++
	if err := c.consumeWhitespace(); err != nil {
		t.Fatal(err)
	}
	if _, err := c.consumeN(2); !errors.Is(err, ErrUnexpectedEnd) {
		t.Errorf("consumeN(2) err = %v, want ErrUnexpectedEnd", err)
	}
	if got, err := c.consumeN(1); err != nil || got != "x" {
		t.Fatalf("consumeN(1) = %q, %v", got, err)
	}
	if !c.isEnd() {
		t.Error("isEnd() = false at end of input")
	}
	if got := c.peek(1, 0); got != "" {
		t.Errorf("peek at end = %q, want empty", got)
	}
	if c.comes("") {
		t.Error(`comes("") = true at end of input`)
	}
}

func TestCursorConsumeRunMax(t *testing.T) {
	c := newTestCursor(t, "0123456789", "utf-8")
	got, err := c.consumeRun(isHex, 6, "hex digits")
	if err != nil {
		t.Fatal(err)
	}
	if got != "012345" {
		t.Errorf("consumeRun = %q, want %q", got, "012345")
	}
	if rest := c.peek(10, 0); rest != "6789" {
		t.Errorf("rest = %q, want %q", rest, "6789")
	}
}

func TestCursorCharacterUnits(t *testing.T) {
	c := newTestCursor(t, "héllo", "utf-8")
	if got, err := c.consumeN(2); err != nil || got != "hé" {
		t.Fatalf("consumeN(2) = %q, %v", got, err)
	}
	if got := c.peek(3, 0); got != "llo" {
		t.Errorf("peek(3, 0) = %q, want %q", got, "llo")
	}
}

func TestCursorUnterminatedComment(t *testing.T) {
	c := newTestCursor(t, "  /* open", "utf-8")
	if err := c.consumeWhitespace(); !errors.Is(err, ErrMarkerNotFound) {
		t.Errorf("consumeWhitespace err = %v, want ErrMarkerNotFound", err)
	}
}

func TestCursorPosition(t *testing.T) {
	c := newTestCursor(t, "a {\n  b", "utf-8")
	c.pos = 6
	if got, want := c.position(), (Position{Line: 2, Col: 3}); got != want {
		t.Errorf("position() = %+v, want %+v", got, want)
	}
	err := c.errorf(ErrUnexpectedToken, "oops")
	if err.Context != "b" {
		t.Errorf("error context = %q, want %q", err.Context, "b")
	}
	if err.Pos != (Position{Line: 2, Col: 3}) {
		t.Errorf("error pos = %+v", err.Pos)
	}
}

func TestCursorSetCharset(t *testing.T) {
	c := newTestCursor(t, "a\xe9b\xe9", "utf-8")
	if got := c.peek(4, 0); got != "a\uFFFDb\uFFFD" {
		t.Fatalf("utf-8 peek = %q", got)
	}
	c.pos = 2

	latin1, err := lookupCharset("iso-8859-1")
	if err != nil {
		t.Fatal(err)
	}
	c.setCharset(latin1)

	// Consumed characters keep their decoding.
	if got := string(c.text[:2]); got != "a\uFFFD" {
		t.Errorf("consumed text = %q", got)
	}
	if got := c.peek(2, 0); got != "bé" {
		t.Errorf("peek after switch = %q, want %q", got, "bé")
	}
}

func TestCursorSetCharsetMultibyte(t *testing.T) {
	latin1, err := lookupCharset("iso-8859-1")
	if err != nil {
		t.Fatal(err)
	}
	// "é" in UTF-8 is two bytes, two characters in latin1.
	c := newCursor([]byte("xé"), latin1)
	if len(c.text) != 3 {
		t.Fatalf("latin1 length = %d, want 3", len(c.text))
	}
	c.pos = 1
	utf8cs, err := lookupCharset("UTF-8")
	if err != nil {
		t.Fatal(err)
	}
	c.setCharset(utf8cs)
	if got := c.peek(5, 0); got != "é" {
		t.Errorf("peek after switch to utf-8 = %q, want %q", got, "é")
	}
}

func TestLookupCharset(t *testing.T) {
	for _, name := range []string{"utf-8", "UTF8", "iso-8859-1", "latin1", "windows-1252", "shift_jis", "gb2312"} {
		if _, err := lookupCharset(name); err != nil {
			t.Errorf("lookupCharset(%q): %v", name, err)
		}
	}
	_, err := lookupCharset("no-such-charset")
	if !errors.Is(err, ErrUnknownCharset) {
		t.Errorf("lookupCharset(unknown) err = %v, want ErrUnknownCharset", err)
	}
}
