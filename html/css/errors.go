package css

import (
	"errors"
	"fmt"
)

// Parse error causes. A *ParseError unwraps to exactly one of these.
var (
	ErrUnexpectedToken        = errors.New("css: unexpected token")
	ErrUnexpectedEnd          = errors.New("css: unexpected end of input")
	ErrPatternNotFound        = errors.New("css: pattern not found")
	ErrMarkerNotFound         = errors.New("css: marker not found")
	ErrUnterminatedString     = errors.New("css: unterminated string")
	ErrUnmatchedClosingBrace  = errors.New("css: unmatched closing brace")
	ErrUnclosedBlock          = errors.New("css: unclosed block")
	ErrInvalidImportantMarker = errors.New("css: invalid !important marker")
	ErrInvalidIdentifier      = errors.New("css: invalid identifier")
)

// ErrUnknownCharset is returned when a charset name cannot be resolved
// to an encoding.
var ErrUnknownCharset = errors.New("css: unknown charset")

// Position is a 1-based line and column in the decoded source.
type Position struct {
	Line int
	Col  int
}

// ParseError reports the first grammar violation found in a document.
type ParseError struct {
	Err     error  // one of the Err* causes
	Msg     string // human-readable description
	Context string // the next few characters at the failure point
	Pos     Position
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("css: %d:%d: %s (near %q)", e.Pos.Line, e.Pos.Col, e.Msg, e.Context)
}

func (e *ParseError) Unwrap() error { return e.Err }

type charsetError string

func (e charsetError) Error() string {
	return fmt.Sprintf("css: charset not supported: %q", string(e))
}

func (e charsetError) Unwrap() error { return ErrUnknownCharset }
