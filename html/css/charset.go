package css

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// DefaultCharset is the charset a Parser decodes with unless told otherwise.
const DefaultCharset = "utf-8"

// charset is the active text encoding of a parse.
// It is written by SetCharset and @charset, and read by every
// character decoding step that follows.
type charset struct {
	name string
	enc  encoding.Encoding // nil means UTF-8
}

func lookupCharset(name string) (charset, error) {
	label := strings.ToLower(strings.TrimSpace(name))
	if label == "utf-8" || label == "utf8" {
		return charset{name: name}, nil
	}

	enc, err := ianaindex.MIME.Encoding(label)
	if err != nil || enc == nil {
		enc, err = ianaindex.IANA.Encoding(label)
	}
	if err != nil || enc == nil {
		enc, err = htmlindex.Get(label)
	}
	if err != nil || enc == nil {
		if label == "gb2312" {
			enc = simplifiedchinese.HZGB2312
		} else {
			return charset{}, charsetError(name)
		}
	}
	if enc == unicode.UTF8 {
		enc = nil
	}
	return charset{name: name, enc: enc}, nil
}

// decode appends the characters of src to text, and the byte offset
// (relative to base) each character starts at to offs.
func (cs charset) decode(text []rune, offs []int, src []byte, base int) ([]rune, []int) {
	if cs.enc == nil {
		for off := 0; off < len(src); {
			r, size := utf8.DecodeRune(src[off:])
			text = append(text, r)
			offs = append(offs, base+off)
			off += size
		}
		return text, offs
	}

	// Decode one character at a time so every character keeps
	// its source offset. A later charset switch resumes from there.
	dec := cs.enc.NewDecoder()
	var buf [4 * utf8.UTFMax]byte
	for off := 0; off < len(src); {
		n := 1
		for {
			end := off + n
			atEOF := end >= len(src)
			if atEOF {
				end = len(src)
			}
			nDst, nSrc, err := dec.Transform(buf[:], src[off:end], atEOF)
			if err == transform.ErrShortSrc && !atEOF {
				n++
				continue
			}
			if nSrc == 0 {
				text = append(text, utf8.RuneError)
				offs = append(offs, base+off)
				off++
				break
			}
			for out := buf[:nDst]; len(out) > 0; {
				r, size := utf8.DecodeRune(out)
				text = append(text, r)
				offs = append(offs, base+off)
				out = out[size:]
			}
			off += nSrc
			break
		}
	}
	return text, offs
}

// encodeRune returns the character code point r denotes in the charset.
// Code points the charset cannot represent become U+FFFD.
func (cs charset) encodeRune(r rune) string {
	if r == 0 || !utf8.ValidRune(r) {
		return string(utf8.RuneError)
	}
	if cs.enc == nil {
		return string(r)
	}
	b, err := cs.enc.NewEncoder().Bytes([]byte(string(r)))
	if err != nil {
		return string(utf8.RuneError)
	}
	s, err := cs.enc.NewDecoder().Bytes(b)
	if err != nil {
		return string(utf8.RuneError)
	}
	return string(s)
}
