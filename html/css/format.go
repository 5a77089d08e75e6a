package css

import (
	"io"
	"strconv"
)

func appendEscapedString(dst []byte, src string) []byte {
	for _, c := range src {
		switch c {
		case '\\':
			dst = append(dst, '\\', '\\')
		case '\n':
			dst = append(dst, `\a `...)
		case '"':
			dst = append(dst, '\\', '"')
		default:
			dst = appendRune(dst, c)
		}
	}
	return dst
}

func appendIdent(dst []byte, name string) []byte {
	for _, c := range name {
		if isIdentCodePoint(c) {
			dst = appendRune(dst, c)
			continue
		}
		dst = append(dst, '\\')
		dst = strconv.AppendInt(dst, int64(c), 16)
		dst = append(dst, ' ')
	}
	return dst
}

func appendRune(dst []byte, c rune) []byte {
	return append(dst, string(c)...)
}

func appendSize(dst []byte, s *Size) []byte {
	dst = strconv.AppendFloat(dst, s.Magnitude, 'f', -1, 64)
	return append(dst, s.Unit...)
}

// isHexColor reports whether c can be written as #rrggbb.
func isHexColor(c *Color) bool {
	if len(c.Channels) != 3 {
		return false
	}
	for i, key := range []string{"r", "g", "b"} {
		ch := c.Channels[i]
		if ch.Key != key || ch.Value == nil || ch.Value.Unit != UnitNone {
			return false
		}
		m := ch.Value.Magnitude
		if m < 0 || m > 255 || m != float64(int(m)) {
			return false
		}
	}
	return true
}

// AppendValue appends the CSS text of v to dst.
func AppendValue(dst []byte, v Value) []byte {
	switch v := v.(type) {
	case *Size:
		dst = appendSize(dst, v)
	case *Color:
		if isHexColor(v) {
			dst = append(dst, '#')
			for _, ch := range v.Channels {
				d := int(ch.Value.Magnitude)
				dst = append(dst, "0123456789abcdef"[d>>4], "0123456789abcdef"[d&0xf])
			}
			break
		}
		for _, ch := range v.Channels {
			dst = append(dst, ch.Key...)
		}
		dst = append(dst, '(')
		for i, ch := range v.Channels {
			if i > 0 {
				dst = append(dst, ',', ' ')
			}
			dst = appendSize(dst, ch.Value)
		}
		dst = append(dst, ')')
	case *URL:
		dst = append(dst, `url("`...)
		dst = appendEscapedString(dst, v.Location.Value)
		dst = append(dst, `")`...)
	case *String:
		dst = append(dst, '"')
		dst = appendEscapedString(dst, v.Value)
		dst = append(dst, '"')
	case *Ident:
		dst = appendIdent(dst, v.Name)
	case *Function:
		dst = appendIdent(dst, v.Name)
		dst = append(dst, '(')
		dst = AppendValueList(dst, v.Args)
		dst = append(dst, ')')
	case *Slashed:
		dst = AppendValue(dst, v.Left)
		dst = append(dst, '/')
		dst = AppendValue(dst, v.Right)
	}
	return dst
}

// AppendValueList appends comma-separated value groups to dst.
func AppendValueList(dst []byte, list ValueList) []byte {
	for i, group := range list {
		if i > 0 {
			dst = append(dst, ',', ' ')
		}
		for j, v := range group {
			if j > 0 {
				dst = append(dst, ' ')
			}
			dst = AppendValue(dst, v)
		}
	}
	return dst
}

// AppendRule appends a declaration, terminated by a semicolon, to dst.
func AppendRule(dst []byte, r *Rule) []byte {
	dst = appendIdent(dst, r.Property)
	dst = append(dst, ':', ' ')
	dst = AppendValueList(dst, r.Values)
	if r.Important {
		dst = append(dst, " !important"...)
	}
	dst = append(dst, ';')
	return dst
}

func appendRules(dst []byte, rules []*Rule) []byte {
	dst = append(dst, '{')
	for _, r := range rules {
		dst = append(dst, ' ')
		dst = AppendRule(dst, r)
	}
	if len(rules) > 0 {
		dst = append(dst, ' ')
	}
	return append(dst, '}')
}

// AppendItem appends the CSS text of a top-level item to dst.
// An @charset rule is always written as "utf-8".
func AppendItem(dst []byte, item Item) []byte {
	switch item := item.(type) {
	case *DeclarationBlock:
		dst = append(dst, item.Selector...)
		dst = append(dst, ' ')
		dst = appendRules(dst, item.Rules)
	case *AtRule:
		dst = append(dst, '@')
		dst = appendIdent(dst, item.Name)
		dst = append(dst, ' ')
		dst = appendRules(dst, item.Rules)
	case *MediaQuery:
		dst = append(dst, "@media "...)
		dst = append(dst, item.Query...)
		dst = append(dst, " {"...)
		for _, it := range item.Items {
			dst = append(dst, ' ')
			dst = AppendItem(dst, it)
		}
		dst = append(dst, " }"...)
	case *Import:
		dst = append(dst, "@import "...)
		dst = AppendValue(dst, item.Location)
		if item.Media != "" {
			dst = append(dst, ' ')
			dst = append(dst, item.Media...)
		}
		dst = append(dst, ';')
	case *Charset:
		// Output text is UTF-8 whatever the source was decoded with.
		dst = append(dst, `@charset "utf-8";`...)
	}
	return dst
}

// Format writes the document to w, one top-level item per line.
func Format(w io.Writer, d *Document) error {
	var buf []byte
	for _, item := range d.Items {
		buf = AppendItem(buf, item)
		buf = append(buf, '\n')
	}
	_, err := w.Write(buf)
	return err
}

func (d *Document) String() string {
	var buf []byte
	for i, item := range d.Items {
		if i > 0 {
			buf = append(buf, '\n')
		}
		buf = AppendItem(buf, item)
	}
	return string(buf)
}

func (r *Rule) String() string { return string(AppendRule(nil, r)) }

func (v *Size) String() string     { return string(AppendValue(nil, v)) }
func (v *Color) String() string    { return string(AppendValue(nil, v)) }
func (v *URL) String() string      { return string(AppendValue(nil, v)) }
func (v *String) String() string   { return string(AppendValue(nil, v)) }
func (v *Ident) String() string    { return string(AppendValue(nil, v)) }
func (v *Function) String() string { return string(AppendValue(nil, v)) }
func (v *Slashed) String() string  { return string(AppendValue(nil, v)) }
