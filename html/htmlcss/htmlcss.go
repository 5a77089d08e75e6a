// Package htmlcss extracts and parses the CSS embedded in an HTML document:
// the contents of <style> elements and the declarations of style attributes.
package htmlcss

import (
	"fmt"
	"io"

	"golang.org/x/net/html"
	a "golang.org/x/net/html/atom"
	"spilled.ink/cssparser/html/css"
)

// Options configures Extract. A nil *Options uses the defaults.
type Options struct {
	// Charset is the charset <style> contents are decoded with,
	// "" means css.DefaultCharset. Style attributes are always UTF-8,
	// since the tokenizer has already decoded their entities.
	Charset string

	// MaxBuf is the maximum number of input bytes buffered,
	// 0 means unlimited.
	MaxBuf int

	// AllowedStyles, when non-nil, lists the properties kept.
	// Other declarations are removed from sheets and attributes.
	AllowedStyles map[string]bool

	Logf func(format string, v ...interface{})
}

// Sheet is the style sheet of a <style> element.
type Sheet struct {
	Media string // the media attribute, "" if absent
	Doc   *css.Document
}

// Inline is the parsed style attribute of an element.
type Inline struct {
	Tag   a.Atom
	ID    string
	Rules []*css.Rule
}

// Styles is the CSS found in an HTML document, in document order.
type Styles struct {
	Sheets []*Sheet
	Inline []*Inline
}

// Extract reads an HTML document from r and parses its CSS.
// The first CSS syntax error is returned, wrapping a *css.ParseError.
func Extract(r io.Reader, opts *Options) (*Styles, error) {
	if opts == nil {
		opts = &Options{}
	}
	var cssOpts []css.Option
	if opts.Logf != nil {
		cssOpts = append(cssOpts, css.WithLogf(opts.Logf))
	}
	attrOpts := append(cssOpts[:len(cssOpts):len(cssOpts)], css.WithCharset(css.DefaultCharset))
	if opts.Charset != "" {
		cssOpts = append(cssOpts, css.WithCharset(opts.Charset))
	}

	s := &Styles{}
	var sheet *Sheet // open <style> element

	z := html.NewTokenizer(r)
	z.SetMaxBuf(opts.MaxBuf)
	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			break
		}

		switch tt {
		case html.StartTagToken, html.SelfClosingTagToken:
			t := z.Token()
			if t.DataAtom == a.Style && tt == html.StartTagToken {
				sheet = &Sheet{Media: attrVal(t, a.Media)}
				s.Sheets = append(s.Sheets, sheet)
				continue
			}
			for _, attr := range t.Attr {
				if attr.Namespace != "" || a.Lookup([]byte(attr.Key)) != a.Style {
					continue
				}
				rules, err := parseStyleAttr(attr.Val, attrOpts)
				if err != nil {
					return nil, fmt.Errorf("htmlcss: <%s> style attribute: %w", t.Data, err)
				}
				in := &Inline{Tag: t.DataAtom, ID: attrVal(t, a.Id), Rules: rules}
				if opts.AllowedStyles != nil {
					in.Rules = filterRules(in.Rules, opts.AllowedStyles)
				}
				s.Inline = append(s.Inline, in)
			}
		case html.TextToken:
			if sheet == nil {
				continue
			}
			doc, err := css.Parse(z.Text(), cssOpts...)
			if err != nil {
				return nil, fmt.Errorf("htmlcss: <style> %d: %w", len(s.Sheets), err)
			}
			if opts.AllowedStyles != nil {
				for _, rs := range css.AllRuleSets(doc) {
					for _, r := range css.RulesWithPrefix(rs, "") {
						if !opts.AllowedStyles[r.Property] {
							css.RemoveRule(rs, r)
						}
					}
				}
			}
			sheet.Doc = doc
		case html.EndTagToken:
			if sheet != nil && z.Token().DataAtom == a.Style {
				sheet = nil
			}
		}
	}
	if err := z.Err(); err != io.EOF {
		return nil, fmt.Errorf("htmlcss: %w", err)
	}

	for _, sh := range s.Sheets {
		if sh.Doc == nil {
			sh.Doc = &css.Document{}
		}
	}
	return s, nil
}

func parseStyleAttr(val string, opts []css.Option) ([]*css.Rule, error) {
	p, err := css.NewParser([]byte(val), opts...)
	if err != nil {
		return nil, err
	}
	return p.ParseDeclarations()
}

func filterRules(rules []*css.Rule, allowed map[string]bool) []*css.Rule {
	var res []*css.Rule
	for _, r := range rules {
		if allowed[r.Property] {
			res = append(res, r)
		}
	}
	return res
}

func attrVal(t html.Token, key a.Atom) string {
	for _, attr := range t.Attr {
		if attr.Namespace == "" && a.Lookup([]byte(attr.Key)) == key {
			return attr.Val
		}
	}
	return ""
}

// urls returns every url() and @import location, in document order.
func (s *Styles) urls() []*css.URL {
	var res []*css.URL
	collect := func(n css.Node) {
		for _, v := range css.AllValues(n) {
			if u, ok := v.(*css.URL); ok {
				res = append(res, u)
			}
		}
	}
	for _, sh := range s.Sheets {
		collect(sh.Doc)
	}
	for _, in := range s.Inline {
		for _, r := range in.Rules {
			collect(r)
		}
	}
	return res
}

// URLs returns the distinct locations referenced by url() values and
// @import statements, sheets first, in document order.
func (s *Styles) URLs() []string {
	var res []string
	seen := make(map[string]bool)
	for _, u := range s.urls() {
		loc := u.Location.Value
		if seen[loc] {
			continue
		}
		seen[loc] = true
		res = append(res, loc)
	}
	return res
}

// RewriteURLs replaces every referenced location with fn(location).
func (s *Styles) RewriteURLs(fn func(loc string) string) {
	for _, u := range s.urls() {
		u.Location.Value = fn(u.Location.Value)
	}
}

// StyleAttr formats rules as a style attribute value, escaped for
// use between double quotes.
func StyleAttr(rules []*css.Rule) string {
	var buf []byte
	for i, r := range rules {
		if i > 0 {
			buf = append(buf, ' ')
		}
		buf = css.AppendRule(buf, r)
	}
	return html.EscapeString(string(buf))
}
