/*
Package css implements a CSS parser producing a document tree.

The parser reads characters directly, without a separate tokenizer,
and builds a *Document of declaration blocks and at-rules whose
declarations hold typed values: sizes, colors, URLs, strings,
identifiers, functions, and slash-joined pairs.

It does not check that properties or values are valid CSS and does
not recover from errors. The first syntax error ends parsing and is
reported as a *ParseError, which unwraps to one of the Err* causes:

	doc, err := css.ParseString(`a { color: #abc !important }`)
	if errors.Is(err, css.ErrUnclosedBlock) {
		// ...
	}

# Charsets

Source bytes are decoded with the charset given by WithCharset,
UTF-8 by default. An @charset rule switches the charset for
everything after it, and escaped code points (\e9) are mapped
through the active charset:

	p, err := css.NewParser(src, css.WithCharset("iso-8859-1"))
	if err != nil {
		log.Fatal(err)
	}
	doc, err := p.Parse()

Selectors and media queries are kept as raw text.

# Style attributes

An HTML style attribute is a declaration list without braces:

	p, err := css.NewParser([]byte(`color: red; margin: 0 auto`))
	if err != nil {
		log.Fatal(err)
	}
	rules, err := p.ParseDeclarations()

*/
package css
