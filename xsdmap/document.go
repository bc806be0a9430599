package xsdmap

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/CognitoIQ/odrgen/xmltree"
)

// A Document is the translation of one schema file. It is the
// context header templates are rendered with.
type Document struct {
	Name string `json:"name"`
	Data *Map   `json:"data"`
}

// Decls returns the top-level type declarations in document order.
func (d *Document) Decls() []*Decl {
	var decls []*Decl
	d.Data.Range(func(_ string, v Value) {
		if decl, ok := v.(*Decl); ok {
			decls = append(decls, decl)
		}
	})
	return decls
}

// Parse translates the schema document src into a Document called
// name.
func (t *Translator) Parse(name string, src []byte) (*Document, error) {
	root, err := xmltree.Parse(src)
	if err != nil {
		return nil, err
	}
	data, err := t.Translate(root)
	if err != nil {
		return nil, err
	}
	return &Document{Name: name, Data: data}, nil
}

// ParseFile is like Parse, reading the schema from filename.
func (t *Translator) ParseFile(name, filename string) (*Document, error) {
	src, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	doc, err := t.Parse(name, src)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return doc, nil
}

// WriteJSON writes the document as JSON indented by four spaces, with
// non-ASCII characters escaped and no final newline. Output is
// deterministic for a given schema.
func (d *Document) WriteJSON(w io.Writer) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(d); err != nil {
		return err
	}
	_, err := w.Write(asciiJSON(bytes.TrimSuffix(buf.Bytes(), []byte("\n"))))
	return err
}

// asciiJSON replaces every non-ASCII character of the encoded JSON
// with \uXXXX escapes, using surrogate pairs outside the BMP. Such
// characters only occur inside strings.
func asciiJSON(b []byte) []byte {
	out := make([]byte, 0, len(b))
	for len(b) > 0 {
		r, size := utf8.DecodeRune(b)
		b = b[size:]
		if r < utf8.RuneSelf {
			out = append(out, byte(r))
			continue
		}
		if r1, r2 := utf16.EncodeRune(r); r1 != utf8.RuneError {
			out = appendEscape(out, r1)
			r = r2
		}
		out = appendEscape(out, r)
	}
	return out
}

func appendEscape(b []byte, r rune) []byte {
	s := strconv.FormatInt(int64(r), 16)
	b = append(b, `\u`...)
	for i := len(s); i < 4; i++ {
		b = append(b, '0')
	}
	return append(b, s...)
}
