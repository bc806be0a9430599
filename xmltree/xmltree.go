// Package xmltree converts XML documents to a tree of Go structs.
//
// The xmltree package gives the schema translator the same view of a
// document that an ElementTree-style DOM does: each element carries a
// tag of the form {namespace}local and an ordered set of attributes,
// with namespace declarations left out.
package xmltree // import "github.com/CognitoIQ/odrgen/xmltree"

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"

	"golang.org/x/net/html/charset"
)

const recursionLimit = 3000

var errDeepXML = errors.New("xmltree: xml document too deeply nested")

// An Element represents a single element in an XML document. Elements
// may have zero or more children.
type Element struct {
	xml.StartElement
	Children []Element
}

// Tag returns the element name in {namespace}local form. Elements
// without a namespace return their local name.
func (el *Element) Tag() string {
	return qualify(el.Name)
}

// Attr gets the value of the first attribute whose name matches the
// space and local arguments. If space is the empty string, only
// attributes' local names are considered when looking for a match.
// If an attribute could not be found, the empty string is returned.
func (el *Element) Attr(space, local string) string {
	v, _ := el.LookupAttr(space, local)
	return v
}

// LookupAttr is like Attr, but reports whether the attribute was
// present. An attribute with an empty value is still present.
func (el *Element) LookupAttr(space, local string) (string, bool) {
	for _, v := range el.StartElement.Attr {
		if isNamespaceDecl(v.Name) || v.Name.Local != local {
			continue
		}
		if space == "" || space == v.Name.Space {
			return v.Value, true
		}
	}
	return "", false
}

// An Attribute is a single attribute of an element, keyed the same
// way as element tags.
type Attribute struct {
	Key   string
	Value string
}

// Attrs returns the element's attributes in document order. Namespace
// declarations (xmlns and xmlns:prefix) are not attributes and are
// omitted.
func (el *Element) Attrs() []Attribute {
	attrs := make([]Attribute, 0, len(el.StartElement.Attr))
	for _, a := range el.StartElement.Attr {
		if isNamespaceDecl(a.Name) {
			continue
		}
		attrs = append(attrs, Attribute{Key: qualify(a.Name), Value: a.Value})
	}
	return attrs
}

func isNamespaceDecl(name xml.Name) bool {
	return name.Space == "xmlns" || (name.Space == "" && name.Local == "xmlns")
}

func qualify(name xml.Name) string {
	if name.Space == "" {
		return name.Local
	}
	return "{" + name.Space + "}" + name.Local
}

// Save some typing when scanning xml
type scanner struct {
	*xml.Decoder
	tok xml.Token
	err error
}

func (s *scanner) scan() bool {
	if s.err != nil {
		return false
	}
	s.tok, s.err = s.Token()
	return s.err == nil
}

// Parse builds a tree of Elements by reading an XML document. The
// byte slice passed to Parse is expected to be a valid XML document
// with a single root element. Documents declaring an encoding other
// than UTF-8 are decoded before parsing.
func Parse(doc []byte) (*Element, error) {
	d := xml.NewDecoder(bytes.NewReader(doc))
	d.CharsetReader = charset.NewReaderLabel
	scanner := scanner{Decoder: d}
	root := new(Element)

	for scanner.scan() {
		if start, ok := scanner.tok.(xml.StartElement); ok {
			root.StartElement = start.Copy()
			break
		}
	}
	if scanner.err != nil {
		return nil, fmt.Errorf("xmltree: %w", scanner.err)
	}
	if err := root.parse(&scanner, 0); err != nil {
		return nil, err
	}
	if err := trailing(&scanner); err != nil {
		return nil, err
	}
	return root, nil
}

func (el *Element) parse(scanner *scanner, depth int) error {
	if depth > recursionLimit {
		return errDeepXML
	}
	for scanner.scan() {
		switch tok := scanner.tok.(type) {
		case xml.StartElement:
			child := Element{StartElement: tok.Copy()}
			if err := child.parse(scanner, depth+1); err != nil {
				return err
			}
			el.Children = append(el.Children, child)
		case xml.EndElement:
			// the decoder rejects mismatched end tags itself
			return nil
		}
	}
	return fmt.Errorf("xmltree: %w", scanner.err)
}

// trailing rejects a second root element after the first one closes.
func trailing(scanner *scanner) error {
	for scanner.scan() {
		if start, ok := scanner.tok.(xml.StartElement); ok {
			return fmt.Errorf("xmltree: unexpected element <%s> after document root", start.Name.Local)
		}
	}
	if errors.Is(scanner.err, io.EOF) {
		return nil
	}
	return fmt.Errorf("xmltree: %w", scanner.err)
}
