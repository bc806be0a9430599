// Package xsdmap translates XML schema documents into an ordered tree
// of type, element and attribute declarations.
//
// The translation walks the schema element tree and classifies each
// element by its tag (see Classify). Named complexType and simpleType
// declarations become *Decl nodes keyed by DeclKey, derivations become
// a *Base under "base", sequences a *Sequence under "sequence",
// enumeration facets Enumerator nodes, and element and attribute
// declarations *Field nodes. Any other element is transparent: its
// children are translated as if they belonged to its parent.
//
// The resulting tree encodes to JSON as the nested mapping consumed by
// header templates.
package xsdmap

import (
	"github.com/CognitoIQ/odrgen/internal/ordered"
	"github.com/CognitoIQ/odrgen/xmltree"
)

// A Translator converts schema element trees to Maps. The zero value
// uses only the built-in type rules.
type Translator struct {
	// Extra rules for element and attribute types, consulted when
	// LeafRules has no match. Derivation bases never use them.
	TypeRules []TypeRule
}

// Translate translates root with the built-in type rules.
func Translate(root *xmltree.Element) (*Map, error) {
	var t Translator
	return t.Translate(root)
}

// Translate returns a fresh Map describing the children of root. A
// declaration or field without a name, a field with several attributes
// but no type, a derivation without a base and an enumeration without
// a value are errors wrapping ErrMissingAttribute.
func (t *Translator) Translate(root *xmltree.Element) (m *Map, err error) {
	defer catchParseError(&err)
	m = NewMap()
	t.children(root, m)
	return m, nil
}

func (t *Translator) children(parent *xmltree.Element, data *Map) *Map {
	attrs := ordered.New[*Field]()
	walk(parent, func(el *xmltree.Element) {
		switch Classify(el.Tag()) {
		case KindTypeDecl:
			name := mustAttr(el, "name")
			body := t.children(el, NewMap())
			data.Set(DeclKey(name), &Decl{Name: name, Kind: KindOf(name), Body: body})
		case KindDerivation:
			base := BaseType(mustAttr(el, "base"))
			data.Set("base", &Base{Type: base, Body: t.children(el, NewMap())})
		case KindSequence:
			data.Set("sequence", &Sequence{Body: t.children(el, NewMap())})
		case KindEnumeration:
			value := mustAttr(el, "value")
			data.Set(Sanitize(value), Enumerator{Value: value})
		case KindElement:
			f := t.field(el, false)
			data.Set(f.Name, f)
		case KindAttribute:
			f := t.field(el, true)
			attrs.Set(f.Name, f)
		default:
			t.children(el, data)
		}
	})
	if attrs.Len() != 0 {
		data.Set("attributes", &Attributes{Fields: attrs})
	}
	return data
}

// field copies the attributes of an element or attribute declaration.
// The type is rewritten only when the declaration carries more than
// one attribute, and such a declaration must have one.
func (t *Translator) field(el *xmltree.Element, attribute bool) *Field {
	list := el.Attrs()
	name := mustAttr(el, "name")
	if len(list) > 1 {
		mustAttr(el, "type")
	}
	attrs := ordered.New[string]()
	for _, a := range list {
		v := a.Value
		if a.Key == "type" && len(list) > 1 {
			v = LeafType(v, t.TypeRules...)
		}
		attrs.Set(a.Key, v)
	}
	return &Field{Name: name, Attribute: attribute, Attrs: attrs}
}
