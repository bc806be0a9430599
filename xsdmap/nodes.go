package xsdmap

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/CognitoIQ/odrgen/internal/ordered"
)

// A Value is a node of the translated schema. The concrete types are
// *Decl, *Base, *Sequence, Enumerator, *Field and *Attributes. Every
// Value encodes to JSON in the shape of the schema node mapping.
type Value interface {
	json.Marshaler
	node()
}

// A Map holds the children of a node, keyed by declaration key,
// element name, enumerator or one of the markers "base", "sequence"
// and "attributes".
type Map = ordered.Map[Value]

// NewMap returns an empty Map.
func NewMap() *Map { return ordered.New[Value]() }

// A Decl is a named complexType or simpleType.
type Decl struct {
	Name string
	Kind DeclKind
	Body *Map
}

// Key is the mapping key of the declaration.
func (d *Decl) Key() string { return DeclKey(d.Name) }

// IsClass reports whether the declaration becomes a class.
func (d *Decl) IsClass() bool { return d.Kind == Class }

// IsEnum reports whether the declaration becomes an enum class.
func (d *Decl) IsEnum() bool { return d.Kind == Enum }

// Base returns the derivation of the declaration, or nil.
func (d *Decl) Base() *Base {
	v, _ := d.Body.Get("base")
	b, _ := v.(*Base)
	return b
}

// BaseClass returns the base type when it is declared in a schema
// rather than builtin.
func (d *Decl) BaseClass() string {
	if b := d.Base(); b != nil && !builtin(b.Type) {
		return b.Type
	}
	return ""
}

// Alias returns the base type of a declaration that only narrows a
// builtin type and declares no members.
func (d *Decl) Alias() string {
	b := d.Base()
	if b == nil || !builtin(b.Type) || len(d.Members()) > 0 {
		return ""
	}
	return b.Type
}

// builtin reports whether a derivation base names an XML schema type,
// rewritten or not.
func builtin(base string) bool {
	return base == "string" || base == "double" || strings.HasPrefix(base, "xs:")
}

// Members returns the elements and attributes of the declaration,
// including those of its sequences and derivation, in document order.
func (d *Decl) Members() []*Field {
	return members(d.Body, nil)
}

func members(m *Map, fields []*Field) []*Field {
	m.Range(func(_ string, v Value) {
		switch v := v.(type) {
		case *Field:
			fields = append(fields, v)
		case *Sequence:
			fields = members(v.Body, fields)
		case *Base:
			fields = members(v.Body, fields)
		case *Attributes:
			v.Fields.Range(func(_ string, f *Field) { fields = append(fields, f) })
		}
	})
	return fields
}

// Enumerators returns the enumeration keys of the declaration,
// including those of its restriction, in document order.
func (d *Decl) Enumerators() []string {
	return enumerators(d.Body, nil)
}

func enumerators(m *Map, keys []string) []string {
	m.Range(func(k string, v Value) {
		switch v := v.(type) {
		case Enumerator:
			keys = append(keys, k)
		case *Base:
			keys = enumerators(v.Body, keys)
		}
	})
	return keys
}

func (d *Decl) MarshalJSON() ([]byte, error) { return d.Body.MarshalJSON() }

// A Base is the extension or restriction of a type, stored under the
// key "base".
type Base struct {
	Type string
	Body *Map
}

func (b *Base) MarshalJSON() ([]byte, error) {
	m := ordered.New[*Map]()
	m.Set(b.Type, b.Body)
	return m.MarshalJSON()
}

// A Sequence is stored under the key "sequence".
type Sequence struct {
	Body *Map
}

func (s *Sequence) MarshalJSON() ([]byte, error) { return s.Body.MarshalJSON() }

// An Enumerator is an enumeration member. Its key is the sanitized
// value; Value keeps the schema spelling.
type Enumerator struct {
	Value string
}

func (Enumerator) MarshalJSON() ([]byte, error) { return []byte(`""`), nil }

// A Field is an element or attribute declaration. Attrs holds every
// attribute of the declaration in document order, with the type
// already rewritten.
type Field struct {
	Name      string
	Attribute bool
	Attrs     *ordered.Map[string]
}

// Type returns the (rewritten) type of the field.
func (f *Field) Type() string {
	t, _ := f.Attrs.Get("type")
	return t
}

// Optional reports whether the field may be absent. Attributes are
// optional unless use="required".
func (f *Field) Optional() bool {
	if f.Attribute {
		use, _ := f.Attrs.Get("use")
		return use != "required"
	}
	lo, _ := f.Attrs.Get("minOccurs")
	return lo == "0"
}

// Repeated reports whether the field may occur more than once.
func (f *Field) Repeated() bool {
	hi, ok := f.Attrs.Get("maxOccurs")
	if !ok {
		return false
	}
	if hi == "unbounded" {
		return true
	}
	n, err := strconv.Atoi(hi)
	return err == nil && n > 1
}

func (f *Field) MarshalJSON() ([]byte, error) { return f.Attrs.MarshalJSON() }

// Attributes collects the attribute declarations of one level,
// stored under the key "attributes".
type Attributes struct {
	Fields *ordered.Map[*Field]
}

func (a *Attributes) MarshalJSON() ([]byte, error) { return a.Fields.MarshalJSON() }

func (*Decl) node()       {}
func (*Base) node()       {}
func (*Sequence) node()   {}
func (Enumerator) node()  {}
func (*Field) node()      {}
func (*Attributes) node() {}
