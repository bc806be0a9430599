package xsdmap

import "strings"

// Declaration key prefixes.
const (
	ClassPrefix = "class "
	EnumPrefix  = "enum class "
)

// A DeclKind says how a named type declaration is emitted.
type DeclKind int

const (
	// Plain declarations keep their schema name as key.
	Plain DeclKind = iota
	// Class declarations come from names starting with t_.
	Class
	// Enum declarations come from names starting with e_.
	Enum
)

func (k DeclKind) String() string {
	switch k {
	case Class:
		return "class"
	case Enum:
		return "enum"
	}
	return "plain"
}

// KindOf classifies a declared type name by its prefix.
func KindOf(name string) DeclKind {
	switch {
	case strings.HasPrefix(name, "t_"):
		return Class
	case strings.HasPrefix(name, "e_"):
		return Enum
	}
	return Plain
}

// DeclKey returns the mapping key for a declared type name.
func DeclKey(name string) string {
	switch KindOf(name) {
	case Class:
		return ClassPrefix + name
	case Enum:
		return EnumPrefix + name
	}
	return name
}

// BaseType rewrites the base of an extension or restriction. Only
// xs:string and xs:double are rewritten; this table is deliberately
// narrower than the one LeafType uses.
func BaseType(base string) string {
	switch base {
	case "xs:string":
		return "string"
	case "xs:double":
		return "double"
	}
	return base
}

// A TypeRule maps a schema type name to a C++ type name. Rules
// match the whole type name.
type TypeRule struct {
	From, To string
}

// LeafRules is the built-in table used to rewrite the type of element
// and attribute declarations.
var LeafRules = []TypeRule{
	{"xs:string", "std::string"},
	{"xs:double", "double"},
	{"xs:integer", "int"},
	{"xs:float", "float"},
	{"t_grEqZero", "double"},
	{"t_grZero", "double"},
}

// LeafType rewrites an element or attribute type through LeafRules,
// then through extra. Types matching no rule pass through.
func LeafType(typ string, extra ...TypeRule) string {
	for _, r := range LeafRules {
		if r.From == typ {
			return r.To
		}
	}
	for _, r := range extra {
		if r.From == typ {
			return r.To
		}
	}
	return typ
}

// Sanitize turns an enumeration value into an identifier: slashes
// are dropped and spaces become underscores.
func Sanitize(value string) string {
	value = strings.ReplaceAll(value, "/", "")
	return strings.ReplaceAll(value, " ", "_")
}
