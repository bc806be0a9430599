package hppgen

import (
	"strings"
	"text/template"
	"unicode"

	"github.com/CognitoIQ/odrgen/xsdmap"
)

var funcs = template.FuncMap{
	"ident":      Ident,
	"memberType": MemberType,
}

// funcs returns the template functions, with aliasType bound to the
// configured type rules.
func (cfg *Config) funcs() template.FuncMap {
	m := template.FuncMap{
		"aliasType": func(base string) string { return AliasType(base, cfg.typeRules...) },
	}
	for k, v := range funcs {
		m[k] = v
	}
	return m
}

// AliasType returns the C++ type a builtin derivation base stands for,
// or "" if no rule covers it.
func AliasType(base string, rules ...xsdmap.TypeRule) string {
	if base == "string" {
		return "std::string"
	}
	t := xsdmap.LeafType(base, rules...)
	if strings.HasPrefix(t, "xs:") {
		return ""
	}
	return t
}

// Ident turns s into a C++ identifier. Characters that may not appear
// in an identifier become underscores, a leading digit is prefixed
// with an underscore and reserved words get a trailing underscore.
func Ident(s string) string {
	if s == "" {
		return "_"
	}
	var b strings.Builder
	for i, r := range s {
		switch {
		case r == '_', unicode.IsLetter(r) && r < unicode.MaxASCII:
			b.WriteRune(r)
		case unicode.IsDigit(r) && r < unicode.MaxASCII:
			if i == 0 {
				b.WriteByte('_')
			}
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return sanitize(b.String())
}

func sanitize(name string) string {
	switch name {
	case "auto", "bool", "break", "case", "char", "class", "const",
		"continue", "default", "delete", "do", "double", "else", "enum",
		"explicit", "false", "float", "for", "friend", "goto", "if",
		"inline", "int", "long", "namespace", "new", "operator", "private",
		"protected", "public", "register", "return", "short", "signed",
		"sizeof", "static", "struct", "switch", "template", "this", "throw",
		"true", "try", "typedef", "typename", "union", "unsigned", "using",
		"virtual", "void", "volatile", "while":
		return name + "_"
	}
	return name
}

// MemberType returns the C++ type of a member: repeated members are
// vectors, optional ones optionals. Untyped members yield "".
func MemberType(f *xsdmap.Field) string {
	t := f.Type()
	switch {
	case t == "":
		return ""
	case f.Repeated():
		return "std::vector<" + t + ">"
	case f.Optional():
		return "std::optional<" + t + ">"
	}
	return t
}
