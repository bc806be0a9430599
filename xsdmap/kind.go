package xsdmap

import "strings"

// A Kind is the role a schema element plays in the translation.
type Kind int

const (
	// KindWrapper elements (annotations, choices, the schema root)
	// are flattened into their parent.
	KindWrapper Kind = iota
	KindTypeDecl
	KindDerivation
	KindSequence
	KindEnumeration
	KindElement
	KindAttribute
)

var kindNames = [...]string{
	KindWrapper:     "wrapper",
	KindTypeDecl:    "type",
	KindDerivation:  "derivation",
	KindSequence:    "sequence",
	KindEnumeration: "enumeration",
	KindElement:     "element",
	KindAttribute:   "attribute",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Classify returns the Kind of an element from its tag. Tags are
// matched by substring, so namespace-qualified tags of any form are
// recognized. The first matching rule wins; "attributeGroup" is an
// attribute, and "complexContent" is a wrapper.
func Classify(tag string) Kind {
	switch {
	case strings.Contains(tag, "complexType"), strings.Contains(tag, "simpleType"):
		return KindTypeDecl
	case strings.Contains(tag, "extension"), strings.Contains(tag, "restriction"):
		return KindDerivation
	case strings.Contains(tag, "sequence"):
		return KindSequence
	case strings.Contains(tag, "enumeration"):
		return KindEnumeration
	case strings.Contains(tag, "element"):
		return KindElement
	case strings.Contains(tag, "attribute"):
		return KindAttribute
	}
	return KindWrapper
}
