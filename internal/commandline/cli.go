// Package commandline contains helper types for collecting
// command-line arguments.
package commandline

import (
	"fmt"
	"strings"

	"github.com/CognitoIQ/odrgen/xsdmap"
)

// ParseTypeRule parses a rule of the form "from -> to", mapping a
// schema type name to a C++ type.
func ParseTypeRule(s string) (xsdmap.TypeRule, error) {
	parts := strings.SplitN(s, "->", 2)
	if len(parts) != 2 {
		return xsdmap.TypeRule{}, fmt.Errorf("invalid type rule %q. must be \"from -> to\"", s)
	}
	from, to := strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])
	if from == "" || to == "" {
		return xsdmap.TypeRule{}, fmt.Errorf("invalid type rule %q: empty type name", s)
	}
	return xsdmap.TypeRule{From: from, To: to}, nil
}

// A TypeRuleList is used to collect multiple type rules from the
// command line, in the order provided. It implements pflag.Value.
type TypeRuleList []xsdmap.TypeRule

func (r *TypeRuleList) String() string {
	return strings.Join(r.Strings(), ",")
}

// Set adds a type rule to the TypeRuleList.
func (r *TypeRuleList) Set(s string) error {
	rule, err := ParseTypeRule(s)
	if err != nil {
		return err
	}
	*r = append(*r, rule)
	return nil
}

func (r *TypeRuleList) Type() string { return "rule" }

// Strings returns the rules in "from -> to" form.
func (r *TypeRuleList) Strings() []string {
	s := make([]string, 0, len(*r))
	for _, item := range *r {
		s = append(s, item.From+" -> "+item.To)
	}
	return s
}
