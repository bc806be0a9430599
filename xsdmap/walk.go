package xsdmap

import (
	"errors"
	"fmt"
	"strings"

	"github.com/CognitoIQ/odrgen/xmltree"
)

// ErrMissingAttribute is returned, wrapped, when a schema element
// lacks an attribute the translation needs.
var ErrMissingAttribute = errors.New("missing attribute")

// When working with an xml tree structure, we naturally have some
// pretty deep function calls. To save some typing, we use panic/recover
// to bubble the errors up. These panics are not exposed to the user.
type parseError struct {
	err  error
	path []*xmltree.Element
}

func (err parseError) Error() string {
	breadcrumbs := make([]string, 0, len(err.path))
	for i := len(err.path) - 1; i >= 0; i-- {
		piece := err.path[i].Name.Local
		if name := err.path[i].Attr("", "name"); name != "" {
			piece = fmt.Sprintf("%s(%s)", piece, name)
		}
		breadcrumbs = append(breadcrumbs, piece)
	}
	return "Error at " + strings.Join(breadcrumbs, ">") + ": " + err.err.Error()
}

func (err parseError) Unwrap() error { return err.err }

// stop aborts the translation at el.
func stop(el *xmltree.Element, err error) {
	panic(parseError{err: err, path: []*xmltree.Element{el}})
}

// mustAttr returns the value of attribute key on el, stopping the translation
// if it is absent.
func mustAttr(el *xmltree.Element, key string) string {
	for _, a := range el.Attrs() {
		if a.Key == key {
			return a.Value
		}
	}
	stop(el, fmt.Errorf("%w %q", ErrMissingAttribute, key))
	return ""
}

// walk calls fn for each child of root, adding root to the path of
// any parseError raised below it.
func walk(root *xmltree.Element, fn func(*xmltree.Element)) {
	defer func() {
		if r := recover(); r != nil {
			if err, ok := r.(parseError); ok {
				err.path = append(err.path, root)
				panic(err)
			} else {
				panic(r)
			}
		}
	}()
	for i := 0; i < len(root.Children); i++ {
		fn(&root.Children[i])
	}
}

// defer catchParseError(&err)
func catchParseError(err *error) {
	if r := recover(); r != nil {
		pe, ok := r.(parseError)
		if !ok {
			panic(r)
		}
		*err = pe
	}
}
