package xmltree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var laneSchema = []byte(`<?xml version="1.0" encoding="UTF-8"?>
<xs:schema xmlns:xs="http://www.w3.org/2001/XMLSchema" elementFormDefault="qualified">
  <xs:complexType name="t_road_lanes_laneSection">
    <xs:annotation><xs:documentation>lane section</xs:documentation></xs:annotation>
    <xs:sequence>
      <xs:element name="left" type="t_road_lanes_laneSection_left" minOccurs="0"/>
    </xs:sequence>
    <xs:attribute name="s" type="t_grEqZero" use="required"/>
  </xs:complexType>
</xs:schema>`)

func parseDoc(t *testing.T, document []byte) *Element {
	root, err := Parse(document)
	require.NoError(t, err)
	return root
}

func TestParse(t *testing.T) {
	root := parseDoc(t, laneSchema)

	assert.Equal(t, "{http://www.w3.org/2001/XMLSchema}schema", root.Tag())
	require.Len(t, root.Children, 1)

	ct := root.Children[0]
	assert.Equal(t, "{http://www.w3.org/2001/XMLSchema}complexType", ct.Tag())
	assert.Equal(t, "t_road_lanes_laneSection", ct.Attr("", "name"))
	require.Len(t, ct.Children, 3)
	assert.Equal(t, "annotation", ct.Children[0].Name.Local)
	assert.Equal(t, "sequence", ct.Children[1].Name.Local)
	assert.Equal(t, "attribute", ct.Children[2].Name.Local)
}

func TestAttrsSkipNamespaceDeclarations(t *testing.T) {
	root := parseDoc(t, laneSchema)
	assert.Equal(t, []Attribute{{Key: "elementFormDefault", Value: "qualified"}}, root.Attrs())

	attr := root.Children[0].Children[2]
	assert.Equal(t, []Attribute{
		{Key: "name", Value: "s"},
		{Key: "type", Value: "t_grEqZero"},
		{Key: "use", Value: "required"},
	}, attr.Attrs())
}

func TestAttrsQualifiedNames(t *testing.T) {
	root := parseDoc(t, []byte(`<a xmlns="urn:x" xmlns:p="urn:p" p:k="1" xml:lang="en"/>`))
	assert.Equal(t, "{urn:x}a", root.Tag())
	assert.Equal(t, []Attribute{
		{Key: "{urn:p}k", Value: "1"},
		{Key: "{http://www.w3.org/XML/1998/namespace}lang", Value: "en"},
	}, root.Attrs())
}

func TestLookupAttr(t *testing.T) {
	root := parseDoc(t, []byte(`<e name="" type="x"/>`))

	v, ok := root.LookupAttr("", "name")
	assert.True(t, ok)
	assert.Empty(t, v)

	_, ok = root.LookupAttr("", "base")
	assert.False(t, ok)
	assert.Equal(t, "x", root.Attr("", "type"))
}

func TestParseCharset(t *testing.T) {
	doc := []byte("<?xml version=\"1.0\" encoding=\"ISO-8859-1\"?>\n<e value=\"stra\xdfe\"/>")
	root := parseDoc(t, doc)
	assert.Equal(t, "straße", root.Attr("", "value"))
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"empty", ``},
		{"unclosed", `<a><b></b>`},
		{"mismatched", `<a><b></a>`},
		{"two roots", `<a/><b/>`},
		{"bad attribute", `<a x=1/>`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			assert.Error(t, err)
		})
	}
}

func TestParseDepthLimit(t *testing.T) {
	var doc []byte
	for i := 0; i <= recursionLimit+1; i++ {
		doc = append(doc, "<a>"...)
	}
	for i := 0; i <= recursionLimit+1; i++ {
		doc = append(doc, "</a>"...)
	}
	_, err := Parse(doc)
	assert.ErrorIs(t, err, errDeepXML)
}
