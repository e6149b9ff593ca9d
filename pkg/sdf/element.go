package sdf

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"maps"
	"sort"
	"strings"
)

// ElementData is the content of an XMLElement: either Text or a nested
// *ElementMap. No other implementations exist.
type ElementData interface {
	isElementData()
}

// Text is leaf content. Parsing trims leading and trailing whitespace, so
// leaves whose surrounding whitespace is significant do not round trip
// exactly; inner whitespace is kept verbatim.
type Text string

func (Text) isElementData() {}

func (*ElementMap) isElementData() {}

// XMLElement is one element of a document whose shape the schema does not
// describe. Its name is fixed at construction so an ElementMap holding it
// never has to re-index.
type XMLElement struct {
	name       string
	Attributes map[string]string
	Data       ElementData
}

// NewXMLElement returns an element called name with empty text content.
func NewXMLElement(name string) *XMLElement {
	return &XMLElement{name: name, Attributes: make(map[string]string)}
}

// NewTextElement returns a leaf element.
func NewTextElement(name, text string) *XMLElement {
	el := NewXMLElement(name)
	el.Data = Text(text)
	return el
}

func (el *XMLElement) Name() string {
	return el.name
}

// Text returns the leaf content. It reports false for nested elements.
func (el *XMLElement) Text() (string, bool) {
	switch d := el.Data.(type) {
	case nil:
		return "", true
	case Text:
		return string(d), true
	default:
		return "", false
	}
}

// Children returns the nested elements, or false for a leaf.
func (el *XMLElement) Children() (*ElementMap, bool) {
	m, ok := el.Data.(*ElementMap)
	return m, ok && m != nil
}

// Equal reports whether both trees have the same names, attributes, text and
// child order.
func (el *XMLElement) Equal(other *XMLElement) bool {
	if el == nil || other == nil {
		return el == other
	}
	if el.name != other.name || !equalAttrs(el.Attributes, other.Attributes) {
		return false
	}
	lm, lnested := el.Children()
	rm, rnested := other.Children()
	if lnested != rnested {
		return false
	}
	if lnested {
		return lm.Equal(rm)
	}
	lt, _ := el.Text()
	rt, _ := other.Text()
	return lt == rt
}

func equalAttrs(a, b map[string]string) bool {
	if len(a) == 0 && len(b) == 0 {
		return true
	}
	return maps.Equal(a, b)
}

// ElementMap keeps elements in insertion order and indexes them by name.
// The zero value is empty and ready to use.
type ElementMap struct {
	elements []*XMLElement
	// index[name] holds the ascending positions in elements of every
	// element called name.
	index map[string][]int
}

func NewElementMap() *ElementMap {
	return &ElementMap{index: make(map[string][]int)}
}

// Push appends el. Nil elements are ignored.
func (m *ElementMap) Push(el *XMLElement) {
	if el == nil {
		return
	}
	if m.index == nil {
		m.index = make(map[string][]int)
	}
	m.index[el.name] = append(m.index[el.name], len(m.elements))
	m.elements = append(m.elements, el)
}

// Get returns the first element pushed with name.
func (m *ElementMap) Get(name string) (*XMLElement, bool) {
	if m == nil {
		return nil, false
	}
	pos := m.index[name]
	if len(pos) == 0 {
		return nil, false
	}
	return m.elements[pos[0]], true
}

// GetAll returns every element called name in insertion order.
func (m *ElementMap) GetAll(name string) []*XMLElement {
	if m == nil {
		return nil
	}
	pos := m.index[name]
	out := make([]*XMLElement, 0, len(pos))
	for _, i := range pos {
		out = append(out, m.elements[i])
	}
	return out
}

// ForEach calls fn on every element called name in insertion order. fn may
// edit attributes and data in place.
func (m *ElementMap) ForEach(name string, fn func(*XMLElement)) {
	if m == nil {
		return
	}
	for _, i := range m.index[name] {
		fn(m.elements[i])
	}
}

func (m *ElementMap) Len() int {
	if m == nil {
		return 0
	}
	return len(m.elements)
}

// Elements returns all elements in insertion order. The slice is a copy.
func (m *ElementMap) Elements() []*XMLElement {
	if m == nil {
		return nil
	}
	out := make([]*XMLElement, len(m.elements))
	copy(out, m.elements)
	return out
}

// Names returns the distinct element names in order of first appearance.
func (m *ElementMap) Names() []string {
	if m == nil {
		return nil
	}
	names := make([]string, 0, len(m.index))
	for i, el := range m.elements {
		if m.index[el.name][0] == i {
			names = append(names, el.name)
		}
	}
	return names
}

// Equal compares two maps element by element in order.
func (m *ElementMap) Equal(other *ElementMap) bool {
	if m.Len() != other.Len() {
		return false
	}
	for i := 0; i < m.Len(); i++ {
		if !m.elements[i].Equal(other.elements[i]) {
			return false
		}
	}
	return true
}

// ParseElement reads the first element of r and everything nested in it.
// Namespace prefixes are kept in element and attribute names.
func ParseElement(r io.Reader) (*XMLElement, error) {
	d := NewDecoder(r)
	for {
		tok, err := d.Token()
		if err != nil {
			return nil, tokenError("document", err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			return readElement(d, t, nil)
		case xml.CharData:
			if len(strings.TrimSpace(string(t))) > 0 {
				return nil, fmt.Errorf("%w: text before root element", ErrUnexpectedToken)
			}
		case xml.EndElement:
			return nil, fmt.Errorf("%w: </%s> before root element", ErrUnexpectedToken, t.Name.Local)
		}
	}
}

// WriteElement writes el and its descendants to w.
func WriteElement(w io.Writer, el *XMLElement) error {
	enc := xml.NewEncoder(w)
	if err := el.encode(enc); err != nil {
		return fmt.Errorf("%w: %v", ErrSerialize, err)
	}
	if err := enc.Flush(); err != nil {
		return fmt.Errorf("%w: %v", ErrSerialize, err)
	}
	return nil
}

func (el *XMLElement) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	parsed, err := readElement(d, start, nil)
	if err != nil {
		return err
	}
	*el = *parsed
	return nil
}

func (el *XMLElement) MarshalXML(e *xml.Encoder, _ xml.StartElement) error {
	return el.encode(e)
}

// readElement parses the content of start up to and including its end tag.
// Content is decided by the first significant token: text makes a leaf, a
// start tag makes a nested map, and an immediate end tag is empty text.
// Comments and processing instructions are skipped throughout.
//
// ns maps namespace URLs to the prefixes declared for them inside the element
// being read. It only matters for decoders that resolve prefixes.
func readElement(d *xml.Decoder, start xml.StartElement, ns map[string]string) (*XMLElement, error) {
	ns = declare(ns, start.Attr)
	el := NewXMLElement(prefixedName(start.Name, ns))
	for _, a := range start.Attr {
		el.Attributes[prefixedName(a.Name, ns)] = a.Value
	}

	var (
		text     strings.Builder
		children *ElementMap
	)
	for {
		tok, err := d.Token()
		if err != nil {
			return nil, tokenError("<"+el.name+">", err)
		}
		switch t := tok.(type) {
		case xml.CharData:
			if children != nil {
				if len(strings.TrimSpace(string(t))) > 0 {
					return nil, fmt.Errorf("%w: text after nested elements in <%s>", ErrUnexpectedToken, el.name)
				}
				continue
			}
			text.Write(t)
		case xml.StartElement:
			if children == nil {
				if len(strings.TrimSpace(text.String())) > 0 {
					return nil, fmt.Errorf("%w: <%s> inside text of <%s>", ErrUnexpectedToken, t.Name.Local, el.name)
				}
				children = NewElementMap()
			}
			child, err := readElement(d, t, ns)
			if err != nil {
				return nil, err
			}
			children.Push(child)
		case xml.EndElement:
			if children != nil {
				el.Data = children
			} else {
				el.Data = Text(strings.TrimSpace(text.String()))
			}
			return el, nil
		}
	}
}

func tokenError(where string, err error) error {
	if errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: end of input in %s", ErrUnexpectedToken, where)
	}
	return fmt.Errorf("%w: %s: %v", ErrUnexpectedToken, where, err)
}

// declare returns ns extended with the xmlns declarations in attrs. ns itself
// is never modified.
func declare(ns map[string]string, attrs []xml.Attr) map[string]string {
	var out map[string]string
	for _, a := range attrs {
		var prefix string
		switch {
		case a.Name.Space == xmlnsPrefix:
			prefix = a.Name.Local
		case a.Name.Space == "" && a.Name.Local == xmlnsPrefix:
		default:
			continue
		}
		if out == nil {
			out = make(map[string]string, len(ns)+1)
			for url, p := range ns {
				out[url] = p
			}
		}
		out[a.Value] = prefix
	}
	if out == nil {
		return ns
	}
	return out
}

const xmlnsPrefix = "xmlns"

// prefixedName writes n the way it appeared in the source. Names from
// NewDecoder already carry their prefix in Local. A namespace URL with no
// known prefix is dropped; an unresolved prefix is kept as is.
func prefixedName(n xml.Name, ns map[string]string) string {
	switch {
	case n.Space == "":
		return n.Local
	case n.Space == xmlnsPrefix:
		return xmlnsPrefix + ":" + n.Local
	}
	if prefix, ok := ns[n.Space]; ok {
		if prefix == "" {
			return n.Local
		}
		return prefix + ":" + n.Local
	}
	if !strings.ContainsAny(n.Space, ":/") {
		return n.Space + ":" + n.Local
	}
	return n.Local
}

func (el *XMLElement) encode(e *xml.Encoder) error {
	start := xml.StartElement{Name: xml.Name{Local: el.name}}
	keys := make([]string, 0, len(el.Attributes))
	for k := range el.Attributes {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		start.Attr = append(start.Attr, xml.Attr{Name: xml.Name{Local: k}, Value: el.Attributes[k]})
	}

	if err := e.EncodeToken(start); err != nil {
		return err
	}
	if err := encodeData(e, el.Data); err != nil {
		return err
	}
	return e.EncodeToken(start.End())
}

func encodeData(e *xml.Encoder, data ElementData) error {
	switch d := data.(type) {
	case nil:
		return nil
	case Text:
		if d == "" {
			return nil
		}
		return e.EncodeToken(xml.CharData(d))
	case *ElementMap:
		for _, child := range d.Elements() {
			if err := child.encode(e); err != nil {
				return err
			}
		}
	}
	return nil
}
