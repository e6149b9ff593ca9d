package sdf

import (
	"encoding/xml"
	"fmt"
	"io"
)

const pluginTag = "plugin"

// SdfPlugin is a <plugin> element. Its content belongs to the plugin named by
// Filename and is kept as a generic element tree.
type SdfPlugin struct {
	Name     string
	Filename string
	// Attributes holds any other attributes of the tag, xmlns declarations
	// included.
	Attributes map[string]string
	Elements   *ElementMap
}

// NewSdfPlugin returns a plugin with no content.
func NewSdfPlugin(name, filename string) *SdfPlugin {
	return &SdfPlugin{Name: name, Filename: filename, Elements: NewElementMap()}
}

// ParsePlugin reads a standalone <plugin> document.
func ParsePlugin(r io.Reader) (*SdfPlugin, error) {
	el, err := ParseElement(r)
	if err != nil {
		return nil, err
	}
	return pluginFromElement(el)
}

// WritePlugin writes p as a standalone document.
func WritePlugin(w io.Writer, p *SdfPlugin) error {
	return WriteElement(w, p.Element())
}

// Element returns p as a generic element whose attributes are the plugin's
// name and filename. The children are shared with p.
func (p SdfPlugin) Element() *XMLElement {
	el := NewXMLElement(pluginTag)
	for k, v := range p.Attributes {
		el.Attributes[k] = v
	}
	el.Attributes["name"] = p.Name
	el.Attributes["filename"] = p.Filename
	if p.Elements == nil {
		el.Data = NewElementMap()
	} else {
		el.Data = p.Elements
	}
	return el
}

func pluginFromElement(el *XMLElement) (*SdfPlugin, error) {
	if el.Name() != pluginTag {
		return nil, fmt.Errorf("%w: <%s>, want <%s>", ErrUnexpectedToken, el.Name(), pluginTag)
	}
	p := &SdfPlugin{
		Name:     el.Attributes["name"],
		Filename: el.Attributes["filename"],
	}
	for k, v := range el.Attributes {
		if k == "name" || k == "filename" {
			continue
		}
		if p.Attributes == nil {
			p.Attributes = make(map[string]string)
		}
		p.Attributes[k] = v
	}
	if children, ok := el.Children(); ok {
		p.Elements = children
		return p, nil
	}
	if text, _ := el.Text(); text != "" {
		return nil, fmt.Errorf("%w: text content in <%s>", ErrUnexpectedToken, pluginTag)
	}
	p.Elements = NewElementMap()
	return p, nil
}

func (p *SdfPlugin) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	el, err := readElement(d, start, nil)
	if err != nil {
		return err
	}
	// The wrapper tag is whatever the parent struct field is called.
	el.name = pluginTag
	parsed, err := pluginFromElement(el)
	if err != nil {
		return err
	}
	*p = *parsed
	return nil
}

func (p SdfPlugin) MarshalXML(e *xml.Encoder, _ xml.StartElement) error {
	return p.Element().encode(e)
}
