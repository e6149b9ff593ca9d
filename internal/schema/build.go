package schema

import (
	"fmt"
	"strings"

	"aqwari.net/xml/xmltree"
)

const (
	tagElement     = "element"
	tagAttribute   = "attribute"
	tagInclude     = "include"
	tagDescription = "description"
)

// Parse reads one schema file and returns its root element, marked top-level
// and stamped with filename on every descendant.
func Parse(filename string, data []byte) (*Element, error) {
	root, err := xmltree.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrMalformedSchema, filename, err)
	}
	if root.Name.Local != tagElement {
		return nil, fmt.Errorf("%w: %s: root is <%s>, want <element>", ErrMalformedSchema, filename, root.Name.Local)
	}

	model, err := Build(root)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	model.TopLevel = true
	model.setSource(filename)
	return model, nil
}

// Build interprets an <element> declaration node and everything nested in it.
func Build(node *xmltree.Element) (*Element, error) {
	model := &Element{}
	if err := buildElement(model, node); err != nil {
		return nil, err
	}
	return model, nil
}

func buildElement(model *Element, node *xmltree.Element) error {
	if v, ok := attr(node, "name"); ok {
		model.Name = v
	}
	if v, ok := attr(node, "type"); ok {
		model.Type = v
	}
	if v, ok := attr(node, "default"); ok {
		model.Default = &v
	}
	if v, ok := attr(node, "required"); ok {
		model.Required = ParseCardinality(v)
	}
	if v, ok := attr(node, "ref"); ok {
		model.Ref = v
	}

	for i := range node.Children {
		child := &node.Children[i]
		switch child.Name.Local {
		case tagAttribute:
			a, err := buildAttribute(child)
			if err != nil {
				return err
			}
			model.Attributes = append(model.Attributes, a)
		case tagElement:
			elem := &Element{}
			if err := buildElement(elem, child); err != nil {
				return err
			}
			model.Children = append(model.Children, elem)
		case tagInclude:
			inc, err := buildInclude(child)
			if err != nil {
				return err
			}
			model.Includes = append(model.Includes, inc)
		case tagDescription:
			desc, err := text(child)
			if err != nil {
				return err
			}
			model.Description = desc
		}
	}
	return nil
}

func buildAttribute(node *xmltree.Element) (Attribute, error) {
	var a Attribute
	a.Name, _ = attr(node, "name")
	a.Type, _ = attr(node, "type")
	if v, ok := attr(node, "default"); ok {
		a.Default = &v
	}
	if v, ok := attr(node, "required"); ok {
		a.Required = ParseCardinality(v)
	}
	for i := range node.Children {
		if node.Children[i].Name.Local != tagDescription {
			continue
		}
		desc, err := text(&node.Children[i])
		if err != nil {
			return a, err
		}
		a.Description = desc
	}
	return a, nil
}

func buildInclude(node *xmltree.Element) (Include, error) {
	filename, ok := attr(node, "filename")
	if !ok || filename == "" {
		return Include{}, fmt.Errorf("%w: <include> without filename", ErrMalformedInclude)
	}
	required, _ := attr(node, "required")
	return Include{Filename: filename, Required: ParseCardinality(required)}, nil
}

// attr reports the value of an unqualified attribute and whether it was present.
func attr(node *xmltree.Element, name string) (string, bool) {
	for _, a := range node.StartElement.Attr {
		if a.Name.Local == name {
			return a.Value, true
		}
	}
	return "", false
}

func text(node *xmltree.Element) (string, error) {
	var body struct {
		Text string `xml:",chardata"`
	}
	if err := xmltree.Unmarshal(node, &body); err != nil {
		return "", fmt.Errorf("%w: <%s>: %v", ErrMalformedSchema, node.Name.Local, err)
	}
	return strings.TrimSpace(body.Text), nil
}
