package docstore

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"sdformat-go/pkg/sdf"
)

// FoundPlugin is a plugin located in a document. Path names the enclosing
// elements, e.g. "world[default]/model[robot]/plugin[ctrl]".
type FoundPlugin struct {
	Path   string
	Plugin sdf.SdfPlugin
}

// CollectPlugins returns every plugin of root in document order.
func CollectPlugins(root *sdf.SdfRoot) []FoundPlugin {
	var c collector
	for i := range root.World {
		w := &root.World[i]
		base := step("world", w.Name)
		c.plugins(base, w.Plugin)
		for j := range w.Model {
			c.model(base, &w.Model[j])
		}
	}
	if root.Model != nil {
		c.model("", root.Model)
	}
	return c.found
}

type collector struct {
	found []FoundPlugin
}

func (c *collector) model(parent string, m *sdf.SdfModel) {
	base := join(parent, step("model", m.Name))
	for i := range m.Include {
		inc := &m.Include[i]
		c.plugins(join(base, step("include", inc.Uri)), inc.Plugin)
	}
	for _, nested := range m.Model {
		c.model(base, nested)
	}
	for i := range m.Link {
		link := &m.Link[i]
		for j := range link.Visual {
			v := &link.Visual[j]
			c.plugins(join(base, step("link", link.Name), step("visual", v.Name)), v.Plugin)
		}
	}
	c.plugins(base, m.Plugin)
}

func (c *collector) plugins(parent string, ps []sdf.SdfPlugin) {
	for _, p := range ps {
		c.found = append(c.found, FoundPlugin{Path: join(parent, step("plugin", p.Name)), Plugin: p})
	}
}

func step(tag, name string) string {
	return tag + "[" + name + "]"
}

func join(parts ...string) string {
	out := ""
	for _, p := range parts {
		switch {
		case p == "":
		case out == "":
			out = p
		default:
			out += "/" + p
		}
	}
	return out
}

type bsonPlugin struct {
	Name       string            `bson:"name"`
	Filename   string            `bson:"filename"`
	Attributes map[string]string `bson:"attributes,omitempty"`
	Elements   []bsonElement     `bson:"elements"`
}

type bsonElement struct {
	Name       string            `bson:"name"`
	Attributes map[string]string `bson:"attributes,omitempty"`
	// Text is set for leaves, Children for nested elements.
	Text     *string       `bson:"text,omitempty"`
	Children []bsonElement `bson:"children,omitempty"`
}

// EncodePlugin stores a plugin's content as BSON. Element order is kept.
func EncodePlugin(p sdf.SdfPlugin) ([]byte, error) {
	doc := bsonPlugin{
		Name:       p.Name,
		Filename:   p.Filename,
		Attributes: p.Attributes,
		Elements:   toBSON(p.Elements),
	}
	out, err := bson.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("encode plugin %q: %w", p.Name, err)
	}
	return out, nil
}

// DecodePlugin is the inverse of EncodePlugin.
func DecodePlugin(body []byte) (*sdf.SdfPlugin, error) {
	var doc bsonPlugin
	if err := bson.Unmarshal(body, &doc); err != nil {
		return nil, fmt.Errorf("decode plugin: %w", err)
	}
	p := sdf.NewSdfPlugin(doc.Name, doc.Filename)
	if len(doc.Attributes) > 0 {
		p.Attributes = doc.Attributes
	}
	fromBSON(p.Elements, doc.Elements)
	return p, nil
}

// PluginJSON renders a stored plugin body as relaxed extended JSON.
func PluginJSON(body []byte) ([]byte, error) {
	out, err := bson.MarshalExtJSON(bson.Raw(body), false, false)
	if err != nil {
		return nil, fmt.Errorf("render plugin: %w", err)
	}
	return out, nil
}

func toBSON(m *sdf.ElementMap) []bsonElement {
	elements := m.Elements()
	out := make([]bsonElement, 0, len(elements))
	for _, el := range elements {
		be := bsonElement{Name: el.Name()}
		if len(el.Attributes) > 0 {
			be.Attributes = el.Attributes
		}
		if children, ok := el.Children(); ok {
			be.Children = toBSON(children)
		} else {
			text, _ := el.Text()
			be.Text = &text
		}
		out = append(out, be)
	}
	return out
}

func fromBSON(dst *sdf.ElementMap, elements []bsonElement) {
	for _, be := range elements {
		el := sdf.NewXMLElement(be.Name)
		for k, v := range be.Attributes {
			el.Attributes[k] = v
		}
		if be.Text != nil {
			el.Data = sdf.Text(*be.Text)
		} else {
			children := sdf.NewElementMap()
			fromBSON(children, be.Children)
			el.Data = children
		}
		dst.Push(el)
	}
}
