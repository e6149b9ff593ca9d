package schema

// Attribute is a declared attribute of an element. Attributes are always leaves.
type Attribute struct {
	Name        string
	Type        string
	Required    Cardinality
	Default     *string
	Description string
}

// Include pulls the root element of another schema file in as a child slot.
type Include struct {
	Filename string
	Required Cardinality
}

// Element is one declared element of a schema file.
//
// An element with a Type is a leaf holding scalar text; an element without one
// is composite and is described by its attributes, children and includes.
// Ref marks a slot that stands for another (often enclosing) element instead of
// declaring a new one.
type Element struct {
	Name        string
	Type        string
	Required    Cardinality
	Default     *string
	Description string
	Ref         string

	Children   []*Element
	Attributes []Attribute
	Includes   []Include

	SourceFile string
	TopLevel   bool
}

// IsLeaf reports whether the element carries scalar text rather than structure.
func (e *Element) IsLeaf() bool {
	return e.Type != "" && len(e.Children) == 0
}

// IsRef reports whether the element is a reference slot.
func (e *Element) IsRef() bool {
	return e.Ref != "" && e.Type == ""
}

func (e *Element) setSource(filename string) {
	for _, child := range e.Children {
		child.setSource(filename)
	}
	e.SourceFile = filename
}
