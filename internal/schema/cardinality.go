package schema

// Cardinality is how many times an element or attribute may occur in its parent.
type Cardinality int

const (
	Optional Cardinality = iota
	One
	Many
)

// ParseCardinality reads the value of a schema "required" marker.
// Anything that is not a recognised "one" or "many" marker is optional,
// including an absent marker and "0"/"-1".
func ParseCardinality(required string) Cardinality {
	switch required {
	case "true", "1":
		return One
	case "*", "+":
		return Many
	default:
		return Optional
	}
}

func (c Cardinality) String() string {
	switch c {
	case One:
		return "one"
	case Many:
		return "many"
	default:
		return "optional"
	}
}

// Wrap applies the container shape for c to a Go type expression.
func (c Cardinality) Wrap(typ string) string {
	switch c {
	case One:
		return typ
	case Many:
		return "[]" + typ
	default:
		return "*" + typ
	}
}
