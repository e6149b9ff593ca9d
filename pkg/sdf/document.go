package sdf

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
)

// ParseDocument decodes an <sdf> document. Namespace prefixes of custom
// elements are kept, and the root's xmlns declarations land in Attrs.
func ParseDocument(r io.Reader) (*SdfRoot, error) {
	var root SdfRoot
	if err := NewDecoder(r).Decode(&root); err != nil {
		if errors.Is(err, ErrUnexpectedToken) || errors.Is(err, ErrArityMismatch) ||
			errors.Is(err, ErrNumericFormat) || errors.Is(err, ErrUnsupportedFormat) {
			return nil, err
		}
		return nil, tokenError("<sdf>", err)
	}
	return &root, nil
}

// WriteDocument encodes root to w, indenting nested elements by indent when it
// is not empty.
func WriteDocument(w io.Writer, root *SdfRoot, indent string) error {
	if root == nil {
		return fmt.Errorf("%w: nil document", ErrSerialize)
	}
	enc := xml.NewEncoder(w)
	if indent != "" {
		enc.Indent("", indent)
	}
	// A default namespace is written from Attrs, not from the decoded name.
	out := *root
	out.XMLName = xml.Name{}
	if err := enc.Encode(&out); err != nil {
		return fmt.Errorf("%w: %v", ErrSerialize, err)
	}
	if err := enc.Flush(); err != nil {
		return fmt.Errorf("%w: %v", ErrSerialize, err)
	}
	return nil
}
