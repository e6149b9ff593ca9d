package sdf

import (
	"encoding/xml"
	"io"
)

// NewDecoder returns an XML decoder that leaves namespace prefixes in element
// and attribute names ("gz:system") instead of replacing them with namespace
// URLs. Documents read through it write back with the same prefixes, and
// xmlns declarations arrive as ordinary attributes. ParseDocument,
// ParseElement and ParsePlugin all use it.
//
// Decoding with a plain xml.Decoder still works, but prefixes declared outside
// the decoded element cannot be recovered and such names lose their prefix.
func NewDecoder(r io.Reader) *xml.Decoder {
	return xml.NewTokenDecoder(prefixedNames{xml.NewDecoder(r)})
}

// prefixedNames reads raw tokens and folds each prefix into the local name,
// so the wrapping decoder has nothing to resolve but still checks that start
// and end tags match.
type prefixedNames struct {
	d *xml.Decoder
}

func (p prefixedNames) Token() (xml.Token, error) {
	tok, err := p.d.RawToken()
	if err != nil {
		return nil, err
	}
	switch t := tok.(type) {
	case xml.StartElement:
		out := xml.StartElement{Name: foldPrefix(t.Name), Attr: make([]xml.Attr, len(t.Attr))}
		for i, a := range t.Attr {
			out.Attr[i] = xml.Attr{Name: foldPrefix(a.Name), Value: a.Value}
		}
		return out, nil
	case xml.EndElement:
		return xml.EndElement{Name: foldPrefix(t.Name)}, nil
	default:
		return xml.CopyToken(tok), nil
	}
}

func foldPrefix(n xml.Name) xml.Name {
	if n.Space == "" {
		return n
	}
	return xml.Name{Local: n.Space + ":" + n.Local}
}
