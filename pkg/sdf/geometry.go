package sdf

import (
	"encoding/xml"
	"fmt"
	"strings"
)

// Shape is one of the geometry shapes. The set is closed: EmptyShape and the
// generated shape types below are the only implementations.
type Shape interface {
	shapeTag() string
}

// EmptyShape is <empty/>, a geometry with no shape.
type EmptyShape struct {
	XMLName xml.Name `xml:"empty"`
}

func (*EmptyShape) shapeTag() string        { return "empty" }
func (*SdfBoxShape) shapeTag() string       { return "box" }
func (*SdfCapsuleShape) shapeTag() string   { return "capsule" }
func (*SdfCylinderShape) shapeTag() string  { return "cylinder" }
func (*SdfEllipsoidShape) shapeTag() string { return "ellipsoid" }
func (*SdfHeightmapShape) shapeTag() string { return "heightmap" }
func (*SdfImageShape) shapeTag() string     { return "image" }
func (*SdfMeshShape) shapeTag() string      { return "mesh" }
func (*SdfPlaneShape) shapeTag() string     { return "plane" }
func (*SdfPolylineShape) shapeTag() string  { return "polyline" }
func (*SdfSphereShape) shapeTag() string    { return "sphere" }

var shapes = map[string]func() Shape{
	"empty":     func() Shape { return new(EmptyShape) },
	"box":       func() Shape { return new(SdfBoxShape) },
	"capsule":   func() Shape { return new(SdfCapsuleShape) },
	"cylinder":  func() Shape { return new(SdfCylinderShape) },
	"ellipsoid": func() Shape { return new(SdfEllipsoidShape) },
	"heightmap": func() Shape { return new(SdfHeightmapShape) },
	"image":     func() Shape { return new(SdfImageShape) },
	"mesh":      func() Shape { return new(SdfMeshShape) },
	"plane":     func() Shape { return new(SdfPlaneShape) },
	"polyline":  func() Shape { return new(SdfPolylineShape) },
	"sphere":    func() Shape { return new(SdfSphereShape) },
}

// ShapeTag returns the element name s is written as. A nil shape is "empty".
func ShapeTag(s Shape) string {
	if s == nil {
		return "empty"
	}
	return s.shapeTag()
}

// SdfGeometry is a <geometry> element holding exactly one shape.
type SdfGeometry struct {
	Shape Shape
}

// IsEmpty reports whether the geometry has no shape.
func (g SdfGeometry) IsEmpty() bool {
	_, empty := g.Shape.(*EmptyShape)
	return g.Shape == nil || empty
}

func (g *SdfGeometry) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	g.Shape = nil
	for {
		tok, err := d.Token()
		if err != nil {
			return tokenError("<geometry>", err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if g.Shape != nil {
				return fmt.Errorf("%w: <%s> after <%s> in <geometry>", ErrUnexpectedToken, t.Name.Local, g.Shape.shapeTag())
			}
			newShape, ok := shapes[t.Name.Local]
			if !ok {
				return fmt.Errorf("%w: unknown shape <%s>", ErrUnexpectedToken, t.Name.Local)
			}
			shape := newShape()
			if err := d.DecodeElement(shape, &t); err != nil {
				return err
			}
			g.Shape = shape
		case xml.CharData:
			if len(strings.TrimSpace(string(t))) > 0 {
				return fmt.Errorf("%w: text in <geometry>", ErrUnexpectedToken)
			}
		case xml.EndElement:
			return nil
		}
	}
}

func (g SdfGeometry) MarshalXML(e *xml.Encoder, _ xml.StartElement) error {
	start := xml.StartElement{Name: xml.Name{Local: "geometry"}}
	if err := e.EncodeToken(start); err != nil {
		return err
	}
	shape := g.Shape
	if shape == nil {
		shape = &EmptyShape{}
	}
	if err := e.EncodeElement(shape, xml.StartElement{Name: xml.Name{Local: shape.shapeTag()}}); err != nil {
		return err
	}
	return e.EncodeToken(start.End())
}
