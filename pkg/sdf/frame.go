package sdf

import "encoding/xml"

// SdfFrame is a named frame of reference. It is maintained by hand so frame
// resolution can live next to it.
type SdfFrame struct {
	XMLName    xml.Name `xml:"frame"`
	Name       string   `xml:"name,attr"`
	AttachedTo *string  `xml:"attached_to,attr,omitempty"`
	Pose       *SdfPose `xml:"pose,omitempty"`
}

// Parent is the frame this one is attached to, empty for the enclosing scope.
func (f SdfFrame) Parent() string {
	if f.AttachedTo == nil {
		return ""
	}
	return *f.AttachedTo
}

// Transform returns the frame's pose. A frame without <pose> sits at the
// origin of its parent, and a pose without relative_to is relative to the
// frame the element is attached to.
func (f SdfFrame) Transform() (Pose, error) {
	if f.Pose == nil {
		p := IdentityPose()
		p.RelativeTo = f.Parent()
		return p, nil
	}
	p, err := f.Pose.Pose()
	if err != nil {
		return Pose{}, err
	}
	if p.RelativeTo == "" {
		p.RelativeTo = f.Parent()
	}
	return p, nil
}
