package sdf

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"
)

// Rotation formats accepted in the rotation_format attribute of <pose>.
const (
	RotationEulerRPY = "euler_rpy"
	RotationQuatXYZW = "quat_xyzw"
)

// UpAxis is the rotation axis reported for rotations whose axis is undefined.
var UpAxis = r3.Vec{Z: 1}

const axisEpsilon = 1e-12

// Pose is a rigid transform: translation followed by rotation, expressed in
// the frame named by RelativeTo (empty means the parent frame).
type Pose struct {
	Translation Vector3d
	Rotation    r3.Rotation
	RelativeTo  string
}

// PoseOptions carry the attributes of <pose> that change how its text is read.
type PoseOptions struct {
	// Degrees marks the three Euler angles as degrees. Quaternions ignore it.
	Degrees        bool
	RelativeTo     string
	RotationFormat string
}

// IdentityPose is the pose "0 0 0 0 0 0".
func IdentityPose() Pose {
	return Pose{Rotation: r3.Rotation{Real: 1}}
}

// ParsePose reads a pose from its text form. Six values are x y z roll pitch
// yaw; seven values are x y z followed by a quaternion x y z w.
func ParsePose(s string, opts PoseOptions) (Pose, error) {
	fields := strings.Fields(s)
	if len(fields) != 6 && len(fields) != 7 {
		return Pose{}, fmt.Errorf("%w: pose expects 6 or 7 values, got %d", ErrArityMismatch, len(fields))
	}
	switch opts.RotationFormat {
	case "":
	case RotationEulerRPY:
		if len(fields) != 6 {
			return Pose{}, fmt.Errorf("%w: %s pose expects 6 values, got %d", ErrArityMismatch, RotationEulerRPY, len(fields))
		}
	case RotationQuatXYZW:
		if len(fields) != 7 {
			return Pose{}, fmt.Errorf("%w: %s pose expects 7 values, got %d", ErrArityMismatch, RotationQuatXYZW, len(fields))
		}
	default:
		return Pose{}, fmt.Errorf("%w: rotation_format %q", ErrUnsupportedFormat, opts.RotationFormat)
	}

	v := make([]float64, len(fields))
	for i, f := range fields {
		n, err := parseFinite(f)
		if err != nil {
			return Pose{}, fmt.Errorf("%w: pose component %d %q", ErrNumericFormat, i, f)
		}
		v[i] = n
	}

	pose := Pose{
		Translation: Vector3d{X: v[0], Y: v[1], Z: v[2]},
		RelativeTo:  opts.RelativeTo,
	}
	if len(v) == 6 {
		roll, pitch, yaw := v[3], v[4], v[5]
		if opts.Degrees {
			roll, pitch, yaw = radians(roll), radians(pitch), radians(yaw)
		}
		pose.Rotation = EulerRPY(roll, pitch, yaw)
	} else {
		pose.Rotation = QuaternionXYZW(v[3], v[4], v[5], v[6])
	}
	return pose, nil
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// EulerRPY builds the rotation Rz(yaw)·Ry(pitch)·Rx(roll), angles in radians.
func EulerRPY(roll, pitch, yaw float64) r3.Rotation {
	qx := axisAngle(roll, r3.Vec{X: 1})
	qy := axisAngle(pitch, r3.Vec{Y: 1})
	qz := axisAngle(yaw, r3.Vec{Z: 1})
	return r3.Rotation(quat.Mul(qz, quat.Mul(qy, qx)))
}

// QuaternionXYZW normalises the quaternion (x, y, z, w) through its polar
// decomposition. When the rotation axis is undefined the rotation is taken
// about UpAxis; a zero quaternion is the identity.
func QuaternionXYZW(x, y, z, w float64) r3.Rotation {
	q := quat.Number{Real: w, Imag: x, Jmag: y, Kmag: z}
	norm := quat.Abs(q)
	if norm == 0 {
		return r3.Rotation{Real: 1}
	}
	q = quat.Scale(1/norm, q)

	axis := r3.Vec{X: q.Imag, Y: q.Jmag, Z: q.Kmag}
	sin := r3.Norm(axis)
	if sin < axisEpsilon {
		axis = UpAxis
	} else {
		axis = r3.Scale(1/sin, axis)
	}
	angle := 2 * math.Atan2(sin, q.Real)
	return r3.Rotation(axisAngle(angle, axis))
}

// axisAngle expects a unit axis.
func axisAngle(angle float64, axis r3.Vec) quat.Number {
	sin, cos := math.Sincos(angle / 2)
	return quat.Number{Real: cos, Imag: sin * axis.X, Jmag: sin * axis.Y, Kmag: sin * axis.Z}
}

// Quaternion returns the rotation as x, y, z, w.
func (p Pose) Quaternion() (x, y, z, w float64) {
	q := quat.Number(p.Rotation)
	return q.Imag, q.Jmag, q.Kmag, q.Real
}

// RPY returns roll, pitch and yaw in radians.
func (p Pose) RPY() (roll, pitch, yaw float64) {
	x, y, z, w := p.Quaternion()
	roll = math.Atan2(2*(w*x+y*z), 1-2*(x*x+y*y))
	sinp := 2 * (w*y - z*x)
	switch {
	case sinp >= 1:
		pitch = math.Pi / 2
	case sinp <= -1:
		pitch = -math.Pi / 2
	default:
		pitch = math.Asin(sinp)
	}
	yaw = math.Atan2(2*(w*z+x*y), 1-2*(y*y+z*z))
	return roll, pitch, yaw
}

// Apply maps a point from the pose's child frame into its parent frame.
func (p Pose) Apply(v r3.Vec) r3.Vec {
	return r3.Add(p.Rotation.Rotate(v), p.Translation.Vec())
}

// String is the six value form, angles in radians.
func (p Pose) String() string {
	roll, pitch, yaw := p.RPY()
	return p.Translation.String() + " " + formatFloat(roll) + " " + formatFloat(pitch) + " " + formatFloat(yaw)
}

// QuaternionString is the seven value form used with rotation_format="quat_xyzw".
func (p Pose) QuaternionString() string {
	x, y, z, w := p.Quaternion()
	return p.Translation.String() + " " + formatFloat(x) + " " + formatFloat(y) + " " + formatFloat(z) + " " + formatFloat(w)
}

// Pose decodes the element using its degrees, relative_to and rotation_format
// attributes. Absent attributes take their schema defaults.
func (p *SdfPose) Pose() (Pose, error) {
	var opts PoseOptions
	if p.Degrees != nil {
		opts.Degrees = *p.Degrees
	}
	if p.RelativeTo != nil {
		opts.RelativeTo = *p.RelativeTo
	}
	if p.RotationFormat != nil {
		opts.RotationFormat = *p.RotationFormat
	}
	return ParsePose(p.Data, opts)
}

// NewSdfPose encodes p as a <pose> element in the six value radian form.
func NewSdfPose(p Pose) SdfPose {
	out := SdfPose{Data: p.String()}
	if p.RelativeTo != "" {
		rel := p.RelativeTo
		out.RelativeTo = &rel
	}
	return out
}

// FormatPose is p.String().
func FormatPose(p Pose) string {
	return p.String()
}
