package sdf

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/spatial/r3"
)

// Vector3d is an SDFormat "vector3": three floats separated by whitespace.
type Vector3d r3.Vec

// NewVector3d returns the vector (x, y, z).
func NewVector3d(x, y, z float64) Vector3d {
	return Vector3d{X: x, Y: y, Z: z}
}

// ParseVector3d parses exactly three whitespace-separated floats.
func ParseVector3d(s string) (Vector3d, error) {
	fields, err := split3(s, "vector3")
	if err != nil {
		return Vector3d{}, err
	}
	var out [3]float64
	for i, f := range fields {
		v, err := parseFinite(f)
		if err != nil {
			return Vector3d{}, fmt.Errorf("%w: vector3 component %d %q", ErrNumericFormat, i, f)
		}
		out[i] = v
	}
	return Vector3d{X: out[0], Y: out[1], Z: out[2]}, nil
}

// Vec returns v as a gonum vector.
func (v Vector3d) Vec() r3.Vec {
	return r3.Vec(v)
}

func (v Vector3d) String() string {
	return formatFloat(v.X) + " " + formatFloat(v.Y) + " " + formatFloat(v.Z)
}

func (v Vector3d) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

func (v *Vector3d) UnmarshalText(text []byte) error {
	parsed, err := ParseVector3d(string(text))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// Vector3i is a vector of three integers.
type Vector3i struct {
	X, Y, Z int64
}

// ParseVector3i parses exactly three whitespace-separated integers.
func ParseVector3i(s string) (Vector3i, error) {
	fields, err := split3(s, "vector3i")
	if err != nil {
		return Vector3i{}, err
	}
	var out [3]int64
	for i, f := range fields {
		v, err := strconv.ParseInt(f, 10, 64)
		if err != nil {
			return Vector3i{}, fmt.Errorf("%w: vector3i component %d %q", ErrNumericFormat, i, f)
		}
		out[i] = v
	}
	return Vector3i{X: out[0], Y: out[1], Z: out[2]}, nil
}

func (v Vector3i) String() string {
	return strconv.FormatInt(v.X, 10) + " " + strconv.FormatInt(v.Y, 10) + " " + strconv.FormatInt(v.Z, 10)
}

func (v Vector3i) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

func (v *Vector3i) UnmarshalText(text []byte) error {
	parsed, err := ParseVector3i(string(text))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

func split3(s, kind string) ([]string, error) {
	fields := strings.Fields(s)
	if len(fields) != 3 {
		return nil, fmt.Errorf("%w: %s expects 3 values, got %d", ErrArityMismatch, kind, len(fields))
	}
	return fields, nil
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// parseFinite parses a decimal number and rejects NaN and the infinities.
func parseFinite(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%q is not finite", s)
	}
	return v, nil
}
