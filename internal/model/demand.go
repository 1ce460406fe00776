package model

import "math"

// ForceDemand is one factored load-combination record for an element.
// Axial compression is positive. Units: kN, kN·m.
type ForceDemand struct {
	Combo string  `json:"combo"` // combination identifier
	P     float64 `json:"p"`     // axial (kN)
	M2    float64 `json:"m2"`    // moment about the minor axis (kN·m)
	M3    float64 `json:"m3"`    // moment about the major axis (kN·m)
	V2    float64 `json:"v2"`    // shear along axis 2 (kN)
	V3    float64 `json:"v3"`    // shear along axis 3 (kN)

	Seismic bool `json:"seismic,omitempty"` // combination includes earthquake effects
}

// Axis selects the bending axis for uniaxial checks.
type Axis int

const (
	Axis3 Axis = iota // major axis (moment M3, shear V2)
	Axis2             // minor axis (moment M2, shear V3)
)

func (a Axis) String() string {
	if a == Axis2 {
		return "minor"
	}
	return "major"
}

// Moment returns the demand moment about the given axis (kN·m).
func (d ForceDemand) Moment(a Axis) float64 {
	if a == Axis2 {
		return d.M2
	}
	return d.M3
}

// Resolved rotates the moment and shear components into a frame turned
// by the given angle (degrees) about the element's vertical axis, for
// demands recorded in a direction other than the section's principal
// axes. Axial load and combination metadata pass through unchanged.
func (d ForceDemand) Resolved(angleDeg float64) ForceDemand {
	if angleDeg == 0 {
		return d
	}
	rad := angleDeg * math.Pi / 180
	sin, cos := math.Sin(rad), math.Cos(rad)
	out := d
	out.M3 = d.M3*cos + d.M2*sin
	out.M2 = -d.M3*sin + d.M2*cos
	out.V2 = d.V2*cos + d.V3*sin
	out.V3 = -d.V2*sin + d.V3*cos
	return out
}
