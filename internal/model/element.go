package model

import (
	"fmt"
	"math"

	"github.com/alexiusacademia/gorcv/internal/nscp"
)

// Material holds the shared material properties for an analysis run.
// Read-only once constructed.
type Material struct {
	Fc     float64           `json:"fc"`            // Concrete compressive strength (MPa)
	Fy     float64           `json:"fy"`            // Longitudinal steel yield strength (MPa)
	Fyt    float64           `json:"fyt,omitempty"` // Transverse steel yield strength (MPa), defaults to Fy
	Type   nscp.ConcreteType `json:"type,omitempty"`
	Spiral bool              `json:"spiral,omitempty"` // Spiral transverse reinforcement
}

// Lambda is the lightweight concrete factor for this material.
func (m *Material) Lambda() float64 { return nscp.Lambda(m.Type) }

// Beta1 is the equivalent stress block factor for this material.
func (m *Material) Beta1() float64 { return nscp.Beta1(m.Fc) }

// Ec is the concrete modulus of elasticity (MPa).
func (m *Material) Ec() float64 { return nscp.Ec(m.Fc) }

// FytOrFy returns the transverse yield strength, falling back to fy.
func (m *Material) FytOrFy() float64 {
	if m.Fyt > 0 {
		return m.Fyt
	}
	return m.Fy
}

// Validate checks the material definition.
func (m *Material) Validate() error {
	if m.Fc <= 0 {
		return &MaterialError{Msg: fmt.Sprintf("f'c must be positive, got %.2f", m.Fc)}
	}
	if m.Fy <= 0 {
		return &MaterialError{Msg: fmt.Sprintf("fy must be positive, got %.2f", m.Fy)}
	}
	switch m.Type {
	case "", nscp.NormalWeight, nscp.SandLightweight, nscp.AllLightweight:
	default:
		return &MaterialError{Msg: fmt.Sprintf("unknown concrete type %q", m.Type)}
	}
	return nil
}

// SteelLayer is one layer of longitudinal reinforcement at a depth D
// measured from the compression reference face.
type SteelLayer struct {
	D    float64 `json:"d"`    // Depth to layer centroid from reference face (mm)
	Dia  float64 `json:"dia"`  // Bar diameter (mm)
	Bars int     `json:"bars"` // Number of bars in the layer
}

// Area is the total steel area of the layer (mm²).
func (l SteelLayer) Area() float64 {
	return float64(l.Bars) * nscp.BarArea(l.Dia)
}

// ReinforcementLayout describes the full reinforcement of an element.
// Layouts are immutable: every modification constructs a new value.
type ReinforcementLayout struct {
	Layers []SteelLayer `json:"layers"`

	// Transverse reinforcement
	StirrupDia     float64 `json:"stirrup_dia"`             // mm
	StirrupLegs    int     `json:"stirrup_legs"`            // legs crossing the shear plane
	StirrupSpacing float64 `json:"stirrup_spacing"`         // mm
	StirrupAngle   float64 `json:"stirrup_angle,omitempty"` // degrees from axis, 90 = perpendicular

	Cover float64 `json:"cover"` // clear cover to layer centroid (mm)
}

// Ast is the total longitudinal steel area (mm²).
func (r ReinforcementLayout) Ast() float64 {
	var total float64
	for _, l := range r.Layers {
		total += l.Area()
	}
	return total
}

// Av is the transverse steel area per stirrup set (mm²).
func (r ReinforcementLayout) Av() float64 {
	return float64(r.StirrupLegs) * nscp.BarArea(r.StirrupDia)
}

// EffectiveDepth is the depth to the centroid of the extreme tension
// layer, the layer farthest from the reference face.
func (r ReinforcementLayout) EffectiveDepth() float64 {
	var d float64
	for _, l := range r.Layers {
		d = math.Max(d, l.D)
	}
	return d
}

// clone copies the layout including its layer slice so the copy can be
// modified without touching the receiver.
func (r ReinforcementLayout) clone() ReinforcementLayout {
	out := r
	out.Layers = append([]SteelLayer(nil), r.Layers...)
	return out
}

// WithBarDia returns a copy with every longitudinal layer set to the
// given bar diameter.
func (r ReinforcementLayout) WithBarDia(dia float64) ReinforcementLayout {
	out := r.clone()
	for i := range out.Layers {
		out.Layers[i].Dia = dia
	}
	return out
}

// WithLayer returns a copy with an additional layer appended.
func (r ReinforcementLayout) WithLayer(layer SteelLayer) ReinforcementLayout {
	out := r.clone()
	out.Layers = append(out.Layers, layer)
	return out
}

// WithStirrupSpacing returns a copy with the stirrup spacing replaced.
func (r ReinforcementLayout) WithStirrupSpacing(s float64) ReinforcementLayout {
	out := r.clone()
	out.StirrupSpacing = s
	return out
}

// Validate checks ordering and placement of the reinforcement.
func (r ReinforcementLayout) Validate(sectionDepth float64) error {
	if len(r.Layers) == 0 {
		return Inputf("reinforcement must have at least one layer")
	}
	for i, l := range r.Layers {
		if l.Bars <= 0 || l.Dia <= 0 {
			return Inputf("layer %d must have positive bar count and diameter", i+1)
		}
		if l.D <= 0 || l.D >= sectionDepth {
			return Inputf("layer %d at d=%.1f mm lies outside the section depth %.1f mm", i+1, l.D, sectionDepth)
		}
	}
	if r.StirrupSpacing < 0 || r.StirrupDia < 0 || r.StirrupLegs < 0 {
		return Inputf("transverse reinforcement quantities must be non-negative")
	}
	return nil
}

// Element is one structural member to verify. Geometry follows the
// wall convention: Lw is the section length, Tw the thickness, Hw the
// clear height. For columns Lw and Tw are the section dimensions and
// Hw the unsupported length.
type Element struct {
	Name string `json:"name"`

	Lw float64 `json:"lw"`           // Section length / larger plan dimension (mm)
	Tw float64 `json:"tw"`           // Thickness / smaller plan dimension (mm)
	Hw float64 `json:"hw"`           // Clear height (mm)
	Ln float64 `json:"ln,omitempty"` // Clear span, coupling beams only (mm)

	Stories int `json:"stories,omitempty"` // Stories above the critical section

	Material      *Material           `json:"material"`
	Reinforcement ReinforcementLayout `json:"reinforcement"`
}

// Ag is the gross section area (mm²).
func (e *Element) Ag() float64 { return e.Lw * e.Tw }

// Validate checks the element definition, including its material and
// reinforcement.
func (e *Element) Validate() error {
	if e.Lw <= 0 || e.Tw <= 0 || e.Hw <= 0 {
		return Inputf("element %q: dimensions must be positive (lw=%.1f tw=%.1f hw=%.1f)",
			e.Name, e.Lw, e.Tw, e.Hw)
	}
	if e.Material == nil {
		return &MaterialError{Msg: fmt.Sprintf("element %q has no material", e.Name)}
	}
	if err := e.Material.Validate(); err != nil {
		return err
	}
	return e.Reinforcement.Validate(e.Lw)
}

// WithReinforcement returns a snapshot of the element carrying a new
// reinforcement layout. The receiver is not modified.
func (e *Element) WithReinforcement(r ReinforcementLayout) *Element {
	out := *e
	out.Reinforcement = r
	return &out
}
