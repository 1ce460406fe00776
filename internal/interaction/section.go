// Package interaction builds the P-M capacity envelope of a
// rectangular reinforced section by strain-compatibility integration
// and evaluates demand points against it.
package interaction

import (
	"github.com/alexiusacademia/gorcv/internal/model"
)

// layer is one resolved steel layer: depth from the compression
// reference face and total area.
type layer struct {
	d    float64 // mm
	area float64 // mm²
}

// flatSection is the cross-section resolved for one bending axis.
type flatSection struct {
	depth  float64 // dimension perpendicular to the neutral axis (mm)
	width  float64 // dimension parallel to the neutral axis (mm)
	layers []layer
}

// resolve maps the element geometry onto the bending axis. Major-axis
// bending uses the layout as drawn. For minor-axis bending the
// longitudinal steel is lumped onto the two thickness faces at the
// layout cover, which is exact for the usual two-curtain arrangement.
func resolve(e *model.Element, axis model.Axis) (flatSection, error) {
	r := e.Reinforcement
	if axis == model.Axis3 {
		sec := flatSection{depth: e.Lw, width: e.Tw}
		for _, l := range r.Layers {
			sec.layers = append(sec.layers, layer{d: l.D, area: l.Area()})
		}
		return sec, nil
	}

	cover := r.Cover
	if cover <= 0 || 2*cover >= e.Tw {
		return flatSection{}, model.Inputf(
			"element %q: cover %.1f mm invalid for thickness %.1f mm", e.Name, cover, e.Tw)
	}
	half := r.Ast() / 2
	return flatSection{
		depth: e.Tw,
		width: e.Lw,
		layers: []layer{
			{d: cover, area: half},
			{d: e.Tw - cover, area: half},
		},
	}, nil
}

// ast is the total steel area of the resolved section (mm²).
func (s flatSection) ast() float64 {
	var total float64
	for _, l := range s.layers {
		total += l.area
	}
	return total
}

// extremeTensionDepth is the depth of the layer farthest from the
// compression face (mm).
func (s flatSection) extremeTensionDepth() float64 {
	var d float64
	for _, l := range s.layers {
		if l.d > d {
			d = l.d
		}
	}
	return d
}

// plasticCentroid is the depth of the plastic centroid from the
// compression face (mm), the point forces are summed about.
func (s flatSection) plasticCentroid(fc, fy float64) float64 {
	ag := s.depth * s.width
	ast := s.ast()

	concrete := 0.85 * fc * (ag - ast)
	num := concrete * s.depth / 2
	den := concrete
	for _, l := range s.layers {
		num += fy * l.area * l.d
		den += fy * l.area
	}
	return num / den
}
