package interaction

import (
	"math"

	"github.com/alexiusacademia/gorcv/internal/model"
	"github.com/alexiusacademia/gorcv/internal/nscp"
)

// Sweep resolution. The neutral axis runs from deep compression down
// to a small fraction of the extreme tension depth; linear
// interpolation between adjacent samples then stays well inside the
// tolerance the checks use.
const (
	sweepSteps = 120
	cMaxFactor = 3.0  // deepest sampled c as a multiple of the section depth
	cMinFactor = 0.02 // shallowest sampled c as a fraction of dt
)

// Build generates the ordered (φPn, φMn) envelope for the element
// about the given axis, traversing from pure compression to pure
// tension.
func Build(e *model.Element, axis model.Axis) (*model.InteractionDiagram, error) {
	if err := e.Validate(); err != nil {
		return nil, err
	}
	sec, err := resolve(e, axis)
	if err != nil {
		return nil, err
	}

	mat := e.Material
	dt := sec.extremeTensionDepth()
	diagram := &model.InteractionDiagram{Axis: axis}

	// Pure compression anchor, closed form:
	// Po = 0.85·f'c·(Ag−Ast) + fy·Ast
	po := purePo(sec, mat)
	phiCC := nscp.PhiCompression
	capFactor := nscp.AxialCapTied
	if mat.Spiral {
		phiCC = nscp.PhiCompressionSp
		capFactor = nscp.AxialCapSpiral
	}
	diagram.Points = append(diagram.Points, model.PMPoint{
		C:        math.Inf(1),
		Pn:       po / 1e3,
		Mn:       0,
		PhiPn:    phiCC * capFactor * po / 1e3,
		PhiMn:    0,
		Phi:      phiCC,
		EpsilonT: -nscp.EpsilonCU,
	})

	// Neutral-axis sweep. Sampled c values descend from cMax to cMin,
	// with the balanced point spliced in so the curve passes through it
	// exactly.
	cb := dt * nscp.EpsilonCU / (nscp.EpsilonCU + mat.Fy/nscp.Es)
	cMax := cMaxFactor * sec.depth
	cMin := cMinFactor * dt
	for _, c := range sweepDepths(cMax, cMin, cb) {
		p := pointAt(sec, mat, c, dt)
		// Cap the reduced axial capacity per the maximum-axial clause.
		if pmax := phiCC * capFactor * po / 1e3; p.PhiPn > pmax {
			p.PhiPn = pmax
		}
		diagram.Points = append(diagram.Points, p)
	}

	// Pure tension anchor: every layer at fy in tension.
	ast := sec.ast()
	dpc := sec.plasticCentroid(mat.Fc, mat.Fy)
	var mt float64
	for _, l := range sec.layers {
		mt += -mat.Fy * l.area * (dpc - l.d)
	}
	pt := -mat.Fy * ast
	diagram.Points = append(diagram.Points, model.PMPoint{
		C:        0,
		Pn:       pt / 1e3,
		Mn:       mt / 1e6,
		PhiPn:    nscp.PhiFlexure * pt / 1e3,
		PhiMn:    nscp.PhiFlexure * mt / 1e6,
		Phi:      nscp.PhiFlexure,
		EpsilonT: math.Inf(1),
	})

	return diagram, nil
}

// sweepDepths returns the descending neutral-axis depths to sample,
// including the balanced depth cb.
func sweepDepths(cMax, cMin, cb float64) []float64 {
	depths := make([]float64, 0, sweepSteps+1)
	// Geometric spacing concentrates samples where the curve bends,
	// near shallow neutral axes.
	ratio := math.Pow(cMin/cMax, 1/float64(sweepSteps-1))
	c := cMax
	for i := 0; i < sweepSteps; i++ {
		depths = append(depths, c)
		c *= ratio
	}
	if cb < cMax && cb > cMin {
		for i, d := range depths {
			if d < cb {
				depths = append(depths[:i], append([]float64{cb}, depths[i:]...)...)
				break
			}
		}
	}
	return depths
}

// purePo is the closed-form pure-compression capacity (N).
func purePo(sec flatSection, mat *model.Material) float64 {
	ag := sec.depth * sec.width
	ast := sec.ast()
	return 0.85*mat.Fc*(ag-ast) + mat.Fy*ast
}

// pointAt evaluates one strain state: extreme compression fiber fixed
// at εcu, neutral axis at depth c.
func pointAt(sec flatSection, mat *model.Material, c, dt float64) model.PMPoint {
	beta1 := mat.Beta1()
	a := math.Min(beta1*c, sec.depth)

	// Concrete block resultant.
	cc := 0.85 * mat.Fc * a * sec.width // N
	dpc := sec.plasticCentroid(mat.Fc, mat.Fy)

	pn := cc               // N, compression positive
	mn := cc * (dpc - a/2) // N·mm about the plastic centroid

	for _, l := range sec.layers {
		// Compression-positive strain from the linear profile.
		strain := nscp.EpsilonCU * (c - l.d) / c
		fs := nscp.SteelStress(strain, mat.Fy)
		if l.d < a && fs > 0 {
			// Bar sits inside the stress block: displaced concrete.
			fs -= 0.85 * mat.Fc
		}
		force := fs * l.area
		pn += force
		mn += force * (dpc - l.d)
	}

	// Tension-positive strain at the extreme layer drives φ.
	epsilonT := nscp.EpsilonCU * (dt - c) / c
	phi := nscp.PhiAxialFlexure(epsilonT, mat.Fy, mat.Spiral)

	return model.PMPoint{
		C:        c,
		Pn:       pn / 1e3,
		Mn:       mn / 1e6,
		PhiPn:    phi * pn / 1e3,
		PhiMn:    phi * mn / 1e6,
		Phi:      phi,
		EpsilonT: epsilonT,
	}
}
