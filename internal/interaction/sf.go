package interaction

import (
	"math"

	"gonum.org/v1/gonum/interp"

	"github.com/alexiusacademia/gorcv/internal/model"
)

// SafetyFactor scales the demand ray from the origin through (Mu, Pu)
// until it meets the reduced capacity envelope, and returns the scale.
// SF >= 1 means the demand point lies inside the envelope. The moment
// is taken by magnitude; the envelope is symmetric for the rectangular
// sections in scope.
func SafetyFactor(d *model.InteractionDiagram, pu, mu float64) (float64, error) {
	if len(d.Points) < 2 {
		return 0, &model.ConvergenceError{Op: "interaction", Msg: "diagram has no points"}
	}
	mu = math.Abs(mu)

	if pu == 0 && mu == 0 {
		return math.Inf(1), nil
	}

	// Pure axial demand: the envelope ends carry M = 0, so the ray runs
	// along the P axis and meets the compression cap or tension anchor.
	if mu == 0 {
		if pu > 0 {
			return maxPhiPn(d) / pu, nil
		}
		return minPhiPn(d) / pu, nil
	}

	// Walk the piecewise-linear envelope and intersect each segment
	// with the ray (t·mu, t·pu), t > 0.
	for i := 0; i < len(d.Points)-1; i++ {
		p1, p2 := d.Points[i], d.Points[i+1]
		t, ok := raySegment(pu, mu, p1.PhiMn, p1.PhiPn, p2.PhiMn, p2.PhiPn)
		if ok {
			return t, nil
		}
	}
	return 0, &model.ConvergenceError{Op: "interaction", Msg: "demand ray does not intersect capacity envelope"}
}

// raySegment intersects the ray (t·mu, t·pu) with the segment
// (x1,y1)-(x2,y2). Returns the ray parameter t when the intersection
// lies on the segment.
func raySegment(pu, mu, x1, y1, x2, y2 float64) (float64, bool) {
	// t·mu = x1 + s·(x2−x1)
	// t·pu = y1 + s·(y2−y1),  0 <= s <= 1
	dx := x2 - x1
	dy := y2 - y1
	det := dx*pu - dy*mu
	if det == 0 {
		return 0, false
	}
	s := (y1*mu - x1*pu) / det
	if s < 0 || s > 1 {
		return 0, false
	}
	var t float64
	if mu != 0 {
		t = (x1 + s*dx) / mu
	} else {
		t = (y1 + s*dy) / pu
	}
	if t <= 0 {
		return 0, false
	}
	return t, true
}

func maxPhiPn(d *model.InteractionDiagram) float64 {
	m := math.Inf(-1)
	for _, p := range d.Points {
		m = math.Max(m, p.PhiPn)
	}
	return m
}

func minPhiPn(d *model.InteractionDiagram) float64 {
	m := math.Inf(1)
	for _, p := range d.Points {
		m = math.Min(m, p.PhiPn)
	}
	return m
}

// NeutralAxisAt interpolates the neutral-axis depth c (mm) at a given
// factored axial load (kN). Used by the displacement-based boundary
// element check, which compares c against a drift-dependent limit.
func NeutralAxisAt(d *model.InteractionDiagram, pu float64) (float64, error) {
	// Pn descends along the traversal; build ascending series for the
	// interpolator, skipping the closed-form anchors (infinite or zero
	// c carries no usable slope).
	var pn, c []float64
	for i := len(d.Points) - 1; i >= 0; i-- {
		p := d.Points[i]
		if math.IsInf(p.C, 0) || p.C == 0 {
			continue
		}
		if len(pn) > 0 && p.Pn <= pn[len(pn)-1] {
			continue // enforce strictly increasing support
		}
		pn = append(pn, p.Pn)
		c = append(c, p.C)
	}
	if len(pn) < 2 {
		return 0, &model.ConvergenceError{Op: "interaction", Msg: "too few points to interpolate neutral axis"}
	}
	if pu <= pn[0] {
		return c[0], nil
	}
	if pu >= pn[len(pn)-1] {
		return c[len(c)-1], nil
	}
	var pl interp.PiecewiseLinear
	if err := pl.Fit(pn, c); err != nil {
		return 0, &model.ConvergenceError{Op: "interaction", Msg: err.Error()}
	}
	return pl.Predict(pu), nil
}

// MomentCapacityAt interpolates φMn (kN·m) available at a factored
// axial load (kN), for diagnostics and reporting.
func MomentCapacityAt(d *model.InteractionDiagram, pu float64) (float64, error) {
	var pn, mn []float64
	for i := len(d.Points) - 1; i >= 0; i-- {
		p := d.Points[i]
		if len(pn) > 0 && p.PhiPn <= pn[len(pn)-1] {
			continue
		}
		pn = append(pn, p.PhiPn)
		mn = append(mn, p.PhiMn)
	}
	if len(pn) < 2 {
		return 0, &model.ConvergenceError{Op: "interaction", Msg: "too few points to interpolate capacity"}
	}
	if pu <= pn[0] {
		return mn[0], nil
	}
	if pu >= pn[len(pn)-1] {
		return mn[len(mn)-1], nil
	}
	var pl interp.PiecewiseLinear
	if err := pl.Fit(pn, mn); err != nil {
		return 0, &model.ConvergenceError{Op: "interaction", Msg: err.Error()}
	}
	return pl.Predict(pu), nil
}
