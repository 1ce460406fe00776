// Package verify sequences the per-element checks across all load
// combinations, selects the governing combination, and runs the
// automatic proposal search when a check fails.
package verify

import (
	"fmt"
	"math"

	"github.com/alexiusacademia/gorcv/internal/classify"
	"github.com/alexiusacademia/gorcv/internal/config"
	"github.com/alexiusacademia/gorcv/internal/interaction"
	"github.com/alexiusacademia/gorcv/internal/model"
	"github.com/alexiusacademia/gorcv/internal/seismic"
	"github.com/alexiusacademia/gorcv/internal/shear"
	"github.com/alexiusacademia/gorcv/internal/slenderness"
)

// Orchestrator runs the verification pipeline. It holds only the
// read-only run configuration, so a single value is safe to share
// across goroutines.
type Orchestrator struct {
	Cfg config.Run
}

// New builds an orchestrator over a run configuration.
func New(cfg config.Run) *Orchestrator {
	return &Orchestrator{Cfg: cfg}
}

// pipeline is the per-combination check sequence for one element type.
type pipeline func(o *Orchestrator, st *state, d model.ForceDemand)

// pipelines maps the classified type to its check sequence. Spandrels
// (coupling beams) skip flexure-axial checks; wall piers add the
// pier-specific provisions on top of the wall sequence.
var pipelines = map[model.ElementType]pipeline{
	model.TypeColumn:   (*Orchestrator).checkColumn,
	model.TypeWall:     (*Orchestrator).checkWall,
	model.TypeWallPier: (*Orchestrator).checkWallPier,
	model.TypeBeam:     (*Orchestrator).checkBeamShear,
	model.TypeSpandrel: (*Orchestrator).checkSpandrel,
}

// state accumulates results while the combinations run.
type state struct {
	e       *model.Element
	class   model.ClassificationResult
	diagram *model.InteractionDiagram

	res *model.VerificationResult
}

// VerifyElement classifies the element once, then runs every demand
// combination through the pipeline for its type. Computation failures
// on one combination are recorded and the rest still run.
func (o *Orchestrator) VerifyElement(e *model.Element, demands []model.ForceDemand) (*model.VerificationResult, error) {
	if err := e.Validate(); err != nil {
		return nil, err
	}

	class, err := o.classify(e)
	if err != nil {
		return nil, err
	}

	st := &state{
		e:     e,
		class: class,
		res: &model.VerificationResult{
			Element:        e.Name,
			Classification: class,
			SF:             math.Inf(1),
			DCR:            0,
			Pass:           true,
		},
	}

	// The P-M envelope is built once per element+axis+reinforcement
	// and reused across combinations.
	if needsDiagram(class.Type) {
		st.diagram, err = interaction.Build(e, o.Cfg.BendingAxis())
		if err != nil {
			return nil, err
		}
		if o.Cfg.KeepDiagrams {
			st.res.Diagram = st.diagram
		}
	}

	// Demands recorded off the principal axes are resolved into the
	// section frame before any check sees them.
	run := pipelines[class.Type]
	for _, d := range demands {
		run(o, st, d.Resolved(o.Cfg.DirectionAngle))
	}

	for _, c := range st.res.SeismicChecks {
		if !c.Pass {
			st.res.Pass = false
		}
	}
	if st.res.SF < 1 || st.res.DCR > 1 {
		st.res.Pass = false
	}
	if len(st.res.Errors) > 0 {
		st.res.Pass = false
	}
	return st.res, nil
}

// classify applies the geometry classifier, with the coupling-beam
// override: an element carrying a clear span is a spandrel.
func (o *Orchestrator) classify(e *model.Element) (model.ClassificationResult, error) {
	class, err := classify.Classify(e)
	if err != nil {
		return class, err
	}
	if e.Ln > 0 {
		class.Type = model.TypeSpandrel
		class.Section = "18.10.7"
	}
	return class, nil
}

func needsDiagram(t model.ElementType) bool {
	switch t {
	case model.TypeColumn, model.TypeWall, model.TypeWallPier:
		return true
	}
	return false
}

// recordFlexure folds one combination's flexure outcome into the
// aggregate. The worst SF keeps its own combination tag; the inverse
// also competes for the overall governing DCR.
func (st *state) recordFlexure(combo string, sf float64) {
	if sf < st.res.SF {
		st.res.SF = sf
		st.res.SFCombo = combo
	}
	st.recordDCR(combo, 1/sf)
}

// recordDCR folds a demand/capacity ratio into the aggregate.
func (st *state) recordDCR(combo string, dcr float64) {
	if dcr > st.res.DCR {
		st.res.DCR = dcr
		st.res.GoverningCombo = combo
	}
}

func (st *state) recordError(combo string, err error) {
	st.res.Errors = append(st.res.Errors, fmt.Sprintf("%s: %v", combo, err))
}

func (st *state) addCheck(c model.CheckResult) {
	st.res.SeismicChecks = append(st.res.SeismicChecks, c)
}

// --- Column pipeline -------------------------------------------------

func (o *Orchestrator) checkColumn(st *state, d model.ForceDemand) {
	axis := o.Cfg.BendingAxis()
	mu := d.Moment(axis)

	// Second-order magnification before the capacity check. Without
	// end-moment pairs in the demand record, single curvature is
	// assumed (M1/M2 = -1), the conservative direction.
	h, b := bendingDims(st.e, axis)
	mag, err := slenderness.Magnify(slenderness.Input{
		Pu:             d.P,
		M1:             -mu,
		M2:             mu,
		Lu:             st.e.Hw,
		H:              h,
		B:              b,
		K:              o.Cfg.EffectiveK(),
		Braced:         o.Cfg.Braced,
		TransverseLoad: o.Cfg.TransverseLoad,
		BetaDns:        o.Cfg.BetaDns,
		Ec:             st.e.Material.Ec(),
	})
	if err != nil {
		st.recordError(d.Combo, err)
		return
	}

	sf, err := interaction.SafetyFactor(st.diagram, d.P, mag.Mc)
	if err != nil {
		st.recordError(d.Combo, err)
	} else {
		st.recordFlexure(d.Combo, sf)
	}

	o.checkShearBiaxial(st, d, d.V2, d.V3)
}

// --- Wall pipelines --------------------------------------------------

func (o *Orchestrator) checkWall(st *state, d model.ForceDemand) {
	o.checkWallCommon(st, d, false)
}

func (o *Orchestrator) checkWallPier(st *state, d model.ForceDemand) {
	o.checkWallCommon(st, d, true)
}

func (o *Orchestrator) checkWallCommon(st *state, d model.ForceDemand, pier bool) {
	axis := o.Cfg.BendingAxis()
	mu := d.Moment(axis)

	sf, err := interaction.SafetyFactor(st.diagram, d.P, mu)
	if err != nil {
		st.recordError(d.Combo, err)
	} else {
		st.recordFlexure(d.Combo, sf)
	}

	// Seismic combinations use the amplified design shear.
	v2, v3 := d.V2, d.V3
	seismicActive := o.Cfg.Category().RequiresSpecialProvisions() && d.Seismic
	var amp seismic.Amplification
	if seismicActive {
		amp = seismic.AmplifyShear(d.V2, st.e.Hw, st.e.Lw, st.e.Stories)
		v2 = amp.Ve
	}
	phiVn2 := o.checkShearBiaxial(st, d, v2, v3)

	if !seismicActive {
		return
	}

	// Boundary element evaluation at this combination's axial load.
	c, cErr := interaction.NeutralAxisAt(st.diagram, d.P)
	drift := o.Cfg.DriftRatio
	if cErr != nil {
		// Without a usable neutral axis the stress-based method
		// still applies.
		drift = 0
	}
	bnd, err := seismic.CheckBoundary(seismic.BoundaryInput{
		Lw:         st.e.Lw,
		Tw:         st.e.Tw,
		Hw:         st.e.Hw,
		Pu:         d.P,
		Mu:         mu,
		C:          c,
		DriftRatio: drift,
		Fc:         st.e.Material.Fc,
		BarDia:     maxBarDia(st.e.Reinforcement),
		Fyt:        st.e.Material.FytOrFy(),
	})
	if err != nil {
		st.recordError(d.Combo, err)
	} else {
		st.addCheck(bnd.Check)
		if bnd.Required {
			r := st.e.Reinforcement
			conf := seismic.VerifyConfinement(bnd, r.StirrupSpacing, r.Av(), st.e.Tw-2*r.Cover)
			st.addCheck(conf)
		}
	}

	if pier {
		wp, err := seismic.CheckWallPier(seismic.WallPierInput{
			Lw:             st.e.Lw,
			Tw:             st.e.Tw,
			Hw:             st.e.Hw,
			Vu:             d.V2,
			Ve:             amp.Ve,
			PhiVn:          phiVn2,
			StirrupSpacing: st.e.Reinforcement.StirrupSpacing,
			BarDia:         maxBarDia(st.e.Reinforcement),
			Fc:             st.e.Material.Fc,
		})
		if err != nil {
			st.recordError(d.Combo, err)
		} else {
			st.addCheck(wp.ShearCheck)
			st.addCheck(wp.TransverseCheck)
		}
	}
}

// --- Beam / spandrel pipelines ---------------------------------------

func (o *Orchestrator) checkBeamShear(st *state, d model.ForceDemand) {
	o.checkShearBiaxial(st, d, d.V2, d.V3)
}

func (o *Orchestrator) checkSpandrel(st *state, d model.ForceDemand) {
	o.checkShearBiaxial(st, d, d.V2, d.V3)

	if !(o.Cfg.Category().RequiresSpecialProvisions() && d.Seismic) {
		return
	}

	e := st.e
	mat := e.Material
	acw := e.Tw * e.Lw
	regime, err := seismic.ClassifyCoupling(e.Ln, e.Lw, d.V2, mat.Fc, mat.Lambda(), acw)
	if err != nil {
		st.recordError(d.Combo, err)
		return
	}
	st.addCheck(model.CheckResult{
		Name:   "coupling-regime",
		Pass:   true,
		Margin: 1,
		Detail: fmt.Sprintf("ln/h=%.2f regime=%s", e.Ln/e.Lw, regime),
	})
	if regime != seismic.RegimeDiagonal {
		return
	}
	diag, err := seismic.SizeDiagonals(e.Ln, e.Lw, e.Reinforcement.Cover, d.V2,
		mat.Fc, mat.Fy, acw, maxBarDia(e.Reinforcement))
	if err != nil {
		st.recordError(d.Combo, err)
		return
	}
	st.addCheck(diag.Check)
}

// --- Shared shear handling -------------------------------------------

// checkShearBiaxial runs both directions through the shear engine and
// records the governing utilization. Returns φVn of the in-plane
// direction for downstream pier checks.
func (o *Orchestrator) checkShearBiaxial(st *state, d model.ForceDemand, v2, v3 float64) float64 {
	e := st.e
	mat := e.Material
	r := e.Reinforcement

	// In-plane direction: web is the thickness, effective depth along
	// the section length (0.8·lw for wall-type sections).
	d2 := r.EffectiveDepth()
	if st.class.Type == model.TypeWall || st.class.Type == model.TypeWallPier {
		d2 = 0.8 * e.Lw
	}
	in2 := shear.Input{
		Vu:     v2,
		Nu:     d.P,
		Bw:     e.Tw,
		D:      d2,
		Ag:     e.Ag(),
		RhoW:   r.Ast() / (e.Tw * d2),
		Av:     r.Av(),
		S:      r.StirrupSpacing,
		Alpha:  r.StirrupAngle,
		Fc:     mat.Fc,
		Fyt:    mat.FytOrFy(),
		Lambda: mat.Lambda(),
	}

	// Out-of-plane direction across the thickness.
	d3 := e.Tw - r.Cover
	if d3 <= 0 {
		d3 = 0.8 * e.Tw
	}
	in3 := shear.Input{
		Vu:     v3,
		Nu:     d.P,
		Bw:     e.Lw,
		D:      d3,
		Ag:     e.Ag(),
		RhoW:   r.Ast() / (e.Lw * d3),
		Av:     r.Av(),
		S:      r.StirrupSpacing,
		Alpha:  r.StirrupAngle,
		Fc:     mat.Fc,
		Fyt:    mat.FytOrFy(),
		Lambda: mat.Lambda(),
	}

	res, err := shear.VerifyBiaxial(in2, in3)
	if err != nil {
		st.recordError(d.Combo, err)
		return 0
	}
	st.recordDCR(d.Combo, res.DCR)
	return res.Dir2.PhiVn
}

// bendingDims returns (h, b): the section dimension in the plane of
// bending and the one parallel to the bending axis.
func bendingDims(e *model.Element, axis model.Axis) (float64, float64) {
	if axis == model.Axis2 {
		return e.Tw, e.Lw
	}
	return e.Lw, e.Tw
}

func maxBarDia(r model.ReinforcementLayout) float64 {
	var dia float64
	for _, l := range r.Layers {
		if l.Dia > dia {
			dia = l.Dia
		}
	}
	return dia
}
