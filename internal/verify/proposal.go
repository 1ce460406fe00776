package verify

import (
	"math"

	"github.com/alexiusacademia/gorcv/internal/model"
	"github.com/alexiusacademia/gorcv/internal/nscp"
)

// Proposal search tuning. Steps monotonically add reinforcement; the
// ladder never removes anything, so the search space is a single
// ordered path and identical inputs always walk identical steps.
const (
	minStirrupSpacing  = 50.0 // mm
	stirrupSpacingStep = 25.0 // mm
	maxExtraLayers     = 4
)

// Propose searches for a reinforcement layout that passes, by
// stepping the current layout up in small ordered increments and
// re-verifying after each step. It returns nil (with no error) when
// the budget runs out without a passing configuration.
func (o *Orchestrator) Propose(e *model.Element, demands []model.ForceDemand) (*model.DesignProposal, error) {
	budget := o.Cfg.ProposalBudget
	if budget <= 0 {
		return nil, &model.ConvergenceError{Op: "proposal", Msg: "step budget is zero"}
	}

	current := e
	baseRes, err := o.VerifyElement(current, demands)
	if err != nil {
		return nil, err
	}
	if baseRes.Pass {
		// Nothing to do; the caller should not have invoked the search.
		return &model.DesignProposal{Layout: e.Reinforcement, Result: *baseRes, Steps: 0}, nil
	}

	extraLayers := 0
	for step := 1; step <= budget; step++ {
		next, grew := o.stepUp(current, baseRes, &extraLayers)
		if !grew {
			// Ladder exhausted before the budget.
			return nil, nil
		}
		candidate := current.WithReinforcement(next)

		res, err := o.VerifyElement(candidate, demands)
		if err != nil {
			return nil, err
		}
		if res.Pass {
			return &model.DesignProposal{Layout: next, Result: *res, Steps: step}, nil
		}
		current = candidate
		baseRes = res
	}
	return nil, nil
}

// stepUp produces the next candidate layout. The move is chosen by
// what currently governs: stirrups are tightened while shear governs,
// otherwise longitudinal steel grows (bar size first, then layers).
func (o *Orchestrator) stepUp(e *model.Element, last *model.VerificationResult, extraLayers *int) (model.ReinforcementLayout, bool) {
	r := e.Reinforcement

	if shearGoverns(last) && r.StirrupSpacing > minStirrupSpacing {
		s := math.Max(r.StirrupSpacing-stirrupSpacingStep, minStirrupSpacing)
		return r.WithStirrupSpacing(s), true
	}

	if dia := smallestBarDia(r); dia > 0 {
		if next := nscp.NextBarSize(dia); next > 0 {
			return bumpSmallestBars(r, dia, next), true
		}
	}

	if *extraLayers < maxExtraLayers && len(r.Layers) > 0 {
		*extraLayers++
		// New layer mirrors the first layer at a fresh interior depth.
		first := r.Layers[0]
		depth := e.Lw * float64(*extraLayers) / float64(maxExtraLayers+1)
		return r.WithLayer(model.SteelLayer{D: depth, Dia: first.Dia, Bars: first.Bars}), true
	}

	if r.StirrupSpacing > minStirrupSpacing {
		s := math.Max(r.StirrupSpacing-stirrupSpacingStep, minStirrupSpacing)
		return r.WithStirrupSpacing(s), true
	}

	return r, false
}

// shearGoverns reports whether the last failure came from the shear
// DCR rather than the flexure safety factor.
func shearGoverns(res *model.VerificationResult) bool {
	if res.SF >= 1 {
		return res.DCR > 1
	}
	// Both may fail; compare severities.
	return res.DCR > 1/res.SF
}

func smallestBarDia(r model.ReinforcementLayout) float64 {
	dia := math.Inf(1)
	for _, l := range r.Layers {
		if l.Dia < dia {
			dia = l.Dia
		}
	}
	if math.IsInf(dia, 1) {
		return 0
	}
	return dia
}

// bumpSmallestBars grows only the layers at the smallest diameter, so
// repeated steps level the layout up one size at a time.
func bumpSmallestBars(r model.ReinforcementLayout, from, to float64) model.ReinforcementLayout {
	out := r
	out.Layers = append([]model.SteelLayer(nil), r.Layers...)
	for i := range out.Layers {
		if out.Layers[i].Dia == from {
			out.Layers[i].Dia = to
		}
	}
	return out
}
