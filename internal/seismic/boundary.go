// Package seismic implements the special provisions for walls, wall
// piers and coupling beams: boundary elements, diagonal reinforcement,
// and design-shear amplification. Every sub-check reports its own
// pass/fail and margin; callers aggregate instead of short-circuiting.
package seismic

import (
	"fmt"
	"math"

	"github.com/alexiusacademia/gorcv/internal/model"
	"github.com/alexiusacademia/gorcv/internal/nscp"
)

// BoundaryInput feeds the boundary-element evaluation of a wall end.
// Forces kN, moments kN·m, dimensions mm.
type BoundaryInput struct {
	Lw float64
	Tw float64
	Hw float64

	Pu float64 // factored axial load (kN)
	Mu float64 // factored moment (kN·m)

	C float64 // neutral-axis depth at the demand axial load (mm)

	// Design displacement over wall height. When zero or negative the
	// displacement method is unavailable and the stress-based method
	// governs.
	DriftRatio float64

	Fc float64

	BarDia float64 // boundary longitudinal bar diameter (mm)
	Fyt    float64
}

// BoundaryResult sizes the boundary zone when one is required.
type BoundaryResult struct {
	Required bool
	Method   string // "displacement" or "stress"

	CLimit      float64 // displacement method neutral-axis limit (mm)
	FiberStress float64 // stress method extreme-fiber stress (MPa)

	// Stress method only: the fiber stress sits below the 0.15·f'c
	// release threshold, so an existing boundary element may be
	// discontinued here.
	MayDiscontinue bool

	ZoneLength  float64 // required boundary zone length (mm)
	MaxSpacing  float64 // hoop spacing limit within the zone (mm)
	AshOverSBc  float64 // required Ash/(s·bc)

	Check model.CheckResult
}

// CheckBoundary evaluates the wall end. The displacement-based method
// is used when story-drift data is available, otherwise the
// stress-based method.
func CheckBoundary(in BoundaryInput) (BoundaryResult, error) {
	if in.Lw <= 0 || in.Tw <= 0 || in.Hw <= 0 {
		return BoundaryResult{}, model.Inputf("boundary check requires positive wall dimensions")
	}
	if in.Fc <= 0 {
		return BoundaryResult{}, &model.MaterialError{Msg: "boundary check requires positive f'c"}
	}

	var res BoundaryResult
	if in.DriftRatio > 0 {
		res.Method = "displacement"
		drift := math.Max(in.DriftRatio, nscp.MinDriftRatio)
		// Boundary elements required when c >= lw/(600·(1.5·δu/hw)).
		res.CLimit = in.Lw / (600 * 1.5 * drift)
		res.Required = in.C >= res.CLimit
	} else {
		res.Method = "stress"
		ag := in.Lw * in.Tw
		s := in.Tw * in.Lw * in.Lw / 6 // section modulus (mm³)
		res.FiberStress = in.Pu*1e3/ag + math.Abs(in.Mu)*1e6/s
		res.Required = res.FiberStress > nscp.BoundaryStressTrigger*in.Fc
		res.MayDiscontinue = res.FiberStress < nscp.BoundaryStressRelease*in.Fc
	}

	if res.Required {
		// Zone length per 418.10.6.4: the larger of c − 0.1·lw and c/2.
		res.ZoneLength = math.Max(in.C-0.1*in.Lw, in.C/2)
		res.MaxSpacing = hoopSpacingLimit(in.Tw, in.BarDia)
		if in.Fyt > 0 {
			res.AshOverSBc = nscp.ConfinementCoefficient * in.Fc / in.Fyt
		}
	}

	// The sub-check itself always passes: it reports whether
	// confinement is needed and how much. Margin is the distance to
	// the trigger, positive when no boundary zone is required.
	var margin float64
	var detail string
	if res.Method == "displacement" {
		margin = (res.CLimit - in.C) / in.Lw
		detail = fmt.Sprintf("c=%.1f mm vs limit %.1f mm", in.C, res.CLimit)
	} else {
		margin = (nscp.BoundaryStressTrigger*in.Fc - res.FiberStress) / in.Fc
		detail = fmt.Sprintf("fiber stress %.2f MPa vs %.2f MPa", res.FiberStress, nscp.BoundaryStressTrigger*in.Fc)
	}
	res.Check = model.CheckResult{
		Name:   "boundary-element",
		Pass:   true,
		Margin: margin,
		Detail: detail,
	}
	return res, nil
}

// hoopSpacingLimit is the confinement spacing limit inside a boundary
// zone: the least of tw/3, 6·db and 150 mm.
func hoopSpacingLimit(tw, barDia float64) float64 {
	limit := math.Min(tw/3, 150)
	if barDia > 0 {
		limit = math.Min(limit, 6*barDia)
	}
	return limit
}

// VerifyConfinement compares provided boundary-zone transverse
// reinforcement against the requirement from CheckBoundary.
func VerifyConfinement(req BoundaryResult, spacing, ash, bc float64) model.CheckResult {
	if !req.Required {
		return model.CheckResult{Name: "boundary-confinement", Pass: true, Margin: 1}
	}
	if spacing <= 0 || bc <= 0 {
		return model.CheckResult{
			Name:   "boundary-confinement",
			Pass:   false,
			Margin: -1,
			Detail: "boundary zone required but no confinement provided",
		}
	}
	provided := ash / (spacing * bc)
	margin := provided/req.AshOverSBc - 1
	pass := margin >= 0 && spacing <= req.MaxSpacing
	detail := fmt.Sprintf("Ash/(s·bc) %.4f vs %.4f, s=%.0f mm (limit %.0f mm)",
		provided, req.AshOverSBc, spacing, req.MaxSpacing)
	if spacing > req.MaxSpacing {
		margin = math.Min(margin, req.MaxSpacing/spacing-1)
	}
	return model.CheckResult{Name: "boundary-confinement", Pass: pass, Margin: margin, Detail: detail}
}
