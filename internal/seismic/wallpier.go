package seismic

import (
	"fmt"
	"math"

	"github.com/alexiusacademia/gorcv/internal/model"
)

// WallPierInput drives the wall-pier provisions (Section 418.10.8):
// amplified shear design plus column-like transverse detailing over
// the pier height.
type WallPierInput struct {
	Lw, Tw, Hw float64

	Vu float64 // factored shear at the critical section (kN)
	Ve float64 // amplified design shear (kN); falls back to Vu when zero

	PhiVn float64 // reduced shear capacity from the shear engine (kN)

	StirrupSpacing float64 // provided transverse spacing (mm)
	BarDia         float64 // longitudinal bar diameter (mm)

	Fc float64
}

// WallPierResult carries the two independent sub-checks.
type WallPierResult struct {
	ShearCheck      model.CheckResult
	TransverseCheck model.CheckResult
	MaxSpacing      float64 // transverse spacing limit (mm)
}

// CheckWallPier verifies a squat wall segment classified as a pier.
// The design shear is the amplified shear, and transverse
// reinforcement must run at column-type spacing over the full pier.
func CheckWallPier(in WallPierInput) (WallPierResult, error) {
	if in.Lw <= 0 || in.Tw <= 0 || in.Hw <= 0 {
		return WallPierResult{}, model.Inputf("wall pier requires positive dimensions")
	}

	ve := in.Ve
	if ve == 0 {
		ve = math.Abs(in.Vu)
	}

	var res WallPierResult

	// Shear sub-check against the amplified demand.
	if in.PhiVn > 0 {
		util := ve / in.PhiVn
		res.ShearCheck = model.CheckResult{
			Name:   "wall-pier-shear",
			Pass:   util <= 1.0,
			Margin: 1 - util,
			Detail: fmt.Sprintf("Ve=%.1f kN vs φVn=%.1f kN", ve, in.PhiVn),
		}
	} else {
		res.ShearCheck = model.CheckResult{
			Name:   "wall-pier-shear",
			Pass:   ve == 0,
			Margin: -1,
			Detail: "no shear capacity available",
		}
	}

	// Transverse detailing: spacing at most the least of 6·db, tw/2
	// and 150 mm over the pier height.
	res.MaxSpacing = math.Min(in.Tw/2, 150)
	if in.BarDia > 0 {
		res.MaxSpacing = math.Min(res.MaxSpacing, 6*in.BarDia)
	}
	if in.StirrupSpacing > 0 {
		margin := res.MaxSpacing/in.StirrupSpacing - 1
		res.TransverseCheck = model.CheckResult{
			Name:   "wall-pier-transverse",
			Pass:   margin >= 0,
			Margin: margin,
			Detail: fmt.Sprintf("s=%.0f mm vs limit %.0f mm", in.StirrupSpacing, res.MaxSpacing),
		}
	} else {
		res.TransverseCheck = model.CheckResult{
			Name:   "wall-pier-transverse",
			Pass:   false,
			Margin: -1,
			Detail: "no transverse reinforcement provided",
		}
	}
	return res, nil
}
