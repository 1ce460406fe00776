package seismic

import (
	"fmt"
	"math"

	"github.com/alexiusacademia/gorcv/internal/model"
	"github.com/alexiusacademia/gorcv/internal/nscp"
)

// CouplingRegime is the detailing regime of a coupling beam, decided
// by its clear-span-to-depth ratio.
type CouplingRegime string

const (
	RegimeConventional CouplingRegime = "conventional" // ln/h >= 4
	RegimeTransition   CouplingRegime = "transition"   // 2 <= ln/h < 4
	RegimeDiagonal     CouplingRegime = "diagonal"     // ln/h < 2 with high shear
)

// ClassifyCoupling returns the regime for a coupling beam. In the
// transition band either detailing is permitted; diagonal becomes
// mandatory below ln/h = 2 only when the shear demand is high
// (Vu > 0.33·λ·√f'c·Acw).
func ClassifyCoupling(ln, h, vu, fc, lambda, acw float64) (CouplingRegime, error) {
	if ln <= 0 || h <= 0 {
		return "", model.Inputf("coupling beam requires positive ln and h (ln=%.1f h=%.1f)", ln, h)
	}
	ratio := ln / h
	if ratio >= nscp.CouplingConventionalLimit {
		return RegimeConventional, nil
	}
	if ratio < nscp.CouplingDiagonalLimit {
		highShear := math.Abs(vu)*1e3 > 0.33*lambda*math.Sqrt(fc)*acw
		if highShear {
			return RegimeDiagonal, nil
		}
		return RegimeTransition, nil
	}
	return RegimeTransition, nil
}

// DiagonalResult sizes one diagonal bar group of a diagonally
// reinforced coupling beam.
type DiagonalResult struct {
	Regime CouplingRegime

	Alpha   float64 // diagonal inclination (rad)
	AvdReq  float64 // required area per diagonal group (mm²)
	Bars    int     // bars per group at the given diameter
	VnLimit float64 // 0.83·√f'c·Acw ceiling (kN)

	Check model.CheckResult
}

// SizeDiagonals computes the diagonal group area from the factored
// shear: Vn = 2·Avd·fy·sin(α) >= Vu/φ. The inclination follows from
// the clear span and the depth between group centroids.
func SizeDiagonals(ln, h, cover, vu, fc, fy, acw, barDia float64) (DiagonalResult, error) {
	if ln <= 0 || h <= 0 || 2*cover >= h {
		return DiagonalResult{}, model.Inputf("diagonal sizing requires positive ln and h > 2·cover")
	}
	if fy <= 0 || fc <= 0 {
		return DiagonalResult{}, &model.MaterialError{Msg: "diagonal sizing requires positive fy and f'c"}
	}

	res := DiagonalResult{Regime: RegimeDiagonal}
	res.Alpha = math.Atan2(h-2*cover, ln)
	sin := math.Sin(res.Alpha)
	if sin <= 0 {
		return DiagonalResult{}, model.Inputf("degenerate diagonal geometry (ln=%.1f h=%.1f)", ln, h)
	}

	vuN := math.Abs(vu) * 1e3
	res.AvdReq = vuN / (2 * nscp.PhiShear * fy * sin)
	if barDia > 0 {
		res.Bars = int(math.Ceil(res.AvdReq / nscp.BarArea(barDia)))
		// Diagonal groups are detailed with at least four bars.
		if res.Bars < 4 {
			res.Bars = 4
		}
	}

	// Capacity ceiling on diagonally reinforced beams.
	res.VnLimit = 0.83 * math.Sqrt(fc) * acw / 1e3
	vn := 2 * res.AvdReq * fy * sin / 1e3
	pass := vn <= res.VnLimit || res.VnLimit == 0
	margin := 1.0
	if res.VnLimit > 0 {
		margin = res.VnLimit/vn - 1
		pass = margin >= 0
	}
	res.Check = model.CheckResult{
		Name:   "coupling-diagonal",
		Pass:   pass,
		Margin: margin,
		Detail: fmt.Sprintf("Avd=%.0f mm² per group at α=%.1f°", res.AvdReq, res.Alpha*180/math.Pi),
	}
	return res, nil
}
