// Package shear computes nominal one-way shear capacity, the
// demand/capacity ratio per direction, and the biaxial interaction
// check.
package shear

import (
	"math"

	"github.com/alexiusacademia/gorcv/internal/model"
	"github.com/alexiusacademia/gorcv/internal/nscp"
)

// Capacity coefficients, Section 422.5 (metric, MPa·mm units).
const (
	vcBase         = 0.17 // with at least minimum stirrups
	vcNoStirrups   = 0.66 // ρw^(1/3) expression without minimum stirrups
	vcUpperCoeff   = 0.42 // cap on the concrete contribution
	vsUpperCoeff   = 0.66 // cap on the steel contribution (and on Vn − Vc)
	axialDivisor   = 6.0  // Nu/(6·Ag) axial stress term
	axialStressCap = 0.05 // axial term capped at 0.05·f'c
)

// Biaxial interaction thresholds (§4.4): directions interact only when
// both utilizations exceed half, and then the sum must stay below 1.5.
const (
	BiaxialTrigger = 0.5
	BiaxialLimit   = 1.5
)

// Input describes one direction of shear on a rectangular section.
// Forces kN, dimensions mm, stresses MPa.
type Input struct {
	Vu float64 // factored shear (kN)
	Nu float64 // factored axial load (kN), compression positive

	Bw float64 // web width (mm)
	D  float64 // effective depth (mm)
	Ag float64 // gross area (mm²)

	RhoW float64 // longitudinal reinforcement ratio As/(bw·d)

	Av    float64 // transverse steel area per set (mm²)
	S     float64 // stirrup spacing (mm)
	Alpha float64 // stirrup inclination (degrees), 90 = perpendicular

	Fc     float64 // MPa
	Fyt    float64 // MPa
	Lambda float64 // lightweight factor
}

// Result is the one-direction capacity breakdown.
type Result struct {
	Vc float64 // concrete contribution (kN)
	Vs float64 // steel contribution (kN)
	Vn float64 // nominal capacity (kN)

	PhiVn       float64 // reduced capacity (kN)
	Utilization float64 // Vu/(φVn)

	LambdaS      float64 // size effect factor applied (1 when stirrups present)
	MinStirrups  bool    // at least minimum transverse reinforcement present
	NetTension   bool    // axial tension drove Vc to its floor
	ExceedsVsCap bool    // section too small: Vs demand beyond the cap
}

// Verify computes the capacity for one direction.
func Verify(in Input) (Result, error) {
	if in.Bw <= 0 || in.D <= 0 || in.Ag <= 0 {
		return Result{}, model.Inputf("shear requires positive section (bw=%.1f d=%.1f ag=%.1f)", in.Bw, in.D, in.Ag)
	}
	if in.Fc <= 0 || in.Fyt <= 0 {
		return Result{}, &model.MaterialError{Msg: "shear requires positive f'c and fyt"}
	}
	lambda := in.Lambda
	if lambda <= 0 {
		lambda = 1.0
	}

	var res Result
	sqrtFc := math.Sqrt(in.Fc)

	// Axial stress term Nu/(6·Ag), capped, in MPa. Nu in kN → N.
	axial := in.Nu * 1e3 / (axialDivisor * in.Ag)
	if limit := axialStressCap * in.Fc; axial > limit {
		axial = limit
	}

	res.MinStirrups = in.Av > 0 && in.S > 0 && hasMinimumStirrups(in)

	// Concrete contribution, Section 422.5.5.1.
	var vc float64
	if res.MinStirrups {
		res.LambdaS = 1.0
		vc = (vcBase*lambda*sqrtFc + axial) * in.Bw * in.D
	} else {
		res.LambdaS = nscp.SizeEffectFactor(in.D)
		rho := math.Max(in.RhoW, 0)
		vc = (vcNoStirrups*res.LambdaS*lambda*math.Cbrt(rho)*sqrtFc + axial) * in.Bw * in.D
	}
	// Cap and floor. Net tension must never produce a negative Vc.
	vcCap := vcUpperCoeff * lambda * sqrtFc * in.Bw * in.D
	if vc > vcCap {
		vc = vcCap
	}
	if vc < 0 {
		vc = 0
		res.NetTension = true
	}
	res.Vc = vc / 1e3 // N → kN

	// Steel contribution Av·fyt·d/s, with the inclined variant.
	if in.Av > 0 && in.S > 0 {
		alpha := in.Alpha
		if alpha == 0 {
			alpha = 90
		}
		rad := alpha * math.Pi / 180
		vs := in.Av * in.Fyt * in.D * (math.Sin(rad) + math.Cos(rad)) / in.S
		vsCap := vsUpperCoeff * sqrtFc * in.Bw * in.D
		if vs > vsCap {
			vs = vsCap
			res.ExceedsVsCap = true
		}
		res.Vs = vs / 1e3
	}

	res.Vn = res.Vc + res.Vs
	res.PhiVn = nscp.PhiShear * res.Vn
	if res.PhiVn > 0 {
		res.Utilization = math.Abs(in.Vu) / res.PhiVn
	} else if in.Vu != 0 {
		res.Utilization = math.Inf(1)
	}
	return res, nil
}

// hasMinimumStirrups checks Av/s against the code minimum
// Av,min/s = max(0.062·√f'c, 0.35)·bw/fyt (Section 409.6.3.3).
func hasMinimumStirrups(in Input) bool {
	avMinPerS := math.Max(0.062*math.Sqrt(in.Fc), 0.35) * in.Bw / in.Fyt
	return in.Av/in.S >= avMinPerS
}

// BiaxialResult combines the two direction checks.
type BiaxialResult struct {
	Dir2, Dir3 Result

	Combined    float64 // sum of utilizations when interaction applies
	Interaction bool    // both directions above the trigger
	DCR         float64 // governing demand/capacity ratio
	Pass        bool
}

// VerifyBiaxial runs both directions and applies the interaction rule:
// independent checks when either utilization is at or below 0.5,
// otherwise the summed utilization must not exceed 1.5.
func VerifyBiaxial(in2, in3 Input) (BiaxialResult, error) {
	r2, err := Verify(in2)
	if err != nil {
		return BiaxialResult{}, err
	}
	r3, err := Verify(in3)
	if err != nil {
		return BiaxialResult{}, err
	}

	res := BiaxialResult{Dir2: r2, Dir3: r3}
	res.DCR = math.Max(r2.Utilization, r3.Utilization)
	res.Pass = res.DCR <= 1.0

	if r2.Utilization > BiaxialTrigger && r3.Utilization > BiaxialTrigger {
		res.Interaction = true
		res.Combined = r2.Utilization + r3.Utilization
		if res.Combined > BiaxialLimit {
			res.Pass = false
			// Report the interaction overage as the governing ratio.
			res.DCR = math.Max(res.DCR, res.Combined/BiaxialLimit)
		}
	}
	return res, nil
}
