// Package slenderness decides whether second-order effects may be
// ignored and, when they may not, magnifies the first-order design
// moment per the moment-magnification procedure.
package slenderness

import (
	"math"

	"github.com/alexiusacademia/gorcv/internal/model"
)

// Slenderness limits, Section 406.2.5
const (
	UnbracedLimit   = 22.0
	BracedLimitMax  = 40.0
	RadiusFactor    = 0.3  // r = 0.3·h for rectangular sections
	StiffnessFactor = 0.4  // (EI)eff = 0.4·Ec·Ig / (1+βdns)
	BucklingFactor  = 0.75 // stiffness reduction on Pc in the magnifier
)

// Input carries everything the magnification procedure consumes.
// Moments in kN·m, forces in kN, lengths in mm.
type Input struct {
	Pu float64 // factored axial load (kN), compression positive
	M1 float64 // smaller factored end moment (kN·m), signed
	M2 float64 // larger factored end moment (kN·m)

	Lu float64 // unsupported length (mm)
	H  float64 // section dimension in the plane of bending (mm)
	B  float64 // section dimension parallel to the bending axis (mm)

	K      float64 // effective length factor
	Braced bool
	// Transverse loading between supports forces Cm = 1.
	TransverseLoad bool
	// Sustained-load ratio βdns; 0 when not tracked.
	BetaDns float64

	Ec float64 // concrete modulus (MPa)
}

// Result reports the screening and magnification outcome.
type Result struct {
	SlendernessRatio float64 // k·lu/r
	Limit            float64 // applicable ignore-below limit
	Slender          bool

	Cm    float64
	Pc    float64 // critical buckling load (kN)
	Delta float64 // magnification factor, >= 1
	M2Min float64 // minimum design moment (kN·m)
	Mc    float64 // magnified design moment (kN·m)
}

// Magnify runs the screening and, for slender members, computes the
// magnified moment Mc. The returned moment replaces the first-order M2
// as the flexural demand.
func Magnify(in Input) (Result, error) {
	if in.Lu <= 0 || in.H <= 0 || in.B <= 0 {
		return Result{}, model.Inputf("slenderness requires positive dimensions (lu=%.1f h=%.1f b=%.1f)", in.Lu, in.H, in.B)
	}
	k := in.K
	if k <= 0 {
		k = 1.0
	}

	r := RadiusFactor * in.H
	res := Result{
		SlendernessRatio: k * in.Lu / r,
		Delta:            1.0,
		Mc:               in.M2,
	}

	// Minimum design moment applies regardless of slenderness:
	// M2,min = Pu·(0.6 + 0.03·h), h in consistent length units.
	if in.Pu > 0 {
		res.M2Min = in.Pu * (0.6 + 0.03*in.H) / 1e3 // kN·mm → kN·m
		if math.Abs(res.Mc) < res.M2Min {
			res.Mc = res.M2Min
		}
	}

	// Screening: slenderness may be ignored below the limit.
	ratio := endMomentRatio(in.M1, in.M2)
	if in.Braced {
		res.Limit = math.Min(34+12*ratio, BracedLimitMax)
	} else {
		res.Limit = UnbracedLimit
	}
	if res.SlendernessRatio < res.Limit {
		return res, nil
	}
	res.Slender = true

	res.Cm = 1.0
	if !in.TransverseLoad {
		res.Cm = 0.6 - 0.4*ratio
		if res.Cm < 0.4 {
			res.Cm = 0.4
		}
	}

	// (EI)eff = 0.4·Ec·Ig/(1+βdns), Ig of the gross rectangle (mm⁴).
	ig := in.B * in.H * in.H * in.H / 12
	eiEff := StiffnessFactor * in.Ec * ig / (1 + in.BetaDns)
	klu := k * in.Lu
	res.Pc = math.Pi * math.Pi * eiEff / (klu * klu) / 1e3 // kN

	if in.Pu >= BucklingFactor*res.Pc {
		return res, &model.ConvergenceError{
			Op:  "slenderness",
			Msg: "Pu exceeds 0.75·Pc, magnifier undefined (instability)",
		}
	}

	res.Delta = res.Cm / (1 - in.Pu/(BucklingFactor*res.Pc))
	if res.Delta < 1.0 {
		res.Delta = 1.0
	}
	res.Mc = res.Delta * math.Max(math.Abs(in.M2), res.M2Min)
	return res, nil
}

// endMomentRatio is M1/M2 with the curvature sign convention: negative
// for single curvature, positive for double curvature. Zero when M2 is
// zero.
func endMomentRatio(m1, m2 float64) float64 {
	if m2 == 0 {
		return 0
	}
	r := m1 / m2
	if r < -1 {
		r = -1
	}
	if r > 1 {
		r = 1
	}
	return r
}
