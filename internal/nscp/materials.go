package nscp

import "math"

// NSCP 2015 Material Constants

const (
	// Beta1 factors for equivalent rectangular stress block
	// Section 422.2.2.4.3
	Beta1Max = 0.85 // for f'c <= 28 MPa
	Beta1Min = 0.65 // minimum value

	// Strain limits
	EpsilonCU = 0.003 // Ultimate concrete strain (Section 422.2.2.1)

	// Strength reduction factors (Section 421.2)
	PhiFlexure       = 0.90 // Tension-controlled sections
	PhiShear         = 0.75 // Shear and torsion
	PhiCompression   = 0.65 // Compression-controlled (tied)
	PhiCompressionSp = 0.75 // Compression-controlled (spiral)

	// Axial cap factors on Po (Section 422.4.2)
	AxialCapTied   = 0.80
	AxialCapSpiral = 0.85

	// Modulus of elasticity for steel (Section 420.2.2)
	Es = 200000.0 // MPa
)

// ConcreteType selects the lightweight modification factor λ.
type ConcreteType string

const (
	NormalWeight    ConcreteType = "normal"
	SandLightweight ConcreteType = "sand-lightweight"
	AllLightweight  ConcreteType = "all-lightweight"
)

// Lambda returns the lightweight concrete factor λ
// NSCP 2015 Section 419.2.4
func Lambda(ct ConcreteType) float64 {
	switch ct {
	case SandLightweight:
		return 0.85
	case AllLightweight:
		return 0.75
	default:
		return 1.0
	}
}

// Beta1 calculates the factor for equivalent rectangular stress block
// NSCP 2015 Section 422.2.2.4.3
func Beta1(fc float64) float64 {
	if fc <= 28 {
		return Beta1Max
	}
	// β1 = 0.85 - 0.05(f'c - 28)/7 for f'c > 28 MPa
	beta1 := Beta1Max - 0.05*(fc-28)/7
	return math.Max(beta1, Beta1Min)
}

// Ec calculates the modulus of elasticity of normal-weight concrete
// NSCP 2015 Section 419.2.2.1: Ec = 4700·√f'c (MPa)
func Ec(fc float64) float64 {
	return 4700 * math.Sqrt(fc)
}

// Phi calculates the strength reduction factor based on the extreme
// tension steel strain.
// NSCP 2015 Table 421.2.2
func Phi(epsilonT, fy float64) float64 {
	return PhiAxialFlexure(epsilonT, fy, false)
}

// PhiAxialFlexure is the strain-interpolated φ for combined axial and
// flexure, with the spiral column variant.
func PhiAxialFlexure(epsilonT, fy float64, spiral bool) float64 {
	epsilonTY := fy / Es
	phiCC := PhiCompression
	if spiral {
		phiCC = PhiCompressionSp
	}

	if epsilonT >= epsilonTY+0.003 {
		// Tension-controlled
		return PhiFlexure
	}
	if epsilonT <= epsilonTY {
		// Compression-controlled
		return phiCC
	}
	// Transition zone
	return phiCC + (PhiFlexure-phiCC)*(epsilonT-epsilonTY)/0.003
}

// SizeEffectFactor is λs, the size effect modification factor for
// one-way shear without minimum stirrups.
// Section 422.5.5.1.3: λs = √(2/(1+d/254)) ≤ 1, d in mm
func SizeEffectFactor(d float64) float64 {
	return math.Min(1.0, math.Sqrt(2/(1+d/254)))
}

// SteelStress returns the signed stress in a reinforcement layer for a
// given strain under the elastic-perfectly-plastic law.
// Tension is positive.
func SteelStress(strain, fy float64) float64 {
	fs := Es * strain
	if fs > fy {
		return fy
	}
	if fs < -fy {
		return -fy
	}
	return fs
}
