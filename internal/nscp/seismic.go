package nscp

import "math"

// Seismic design category. Special provisions of Section 418 apply for
// categories D through F.
type SeismicCategory string

const (
	SDCA SeismicCategory = "A"
	SDCB SeismicCategory = "B"
	SDCC SeismicCategory = "C"
	SDCD SeismicCategory = "D"
	SDCE SeismicCategory = "E"
	SDCF SeismicCategory = "F"
)

// RequiresSpecialProvisions reports whether the Section 418 special
// seismic provisions are mandatory for the category.
func (c SeismicCategory) RequiresSpecialProvisions() bool {
	switch c {
	case SDCD, SDCE, SDCF:
		return true
	}
	return false
}

// Boundary element thresholds, Section 418.10.6
const (
	// Stress-based method: boundary elements required above 0.2·f'c,
	// may be discontinued below 0.15·f'c.
	BoundaryStressTrigger = 0.20
	BoundaryStressRelease = 0.15

	// Displacement-based method floor on the design drift ratio.
	MinDriftRatio = 0.005

	// Confinement: Ash/(s·bc) >= 0.09·f'c/fyt for rectilinear hoops.
	ConfinementCoefficient = 0.09
)

// Coupling beam regime thresholds on ln/h, Section 418.10.7
const (
	CouplingDiagonalLimit     = 2.0 // below: diagonal reinforcement mandatory when shear is high
	CouplingConventionalLimit = 4.0 // at or above: conventional detailing
)

// WallOverstrength returns Ωv, the shear overstrength factor for the
// amplified design shear Ve = Ωv·ωv·Vu (Section 418.10.3).
// hwlw is the total wall height to length ratio.
func WallOverstrength(hwlw float64) float64 {
	if hwlw < 1.5 {
		return 1.0
	}
	return 1.5
}

// DynamicAmplification returns ωv for a wall with ns stories
// (Section 418.10.3.1.3). Unity for squat walls, capped at 1.8.
func DynamicAmplification(hwlw float64, stories int) float64 {
	if hwlw < 2.0 {
		return 1.0
	}
	ns := float64(stories)
	var omega float64
	if ns <= 6 {
		omega = 0.9 + ns/10
	} else {
		omega = 1.3 + ns/30
	}
	return math.Min(omega, 1.8)
}
