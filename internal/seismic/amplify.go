package seismic

import (
	"math"

	"github.com/alexiusacademia/gorcv/internal/nscp"
)

// Amplification is the shear amplification applied at the critical
// section of a wall: Ve = Ωv·ωv·Vu, with the product capped at 3.
type Amplification struct {
	OmegaV float64 // overstrength factor Ωv
	OmegaD float64 // dynamic amplification ωv
	Ve     float64 // amplified design shear (kN)
}

const amplificationCap = 3.0

// AmplifyShear scales the factored shear demand for the special wall
// provisions. Category and geometry drive the table lookup.
func AmplifyShear(vu, hw, lw float64, stories int) Amplification {
	hwlw := 0.0
	if lw > 0 {
		hwlw = hw / lw
	}
	a := Amplification{
		OmegaV: nscp.WallOverstrength(hwlw),
		OmegaD: nscp.DynamicAmplification(hwlw, stories),
	}
	product := math.Min(a.OmegaV*a.OmegaD, amplificationCap)
	a.Ve = product * math.Abs(vu)
	return a
}
