package nscp

import "math"

// Philippine deformed bar sizes (mm) in ascending order.
// Used by the proposal search when stepping reinforcement up.
var BarSizes = []float64{10, 12, 16, 20, 25, 28, 32, 36}

// BarArea returns the nominal cross-sectional area (mm²) of a deformed
// bar of the given diameter (mm).
func BarArea(db float64) float64 {
	return math.Pi / 4 * db * db
}

// NextBarSize returns the next larger standard bar diameter, or 0 when
// db is already the largest standard size.
func NextBarSize(db float64) float64 {
	for _, size := range BarSizes {
		if size > db {
			return size
		}
	}
	return 0
}
