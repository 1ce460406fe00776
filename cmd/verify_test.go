package cmd

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFmtRatio(t *testing.T) {
	assert.Equal(t, "1.42", fmtRatio(1.416))
	assert.Equal(t, "0.00", fmtRatio(0))

	// Shear-only types carry no flexure SF; zero-capacity directions
	// report an infinite utilization. Neither belongs in the table as a
	// number.
	assert.Equal(t, "-", fmtRatio(math.Inf(1)))
	assert.Equal(t, "-", fmtRatio(math.Inf(-1)))
}
