package slenderness

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/gorcv/internal/model"
	"github.com/alexiusacademia/gorcv/internal/nscp"
)

func stockyInput() Input {
	return Input{
		Pu:     100,
		M1:     -50,
		M2:     50,
		Lu:     2000,
		H:      400,
		B:      400,
		K:      1.0,
		Braced: true,
		Ec:     nscp.Ec(28),
	}
}

func TestMagnifyBelowLimitIsIdentity(t *testing.T) {
	res, err := Magnify(stockyInput())
	require.NoError(t, err)

	// k·lu/r = 2000/120 = 16.7, below the braced limit of 22 for
	// single curvature.
	assert.InDelta(t, 16.67, res.SlendernessRatio, 0.01)
	assert.InDelta(t, 22.0, res.Limit, 1e-9)
	assert.False(t, res.Slender)
	assert.Equal(t, 1.0, res.Delta)
	assert.Equal(t, 50.0, res.Mc)
}

func TestMagnifyUnbracedLimit(t *testing.T) {
	in := stockyInput()
	in.Braced = false
	res, err := Magnify(in)
	require.NoError(t, err)
	assert.InDelta(t, UnbracedLimit, res.Limit, 1e-9)
}

func TestMagnifyDoubleCurvatureRaisesLimit(t *testing.T) {
	in := stockyInput()
	in.M1 = 50 // same sign: double curvature
	res, err := Magnify(in)
	require.NoError(t, err)
	assert.InDelta(t, 40.0, res.Limit, 1e-9) // min(34+12, 40)
}

func TestMagnifySlenderColumn(t *testing.T) {
	in := Input{
		Pu:     500,
		M1:     -80,
		M2:     80,
		Lu:     6000,
		H:      300,
		B:      300,
		K:      1.0,
		Braced: true,
		Ec:     nscp.Ec(28),
	}
	res, err := Magnify(in)
	require.NoError(t, err)

	assert.True(t, res.Slender)
	assert.InDelta(t, 1.0, res.Cm, 1e-9) // single curvature
	assert.Greater(t, res.Pc, in.Pu/0.75)
	assert.Greater(t, res.Delta, 1.0)
	assert.InDelta(t, res.Delta*80, res.Mc, 1e-6)
}

func TestMagnifyMinimumMoment(t *testing.T) {
	in := stockyInput()
	in.Pu = 2000
	in.M2 = 1 // below the minimum
	in.M1 = -1
	res, err := Magnify(in)
	require.NoError(t, err)

	// M2,min = Pu·(0.6 + 0.03·h) = 2000·12.6 kN·mm = 25.2 kN·m
	assert.InDelta(t, 25.2, res.M2Min, 1e-9)
	assert.InDelta(t, 25.2, res.Mc, 1e-9)
}

func TestMagnifyInstability(t *testing.T) {
	in := Input{
		Pu:     2e6, // far beyond any plausible Pc
		M1:     -80,
		M2:     80,
		Lu:     8000,
		H:      300,
		B:      300,
		K:      1.0,
		Braced: true,
		Ec:     nscp.Ec(28),
	}
	_, err := Magnify(in)
	require.Error(t, err)
	var ce *model.ConvergenceError
	assert.ErrorAs(t, err, &ce)
}

func TestMagnifyRejectsBadInput(t *testing.T) {
	in := stockyInput()
	in.Lu = 0
	_, err := Magnify(in)
	require.Error(t, err)
	var ie *model.InputError
	assert.ErrorAs(t, err, &ie)
}
