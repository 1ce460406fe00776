package interaction

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/gorcv/internal/model"
	"github.com/alexiusacademia/gorcv/internal/nscp"
)

// testColumn is a 400x400 tied column with 3-20mm top and bottom.
func testColumn() *model.Element {
	return &model.Element{
		Name: "C-1",
		Lw:   400,
		Tw:   400,
		Hw:   3000,
		Material: &model.Material{
			Fc: 28,
			Fy: 415,
		},
		Reinforcement: model.ReinforcementLayout{
			Layers: []model.SteelLayer{
				{D: 65, Dia: 20, Bars: 3},
				{D: 335, Dia: 20, Bars: 3},
			},
			StirrupDia:     10,
			StirrupLegs:    2,
			StirrupSpacing: 150,
			Cover:          65,
		},
	}
}

func TestBuildAnchors(t *testing.T) {
	e := testColumn()
	d, err := Build(e, model.Axis3)
	require.NoError(t, err)
	require.Greater(t, len(d.Points), 50)

	ast := e.Reinforcement.Ast()
	ag := e.Ag()

	// Pure compression: Po = 0.85·f'c·(Ag−Ast) + fy·Ast
	po := (0.85*28*(ag-ast) + 415*ast) / 1e3
	first := d.Points[0]
	assert.InDelta(t, po, first.Pn, po*1e-9)
	assert.Equal(t, 0.0, first.Mn)
	// Reduced axial capacity is capped at 0.80·φ·Po for tied columns.
	assert.InDelta(t, nscp.PhiCompression*nscp.AxialCapTied*po, first.PhiPn, po*1e-9)

	// Pure tension: -fy·Ast
	last := d.Points[len(d.Points)-1]
	assert.InDelta(t, -415*ast/1e3, last.Pn, 1e-6)
	assert.InDelta(t, nscp.PhiFlexure, last.Phi, 1e-9)
}

func TestBuildMonotonicPn(t *testing.T) {
	d, err := Build(testColumn(), model.Axis3)
	require.NoError(t, err)

	for i := 1; i < len(d.Points); i++ {
		assert.LessOrEqual(t, d.Points[i].Pn, d.Points[i-1].Pn+1e-9,
			"Pn must not increase between points %d and %d (c=%.2f → c=%.2f)",
			i-1, i, d.Points[i-1].C, d.Points[i].C)
	}
}

func TestBuildCapsReducedAxial(t *testing.T) {
	d, err := Build(testColumn(), model.Axis3)
	require.NoError(t, err)

	pmax := d.Points[0].PhiPn
	for _, p := range d.Points {
		assert.LessOrEqual(t, p.PhiPn, pmax+1e-9)
	}
}

func TestBuildMinorAxis(t *testing.T) {
	e := testColumn()
	e.Tw = 250 // rectangular now
	d, err := Build(e, model.Axis2)
	require.NoError(t, err)

	// The minor-axis envelope is weaker in moment but the pure axial
	// anchors match the major axis.
	d3, err := Build(e, model.Axis3)
	require.NoError(t, err)
	assert.InDelta(t, d3.Points[0].Pn, d.Points[0].Pn, 1e-6)

	max2, max3 := 0.0, 0.0
	for _, p := range d.Points {
		max2 = math.Max(max2, p.PhiMn)
	}
	for _, p := range d3.Points {
		max3 = math.Max(max3, p.PhiMn)
	}
	assert.Less(t, max2, max3)
}

func TestSafetyFactorOnCurve(t *testing.T) {
	d, err := Build(testColumn(), model.Axis3)
	require.NoError(t, err)

	// A demand placed exactly on a sampled capacity point must come
	// back with SF = 1.
	for _, i := range []int{20, 50, 80} {
		p := d.Points[i]
		if p.PhiMn <= 0 {
			continue
		}
		sf, err := SafetyFactor(d, p.PhiPn, p.PhiMn)
		require.NoError(t, err)
		assert.InDelta(t, 1.0, sf, 1e-6, "point %d (φPn=%.1f φMn=%.1f)", i, p.PhiPn, p.PhiMn)
	}
}

func TestSafetyFactorScales(t *testing.T) {
	d, err := Build(testColumn(), model.Axis3)
	require.NoError(t, err)

	p := d.Points[60]
	require.Greater(t, p.PhiMn, 0.0)

	// Half the demand doubles the safety factor.
	sf, err := SafetyFactor(d, p.PhiPn/2, p.PhiMn/2)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, sf, 1e-6)

	// Demand outside the envelope fails with SF < 1.
	sf, err = SafetyFactor(d, p.PhiPn*1.5, p.PhiMn*1.5)
	require.NoError(t, err)
	assert.InDelta(t, 1/1.5, sf, 1e-6)
}

func TestSafetyFactorPureAxial(t *testing.T) {
	d, err := Build(testColumn(), model.Axis3)
	require.NoError(t, err)

	pmax := d.Points[0].PhiPn
	sf, err := SafetyFactor(d, pmax/2, 0)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, sf, 1e-9)

	// Pure tension demand.
	pt := d.Points[len(d.Points)-1].PhiPn
	sf, err = SafetyFactor(d, pt/4, 0)
	require.NoError(t, err)
	assert.InDelta(t, 4.0, sf, 1e-9)

	sf, err = SafetyFactor(d, 0, 0)
	require.NoError(t, err)
	assert.True(t, math.IsInf(sf, 1))
}

func TestNeutralAxisAt(t *testing.T) {
	d, err := Build(testColumn(), model.Axis3)
	require.NoError(t, err)

	// Interpolated c must land between the bracketing sample depths
	// and shrink as the axial load drops.
	c1, err := NeutralAxisAt(d, 2000)
	require.NoError(t, err)
	c2, err := NeutralAxisAt(d, 500)
	require.NoError(t, err)
	assert.Greater(t, c1, c2)
	assert.Greater(t, c2, 0.0)
}

func TestBuildRejectsInvalidElement(t *testing.T) {
	e := testColumn()
	e.Lw = -1
	_, err := Build(e, model.Axis3)
	require.Error(t, err)
	var ie *model.InputError
	assert.ErrorAs(t, err, &ie)

	e = testColumn()
	e.Material.Fc = 0
	_, err = Build(e, model.Axis3)
	require.Error(t, err)
	var me *model.MaterialError
	assert.ErrorAs(t, err, &me)
}
