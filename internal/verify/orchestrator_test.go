package verify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/gorcv/internal/config"
	"github.com/alexiusacademia/gorcv/internal/model"
)

// pfelA51 is the squat pier from the reference core wall: classified
// as a column by geometry despite its wall-like role.
func pfelA51() *model.Element {
	return &model.Element{
		Name: "PFel-A5-1",
		Lw:   640,
		Tw:   260,
		Hw:   3350,
		Material: &model.Material{
			Fc: 28,
			Fy: 415,
		},
		Reinforcement: model.ReinforcementLayout{
			Layers: []model.SteelLayer{
				{D: 65, Dia: 16, Bars: 3},
				{D: 320, Dia: 16, Bars: 2},
				{D: 575, Dia: 16, Bars: 3},
			},
			StirrupDia:     10,
			StirrupLegs:    2,
			StirrupSpacing: 150,
			Cover:          65,
		},
	}
}

func slenderWall() *model.Element {
	return &model.Element{
		Name:    "SW-1",
		Lw:      3000,
		Tw:      300,
		Hw:      12000,
		Stories: 4,
		Material: &model.Material{
			Fc: 28,
			Fy: 415,
		},
		Reinforcement: model.ReinforcementLayout{
			Layers: []model.SteelLayer{
				{D: 75, Dia: 20, Bars: 4},
				{D: 750, Dia: 12, Bars: 2},
				{D: 1500, Dia: 12, Bars: 2},
				{D: 2250, Dia: 12, Bars: 2},
				{D: 2925, Dia: 20, Bars: 4},
			},
			StirrupDia:     12,
			StirrupLegs:    2,
			StirrupSpacing: 200,
			Cover:          75,
		},
	}
}

func nonSeismicConfig() config.Run {
	cfg := config.Default()
	cfg.SeismicCategory = "A"
	return cfg
}

func TestVerifyElementEndToEnd(t *testing.T) {
	o := New(nonSeismicConfig())
	demands := []model.ForceDemand{
		{Combo: "1.2D+1.6L", P: 300, M3: 30, V2: 60, V3: 10},
		{Combo: "0.9D+1.0E", P: 150, M3: 45, V2: 80, V3: 15, Seismic: true},
	}

	res, err := o.VerifyElement(pfelA51(), demands)
	require.NoError(t, err)

	assert.Equal(t, model.TypeColumn, res.Classification.Type)
	assert.Equal(t, "22.5", res.Classification.Section)
	assert.InDelta(t, 2.46, res.Classification.LwTw, 0.005)
	assert.InDelta(t, 5.23, res.Classification.HwLw, 0.005)

	assert.Empty(t, res.Errors)
	assert.Greater(t, res.SF, 0.0)
	assert.Greater(t, res.DCR, 0.0)
	assert.NotEmpty(t, res.GoverningCombo)
	assert.True(t, res.Pass, "modest demands on a healthy section should pass (SF=%.2f DCR=%.2f)", res.SF, res.DCR)
}

func TestVerifyElementFailsOverload(t *testing.T) {
	o := New(nonSeismicConfig())
	demands := []model.ForceDemand{
		{Combo: "U1", P: 500, M3: 900, V2: 2500},
	}
	res, err := o.VerifyElement(pfelA51(), demands)
	require.NoError(t, err)
	assert.False(t, res.Pass)
	assert.Less(t, res.SF, 1.0)
	assert.Equal(t, "U1", res.GoverningCombo)
}

func TestVerifyElementGoverningCombo(t *testing.T) {
	o := New(nonSeismicConfig())
	demands := []model.ForceDemand{
		{Combo: "light", P: 100, M3: 10, V2: 20},
		{Combo: "heavy", P: 400, M3: 120, V2: 200},
	}
	res, err := o.VerifyElement(pfelA51(), demands)
	require.NoError(t, err)
	assert.Equal(t, "heavy", res.GoverningCombo)
}

func TestVerifyElementTracksSFAndDCRCombos(t *testing.T) {
	o := New(nonSeismicConfig())

	// One combination fails in flexure, another fails harder in shear:
	// each must be reported under its own tag.
	demands := []model.ForceDemand{
		{Combo: "flex", P: 500, M3: 400, V2: 30},
		{Combo: "shear", P: 100, M3: 10, V2: 900},
	}
	res, err := o.VerifyElement(pfelA51(), demands)
	require.NoError(t, err)

	assert.Less(t, res.SF, 1.0)
	assert.Equal(t, "flex", res.SFCombo)
	assert.Greater(t, res.DCR, 1.0)
	assert.Equal(t, "shear", res.GoverningCombo)
}

func TestVerifyElementDirectionAngle(t *testing.T) {
	demands := []model.ForceDemand{
		{Combo: "U1", P: 300, M3: 20, V2: 340},
	}

	base, err := New(nonSeismicConfig()).VerifyElement(pfelA51(), demands)
	require.NoError(t, err)

	// At a quarter turn the in-plane shear resolves entirely out of
	// plane, where the section is much shallower.
	cfg := nonSeismicConfig()
	cfg.DirectionAngle = 90
	rot, err := New(cfg).VerifyElement(pfelA51(), demands)
	require.NoError(t, err)
	assert.NotEqual(t, base.DCR, rot.DCR)
	assert.Greater(t, rot.DCR, base.DCR)

	cfg.DirectionAngle = 0
	same, err := New(cfg).VerifyElement(pfelA51(), demands)
	require.NoError(t, err)
	assert.Equal(t, base.SF, same.SF)
	assert.Equal(t, base.DCR, same.DCR)
}

func TestVerifyWallRunsSeismicChecks(t *testing.T) {
	cfg := config.Default()
	cfg.SeismicCategory = "D"
	cfg.DriftRatio = 0.008
	o := New(cfg)

	demands := []model.ForceDemand{
		{Combo: "1.2D+1.0E", P: 1500, M3: 2000, V2: 400, Seismic: true},
	}
	res, err := o.VerifyElement(slenderWall(), demands)
	require.NoError(t, err)

	assert.Equal(t, model.TypeWall, res.Classification.Type)
	require.NotEmpty(t, res.SeismicChecks)

	names := make(map[string]bool)
	for _, c := range res.SeismicChecks {
		names[c.Name] = true
	}
	assert.True(t, names["boundary-element"])
}

func TestVerifyWallPierChecks(t *testing.T) {
	cfg := config.Default()
	cfg.SeismicCategory = "D"
	o := New(cfg)

	pier := slenderWall()
	pier.Name = "WP-1"
	pier.Hw = 4000 // hw/lw = 1.33: wall pier

	demands := []model.ForceDemand{
		{Combo: "0.9D+1.0E", P: 800, M3: 600, V2: 350, Seismic: true},
	}
	res, err := o.VerifyElement(pier, demands)
	require.NoError(t, err)

	assert.Equal(t, model.TypeWallPier, res.Classification.Type)
	names := make(map[string]bool)
	for _, c := range res.SeismicChecks {
		names[c.Name] = true
	}
	assert.True(t, names["wall-pier-shear"])
	assert.True(t, names["wall-pier-transverse"])
}

func TestVerifySpandrelCoupling(t *testing.T) {
	cfg := config.Default()
	cfg.SeismicCategory = "D"
	o := New(cfg)

	cb := &model.Element{
		Name:     "CB-1",
		Lw:       600, // beam depth
		Tw:       300,
		Hw:       600,
		Ln:       900, // ln/h = 1.5: diagonal candidate
		Material: &model.Material{Fc: 28, Fy: 415},
		Reinforcement: model.ReinforcementLayout{
			Layers: []model.SteelLayer{
				{D: 50, Dia: 20, Bars: 2},
				{D: 550, Dia: 20, Bars: 2},
			},
			StirrupDia:     10,
			StirrupLegs:    2,
			StirrupSpacing: 100,
			Cover:          50,
		},
	}
	demands := []model.ForceDemand{
		{Combo: "1.2D+1.0E", P: 0, V2: 400, Seismic: true},
	}
	res, err := o.VerifyElement(cb, demands)
	require.NoError(t, err)

	assert.Equal(t, model.TypeSpandrel, res.Classification.Type)
	names := make(map[string]bool)
	for _, c := range res.SeismicChecks {
		names[c.Name] = true
	}
	assert.True(t, names["coupling-regime"])
	assert.True(t, names["coupling-diagonal"])
}

func TestVerifyElementInvalidGeometry(t *testing.T) {
	o := New(nonSeismicConfig())
	e := pfelA51()
	e.Tw = -5
	_, err := o.VerifyElement(e, nil)
	require.Error(t, err)
	var ie *model.InputError
	assert.ErrorAs(t, err, &ie)
}

func TestVerifyInstabilityReportedNotFatal(t *testing.T) {
	o := New(nonSeismicConfig())

	// A grossly slender column under crushing axial load: the
	// magnifier is undefined for that combination, but the shear-only
	// part of the other combination still reports.
	e := pfelA51()
	e.Hw = 12000
	demands := []model.ForceDemand{
		{Combo: "crush", P: 60000, M3: 10},
		{Combo: "mild", P: 100, M3: 10, V2: 20},
	}
	res, err := o.VerifyElement(e, demands)
	require.NoError(t, err)

	assert.False(t, res.Pass)
	require.NotEmpty(t, res.Errors)
	assert.Contains(t, res.Errors[0], "crush")
	// The mild combination still produced a capacity ratio.
	assert.Greater(t, res.DCR, 0.0)
}
