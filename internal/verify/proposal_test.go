package verify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/gorcv/internal/model"
)

func TestProposeTightensStirrupsWhenShearGoverns(t *testing.T) {
	o := New(nonSeismicConfig())
	e := pfelA51()
	demands := []model.ForceDemand{
		{Combo: "U1", P: 300, M3: 20, V2: 340},
	}

	base, err := o.VerifyElement(e, demands)
	require.NoError(t, err)
	require.False(t, base.Pass, "fixture must start failing in shear")

	p, err := o.Propose(e, demands)
	require.NoError(t, err)
	require.NotNil(t, p)

	assert.True(t, p.Result.Pass)
	assert.Greater(t, p.Steps, 0)
	assert.Less(t, p.Layout.StirrupSpacing, e.Reinforcement.StirrupSpacing)
	// Longitudinal steel untouched while shear governs.
	assert.Equal(t, e.Reinforcement.Layers, p.Layout.Layers)
}

func TestProposeDeterministic(t *testing.T) {
	o := New(nonSeismicConfig())
	demands := []model.ForceDemand{
		{Combo: "U1", P: 300, M3: 20, V2: 340},
	}

	p1, err := o.Propose(pfelA51(), demands)
	require.NoError(t, err)
	p2, err := o.Propose(pfelA51(), demands)
	require.NoError(t, err)

	require.NotNil(t, p1)
	require.NotNil(t, p2)
	assert.Equal(t, p1.Steps, p2.Steps)
	assert.Equal(t, p1.Layout, p2.Layout)
}

func TestProposeDoesNotMutateInput(t *testing.T) {
	o := New(nonSeismicConfig())
	e := pfelA51()
	demands := []model.ForceDemand{
		{Combo: "U1", P: 300, M3: 20, V2: 340},
	}

	_, err := o.Propose(e, demands)
	require.NoError(t, err)

	assert.Equal(t, 150.0, e.Reinforcement.StirrupSpacing)
	assert.Equal(t, 16.0, e.Reinforcement.Layers[0].Dia)
	assert.Len(t, e.Reinforcement.Layers, 3)
}

func TestProposeAlreadyPassing(t *testing.T) {
	o := New(nonSeismicConfig())
	e := pfelA51()
	demands := []model.ForceDemand{
		{Combo: "U1", P: 200, M3: 20, V2: 50},
	}

	p, err := o.Propose(e, demands)
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, 0, p.Steps)
	assert.Equal(t, e.Reinforcement, p.Layout)
}

func TestProposeNoSolution(t *testing.T) {
	o := New(nonSeismicConfig())
	e := pfelA51()
	// Shear far beyond what the Vs ceiling allows for this section; the
	// ladder exhausts without a passing layout.
	demands := []model.ForceDemand{
		{Combo: "U1", P: 300, M3: 20, V2: 5000},
	}

	p, err := o.Propose(e, demands)
	require.NoError(t, err)
	assert.Nil(t, p)
}

func TestProposeZeroBudget(t *testing.T) {
	cfg := nonSeismicConfig()
	cfg.ProposalBudget = 0
	o := New(cfg)

	_, err := o.Propose(pfelA51(), []model.ForceDemand{{Combo: "U1", V2: 340}})
	require.Error(t, err)
	var ce *model.ConvergenceError
	assert.ErrorAs(t, err, &ce)
}

func TestVerifyBatch(t *testing.T) {
	o := New(nonSeismicConfig())

	bad := pfelA51()
	bad.Name = "broken"
	bad.Tw = 0

	jobs := []Job{
		{Element: pfelA51(), Demands: []model.ForceDemand{{Combo: "U1", P: 200, M3: 20, V2: 50}}},
		{Element: bad, Demands: nil},
		{Element: pfelA51(), Demands: []model.ForceDemand{{Combo: "U1", P: 300, M3: 20, V2: 340}}},
	}

	res := o.VerifyBatch(jobs, false)
	assert.NotEmpty(t, res.RunID)
	require.Len(t, res.Outcomes, 3)

	// Outcomes keep job order regardless of worker scheduling.
	assert.Equal(t, "PFel-A5-1", res.Outcomes[0].Element)
	require.NoError(t, res.Outcomes[0].Err)
	assert.True(t, res.Outcomes[0].Result.Pass)

	// The invalid element fails alone; the rest of the batch completes.
	assert.Error(t, res.Outcomes[1].Err)
	assert.Nil(t, res.Outcomes[1].Result)

	require.NoError(t, res.Outcomes[2].Err)
	assert.False(t, res.Outcomes[2].Result.Pass)
	assert.Nil(t, res.Outcomes[2].Proposal)
}

func TestVerifyBatchWithProposals(t *testing.T) {
	o := New(nonSeismicConfig())
	jobs := []Job{
		{Element: pfelA51(), Demands: []model.ForceDemand{{Combo: "U1", P: 300, M3: 20, V2: 340}}},
	}

	res := o.VerifyBatch(jobs, true)
	require.Len(t, res.Outcomes, 1)
	require.NoError(t, res.Outcomes[0].Err)
	assert.False(t, res.Outcomes[0].Result.Pass)
	require.NotNil(t, res.Outcomes[0].Proposal)
	assert.True(t, res.Outcomes[0].Proposal.Result.Pass)
}
