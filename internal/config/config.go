// Package config loads the analysis-run configuration: seismic design
// category, bracing assumptions, drift data and the proposal budget.
// The zero configuration is valid; a config file only overrides.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/alexiusacademia/gorcv/internal/model"
	"github.com/alexiusacademia/gorcv/internal/nscp"
)

// Run is the configuration shared by every element in a batch.
type Run struct {
	// Seismic design category; special provisions apply for D-F.
	SeismicCategory string `mapstructure:"seismic_category"`

	// Bracing condition for slenderness screening.
	Braced bool `mapstructure:"braced"`
	// Effective length factor; zero selects the default for the
	// bracing condition.
	K float64 `mapstructure:"k"`
	// Transverse loading between supports (forces Cm = 1).
	TransverseLoad bool `mapstructure:"transverse_load"`
	// Sustained load ratio βdns.
	BetaDns float64 `mapstructure:"beta_dns"`

	// Design story drift ratio δu/hw; zero means unavailable, which
	// switches the boundary-element check to the stress-based method.
	DriftRatio float64 `mapstructure:"drift_ratio"`
	// Stories above the critical section, for dynamic amplification.
	Stories int `mapstructure:"stories"`

	// Bending axis selection: "major" (default) or "minor".
	Axis string `mapstructure:"axis"`
	// Optional direction angle (degrees) for biaxial evaluation.
	DirectionAngle float64 `mapstructure:"direction_angle"`

	// Concrete type per named material, mapped to λ.
	ConcreteTypes map[string]string `mapstructure:"concrete_types"`

	// Proposal search step budget.
	ProposalBudget int `mapstructure:"proposal_budget"`

	// Keep raw diagram points on results (for plotting).
	KeepDiagrams bool `mapstructure:"keep_diagrams"`
}

// Defaults applied before any file is read.
const (
	DefaultProposalBudget = 64
	DefaultKBraced        = 1.0
	DefaultKUnbraced      = 1.2
)

// Default returns the built-in configuration.
func Default() Run {
	return Run{
		SeismicCategory: string(nscp.SDCD),
		Braced:          true,
		Axis:            "major",
		ProposalBudget:  DefaultProposalBudget,
	}
}

// Load reads the run configuration from the given file (YAML, TOML or
// JSON per extension). An empty path returns the defaults.
func Load(path string) (Run, error) {
	run := Default()
	if path == "" {
		return run, nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetDefault("seismic_category", run.SeismicCategory)
	v.SetDefault("braced", run.Braced)
	v.SetDefault("axis", run.Axis)
	v.SetDefault("proposal_budget", run.ProposalBudget)

	if err := v.ReadInConfig(); err != nil {
		return Run{}, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := v.Unmarshal(&run); err != nil {
		return Run{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	return run, run.Validate()
}

// Validate checks the loaded values.
func (r Run) Validate() error {
	switch strings.ToUpper(r.SeismicCategory) {
	case "A", "B", "C", "D", "E", "F":
	default:
		return fmt.Errorf("unknown seismic category %q", r.SeismicCategory)
	}
	switch strings.ToLower(r.Axis) {
	case "", "major", "minor":
	default:
		return fmt.Errorf("axis must be \"major\" or \"minor\", got %q", r.Axis)
	}
	if r.ProposalBudget < 0 {
		return fmt.Errorf("proposal budget must be non-negative")
	}
	if r.DriftRatio < 0 {
		return fmt.Errorf("drift ratio must be non-negative")
	}
	for name, ct := range r.ConcreteTypes {
		switch nscp.ConcreteType(ct) {
		case nscp.NormalWeight, nscp.SandLightweight, nscp.AllLightweight:
		default:
			return fmt.Errorf("material %q: unknown concrete type %q", name, ct)
		}
	}
	return nil
}

// Category returns the parsed seismic design category.
func (r Run) Category() nscp.SeismicCategory {
	return nscp.SeismicCategory(strings.ToUpper(r.SeismicCategory))
}

// BendingAxis returns the configured axis selection.
func (r Run) BendingAxis() model.Axis {
	if strings.ToLower(r.Axis) == "minor" {
		return model.Axis2
	}
	return model.Axis3
}

// EffectiveK resolves the effective length factor.
func (r Run) EffectiveK() float64 {
	if r.K > 0 {
		return r.K
	}
	if r.Braced {
		return DefaultKBraced
	}
	return DefaultKUnbraced
}
