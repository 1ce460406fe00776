package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/alexiusacademia/gorcv/internal/model"
	"github.com/alexiusacademia/gorcv/internal/nscp"
	"github.com/alexiusacademia/gorcv/internal/verify"
)

// jobFile is the JSON input the verify/diagram/propose commands read:
// a list of elements, each with its demand records. Demands come either
// pre-factored ("demands") or as unfactored load effects ("effects")
// that are expanded through the NSCP strength combinations here.
// This is the stand-in for the model-import layer; anything that can
// produce this file can drive the engine.
type jobFile struct {
	Elements []jobEntry `json:"elements"`
}

type jobEntry struct {
	Element model.Element       `json:"element"`
	Demands []model.ForceDemand `json:"demands,omitempty"`
	Effects *effectSet          `json:"effects,omitempty"`
}

// effectSet carries the unfactored internal forces per load type for
// each force component. Units match ForceDemand: kN and kN·m.
type effectSet struct {
	P  nscp.LoadEffect `json:"p"`
	M2 nscp.LoadEffect `json:"m2"`
	M3 nscp.LoadEffect `json:"m3"`
	V2 nscp.LoadEffect `json:"v2"`
	V3 nscp.LoadEffect `json:"v3"`
}

// demands expands the effect set over every strength combination.
func (s *effectSet) demands() []model.ForceDemand {
	out := make([]model.ForceDemand, 0, len(nscp.LoadCombinations))
	for _, lc := range nscp.LoadCombinations {
		out = append(out, model.ForceDemand{
			Combo:   lc.Description,
			P:       lc.Factor(s.P),
			M2:      lc.Factor(s.M2),
			M3:      lc.Factor(s.M3),
			V2:      lc.Factor(s.V2),
			V3:      lc.Factor(s.V3),
			Seismic: lc.IsSeismic(),
		})
	}
	return out
}

// loadJobs reads and validates a job file.
func loadJobs(path string) ([]verify.Job, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var jf jobFile
	if err := json.Unmarshal(data, &jf); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if len(jf.Elements) == 0 {
		return nil, fmt.Errorf("%s contains no elements", path)
	}

	jobs := make([]verify.Job, 0, len(jf.Elements))
	for i := range jf.Elements {
		entry := &jf.Elements[i]
		if entry.Element.Name == "" {
			entry.Element.Name = fmt.Sprintf("element-%d", i+1)
		}
		demands := entry.Demands
		if len(demands) == 0 && entry.Effects != nil {
			demands = entry.Effects.demands()
		}
		jobs = append(jobs, verify.Job{
			Element: &entry.Element,
			Demands: demands,
		})
	}
	return jobs, nil
}
