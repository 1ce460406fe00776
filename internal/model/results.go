package model

// ElementType is the classification tag that selects the verification
// pipeline for an element.
type ElementType string

const (
	TypeWall     ElementType = "WALL"
	TypeColumn   ElementType = "COLUMN"
	TypeWallPier ElementType = "WALL_PIER"
	TypeBeam     ElementType = "BEAM"
	TypeSpandrel ElementType = "SPANDREL"
)

// ClassificationResult records the element category, the governing code
// section, and every ratio the decision consumed, for auditability.
type ClassificationResult struct {
	Type    ElementType `json:"type"`
	Section string      `json:"section"` // governing code section tag

	LwTw float64 `json:"lw_tw"` // length/thickness
	TwLw float64 `json:"tw_lw"` // thickness/length
	HwLw float64 `json:"hw_lw"` // height/length
}

// PMPoint is one sampled point of the interaction diagram.
type PMPoint struct {
	C        float64 `json:"c"`      // neutral axis depth (mm), Inf at pure compression
	Pn       float64 `json:"pn"`     // nominal axial capacity (kN)
	Mn       float64 `json:"mn"`     // nominal moment capacity (kN·m)
	PhiPn    float64 `json:"phi_pn"` // reduced axial capacity (kN)
	PhiMn    float64 `json:"phi_mn"` // reduced moment capacity (kN·m)
	Phi      float64 `json:"phi"`
	EpsilonT float64 `json:"epsilon_t"` // extreme tension layer strain
}

// InteractionDiagram is the ordered P-M capacity envelope, traversed
// from pure compression to pure tension. Pn is non-increasing along the
// traversal.
type InteractionDiagram struct {
	Axis   Axis      `json:"axis"`
	Points []PMPoint `json:"points"`
}

// CheckResult is the outcome of one independent sub-check.
type CheckResult struct {
	Name   string  `json:"name"`
	Pass   bool    `json:"pass"`
	Margin float64 `json:"margin"` // governing numeric margin, >= 0 passes
	Detail string  `json:"detail,omitempty"`
}

// VerificationResult aggregates every check run on an element.
type VerificationResult struct {
	Element        string               `json:"element"`
	Classification ClassificationResult `json:"classification"`

	SF             float64 `json:"sf"`                 // capacity/demand along the demand ray, >= 1 passes
	SFCombo        string  `json:"sf_combo,omitempty"` // combination with the worst SF
	DCR            float64 `json:"dcr"`                // demand/capacity, <= 1 passes
	GoverningCombo string  `json:"governing_combo"`    // combination with the worst DCR
	Pass           bool    `json:"pass"`

	SeismicChecks []CheckResult `json:"seismic_checks,omitempty"`

	// Diagram retained for plotting when requested.
	Diagram *InteractionDiagram `json:"diagram,omitempty"`

	// Per-combination computation failures; the remaining checks are
	// still reported.
	Errors []string `json:"errors,omitempty"`
}

// DesignProposal is a candidate reinforcement fix for a failed check.
// Transient: it exists only until the caller accepts or discards it.
type DesignProposal struct {
	Layout ReinforcementLayout `json:"layout"`
	Result VerificationResult  `json:"result"`
	Steps  int                 `json:"steps"` // search steps consumed
}
