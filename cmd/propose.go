package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gorcv/internal/config"
	"github.com/alexiusacademia/gorcv/internal/diagram"
	"github.com/alexiusacademia/gorcv/internal/verify"
)

var (
	proposeFile   string
	proposeConfig string
	proposeIndex  int
	proposeBudget int
)

var proposeCmd = &cobra.Command{
	Use:   "propose",
	Short: "Search for a passing reinforcement layout",
	Long: `Run the bounded design-proposal search on one element: step the
reinforcement up (tighter stirrups, larger bars, extra layers) and
re-verify after each step, stopping at the first passing layout or
when the step budget runs out.

Examples:
  gorcv propose --file elements.json --index 2 --budget 48`,
	RunE: runPropose,
}

func init() {
	rootCmd.AddCommand(proposeCmd)

	proposeCmd.Flags().StringVarP(&proposeFile, "file", "f", "", "Job file (JSON) [required]")
	proposeCmd.Flags().StringVarP(&proposeConfig, "config", "c", "", "Run configuration file")
	proposeCmd.Flags().IntVarP(&proposeIndex, "index", "i", 1, "1-based element index in the job file")
	proposeCmd.Flags().IntVarP(&proposeBudget, "budget", "n", 0, "Step budget override (0 keeps the configured value)")

	proposeCmd.MarkFlagRequired("file")
}

func runPropose(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(proposeConfig)
	if err != nil {
		return err
	}
	if proposeBudget > 0 {
		cfg.ProposalBudget = proposeBudget
	}
	jobs, err := loadJobs(proposeFile)
	if err != nil {
		return err
	}
	if proposeIndex < 1 || proposeIndex > len(jobs) {
		return fmt.Errorf("index %d out of range (file has %d elements)", proposeIndex, len(jobs))
	}
	job := jobs[proposeIndex-1]

	o := verify.New(cfg)
	p, err := o.Propose(job.Element, job.Demands)
	if err != nil {
		return err
	}
	if p == nil {
		fmt.Printf("No automatic proposal found for %s within %d steps.\n",
			job.Element.Name, cfg.ProposalBudget)
		return nil
	}
	if p.Steps == 0 {
		fmt.Printf("%s already passes; nothing to propose.\n", job.Element.Name)
		return nil
	}

	lines := []string{
		fmt.Sprintf("Found in %d step(s)", p.Steps),
		fmt.Sprintf("SF %s, DCR %s, governing %s", fmtRatio(p.Result.SF), fmtRatio(p.Result.DCR), p.Result.GoverningCombo),
		fmt.Sprintf("Stirrups: %d-leg %.0fmm @ %.0f mm", p.Layout.StirrupLegs, p.Layout.StirrupDia, p.Layout.StirrupSpacing),
	}
	for i, l := range p.Layout.Layers {
		lines = append(lines, fmt.Sprintf("Layer %d: %d-%.0fmm at d=%.0f mm", i+1, l.Bars, l.Dia, l.D))
	}
	fmt.Print(diagram.DrawSummaryBox(fmt.Sprintf("PROPOSAL - %s", job.Element.Name), lines))
	return nil
}
