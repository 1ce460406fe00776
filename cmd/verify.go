package cmd

import (
	"fmt"
	"math"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gorcv/internal/config"
	"github.com/alexiusacademia/gorcv/internal/diagram"
	"github.com/alexiusacademia/gorcv/internal/verify"
)

var (
	verifyFile    string
	verifyConfig  string
	verifyPropose bool
	verifyPlot    bool
)

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Verify elements against strength and detailing provisions",
	Long: `Run the full verification pipeline over every element in a job
file: classification, slenderness/magnification, flexure-axial check
against the P-M interaction diagram, shear with biaxial interaction,
and the seismic provisions the configured design category requires.

The job file is JSON: a list of elements, each carrying its geometry,
material, reinforcement, and already-factored demand combinations.

Examples:
  # Verify all elements with the default configuration
  gorcv verify --file elements.json

  # Use a run configuration and search for proposals on failures
  gorcv verify --file elements.json --config run.yaml --propose`,
	RunE: runVerify,
}

func init() {
	rootCmd.AddCommand(verifyCmd)

	verifyCmd.Flags().StringVarP(&verifyFile, "file", "f", "", "Job file (JSON) [required]")
	verifyCmd.Flags().StringVarP(&verifyConfig, "config", "c", "", "Run configuration file (YAML/TOML/JSON)")
	verifyCmd.Flags().BoolVarP(&verifyPropose, "propose", "p", false, "Search for reinforcement proposals on failing elements")
	verifyCmd.Flags().BoolVar(&verifyPlot, "plot", false, "Print the ASCII P-M diagram per element")

	verifyCmd.MarkFlagRequired("file")
}

func runVerify(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(verifyConfig)
	if err != nil {
		return err
	}
	if verifyPlot {
		cfg.KeepDiagrams = true
	}

	jobs, err := loadJobs(verifyFile)
	if err != nil {
		return err
	}

	o := verify.New(cfg)
	batch := o.VerifyBatch(jobs, verifyPropose)

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     ELEMENT VERIFICATION - NSCP 2015")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Printf("  Run: %s   SDC: %s   Elements: %d\n",
		batch.RunID, cfg.SeismicCategory, len(batch.Outcomes))
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "  ELEMENT\tTYPE\tSECTION\tSF\tDCR\tGOVERNING\tSTATUS")
	for _, out := range batch.Outcomes {
		if out.Err != nil {
			fmt.Fprintf(w, "  %s\t-\t-\t-\t-\t-\tERROR: %v\n", out.Element, out.Err)
			continue
		}
		r := out.Result
		status := "PASS ✓"
		if !r.Pass {
			status = "FAIL ✗"
		}
		fmt.Fprintf(w, "  %s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			r.Element, r.Classification.Type, r.Classification.Section,
			fmtRatio(r.SF), fmtRatio(r.DCR), r.GoverningCombo, status)
	}
	w.Flush()
	fmt.Println()

	for _, out := range batch.Outcomes {
		if out.Err != nil || out.Result == nil {
			continue
		}
		printDetails(out)
	}
	return nil
}

// fmtRatio renders an SF/DCR table cell. Shear-only element types
// carry no flexure safety factor, and a direction with zero capacity
// reports an infinite utilization; both render as a dash.
func fmtRatio(v float64) string {
	if math.IsInf(v, 0) {
		return "-"
	}
	return fmt.Sprintf("%.2f", v)
}

func printDetails(out verify.ElementOutcome) {
	r := out.Result

	if len(r.SeismicChecks) > 0 {
		fmt.Printf("  %s seismic checks:\n", r.Element)
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		for _, c := range r.SeismicChecks {
			mark := "✓"
			if !c.Pass {
				mark = "✗"
			}
			fmt.Fprintf(w, "    %s\t%s\tmargin %+.3f\t%s\n", mark, c.Name, c.Margin, c.Detail)
		}
		w.Flush()
	}
	for _, e := range r.Errors {
		fmt.Printf("    ⚠ %s\n", e)
	}

	if verifyPlot && r.Diagram != nil {
		fmt.Print(diagram.PlotASCII(r.Diagram, 60, 16))
	}

	if out.Proposal != nil && out.Proposal.Steps > 0 {
		p := out.Proposal
		lines := []string{
			fmt.Sprintf("Found in %d step(s)", p.Steps),
			fmt.Sprintf("SF %s, DCR %s", fmtRatio(p.Result.SF), fmtRatio(p.Result.DCR)),
			fmt.Sprintf("Stirrup spacing: %.0f mm", p.Layout.StirrupSpacing),
		}
		for i, l := range p.Layout.Layers {
			lines = append(lines, fmt.Sprintf("Layer %d: %d-%.0fmm at d=%.0f mm", i+1, l.Bars, l.Dia, l.D))
		}
		fmt.Print(diagram.DrawSummaryBox(fmt.Sprintf("PROPOSAL - %s", r.Element), lines))
	} else if out.Proposal == nil && !r.Pass && verifyPropose {
		fmt.Printf("    no automatic proposal found for %s\n", r.Element)
	}
	fmt.Println()
}
