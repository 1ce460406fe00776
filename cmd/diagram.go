package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gorcv/internal/config"
	"github.com/alexiusacademia/gorcv/internal/diagram"
	"github.com/alexiusacademia/gorcv/internal/interaction"
)

var (
	diagramFile   string
	diagramConfig string
	diagramOut    string
	diagramIndex  int
)

var diagramCmd = &cobra.Command{
	Use:   "diagram",
	Short: "Generate the P-M interaction diagram for an element",
	Long: `Build the P-M capacity envelope for one element of a job file and
render it: ASCII in the terminal, or PNG/SVG/PDF with --out.

Examples:
  # Terminal plot of the first element
  gorcv diagram --file elements.json

  # Export the third element's envelope with its demand points
  gorcv diagram --file elements.json --index 3 --out pm.png`,
	RunE: runDiagram,
}

func init() {
	rootCmd.AddCommand(diagramCmd)

	diagramCmd.Flags().StringVarP(&diagramFile, "file", "f", "", "Job file (JSON) [required]")
	diagramCmd.Flags().StringVarP(&diagramConfig, "config", "c", "", "Run configuration file")
	diagramCmd.Flags().StringVarP(&diagramOut, "out", "o", "", "Output image file (.png/.svg/.pdf)")
	diagramCmd.Flags().IntVarP(&diagramIndex, "index", "i", 1, "1-based element index in the job file")

	diagramCmd.MarkFlagRequired("file")
}

func runDiagram(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(diagramConfig)
	if err != nil {
		return err
	}
	jobs, err := loadJobs(diagramFile)
	if err != nil {
		return err
	}
	if diagramIndex < 1 || diagramIndex > len(jobs) {
		return fmt.Errorf("index %d out of range (file has %d elements)", diagramIndex, len(jobs))
	}
	job := jobs[diagramIndex-1]

	d, err := interaction.Build(job.Element, cfg.BendingAxis())
	if err != nil {
		return err
	}

	if diagramOut != "" {
		if err := diagram.ExportImage(d, job.Demands, diagramOut); err != nil {
			return err
		}
		fmt.Printf("Diagram for %s written to %s\n", job.Element.Name, diagramOut)
		return nil
	}

	fmt.Print(diagram.PlotASCII(d, 64, 18))
	return nil
}
