package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gorcv/internal/classify"
	"github.com/alexiusacademia/gorcv/internal/model"
)

var (
	classifyLw float64
	classifyTw float64
	classifyHw float64
)

var classifyCmd = &cobra.Command{
	Use:   "classify",
	Short: "Classify an element from its section extents",
	Long: `Determine the element category (WALL, WALL_PIER or COLUMN) and the
governing code section from the section extents, applying the fixed
decision sequence on lw/tw, tw/lw and hw/lw.

Examples:
  # The squat pier from a typical shear-wall core
  gorcv classify --lw 640 --tw 260 --hw 3350`,
	RunE: runClassify,
}

func init() {
	rootCmd.AddCommand(classifyCmd)

	classifyCmd.Flags().Float64Var(&classifyLw, "lw", 0, "Section length (mm) [required]")
	classifyCmd.Flags().Float64Var(&classifyTw, "tw", 0, "Section thickness (mm) [required]")
	classifyCmd.Flags().Float64Var(&classifyHw, "hw", 0, "Clear height (mm) [required]")

	classifyCmd.MarkFlagRequired("lw")
	classifyCmd.MarkFlagRequired("tw")
	classifyCmd.MarkFlagRequired("hw")
}

func runClassify(cmd *cobra.Command, args []string) error {
	e := &model.Element{Name: "element", Lw: classifyLw, Tw: classifyTw, Hw: classifyHw}
	res, err := classify.Classify(e)
	if err != nil {
		return err
	}

	fmt.Println()
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Type:\t%s\n", res.Type)
	fmt.Fprintf(w, "  Governing section:\t%s\n", res.Section)
	fmt.Fprintf(w, "  lw/tw:\t%.2f\n", res.LwTw)
	fmt.Fprintf(w, "  tw/lw:\t%.3f\n", res.TwLw)
	fmt.Fprintf(w, "  hw/lw:\t%.2f\n", res.HwLw)
	w.Flush()
	fmt.Println()
	return nil
}
