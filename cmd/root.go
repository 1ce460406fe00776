package cmd

import (
	"fmt"
	"os"

	"github.com/alexiusacademia/gorcv/internal/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "gorcv",
	Short: "Reinforced Concrete Element Verification Tool",
	Long: `gorcv - Go Reinforced Concrete Verifier

A CLI tool for checking reinforced concrete structural elements
(walls, wall piers, columns, coupling beams) against the strength
and detailing provisions of NSCP 2015.

This tool helps structural engineers perform:
  - Element classification (wall / wall pier / column)
  - P-M interaction diagram generation and flexure-axial checks
  - Slenderness screening and moment magnification
  - Shear verification with biaxial interaction
  - Special seismic provisions (boundary elements, coupling beams,
    shear amplification, wall piers)
  - Automatic reinforcement proposals for failing elements

Demands are consumed as already-factored load combinations.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   gorcv v%-49s║\n", version.Version)
		fmt.Println("  ║   Go Reinforced Concrete Verifier                         ║")
		fmt.Printf("  ║   %s ©  %s                              ║\n", version.Author, version.Year)
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  A CLI tool for verifying reinforced concrete elements")
		fmt.Println("  based on the National Structural Code of the Philippines (NSCP).")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Wall / wall-pier / column classification")
		fmt.Println("    • P-M interaction diagrams with SF and DCR reporting")
		fmt.Println("    • Shear verification with biaxial interaction")
		fmt.Println("    • Seismic boundary-element and coupling-beam provisions")
		fmt.Println("    • Automatic design proposals for failing checks")
		fmt.Println()
		fmt.Println("  Use 'gorcv --help' to see available commands.")
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}
