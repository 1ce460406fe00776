package cmd

import (
	"fmt"

	"github.com/alexiusacademia/gorcv/internal/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of gorcv",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("gorcv v%s\n", version.Version)
		fmt.Println("Reinforced Concrete Element Verification Tool")
		fmt.Println("Based on NSCP 2015 (National Structural Code of the Philippines)")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
