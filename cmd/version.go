package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/acibeam/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of acibeam",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.Info())
		fmt.Println("Rectangular RC Beam Flexure Tool")
		fmt.Println("Based on ACI 318-19 (Building Code Requirements for Structural Concrete)")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
