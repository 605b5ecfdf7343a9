// Command docent validates tour definition files and generates overlay
// cutout markup.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "docent",
	Short: "Tooling for tour definitions and overlay cutouts",
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
