package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/docent-dev/docent/tourfile"
)

func init() {
	rootCmd.AddCommand(validateCmd)
}

var validateCmd = &cobra.Command{
	Use:   "validate FILE",
	Short: "Validate a tour definition file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		def, err := tourfile.Load(args[0])
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s: ok (%d steps)\n", def.Tour.Name, len(def.Steps))
		for i, step := range def.Steps {
			id := step.ID
			if id == "" {
				id = "(auto)"
			}
			fmt.Fprintf(out, "  %d. %s -> %s\n", i+1, id, step.Target)
		}
		return nil
	},
}
