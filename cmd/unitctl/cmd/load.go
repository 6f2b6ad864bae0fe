package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var loadCheckUnit string

var loadCmd = &cobra.Command{
	Use:   "load <definition-file>",
	Short: "Load a definition file on top of the bundled defaults and list the definition sources in effect",
	Long: `load reads a definition file in the same grammar as the bundled
default_en.txt (spec.md's unit grammar), on top of the registry built
from --defs/UNITCTL_DEFS, and prints the full list of definition
sources now in effect. Pass --check to also resolve a unit name
against the combined registry.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := buildRegistry()
		if err != nil {
			return err
		}
		if err := r.Load(args[0]); err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "definition sources:")
		for _, src := range r.DefinitionFiles() {
			fmt.Fprintf(out, "  %s\n", src)
		}

		if loadCheckUnit != "" {
			q, err := r.Quantity(loadCheckUnit)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "%s resolves to %s\n", loadCheckUnit, q.Units.String())
		}
		return nil
	},
}

func init() {
	loadCmd.Flags().StringVar(&loadCheckUnit, "check", "", "resolve this unit name after loading and print its canonical name")
	rootCmd.AddCommand(loadCmd)
}
