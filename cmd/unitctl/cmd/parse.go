package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fish2000/pint/formatter"
)

var parseCmd = &cobra.Command{
	Use:   "parse <expression>",
	Short: "Parse an expression into a quantity and print it back out",
	Long: `parse evaluates an expression such as "2.54 * centimeter / second"
against the loaded unit registry and prints the resulting magnitude and
units, formatted with the default symbol set.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := buildRegistry()
		if err != nil {
			return err
		}
		q, err := r.Parse(args[0])
		if err != nil {
			return err
		}
		f := formatter.New(formatter.Default())
		fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatQuantity(f, q))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(parseCmd)
}
