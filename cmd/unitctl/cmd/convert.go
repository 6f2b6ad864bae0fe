package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fish2000/pint/convert"
	"github.com/fish2000/pint/formatter"
)

var convertCmd = &cobra.Command{
	Use:   "convert <expression> <target-units>",
	Short: "Convert a quantity expression into another compatible unit",
	Long: `convert parses <expression> into a quantity, parses <target-units> as
a bare unit expression (e.g. "inch", "degF", "kilometer/hour"), and
prints the quantity re-expressed in those units.

Examples:
  unitctl convert "100 * degC" "degF"
  unitctl convert "1 * mile" "kilometer"`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := buildRegistry()
		if err != nil {
			return err
		}
		q, err := r.Parse(args[0])
		if err != nil {
			return err
		}
		converted, err := convert.ToString(r, q, args[1])
		if err != nil {
			return err
		}
		f := formatter.New(formatter.Default())
		fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatQuantity(f, converted))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(convertCmd)
}
