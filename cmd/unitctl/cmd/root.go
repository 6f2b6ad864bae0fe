// Package cmd wires the unit conversion engine (registry, convert,
// formatter) into a cobra CLI, grounded on the teacher's own
// example/main.go runnable demo and on CalcMark-go-calcmark's
// cmd/calcmark/cmd package layout (root.go + one file per subcommand).
package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/fish2000/pint/registry"
)

var defsFlag string

var rootCmd = &cobra.Command{
	Use:   "unitctl",
	Short: "unitctl - parse, format, and convert quantities with units",
	Long: `unitctl is a small command-line front end over a units-of-measurement
engine: it parses expressions like "2.54 * centimeter / second" into
quantities, and converts between compatible units, including affine
temperature scales.

Examples:
  unitctl parse "2.54 * centimeter / second"
  unitctl convert "100 * degC" "degF"
  unitctl load extra_units.txt --check water`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.PersistentFlags().StringVar(&defsFlag, "defs", "", "extra definition files to load, "+string(os.PathListSeparator)+"-separated")
	cobra.OnInitialize(configureLogging)
}

// buildRegistry loads the bundled defaults, then any definition files
// named by UNITCTL_DEFS / the user config file, then those named by
// --defs. Definitions are additive: a unit or prefix name that is
// already defined is reported as an error and not redefined.
func buildRegistry() (*registry.Registry, error) {
	r, err := registry.NewDefault()
	if err != nil {
		return nil, fmt.Errorf("load default definitions: %w", err)
	}

	paths := extraDefinitionFiles()
	if defsFlag != "" {
		paths = append(paths, filepath.SplitList(defsFlag)...)
	}
	for _, path := range paths {
		if path == "" {
			continue
		}
		if err := r.Load(path); err != nil {
			return nil, fmt.Errorf("load %s: %w", path, err)
		}
	}
	return r, nil
}
