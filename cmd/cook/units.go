package main

import (
	"fmt"

	units "github.com/bcicen/go-units"
	"github.com/spf13/cobra"
)

var unitsCmd = &cobra.Command{
	Use:   "units describe <unit>",
	Short: "Cross-reference a unit name against the go-units dimension database",
	Long: `Look up a unit name in the go-units library's broader dimension
database -- useful for checking whether a unit this parser doesn't
recognise still has a standard definition elsewhere (SI prefixes,
less common volume/weight units, etc). This is a reference lookup
only: core parsing and conversion never depend on go-units.

Example:
  cook units describe furlong`,
	Args: cobra.ExactArgs(2),
	RunE: runUnitsDescribe,
}

func init() {
	rootCmd.AddCommand(unitsCmd)
}

func runUnitsDescribe(cmd *cobra.Command, args []string) error {
	if args[0] != "describe" {
		return fmt.Errorf("unknown units subcommand %q, expected \"describe\"", args[0])
	}
	name := args[1]
	u, err := units.Find(name)
	if err != nil {
		return fmt.Errorf("no entry for %q in go-units: %w", name, err)
	}
	fmt.Printf("📐 %s\n", u)
	return nil
}
