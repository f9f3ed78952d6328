package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/recipeparse/ingredient/parser"
)

var mappingCmd = &cobra.Command{
	Use:   "mapping <fact>",
	Short: "Parse a unit-mapping fact",
	Long: `Parse a unit conversion or price fact written as "A = B" or
"B/A", with an optional " @ source" attribution.

Examples:
  cook mapping "4 lb = $5"
  cook mapping "$5/4lb @ farmers market"`,
	Args: cobra.ExactArgs(1),
	RunE: runMapping,
}

func init() {
	rootCmd.AddCommand(mappingCmd)
}

func runMapping(cmd *cobra.Command, args []string) error {
	pm, err := parser.ParseUnitMapping(args[0])
	if err != nil {
		return err
	}
	fmt.Println(pm)
	return nil
}
