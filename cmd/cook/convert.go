package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/recipeparse/ingredient/config"
	"github.com/recipeparse/ingredient/parser"
	"github.com/recipeparse/ingredient/unit"
)

var convertTargetKind string

var convertCmd = &cobra.Command{
	Use:   "convert <measure> --to <unit>",
	Short: "Convert a measure to another unit",
	Long: `Convert a measure ("2 cups", "500 g") to another unit's kind,
using built-in normalization rules, or a supplied --mappings file for
units with no fixed conversion factor (e.g. "$5 = 4 lb").

Examples:
  cook convert "2 cups" --to tbsp
  cook convert "4 lb" --to "$" --mappings prices.toml`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().StringVar(&convertTargetKind, "to", "", "target unit")
	_ = convertCmd.MarkFlagRequired("to")
	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	m, ok := parser.ParseMeasurement(args[0])
	if !ok {
		return fmt.Errorf("could not parse measure %q", args[0])
	}

	targetUnit := unit.FromString(convertTargetKind)
	targetKind := unit.KindOf(targetUnit)

	if mappingsPath != "" {
		mappings, err := config.LoadMappings(mappingsPath)
		if err != nil {
			return err
		}
		pairs := make([]unit.Mapping, 0, len(mappings))
		for _, pm := range mappings {
			pairs = append(pairs, unit.Mapping{A: pm.A, B: pm.B})
		}
		if converted, ok := unit.ConvertViaMappings(m, targetKind, pairs); ok {
			fmt.Println(converted)
			return nil
		}
		return fmt.Errorf("no conversion path from %s to %s in %s", m, convertTargetKind, mappingsPath)
	}

	if converted, ok := m.ConvertTo(targetUnit); ok {
		fmt.Println(converted)
		return nil
	}
	return fmt.Errorf("%s and %s are different kinds of measure; supply --mappings for a custom conversion", m, convertTargetKind)
}
