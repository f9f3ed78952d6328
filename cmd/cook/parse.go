package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	ingparse "github.com/recipeparse/ingredient/parser"
	"github.com/recipeparse/ingredient/trace"
)

var (
	parseJSON  bool
	parseTrace bool
)

var parseCmd = &cobra.Command{
	Use:   "parse-ingredient <line>",
	Short: "Parse a single ingredient line",
	Long: `Parse a single ingredient line into its amounts, name, modifier,
and optional flag.

Examples:
  cook parse-ingredient "2 1/2 cups flour, sifted"
  cook parse-ingredient "(1 tbsp butter, melted)"
  cook parse-ingredient --json "3 large eggs"`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func init() {
	parseCmd.Flags().BoolVarP(&parseJSON, "json", "j", false, "output as JSON")
	parseCmd.Flags().BoolVar(&parseTrace, "trace", false, "print a parse trace tree")
	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	ip := newIngredientParser()
	line := args[0]

	if parseTrace {
		ctx := trace.NewContext(context.Background())
		trace.Enter(ctx, "parse_ingredient", line)
		ing := ip.FromString(line)
		trace.ExitSuccess(ctx, len(line), ing.Name)
		t := trace.Finish(ctx, line)
		fmt.Print(trace.FormatTree(t, settings.Color))
	}

	ing, ok := ip.Parse(line)
	if !ok {
		ing = ip.FromString(line)
	}

	if parseJSON {
		enc, err := json.MarshalIndent(ing, "", "  ")
		if err != nil {
			return fmt.Errorf("marshalling ingredient: %w", err)
		}
		fmt.Println(string(enc))
		return nil
	}

	fmt.Printf("🥕 %s\n", ing.Name)
	for _, a := range ing.Amounts {
		fmt.Printf("   📏 %s\n", a)
	}
	if ing.Modifier != nil {
		fmt.Printf("   📝 %s\n", *ing.Modifier)
	}
	if ing.Optional {
		fmt.Println("   ❓ optional")
	}
	return nil
}

// newIngredientParser builds an IngredientParser honoring any
// --vocabulary file supplied on the command line.
func newIngredientParser() *ingparse.IngredientParser {
	ip := ingparse.NewIngredientParser()
	ip.RichText = settings.RichText
	if vocabPath == "" {
		return ip
	}
	vocab, err := loadVocabulary(vocabPath)
	if err != nil {
		return ip
	}
	ip.Units = vocab.Merge(ip.Units)
	return ip
}
