package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/recipeparse/ingredient/parser"
)

var richTextCmd = &cobra.Command{
	Use:   "parse-rich-text <prose>",
	Short: "Extract measurements and known ingredients from free-form prose",
	Long: `Scan a sentence or paragraph of recipe instructions, extracting
any bare measurements ("200g", "2 tbsp") and any ingredient names
registered via --vocabulary, leaving the rest as plain text chunks.

Example:
  cook parse-rich-text --vocabulary pantry.yaml "Heat 200g of butter in a pan."`,
	Args: cobra.ExactArgs(1),
	RunE: runRichText,
}

func init() {
	rootCmd.AddCommand(richTextCmd)
}

func runRichText(cmd *cobra.Command, args []string) error {
	var names map[string]struct{}
	if vocabPath != "" {
		vocab, err := loadVocabulary(vocabPath)
		if err == nil {
			names = vocab.Names
		}
	}

	rp := parser.NewRichTextParser(names)
	for _, c := range rp.Parse(args[0]) {
		switch c.Kind {
		case parser.ChunkText:
			fmt.Printf("📝 %q\n", c.Text)
		case parser.ChunkMeasure:
			parts := make([]string, len(c.Measure))
			for i, m := range c.Measure {
				parts[i] = m.String()
			}
			fmt.Printf("📏 %s\n", strings.Join(parts, " / "))
		case parser.ChunkIngredient:
			fmt.Printf("🥕 %s\n", c.Ingredient.Name)
		}
	}
	return nil
}
