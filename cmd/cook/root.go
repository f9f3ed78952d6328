// Command cook is a small CLI wrapping the ingredient-parsing library:
// parsing single ingredient lines or rich-text prose, converting
// measures between units, and inspecting unit-mapping facts.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/recipeparse/ingredient/config"
)

var (
	cfgFile    string
	richText   bool
	noColor    bool
	vocabPath  string
	mappingsPath string
	settings   config.Settings
)

var rootCmd = &cobra.Command{
	Use:   "cook",
	Short: "Parse and convert recipe ingredient text",
	Long: `cook parses free-form ingredient lines and recipe prose into
structured amounts, names, and modifiers, and converts measures
between units using built-in rules or a supplied mapping file.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		v := viper.New()
		s, err := config.Load(v, cfgFile)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("rich-text") {
			s.RichText = richText
		}
		if cmd.Flags().Changed("no-color") {
			s.Color = !noColor
		}
		settings = s
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (TOML or YAML)")
	rootCmd.PersistentFlags().BoolVar(&richText, "rich-text", false, "parse ingredient lines in rich-text mode (no text numbers or implicit-quantity units)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable ANSI color in trace output")
	rootCmd.PersistentFlags().StringVar(&vocabPath, "vocabulary", "", "YAML file of extra addon units and known ingredient names")
	rootCmd.PersistentFlags().StringVar(&mappingsPath, "mappings", "", "TOML file of unit-mapping facts for conversion")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		slog.Error("cook command failed", "error", err)
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
