// Package config loads the parser's optional configuration: viper-backed
// CLI settings, a TOML file of unit-mapping facts, and a YAML file of
// extra addon units and known ingredient names.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/goccy/go-yaml"
	"github.com/spf13/viper"

	"github.com/recipeparse/ingredient/parser"
)

// Settings holds the CLI's resolved configuration, populated via
// viper from a config file, environment variables, and flags, in that
// precedence order.
type Settings struct {
	RichText   bool   `mapstructure:"rich_text"`
	MappingsFile string `mapstructure:"mappings_file"`
	Vocabulary   string `mapstructure:"vocabulary_file"`
	Color      bool   `mapstructure:"color"`
}

// Load reads settings from the named config file (if present), then
// environment variables prefixed INGREDIENT_, then whatever flags the
// caller has already bound to v.
func Load(v *viper.Viper, configFile string) (Settings, error) {
	v.SetEnvPrefix("INGREDIENT")
	v.AutomaticEnv()
	v.SetDefault("rich_text", false)
	v.SetDefault("color", true)

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return Settings{}, fmt.Errorf("reading config file %s: %w", configFile, err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("unmarshalling config: %w", err)
	}
	return s, nil
}

// mappingsFile is the on-disk TOML shape for a set of unit-mapping
// facts, e.g.:
//
//	[[mapping]]
//	a = "4 lb"
//	b = "$5"
//	source = "farmers market"
type mappingsFile struct {
	Mapping []mappingEntry `toml:"mapping"`
}

type mappingEntry struct {
	A      string `toml:"a"`
	B      string `toml:"b"`
	Source string `toml:"source"`
}

// LoadMappings reads a TOML file of unit-mapping facts and parses each
// entry's A/B fields with parser.ParseUnitMapping.
func LoadMappings(path string) ([]parser.ParsedUnitMapping, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading mappings file %s: %w", path, err)
	}

	var file mappingsFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing mappings file %s: %w", path, err)
	}

	out := make([]parser.ParsedUnitMapping, 0, len(file.Mapping))
	for i, entry := range file.Mapping {
		spec := entry.A + " = " + entry.B
		if entry.Source != "" {
			spec += " @ " + entry.Source
		}
		pm, err := parser.ParseUnitMapping(spec)
		if err != nil {
			return nil, fmt.Errorf("mapping entry %d (%s): %w", i, spec, err)
		}
		out = append(out, pm)
	}
	return out, nil
}

// vocabularyFile is the on-disk YAML shape for extra addon units and
// known ingredient names, e.g.:
//
//	units:
//	  - pinch
//	  - dash
//	names:
//	  - olive oil
//	  - kosher salt
type vocabularyFile struct {
	Units []string `yaml:"units"`
	Names []string `yaml:"names"`
}

// Vocabulary is the loaded set of extra addon units and known
// ingredient names, as sets ready to hand to parser.IngredientParser
// and parser.RichTextParser.
type Vocabulary struct {
	Units map[string]struct{}
	Names map[string]struct{}
}

// LoadVocabulary reads a YAML file of extra addon units and known
// ingredient names.
func LoadVocabulary(path string) (Vocabulary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Vocabulary{}, fmt.Errorf("reading vocabulary file %s: %w", path, err)
	}

	var file vocabularyFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return Vocabulary{}, fmt.Errorf("parsing vocabulary file %s: %w", path, err)
	}

	vocab := Vocabulary{Units: make(map[string]struct{}, len(file.Units)), Names: make(map[string]struct{}, len(file.Names))}
	for _, u := range file.Units {
		vocab.Units[u] = struct{}{}
	}
	for _, n := range file.Names {
		vocab.Names[n] = struct{}{}
	}
	return vocab, nil
}

// Merge layers extra addon units over IngredientParser's default set.
func (v Vocabulary) Merge(base map[string]struct{}) map[string]struct{} {
	merged := make(map[string]struct{}, len(base)+len(v.Units))
	for u := range base {
		merged[u] = struct{}{}
	}
	for u := range v.Units {
		merged[u] = struct{}{}
	}
	return merged
}
