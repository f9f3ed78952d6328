package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
)

func TestLoadDefaults(t *testing.T) {
	s, err := Load(viper.New(), "")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.RichText {
		t.Error("RichText default should be false")
	}
	if !s.Color {
		t.Error("Color default should be true")
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	body := "rich_text = true\ncolor = false\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	s, err := Load(viper.New(), path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !s.RichText {
		t.Error("expected RichText = true from config file")
	}
	if s.Color {
		t.Error("expected Color = false from config file")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(viper.New(), "/nonexistent/config.toml"); err == nil {
		t.Fatal("expected an error for a missing config file")
	}
}

func TestLoadMappings(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "mappings.toml")
	body := `
[[mapping]]
a = "4 lb"
b = "$5"
source = "farmers market"

[[mapping]]
a = "1 cup"
b = "120 g"
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	mappings, err := LoadMappings(path)
	if err != nil {
		t.Fatalf("LoadMappings: %v", err)
	}
	if len(mappings) != 2 {
		t.Fatalf("len(mappings) = %d, want 2", len(mappings))
	}
	if mappings[0].Source == nil || *mappings[0].Source != "farmers market" {
		t.Errorf("mappings[0].Source = %v, want %q", mappings[0].Source, "farmers market")
	}
	if mappings[1].Source != nil {
		t.Errorf("mappings[1].Source = %v, want nil", mappings[1].Source)
	}
}

func TestLoadMappingsBadEntry(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "mappings.toml")
	body := "[[mapping]]\na = \"not a measurement at all ???\"\nb = \"$5\"\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	if _, err := LoadMappings(path); err == nil {
		t.Fatal("expected an error for an unparseable mapping entry")
	}
}

func TestLoadVocabularyAndMerge(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "vocabulary.yaml")
	body := "units:\n  - pinch\n  - dash\nnames:\n  - olive oil\n  - kosher salt\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	vocab, err := LoadVocabulary(path)
	if err != nil {
		t.Fatalf("LoadVocabulary: %v", err)
	}
	if _, ok := vocab.Units["pinch"]; !ok {
		t.Error("expected vocab.Units to contain \"pinch\"")
	}
	if _, ok := vocab.Names["olive oil"]; !ok {
		t.Error("expected vocab.Names to contain \"olive oil\"")
	}

	base := map[string]struct{}{"cup": {}}
	merged := vocab.Merge(base)
	if _, ok := merged["cup"]; !ok {
		t.Error("Merge should keep base units")
	}
	if _, ok := merged["pinch"]; !ok {
		t.Error("Merge should add vocabulary units")
	}
	if len(base) != 1 {
		t.Error("Merge must not mutate base")
	}
}
