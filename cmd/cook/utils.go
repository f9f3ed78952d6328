package main

import "github.com/recipeparse/ingredient/config"

// loadVocabulary reads the YAML vocabulary file at path, returning a
// zero Vocabulary (no extra units or names) on any error so callers
// can degrade gracefully rather than fail the whole command.
func loadVocabulary(path string) (config.Vocabulary, error) {
	return config.LoadVocabulary(path)
}
