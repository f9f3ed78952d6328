package ingredient

import (
	"context"

	"github.com/recipeparse/ingredient/parser"
	"github.com/recipeparse/ingredient/trace"
	"github.com/recipeparse/ingredient/unit"
)

// Ingredient is a parsed ingredient line.
type Ingredient = parser.Ingredient

// ParseQuality reports how much structure a parse found.
type ParseQuality = parser.ParseQuality

// ParsedUnitMapping is a parsed "A = B" or "B/A" conversion fact.
type ParsedUnitMapping = parser.ParsedUnitMapping

// Chunk is one segment of a rich-text parse.
type Chunk = parser.Chunk

// ParseRichText extracts measurement and ingredient chunks from free
// running prose, recognising any of the given ingredient names inline.
func ParseRichText(input string, names map[string]struct{}) []Chunk {
	return parser.NewRichTextParser(names).Parse(input)
}

// ParseIngredient parses a single ingredient line using the default
// addon unit and adjective vocabularies.
func ParseIngredient(input string) Ingredient {
	return NewParser().FromString(input)
}

// NewParser constructs an IngredientParser over the default
// vocabularies, exposed for callers who want to customise Units or
// Adjectives before parsing.
func NewParser() *parser.IngredientParser {
	return parser.NewIngredientParser()
}

// ParseIngredientWithTrace parses input exactly as ParseIngredient
// does, and also returns a parse trace.
//
// The trace holds a single top-level "parse_ingredient" span; the
// individual grammar rules are not traced. No error is returned: like
// ParseIngredient, a parse that finds no structure degrades to
// name=input.
func ParseIngredientWithTrace(ctx context.Context, input string) (Ingredient, *trace.Trace) {
	ctx = trace.NewContext(ctx)
	trace.Enter(ctx, "parse_ingredient", input)
	ing := ParseIngredient(input)
	trace.ExitSuccess(ctx, len(input), ing.Name)
	return ing, trace.Finish(ctx, input)
}

// ParseUnitMapping parses a unit conversion or price fact such as
// "4 lb = $5 @ farmers market".
func ParseUnitMapping(input string) (ParsedUnitMapping, error) {
	return parser.ParseUnitMapping(input)
}

// ConsolidateByName merges a shopping list's worth of ingredients by
// name, summing amounts of compatible measure kinds and keeping the
// first modifier seen for each name; a merged ingredient is optional
// only if every occurrence of it is optional. Amounts whose kinds
// can't be combined (Measure.Add returning an error) are kept
// separate, appended rather than dropped. Other-kind amounts, which
// Measure.Add passes over without summing, are appended as separate
// entries as well.
func ConsolidateByName(ingredients []Ingredient) []Ingredient {
	order := make([]string, 0, len(ingredients))
	byName := make(map[string]*Ingredient, len(ingredients))

	for _, ing := range ingredients {
		existing, seen := byName[ing.Name]
		if !seen {
			copyIng := ing
			byName[ing.Name] = &copyIng
			order = append(order, ing.Name)
			continue
		}
		existing.Amounts = mergeAmounts(existing.Amounts, ing.Amounts)
		if existing.Modifier == nil {
			existing.Modifier = ing.Modifier
		}
		existing.Optional = existing.Optional && ing.Optional
	}

	out := make([]Ingredient, 0, len(order))
	for _, name := range order {
		out = append(out, *byName[name])
	}
	return out
}

// mergeAmounts folds each incoming measure into the accumulated list,
// summing into the first compatible-kind entry it finds and appending
// as a new entry otherwise.
func mergeAmounts(existing []unit.Measure, incoming []unit.Measure) []unit.Measure {
	for _, in := range incoming {
		merged := false
		for i, e := range existing {
			if sum, err := e.Add(in); err == nil && !in.Kind().IsOther() {
				existing[i] = sum
				merged = true
				break
			}
		}
		if !merged {
			existing = append(existing, in)
		}
	}
	return existing
}
