package parser

import (
	"strings"

	"github.com/recipeparse/ingredient/unit"
)

// DefaultUnits are addon units recognised alongside the built-in
// vocabulary when no caller-supplied list is given, e.g. "2 whole
// chickens" or "1 packet yeast".
var DefaultUnits = []string{
	"whole", "packet", "sticks", "stick", "cloves", "clove", "bunch",
	"head", "large", "medium", "package", "recipe", "slice", "standard",
	"can", "leaf", "leaves",
}

// DefaultAdjectives are modifier words spliced out of an ingredient's
// name (when embedded there) and appended to its modifier text.
var DefaultAdjectives = []string{
	"chopped", "minced", "diced", "freshly ground", "finely chopped",
	"thinly sliced", "sliced",
}

func defaultUnitSet() map[string]struct{} {
	s := make(map[string]struct{}, len(DefaultUnits))
	for _, u := range DefaultUnits {
		s[u] = struct{}{}
	}
	return s
}

// Ingredient is a parsed ingredient with structured components.
type Ingredient struct {
	Name     string
	Amounts  []unit.Measure
	Modifier *string
	Optional bool
}

// ParseQuality indicates how much structure the parser found in the input.
type ParseQuality int

const (
	// Structured means the parser found amounts, a modifier, or the
	// optional marker -- high confidence this is an ingredient line.
	Structured ParseQuality = iota
	// Unstructured means the parser returned the input as-is with no
	// extracted structure.
	Unstructured
)

// Quality reports the ParseQuality of an Ingredient.
func (i Ingredient) Quality() ParseQuality {
	if len(i.Amounts) > 0 || i.Modifier != nil || i.Optional {
		return Structured
	}
	return Unstructured
}

// String renders the ingredient the way the grammar's display
// convention specifies: amounts joined by " / ", then the name, then
// ", <modifier>", then " (optional)".
func (i Ingredient) String() string {
	var b strings.Builder
	if len(i.Amounts) == 0 {
		b.WriteString("n/a ")
	} else {
		parts := make([]string, len(i.Amounts))
		for idx, a := range i.Amounts {
			parts[idx] = a.String()
		}
		b.WriteString(strings.Join(parts, " / "))
		b.WriteString(" ")
	}
	b.WriteString(i.Name)
	if i.Modifier != nil {
		b.WriteString(", ")
		b.WriteString(*i.Modifier)
	}
	if i.Optional {
		b.WriteString(" (optional)")
	}
	return b.String()
}

// IngredientParser parses ingredient lines into Ingredient values.
type IngredientParser struct {
	Units      map[string]struct{}
	Adjectives []string
	RichText   bool
}

// NewIngredientParser constructs a parser with the default addon units
// and adjective list.
func NewIngredientParser() *IngredientParser {
	return &IngredientParser{Units: defaultUnitSet(), Adjectives: DefaultAdjectives}
}

// Parse attempts the full ingredient grammar, returning ok=false only
// when it extracts nothing at all: no name, amounts, modifier or
// optional marker (callers degrade to name=input). A bare name is
// returned with ok=true and Unstructured quality.
func (ip *IngredientParser) Parse(input string) (Ingredient, bool) {
	mp := New(ip.Units, ip.RichText)

	rest := input
	optional := false
	if strings.HasPrefix(rest, "(") {
		if closeIdx := matchingParen(rest); closeIdx > 0 {
			inner := rest[1:closeIdx]
			after := rest[closeIdx+1:]
			if strings.TrimSpace(after) == "" {
				optional = true
				rest = inner
			}
		}
	}

	var amounts []unit.Measure
	if r, ms, ok := mp.ParseMeasurementList(rest); ok {
		amounts = ms
		rest = strings.TrimLeft(r, " ")
	}

	var leadingAdjective string
	for _, adj := range ip.Adjectives {
		if strings.HasPrefix(rest, adj+" ") {
			leadingAdjective = adj
			rest = rest[len(adj)+1:]
			break
		}
	}

	nameRun, rest2 := readWhile(rest, isNameChar)
	name := strings.TrimSpace(nameRun)
	rest = rest2

	if r, ms, ok := mp.parseParenthesizedAmounts(strings.TrimLeft(rest, " ")); ok {
		amounts = append(amounts, ms...)
		rest = r
	}

	var modifierParts []string
	if leadingAdjective != "" {
		modifierParts = append(modifierParts, leadingAdjective)
	}

	rest = strings.TrimLeft(rest, " ")
	if strings.HasPrefix(rest, ",") {
		tail := strings.TrimSpace(strings.TrimSuffix(strings.TrimPrefix(rest, ","), ")"))
		if tail != "" {
			modifierParts = append(modifierParts, tail)
		}
	}

	name, extraModifiers := splitEmbeddedAdjectives(name, ip.Adjectives)
	modifierParts = append(modifierParts, extraModifiers...)

	var modifier *string
	if len(modifierParts) > 0 {
		m := strings.Join(modifierParts, ", ")
		modifier = &m
	}

	if name == "" && len(amounts) == 0 && modifier == nil && !optional {
		return Ingredient{}, false
	}

	return Ingredient{
		Name:     name,
		Amounts:  amounts,
		Modifier: modifier,
		Optional: optional,
	}, true
}

// FromString parses input, falling back to an Unstructured Ingredient
// named by the whitespace-trimmed input when Parse returns ok=false,
// per the grammar's total top-level contract.
func (ip *IngredientParser) FromString(input string) Ingredient {
	if ing, ok := ip.Parse(input); ok {
		return ing
	}
	return Ingredient{Name: strings.TrimSpace(input)}
}

// splitEmbeddedAdjectives removes any registered adjective occurring
// within the name body and appends it to the returned modifier list,
// matching the source grammar's post-processing step.
func splitEmbeddedAdjectives(name string, adjectives []string) (string, []string) {
	var found []string
	for _, adj := range adjectives {
		if idx := strings.Index(name, adj); idx >= 0 {
			name = strings.TrimSpace(strings.Replace(name, adj, "", 1))
			name = strings.TrimSpace(strings.ReplaceAll(name, "  ", " "))
			found = append(found, adj)
		}
	}
	return name, found
}

// matchingParen returns the index of the ')' matching the '(' at
// position 0, or -1 if unbalanced.
func matchingParen(s string) int {
	depth := 0
	for i, r := range s {
		switch r {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}
