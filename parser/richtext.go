package parser

import (
	"strings"
	"unicode"

	"github.com/recipeparse/ingredient/unit"
)

// ChunkKind distinguishes the members of the Chunk sum type.
type ChunkKind int

const (
	// ChunkText is a run of plain prose.
	ChunkText ChunkKind = iota
	// ChunkMeasure is a bare measurement found inline, e.g. "200g" in
	// "Heat 200g of butter until foaming."
	ChunkMeasure
	// ChunkIngredient is a full ingredient reference found inline.
	ChunkIngredient
)

// Chunk is one segment of a rich-text parse: either literal text, a
// bare measurement, or a recognised ingredient reference.
type Chunk struct {
	Kind       ChunkKind
	Text       string
	Measure    []unit.Measure
	Ingredient Ingredient
}

// RichTextParser extracts measurement and ingredient chunks from free
// running prose, leaving everything else as Text chunks.
type RichTextParser struct {
	Units      map[string]struct{}
	Names      map[string]struct{} // known ingredient names to recognise inline
	Adjectives []string
}

// NewRichTextParser constructs a parser seeded with the default addon
// units and adjectives, plus the given set of recognised ingredient
// names.
func NewRichTextParser(names map[string]struct{}) *RichTextParser {
	if names == nil {
		names = map[string]struct{}{}
	}
	return &RichTextParser{
		Units:      defaultUnitSet(),
		Names:      names,
		Adjectives: DefaultAdjectives,
	}
}

// Parse walks input left to right, attempting a measurement or a known
// ingredient name at the start of every word; everything that doesn't match is
// accumulated into Text chunks and flushed via condenseText.
func (rp *RichTextParser) Parse(input string) []Chunk {
	mp := New(rp.Units, true)
	var chunks []Chunk
	var textBuf strings.Builder

	flush := func() {
		if s := condenseText(textBuf.String()); s != "" {
			chunks = append(chunks, Chunk{Kind: ChunkText, Text: s})
		}
		textBuf.Reset()
	}

	r := input
	atBoundary := true
	for len(r) > 0 {
		if atBoundary {
			if name, rest, ok := rp.matchKnownName(r); ok {
				flush()
				chunks = append(chunks, Chunk{Kind: ChunkIngredient, Ingredient: Ingredient{Name: name}})
				r = rest
				atBoundary = true
				continue
			}
			if nr, ms, ok := mp.ParseMeasurementList(r); ok && looksLikeMeasurementBoundary(r, nr) {
				flush()
				chunks = append(chunks, Chunk{Kind: ChunkMeasure, Measure: ms})
				r = nr
				atBoundary = true
				continue
			}
		}

		ru, size := firstRune(r)
		if size == 0 {
			break
		}
		if isRichTextChar(ru) {
			textBuf.WriteRune(ru)
		}
		// A token boundary follows whitespace or punctuation, not a
		// letter or digit, so a measurement or name is only tried at the
		// start of a word.
		atBoundary = !unicode.IsLetter(ru) && !unicode.IsDigit(ru)
		r = r[size:]
	}
	flush()
	return chunks
}

// matchKnownName greedily tries every registered ingredient name as a
// prefix of input, preferring the longest match so "olive oil" wins
// over "oil".
func (rp *RichTextParser) matchKnownName(input string) (name, rest string, ok bool) {
	best := ""
	for n := range rp.Names {
		if len(n) <= len(best) {
			continue
		}
		if strings.HasPrefix(input, n) {
			after := input[len(n):]
			if after == "" || !isWordChar([]rune(after)[0]) {
				best = n
			}
		}
	}
	if best == "" {
		return "", input, false
	}
	return best, input[len(best):], true
}

// looksLikeMeasurementBoundary rejects a measurement match that
// consumed nothing, avoiding an infinite loop on malformed input.
func looksLikeMeasurementBoundary(before, after string) bool {
	return len(after) < len(before)
}

// condenseText passes a run of accumulated Text characters through
// unchanged: adjacent Text chunks are concatenated verbatim, preserving
// exact interior and boundary whitespace, so that concatenating every
// chunk's string reproduces the input up to the delimiters consumed by
// Measure and Ingredient chunks.
func condenseText(s string) string {
	return s
}

// ExtractIngredients returns just the Ingredient chunks found by Parse,
// in order of appearance.
func (rp *RichTextParser) ExtractIngredients(input string) []Ingredient {
	var out []Ingredient
	for _, c := range rp.Parse(input) {
		if c.Kind == ChunkIngredient {
			out = append(out, c.Ingredient)
		}
	}
	return out
}
