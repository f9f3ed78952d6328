package parser

import (
	"strings"
	"unicode"
)

// isNameChar reports whether r may appear in an ingredient's name run:
// letters, whitespace, and the punctuation the grammar explicitly
// allows in names (hyphen, em-dash, apostrophes, period, backslash).
func isNameChar(r rune) bool {
	switch r {
	case '-', '—', '\'', '’', '.', '\\':
		return true
	}
	return unicode.IsLetter(r) || unicode.IsSpace(r)
}

// isRichTextChar reports whether r may appear in a rich-text Text
// chunk: the permissive superset used for prose, broader than
// isNameChar.
func isRichTextChar(r rune) bool {
	switch r {
	case '-', '—', '\'', '’', '.', '\\', ',', '(', ')', ';', '#', '/', ':', '!':
		return true
	}
	return unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r)
}

// isWordChar reports whether r continues the same word as the
// character before it: letters and digits only, unlike isNameChar
// which also admits the spaces inside a multi-word name.
func isWordChar(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

// readWhile consumes the longest prefix of input for which pred holds,
// returning the consumed prefix and the remainder.
func readWhile(input string, pred func(rune) bool) (consumed, rest string) {
	i := 0
	for _, r := range input {
		if !pred(r) {
			break
		}
		i += len(string(r))
	}
	return input[:i], input[i:]
}

// readUnitRun consumes a greedy run of unit-name characters: letters,
// plus the degree sign and the inch-mark, case preserved.
func readUnitRun(input string) (consumed, rest string) {
	return readWhile(input, func(r rune) bool {
		return unicode.IsLetter(r) || r == '°' || r == '"'
	})
}

// parseTextNumber parses the literal "one" or "a " (with trailing
// space) as 1.0. Bare "a" is deliberately rejected, disambiguating the
// word from the article "a" appearing in ordinary ingredient names.
func parseTextNumber(input string) (rest string, value float64, ok bool) {
	if strings.HasPrefix(input, "one") {
		return input[len("one"):], 1.0, true
	}
	if strings.HasPrefix(input, "a ") {
		return input[len("a "):], 1.0, true
	}
	return input, 0, false
}

// emDashSeparators are the only dashes consumeOptionalDashSeparator
// treats as a value/unit separator. The ASCII hyphen is deliberately
// excluded: it must survive so startsWithDimensionSuffix can still
// reject a leading "-inch"/"-cm" etc.
var emDashSeparators = []string{"— ", "– ", "—", "–"}

// consumeOptionalDashSeparator consumes an optional em/en dash
// separator between a value and what follows.
func consumeOptionalDashSeparator(input string) string {
	trimmed := strings.TrimLeft(input, " ")
	for _, sep := range emDashSeparators {
		if strings.HasPrefix(trimmed, sep) {
			return strings.TrimLeft(trimmed[len(sep):], " ")
		}
	}
	return input
}

// consumeOptionalPeriodOrOf consumes a trailing ". " or " of" after a
// unit, silently, per the grammar.
func consumeOptionalPeriodOrOf(input string) (rest string, consumedPeriod bool) {
	if strings.HasPrefix(input, ". ") {
		return input[2:], true
	}
	if strings.HasPrefix(input, ".") {
		return input[1:], true
	}
	if strings.HasPrefix(input, " of") {
		return input[3:], false
	}
	return input, false
}

// distanceUnitBases are unit names that denote a physical dimension
// rather than a quantity, used to reject a leading "1-inch" etc. from
// being parsed as a bare quantity.
var distanceUnitBases = []string{"inch", "cm", "centimeter", "mm", "millimeter", "foot", "feet"}

// startsWithDimensionSuffix reports whether input begins with
// "-<distance unit>", e.g. "-inch piece ginger".
func startsWithDimensionSuffix(input string) bool {
	if !strings.HasPrefix(input, "-") {
		return false
	}
	rest := input[1:]
	for _, u := range distanceUnitBases {
		if strings.HasPrefix(rest, u) {
			return true
		}
	}
	return false
}

// looksLikeStepNumber heuristically detects that the remainder of a
// rich-text line begins a new instruction sentence rather than a unit,
// e.g. "1 Bring to a boil": first non-space char is uppercase and the
// first alphabetic word is at least two characters.
func looksLikeStepNumber(input string) bool {
	trimmed := strings.TrimLeft(input, " ")
	if trimmed == "" {
		return false
	}
	first := []rune(trimmed)[0]
	if !unicode.IsUpper(first) {
		return false
	}
	word, _ := readWhile(trimmed, unicode.IsLetter)
	return len([]rune(word)) >= 2
}
