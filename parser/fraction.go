package parser

import (
	"strconv"
	"strings"
)

// vulgarFractions maps a single Unicode vulgar-fraction codepoint to its
// value. The set holds the fifteen fractions the grammar recognises.
var vulgarFractions = map[rune]float64{
	'¾': 3.0 / 4,
	'⅛': 1.0 / 8,
	'¼': 1.0 / 4,
	'⅓': 1.0 / 3,
	'½': 1.0 / 2,
	'⅔': 2.0 / 3,
	'⅕': 1.0 / 5,
	'⅖': 2.0 / 5,
	'⅗': 3.0 / 5,
	'⅘': 4.0 / 5,
	'⅙': 1.0 / 6,
	'⅚': 5.0 / 6,
	'⅐': 1.0 / 7,
	'⅑': 1.0 / 9,
	'⅒': 1.0 / 10,
}

// parseVulgarFraction consumes a single vulgar-fraction codepoint from
// the front of input.
func parseVulgarFraction(input string) (rest string, value float64, ok bool) {
	r, size := firstRune(input)
	if size == 0 {
		return input, 0, false
	}
	v, found := vulgarFractions[r]
	if !found {
		return input, 0, false
	}
	return input[size:], v, true
}

// parseSlashFraction parses "<double>/<double>" with no surrounding
// space, e.g. "1/4" -> 0.25.
func parseSlashFraction(input string) (rest string, value float64, ok bool) {
	rest, num, ok := parseDouble(input)
	if !ok {
		return input, 0, false
	}
	if !strings.HasPrefix(rest, "/") {
		return input, 0, false
	}
	rest = rest[1:]
	rest, den, ok := parseDouble(rest)
	if !ok || den == 0 {
		return input, 0, false
	}
	return rest, num / den, true
}

// parseFractionNumber parses mixed-number formats like "1 ⅛" or
// "1 1/8" into 1.125: an optional leading whole number plus whitespace,
// followed by either a vulgar fraction or a slash fraction.
func parseFractionNumber(input string) (rest string, value float64, ok bool) {
	// Vulgar-fraction branch: optional "<double><space0>" then the
	// fraction glyph (no required whitespace, e.g. "1½").
	if r, whole, hadWhole := tryLeadingWhole(input, false); true {
		if frest, frac, fok := parseVulgarFraction(r); fok {
			v := frac
			if hadWhole {
				v += whole
			}
			return frest, v, true
		}
	}
	// Slash-fraction branch: optional "<double><space1>" then N/D.
	if r, whole, hadWhole := tryLeadingWhole(input, true); true {
		if frest, frac, fok := parseSlashFraction(r); fok {
			v := frac
			if hadWhole {
				v += whole
			}
			return frest, v, true
		}
	}
	return input, 0, false
}

// tryLeadingWhole attempts to consume "<double><space>" from the front
// of input. requireSpace controls whether at least one space is
// mandatory (slash-fraction form) or optional (vulgar-fraction form).
func tryLeadingWhole(input string, requireSpace bool) (rest string, whole float64, ok bool) {
	r, w, dok := parseDouble(input)
	if !dok {
		return input, 0, false
	}
	trimmed := strings.TrimLeft(r, " \t")
	consumed := len(r) - len(trimmed)
	if requireSpace && consumed == 0 {
		return input, 0, false
	}
	return trimmed, w, true
}

func firstRune(s string) (rune, int) {
	for i, r := range s {
		_ = i
		return r, len(string(r))
	}
	return 0, 0
}

// parseDouble consumes a leading floating point literal.
func parseDouble(input string) (rest string, value float64, ok bool) {
	i := 0
	n := len(input)
	if i < n && (input[i] == '+' || input[i] == '-') {
		i++
	}
	start := i
	for i < n && isASCIIDigit(input[i]) {
		i++
	}
	// A "." is only consumed as part of the literal when at least one
	// digit follows it; a bare trailing period (as in "375. Combine")
	// is left in rest for the caller's sentence-break handling instead
	// of being swallowed into the number.
	if i < n && input[i] == '.' && i+1 < n && isASCIIDigit(input[i+1]) {
		i++
		for i < n && isASCIIDigit(input[i]) {
			i++
		}
	}
	if i == start {
		return input, 0, false
	}
	f, err := strconv.ParseFloat(input[:i], 64)
	if err != nil {
		return input, 0, false
	}
	return input[i:], f, true
}

func isASCIIDigit(b byte) bool { return b >= '0' && b <= '9' }
