package parser

import "strings"

// MeasurementParser parses Measure values and lists of Measure from
// free-form text. RichText mode disables text-number parsing and
// implicit-quantity ("unit only") parsing to cut down on false
// positives when scanning prose.
type MeasurementParser struct {
	Units    map[string]struct{} // addon units, beyond the built-in vocabulary
	RichText bool
}

// New constructs a MeasurementParser over the given addon unit set.
func New(units map[string]struct{}, richText bool) *MeasurementParser {
	if units == nil {
		units = map[string]struct{}{}
	}
	return &MeasurementParser{Units: units, RichText: richText}
}

// parseNumber tries, in order: vulgar/slash fraction, then (normal mode
// only) the literal text number, then a plain decimal. Fraction must be
// tried first so that a plain double parse doesn't eat the leading
// integer of "1 1/2" before the fraction parser sees it.
func (p *MeasurementParser) parseNumber(input string) (rest string, value float64, ok bool) {
	if r, v, pok := parseFractionNumber(input); pok {
		return r, v, true
	}
	if !p.RichText {
		if r, v, pok := parseTextNumber(input); pok {
			return r, v, true
		}
	}
	return parseDouble(input)
}

// parseMultiplier parses a leading "<number> x " multiplier, e.g.
// "2 x 200g" -> 2.0, consuming the trailing separator.
func (p *MeasurementParser) parseMultiplier(input string) (rest string, multiplier float64, ok bool) {
	r, v, nok := parseDouble(input)
	if !nok {
		return input, 0, false
	}
	r = strings.TrimLeft(r, " ")
	switch {
	case strings.HasPrefix(r, "x"):
		r = r[len("x"):]
	case strings.HasPrefix(r, "×"):
		r = r[len("×"):]
	default:
		return input, 0, false
	}
	r = strings.TrimLeft(r, " ")
	return r, v, true
}
