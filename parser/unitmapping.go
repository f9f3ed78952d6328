package parser

import (
	"fmt"
	"strings"

	"github.com/recipeparse/ingredient/ingerr"
	"github.com/recipeparse/ingredient/unit"
)

// ParsedUnitMapping is one "A = B" or "B / A" conversion fact, with an
// optional attributed source, e.g. "4 lb = $5 @ farmers market".
type ParsedUnitMapping struct {
	A      unit.Measure
	B      unit.Measure
	Source *string
}

// String renders the mapping the way it was likely written, e.g.
// "4 lb = $5 @ farmers market".
func (m ParsedUnitMapping) String() string {
	if m.Source != nil {
		return fmt.Sprintf("%s = %s @ %s", m.A, m.B, *m.Source)
	}
	return fmt.Sprintf("%s = %s", m.A, m.B)
}

// ParseUnitMapping accepts two surface forms:
//
//	"4 lb = $5"   (conversion form: A = B)
//	"$5/4lb"      (price-per form: B/A, read right to left)
//
// and an optional trailing " @ <source>" attribution on either form.
func ParseUnitMapping(input string) (ParsedUnitMapping, error) {
	body, source := splitSourceTrailer(input)
	mp := New(nil, false)

	if idx := strings.Index(body, "="); idx >= 0 {
		left := strings.TrimSpace(body[:idx])
		right := strings.TrimSpace(body[idx+1:])
		a, aok := parseWholeMeasure(mp, left)
		b, bok := parseWholeMeasure(mp, right)
		if !aok || !bok {
			return ParsedUnitMapping{}, &ingerr.ParseError{Input: input, Context: "unit mapping"}
		}
		return ParsedUnitMapping{A: a, B: b, Source: source}, nil
	}

	if idx := strings.LastIndex(body, "/"); idx >= 0 {
		left := strings.TrimSpace(body[:idx])
		right := strings.TrimSpace(body[idx+1:])
		b, bok := parseWholeMeasure(mp, left)
		a, aok := parseWholeMeasure(mp, right)
		if !aok || !bok {
			return ParsedUnitMapping{}, &ingerr.ParseError{Input: input, Context: "unit mapping"}
		}
		return ParsedUnitMapping{A: a, B: b, Source: source}, nil
	}

	return ParsedUnitMapping{}, &ingerr.ParseError{Input: input, Context: "unit mapping: no '=' or '/' found"}
}

// splitSourceTrailer splits off a trailing " @ source" attribution at
// the LAST occurrence of " @ ": everything after it is the source, so a
// source that itself contains " @ " keeps only its final part.
func splitSourceTrailer(input string) (body string, source *string) {
	if idx := strings.LastIndex(input, " @ "); idx >= 0 {
		s := strings.TrimSpace(input[idx+3:])
		return strings.TrimSpace(input[:idx]), &s
	}
	return strings.TrimSpace(input), nil
}

// parseWholeMeasure parses a measure that must consume its entire
// input (after trimming), e.g. "4 lb" or "$5".
func parseWholeMeasure(mp *MeasurementParser, s string) (unit.Measure, bool) {
	rest, m, ok := mp.parseSingleMeasurement(s)
	if !ok {
		return unit.Measure{}, false
	}
	if strings.TrimSpace(rest) != "" {
		return unit.Measure{}, false
	}
	return m, true
}

// ParseMeasurement parses a single measure that must consume all of
// input, e.g. "2 cups" or "$5". Unlike ParseMeasurementList, it does
// not accept a separated list and fails if any input is left over.
func ParseMeasurement(input string) (unit.Measure, bool) {
	return parseWholeMeasure(New(nil, false), input)
}
