package parser

import (
	"strings"

	"github.com/recipeparse/ingredient/unit"
)

// defaultUnit is used when a measurement has a value but no matched
// unit text.
const defaultUnit = "whole"

// separators between list entries, tried in this exact order: longest
// and most specific first, so a bare space does not pre-empt " / ".
var listSeparators = []string{"; ", " / ", " | ", " × ", "× ", "/", ", ", " "}

// parseUnit consumes a greedy alpha run (plus ° and ") and reports
// whether it names a valid unit: built-in or present in the caller's
// addon set, or, when requireAddon is true, present in the addon set.
func (p *MeasurementParser) parseUnit(input string, requireAddon bool) (rest string, u unit.Unit, ok bool) {
	input = strings.TrimPrefix(input, " ")
	run, r := readUnitRun(input)
	if run == "" {
		return input, unit.Unit{}, false
	}
	if requireAddon {
		if !unit.IsAddonUnit(p.Units, run) {
			return input, unit.Unit{}, false
		}
	} else if !unit.IsValid(p.Units, run) {
		return input, unit.Unit{}, false
	}
	r, _ = consumeOptionalPeriodOrOf(r)
	return r, unit.FromString(run), true
}

// parseUnitAfterParens handles "4 (13-mm/½-inch) slices": when no unit
// directly follows a value, and the remainder is a parenthesised
// descriptor followed by a known unit, skip the parens and adopt that
// unit.
func (p *MeasurementParser) parseUnitAfterParens(input string) (rest string, u unit.Unit, ok bool) {
	trimmed := strings.TrimLeft(input, " ")
	if !strings.HasPrefix(trimmed, "(") {
		return input, unit.Unit{}, false
	}
	depth := 0
	i := 0
	for i < len(trimmed) {
		switch trimmed[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				i++
				goto closed
			}
		}
		i++
	}
	return input, unit.Unit{}, false
closed:
	after := strings.TrimLeft(trimmed[i:], " ")
	return p.parseUnit(after, false)
}

// parseUnitOnly parses a standalone addon unit with an implicit
// quantity of 1.0, e.g. "bunch of parsley". Built-in units such as
// "cup" are not accepted here. Disabled entirely in rich-text
// mode, where implicit quantities are a common source of false
// positives.
func (p *MeasurementParser) parseUnitOnly(input string) (rest string, m unit.Measure, ok bool) {
	if p.RichText {
		return input, unit.Measure{}, false
	}
	r, u, uok := p.parseUnit(input, true)
	if !uok {
		return input, unit.Measure{}, false
	}
	return r, unit.NewWithUpper(u, 1.0, nil), true
}

// parseSingleMeasurement parses one measurement: an optional "about ",
// an optional "<n> x " multiplier, a value (possibly a range), an
// optional unit, and trailing punctuation.
func (p *MeasurementParser) parseSingleMeasurement(input string) (rest string, m unit.Measure, ok bool) {
	r := input
	r = strings.TrimPrefix(r, "about ")

	if cr, cm, cok := p.parseLeadingCurrency(r); cok {
		return cr, cm, true
	}

	if mr, mult, mok := p.parseMultiplier(r); mok {
		rr, val, upper, vok := p.getValue(mr)
		if vok {
			val *= mult
			if upper != nil {
				u := *upper * mult
				upper = &u
			}
			return p.finishSingleMeasurement(rr, val, upper)
		}
	}

	rr, val, upper, vok := p.getValue(r)
	if !vok {
		return input, unit.Measure{}, false
	}
	return p.finishSingleMeasurement(rr, val, upper)
}

// parseLeadingCurrency parses "$5" / "$4.50" style amounts, where the
// unit symbol precedes rather than follows the value.
func (p *MeasurementParser) parseLeadingCurrency(input string) (rest string, m unit.Measure, ok bool) {
	if !strings.HasPrefix(input, "$") {
		return input, unit.Measure{}, false
	}
	r, val, upper, vok := p.getValue(input[1:])
	if !vok {
		return input, unit.Measure{}, false
	}
	r, _ = consumeOptionalPeriodOrOf(r)
	return r, unit.NewWithUpper(unit.Dollar, val, upper), true
}

func (p *MeasurementParser) finishSingleMeasurement(rest string, val float64, upper *float64) (string, unit.Measure, bool) {
	afterDash := consumeOptionalDashSeparator(rest)

	if ur, u, uok := p.parseUnit(afterDash, false); uok {
		return ur, unit.NewWithUpper(u, val, upper), true
	}
	if ur, u, uok := p.parseUnitAfterParens(afterDash); uok {
		return ur, unit.NewWithUpper(u, val, upper), true
	}

	if startsWithDimensionSuffix(afterDash) {
		return rest, unit.Measure{}, false
	}

	// A consumed trailing period (as in "375. Combine") marks a
	// sentence break rather than a step-number pattern, so it exempts
	// the remainder from the step-number rejection below even though
	// the next word is capitalized.
	_, periodConsumed := consumeOptionalPeriodOrOf(afterDash)
	if p.RichText && !periodConsumed && looksLikeStepNumber(afterDash) {
		return rest, unit.Measure{}, false
	}

	defaultMeasure := unit.NewWithUpper(unit.FromString(defaultUnit), val, upper)
	if p.RichText {
		// Leave the period/"of" in place: rich text reproduces the
		// input verbatim around extracted chunks, so that punctuation
		// belongs to the following Text chunk, not this one.
		return afterDash, defaultMeasure, true
	}
	finalRest, _ := consumeOptionalPeriodOrOf(afterDash)
	return finalRest, defaultMeasure, true
}

// parsePlusExpression parses "<measurement> plus <measurement>" and
// sums the two. If the sum fails because the kinds are incompatible,
// the first measurement alone is returned -- a silent fallback
// preserved from the source grammar.
func (p *MeasurementParser) parsePlusExpression(input string) (rest string, m unit.Measure, ok bool) {
	r, first, fok := p.parseSingleMeasurement(input)
	if !fok {
		return input, unit.Measure{}, false
	}
	if !strings.HasPrefix(r, " plus ") {
		return input, unit.Measure{}, false
	}
	r2, second, sok := p.parseSingleMeasurement(r[len(" plus "):])
	if !sok {
		return input, unit.Measure{}, false
	}
	if sum, err := first.Add(second); err == nil {
		return r2, sum, true
	}
	return r2, first, true
}

// parseRangeWithUnits parses "<about?><value><range_end><unit>?" where
// both sides may carry a unit. If both units are present and differ,
// the alternative fails without consuming input, letting the caller's
// list still succeed without this alternative.
func (p *MeasurementParser) parseRangeWithUnits(input string) (rest string, m unit.Measure, ok bool) {
	r := strings.TrimPrefix(input, "about ")
	r, lowerVal, _, vok := p.parseValueWithOptionalRange(r)
	if !vok {
		return input, unit.Measure{}, false
	}
	r, lowerUnit, hasLowerUnit := p.parseUnit(r, false)

	r2, upperVal, uok := p.parseRangeEnd(r)
	if !uok {
		return input, unit.Measure{}, false
	}
	r2, upperUnit, hasUpperUnit := p.parseUnit(r2, false)

	if hasLowerUnit && hasUpperUnit && lowerUnit != upperUnit {
		return input, unit.Measure{}, false
	}

	u := lowerUnit
	if !hasLowerUnit {
		if hasUpperUnit {
			u = upperUnit
		} else {
			u = unit.FromString(defaultUnit)
		}
	}
	finalRest, _ := consumeOptionalPeriodOrOf(r2)
	return finalRest, unit.NewWithUpper(u, lowerVal, &upperVal), true
}

// parseParenthesizedAmounts parses "(" <measurement list> ")".
func (p *MeasurementParser) parseParenthesizedAmounts(input string) (rest string, ms []unit.Measure, ok bool) {
	if !strings.HasPrefix(input, "(") {
		return input, nil, false
	}
	r := input[1:]
	r, inner, iok := p.ParseMeasurementList(r)
	if !iok {
		return input, nil, false
	}
	if !strings.HasPrefix(r, ")") {
		return input, nil, false
	}
	return r[1:], inner, true
}

// ParseMeasurementList parses a separator-delimited list of measures.
// Separators are tried in the documented order; each position tries,
// in order: plus-expression, range-with-units, parenthesised list,
// single measurement, and (normal mode only) unit-only.
func (p *MeasurementParser) ParseMeasurementList(input string) (rest string, ms []unit.Measure, ok bool) {
	r, m, mok := p.parseOneMeasurement(input)
	if !mok {
		return input, nil, false
	}
	result := []unit.Measure{m}
	for {
		matched := false
		for _, sep := range listSeparators {
			if !strings.HasPrefix(r, sep) {
				continue
			}
			candidateRest := r[len(sep):]
			nr, nm, nok := p.parseOneMeasurement(candidateRest)
			if nok {
				result = append(result, nm)
				r = nr
				matched = true
				break
			}
		}
		if !matched {
			break
		}
	}
	return r, result, true
}

// parseOneMeasurement tries each grammar alternative in order at a
// single list position.
func (p *MeasurementParser) parseOneMeasurement(input string) (rest string, m unit.Measure, ok bool) {
	if r, pm, pok := p.parsePlusExpression(input); pok {
		return r, pm, true
	}
	if r, rm, rok := p.parseRangeWithUnits(input); rok {
		return r, rm, true
	}
	if r, ms, pok := p.parseParenthesizedAmounts(input); pok && len(ms) > 0 {
		combined := ms[0]
		for _, extra := range ms[1:] {
			if sum, err := combined.Add(extra); err == nil {
				combined = sum
			}
		}
		return r, combined, true
	}
	if r, sm, sok := p.parseSingleMeasurement(input); sok {
		return r, sm, true
	}
	if r, um, uok := p.parseUnitOnly(input); uok {
		return r, um, true
	}
	return input, unit.Measure{}, false
}
