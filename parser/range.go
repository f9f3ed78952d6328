package parser

import "strings"

// rangeWordSeparators are the word-form range separators, tried after
// the dash forms.
var rangeWordSeparators = []string{"to", "through", "or"}

// parseRangeEnd parses the upper bound of a range after its lower
// bound: either dash syntax ("-"/"–", optional surrounding space) or
// word syntax ("to"/"through"/"or", mandatory surrounding whitespace).
func (p *MeasurementParser) parseRangeEnd(input string) (rest string, upper float64, ok bool) {
	trimmed := strings.TrimLeft(input, " ")
	for _, dash := range []string{"-", "–"} {
		if strings.HasPrefix(trimmed, dash) {
			r := strings.TrimLeft(trimmed[len(dash):], " ")
			return p.parseNumber(r)
		}
	}
	if !strings.HasPrefix(input, " ") {
		return input, 0, false
	}
	woSpace := strings.TrimLeft(input, " ")
	for _, sep := range rangeWordSeparators {
		if strings.HasPrefix(woSpace, sep+" ") {
			return p.parseNumber(woSpace[len(sep)+1:])
		}
	}
	return input, 0, false
}

// parseUpperBoundOnly parses "up to 5" / "at most 10" style phrases,
// encoding as (0, Some(upper)). It does not itself consume leading
// whitespace.
func (p *MeasurementParser) parseUpperBoundOnly(input string) (rest string, value float64, upper *float64, ok bool) {
	for _, prefix := range []string{"up to ", "at most "} {
		if strings.HasPrefix(input, prefix) {
			r, v, nok := p.parseNumber(input[len(prefix):])
			if !nok {
				continue
			}
			u := v
			return r, 0, &u, true
		}
	}
	return input, 0, nil, false
}

// parseValueWithOptionalRange parses a plain value, optionally followed
// by a range-end upper bound.
func (p *MeasurementParser) parseValueWithOptionalRange(input string) (rest string, value float64, upper *float64, ok bool) {
	r, v, nok := p.parseNumber(input)
	if !nok {
		return input, 0, nil, false
	}
	if r2, u, rok := p.parseRangeEnd(r); rok {
		return r2, v, &u, true
	}
	return r, v, nil, true
}

// getValue tries the upper-bound-only shape first, then a plain value
// with an optional range.
func (p *MeasurementParser) getValue(input string) (rest string, value float64, upper *float64, ok bool) {
	if r, v, u, uok := p.parseUpperBoundOnly(input); uok {
		return r, v, u, true
	}
	return p.parseValueWithOptionalRange(input)
}
