package unit

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/recipeparse/ingredient/ingerr"
)

// Measure is a value+unit pair with an optional upper bound, used both
// for a single amount and for a "value to upper" or "up to upper" range.
//
// Invariants: when UpperValue is non-nil, either Value == 0 (the "up to"
// encoding) or Value <= *UpperValue; Unit is always normalised.
type Measure struct {
	unit       Unit
	value      float64
	upperValue *float64
}

// New constructs a Measure with no upper bound.
func New(unitStr string, value float64) Measure {
	return Measure{unit: FromString(unitStr).Normalize(), value: value}
}

// NewWithUpper constructs a Measure with an explicit (possibly nil) upper bound.
func NewWithUpper(u Unit, value float64, upper *float64) Measure {
	return Measure{unit: u.Normalize(), value: value, upperValue: upper}
}

// WithRange constructs a value-to-upper range measure.
func WithRange(unitStr string, value, upper float64) Measure {
	u := upper
	return Measure{unit: FromString(unitStr).Normalize(), value: value, upperValue: &u}
}

// FromParts singularises unitStr, resolves it to a Unit, and constructs
// a Measure, optionally with an upper bound.
func FromParts(unitStr string, value float64, upper *float64) Measure {
	return Measure{unit: FromString(Singular(unitStr)).Normalize(), value: value, upperValue: upper}
}

// Unit returns the measure's unit.
func (m Measure) Unit() Unit { return m.unit }

// Values returns (value, upperValue, hasUpper).
func (m Measure) Values() (float64, *float64, bool) {
	return m.value, m.upperValue, m.upperValue != nil
}

// Kind derives the MeasureKind from the measure's unit.
func (m Measure) Kind() MeasureKind { return KindOf(m.unit) }

// normalizationRule describes a single non-base unit's multiplicative
// factor to reach the base unit of its kind.
type normalizationRule struct {
	unit   Unit
	factor float64
}

var normalizationRules = []normalizationRule{
	// weight -> gram
	{Kilogram, 1000},
	{Ounce, 28.3495},
	{Pound, 453.592},
	// volume -> teaspoon
	{Tablespoon, 3},
	{Cup, 48},
	{Quart, 192},
	{FluidOunce, 6},
	{Liter, 202.884},
	{Milliliter, 0.202884},
	// money -> cent
	{Dollar, 100},
	// time -> second
	{Minute, 60},
	{Hour, 3600},
	{Day, 86400},
}

func findNormalizationRule(u Unit) (normalizationRule, bool) {
	for _, r := range normalizationRules {
		if r.unit.Equal(u) {
			return r, true
		}
	}
	return normalizationRule{}, false
}

// Normalize converts the measure to the base unit of its kind (gram,
// teaspoon, cent, second). Other(x) is normalised to Other(singular(x))
// with its value unchanged. Temperature, length and calories have no
// smaller base unit and pass through unchanged.
func (m Measure) Normalize() Measure {
	if m.unit.IsOther() {
		return Measure{unit: m.unit.Normalize(), value: m.value, upperValue: m.upperValue}
	}
	rule, ok := findNormalizationRule(m.unit)
	if !ok {
		return m
	}
	base := rule.unit
	switch rule.unit {
	case Kilogram, Ounce, Pound:
		base = Gram
	case Tablespoon, Cup, Quart, FluidOunce, Liter, Milliliter:
		base = Teaspoon
	case Dollar:
		base = Cent
	case Minute, Hour, Day:
		base = Second
	}
	var upper *float64
	if m.upperValue != nil {
		u := *m.upperValue * rule.factor
		upper = &u
	}
	return Measure{unit: base, value: m.value * rule.factor, upperValue: upper}
}

// Denormalize applies a heuristic "best fit" display unit for base
// units only; every other unit passes through unchanged.
//
//   - Teaspoon: <3 -> tsp, <12 -> tbsp, <192 -> cup, else -> quart.
//   - Second: <60 -> s, <3600 -> min, <86400 -> hr, else -> day.
//   - Cent -> dollar, always.
func (m Measure) Denormalize() Measure {
	v := m.displayValue()
	switch m.unit {
	case Teaspoon:
		switch {
		case v < 3:
			return m
		case v < 12:
			return m.convertedTo(Tablespoon, 1.0/3)
		case v < 192:
			return m.convertedTo(Cup, 1.0/48)
		default:
			return m.convertedTo(Quart, 1.0/192)
		}
	case Second:
		switch {
		case v < 60:
			return m
		case v < 3600:
			return m.convertedTo(Minute, 1.0/60)
		case v < 86400:
			return m.convertedTo(Hour, 1.0/3600)
		default:
			return m.convertedTo(Day, 1.0/86400)
		}
	case Cent:
		return m.convertedTo(Dollar, 1.0/100)
	default:
		return m
	}
}

// displayValue picks the value used to choose a denormalisation tier:
// the upper bound when present (a range should be displayed in the
// unit that fits its largest member), else the plain value.
func (m Measure) displayValue() float64 {
	if m.upperValue != nil {
		return *m.upperValue
	}
	return m.value
}

func (m Measure) convertedTo(u Unit, factor float64) Measure {
	var upper *float64
	if m.upperValue != nil {
		x := *m.upperValue * factor
		upper = &x
	}
	return Measure{unit: u, value: m.value * factor, upperValue: upper}
}

// Add combines two measures of the same normalised kind, summing value
// and combining upper bounds pairwise. If b's kind is Other(_), a is
// returned unchanged -- a documented, intentionally surprising quirk
// preserved from the source parser (it permits silently dropping
// un-categorisable addends, e.g. a "plus a pinch" clause).
func (m Measure) Add(o Measure) (Measure, error) {
	if o.Kind().IsOther() {
		return m, nil
	}
	if !m.Kind().Equal(o.Kind()) {
		return Measure{}, &ingerr.MeasureError{Operation: "add", Reason: fmt.Sprintf("incompatible kinds: %s vs %s", m.Kind(), o.Kind())}
	}
	a := m.Normalize()
	b := o.Normalize()
	var upper *float64
	switch {
	case a.upperValue != nil && b.upperValue != nil:
		u := *a.upperValue + *b.upperValue
		upper = &u
	case a.upperValue != nil:
		u := *a.upperValue + b.value
		upper = &u
	case b.upperValue != nil:
		u := a.value + *b.upperValue
		upper = &u
	}
	return Measure{unit: a.unit, value: a.value + b.value, upperValue: upper}, nil
}

// ConvertTo converts the measure to an arbitrary unit of the same
// normalised base (e.g. any volume unit to any other volume unit),
// returning ok=false if the two units don't share a base unit.
func (m Measure) ConvertTo(target Unit) (Measure, bool) {
	normalizedTarget := target.Normalize()
	a := m.Normalize()
	targetRule, targetIsBase := baseUnitOf(normalizedTarget)
	if !targetIsBase {
		rule, ok := findNormalizationRule(normalizedTarget)
		if !ok || !baseUnitEqual(a.unit, rule) {
			return Measure{}, false
		}
		return a.convertedTo(normalizedTarget, 1.0/rule.factor), true
	}
	if !a.unit.Equal(targetRule) {
		return Measure{}, false
	}
	return a, true
}

// baseUnitOf reports whether u is itself one of the four base units
// (Gram, Teaspoon, Cent, Second), returning u unchanged when so.
func baseUnitOf(u Unit) (Unit, bool) {
	switch u {
	case Gram, Teaspoon, Cent, Second:
		return u, true
	default:
		return Unit{}, false
	}
}

// baseUnitEqual reports whether measureUnit is the base unit that
// rule's unit normalises to.
func baseUnitEqual(measureUnit Unit, rule normalizationRule) bool {
	switch rule.unit {
	case Kilogram, Ounce, Pound:
		return measureUnit.Equal(Gram)
	case Tablespoon, Cup, Quart, FluidOunce, Liter, Milliliter:
		return measureUnit.Equal(Teaspoon)
	case Dollar:
		return measureUnit.Equal(Cent)
	case Minute, Hour, Day:
		return measureUnit.Equal(Second)
	default:
		return false
	}
}

// unitAsString returns the canonical string for the measure's unit,
// pluralised for Cup and Minute when the displayed quantity exceeds one.
func (m Measure) unitAsString() string {
	s := m.unit.String()
	if m.unit == Cup || m.unit == Minute {
		if m.displayValue() > 1 {
			return s + "s"
		}
	}
	return s
}

// String renders the measure for display: denormalised value(s) plus
// the (possibly pluralised) unit string. Ranges render as
// "value - upper unit"; the "up to" encoding (value == 0) renders as
// "upper unit".
func (m Measure) String() string {
	d := m.Denormalize()
	unitStr := d.unitAsString()
	if d.upperValue != nil && *d.upperValue != 0 {
		if d.value == 0 {
			return fmt.Sprintf("%s %s", numWithoutZeroes(*d.upperValue), unitStr)
		}
		return fmt.Sprintf("%s - %s %s", numWithoutZeroes(d.value), numWithoutZeroes(*d.upperValue), unitStr)
	}
	return fmt.Sprintf("%s %s", numWithoutZeroes(d.value), unitStr)
}

// MarshalJSON encodes the measure as {"unit", "value", "upper_value"},
// with the unit as its canonical string and upper_value null when the
// measure has no upper bound.
func (m Measure) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Unit       string   `json:"unit"`
		Value      float64  `json:"value"`
		UpperValue *float64 `json:"upper_value"`
	}{m.unit.String(), m.value, m.upperValue})
}

// numWithoutZeroes formats v to two decimal places and trims trailing
// zeros (and a bare trailing decimal point), matching the source's
// num_without_zeroes helper.
func numWithoutZeroes(v float64) string {
	s := strconv.FormatFloat(v, 'f', 2, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	return s
}

func truncate3Decimals(v float64) float64 {
	return math.Trunc(v*1000) / 1000
}

func roundToInt(v float64) float64 {
	return math.Round(v)
}
