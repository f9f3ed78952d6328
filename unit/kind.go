package unit

import "strings"

// MeasureKind is the broad category a Unit belongs to, derived purely
// from the unit itself.
type MeasureKind struct {
	tag     string // Weight, Volume, Money, Time, Temperature, Length, Calories, Nutrient, Other
	payload string // only set for Nutrient and Other
}

var (
	Weight      = MeasureKind{tag: "Weight"}
	Volume      = MeasureKind{tag: "Volume"}
	Money       = MeasureKind{tag: "Money"}
	Time        = MeasureKind{tag: "Time"}
	Temperature = MeasureKind{tag: "Temperature"}
	Length      = MeasureKind{tag: "Length"}
	Calories    = MeasureKind{tag: "Calories"}
)

// NutrientKind constructs the Nutrient(s) variant.
func NutrientKind(s string) MeasureKind { return MeasureKind{tag: "Nutrient", payload: s} }

// OtherKind constructs the Other(s) variant.
func OtherKind(s string) MeasureKind { return MeasureKind{tag: "Other", payload: s} }

// Equal compares two kinds for value equality.
func (k MeasureKind) Equal(o MeasureKind) bool { return k.tag == o.tag && k.payload == o.payload }

// String renders a debug-friendly tag for the kind.
func (k MeasureKind) String() string {
	switch k.tag {
	case "Nutrient", "Other":
		return k.tag + "(" + k.payload + ")"
	default:
		return k.tag
	}
}

// IsOther reports whether k is the free-form Other(_) variant.
func (k MeasureKind) IsOther() bool { return k.tag == "Other" }

// Scalable reports whether values of this kind may be freely multiplied
// by a recipe scaling factor. Weight, Volume and Other are scalable;
// Money, Time, Temperature, Length, Calories and Nutrient are not.
func (k MeasureKind) Scalable() bool {
	switch k.tag {
	case "Weight", "Volume", "Other":
		return true
	default:
		return false
	}
}

// Unit returns the base unit this kind normalises to, used by the
// conversion graph to find the destination node for a target kind.
func (k MeasureKind) Unit() Unit {
	switch k.tag {
	case "Weight":
		return Gram
	case "Volume":
		return Teaspoon
	case "Money":
		return Cent
	case "Time":
		return Second
	case "Temperature":
		return Fahrenheit
	case "Length":
		return Inch
	case "Calories":
		return KCal
	case "Nutrient", "Other":
		return Other(k.payload)
	default:
		return Whole
	}
}

// nutrientPrefixes and nutrientSuffixes gate the heuristic that detects
// a free-form unit string like "20g protein" as a Nutrient kind rather
// than a generic Other kind.
var nutrientPrefixes = map[string]struct{}{
	"g": {}, "mg": {}, "ug": {}, "µg": {}, "mcg": {}, "kcal": {}, "iu": {},
}

var nutrientSuffixes = map[string]struct{}{
	"protein": {}, "fat": {}, "carbs": {}, "carbohydrates": {}, "fiber": {},
	"sugar": {}, "sodium": {}, "cholesterol": {}, "calcium": {}, "iron": {},
	"potassium": {}, "vitamin": {},
}

// isNutrientUnit reports whether s (an Other unit's payload) looks like
// "<amount-unit> <nutrient-name>", e.g. "g protein" or "mg sodium".
func isNutrientUnit(s string) bool {
	fields := strings.Fields(s)
	if len(fields) != 2 {
		return false
	}
	if _, ok := nutrientPrefixes[strings.ToLower(fields[0])]; !ok {
		return false
	}
	_, ok := nutrientSuffixes[strings.ToLower(fields[1])]
	return ok
}

// KindOf derives the MeasureKind for a Unit.
func KindOf(u Unit) MeasureKind {
	if u.IsOther() {
		payload, _ := u.OtherPayload()
		if isNutrientUnit(payload) {
			return NutrientKind(payload)
		}
		return OtherKind(payload)
	}
	switch u {
	case Gram, Kilogram, Ounce, Pound:
		return Weight
	case Liter, Milliliter, Teaspoon, Tablespoon, Cup, Quart, FluidOunce:
		return Volume
	case Cent, Dollar:
		return Money
	case Day, Hour, Minute, Second:
		return Time
	case Fahrenheit, Celsius:
		return Temperature
	case Inch:
		return Length
	case KCal:
		return Calories
	default:
		// Whole and any unmodeled built-in fall back to Other keyed by
		// the canonical string, matching the source's treatment of
		// units with no smaller/larger subdivision.
		return OtherKind(u.String())
	}
}
