// Package unit implements the ingredient measurement vocabulary: the
// Unit enumeration, the Measure value type and its algebra, and the
// conversion graph used to translate between measurement kinds.
package unit

import (
	"strings"

	"golang.org/x/text/cases"
)

var foldCase = cases.Fold()

// Unit is a known measurement unit, or Other for any unrecognised
// string (including caller-registered addon units).
type Unit struct {
	kind string // internal tag; "" for Other
	name string // canonical lowercase name; for Other, the singularised payload
}

// Equal compares two units for value equality.
func (u Unit) Equal(o Unit) bool { return u.kind == o.kind && u.name == o.name }

// IsOther reports whether u is the Other(...) variant.
func (u Unit) IsOther() bool { return u.kind == "" }

// OtherPayload returns the payload string for an Other unit, and ok=false
// for any built-in unit.
func (u Unit) OtherPayload() (string, bool) {
	if !u.IsOther() {
		return "", false
	}
	return u.name, true
}

func builtin(tag string) Unit { return Unit{kind: tag, name: tag} }

// Other constructs the Other(s) variant with s lower-cased and singularised.
func Other(s string) Unit { return Unit{name: Singular(s)} }

// Built-in units, one per surface form the vocabulary recognises.
var (
	Gram       = builtin("gram")
	Kilogram   = builtin("kilogram")
	Liter      = builtin("liter")
	Milliliter = builtin("milliliter")
	Teaspoon   = builtin("teaspoon")
	Tablespoon = builtin("tablespoon")
	Cup        = builtin("cup")
	Quart      = builtin("quart")
	FluidOunce = builtin("fluidounce")
	Ounce      = builtin("ounce")
	Pound      = builtin("pound")
	Cent       = builtin("cent")
	Dollar     = builtin("dollar")
	KCal       = builtin("kcal")
	Day        = builtin("day")
	Hour       = builtin("hour")
	Minute     = builtin("minute")
	Second     = builtin("second")
	Fahrenheit = builtin("fahrenheit")
	Celsius    = builtin("celsius")
	Inch       = builtin("inch")
	Whole      = builtin("whole")
)

// unitMapping is the single source of truth for string<->Unit lookups,
// mirroring the donor table-driven style (fraction.go's commonFractions,
// token.go's keywords map) and the original source's UNIT_MAPPINGS table.
var unitMapping = []struct {
	s string
	u Unit
}{
	{"gram", Gram}, {"grams", Gram}, {"g", Gram},
	{"kilogram", Kilogram}, {"kg", Kilogram},
	{"liter", Liter}, {"litre", Liter}, {"l", Liter},
	{"milliliter", Milliliter}, {"millilitre", Milliliter}, {"ml", Milliliter},
	{"teaspoon", Teaspoon}, {"tsp", Teaspoon},
	{"tablespoon", Tablespoon}, {"tbsp", Tablespoon},
	{"cup", Cup}, {"c", Cup},
	{"quart", Quart}, {"q", Quart},
	{"fluid oz", FluidOunce}, {"fl oz", FluidOunce}, {"fluid ounce", FluidOunce},
	{"ounce", Ounce}, {"oz", Ounce},
	{"pound", Pound}, {"lb", Pound},
	{"cent", Cent},
	{"dollar", Dollar}, {"$", Dollar},
	{"calorie", KCal}, {"cal", KCal}, {"kcal", KCal},
	{"second", Second}, {"sec", Second}, {"s", Second},
	{"minute", Minute}, {"min", Minute},
	{"hour", Hour}, {"hr", Hour},
	{"day", Day},
	{"fahrenheit", Fahrenheit}, {"f", Fahrenheit}, {"°", Fahrenheit}, {"°f", Fahrenheit}, {"degrees", Fahrenheit},
	{"celsius", Celsius}, {"celcius", Celsius}, {"°c", Celsius},
	{"inch", Inch}, {"\"", Inch},
	{"whole", Whole}, {"each", Whole},
}

var (
	stringToUnit map[string]Unit
	unitToString map[Unit]string
)

func init() {
	stringToUnit = make(map[string]Unit, len(unitMapping))
	unitToString = make(map[Unit]string, len(unitMapping))
	for _, m := range unitMapping {
		stringToUnit[m.s] = m.u
		if _, exists := unitToString[m.u]; !exists {
			unitToString[m.u] = m.s
		}
	}
}

// Singular lowercases s and strips one trailing "s".
func Singular(s string) string {
	s2 := foldCase.String(s)
	return strings.TrimSuffix(s2, "s")
}

// FromString resolves a unit surface form (case-insensitive, already
// singularised by the caller or not) to a Unit. Unknown strings become
// Other(singular(s)).
func FromString(s string) Unit {
	if u, ok := stringToUnit[Singular(s)]; ok {
		return u
	}
	if u, ok := stringToUnit[foldCase.String(s)]; ok {
		return u
	}
	return Other(s)
}

// String renders the canonical surface form for a unit.
func (u Unit) String() string {
	if u.IsOther() {
		return u.name
	}
	if s, ok := unitToString[u]; ok {
		return s
	}
	return u.name
}

// Normalize singularises an Other unit's payload; built-in units are
// already canonical and are returned unchanged.
func (u Unit) Normalize() Unit {
	if u.IsOther() {
		return Other(u.name)
	}
	return u
}

// IsValid reports whether s names a built-in unit, or is present in the
// caller-supplied addon set.
func IsValid(addons map[string]struct{}, s string) bool {
	if !FromString(Singular(s)).IsOther() {
		return true
	}
	_, ok := addons[foldCase.String(s)]
	return ok
}

// IsAddonUnit reports whether s is present only in the caller-supplied
// addon set, which is used to gate "unit-only" implicit-quantity parsing
// so that built-in units don't spuriously match bare-word patterns.
func IsAddonUnit(addons map[string]struct{}, s string) bool {
	_, ok := addons[foldCase.String(s)]
	return ok
}
