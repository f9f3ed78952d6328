// Package ingredient parses free-form recipe ingredient lines --
// "2 1/2 cups flour, sifted" -- into structured Ingredient values with
// amounts, a name, an optional modifier, and an optional flag.
//
// The grammar, unit vocabulary, and measure algebra live in the
// parser and unit subpackages; this package wires them together behind
// a small public API and adds the recipe-level conveniences (trace
// capture, name consolidation) that sit above a single parse call.
package ingredient
