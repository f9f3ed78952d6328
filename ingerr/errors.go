// Package ingerr defines the error taxonomy shared by the parser,
// measure algebra and conversion graph: ParseError, AmountParseError,
// MeasureError and Generic, mirroring the four-variant error enum of
// the original grammar this module was distilled from.
package ingerr

import "fmt"

// ParseError reports that a combinator could not match its input.
// It is returned by the unit-mapping parser. The ingredient entry
// points, ParseIngredientWithTrace included, never return it: they
// degrade to name=input instead.
type ParseError struct {
	Input   string
	Context string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error in %s: could not parse %q", e.Context, e.Input)
}

// AmountParseError reports that amount/measurement-level parsing failed.
type AmountParseError struct {
	Input  string
	Reason string
}

func (e *AmountParseError) Error() string {
	return fmt.Sprintf("amount parse error: %s (input: %q)", e.Reason, e.Input)
}

// MeasureError reports an invalid measure-algebra operation, such as
// adding two measures of incompatible kinds.
type MeasureError struct {
	Operation string
	Reason    string
}

func (e *MeasureError) Error() string {
	return fmt.Sprintf("measure error in %s: %s", e.Operation, e.Reason)
}

// Generic reports an internal invariant violation.
type Generic struct {
	Message string
}

func (e *Generic) Error() string { return e.Message }
