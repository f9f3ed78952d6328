package parser

import (
	"testing"

	"github.com/recipeparse/ingredient/unit"
)

func TestParseSingleMeasurementBasic(t *testing.T) {
	p := New(nil, false)
	rest, m, ok := p.parseSingleMeasurement("2 cups")
	if !ok {
		t.Fatalf("expected ok")
	}
	if rest != "" {
		t.Errorf("rest = %q, want %q", rest, "")
	}
	v, _, _ := m.Values()
	if v != 2 || m.Unit() != unit.Cup {
		t.Errorf("m = %v %v, want 2 Cup", v, m.Unit())
	}
}

func TestParseSingleMeasurementNumericRange(t *testing.T) {
	p := New(nil, false)
	_, m, ok := p.parseSingleMeasurement("2 - 3 cups")
	if !ok {
		t.Fatalf("expected ok")
	}
	v, upper, hasUpper := m.Values()
	if v != 2 || !hasUpper || *upper != 3 || m.Unit() != unit.Cup {
		t.Errorf("m = %v-%v %v, want 2-3 Cup", v, upper, m.Unit())
	}
}

func TestParseOneMeasurementDualUnitRange(t *testing.T) {
	p := New(nil, false)
	_, m, ok := p.parseOneMeasurement("2 cups - 3 cups")
	if !ok {
		t.Fatalf("expected ok")
	}
	v, upper, hasUpper := m.Values()
	if v != 2 || !hasUpper || *upper != 3 || m.Unit() != unit.Cup {
		t.Errorf("m = %v-%v %v, want 2-3 Cup", v, upper, m.Unit())
	}
}

func TestParseSingleMeasurementMultiplier(t *testing.T) {
	p := New(nil, false)
	_, m, ok := p.parseSingleMeasurement("2 x 200g")
	if !ok {
		t.Fatalf("expected ok")
	}
	v, _, _ := m.Values()
	if v != 400 || m.Unit() != unit.Gram {
		t.Errorf("m = %v %v, want 400 Gram", v, m.Unit())
	}
}

func TestParseSingleMeasurementLeadingCurrency(t *testing.T) {
	p := New(nil, false)
	rest, m, ok := p.parseSingleMeasurement("$5 per pound")
	if !ok {
		t.Fatalf("expected ok")
	}
	if rest != " per pound" {
		t.Errorf("rest = %q, want %q", rest, " per pound")
	}
	v, _, _ := m.Values()
	if v != 5 || m.Unit() != unit.Dollar {
		t.Errorf("m = %v %v, want 5 Dollar", v, m.Unit())
	}
}

func TestParseOneMeasurementPlusExpressionSums(t *testing.T) {
	p := New(nil, false)
	rest, m, ok := p.parseOneMeasurement("1 cup plus 2 tbsp")
	if !ok {
		t.Fatalf("expected ok")
	}
	if rest != "" {
		t.Errorf("rest = %q, want %q", rest, "")
	}
	v, _, _ := m.Values()
	if v != 54 || m.Unit() != unit.Teaspoon {
		t.Errorf("m = %v %v, want 54 Teaspoon (1 cup + 2 tbsp, normalised)", v, m.Unit())
	}
}

func TestParseMeasurementListCommaSeparated(t *testing.T) {
	p := New(nil, false)
	rest, ms, ok := p.ParseMeasurementList("2 cups, 1 tsp")
	if !ok {
		t.Fatalf("expected ok")
	}
	if rest != "" {
		t.Errorf("rest = %q, want %q", rest, "")
	}
	if len(ms) != 2 {
		t.Fatalf("len(ms) = %d, want 2", len(ms))
	}
	v0, _, _ := ms[0].Values()
	v1, _, _ := ms[1].Values()
	if v0 != 2 || ms[0].Unit() != unit.Cup {
		t.Errorf("ms[0] = %v %v, want 2 Cup", v0, ms[0].Unit())
	}
	if v1 != 1 || ms[1].Unit() != unit.Teaspoon {
		t.Errorf("ms[1] = %v %v, want 1 Teaspoon", v1, ms[1].Unit())
	}
}

func TestParseUnitOnlyDisabledInRichText(t *testing.T) {
	p := New(map[string]struct{}{"pinch": {}}, true)
	if _, _, ok := p.parseUnitOnly("pinch of salt"); ok {
		t.Fatal("parseUnitOnly must be disabled in rich-text mode")
	}
}

func TestParseUnitOnlyImplicitQuantity(t *testing.T) {
	p := New(map[string]struct{}{"pinch": {}}, false)
	rest, m, ok := p.parseUnitOnly("pinch of salt")
	if !ok {
		t.Fatalf("expected ok")
	}
	if rest != " salt" {
		t.Errorf("rest = %q, want %q", rest, " salt")
	}
	v, _, _ := m.Values()
	if v != 1.0 {
		t.Errorf("implicit quantity = %v, want 1.0", v)
	}
}
