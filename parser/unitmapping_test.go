package parser

import "testing"

func TestParseUnitMappingConversionForm(t *testing.T) {
	pm, err := ParseUnitMapping("4 lb = $5")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pm.Source != nil {
		t.Errorf("expected no source, got %v", *pm.Source)
	}
	av, _, _ := pm.A.Values()
	if av != 4 {
		t.Errorf("A value = %v, want 4", av)
	}
}

func TestParseUnitMappingPricePerForm(t *testing.T) {
	pm, err := ParseUnitMapping("$5/4lb")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	av, _, _ := pm.A.Values()
	if av != 4 {
		t.Errorf("A value = %v, want 4", av)
	}
}

func TestParseUnitMappingWithSource(t *testing.T) {
	pm, err := ParseUnitMapping("4 lb = $5 @ farmers market")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pm.Source == nil || *pm.Source != "farmers market" {
		t.Errorf("Source = %v, want %q", pm.Source, "farmers market")
	}
}

func TestParseUnitMappingInvalid(t *testing.T) {
	if _, err := ParseUnitMapping("not a mapping"); err == nil {
		t.Fatalf("expected an error for input with no '=' or '/'")
	}
}
