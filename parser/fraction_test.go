package parser

import "testing"

func TestParseFractionNumber(t *testing.T) {
	tests := []struct {
		input    string
		expected float64
		rest     string
	}{
		{"1 ⅛ cups", 1.125, " cups"},
		{"½ cup", 0.5, " cup"},
		{"3/4 cup", 0.75, " cup"},
		{"1 1/2 cups", 1.5, " cups"},
		{"¾", 0.75, ""},
	}

	for _, tt := range tests {
		rest, v, ok := parseFractionNumber(tt.input)
		if !ok {
			t.Fatalf("parseFractionNumber(%q): expected ok, got failure", tt.input)
		}
		if v != tt.expected {
			t.Errorf("parseFractionNumber(%q) = %v, want %v", tt.input, v, tt.expected)
		}
		if rest != tt.rest {
			t.Errorf("parseFractionNumber(%q) rest = %q, want %q", tt.input, rest, tt.rest)
		}
	}
}

func TestParseFractionNumberRejectsBareWhole(t *testing.T) {
	if _, _, ok := parseFractionNumber("1 cup"); ok {
		t.Fatalf("bare whole number should not parse as a fraction")
	}
}

func TestParseVulgarFractionTable(t *testing.T) {
	cases := map[rune]float64{
		'¾': 0.75, '⅛': 0.125, '¼': 0.25, '⅓': 1.0 / 3.0, '½': 0.5,
		'⅔': 2.0 / 3.0, '⅕': 0.2, '⅖': 0.4, '⅗': 0.6, '⅘': 0.8,
		'⅙': 1.0 / 6.0, '⅚': 5.0 / 6.0, '⅐': 1.0 / 7.0, '⅑': 1.0 / 9.0, '⅒': 0.1,
	}
	if len(cases) != 15 {
		t.Fatalf("test table itself should have 15 entries, has %d", len(cases))
	}
	for r, want := range cases {
		if got, ok := vulgarFractions[r]; !ok || got != want {
			t.Errorf("vulgarFractions[%q] = %v, %v, want %v, true", r, got, ok, want)
		}
	}
}
