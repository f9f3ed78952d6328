package parser

import "testing"

func TestIngredientParserBasic(t *testing.T) {
	ip := NewIngredientParser()
	ing, ok := ip.Parse("2 1/2 cups flour")
	if !ok {
		t.Fatalf("expected ok")
	}
	if ing.Name != "flour" {
		t.Errorf("Name = %q, want %q", ing.Name, "flour")
	}
	if len(ing.Amounts) != 1 {
		t.Fatalf("Amounts = %v, want 1 entry", ing.Amounts)
	}
}

func TestIngredientParserOptional(t *testing.T) {
	ip := NewIngredientParser()
	ing, ok := ip.Parse("(1 tsp vanilla extract)")
	if !ok {
		t.Fatalf("expected ok")
	}
	if !ing.Optional {
		t.Errorf("expected Optional = true")
	}
	if ing.Name != "vanilla extract" {
		t.Errorf("Name = %q, want %q", ing.Name, "vanilla extract")
	}
}

func TestIngredientParserModifier(t *testing.T) {
	ip := NewIngredientParser()
	ing, ok := ip.Parse("1 onion, finely chopped")
	if !ok {
		t.Fatalf("expected ok")
	}
	if ing.Name != "onion" {
		t.Errorf("Name = %q, want %q", ing.Name, "onion")
	}
	if ing.Modifier == nil || *ing.Modifier != "finely chopped" {
		t.Errorf("Modifier = %v, want %q", ing.Modifier, "finely chopped")
	}
}

func TestIngredientParserAddonUnit(t *testing.T) {
	ip := NewIngredientParser()
	ing, ok := ip.Parse("2 cloves garlic, minced")
	if !ok {
		t.Fatalf("expected ok")
	}
	if ing.Name != "garlic" {
		t.Errorf("Name = %q, want %q", ing.Name, "garlic")
	}
	if len(ing.Amounts) != 1 {
		t.Fatalf("Amounts = %v, want 1 entry", ing.Amounts)
	}
}

func TestIngredientFromStringFallback(t *testing.T) {
	ip := NewIngredientParser()
	ing := ip.FromString("")
	if ing.Name != "" {
		t.Errorf("expected empty name for empty input")
	}
	if ing.Quality() != Unstructured {
		t.Errorf("expected Unstructured quality for a bare fallback")
	}
}

func TestIngredientQualityStructured(t *testing.T) {
	ip := NewIngredientParser()
	ing := ip.FromString("3 large eggs")
	if ing.Quality() != Structured {
		t.Errorf("expected Structured quality, got %v", ing.Quality())
	}
}
