package unit

import "testing"

func TestIsValid(t *testing.T) {
	addons := map[string]struct{}{}
	if !IsValid(addons, "oz") {
		t.Error("oz should be a valid built-in unit")
	}
	if !IsValid(addons, "TABLESPOONS") {
		t.Error("TABLESPOONS should fold to a valid built-in unit")
	}
	if IsValid(addons, "slice") {
		t.Error("slice is not built-in and not registered as an addon")
	}
	addons["slice"] = struct{}{}
	if !IsValid(addons, "slice") {
		t.Error("slice should be valid once registered as an addon")
	}
}

func TestFromStringRoundTrip(t *testing.T) {
	if FromString("oz") != Ounce {
		t.Error("oz should resolve to Ounce")
	}
	if FromString("gram").String() != "gram" {
		t.Errorf("gram canonical string = %q, want gram", FromString("gram").String())
	}
	other := FromString("foo")
	if !other.IsOther() {
		t.Error("foo should resolve to Other")
	}
	if other.String() != "foo" {
		t.Errorf("Other string = %q, want foo", other.String())
	}
}

func TestIsAddonUnit(t *testing.T) {
	addons := map[string]struct{}{"pinch": {}}
	if !IsAddonUnit(addons, "pinch") {
		t.Error("pinch should be an addon unit")
	}
	if IsAddonUnit(addons, "oz") {
		t.Error("oz is built-in, not addon-only")
	}
}
