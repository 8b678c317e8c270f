package presets

import (
	"sort"
	"testing"
)

func TestRegisterLookupRoundTrip(t *testing.T) {
	defer clear()
	Register("widget", func() Preset {
		return Preset{Name: "widget", Description: "a test preset", Config: 42}
	})

	factory, ok := Lookup("widget")
	if !ok {
		t.Fatal("Lookup(\"widget\") = false, want true")
	}
	p := factory()
	if p.Name != "widget" || p.Description != "a test preset" || p.Config != 42 {
		t.Fatalf("factory() = %+v, want {widget, a test preset, 42}", p)
	}
}

func TestLookupUnknownName(t *testing.T) {
	defer clear()
	if _, ok := Lookup("does-not-exist"); ok {
		t.Fatal("Lookup of an unregistered name returned true")
	}
}

func TestRegisterIgnoresEmptyNameOrNilFactory(t *testing.T) {
	defer clear()
	Register("", func() Preset { return Preset{} })
	Register("nil-factory", nil)
	if len(presets) != 0 {
		t.Fatalf("len(presets) = %d, want 0", len(presets))
	}
}

func TestNamesListsEveryRegistration(t *testing.T) {
	defer clear()
	Register("a", func() Preset { return Preset{Name: "a"} })
	Register("b", func() Preset { return Preset{Name: "b"} })

	got := Names()
	sort.Strings(got)
	want := []string{"a", "b"}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Fatalf("Names() = %v, want %v", got, want)
	}
}

// clear resets the package-level registry between tests so they don't
// observe each other's registrations (or the real galaxy/life/elementary/
// briansbrain init() registrations pulled in by other packages under test).
func clear() {
	presets = map[string]Factory{}
}
