package style

import (
	"reflect"
	"testing"
)

func TestResolveTokenSubstitution(t *testing.T) {
	got := Resolve(PropertyMap{
		"background": String("--primary"),
		"color":      String("red"),
		"margin":     String("10px"),
	})

	want := Resolved{Style: PropertyMap{
		"background": String("var(--primary)"),
		"color":      String("red"),
		"margin":     String("10px"),
	}}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("Resolve() = %#v, want %#v", got, want)
	}
}

func TestResolveEmptyInputs(t *testing.T) {
	tests := []struct {
		name  string
		props PropertyMap
	}{
		{name: "nil map", props: nil},
		{name: "empty map", props: PropertyMap{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Resolve(tt.props)
			if got.Style == nil {
				t.Fatal("Resolve() returned nil style map, want empty map")
			}
			if len(got.Style) != 0 {
				t.Errorf("Resolve() style has %d entries, want 0", len(got.Style))
			}
		})
	}
}

func TestResolvePassThrough(t *testing.T) {
	hover := PropertyMap{"background": String("--accent")}

	tests := []struct {
		name  string
		value Value
	}{
		{name: "plain string", value: String("12px")},
		{name: "string with inner dashes", value: String("fit-content")},
		{name: "single dash prefix", value: String("-webkit-fill")},
		{name: "number", value: Number(1.5)},
		{name: "zero", value: Number(0)},
		{name: "nested variant map", value: hover},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Resolve(PropertyMap{"prop": tt.value})
			if !reflect.DeepEqual(got.Style["prop"], tt.value) {
				t.Errorf("Resolve() rewrote %#v to %#v, want identity", tt.value, got.Style["prop"])
			}
		})
	}
}

// Token references one level inside a variant map stay unresolved. The
// substitution rule inspects direct string values only.
func TestResolveDoesNotRecurse(t *testing.T) {
	got := Resolve(PropertyMap{
		"hover": PropertyMap{"background": String("--accent")},
	})

	nested, ok := got.Style["hover"].(PropertyMap)
	if !ok {
		t.Fatalf("nested map replaced with %#v", got.Style["hover"])
	}
	if nested["background"] != String("--accent") {
		t.Errorf("nested token resolved to %v, want untouched --accent", nested["background"])
	}
}

func TestResolveKeySetPreserved(t *testing.T) {
	props := PropertyMap{
		"background": String("--primary"),
		"padding":    String("16px"),
		"opacity":    Number(0.8),
		"hover":      PropertyMap{"opacity": Number(1)},
	}

	got := Resolve(props)

	if len(got.Style) != len(props) {
		t.Fatalf("Resolve() has %d keys, want %d", len(got.Style), len(props))
	}
	for name := range props {
		if _, ok := got.Style[name]; !ok {
			t.Errorf("Resolve() dropped key %q", name)
		}
	}
}

func TestResolveIsPure(t *testing.T) {
	props := PropertyMap{"background": String("--primary")}

	first := Resolve(props)
	second := Resolve(props)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated Resolve() differs: %#v vs %#v", first, second)
	}
	if props["background"] != String("--primary") {
		t.Errorf("Resolve() mutated its input: %v", props["background"])
	}
}
