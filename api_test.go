package heimdall

import (
	"bytes"
	"reflect"
	"strings"
	"testing"
)

func TestResolveScenario(t *testing.T) {
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

func TestFacadeComposeAndRender(t *testing.T) {
	root := Container([]Node{
		Section(nil),
		Divider(PropertyMap{"margin": String("8px 0")}),
	})

	var buf bytes.Buffer
	if err := Render(&buf, root); err != nil {
		t.Fatalf("Render() error: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"<main", `data-key="0"`, `data-key="1"`} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}
