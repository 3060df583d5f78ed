package configs

import (
	"fmt"
	"testing"
)

func TestFirst(t *testing.T) {
	loader := NewLoader([]string{
		"testdata/one.cue",
		"testdata/two.cue",
	}, testSchema)

	if output := First[string](loader, "output"); output != "json" {
		t.Fatalf("got %q", output)
	}
	if match := First[string](loader, "match"); match != "\\.wren$" {
		t.Fatalf("got %q", match)
	}

	// a path no file defines decodes to the zero value
	if jobs := First[int](loader, "workers"); jobs != 0 {
		t.Fatalf("got %d", jobs)
	}
}

func TestAll(t *testing.T) {
	loader := NewLoader([]string{
		"testdata/one.cue",
		"testdata/two.cue",
	}, testSchema)

	var outputs []string
	for output := range All[string](loader, "output") {
		outputs = append(outputs, output)
	}
	if str := fmt.Sprintf("%v", outputs); str != "[json pretty]" {
		t.Fatalf("got %s", str)
	}
}
