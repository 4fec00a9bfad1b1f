package configs

import (
	"errors"
	"fmt"
	"testing"
)

var testSchema = `
tape_length?: int & >0
max_steps?: int
name?: string
delays?: [...int]
`

func TestLoaderAssignFirst(t *testing.T) {
	loader := NewLoader([]string{
		"testdata/local.cue",
		"testdata/user.cue",
	}, testSchema)

	var n int
	if err := loader.AssignFirst("tape_length", &n); err != nil {
		t.Fatal(err)
	}
	if n != 64 {
		t.Fatalf("got %d", n)
	}

	// only in the later file
	if err := loader.AssignFirst("max_steps", &n); err != nil {
		t.Fatal(err)
	}
	if n != 500 {
		t.Fatalf("got %d", n)
	}

	var delays []int
	if err := loader.AssignFirst("delays", &delays); err != nil {
		t.Fatal(err)
	}
	if str := fmt.Sprintf("%v", delays); str != "[10 20]" {
		t.Fatalf("got %s", str)
	}

	err := loader.AssignFirst("not", &delays)
	if !errors.Is(err, ErrValueNotFound) {
		t.Fatalf("got %v", err)
	}
}

func TestLoaderIterCueValues(t *testing.T) {
	loader := NewLoader([]string{
		"testdata/local.cue",
		"testdata/user.cue",
	}, testSchema)

	var names []string
	for value, err := range loader.IterCueValues("name") {
		if err != nil {
			t.Fatal(err)
		}
		var s string
		if err := value.Decode(&s); err != nil {
			t.Fatal(err)
		}
		names = append(names, s)
	}
	if str := fmt.Sprintf("%v", names); str != "[local user]" {
		t.Fatalf("got %s", str)
	}
}

func TestFirst(t *testing.T) {
	loader := NewLoader([]string{"testdata/user.cue"}, testSchema)
	if n := First[int](loader, "max_steps"); n != 500 {
		t.Fatalf("got %d", n)
	}
	if n := First[int](loader, "missing"); n != 0 {
		t.Fatalf("got %d", n)
	}
}

func TestLookup(t *testing.T) {
	loader := NewLoader([]string{"testdata/user.cue"}, testSchema)
	n, ok, err := Lookup[int](loader, "max_steps")
	if err != nil {
		t.Fatal(err)
	}
	if !ok || n != 500 {
		t.Fatalf("got %d %v", n, ok)
	}
	_, ok, err = Lookup[int](loader, "missing")
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Fatal("should be missing")
	}
	// a string does not decode into an int
	if _, _, err := Lookup[int](loader, "name"); err == nil {
		t.Fatal("should error")
	}
}

func TestMissingFilesSkipped(t *testing.T) {
	loader := NewLoader([]string{
		"testdata/nope.cue",
		"testdata/local.cue",
	}, testSchema)
	paths, err := loader.Paths()
	if err != nil {
		t.Fatal(err)
	}
	if str := fmt.Sprintf("%v", paths); str != "[testdata/local.cue]" {
		t.Fatalf("got %s", str)
	}
}

func TestUnknownField(t *testing.T) {
	loader := NewLoader([]string{
		"testdata/bad.cue",
	}, testSchema)
	var n int
	err := loader.AssignFirst("tape_length", &n)
	if err == nil {
		t.Fatal("should error")
	}
	t.Logf("%v", err)
}
