package debugs

import (
	"testing"

	"github.com/reusee/tapeworm/engines"
	"github.com/reusee/tapeworm/programs"
	"go.starlark.net/starlark"
)

func snapshotDict(t *testing.T, src string, input string) starlark.StringDict {
	t.Helper()
	program, err := programs.Load(src)
	if err != nil {
		t.Fatal(err)
	}
	engine := engines.New(program, 3, []byte(input))
	engine.Run(100)
	return toStringDict(SnapshotGlobals(engine.Snapshot(0), program))
}

func TestSnapshotValues(t *testing.T) {
	globals := snapshotDict(t, ",.>++", "A")

	for name, want := range map[string]starlark.Value{
		"tape": starlark.NewList([]starlark.Value{
			starlark.MakeInt(65), starlark.MakeInt(2), starlark.MakeInt(0),
		}),
		"pointer": starlark.MakeInt(1),
		"pc":      starlark.MakeInt(5),
		"steps":   starlark.MakeInt(5),
		"output":  starlark.String("A"),
		"program": starlark.String(",.>++"),
		"done":    starlark.True,
		"fault":   starlark.None,
	} {
		equal, err := starlark.Equal(globals[name], want)
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if !equal {
			t.Fatalf("%s: got %v, want %v", name, globals[name], want)
		}
	}
}

func TestFaultValue(t *testing.T) {
	globals := snapshotDict(t, "+<<", "")
	want := starlark.String("pointer moved below cell 0 at position 1")
	if globals["fault"] != want {
		t.Fatalf("got %v", globals["fault"])
	}
}

func TestCellBuiltin(t *testing.T) {
	globals := snapshotDict(t, "+++>+", "")
	cell, ok := globals["cell"].(starlark.Callable)
	if !ok {
		t.Fatalf("got %T", globals["cell"])
	}
	thread := &starlark.Thread{
		Name: "cell",
	}
	for i, want := range map[int]string{
		-1: "0",
		0:  "3",
		1:  "1",
		99: "0",
	} {
		got, err := starlark.Call(thread, cell, starlark.Tuple{starlark.MakeInt(i)}, nil)
		if err != nil {
			t.Fatalf("cell(%d): %v", i, err)
		}
		if got.String() != want {
			t.Fatalf("cell(%d): got %v", i, got)
		}
	}
}

func TestToStarlarkValueKinds(t *testing.T) {
	for _, c := range []struct {
		input any
		want  starlark.Value
	}{
		{nil, starlark.None},
		{starlark.String("tape"), starlark.String("tape")},
		{[]byte{0, 255}, starlark.Bytes("\x00\xff")},
		{uint8(255), starlark.MakeInt(255)},
		{(*engines.Snapshot)(nil), starlark.None},
	} {
		equal, err := starlark.Equal(toStarlarkValue(c.input), c.want)
		if err != nil {
			t.Fatal(err)
		}
		if !equal {
			t.Fatalf("%#v: got %v", c.input, toStarlarkValue(c.input))
		}
	}

	defer func() {
		if p := recover(); p == nil {
			t.Fatal("should panic")
		}
	}()
	toStarlarkValue(make(chan bool))
}
