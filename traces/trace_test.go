package traces

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/reusee/tapeworm/engines"
	"github.com/reusee/tapeworm/programs"
	"gopkg.in/yaml.v3"
)

func TestWriter(t *testing.T) {
	program, err := programs.Load("+>+.")
	if err != nil {
		t.Fatal(err)
	}
	engine := engines.New(program, 1, nil)

	buf := new(bytes.Buffer)
	w := NewWriter(buf, 2)
	summary, err := engine.RunObserved(t.Context(), 100, w.Write)
	if err != nil {
		t.Fatal(err)
	}
	if err := w.WriteSummary(summary); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}

	decoder := yaml.NewDecoder(buf)
	var entries []Entry
	for range 4 {
		var entry Entry
		if err := decoder.Decode(&entry); err != nil {
			t.Fatal(err)
		}
		entries = append(entries, entry)
	}
	var s Summary
	if err := decoder.Decode(&s); err != nil {
		t.Fatal(err)
	}
	if err := decoder.Decode(new(Entry)); !errors.Is(err, io.EOF) {
		t.Fatalf("got %v", err)
	}

	first := entries[0]
	if first.Step != 1 || first.Command != "+" || first.Position != 0 {
		t.Fatalf("got %+v", first)
	}
	if first.Before.Cell != 0 || first.After.Cell != 1 {
		t.Fatalf("got %+v", first)
	}

	// tape grew to 2 cells on '>'
	second := entries[1]
	if second.After.Pointer != 1 || len(second.After.Tape) != 2 {
		t.Fatalf("got %+v", second)
	}

	last := entries[3]
	if last.After.Output != "\\x01" {
		t.Fatalf("got %q", last.After.Output)
	}
	if last.After.ProgramCounter != 4 {
		t.Fatalf("got %d", last.After.ProgramCounter)
	}

	if s.Steps != 4 || s.Halt != "program ended" || s.Fault != "" {
		t.Fatalf("got %+v", s)
	}
}

func TestFaultSummary(t *testing.T) {
	program, err := programs.Load("<")
	if err != nil {
		t.Fatal(err)
	}
	buf := new(bytes.Buffer)
	w := NewWriter(buf, 0)
	summary := engines.New(program, 1, nil).Run(10)
	if err := w.WriteSummary(summary); err != nil {
		t.Fatal(err)
	}
	w.Close()
	if !strings.Contains(buf.String(), "halt: faulted") ||
		!strings.Contains(buf.String(), "fault: pointer moved below cell 0 at position 0") {
		t.Fatalf("got %s", buf.String())
	}
}
