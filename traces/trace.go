package traces

import (
	"fmt"
	"io"

	"github.com/reusee/tapeworm/engines"
	"github.com/reusee/tapeworm/renders"
	"gopkg.in/yaml.v3"
)

// Entry is one step of a trace document stream.
type Entry struct {
	Step     int    `yaml:"step"`
	Command  string `yaml:"command"`
	Position int    `yaml:"position"`
	Before   State  `yaml:"before"`
	After    State  `yaml:"after"`
}

type State struct {
	Pointer        int    `yaml:"pointer"`
	ProgramCounter int    `yaml:"pc"`
	Cell           int    `yaml:"cell"`
	Tape           []int  `yaml:"tape,flow"`
	Output         string `yaml:"output"`
}

// Summary closes a trace.
type Summary struct {
	Steps  int    `yaml:"steps"`
	Halt   string `yaml:"halt"`
	Fault  string `yaml:"fault,omitempty"`
	Output string `yaml:"output"`
}

type Writer struct {
	encoder *yaml.Encoder
	cells   int
}

// NewWriter writes one YAML document per step, with tape windows of cells cells.
func NewWriter(w io.Writer, cells int) *Writer {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	return &Writer{
		encoder: encoder,
		cells:   cells,
	}
}

func (w *Writer) Write(step int, res *engines.StepResult) error {
	if err := w.encoder.Encode(Entry{
		Step:     step,
		Command:  res.Command.String(),
		Position: res.Position,
		Before:   w.state(res.Before),
		After:    w.state(res.After),
	}); err != nil {
		return fmt.Errorf("encode trace step %d: %w", step, err)
	}
	return nil
}

func (w *Writer) WriteSummary(summary engines.RunSummary) error {
	s := Summary{
		Steps:  summary.StepsExecuted,
		Halt:   summary.HaltReason.String(),
		Output: renders.Output(summary.FinalOutput),
	}
	if summary.Fault != nil {
		s.Fault = summary.Fault.Error()
	}
	if err := w.encoder.Encode(s); err != nil {
		return fmt.Errorf("encode trace summary: %w", err)
	}
	return nil
}

func (w *Writer) Close() error {
	return w.encoder.Close()
}

func (w *Writer) state(s engines.State) State {
	tape := s.Tape
	if w.cells > 0 && w.cells < len(tape) {
		tape = tape[:w.cells]
	}
	ints := make([]int, len(tape))
	for i, b := range tape {
		ints[i] = int(b)
	}
	return State{
		Pointer:        s.Pointer,
		ProgramCounter: s.ProgramCounter,
		Cell:           int(s.Tape[s.Pointer]),
		Tape:           ints,
		Output:         renders.Output(s.Output),
	}
}
