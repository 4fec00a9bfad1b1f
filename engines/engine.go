package engines

import (
	"fmt"
	"slices"

	"github.com/reusee/tapeworm/programs"
)

type Engine struct {
	program *programs.Program
	tape    []byte
	pointer int
	pc      int
	input   []byte
	output  []byte
	steps   int
	fault   error
}

func New(program *programs.Program, tapeLength int, input []byte) *Engine {
	if tapeLength <= 0 {
		panic(fmt.Errorf("tape length must be positive, got %d", tapeLength))
	}
	return &Engine{
		program: program,
		tape:    make([]byte, tapeLength),
		input:   slices.Clone(input),
	}
}

// State is a copy of the engine's observable state at one point of a run.
type State struct {
	Tape           []byte
	Pointer        int
	ProgramCounter int
	Output         []byte
}

type StepResult struct {
	Before   State
	After    State
	Command  programs.Command
	Position int
}

func (e *Engine) state() State {
	return State{
		Tape:           slices.Clone(e.tape),
		Pointer:        e.pointer,
		ProgramCounter: e.pc,
		Output:         slices.Clone(e.output),
	}
}

// Step executes the command at the program counter.
// It returns nil, nil when the program has ended, and the fault on every call after one occurred.
func (e *Engine) Step() (*StepResult, error) {
	if e.Done() {
		return nil, e.fault
	}
	before := e.state()
	cmd, position, _, err := e.exec()
	if err != nil {
		return nil, err
	}
	return &StepResult{
		Before:   before,
		After:    e.state(),
		Command:  cmd,
		Position: position,
	}, nil
}

// exec is Step without the state copies. ok is false when the program has ended.
func (e *Engine) exec() (cmd programs.Command, position int, ok bool, err error) {
	if e.fault != nil {
		return 0, 0, false, e.fault
	}
	if e.pc >= e.program.Len() {
		return 0, 0, false, nil
	}

	position = e.pc
	cmd = e.program.At(position)

	switch cmd {
	case programs.Right:
		e.pointer++
		if e.pointer >= len(e.tape) {
			e.tape = append(e.tape, 0)
		}
	case programs.Left:
		if e.pointer == 0 {
			e.fault = &NegativePointer{
				Position: position,
			}
			return cmd, position, false, e.fault
		}
		e.pointer--
	case programs.Inc:
		e.tape[e.pointer]++
	case programs.Dec:
		e.tape[e.pointer]--
	case programs.Output:
		e.output = append(e.output, e.tape[e.pointer])
	case programs.Input:
		if len(e.input) > 0 {
			e.tape[e.pointer] = e.input[0]
			e.input = e.input[1:]
		} else {
			e.tape[e.pointer] = 0
		}
	case programs.Open:
		if e.tape[e.pointer] == 0 {
			e.pc, _ = e.program.Partner(position)
		}
	case programs.Close:
		if e.tape[e.pointer] != 0 {
			e.pc, _ = e.program.Partner(position)
		}
	}
	e.pc++
	e.steps++

	return cmd, position, true, nil
}

// Steps iterates step results until the program ends or faults.
// A fault is yielded once, as the last element.
func (e *Engine) Steps(yield func(*StepResult, error) bool) {
	for {
		res, err := e.Step()
		if err != nil {
			yield(nil, err)
			return
		}
		if res == nil {
			return
		}
		if !yield(res, nil) {
			return
		}
	}
}

// Feed appends bytes to the pending input queue.
func (e *Engine) Feed(input ...byte) {
	e.input = append(e.input, input...)
}

func (e *Engine) Done() bool {
	return e.fault != nil || e.pc >= e.program.Len()
}

func (e *Engine) Fault() error {
	return e.fault
}

func (e *Engine) Program() *programs.Program {
	return e.program
}

// Pending returns the number of input bytes not consumed yet.
func (e *Engine) Pending() int {
	return len(e.input)
}
