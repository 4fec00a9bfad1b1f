package engines

import "slices"

type Snapshot struct {
	State
	Steps int
	Done  bool
	Fault error
}

// Snapshot copies the current state for renderers.
// cells limits the tape copy to its first cells; zero or negative copies the whole tape.
func (e *Engine) Snapshot(cells int) Snapshot {
	tape := e.tape
	if cells > 0 && cells < len(tape) {
		tape = tape[:cells]
	}
	return Snapshot{
		State: State{
			Tape:           slices.Clone(tape),
			Pointer:        e.pointer,
			ProgramCounter: e.pc,
			Output:         slices.Clone(e.output),
		},
		Steps: e.steps,
		Done:  e.Done(),
		Fault: e.fault,
	}
}
