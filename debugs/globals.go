package debugs

import (
	"github.com/reusee/tapeworm/engines"
	"github.com/reusee/tapeworm/programs"
)

// SnapshotGlobals exposes a finished or paused run to starlark.
func SnapshotGlobals(snapshot engines.Snapshot, program *programs.Program) map[string]any {
	tape := make([]int, len(snapshot.Tape))
	for i, b := range snapshot.Tape {
		tape[i] = int(b)
	}
	globals := map[string]any{
		"tape":    tape,
		"pointer": snapshot.Pointer,
		"pc":      snapshot.ProgramCounter,
		"output":  string(snapshot.Output),
		"steps":   snapshot.Steps,
		"done":    snapshot.Done,
		"program": program.String(),
		// cells past the tape read as zero, like unvisited cells
		"cell": func(i int) int {
			if i < 0 || i >= len(tape) {
				return 0
			}
			return tape[i]
		},
	}
	if snapshot.Fault != nil {
		globals["fault"] = snapshot.Fault.Error()
	} else {
		globals["fault"] = nil
	}
	return globals
}
