package webs

import (
	"github.com/reusee/tapeworm/engines"
	"github.com/reusee/tapeworm/renders"
)

// Frame is one websocket message. The last frame of a stream carries Halt.
type Frame struct {
	Step     int    `json:"step"`
	Command  string `json:"command,omitempty"`
	Position int    `json:"position"`
	Tape     []int  `json:"tape"`
	Pointer  int    `json:"pointer"`
	PC       int    `json:"pc"`
	Output   string `json:"output"`
	Halt     string `json:"halt,omitempty"`
	Fault    string `json:"fault,omitempty"`
}

func tapeWindow(tape []byte, cells int) []int {
	if cells <= 0 || cells > len(tape) {
		cells = len(tape)
	}
	ret := make([]int, cells)
	for i, b := range tape[:cells] {
		ret[i] = int(b)
	}
	return ret
}

func stepFrame(step int, res *engines.StepResult, cells int) Frame {
	return Frame{
		Step:     step,
		Command:  res.Command.String(),
		Position: res.Position,
		Tape:     tapeWindow(res.After.Tape, cells),
		Pointer:  res.After.Pointer,
		PC:       res.After.ProgramCounter,
		Output:   renders.Output(res.After.Output),
	}
}

func haltFrame(snapshot engines.Snapshot, summary engines.RunSummary) Frame {
	frame := Frame{
		Step:     snapshot.Steps,
		Position: -1,
		Tape:     tapeWindow(snapshot.Tape, 0),
		Pointer:  snapshot.Pointer,
		PC:       snapshot.ProgramCounter,
		Output:   renders.Output(snapshot.Output),
		Halt:     summary.HaltReason.String(),
	}
	if summary.Fault != nil {
		frame.Fault = summary.Fault.Error()
	}
	return frame
}
