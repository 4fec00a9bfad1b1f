package wormconfigs

import (
	"cmp"
	"time"

	"github.com/reusee/tapeworm/cmds"
	"github.com/reusee/tapeworm/configs"
)

// Flags win over config files, config files over defaults.

const (
	DefaultTapeLength   = 30000
	DefaultMaxSteps     = 100000
	DefaultPreviewCells = 10
	DefaultStepDelay    = 100 * time.Millisecond
)

type TapeLength int

var tapeLengthFlag = cmds.Var[int]("-tape-length", "initial number of tape cells")

func (Module) TapeLength(
	loader configs.Loader,
) TapeLength {
	return TapeLength(cmp.Or(
		max(*tapeLengthFlag, 0),
		configs.First[int](loader, "tape_length"),
		DefaultTapeLength,
	))
}

type MaxSteps int

var maxStepsFlag = cmds.Var[int]("-max-steps", "step budget of a run")

func (Module) MaxSteps(
	loader configs.Loader,
) MaxSteps {
	return MaxSteps(cmp.Or(
		max(*maxStepsFlag, 0),
		configs.First[int](loader, "max_steps"),
		DefaultMaxSteps,
	))
}

type PreviewCells int

var previewCellsFlag = cmds.Var[int]("-preview", "number of tape cells shown by viewers")

func (Module) PreviewCells(
	loader configs.Loader,
) PreviewCells {
	return PreviewCells(cmp.Or(
		max(*previewCellsFlag, 0),
		configs.First[int](loader, "preview_cells"),
		DefaultPreviewCells,
	))
}

type StepDelay time.Duration

// nil until set, so -delay 0 still overrides the config
var stepDelayFlag = cmds.Var[*int]("-delay", "milliseconds between animated steps")

func (Module) StepDelay(
	loader configs.Loader,
) StepDelay {
	if ms := *stepDelayFlag; ms != nil {
		return StepDelay(time.Duration(max(*ms, 0)) * time.Millisecond)
	}
	ms, ok, err := configs.Lookup[int](loader, "step_delay_ms")
	if err != nil {
		panic(err)
	}
	if ok {
		return StepDelay(time.Duration(ms) * time.Millisecond)
	}
	return StepDelay(DefaultStepDelay)
}
