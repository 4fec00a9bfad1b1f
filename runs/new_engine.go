package runs

import (
	"github.com/reusee/tapeworm/engines"
	"github.com/reusee/tapeworm/logs"
	"github.com/reusee/tapeworm/programs"
	"github.com/reusee/tapeworm/wormconfigs"
)

type NewEngine func(program *programs.Program, input []byte) *engines.Engine

func (Module) NewEngine(
	tapeLength wormconfigs.TapeLength,
	logger logs.Logger,
) NewEngine {
	return func(program *programs.Program, input []byte) *engines.Engine {
		logger.Debug("new engine",
			"commands", program.Len(),
			"tape_length", int(tapeLength),
			"input", len(input),
		)
		return engines.New(program, int(tapeLength), input)
	}
}
