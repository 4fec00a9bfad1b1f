package runs

import (
	"context"
	"fmt"

	"github.com/reusee/tapeworm/engines"
	"github.com/reusee/tapeworm/logs"
	"github.com/reusee/tapeworm/programs"
	"github.com/reusee/tapeworm/wormconfigs"
)

// Observe is called after every executed step; a non-nil error stops the run.
type Observe func(step int, res *engines.StepResult) error

// Run executes a program within the configured step budget.
// A fault is returned as an error and also recorded in the summary.
type Run func(ctx context.Context, program *programs.Program, input []byte, observe Observe) (engines.RunSummary, error)

func (Module) Run(
	newEngine NewEngine,
	runEngine RunEngine,
) Run {
	return func(ctx context.Context, program *programs.Program, input []byte, observe Observe) (engines.RunSummary, error) {
		return runEngine(ctx, newEngine(program, input), observe)
	}
}

// RunEngine is Run on an engine the caller keeps, for inspecting its state afterwards.
type RunEngine func(ctx context.Context, engine *engines.Engine, observe Observe) (engines.RunSummary, error)

func (Module) RunEngine(
	maxSteps wormconfigs.MaxSteps,
	newSpan logs.NewSpan,
	logger logs.Logger,
) RunEngine {
	return func(ctx context.Context, engine *engines.Engine, observe Observe) (summary engines.RunSummary, err error) {
		ctx, _ = newSpan(ctx, "run")

		logger.InfoContext(ctx, "run started",
			"commands", engine.Program().Len(),
			"input", engine.Pending(),
			"max_steps", int(maxSteps),
		)
		defer func() {
			args := []any{
				"reason", summary.HaltReason.String(),
				"steps", summary.StepsExecuted,
				"output", len(summary.FinalOutput),
			}
			if err != nil {
				logger.WarnContext(ctx, "run halted", append(args, "error", err)...)
			} else {
				logger.InfoContext(ctx, "run halted", args...)
			}
		}()

		summary, err = engine.RunObserved(ctx, int(maxSteps), observe)
		if err != nil {
			return summary, logs.WrapSpan(ctx, err)
		}

		switch summary.HaltReason {
		case engines.Faulted:
			return summary, logs.WrapSpan(ctx, fmt.Errorf("run: %w", summary.Fault))
		case engines.Canceled:
			return summary, summary.Fault
		}
		return summary, nil
	}
}
