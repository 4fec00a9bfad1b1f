package engines

import (
	"context"
	"fmt"
	"slices"
)

type HaltReason int

const (
	ProgramEnded HaltReason = iota
	StepBudgetExhausted
	Faulted
	Canceled
)

func (h HaltReason) String() string {
	switch h {
	case ProgramEnded:
		return "program ended"
	case StepBudgetExhausted:
		return "step budget exhausted"
	case Faulted:
		return "faulted"
	case Canceled:
		return "canceled"
	}
	return "unknown"
}

type RunSummary struct {
	StepsExecuted int
	FinalOutput   []byte
	HaltReason    HaltReason
	// Fault is set when HaltReason is Faulted, or holds the context error when Canceled
	Fault error
}

func (e *Engine) Run(maxSteps int) RunSummary {
	return e.RunContext(context.Background(), maxSteps)
}

// RunContext steps at most maxSteps times, checking ctx between steps.
func (e *Engine) RunContext(ctx context.Context, maxSteps int) RunSummary {
	summary, _ := e.RunObserved(ctx, maxSteps, nil)
	return summary
}

// RunObserved is RunContext calling observe after each executed step.
// An observe error stops the run like a cancellation and is returned.
func (e *Engine) RunObserved(
	ctx context.Context,
	maxSteps int,
	observe func(step int, res *StepResult) error,
) (summary RunSummary, err error) {
	defer func() {
		summary.FinalOutput = slices.Clone(e.output)
	}()

	for summary.StepsExecuted < maxSteps {
		if err := ctx.Err(); err != nil {
			summary.HaltReason = Canceled
			summary.Fault = err
			return summary, nil
		}

		if observe == nil {
			// unobserved runs skip the per step state copies
			_, _, ok, err := e.exec()
			if err != nil {
				summary.HaltReason = Faulted
				summary.Fault = err
				return summary, nil
			}
			if !ok {
				summary.HaltReason = ProgramEnded
				return summary, nil
			}
			summary.StepsExecuted++
			continue
		}

		res, err := e.Step()
		if err != nil {
			summary.HaltReason = Faulted
			summary.Fault = err
			return summary, nil
		}
		if res == nil {
			summary.HaltReason = ProgramEnded
			return summary, nil
		}
		summary.StepsExecuted++
		if err := observe(summary.StepsExecuted, res); err != nil {
			summary.HaltReason = Canceled
			if e.Done() {
				summary.HaltReason = e.haltReason()
			}
			return summary, fmt.Errorf("observe step %d: %w", summary.StepsExecuted, err)
		}
	}

	summary.HaltReason = e.haltReason()
	summary.Fault = e.fault
	return summary, nil
}

func (e *Engine) haltReason() HaltReason {
	switch {
	case e.fault != nil:
		return Faulted
	case e.pc >= e.program.Len():
		return ProgramEnded
	}
	return StepBudgetExhausted
}
