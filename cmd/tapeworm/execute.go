package main

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/reusee/dscope"
	"github.com/reusee/tapeworm/debugs"
	"github.com/reusee/tapeworm/engines"
	"github.com/reusee/tapeworm/logs"
	"github.com/reusee/tapeworm/programs"
	"github.com/reusee/tapeworm/renders"
	"github.com/reusee/tapeworm/runs"
	"github.com/reusee/tapeworm/traces"
	"github.com/reusee/tapeworm/vars"
	"github.com/reusee/tapeworm/viewer"
	"github.com/reusee/tapeworm/webs"
	"github.com/reusee/tapeworm/wormconfigs"
)

var (
	ErrNoProgram        = errors.New("no program, pass a file or -code")
	ErrConflictingFlags = errors.New("conflicting flags")
)

type options struct {
	file  string
	code  string
	input string
	// nil when stdin is not read
	stdin io.Reader
	quiet bool
	tui   bool
	trace string
	serve string
	tap   bool
	// starlark expressions printed against the final state
	evals []string
}

func loadProgram(opts options) (*programs.Program, error) {
	var src string
	switch {
	case opts.code != "" && opts.file != "":
		return nil, fmt.Errorf("%w: -code and a program file", ErrConflictingFlags)
	case opts.code != "":
		src = opts.code
	case opts.file != "":
		content, err := os.ReadFile(opts.file)
		if err != nil {
			return nil, wrap(err)
		}
		src = string(content)
	default:
		return nil, ErrNoProgram
	}
	program, err := programs.Load(src)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", cmp.Or(opts.file, "-code"), err)
	}
	return program, nil
}

func readInput(opts options) ([]byte, error) {
	input, err := vars.DecodeEscapes(opts.input)
	if err != nil {
		return nil, err
	}
	if opts.stdin != nil {
		content, err := io.ReadAll(opts.stdin)
		if err != nil {
			return nil, wrap(err)
		}
		input = append(input, content...)
	}
	return input, nil
}

func execute(ctx context.Context, scope dscope.Scope, opts options, stdout io.Writer) (err error) {
	if opts.tui && opts.serve != "" {
		return fmt.Errorf("%w: -tui and -serve", ErrConflictingFlags)
	}

	program, err := loadProgram(opts)
	if err != nil {
		return err
	}
	input, err := readInput(opts)
	if err != nil {
		return err
	}

	switch {

	case opts.serve != "":
		scope.Call(func(
			serve webs.Serve,
		) {
			fmt.Fprintf(stdout, "serving on http://%s\n", opts.serve)
			err = serve(ctx, opts.serve, program, input)
		})

	case opts.tui:
		scope.Call(func(
			show viewer.Show,
		) {
			err = show(ctx, program, input)
		})

	default:
		scope.Call(func(
			newEngine runs.NewEngine,
			runEngine runs.RunEngine,
			cells wormconfigs.PreviewCells,
			tap debugs.Tap,
			eval debugs.Eval,
			logger logs.Logger,
		) {
			engine := newEngine(program, input)
			err = runPlain(ctx, engine, runEngine, int(cells), opts, stdout)
			if len(opts.evals) > 0 {
				globals := debugs.SnapshotGlobals(engine.Snapshot(0), program)
				for _, expr := range opts.evals {
					value, evalErr := eval(ctx, expr, globals)
					if evalErr != nil {
						err = errors.Join(err, fmt.Errorf("eval %s: %w", expr, evalErr))
						continue
					}
					fmt.Fprintf(stdout, "%s = %s\n", expr, value)
				}
			}
			if opts.tap {
				logger.DebugContext(ctx, "tap final state")
				tap(ctx, "final state", debugs.SnapshotGlobals(engine.Snapshot(0), program))
			}
		})

	}

	return err
}

func runPlain(
	ctx context.Context,
	engine *engines.Engine,
	runEngine runs.RunEngine,
	cells int,
	opts options,
	stdout io.Writer,
) error {
	// a trace on stdout replaces the report
	report := !opts.quiet && opts.trace != "-"

	var trace *traces.Writer
	switch opts.trace {
	case "":
	case "-":
		trace = traces.NewWriter(stdout, cells)
	default:
		f, err := os.Create(opts.trace)
		if err != nil {
			return wrap(err)
		}
		defer f.Close()
		trace = traces.NewWriter(f, cells)
	}

	if report {
		fmt.Fprintln(stdout, "tapeworm: running program")
		fmt.Fprintln(stdout, strings.Repeat("=", 50))
	}

	summary, runErr := runEngine(ctx, engine, func(step int, res *engines.StepResult) error {
		if trace != nil {
			if err := trace.Write(step, res); err != nil {
				return err
			}
		}
		if report {
			fmt.Fprintln(stdout, renders.StepLine(step, res, cells))
			if caret := renders.StepCaret(step, res, cells); caret != "" {
				fmt.Fprintln(stdout, caret)
			}
		}
		return nil
	})

	if trace != nil {
		if err := trace.WriteSummary(summary); err != nil {
			return errors.Join(runErr, err)
		}
		if err := trace.Close(); err != nil {
			return errors.Join(runErr, err)
		}
	}

	switch {
	case report:
		fmt.Fprintln(stdout, strings.Repeat("=", 50))
		fmt.Fprintf(stdout, "halted: %s after %d steps\n", summary.HaltReason, summary.StepsExecuted)
		fmt.Fprintf(stdout, "output: %s\n", renders.Output(summary.FinalOutput))
	case opts.trace != "-":
		if _, err := stdout.Write(summary.FinalOutput); err != nil {
			return errors.Join(runErr, wrap(err))
		}
	}

	return runErr
}
