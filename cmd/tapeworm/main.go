package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/reusee/dscope"
	"github.com/reusee/tapeworm/cmds"
	"github.com/reusee/tapeworm/modes"
	"golang.org/x/term"
)

var (
	fileFlag  = cmds.Var[string]("-file", "program file, a bare path also works")
	codeFlag  = cmds.Var[string]("-code", "program source")
	inputFlag = cmds.Var[string]("-input", `program input, Go escapes like \n allowed`)
	stdinFlag = cmds.Switch("-stdin", "append stdin to the program input when it is not a terminal")
	quietFlag = cmds.Switch("-quiet", "print only the program output")
	tuiFlag   = cmds.Switch("-tui", "step the program in a terminal viewer")
	traceFlag = cmds.Var[string]("-trace", "write a YAML trace of every step to a file, - for stdout")
	serveFlag = cmds.Var[string]("-serve", "serve a web viewer on the address")
	tapFlag   = cmds.Switch("-tap", "open a starlark REPL on the final state")
	evalFlag  = cmds.Collect[string]("-eval", "print a starlark expression over the final state, repeatable")
)

func init() {
	cmds.OnUnknown(func(word string) error {
		if *fileFlag != "" {
			return fmt.Errorf("more than one program file: %s, %s", *fileFlag, word)
		}
		*fileFlag = word
		return nil
	})
}

func main() {
	cmds.Execute(os.Args[1:])

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	opts := options{
		file:  *fileFlag,
		code:  *codeFlag,
		input: *inputFlag,
		quiet: *quietFlag,
		tui:   *tuiFlag,
		trace: *traceFlag,
		serve: *serveFlag,
		tap:   *tapFlag,
		evals: *evalFlag,
	}
	if *stdinFlag && !term.IsTerminal(int(os.Stdin.Fd())) {
		opts.stdin = os.Stdin
	}

	scope := dscope.New(
		new(Module),
		modes.ForProduction(),
	)

	if err := execute(ctx, scope, opts, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "tapeworm: %v\n", err)
		stop()
		os.Exit(1)
	}
}
