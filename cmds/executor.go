package cmds

import (
	"fmt"
	"io"
	"maps"
	"os"
	"reflect"
	"strings"
)

// Executor runs argument words against defined commands.
// A command consumes the words following it as its function arguments.
type Executor struct {
	commands map[string]*Command
	// called with words that name no command, nil rejects them
	unknown func(word string) error
	output  io.Writer
}

func NewExecutor() *Executor {
	e := &Executor{
		commands: make(map[string]*Command),
		output:   os.Stdout,
	}
	e.Define("-h", Func(func() {
		e.PrintUsage()
		os.Exit(0)
	}).Desc("print this usage").Alias("help", "-help", "--help"))
	return e
}

func (e *Executor) Define(name string, command *Command) {
	for _, name := range append([]string{name}, command.Aliases...) {
		if _, ok := e.commands[name]; ok {
			panic(fmt.Errorf("duplicated command %s", name))
		}
		e.commands[name] = command
	}
}

// OnUnknown sets the handler for words that are not commands, like positional file paths.
func (e *Executor) OnUnknown(fn func(word string) error) {
	e.unknown = fn
}

func (e *Executor) Execute(args []string) error {
	commands := e.commands
	for len(args) > 0 {
		name := strings.TrimSpace(args[0])
		args = args[1:]

		command, ok := commands[name]
		if !ok {
			if e.unknown == nil || strings.HasPrefix(name, "-") {
				return fmt.Errorf("unknown command: %s", name)
			}
			if err := e.unknown(name); err != nil {
				return err
			}
			continue
		}

		var err error
		args, err = command.call(args)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}

		// sub commands are visible to the words after their parent
		if len(command.Subs) > 0 {
			commands = maps.Clone(commands)
			for subname, sub := range command.Subs {
				if _, ok := commands[subname]; ok {
					return fmt.Errorf("duplicated sub command: %s %s", name, subname)
				}
				commands[subname] = sub
			}
		}
	}
	return nil
}

func (e *Executor) MustExecute(args []string) {
	if err := e.Execute(args); err != nil {
		panic(err)
	}
}

// call consumes the words the command takes and returns the rest.
func (c *Command) call(args []string) ([]string, error) {
	if !c.Func.IsValid() {
		return args, nil
	}
	fnType := c.Func.Type()
	in := make([]reflect.Value, 0, fnType.NumIn())
	for i := range fnType.NumIn() {
		value, err := parseArg(fnType.In(i), args)
		if err != nil {
			return nil, err
		}
		if len(args) > 0 {
			args = args[1:]
		}
		in = append(in, value)
	}
	if out := c.Func.Call(in); len(out) > 0 && !out[0].IsNil() {
		return nil, out[0].Interface().(error)
	}
	return args, nil
}
