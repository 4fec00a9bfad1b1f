package cmds

import (
	"fmt"
	"reflect"
)

// Command is a function run by name, or a group of sub commands, or both.
type Command struct {
	Func        reflect.Value
	Subs        map[string]*Command
	Description string
	Aliases     []string
	ArgNames    []string
}

// Func wraps fn as a command. fn takes its arguments from the following words
// and returns nothing or an error.
func Func(fn any) *Command {
	value := reflect.ValueOf(fn)
	if value.Kind() != reflect.Func {
		panic(fmt.Errorf("must be function, got %T", fn))
	}
	switch t := value.Type(); {
	case t.NumOut() > 1:
		panic(fmt.Errorf("must return 0 or 1 value: %v", t))
	case t.NumOut() == 1 && t.Out(0) != errorType:
		panic(fmt.Errorf("must return error: %v", t))
	}
	return &Command{
		Func: value,
	}
}

func Sub(subs map[string]*Command) *Command {
	return &Command{
		Subs: subs,
	}
}

func (c *Command) Desc(desc string) *Command {
	c.Description = desc
	return c
}

func (c *Command) Alias(names ...string) *Command {
	c.Aliases = append(c.Aliases, names...)
	return c
}

// Args names the arguments for usage output.
func (c *Command) Args(names ...string) *Command {
	c.ArgNames = append(c.ArgNames, names...)
	return c
}
