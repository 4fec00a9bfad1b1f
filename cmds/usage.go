package cmds

import (
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"
)

func (e *Executor) PrintUsage() {
	printCommands(e.output, e.commands, 0)
}

func printCommands(w io.Writer, commands map[string]*Command, depth int) {
	// aliases share the *Command, print each once under its first name
	seen := make(map[*Command]bool)
	for _, name := range slices.Sorted(maps.Keys(commands)) {
		command := commands[name]
		if command == nil || seen[command] {
			continue
		}
		seen[command] = true

		line := strings.Repeat("  ", depth) + name
		for _, arg := range command.ArgNames {
			line += " <" + arg + ">"
		}
		if len(command.Aliases) > 0 {
			line += " (" + strings.Join(command.Aliases, ", ") + ")"
		}
		if command.Description != "" {
			line = fmt.Sprintf("%-32s %s", line, command.Description)
		}
		fmt.Fprintln(w, line)

		if len(command.Subs) > 0 {
			printCommands(w, command.Subs, depth+1)
		}
	}
}
