package cmds

import (
	"fmt"
	"maps"
	"os"
	"slices"
	"strings"
)

func (e *Executor) defineUsage() {
	e.Define("-h",
		Func(func() {
			e.PrintUsage()
			os.Exit(0)
		}).
			Desc("print this usage").
			Alias("help", "-help", "--help"),
	)
}

func (e *Executor) PrintUsage() {
	printCommands(e.commands, 0)
}

func printCommands(commands map[string]*Command, indent int) {
	names := slices.Collect(maps.Keys(commands))
	slices.Sort(names)

	// group aliases of the same command on one line
	printed := make(map[*Command]bool)
	for _, name := range names {
		command := commands[name]
		if command != nil && printed[command] {
			continue
		}
		printed[command] = true

		aliases := []string{name}
		if command != nil {
			for _, other := range names {
				if other != name && commands[other] == command {
					aliases = append(aliases, other)
				}
			}
		}

		fmt.Fprintf(os.Stdout, "%s%s",
			strings.Repeat("  ", indent),
			strings.Join(aliases, " | "),
		)
		if command != nil && command.Description != "" {
			fmt.Fprintf(os.Stdout, "\t%s", command.Description)
		}
		fmt.Fprintln(os.Stdout)

		if command != nil && len(command.Subs) > 0 {
			printCommands(command.Subs, indent+1)
		}
	}
}
