package cmds

import (
	"fmt"
	"maps"
	"reflect"
	"strings"
)

// Executor maps names to commands and runs an argument list against them.
// There are no positional arguments: every token is a command name or a
// command's argument.
type Executor struct {
	commands map[string]*Command
}

func NewExecutor() *Executor {
	executor := &Executor{
		commands: make(map[string]*Command),
	}
	executor.defineUsage()
	return executor
}

func (e *Executor) Define(name string, command *Command) {
	names := append([]string{name}, command.Aliases...)
	for _, name := range names {
		if _, ok := e.commands[name]; ok {
			panic(fmt.Errorf("duplicated command %s", name))
		}
		e.commands[name] = command
	}
}

var errType = reflect.TypeFor[error]()

func (e *Executor) Execute(args []string) error {
	commands := e.commands

	for len(args) > 0 {
		name := strings.TrimSpace(args[0])
		args = args[1:]

		command, ok := commands[name]
		if !ok {
			return fmt.Errorf("unknown command: %s", name)
		}

		if command.Func.IsValid() {
			rest, err := call(command.Func, args)
			if err != nil {
				return err
			}
			args = rest
		}

		// sub commands become visible after their parent ran
		if len(command.Subs) > 0 {
			commands = maps.Clone(commands)
			for subName, sub := range command.Subs {
				if _, ok := commands[subName]; ok {
					return fmt.Errorf("duplicated sub command: %s %s", name, subName)
				}
				commands[subName] = sub
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

// call converts leading arguments to fn's parameter types, invokes it, and
// returns the arguments left over.
func call(fn reflect.Value, args []string) ([]string, error) {
	t := fn.Type()

	callArgs := make([]reflect.Value, 0, t.NumIn())
	for i := range t.NumIn() {
		value, err := convertArg(t.In(i), args)
		if err != nil {
			return nil, err
		}
		if len(args) > 0 {
			args = args[1:]
		}
		callArgs = append(callArgs, value)
	}

	rets := fn.Call(callArgs)
	if len(rets) > 0 {
		if err, ok := rets[0].Interface().(error); ok && err != nil {
			return nil, err
		}
	}

	return args, nil
}
