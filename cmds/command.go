package cmds

import (
	"fmt"
	"reflect"
)

// Command is one name in the argument language: a function invoked with
// converted arguments, a set of sub commands the name unlocks, or both.
type Command struct {
	Func        reflect.Value
	Subs        map[string]*Command
	Description string
	Aliases     []string
}

func (c *Command) Desc(desc string) *Command {
	c.Description = desc
	return c
}

func (c *Command) Alias(names ...string) *Command {
	c.Aliases = append(c.Aliases, names...)
	return c
}

// Func wraps fn as a command. fn may return nothing or a single error.
func Func(fn any) *Command {
	value := reflect.ValueOf(fn)

	if value.Kind() != reflect.Func {
		panic(fmt.Errorf("not a function: %T", fn))
	}

	t := value.Type()
	if t.NumOut() > 1 {
		panic(fmt.Errorf("at most one return value"))
	}
	if t.NumOut() == 1 && t.Out(0) != errType {
		panic(fmt.Errorf("return value must be error"))
	}

	return &Command{
		Func: value,
	}
}

// Sub wraps a set of sub commands.
func Sub(subs map[string]*Command) *Command {
	return &Command{
		Subs: subs,
	}
}
