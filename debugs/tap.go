package debugs

import (
	"context"
	"maps"
	"slices"

	"github.com/moneytech/wrenalyzer/logs"
	"go.starlark.net/repl"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Tap opens an interactive starlark session over the given globals and
// returns once the session reads EOF.
type Tap func(ctx context.Context, what string, globals map[string]any)

func (Module) Tap(
	logger logs.Logger,
) Tap {
	return func(ctx context.Context, what string, globals map[string]any) {
		logger.InfoContext(ctx, "tap",
			"what", what,
			"globals", slices.Sorted(maps.Keys(globals)),
		)
		defer logger.InfoContext(ctx, "tap done",
			"what", what,
		)

		mappings := make(starlark.StringDict)
		for name, value := range globals {
			mappings[name] = toStarlarkValue(value)
		}

		thread := &starlark.Thread{
			Name: "tap",
		}
		repl.REPLOptions(&syntax.FileOptions{
			Set:             true,
			While:           true,
			TopLevelControl: true,
		}, thread, mappings)
	}
}
