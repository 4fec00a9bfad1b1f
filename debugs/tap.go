package debugs

import (
	"context"
	"maps"
	"slices"

	"github.com/reusee/tapeworm/logs"
	"go.starlark.net/repl"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

var fileOptions = &syntax.FileOptions{
	Set:             true,
	While:           true,
	TopLevelControl: true,
}

// Tap opens an interactive starlark REPL on stdin with globals bound.
type Tap func(ctx context.Context, what string, globals map[string]any)

func (Module) Tap(
	logger logs.Logger,
) Tap {
	return func(ctx context.Context, what string, globals map[string]any) {
		logger.InfoContext(ctx, "tap: "+what,
			"globals", slices.Sorted(maps.Keys(globals)),
		)
		defer func() {
			logger.InfoContext(ctx, "tap end: "+what)
		}()

		thread := &starlark.Thread{
			Name: what,
		}
		repl.REPLOptions(fileOptions, thread, toStringDict(globals))
	}
}

// Eval evaluates one starlark expression with globals bound and returns its printed value.
type Eval func(ctx context.Context, expr string, globals map[string]any) (string, error)

func (Module) Eval(
	logger logs.Logger,
) Eval {
	return func(ctx context.Context, expr string, globals map[string]any) (string, error) {
		thread := &starlark.Thread{
			Name: "eval",
		}
		value, err := starlark.EvalOptions(fileOptions, thread, "<eval>", expr, toStringDict(globals))
		if err != nil {
			logger.DebugContext(ctx, "eval failed", "expr", expr, "error", err)
			return "", err
		}
		if s, ok := value.(starlark.String); ok {
			return string(s), nil
		}
		return value.String(), nil
	}
}

func toStringDict(globals map[string]any) starlark.StringDict {
	ret := make(starlark.StringDict, len(globals))
	for name, value := range globals {
		ret[name] = toStarlarkValue(value)
	}
	return ret
}
