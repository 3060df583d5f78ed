package logs

import (
	"context"
	"crypto/rand"
)

// NewSpan mints a fresh span, stores it in the returned context, and logs
// its ancestry. An empty parent means the span continues whatever span the
// context already carries.
type NewSpan func(ctx context.Context, parent Span) (context.Context, Span)

func (Module) NewSpan(
	logger Logger,
) NewSpan {
	return func(ctx context.Context, parent Span) (context.Context, Span) {

		var creator Span
		if v := ctx.Value(SpanKey); v != nil {
			creator = v.(Span)
		}
		if parent == "" {
			parent = creator
		}

		span := Span(rand.Text())
		ctx = context.WithValue(ctx, SpanKey, span)

		var args []any
		if creator != "" && creator != parent {
			args = append(args, "creator", creator)
		}
		if parent != "" {
			args = append(args, "parent", parent)
		}
		logger.InfoContext(ctx, "new span", args...)

		return ctx, span
	}
}
