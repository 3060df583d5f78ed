package logs

import (
	"context"
	"log/slog"
)

// Handler adds the span carried by the record's context, then delegates.
type Handler struct {
	slog.Handler
}

func (h *Handler) Handle(ctx context.Context, record slog.Record) error {
	if v := ctx.Value(SpanKey); v != nil {
		record.Add("span", v.(Span))
	}
	return h.Handler.Handle(ctx, record)
}
