package logs

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/reusee/dscope"
)

func TestNewSpan(t *testing.T) {
	buf := new(bytes.Buffer)
	dscope.New(new(Module)).Fork(
		func() Writer {
			return buf
		},
	).Call(func(
		newSpan NewSpan,
	) {
		ctx := context.Background()

		ctx1, span1 := newSpan(ctx, "")
		ctx2, span2 := newSpan(ctx1, "")
		_, span3 := newSpan(ctx2, span1)

		got := buf.String()

		// every minting logs under its new span
		for _, span := range []Span{span1, span2, span3} {
			if !strings.Contains(got, "span="+string(span)) {
				t.Fatalf("missing span %s in %q", span, got)
			}
		}

		// span2 and span3 both descend from span1
		if !strings.Contains(got, "parent="+string(span1)) {
			t.Fatalf("got %q", got)
		}

		// span3 named a parent other than the current span, so the current
		// one is logged as creator
		if !strings.Contains(got, "creator="+string(span2)) {
			t.Fatalf("got %q", got)
		}
	})
}

func TestWrapSpan(t *testing.T) {
	base := fmt.Errorf("scan failed")

	if err := WrapSpan(context.Background(), base); err != base {
		t.Fatalf("got %v", err)
	}

	ctx := context.WithValue(context.Background(), SpanKey, Span("abc123"))
	wrapped := WrapSpan(ctx, base)
	if !errors.Is(wrapped, base) {
		t.Fatalf("got %v", wrapped)
	}
	if !strings.Contains(wrapped.Error(), "abc123") {
		t.Fatalf("got %v", wrapped)
	}
}
