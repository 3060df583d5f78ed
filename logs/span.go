package logs

// Span labels one logical operation. Records logged under a context carrying
// a span get a span attribute, so concurrent operations stay separable in
// the output.
type Span string

type spanKeyType struct{}

// SpanKey is the context key the current Span is stored under.
var SpanKey spanKeyType
