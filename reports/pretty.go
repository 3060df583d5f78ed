package reports

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/moneytech/wrenalyzer/wren"
)

// PrettyReporter writes one aligned row per token, grouped under the file
// path. With color enabled, the kind column is tinted by lexical category.
type PrettyReporter struct {
	w     io.Writer
	color bool
}

func NewPrettyReporter(w io.Writer, color bool) *PrettyReporter {
	return &PrettyReporter{
		w:     w,
		color: color,
	}
}

var _ Reporter = new(PrettyReporter)

func (r *PrettyReporter) Report(file *wren.SourceFile, tokens []wren.Token) error {
	if _, err := fmt.Fprintf(r.w, "%s\n", file.Path); err != nil {
		return err
	}
	for _, token := range tokens {
		kind := token.Kind.String()
		if r.color {
			if c := kindColor(token.Kind); c != "" {
				kind = c + kind + ColorReset
				// pad before coloring shifts the width
				kind += strings.Repeat(" ", max(0, 14-len(token.Kind.String())))
			}
		}
		if _, err := fmt.Fprintf(r.w, "  %4d:%-4d %-14s %s\n",
			token.Line(),
			token.Column(),
			kind,
			displayText(token),
		); err != nil {
			return err
		}
	}
	return nil
}

func kindColor(kind wren.TokenKind) string {
	switch {
	case kind == wren.TokenError:
		return ColorError
	case kind == wren.TokenString:
		return ColorString
	case kind == wren.TokenNumber:
		return ColorNumber
	case kind == wren.TokenField || kind == wren.TokenStaticField:
		return ColorField
	case kind.IsKeyword():
		return ColorKeyword
	case kind == wren.TokenLine || kind == wren.TokenEOF:
		return ColorDim
	}
	return ""
}

// displayText keeps each token on its own row: spellings with control
// characters come back quoted.
func displayText(token wren.Token) string {
	switch token.Kind {
	case wren.TokenLine:
		return `\n`
	case wren.TokenError:
		return strconv.Quote(token.Text())
	}
	text := token.Text()
	if strings.ContainsAny(text, "\n\r\t") {
		return strconv.Quote(text)
	}
	return text
}
