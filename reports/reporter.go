package reports

import (
	"io"
	"os"

	"github.com/moneytech/wrenalyzer/wren"
	"github.com/moneytech/wrenalyzer/wrenconfigs"
	"golang.org/x/term"
)

// Reporter renders the token stream of one file.
type Reporter interface {
	Report(file *wren.SourceFile, tokens []wren.Token) error
}

type Writer io.Writer

func (Module) Writer() Writer {
	return os.Stdout
}

func (Module) Reporter(
	writer Writer,
	output wrenconfigs.Output,
	color wrenconfigs.Color,
) Reporter {

	switch output {
	case wrenconfigs.OutputJSON:
		return NewJSONReporter(writer)
	}

	isTerminal := false
	if file, ok := writer.(*os.File); ok && term.IsTerminal(int(file.Fd())) {
		isTerminal = true
	}
	return NewPrettyReporter(writer, color.Enabled(isTerminal))
}
