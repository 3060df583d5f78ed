package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/moneytech/wrenalyzer/cmds"
	"github.com/moneytech/wrenalyzer/debugs"
	"github.com/moneytech/wrenalyzer/logs"
	"github.com/moneytech/wrenalyzer/modes"
	"github.com/moneytech/wrenalyzer/reports"
	"github.com/moneytech/wrenalyzer/scans"
	"github.com/moneytech/wrenalyzer/wren"
	"github.com/reusee/dscope"
	"golang.org/x/term"
)

var (
	tapResults = cmds.Switch("-tap")
	scanCwd    = cmds.Switch("-cwd")
)

func main() {
	ce(cmds.Execute(os.Args[1:]))
	ctx := context.Background()

	scope := dscope.New(
		new(Module),
		modes.ForProduction(),
	)

	scope.Call(func(
		logger logs.Logger,
		scan scans.Scan,
		reporter reports.Reporter,
		files scans.Files,
		tap debugs.Tap,
	) {

		if len(files) == 0 && !*scanCwd {

			// piped input scans stdin
			if !term.IsTerminal(int(os.Stdin.Fd())) {
				content, err := io.ReadAll(os.Stdin)
				ce(err)
				result := scans.ScanFile(wren.NewSourceFile("(stdin)", string(content)))
				ce(reporter.Report(result.File, result.Tokens))
				exitReport(logger, result.NumErrors)
				return
			}

			runREPL(reporter)
			return
		}

		results, err := scan(ctx)
		ce(err)

		numErrors := 0
		for _, result := range results {
			ce(reporter.Report(result.File, result.Tokens))
			numErrors += result.NumErrors
		}

		if *tapResults {
			tap(ctx, "scan results", tapGlobals(results))
		}

		exitReport(logger, numErrors)
	})

}

func exitReport(logger logs.Logger, numErrors int) {
	if numErrors == 0 {
		return
	}
	logger.Warn("error tokens found",
		"count", numErrors,
	)
	os.Exit(1)
}

func tapGlobals(results []scans.Result) map[string]any {
	paths := make([]string, 0, len(results))
	kinds := make(map[string]int)
	numTokens := 0
	var errors []string
	for _, result := range results {
		paths = append(paths, result.File.Path)
		numTokens += len(result.Tokens)
		for _, token := range result.Tokens {
			kinds[token.Kind.String()]++
			if token.Kind == wren.TokenError {
				errors = append(errors, fmt.Sprintf("%s:%d:%d %q",
					result.File.Path,
					token.Line(),
					token.Column(),
					token.Text(),
				))
			}
		}
	}
	return map[string]any{
		"paths":  paths,
		"files":  len(results),
		"tokens": numTokens,
		"kinds":  kinds,
		"errors": errors,
	}
}
