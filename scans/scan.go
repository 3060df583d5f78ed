package scans

import (
	"context"
	"sync"

	"github.com/moneytech/wrenalyzer/logs"
	"github.com/moneytech/wrenalyzer/syncs"
	"github.com/moneytech/wrenalyzer/wren"
	"github.com/moneytech/wrenalyzer/wrenconfigs"
)

// Result is the full token stream of one file, in source order, ending with
// the EOF token.
type Result struct {
	File      *wren.SourceFile
	Tokens    []wren.Token
	NumErrors int
}

type Scan func(ctx context.Context) ([]Result, error)

func (Module) Scan(
	provider SourceProvider,
	jobs wrenconfigs.Jobs,
	logger logs.Logger,
	newSpan logs.NewSpan,
) Scan {
	return func(ctx context.Context) ([]Result, error) {
		ctx, _ = newSpan(ctx, "")

		var files []*wren.SourceFile
		for file, err := range provider.IterSources() {
			if err != nil {
				return nil, logs.WrapSpan(ctx, err)
			}
			files = append(files, file)
		}

		// lex concurrently, results keep input order
		results := make([]Result, len(files))
		sem := syncs.NewSemaphore(max(int(jobs), 1))
		wg := new(sync.WaitGroup)
		for i, file := range files {
			if ctx.Err() != nil {
				break
			}
			sem.Acquire()
			wg.Add(1)
			go func() {
				defer wg.Done()
				defer sem.Release()
				results[i] = ScanFile(file)
				logger.DebugContext(ctx, "scanned",
					"path", file.Path,
					"tokens", len(results[i].Tokens),
					"errors", results[i].NumErrors,
				)
			}()
		}
		wg.Wait()
		if err := ctx.Err(); err != nil {
			return nil, logs.WrapSpan(ctx, err)
		}

		totalTokens := 0
		totalErrors := 0
		for _, result := range results {
			totalTokens += len(result.Tokens)
			totalErrors += result.NumErrors
		}
		logger.InfoContext(ctx, "scan done",
			"files", len(results),
			"tokens", totalTokens,
			"errors", totalErrors,
			"jobs", int(jobs),
		)

		return results, nil
	}
}

// ScanFile lexes one file to the end of input.
func ScanFile(file *wren.SourceFile) Result {
	result := Result{
		File: file,
	}
	for token := range wren.NewLexer(file).Tokens() {
		result.Tokens = append(result.Tokens, token)
		if token.Kind == wren.TokenError {
			result.NumErrors++
		}
	}
	return result
}
