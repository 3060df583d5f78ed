package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/chzyer/readline"
	"github.com/moneytech/wrenalyzer/reports"
	"github.com/moneytech/wrenalyzer/scans"
	"github.com/moneytech/wrenalyzer/wren"
)

func runREPL(reporter reports.Reporter) {
	var historyFile string
	if home, err := os.UserHomeDir(); err == nil {
		historyFile = filepath.Join(home, ".wrenalyzer_history")
	}
	rl, err := readline.NewEx(&readline.Config{
		Prompt:      "> ",
		HistoryFile: historyFile,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return
	}
	defer rl.Close()

	for n := 1; ; n++ {
		line, err := rl.Readline()
		if err != nil { // Ctrl-C or Ctrl-D
			break
		}
		if line == "" {
			continue
		}
		result := scans.ScanFile(wren.NewSourceFile(
			fmt.Sprintf("(repl:%d)", n),
			line,
		))
		if err := reporter.Report(result.File, result.Tokens); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
	}
}
