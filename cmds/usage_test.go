package cmds

import "testing"

func TestUsage(t *testing.T) {
	executor := NewExecutor()
	executor.Define("-output", Func(func(string) {
	}).Desc("set output format").Alias("-o"))
	executor.Define("show", Sub(map[string]*Command{
		"tokens": Func(func() {}).Desc("dump the token stream"),
		"counts": Sub(map[string]*Command{
			"kinds": Func(func() {}).Desc("count tokens by kind"),
		}).Desc("summaries"),
	}).Desc("inspection commands"))
	executor.PrintUsage()
}
