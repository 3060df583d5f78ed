package wrenconfigs

import (
	"github.com/moneytech/wrenalyzer/cmds"
	"github.com/moneytech/wrenalyzer/configs"
	"github.com/moneytech/wrenalyzer/vars"
)

// Output selects the report format.
type Output string

const (
	OutputPretty Output = "pretty"
	OutputJSON   Output = "json"
)

var outputFlag = cmds.Var[string]("-output")

func init() {
	cmds.Define("-json", cmds.Func(func() {
		*outputFlag = string(OutputJSON)
	}).Desc("report tokens as JSON, one object per line"))
}

func (Module) Output(
	loader configs.Loader,
) Output {
	return Output(vars.FirstNonZero(
		*outputFlag,
		configs.First[string](loader, "output"),
		string(OutputPretty),
	))
}
