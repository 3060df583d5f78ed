package wrenconfigs

import (
	"runtime"

	"github.com/moneytech/wrenalyzer/cmds"
	"github.com/moneytech/wrenalyzer/configs"
	"github.com/moneytech/wrenalyzer/vars"
)

// Jobs bounds how many files are lexed concurrently.
type Jobs int

var jobsFlag = cmds.Var[int]("-jobs")

func (Module) Jobs(
	loader configs.Loader,
) Jobs {
	return Jobs(vars.FirstNonZero(
		*jobsFlag,
		configs.First[int](loader, "jobs"),
		runtime.NumCPU(),
	))
}
