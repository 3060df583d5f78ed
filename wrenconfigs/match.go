package wrenconfigs

import (
	"github.com/moneytech/wrenalyzer/cmds"
	"github.com/moneytech/wrenalyzer/configs"
	"github.com/moneytech/wrenalyzer/vars"
)

// Match is a regular expression filtering which file paths get scanned. The
// empty string matches everything.
type Match string

var matchFlag = cmds.Var[string]("-match")

func (Module) Match(
	loader configs.Loader,
) Match {
	return Match(vars.FirstNonZero(
		*matchFlag,
		configs.First[string](loader, "match"),
	))
}
