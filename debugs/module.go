package debugs

import (
	"github.com/moneytech/wrenalyzer/logs"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Logs logs.Module
}
