package scans

import (
	"github.com/moneytech/wrenalyzer/wrenconfigs"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Configs wrenconfigs.Module
}
