package main

import (
	"github.com/moneytech/wrenalyzer/debugs"
	"github.com/moneytech/wrenalyzer/reports"
	"github.com/moneytech/wrenalyzer/scans"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Scans   scans.Module
	Reports reports.Module
	Debugs  debugs.Module
}
