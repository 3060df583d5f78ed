package wrenconfigs

import (
	"os"

	"github.com/moneytech/wrenalyzer/cmds"
	"github.com/moneytech/wrenalyzer/configs"
	"github.com/moneytech/wrenalyzer/vars"
)

// Color says when pretty reports use ANSI colors.
type Color string

const (
	ColorAuto   Color = "auto"
	ColorAlways Color = "always"
	ColorNever  Color = "never"
)

var colorFlag = cmds.Var[string]("-color")

func (Module) Color(
	loader configs.Loader,
) Color {
	color := Color(vars.FirstNonZero(
		*colorFlag,
		configs.First[string](loader, "color"),
		string(ColorAuto),
	))
	if color == ColorAuto && os.Getenv("NO_COLOR") != "" {
		color = ColorNever
	}
	return color
}

// Enabled resolves the setting against whether the output is a terminal.
func (c Color) Enabled(terminal bool) bool {
	switch c {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}
	return terminal
}
