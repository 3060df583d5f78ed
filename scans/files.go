package scans

import (
	"path/filepath"

	"github.com/moneytech/wrenalyzer/cmds"
)

var fileNamesFlag []string

func init() {
	cmds.Define("-file", cmds.Func(func(pattern string) {
		paths, err := filepath.Glob(pattern)
		if err != nil {
			// not a pattern, take it literally
			fileNamesFlag = append(fileNamesFlag, pattern)
		} else {
			fileNamesFlag = append(fileNamesFlag, paths...)
		}
	}).Desc("scan files matching the specified pattern. directories are walked recursively"))
}

type Files []string

func (Module) Files() Files {
	return Files(fileNamesFlag)
}
