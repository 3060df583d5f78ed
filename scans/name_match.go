package scans

import (
	"regexp"

	"github.com/moneytech/wrenalyzer/wrenconfigs"
)

type NameMatch func(path string) bool

func (Module) NameMatch(
	match wrenconfigs.Match,
) NameMatch {
	if match == "" {
		return func(string) bool {
			return true
		}
	}
	re := regexp.MustCompile(string(match))
	return func(path string) bool {
		return re.MatchString(path)
	}
}
