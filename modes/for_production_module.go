package modes

import (
	"testing"

	"github.com/reusee/dscope"
)

// ForProductionModule provides production mode and a nil test handle.
type ForProductionModule struct {
	dscope.Module
}

func ForProduction() ForProductionModule {
	return ForProductionModule{}
}

func (ForProductionModule) T() *testing.T {
	return nil
}

func (ForProductionModule) Mode() Mode {
	return ModeProduction
}
