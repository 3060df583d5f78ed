package modes

import (
	"testing"

	"github.com/reusee/dscope"
)

// ForTestModule provides development mode and the running test's handle.
type ForTestModule struct {
	dscope.Module
	t *testing.T
}

func ForTest(t *testing.T) ForTestModule {
	return ForTestModule{
		t: t,
	}
}

func (m ForTestModule) T() *testing.T {
	return m.t
}

func (m ForTestModule) Mode() Mode {
	return ModeDevelopment
}
