package modes

import (
	"testing"

	"github.com/reusee/dscope"
)

func TestForProduction(t *testing.T) {
	dscope.New(ForProduction()).Call(func(
		mode Mode,
	) {
		if mode != ModeProduction {
			t.Fatalf("got %v", mode)
		}
	})
}
