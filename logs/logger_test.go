package logs

import (
	"bytes"
	"strings"
	"testing"

	"github.com/reusee/dscope"
)

func TestLogger(t *testing.T) {
	buf := new(bytes.Buffer)
	dscope.New(new(Module)).Fork(
		func() Writer {
			return buf
		},
	).Call(func(
		logger Logger,
	) {
		logger.Info("scan starting", "files", 3)
	})

	if got := buf.String(); !strings.Contains(got, "scan starting") ||
		!strings.Contains(got, "files=3") {
		t.Fatalf("got %q", got)
	}
}

func TestToJournalKey(t *testing.T) {
	tests := []struct {
		key  string
		want string
	}{
		{"span", "SPAN"},
		{"num.errors", "NUM_ERRORS"},
		{"scan-done", "SCAN_DONE"},
		{"Path2", "PATH2"},
	}
	for _, test := range tests {
		if got := toJournalKey(test.key); got != test.want {
			t.Fatalf("%s: got %q, want %q", test.key, got, test.want)
		}
	}
}
