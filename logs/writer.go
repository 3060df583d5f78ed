package logs

import (
	"io"
	"os"
)

// Writer is where the text handler renders. Logs stay on stderr so stdout
// carries nothing but reports.
type Writer io.Writer

func (Module) Writer() Writer {
	return os.Stderr
}
