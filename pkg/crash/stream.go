package crash

import (
	"io"
	"os"
)

// Stream is where crash diagnostics go: a writer plus a best-effort flush.
// The flush is invoked once per report, right before control returns to the
// termination path, so buffered output makes it out of the enclave.
type Stream interface {
	io.Writer
	Flush() error
}

type fileStream struct {
	*os.File
}

func (s fileStream) Flush() error {
	return s.Sync()
}

// output is the process-wide diagnostic stream, stdout unless redirected.
var output Stream = fileStream{os.Stdout}

// SetOutput redirects diagnostic output. Call it before InstallCrashHandler;
// the crash path reads it without locking.
func SetOutput(s Stream) {
	output = s
}
