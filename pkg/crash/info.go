package crash

import (
	"fmt"
	"runtime"
	"strings"
)

// Info describes a panic being reported: the message plus, when known, the
// source location that raised it. It is owned by the signaling side for the
// duration of one report and is never retained.
type Info struct {
	Message string
	File    string
	Line    int
	Col     int
}

// String renders the descriptor in its standard textual form, the one that
// follows the "enclave panic: " prefix on the wire.
func (i *Info) String() string {
	if i.File == "" {
		return i.Message
	}
	if i.Col > 0 {
		return fmt.Sprintf("%s at %s:%d:%d", i.Message, i.File, i.Line, i.Col)
	}
	return fmt.Sprintf("%s at %s:%d", i.Message, i.File, i.Line)
}

// NewInfo builds an Info from a recovered panic value. The location is the
// innermost frame outside the runtime, which is where panic was called.
func NewInfo(r interface{}) *Info {
	info := &Info{Message: fmt.Sprintf("%v", r)}

	pcs := make([]uintptr, 32)
	n := runtime.Callers(2, pcs)
	frames := runtime.CallersFrames(pcs[:n])
	for {
		frame, more := frames.Next()
		if frame.Function != "" && !strings.HasPrefix(frame.Function, "runtime.") &&
			frame.Function != "github.com/hitzhangjie/panictrace/pkg/crash.HandlePanic" {
			info.File = frame.File
			info.Line = frame.Line
			break
		}
		if !more {
			break
		}
	}
	return info
}
