package crash

import (
	"fmt"
	"io"

	"github.com/hitzhangjie/panictrace/pkg/enclave"
	"github.com/hitzhangjie/panictrace/pkg/unwind"
)

// swapped out by tests, the crash path always uses the real ones
var (
	imageBase = enclave.ImageBase
	walkStack = unwind.Trace
)

// PrintBacktrace writes the calling goroutine's stack to the diagnostic
// stream as one "index: offset" line per frame, offsets relative to the
// enclave image base. The offsets need to be symbolized outside the enclave
// against the original binary.
func PrintBacktrace() {
	printBacktrace(output, 1)
}

func printBacktrace(w io.Writer, skip int) {
	fmt.Fprintln(w, "stack backtrace:")

	// one base query per trace so every offset shares the same origin
	base := imageBase()

	idx := 0
	walkStack(skip+1, func(f unwind.Frame) bool {
		ip := uint64(f.IP())

		// relative offset, clamped instead of wrapping when the pc sits
		// below the base (base unknown, or code outside the image)
		var off uint64
		if ip > base {
			off = ip - base
		}

		fmt.Fprintf(w, "%4d: %#x\n", idx, off)
		idx++

		// TODO(hitzhangjie): skip the reporting frames themselves so frame 0
		// is the panic site rather than this callback's callers.
		return true
	})

	fmt.Fprintln(w)
}
