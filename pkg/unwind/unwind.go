package unwind

import "runtime"

// Frame is one activation record of a walked stack, identified by the
// instruction pointer saved for it.
type Frame struct {
	pc uintptr
}

// NewFrame returns a Frame for the given instruction pointer. Alternative
// unwinders hand frames to the same callbacks Trace feeds.
func NewFrame(pc uintptr) Frame {
	return Frame{pc: pc}
}

// IP returns the frame's instruction pointer.
func (f Frame) IP() uintptr {
	return f.pc
}

// Trace walks the calling goroutine's stack, innermost frame first, calling
// fn once per active frame. The walk stops when fn returns false or the
// frames are exhausted. skip counts frames to omit before the first call,
// with 0 identifying the caller of Trace.
func Trace(skip int, fn func(Frame) bool) {
	// grow the buffer until the whole stack fits, there is no depth cap
	pcs := []uintptr{0}
	for {
		pcs = make([]uintptr, 2*len(pcs))
		n := runtime.Callers(skip+2, pcs)
		if n < len(pcs) {
			pcs = pcs[:n]
			break
		}
	}

	for _, pc := range pcs {
		if !fn(Frame{pc: pc}) {
			return
		}
	}
}
