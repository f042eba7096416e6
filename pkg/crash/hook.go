package crash

import (
	"fmt"
	"sync"

	"go.uber.org/atomic"
)

// Hook is a panic handler. The process carries exactly one registered hook
// at a time; installing a new one is how handlers compose (see
// InstallCrashHandler).
type Hook func(info *Info)

// the default hook does nothing: once Report returns, HandlePanic re-raises
// and the runtime's own report-and-abort path takes over
func defaultHook(info *Info) {}

var (
	hookMu sync.Mutex
	hook   Hook = defaultHook

	// set while a report is in flight, breaks re-entrant panics
	reporting = atomic.NewBool(false)
)

// TakeHook removes the currently registered hook and returns it, leaving the
// default hook registered in its place.
func TakeHook() Hook {
	hookMu.Lock()
	defer hookMu.Unlock()

	h := hook
	hook = defaultHook
	return h
}

// SetHook registers h as the process-wide panic hook. A nil h restores the
// default hook.
func SetHook(h Hook) {
	hookMu.Lock()
	defer hookMu.Unlock()

	if h == nil {
		h = defaultHook
	}
	hook = h
}

// Report runs the registered hook for info, synchronously on the calling
// goroutine. A panic raised while a report is already in flight must not
// recurse into the formatting that just failed, so it gets one minimal line
// and nothing else.
func Report(info *Info) {
	if !reporting.CAS(false, true) {
		_, _ = output.Write([]byte("enclave panic (re-entrant): " + info.Message + "\n"))
		return
	}
	defer reporting.Store(false)

	currentHook()(info)
}

func currentHook() Hook {
	hookMu.Lock()
	defer hookMu.Unlock()
	return hook
}

// InstallCrashHandler registers a panic hook that prints the panic message
// and a raw backtrace, flushes the diagnostic stream, then delegates to
// whichever hook was registered before it. Call it once during enclave
// startup, before any code that could panic.
//
// Calling it again is well defined but compounding: each call wraps the
// hook already in place, so N calls produce N print+trace+flush cycles per
// panic, most recently installed first. Installed hooks are never restored;
// there is no uninstall.
func InstallCrashHandler() {
	prev := TakeHook()
	SetHook(func(info *Info) {
		// the default hook doesn't print the panic message, so do it here
		fmt.Fprintf(output, "enclave panic: %s\n", info)

		printBacktrace(output, 0)

		// the enclave is about to abort, try to get the buffered output
		// out. flush errors stay discarded so reporting a panic can never
		// raise another one.
		_ = output.Flush()

		// continue with whatever behavior was installed before us
		prev(info)
	})
}

// HandlePanic reports a panic through the registered hook chain and then
// resumes the default termination path. Defer it near the top of any
// goroutine that may panic:
//
//	defer crash.HandlePanic()
//
// With no panic underway it does nothing.
func HandlePanic() {
	r := recover()
	if r == nil {
		return
	}
	Report(NewInfo(r))
	panic(r)
}
