package unwind

import (
	"runtime"
	"testing"
)

func TestTraceMatchesRuntimeCallers(t *testing.T) {
	want := make([]uintptr, 64)
	n := runtime.Callers(1, want)
	if n == 0 || n == len(want) {
		t.Fatalf("runtime.Callers returned %d frames", n)
	}
	want = want[:n]

	var got []uintptr
	Trace(0, func(f Frame) bool {
		got = append(got, f.IP())
		return true
	})

	if len(got) != len(want) {
		t.Fatalf("Trace yielded %d frames, want %d", len(got), len(want))
	}
	// frame 0 is a call site inside this function and differs between the
	// two captures, everything below it must match exactly
	for i := 1; i < len(want); i++ {
		if got[i] != want[i] {
			t.Errorf("frame %d: got pc %#x, want %#x", i, got[i], want[i])
		}
	}
}

func TestTraceStopsWhenCallbackReturnsFalse(t *testing.T) {
	calls := 0
	Trace(0, func(f Frame) bool {
		calls++
		return false
	})
	if calls != 1 {
		t.Errorf("callback invoked %d times after returning false, want 1", calls)
	}
}

func TestTraceSkip(t *testing.T) {
	var all, skipped []uintptr
	Trace(0, func(f Frame) bool {
		all = append(all, f.IP())
		return true
	})
	Trace(1, func(f Frame) bool {
		skipped = append(skipped, f.IP())
		return true
	})

	// skipping one frame drops the innermost entry, the rest of the stack
	// below this function is identical
	if len(skipped) != len(all)-1 {
		t.Fatalf("Trace(1) yielded %d frames, want %d", len(skipped), len(all)-1)
	}
	for i := range skipped {
		if skipped[i] != all[i+1] {
			t.Errorf("frame %d: got pc %#x, want %#x", i, skipped[i], all[i+1])
		}
	}
}
