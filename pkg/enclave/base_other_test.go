//go:build !(sgx && amd64)

package enclave

import "testing"

func TestImageBaseFallback(t *testing.T) {
	if base := ImageBase(); base != 0 {
		t.Errorf("fallback ImageBase() = %#x, want 0", base)
	}
}
