//go:build !(sgx && amd64)

package enclave

// ImageBase returns 0 on targets where the enclave load address cannot be
// determined. Callers subtracting it end up printing absolute addresses,
// which still symbolize fine for non-PIE binaries.
func ImageBase() uint64 {
	return 0
}
