//go:build sgx && amd64

package enclave

// ImageBase returns the load address of the running enclave binary.
//
// The enclave entry code defines the IMAGE_BASE symbol at the first byte of
// the image. The read is implemented in assembly as a single rip-relative
// lea so it executes at the call site in position-independent form; a Go
// expression here could be folded into an absolute relocation by the
// compiler and break under the enclave loader.
func ImageBase() uint64
