// SPDX-License-Identifier: MIT

package matrix

// Test-Bridge (White-Box) for the allocation hook.
//
// Purpose:
//   - Let matrix_test simulate allocation refusals without widening the prod API.
//   - Compiled only with `go test` (the _test.go suffix keeps it out of builds).

var (
	// ExportedAllocateBuffer exposes the production allocator.
	ExportedAllocateBuffer = allocateBuffer
	// ExportedElementCount exposes the overflow-checked rows*cols.
	ExportedElementCount = elementCount
)

// PanicMemoryLimitInvalid_TestOnly exports the WithMemoryLimit panic message.
const PanicMemoryLimitInvalid_TestOnly = panicMemoryLimitInvalid

// SetAllocator_TestOnly replaces the allocation hook and returns a restore func.
// Tests using it must not run in parallel.
func SetAllocator_TestOnly(fn func(n int, limit uint64) ([]uint64, error)) (restore func()) {
	prev := allocate
	allocate = fn

	return func() { allocate = prev }
}
