// Package matrix provides a dense, row-major matrix of uint64 values with
// bounds-checked access, equality and in-place transpose.
//
// The matrix package provides:
//
//   - Dense, an owned rows×cols buffer (rows, cols ≥ 0) built from a copy of
//     caller data: New / NewDense.
//   - At, a bounds-checked read returning ErrOutOfRange instead of panicking.
//   - Equal, shape-then-elements comparison with a fast path for *Dense.
//   - Transpose, an in-place axis swap that builds the transposed buffer first
//     and swaps it in, leaving the matrix untouched if allocation fails.
//   - Fprint, a plain-text dump for diagnostics.
//
// Allocation is all-or-nothing: element-count overflow, a request above the
// memory ceiling (default: physical memory, see WithMemoryLimit) or a runtime
// refusal surface as ErrAllocation and never as a half-built matrix.
//
// A Dense carries no lock. Callers sharing one across goroutines serialize
// access themselves.
//
//	a, _ := matrix.New(2, 4, []uint64{11, 12, 13, 14, 21, 22, 23, 24})
//	_ = a.Transpose()            // a is now 4×2
//	v, _ := a.At(3, 1)           // 24
package matrix
