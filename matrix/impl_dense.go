// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At returns errors instead of panicking.
//   - Own the buffer exclusively: constructors copy caller data, nothing hands out the slice.
//   - Mutate shape and contents only through Transpose (and Release at end of life).
//
// Complexity quicksheet:
//   - NewDense: O(r*c) copy; At: O(1); Equal: O(r*c) worst case; Transpose: O(r*c) time and space.

package matrix

import (
	"fmt"
	"strconv"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxNew       = "NewDense"  // ctor tag used in error wrappers
	ctxAt        = "At"        // method tag used in error wrappers
	ctxTranspose = "Transpose" // method tag used in error wrappers
	ctxClone     = "Clone"     // method tag used in error wrappers
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// MAIN DESCRIPTION:
//   - Attach method context and coordinates to a sentinel error for diagnostics.
//
// Inputs:
//   - method: context tag (ctxAt/ctxNew/...)
//   - row, col: coordinates (or shape for constructors)
//   - err: sentinel (e.g., ErrOutOfRange, ErrAllocation), possibly already wrapped
//
// Returns:
//   - error: "Dense.<method>(row,col): <err>", matching errors.Is on the sentinel.
//
// Complexity:
//   - Time O(1), Space O(1).
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix of uint64 values.
//   - r,c hold dimensions (rows, cols); 0×N and N×0 are legal.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//   - memLimit is the byte ceiling captured at construction (see options.go).
//
// A Dense is not safe for concurrent use: callers serialize access, and must
// not keep other references to its old shape across Transpose.
type Dense struct {
	r, c     int      // row and column counts (>=0)
	data     []uint64 // contiguous row-major storage (len == r*c)
	memLimit uint64   // allocation ceiling in bytes; NoMemoryLimit = none
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c matrix holding a private copy of values (row-major).
// MAIN DESCRIPTION:
//   - Public constructor with strict shape validation and all-or-nothing allocation.
//
// Implementation:
//   - Stage 1: ValidateShape (negative dims and count mismatch → ErrBadShape,
//     rows*cols overflow → ErrAllocation).
//   - Stage 2: allocate under the resolved memory ceiling; copy values.
//
// Behavior highlights:
//   - No aliasing: later writes to values do not affect the matrix.
//   - On any error the result is nil; no partially built matrix escapes.
//
// Inputs:
//   - rows, cols: non-negative dimensions.
//   - values: exactly rows*cols elements in row-major order (nil is fine for 0 elements).
//   - opts: allocation policy (WithMemoryLimit, WithNoMemoryLimit).
//
// Returns:
//   - *Dense: newly allocated matrix.
//
// Errors:
//   - ErrBadShape (negative dimension, wrong value count).
//   - ErrAllocation (overflow, ceiling exceeded, runtime refusal).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int, values []uint64, opts ...Option) (*Dense, error) {
	if err := ValidateShape(rows, cols, len(values)); err != nil {
		return nil, denseErrorf(ctxNew, rows, cols, err)
	}
	n := len(values) // == rows*cols after validation

	o := gatherOptions(opts...)
	buf, err := allocate(n, o.memLimit)
	if err != nil {
		return nil, denseErrorf(ctxNew, rows, cols, err)
	}
	copy(buf, values) // take a private copy

	return &Dense{r: rows, c: cols, data: buf, memLimit: o.memLimit}, nil
}

// Rows returns the row count (0 for a nil receiver). No side effects.
// Complexity: O(1).
func (m *Dense) Rows() int {
	if m == nil {
		return 0
	}

	return m.r
}

// Cols returns the column count (0 for a nil receiver). No side effects.
// Complexity: O(1).
func (m *Dense) Cols() int {
	if m == nil {
		return 0
	}

	return m.c
}

// Shape packs Rows() and Cols() into a single call for convenience.
// Complexity: O(1).
func (m *Dense) Shape() (rows, cols int) { return m.Rows(), m.Cols() }

// Len returns the number of stored elements (rows*cols).
// Complexity: O(1).
func (m *Dense) Len() int {
	if m == nil {
		return 0
	}

	return len(m.data)
}

// MemoryLimit reports the byte ceiling captured at construction.
// A nil receiver reports NoMemoryLimit.
func (m *Dense) MemoryLimit() uint64 {
	if m == nil {
		return NoMemoryLimit
	}

	return m.memLimit
}

// indexOf computes the row-major offset or returns ErrOutOfRange.
// MAIN DESCRIPTION:
//   - Bounds-check (row,col) and compute flat offset for row-major storage.
//
// Behavior highlights:
//   - Returns the bare sentinel; public methods wrap with coordinates.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// MAIN DESCRIPTION:
//   - Safe element read at coordinates.
//
// Implementation:
//   - Stage 1: compute offset via indexOf (bounds check).
//   - Stage 2: load from flat buffer.
//
// Inputs:
//   - row, col: zero-based indices.
//
// Returns:
//   - (value, nil) on success; (0, wrapped ErrOutOfRange) on invalid indices.
//
// Errors:
//   - ErrNilMatrix for a nil receiver.
//   - ErrOutOfRange when row ∉ [0,Rows()) or col ∉ [0,Cols()).
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense) At(row, col int) (uint64, error) {
	if m == nil {
		return 0, denseErrorf(ctxAt, row, col, ErrNilMatrix)
	}
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Equal reports whether other has the same shape and elements as m.
// See the package-level Equal for the full contract.
func (m *Dense) Equal(other Matrix) bool { return Equal(m, other) }

// Transpose swaps the matrix axes in place: shape (r,c) becomes (c,r) and the
// element formerly at (j,i) is found at (i,j).
// MAIN DESCRIPTION:
//   - Build-then-swap transpose; correct for any shape, square or not.
//
// Implementation:
//   - Stage 1: allocate a buffer of the same length under the captured ceiling.
//   - Stage 2: iterate the NEW shape (i over old cols, j over old rows) and pull
//     dst[i*r + j] = src[j*c + i].
//   - Stage 3: swap r, c and the buffer; drop the old buffer.
//
// Behavior highlights:
//   - Never writes into the buffer it reads from, so no aliasing hazard for r≠c.
//   - On allocation failure the matrix is untouched (strong guarantee).
//
// Errors:
//   - ErrNilMatrix for a nil receiver.
//   - ErrAllocation when the new buffer cannot be obtained.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) transient.
//
// Notes:
//   - Any slice previously obtained from the old layout (there is none in the
//     public API) would be stale; Values() always returns a copy.
func (m *Dense) Transpose() error {
	if m == nil {
		return denseErrorf(ctxTranspose, 0, 0, ErrNilMatrix)
	}
	rows, cols := m.r, m.c
	buf, err := allocate(len(m.data), m.memLimit)
	if err != nil {
		return denseErrorf(ctxTranspose, rows, cols, err)
	}

	// New shape is cols×rows; dst row i is src column i.
	var i, j, base int
	for i = 0; i < cols; i++ {
		base = i * rows
		for j = 0; j < rows; j++ {
			buf[base+j] = m.data[j*cols+i]
		}
	}

	m.r, m.c, m.data = cols, rows, buf

	return nil
}

// Clone returns a deep copy (new buffer, same memory ceiling).
// Errors:
//   - ErrNilMatrix for a nil receiver; ErrAllocation when the copy cannot be obtained.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func (m *Dense) Clone() (*Dense, error) {
	if m == nil {
		return nil, denseErrorf(ctxClone, 0, 0, ErrNilMatrix)
	}
	buf, err := allocate(len(m.data), m.memLimit)
	if err != nil {
		return nil, denseErrorf(ctxClone, m.r, m.c, err)
	}
	copy(buf, m.data)

	return &Dense{r: m.r, c: m.c, data: buf, memLimit: m.memLimit}, nil
}

// Values returns a row-major copy of the elements.
// The caller owns the result; the matrix keeps its buffer private.
// Complexity: O(r*c).
func (m *Dense) Values() []uint64 {
	if m == nil {
		return nil
	}
	out := make([]uint64, len(m.data))
	copy(out, m.data)

	return out
}

// Do visits each element (i,j) in row-major order and calls f(i,j,v).
// Stops early when f returns false. Read-only; no allocations.
// Complexity: Time O(r*c), Space O(1).
func (m *Dense) Do(f func(i, j int, v uint64) bool) {
	if m == nil {
		return
	}
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			if !f(i, j, m.data[base+j]) {
				return
			}
		}
	}
}

// Release drops the buffer and resets the shape to 0×0.
// It is the end-of-life hook: afterwards the matrix is a valid empty matrix and
// the old buffer is left to the garbage collector. Idempotent; nil-safe.
func (m *Dense) Release() {
	if m == nil {
		return
	}
	m.r, m.c, m.data = 0, 0, nil
}

// String renders rows as "[a, b, c]\n" lines for diagnostics.
// Not for hot paths. Complexity: Time O(r*c), Space O(r*c).
func (m *Dense) String() string {
	if m == nil {
		return "<nil>"
	}
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * m.c
		for j = 0; j < m.c; j++ {
			b.WriteString(strconv.FormatUint(m.data[base+j], 10))
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
