// SPDX-License-Identifier: MIT

package matrix

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

// Fprint writes m to w row by row: every value followed by one space, every
// row terminated by a newline ("11 12 \n21 22 \n"). It is the diagnostic dump
// used when two matrices unexpectedly differ.
//
// Errors:
//   - ErrNilMatrix for a nil m; At errors from foreign implementations;
//     the first write error from w.
//
// Complexity:
//   - Time O(r*c), Space O(1) beyond the write buffer.
func Fprint(w io.Writer, m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return fmt.Errorf("Fprint: %w", err)
	}
	bw := bufio.NewWriter(w)
	rows, cols := m.Rows(), m.Cols()
	var (
		i, j int
		v    uint64
		err  error
		num  [20]byte // max decimal width of a uint64
	)
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return fmt.Errorf("Fprint: %w", err)
			}
			bw.Write(strconv.AppendUint(num[:0], v, 10))
			bw.WriteByte(' ')
		}
		bw.WriteByte('\n')
	}

	// bufio keeps the first write error and reports it here.
	return bw.Flush()
}
