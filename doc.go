// Package umatrix is a small, dependable uint64 matrix: build it from a flat
// row-major slice, read cells with bounds checks, compare, and transpose in
// place without ever exposing a half-updated buffer.
//
// Layout:
//
//	matrix/              — Dense, New/At/Equal/Transpose, Fprint, options & sentinel errors
//	internal/scenario/   — named checks (equal, differ, transpose, involution), YAML loader, runner
//	cmd/matrixcheck/     — CLI running the built-in or file-defined scenarios
//	examples/            — runnable walkthrough
//
// Quick ASCII example:
//
//	11 12 13 14        11 21
//	21 22 23 24   ᵀ→   12 22
//	                   13 23
//	                   14 24
//
//	go get github.com/katalvlaran/umatrix/matrix
package umatrix
