// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for buffer allocation.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults,
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that resolves defaults.
//
// Design goals:
//   - Deterministic behavior: the only environment input is the physical
//     memory size, probed once per process.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Options fields are unexported; public APIs consume ...Option.
//
// Notes:
//   - The memory ceiling is a per-instance policy. It is captured by NewDense
//     and re-used by Transpose and Clone, so a matrix never grows a buffer its
//     constructor would have refused.
//   - A ceiling of 0 means "no ceiling"; only the overflow check and the
//     runtime itself can then refuse an allocation.
package matrix

import (
	"sync"

	"github.com/pbnjay/memory"
)

// ElementSize is the byte size of one matrix element (uint64).
const ElementSize = 8

// NoMemoryLimit disables the byte ceiling on buffer allocation.
const NoMemoryLimit uint64 = 0

const panicMemoryLimitInvalid = "matrix: WithMemoryLimit: limit must be > 0 (use WithNoMemoryLimit)"

// systemMemory probes the physical memory once; 0 when the platform cannot tell.
var systemMemory = sync.OnceValue(memory.TotalMemory)

// DefaultMemoryLimit returns the ceiling applied when no option overrides it:
// the total physical memory of the machine, or NoMemoryLimit when unknown.
// Complexity: O(1) after the first call.
func DefaultMemoryLimit() uint64 { return systemMemory() }

// Option mutates internal options. Safe to apply repeatedly (last wins).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	memLimit uint64 // bytes; NoMemoryLimit disables the ceiling
}

// MemoryLimit reports the resolved ceiling in bytes (NoMemoryLimit = none).
func (o Options) MemoryLimit() uint64 { return o.memLimit }

// WithMemoryLimit caps the byte size of any buffer the matrix allocates.
// Implementation:
//   - Stage 1: validate limit > 0.
//   - Stage 2: return a setter that writes the ceiling into Options.
//
// Errors:
//   - Panics with a stable message when limit is 0; disabling the ceiling is
//     spelled WithNoMemoryLimit so intent is explicit at the call site.
//
// Complexity:
//   - Time O(1), Space O(1).
func WithMemoryLimit(limit uint64) Option {
	if limit == 0 {
		panic(panicMemoryLimitInvalid)
	}

	return func(o *Options) { o.memLimit = limit }
}

// WithNoMemoryLimit removes the byte ceiling.
func WithNoMemoryLimit() Option {
	return func(o *Options) { o.memLimit = NoMemoryLimit }
}

// NewOptions resolves user options over the defaults and returns a snapshot.
func NewOptions(opts ...Option) Options { return gatherOptions(opts...) }

// defaultOptions returns the zero-configuration policy.
func defaultOptions() Options {
	return Options{memLimit: DefaultMemoryLimit()}
}

// gatherOptions applies user options in order over the defaults.
// Nil options are skipped so callers can build option slices conditionally.
func gatherOptions(user ...Option) Options {
	o := defaultOptions()
	for _, fn := range user {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
