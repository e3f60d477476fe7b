// Copyright (c) 2025 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package search implements the host-side launch of the massively-parallel
// KawPoW search kernel: given a header, a DAG, and a target, scan a
// contiguous range of nonces and report the first one (by arbitration, not
// by position) whose digest validates.
//
// The kernel entry point itself is device-flavored; on a real GPU it is a
// SIMT kernel launched across a grid of thread blocks. This package defines
// the device-agnostic boundary around it: a Device abstraction (opaque
// compute context), a kernel argument schema, and exactly one conformant
// backing implementation, CPUDevice, which realizes the same
// grid/block/thread geometry with goroutines standing in for SIMT lanes. A
// GPU-backed Device (cgo/CUDA/OpenCL) is out of scope for this module;
// CPUDevice is both the reference oracle and the fallback search path.
package search

import "context"

// Device is the opaque compute context a kernel launch runs against: memory
// allocation, kernel launch, and synchronization. The CPU reference backend
// in this package implements it; a GPU backend would implement the same
// interface, so callers could swap backends without touching kernel logic.
type Device interface {
	// Alloc reserves a read-only device-resident buffer sized to host the
	// given byte slice and returns a handle backing it. For CPUDevice this
	// is a no-op wrapper; for a real GPU device it would perform the
	// host-to-device copy.
	Alloc(data []byte) (Buffer, error)

	// Launch runs one kernel invocation to completion (or cancellation via
	// ctx) and returns its result.
	Launch(ctx context.Context, args KernelArgs, cfg Config) (Result, error)

	// Synchronize blocks until all work previously submitted to this
	// device has completed. CPUDevice's Launch is already synchronous, so
	// Synchronize is a no-op there; it exists so a GPU backend has
	// somewhere to put a stream/queue wait.
	Synchronize() error

	// Close releases any device-resident resources.
	Close() error
}

// Buffer is an opaque device-memory handle returned by Device.Alloc.
type Buffer interface {
	// Bytes exposes the buffer's contents. On the CPU backend this is the
	// original slice; on a GPU backend it would require a device-to-host
	// copy and should be used sparingly.
	Bytes() []byte

	// Size returns the buffer's length in bytes.
	Size() int
}
