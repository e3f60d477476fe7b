// Copyright (c) 2025 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package kawpow

import "errors"

// These sentinel errors categorize the precondition violations a launcher
// can report, per the error-handling design: the hash core itself has no
// recoverable error states, since every input reaching it is a launch
// precondition the caller already validated.
var (
	// ErrInvalidArgument reports a malformed header, target or DAG size.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrDeviceMemory reports that a required allocation or memory
	// residency precondition could not be satisfied.
	ErrDeviceMemory = errors.New("device memory error")

	// ErrLaunchFailure reports that a kernel launch could not be started
	// or did not complete cleanly.
	ErrLaunchFailure = errors.New("launch failure")
)
