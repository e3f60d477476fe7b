// Copyright (c) 2025 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package search

import "github.com/decred/dcrd/internal/kawpow"

// Re-exported so callers of this package don't also need to import the
// parent kawpow package just to use errors.Is against a launch-refusal
// error.
var (
	ErrInvalidArgument = kawpow.ErrInvalidArgument
	ErrDeviceMemory    = kawpow.ErrDeviceMemory
	ErrLaunchFailure   = kawpow.ErrLaunchFailure
)
