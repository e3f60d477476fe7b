// Copyright (c) 2025 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package kawpow

import "github.com/decred/slog"

// log is this package's logger. It is disabled by default; an embedding
// application wires up a concrete backend via UseLogger, the same pattern
// used throughout the surrounding node (peer, connmgr, blockchain, ...).
var log = slog.Disabled

// UseLogger sets the package-wide logger used by the hashing core. Wiring
// DAG generation/caching, job dispatch, or CLI output through this logger
// is the embedder's responsibility; this package only logs what happens
// inside its own boundary (DAG validation). The search package carries its
// own logger of the same shape for its own boundary (launch validation,
// search completion), matching the rest of the surrounding node's
// one-logger-per-package convention.
func UseLogger(logger slog.Logger) {
	log = logger
}
