// Copyright (c) 2025 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package search

import "github.com/decred/slog"

// log is this package's logger. It is disabled by default; an embedding
// application wires up a concrete backend via UseLogger, the same
// one-logger-per-package pattern the root kawpow package and the rest of
// the surrounding node (peer, connmgr, blockchain, ...) use.
var log = slog.Disabled

// UseLogger sets the package-wide logger used by the search dispatcher:
// launch-refusal rejections and search completions. It is independent of
// the root kawpow package's own logger; an embedder that wants both wired
// to the same backend calls both packages' UseLogger.
func UseLogger(logger slog.Logger) {
	log = logger
}
