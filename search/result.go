// Copyright (c) 2025 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package search

import "github.com/decred/dcrd/chaincfg/chainhash"

// ChainHash returns the winning digest as a chainhash.Hash, the canonical
// 32-byte hash value type used everywhere a hash crosses a package boundary
// in the surrounding node (block headers, RPC responses, the mempool).
// Result keeps kawpow.Digest as its primary field because the hash core
// itself has no chainhash dependency; this method exists for result
// consumers that poll a launch's outcome and then hand the hash onward into
// code that already speaks chainhash.
func (r Result) ChainHash() chainhash.Hash {
	return chainhash.Hash(r.Hash)
}

// ChainMix is ChainHash's counterpart for the reduced mix digest.
func (r Result) ChainMix() chainhash.Hash {
	return chainhash.Hash(r.Mix)
}
