// Copyright (c) 2025 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package kawpow

import (
	"github.com/decred/dcrd/chaincfg/chainhash"
	"golang.org/x/crypto/sha3"
)

// EpochLength is the number of blocks a single DAG epoch covers before a new
// seed (and therefore a new DAG) is required. The hash pipeline itself never
// consults it, since hashing is a pure function of (header, nonce, DAG), but
// every epoch/seed/DAG collaborator needs the constant, so it lives next to
// SeedHash rather than being reinvented by each caller.
const EpochLength = 7500

// SeedHash derives the seed for DAG epoch epoch by chaining Keccak-256 epoch
// times starting from the zero hash: each epoch's seed is the previous
// epoch's seed re-hashed. It exists to drive internal/testdag's synthetic
// epoch DAGs; production epoch/seed bookkeeping belongs to the external DAG
// builder, not this package.
func SeedHash(epoch uint64) chainhash.Hash {
	var seed chainhash.Hash
	for i := uint64(0); i < epoch; i++ {
		seed = chainhash.Hash(sha3.Sum256(seed[:]))
	}
	return seed
}
