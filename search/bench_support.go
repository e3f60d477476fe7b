// Copyright (c) 2025 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package search

import "github.com/decred/dcrd/crypto/rand"

// randomHeader returns a synthetic 32-byte header drawn from a
// cryptographically secure source. Benchmarks use it instead of an all-zero
// or sequential header so repeated runs exercise different Keccak inputs,
// the same reasoning the surrounding node's own benchmarks use
// github.com/decred/dcrd/crypto/rand for synthetic fixtures rather than
// math/rand.
func randomHeader() [32]byte {
	var h [32]byte
	rand.Read(h[:])
	return h
}

// randomStartNonce returns a random 64-bit nonce to seed a benchmark launch
// range at, so consecutive benchmark runs don't all walk the exact same
// nonces.
func randomStartNonce() uint64 {
	return rand.Uint64()
}
