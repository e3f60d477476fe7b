// Copyright (c) 2025 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package kawpow

import (
	"encoding/binary"
	"fmt"
)

// Digest is the 256-bit KawPoW final hash, little-endian word order (word 7
// carries the most significant bits under the target comparison).
type Digest [32]byte

// Mix is the 256-bit reduced mix digest returned alongside Digest; a result
// consumer persists it next to the nonce so the proof can be independently
// re-checked. Verify does so by recomputing the full pipeline, mix loop
// included, and comparing the recomputed mix with the reported one.
type Mix [32]byte

// Hash computes the bit-exact KawPoW/ProgPoW digest and mix for one
// (header, nonce, dag) triple. The lane-mix array, the Keccak state, and
// every intermediate word are pure functions of the inputs.
//
// This is the CPU reference pipeline: a test oracle and fallback, not the
// primary execution path for a production miner. That path is the
// massively-parallel search kernel in the search subpackage, which must
// produce byte-identical results for the same inputs.
func Hash(header [32]byte, nonce uint64, dag DAG) (Digest, Mix) {
	seed, seedState := seedKeccak(header, nonce)
	finalMix := progpowMix(seed, dag)
	digestWords := finalKeccak(finalMix, seedState)

	var digest Digest
	var mix Mix
	for i := 0; i < 8; i++ {
		binary.LittleEndian.PutUint32(digest[i*4:], digestWords[i])
		binary.LittleEndian.PutUint32(mix[i*4:], finalMix[i])
	}
	return digest, mix
}

// dagWithCache overrides a DAG's cache-word reads with a preloaded slice,
// while leaving full-item reads (the DAG-mixing phase) routed to the
// underlying DAG unchanged. It backs HashWithCache, letting a caller that
// has already copied the DAG's hot cache into its own (e.g. block-local
// shared) memory avoid re-deriving it from the DAG on every cache read.
type dagWithCache struct {
	DAG
	cache []uint32
}

func (d dagWithCache) CacheWord(idx uint32) uint32 {
	return d.cache[idx%uint32(len(d.cache))]
}

// HashWithCache is Hash, but with the mix loop's cache-mixing phase reading
// from a caller-supplied preloaded slice instead of calling dag.CacheWord
// directly. The values read must be identical to dag.CacheWord's own
// output for every index; this function does not change what is computed,
// only where the cache-mix phase's reads come from. It exists for the
// search package's shared-memory hot-cache emulation.
func HashWithCache(header [32]byte, nonce uint64, dag DAG, cache []uint32) (Digest, Mix) {
	seed, seedState := seedKeccak(header, nonce)
	finalMix := progpowMix(seed, dagWithCache{DAG: dag, cache: cache})
	digestWords := finalKeccak(finalMix, seedState)

	var digest Digest
	var mix Mix
	for i := 0; i < 8; i++ {
		binary.LittleEndian.PutUint32(digest[i*4:], digestWords[i])
		binary.LittleEndian.PutUint32(mix[i*4:], finalMix[i])
	}
	return digest, mix
}

// Verify recomputes the digest and mix for (header, nonce, dag) and reports
// whether the recomputed mix matches the reported one and the digest
// validates against target. A result consumer uses it to re-check a
// reported solution without trusting the searcher that produced it.
func Verify(header [32]byte, nonce uint64, dag DAG, mix Mix, target Target) bool {
	digest, computedMix := Hash(header, nonce, dag)
	return computedMix == mix && target.Validates(digest)
}

// HashBytes is the []byte-oriented convenience wrapper around Hash, used by
// callers holding a serialized header instead of a fixed-size array. It
// returns ErrInvalidArgument if headerBytes is not exactly 32 bytes.
func HashBytes(headerBytes []byte, nonce uint64, dag DAG) (Digest, Mix, error) {
	if len(headerBytes) != 32 {
		return Digest{}, Mix{}, fmt.Errorf("%w: header must be exactly 32 bytes, got %d",
			ErrInvalidArgument, len(headerBytes))
	}
	var header [32]byte
	copy(header[:], headerBytes)
	digest, mix := Hash(header, nonce, dag)
	return digest, mix, nil
}
