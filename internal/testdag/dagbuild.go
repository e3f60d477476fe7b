// Copyright (c) 2025 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package testdag builds small, deterministic synthetic DAGs for use as
// test fixtures. A per-epoch light cache is expanded with Keccak-512 into a full
// dataset through a per-item mixing loop, and epoch caches are evicted
// through a bounded LRU.
//
// This package is not a production DAG builder: it has no mmap'd
// multi-gigabyte dataset, no background epoch-ahead pre-generation, and no
// on-disk persistence. It exists so this module's own tests have a real
// DAG to hash against without depending on an external miner's dataset
// file; CPUDevice itself does not use it and hashes whatever DAG its
// caller passes in KernelArgs.
package testdag

import (
	"encoding/binary"

	"github.com/decred/dcrd/chaincfg/chainhash"
	"github.com/decred/dcrd/container/lru"
	"github.com/decred/dcrd/internal/kawpow"
	"golang.org/x/crypto/sha3"
)

// Config sizes a synthetic DAG. Real KawPoW epochs use a light cache in the
// tens of MiB expanding to a dataset in the gigabytes; those sizes are
// useless for a test suite, so Config lets callers pick something orders of
// magnitude smaller while keeping the same generation shape.
type Config struct {
	// CacheWords is the light cache size in 32-bit words. Must be a
	// multiple of 16, since generateCache expands 16 words per Keccak-512
	// digest.
	CacheWords int

	// DatasetItems is the number of 64-byte (16-word) DAG items to
	// generate. Must be at least 256 so the first-16-KiB hot-cache region
	// of the dataset is always well-defined.
	DatasetItems int
}

// DefaultConfig returns a Config sized for fast unit tests: a 4096-word
// (16 KiB) light cache expanded into 4096 64-byte items (256 KiB dataset),
// comfortably above kawpow.minDAGSize's 16 KiB floor.
func DefaultConfig() Config {
	return Config{CacheWords: 4096, DatasetItems: 4096}
}

// cacheRounds is the number of whole-cache randomization passes applied
// after the initial fill.
const cacheRounds = 3

// epochCacheLimit bounds how many epochs' light caches this package keeps
// resident at once; older epochs are evicted least-recently-used.
const epochCacheLimit = 4

var epochCaches = lru.NewMap[uint64, []uint32](epochCacheLimit)

// lightCache returns the generated light cache for epoch, building and
// caching it on first use.
func lightCache(epoch uint64, cfg Config) []uint32 {
	if cache, ok := epochCaches.Get(epoch); ok && len(cache) == cfg.CacheWords {
		return cache
	}
	seed := kawpow.SeedHash(epoch)
	cache := generateCache(seed, cfg.CacheWords)
	epochCaches.Put(epoch, cache)
	return cache
}

// generateCache expands seed into a words-length light cache: Keccak-512
// the running seed, take the digest 16 words at a time, then run a fixed
// number of whole-cache XOR-mixing rounds to spread influence.
func generateCache(seed chainhash.Hash, words int) []uint32 {
	cache := make([]uint32, words)
	running := seed
	for i := 0; i < words; i += 16 {
		digest := sha3.Sum512(running[:])
		running = chainhash.Hash(sha3.Sum256(digest[:]))
		for k := 0; k < 16 && i+k < words; k++ {
			cache[i+k] = binary.LittleEndian.Uint32(digest[k*4:])
		}
	}

	for round := 0; round < cacheRounds; round++ {
		for j := range cache {
			cache[j] ^= cache[(j+1)%len(cache)]
		}
	}
	return cache
}

// generateDataset expands cache into a numItems*16-word dataset: each
// item's 16 words start from a seed derived from the item index and are
// repeatedly folded against pseudo-randomly selected cache rows.
func generateDataset(cache []uint32, numItems int) []byte {
	cacheRows := len(cache) / 16
	out := make([]byte, numItems*kawpow.DAGItemBytes)

	for item := 0; item < numItems; item++ {
		var mix [16]uint32
		mix[0] = uint32(item)
		for j := 1; j < 16; j++ {
			mix[j] = cache[j%len(cache)] ^ mix[j-1]
		}

		const mixRounds = 256
		for round := 0; round < mixRounds; round++ {
			var next [16]uint32
			for k := 0; k < 16; k++ {
				row := (mix[k%16] % uint32(cacheRows)) * 16
				next[k] = cache[row+uint32(k)]
			}
			for k := 0; k < 16; k++ {
				mix[k] ^= next[k]
			}
		}

		off := item * kawpow.DAGItemBytes
		for k := 0; k < 16; k++ {
			binary.LittleEndian.PutUint32(out[off+k*4:], mix[k])
		}
	}
	return out
}

// Build returns a ready-to-use kawpow.DAG for the given epoch and size
// configuration, generating (and epoch-caching the light-cache half of) it
// on demand.
func Build(epoch uint64, cfg Config) (kawpow.DAG, error) {
	cache := lightCache(epoch, cfg)
	data := generateDataset(cache, cfg.DatasetItems)
	return kawpow.NewDAG(data)
}

// BuildDefault is Build with DefaultConfig, the shape used throughout this
// module's own tests and benchmarks.
func BuildDefault(epoch uint64) (kawpow.DAG, error) {
	return Build(epoch, DefaultConfig())
}
