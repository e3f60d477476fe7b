// Copyright (c) 2025 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package kawpow

import (
	"encoding/binary"
	"fmt"
)

// DAGItemBytes is the size in bytes of a single DAG item (16 32-bit words).
// Exported for the benefit of DAG-building collaborators (e.g.
// internal/testdag) that need to lay out raw bytes item-by-item without
// reaching into this package's internals.
const DAGItemBytes = 64

const dagItemBytes = DAGItemBytes

// cacheWords is the number of 32-bit words held in the hot-cache view of the
// first 16 KiB of the DAG (16384 / 4).
const cacheWords = 16384 / 4

// minDAGSize is the smallest legal DAG size: it must be at least large
// enough to populate the full hot-cache view.
const minDAGSize = 16384

// DAG is a read-only, byte-addressed view over the externally owned
// memory-bound mixing table. Production DAG generation and caching across
// epochs belongs to the caller; DAG only validates and indexes bytes the
// caller already produced.
type DAG struct {
	bytes []byte
}

// NewDAG wraps raw bytes as a DAG, validating its size: it must be a
// multiple of 64 and at least large enough to back the hot-cache preload.
func NewDAG(data []byte) (DAG, error) {
	if len(data) == 0 || len(data)%dagItemBytes != 0 {
		log.Warnf("rejecting dag: size %d is not a positive multiple of %d", len(data), dagItemBytes)
		return DAG{}, fmt.Errorf("%w: dag size %d is not a positive multiple of %d",
			ErrInvalidArgument, len(data), dagItemBytes)
	}
	if len(data) < minDAGSize {
		log.Warnf("rejecting dag: size %d is smaller than the minimum %d", len(data), minDAGSize)
		return DAG{}, fmt.Errorf("%w: dag size %d is smaller than the minimum %d",
			ErrInvalidArgument, len(data), minDAGSize)
	}
	return DAG{bytes: data}, nil
}

// Size returns the DAG's size in bytes.
func (d DAG) Size() int { return len(d.bytes) }

// NumItems returns the number of 64-byte items the DAG holds.
func (d DAG) NumItems() uint32 { return uint32(len(d.bytes) / dagItemBytes) }

// Item returns the 16 little-endian 32-bit words of the item at idx. idx
// wraps modulo NumItems.
func (d DAG) Item(idx uint32) [16]uint32 {
	idx %= d.NumItems()
	off := int(idx) * dagItemBytes
	var item [16]uint32
	for i := range item {
		item[i] = binary.LittleEndian.Uint32(d.bytes[off+i*4:])
	}
	return item
}

// CacheWord returns word idx (idx reduced modulo cacheWords) from the first
// 16 KiB of the DAG, the same bytes a block-local shared-memory hot cache
// would hold on a real device.
func (d DAG) CacheWord(idx uint32) uint32 {
	idx %= cacheWords
	return binary.LittleEndian.Uint32(d.bytes[idx*4:])
}

// Bytes exposes the underlying storage, e.g. for cooperative shared-memory
// preload emulation in the search package.
func (d DAG) Bytes() []byte { return d.bytes }
