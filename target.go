// Copyright (c) 2025 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package kawpow

import (
	"encoding/binary"
	"fmt"

	"github.com/decred/dcrd/math/uint256"
)

// Target is the 256-bit upper bound a valid digest must not exceed, stored
// the same way a Digest is: 8 little-endian 32-bit words, compared
// MSB-first (word index 7 carries the most significant bits).
type Target [32]byte

// ParseTarget validates that targetBytes is exactly 32 bytes and returns it
// as a Target.
func ParseTarget(targetBytes []byte) (Target, error) {
	if len(targetBytes) != 32 {
		return Target{}, fmt.Errorf("%w: target must be exactly 32 bytes, got %d",
			ErrInvalidArgument, len(targetBytes))
	}
	var t Target
	copy(t[:], targetBytes)
	return t, nil
}

// toBigEndian256 reorders a word-little-endian, word-7-is-MSB 32-byte value
// into the big-endian byte order github.com/decred/dcrd/math/uint256 (and
// every other big-number package) expects.
func toBigEndian256(v [32]byte) [32]byte {
	var be [32]byte
	for wordIdx := 0; wordIdx < 8; wordIdx++ {
		word := binary.LittleEndian.Uint32(v[wordIdx*4:])
		binary.BigEndian.PutUint32(be[(7-wordIdx)*4:], word)
	}
	return be
}

// asUint256 converts to the fixed-precision 256-bit integer type used for
// the actual comparison.
func asUint256(v [32]byte) *uint256.Uint256 {
	be := toBigEndian256(v)
	var n uint256.Uint256
	n.SetByteSlice(be[:])
	return &n
}

// Validates reports whether digest is a valid proof against this target:
// the digest must be lexicographically, MSB-first, less than or equal to
// the target.
func (t Target) Validates(digest Digest) bool {
	d := asUint256([32]byte(digest))
	target := asUint256([32]byte(t))
	return !d.Gt(target)
}

// Less reports whether t is a strictly tighter (smaller) target than o:
// anything that validates against a tighter target also validates against
// any looser one, but not necessarily vice versa.
func (t Target) Less(o Target) bool {
	return asUint256([32]byte(t)).Lt(asUint256([32]byte(o)))
}
