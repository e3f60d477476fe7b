// Copyright (c) 2025 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package kawpow

import "encoding/binary"

// keccakRounds is the round count for Keccak-f[800]: 12 + 2*log2(32) = 22.
const keccakRounds = 22

// keccakRoundConstants are the 22 iota round constants for Keccak-f[800],
// truncated to the 32-bit lane width.
var keccakRoundConstants = [keccakRounds]uint32{
	0x00000001, 0x00000082, 0x0000808a, 0x00008000,
	0x0000808b, 0x80000001, 0x80008081, 0x80008009,
	0x0000008a, 0x00000088, 0x80008009, 0x80000008,
	0x80008002, 0x80008003, 0x80008002, 0x80000080,
	0x0000800a, 0x8000000a, 0x80008081, 0x80008080,
	0x80000001, 0x80008008,
}

// keccakRotationOffsets and keccakLanePermutation implement the standard
// rho/pi step shared by every Keccak-f[b] variant; only the round count and
// round constants vary with the lane width. Offsets are reduced modulo the
// 32-bit lane width.
var keccakRotationOffsets = [24]uint32{
	1, 3, 6, 10, 15, 21, 28, 36, 45, 55, 2, 14,
	27, 41, 56, 8, 25, 43, 62, 18, 39, 61, 20, 44,
}

var keccakLanePermutation = [24]int{
	10, 7, 11, 17, 18, 3, 5, 16, 8, 21, 24, 4,
	15, 23, 19, 13, 12, 2, 20, 14, 22, 9, 6, 1,
}

// keccakF800 applies the 22-round Keccak-f[800] permutation in place to a
// 25-word (5x5, 32-bit lane, row-major y*5+x) state.
func keccakF800(st *[25]uint32) {
	for round := 0; round < keccakRounds; round++ {
		// Theta
		var c [5]uint32
		for x := 0; x < 5; x++ {
			c[x] = st[x] ^ st[x+5] ^ st[x+10] ^ st[x+15] ^ st[x+20]
		}
		var d [5]uint32
		for x := 0; x < 5; x++ {
			d[x] = c[(x+4)%5] ^ rotl32(c[(x+1)%5], 1)
		}
		for y := 0; y < 25; y += 5 {
			for x := 0; x < 5; x++ {
				st[y+x] ^= d[x]
			}
		}

		// Rho and Pi, combined in the usual lane-chasing form.
		t := st[1]
		for i := 0; i < 24; i++ {
			j := keccakLanePermutation[i]
			st[j], t = rotl32(t, keccakRotationOffsets[i]), st[j]
		}

		// Chi
		for y := 0; y < 25; y += 5 {
			var row [5]uint32
			copy(row[:], st[y:y+5])
			for x := 0; x < 5; x++ {
				st[y+x] = row[x] ^ (^row[(x+1)%5] & row[(x+2)%5])
			}
		}

		// Iota
		st[0] ^= keccakRoundConstants[round]
	}
}

// headerWords interprets a 32-byte header as 8 little-endian 32-bit words.
func headerWords(header [32]byte) [8]uint32 {
	var w [8]uint32
	for i := range w {
		w[i] = binary.LittleEndian.Uint32(header[i*4:])
	}
	return w
}

// seedKeccak computes the seed-producing Keccak-f[800] invocation: the state
// is packed as header words (0..8), nonce low/high (8, 9), zero pad
// (10..25), then permuted. It returns both the 64-bit seed (state[0]<<32 |
// state[1]) and the full post-permutation state, the latter of which feeds
// the second bank of the final-digest invocation.
func seedKeccak(header [32]byte, nonce uint64) (seed uint64, state [25]uint32) {
	hw := headerWords(header)
	copy(state[0:8], hw[:])
	state[8] = uint32(nonce)
	state[9] = uint32(nonce >> 32)
	keccakF800(&state)
	seed = uint64(state[0])<<32 | uint64(state[1])
	return seed, state
}

// finalKeccak computes the digest-producing Keccak-f[800] invocation: the
// state is packed as the 8-word reduced mix (0..8), the first 8 words of the
// seed-Keccak's post-permutation state (8..16), zero pad (16..25), then
// permuted. The digest is the post-permutation state's first 8 words,
// interpreted little-endian as a 256-bit integer.
func finalKeccak(finalMix [8]uint32, seedState [25]uint32) (digest [8]uint32) {
	var state [25]uint32
	copy(state[0:8], finalMix[:])
	copy(state[8:16], seedState[0:8])
	keccakF800(&state)
	copy(digest[:], state[0:8])
	return digest
}
