// Copyright (c) 2025 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package kawpow

import "testing"

func TestFnv1a(t *testing.T) {
	tests := []struct {
		name string
		h, d uint32
		want uint32
	}{
		{"offset basis with zero", fnvOffsetBasis, 0, 0x050c5d1f},
		{"zero with zero", 0, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := fnv1a(tt.h, tt.d); got != tt.want {
				t.Errorf("fnv1a(%#x, %#x) = %#x, want %#x", tt.h, tt.d, got, tt.want)
			}
		})
	}
}

func TestRotl32(t *testing.T) {
	if got := rotl32(1, 1); got != 2 {
		t.Errorf("rotl32(1,1) = %#x, want 0x2", got)
	}
	// Rotation amount must wrap modulo 32.
	if got, want := rotl32(1, 33), rotl32(1, 1); got != want {
		t.Errorf("rotl32(1,33) = %#x, want %#x (amount mod 32)", got, want)
	}
}

func TestRotr32(t *testing.T) {
	if got := rotr32(2, 1); got != 1 {
		t.Errorf("rotr32(2,1) = %#x, want 0x1", got)
	}
}

func TestClz32(t *testing.T) {
	tests := []struct {
		x    uint32
		want uint32
	}{
		{0, 32},
		{1, 31},
		{0x80000000, 0},
		{0xffffffff, 0},
	}
	for _, tt := range tests {
		if got := clz32(tt.x); got != tt.want {
			t.Errorf("clz32(%#x) = %d, want %d", tt.x, got, tt.want)
		}
	}
}

func TestPopcount32(t *testing.T) {
	tests := []struct {
		x    uint32
		want uint32
	}{
		{0, 0},
		{0xff, 8},
		{0xffffffff, 32},
		{1, 1},
	}
	for _, tt := range tests {
		if got := popcount32(tt.x); got != tt.want {
			t.Errorf("popcount32(%#x) = %d, want %d", tt.x, got, tt.want)
		}
	}
}

func TestUmulhi(t *testing.T) {
	if got, want := umulhi(0x80000000, 4), uint32(2); got != want {
		t.Errorf("umulhi(0x80000000, 4) = %#x, want %#x", got, want)
	}
	if got, want := umulhi(0, 0xffffffff), uint32(0); got != want {
		t.Errorf("umulhi(0, max) = %#x, want %#x", got, want)
	}
}
