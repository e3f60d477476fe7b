// Copyright (c) 2025 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package search

import (
	"context"
	"encoding/binary"
	"encoding/hex"
	"strings"
	"testing"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/decred/dcrd/internal/kawpow"
)

// testDAG builds a deterministic synthetic DAG of the given size: word i is
// i*FNV_PRIME, little-endian, matching the parent package's test fixture so
// the launch-level vectors in this file agree with the ones pinned at the
// hash level.
func testDAG(t *testing.T, size int) kawpow.DAG {
	t.Helper()
	const fnvPrime = 0x01000193
	buf := make([]byte, size)
	for i := 0; i < size/4; i++ {
		binary.LittleEndian.PutUint32(buf[i*4:], uint32(i)*fnvPrime)
	}
	dag, err := kawpow.NewDAG(buf)
	if err != nil {
		t.Fatalf("testDAG: %v", err)
	}
	return dag
}

func mustTarget(t *testing.T, hexBytes string) kawpow.Target {
	t.Helper()
	raw, err := hex.DecodeString(hexBytes)
	if err != nil {
		t.Fatalf("decode target: %v", err)
	}
	target, err := kawpow.ParseTarget(raw)
	if err != nil {
		t.Fatalf("parse target: %v", err)
	}
	return target
}

// TestLaunchEasyTarget covers an easy target that exactly one nonce in a
// default-sized launch range validates against; the launch must report that
// nonce with its correctly computed digest.
func TestLaunchEasyTarget(t *testing.T) {
	dag := testDAG(t, 16384)

	// Target word 7 (most significant, little-endian word index) is
	// 0x00ffffff, words 0-6 are maximal. With the all-zero header and this
	// DAG, nonce 358 is the only nonce in [0, 384) whose digest word 7 is
	// at or below that threshold, verified by exhaustively evaluating the
	// range with an independent transliteration of the hash pipeline,
	// itself cross-checked against this package's pinned zero vectors
	// before trusting the scan.
	target := mustTarget(t, strings.Repeat("ff", 28)+"ffffff00")

	device := NewCPUDevice()
	args := KernelArgs{
		Header:     [32]byte{},
		DAG:        dag,
		Target:     target,
		StartNonce: 0,
	}
	res, err := device.Launch(context.Background(), args, DefaultConfig())
	if err != nil {
		t.Fatalf("Launch: %v", err)
	}
	if !res.Found {
		t.Fatal("expected a validating nonce, got Found == false")
	}
	if res.Nonce != 358 {
		t.Fatalf("nonce = %d, want 358", res.Nonce)
	}

	wantDigest, err := hex.DecodeString("52dad967d4283c5a05968fa951a7c989a2ae93121f24817b3fc5969f822dca00")
	if err != nil {
		t.Fatalf("decode want digest: %v", err)
	}
	if hex.EncodeToString(res.Hash[:]) != hex.EncodeToString(wantDigest) {
		t.Fatalf("digest = %x, want %x", res.Hash, wantDigest)
	}
	if !target.Validates(res.Hash) {
		t.Fatal("winning result does not actually validate against the target")
	}
}

// TestLaunchMaxTarget: with a target of all-1s every nonce validates, so a
// launch must report some nonce from its covered range, with the digest and
// mix actually belonging to that nonce. Which nonce wins the claim race is
// arbitration-dependent and deliberately not pinned.
func TestLaunchMaxTarget(t *testing.T) {
	dag := testDAG(t, 16384)
	target := mustTarget(t, strings.Repeat("ff", 32))

	device := NewCPUDevice()
	cfg := DefaultConfig()
	args := KernelArgs{
		Header:     [32]byte{},
		DAG:        dag,
		Target:     target,
		StartNonce: 1000,
	}
	res, err := device.Launch(context.Background(), args, cfg)
	if err != nil {
		t.Fatalf("Launch: %v", err)
	}
	if !res.Found {
		t.Fatal("no nonce reported even though every nonce validates")
	}
	if res.Nonce < 1000 || res.Nonce >= 1000+cfg.RangeSize() {
		t.Fatalf("winning nonce %d is outside the launched range", res.Nonce)
	}
	digest, mix := kawpow.Hash(args.Header, res.Nonce, dag)
	if digest != res.Hash || mix != res.Mix {
		t.Fatalf("reported digest/mix do not belong to reported nonce %d", res.Nonce)
	}
}

// TestLaunchImpossibleTarget: a target of all zero bytes cannot be
// validated by any non-zero digest, so a large launch must report
// Found == false with no error.
func TestLaunchImpossibleTarget(t *testing.T) {
	dag := testDAG(t, 16384)
	target := mustTarget(t, strings.Repeat("00", 32))

	device := NewCPUDevice()
	args := KernelArgs{
		Header:     [32]byte{},
		DAG:        dag,
		Target:     target,
		StartNonce: 0,
	}
	cfg := Config{BlockThreads: 256, Blocks: 4, NoncesPerThread: 977, WarpSize: 32}
	res, err := device.Launch(context.Background(), args, cfg)
	if err != nil {
		t.Fatalf("Launch: %v", err)
	}
	if res.Found {
		t.Fatalf("expected no hit against the zero target, got nonce %d", res.Nonce)
	}
}

// TestLaunchRangeSplitEquivalence: one launch covering a nonce range, and
// two launches covering the same range split in half, must agree on the set
// of validating nonces regardless of how the range was partitioned.
func TestLaunchRangeSplitEquivalence(t *testing.T) {
	dag := testDAG(t, 16384)

	// word7 <= 0x010c7469 (the minimum digest word 7 across the whole
	// range, found by exhaustively evaluating the hash pipeline over
	// every nonce in [5000, 6024) with the same independently-verified
	// transliteration used for TestLaunchEasyTarget) selects exactly one
	// nonce, 5978, with the all-zero header and this DAG. A single, known
	// hit makes the "same set" comparison deterministic even though
	// first-writer-wins arbitration does not otherwise guarantee which of
	// several simultaneous hits a launch reports.
	target := mustTarget(t, strings.Repeat("ff", 28)+"69740c01")

	combinedCfg := Config{BlockThreads: 1024, Blocks: 1, NoncesPerThread: 1, WarpSize: 32}
	combined := launchHitSet(t, dag, target, 5000, combinedCfg)

	halfCfg := Config{BlockThreads: 512, Blocks: 1, NoncesPerThread: 1, WarpSize: 32}
	firstHalf := launchHitSet(t, dag, target, 5000, halfCfg)
	secondHalf := launchHitSet(t, dag, target, 5512, halfCfg)

	split := firstHalf.Union(secondHalf)

	if !combined.Equal(split) {
		t.Fatalf("range split produced a different hit set: combined=%v split=%v",
			combined.ToSlice(), split.ToSlice())
	}
	want := mapset.NewSet[uint64](5978)
	if !combined.Equal(want) {
		t.Fatalf("combined hit set = %v, want %v", combined.ToSlice(), want.ToSlice())
	}
}

// launchHitSet runs a single launch over [start, start+cfg.RangeSize()) and
// returns a set containing the winning nonce, or an empty set if none
// validated.
func launchHitSet(t *testing.T, dag kawpow.DAG, target kawpow.Target, start uint64, cfg Config) mapset.Set[uint64] {
	t.Helper()
	device := NewCPUDevice()
	args := KernelArgs{
		Header:     [32]byte{},
		DAG:        dag,
		Target:     target,
		StartNonce: start,
	}
	res, err := device.Launch(context.Background(), args, cfg)
	if err != nil {
		t.Fatalf("Launch: %v", err)
	}
	if !res.Found {
		return mapset.NewSet[uint64]()
	}
	return mapset.NewSet[uint64](res.Nonce)
}
