// Copyright (c) 2025 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package search

import (
	"fmt"

	"github.com/decred/dcrd/internal/kawpow"
)

// KernelArgs is the kernel entry point's argument schema: a 32-byte header,
// a read-only DAG, a 32-byte target, and the first nonce of the range this
// launch covers. The result_nonce/result_hash/result_mix output pointers a
// C-shaped kernel contract would take are replaced by the returned Result;
// the zero-value-means-unfound convention is preserved in Result.Found.
type KernelArgs struct {
	Header     [32]byte
	DAG        kawpow.DAG
	Target     kawpow.Target
	StartNonce uint64
}

// Validate applies the host-side launch-refusal preconditions that concern
// the argument schema itself. DAG size/shape is already enforced by
// kawpow.NewDAG at construction time, so only the parts KernelArgs can
// violate on its own are re-checked here.
func (a KernelArgs) Validate() error {
	if a.DAG.Size() == 0 {
		return fmt.Errorf("%w: dag must be non-empty and device-resident", ErrDeviceMemory)
	}
	return nil
}

// Result is the outcome of one kernel launch: either a validated nonce with
// its digest and mix (first writer wins when several nonces validate), or
// Found == false if no nonce in the covered range validated against the
// target, which is not an error condition.
type Result struct {
	Found bool
	Nonce uint64
	Hash  kawpow.Digest
	Mix   kawpow.Mix
}
