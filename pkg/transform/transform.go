// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

// Package transform provides the two element-wise passes used to move a
// sequence of GF(p²) elements into (and out of) the frequency domain.  Both
// passes split the sequence into chunks processed by a bounded pool of
// goroutines.  Each output element depends only on its own input value and
// global index, so the result is independent of scheduling.
package transform

import (
	"github.com/consensys/go-fore/pkg/field/gfp2"
	"golang.org/x/sync/errgroup"
)

// HaarPass negates every element at an odd index, leaving elements at even
// indices untouched.  Parity is always that of the global index, regardless
// of chunk boundaries.  Applying the pass twice restores the original sequence.
func HaarPass(seq []gfp2.Element) {
	haarPass(seq, ChunkSize())
}

// PhiPass multiplies every element by the given factor.  This returns false
// when the sequence is empty, signalling there was nothing to do.
func PhiPass(seq []gfp2.Element, factor gfp2.Element) bool {
	return phiPass(seq, factor, ChunkSize())
}

func haarPass(seq []gfp2.Element, chunkSize int) {
	parallelFor(seq, chunkSize, func(offset int, chunk []gfp2.Element) {
		// Position of the first odd global index within this chunk.
		for i := (offset + 1) & 1; i < len(chunk); i += 2 {
			chunk[i] = chunk[i].Neg()
		}
	})
}

func phiPass(seq []gfp2.Element, factor gfp2.Element, chunkSize int) bool {
	if len(seq) == 0 {
		return false
	}
	//
	parallelFor(seq, chunkSize, func(_ int, chunk []gfp2.Element) {
		for i := range chunk {
			chunk[i] = chunk[i].Mul(factor)
		}
	})
	//
	return true
}

// parallelFor splits the sequence into contiguous chunks and applies fn to each
// on a pool limited to the number of logical cores.  The offset passed to fn is
// the global index of the chunk's first element.  This blocks until every
// chunk has been processed.
func parallelFor(seq []gfp2.Element, chunkSize int, fn func(offset int, chunk []gfp2.Element)) {
	chunkSize = max(chunkSize, 1)
	// Not worth spinning up any goroutines
	if len(seq) <= chunkSize {
		fn(0, seq)
		return
	}
	//
	var g errgroup.Group
	//
	g.SetLimit(Detect().Cores)
	//
	for offset := 0; offset < len(seq); offset += chunkSize {
		chunk := seq[offset:min(offset+chunkSize, len(seq))]
		//
		g.Go(func() error {
			fn(offset, chunk)
			return nil
		})
	}
	// Chunk functions never fail.
	_ = g.Wait()
}
