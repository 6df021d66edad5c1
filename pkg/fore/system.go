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

// Package fore implements the keyed "frame of reference" encoding.  Bytes are
// lifted into GF(p²), sign-alternated by a Haar pass and multiplied by φᵏ for
// a key k, giving a "frequency domain" sequence.  Multiplying by φ⁻ᵏ aligns the
// sequence back with the scalar domain, from which the original text is
// recovered.
package fore

import (
	"math/bits"
	"slices"
	"strings"

	"github.com/consensys/go-fore/pkg/field/gfp2"
	"github.com/consensys/go-fore/pkg/transform"
)

// MaxASCII bounds the values recovered by Reconstruct.
const MaxASCII = 128

// System holds the key-derived elements φᵏ and φ⁻ᵏ.  These are fixed on
// construction, so a System can be shared freely between goroutines.
type System struct {
	phiK    gfp2.Element
	phiNegK gfp2.Element
}

// New derives a system from a 32-bit key.
func New(key uint32) *System {
	return &System{
		phiK:    gfp2.Exp(gfp2.Phi, uint64(key)),
		phiNegK: gfp2.ExpInverse(gfp2.Phi, uint64(key)),
	}
}

// PhiK returns φᵏ.
func (s *System) PhiK() gfp2.Element {
	return s.phiK
}

// PhiNegK returns φ⁻ᵏ.
func (s *System) PhiNegK() gfp2.Element {
	return s.phiNegK
}

// ToFrequencyDomain applies the Haar pass followed by multiplication by φᵏ,
// in place.  The multiplication must see the sign-flipped values, hence the
// order matters.
func (s *System) ToFrequencyDomain(seq []gfp2.Element) {
	transform.HaarPass(seq)
	transform.PhiPass(seq, s.phiK)
}

// ProcessData lifts each byte into the field and moves the resulting sequence
// into the frequency domain.  The given data is not modified.
func (s *System) ProcessData(data []byte) []gfp2.Element {
	seq := make([]gfp2.Element, len(data))
	//
	for i, b := range data {
		seq[i] = gfp2.FromScalar(uint64(b))
	}
	//
	s.ToFrequencyDomain(seq)
	//
	return seq
}

// EditFrequency overwrites a coefficient of a frequency domain sequence.  With
// span = 2^level and start = pos·span, the value v·φᵏ is written at start and
// its negation at start + span/2, such that the pair sums to zero.  Either write
// is skipped when out of bounds, hence an edit whose start lies beyond the
// sequence does nothing.  At level 0 both writes target the same index, leaving
// the negation in place.
func (s *System) EditFrequency(seq []gfp2.Element, level uint, pos uint, v gfp2.Element) {
	n := uint(len(seq))
	//
	if n == 0 || level >= bits.UintSize {
		return
	}
	//
	span := uint(1) << level
	// Check start = pos·span < n without overflowing.
	if pos > (n-1)>>level {
		return
	}
	//
	start := pos * span
	value := v.Mul(s.phiK)
	seq[start] = value
	//
	if pair := start + span/2; pair < n {
		seq[pair] = value.Neg()
	}
}

// VerifyRelationships checks the dyadic pairing structure of a sequence.  For
// every level ℓ with 2^ℓ no larger than the sequence, and every block start
// = pos·2^ℓ, the elements at start and start + 2^ℓ/2 must sum to zero.  Note
// that at level 0 the pair is the element itself, which therefore must be
// zero.  This returns false on the first violation found.
func (s *System) VerifyRelationships(seq []gfp2.Element) bool {
	n := len(seq)
	//
	for level := 0; level < bits.UintSize-1 && 1<<level <= n; level++ {
		span := 1 << level
		//
		for pos := range n / span {
			start := pos * span
			pair := start + span/2
			//
			if pair < n && !seq[start].Add(seq[pair]).IsZero() {
				return false
			}
		}
	}
	//
	return true
}

// Align returns a copy of the sequence multiplied by φ⁻ᵏ, i.e. brought back into
// the frame of reference of the scalar domain.  The given sequence is not
// modified.
func (s *System) Align(seq []gfp2.Element) []gfp2.Element {
	aligned := slices.Clone(seq)
	transform.PhiPass(aligned, s.phiNegK)
	//
	return aligned
}

// Reconstruct recovers text from a frequency domain sequence.  After alignment,
// every element with a zero x component yields a value, negated at odd indices
// to undo the Haar pass.  Values below 128 are emitted as ASCII, anything else
// is silently dropped.  Hence, the result is never longer than the sequence,
// and is lossy for data which is not plain ASCII.
func (s *System) Reconstruct(seq []gfp2.Element) string {
	var builder strings.Builder
	//
	builder.Grow(len(seq))
	//
	for i, v := range s.Align(seq) {
		if !v.IsReal() {
			continue
		}
		//
		if i%2 == 1 {
			v = v.Neg()
		}
		//
		if v.A < MaxASCII {
			builder.WriteByte(byte(v.A))
		}
	}
	// Done
	return builder.String()
}
