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

// Package gfp2 implements the quadratic extension GF(p²) = GF(p)[x]/(x² - x - 1)
// over the Mersenne prime p = 2³¹-1.  An element (a,b) represents a + b·x.
package gfp2

import (
	"fmt"
	"math/bits"

	"github.com/consensys/go-fore/pkg/field/mersenne31"
)

// Element of GF(p²).  Both components are kept in canonical form, i.e. in
// [0,p), by every operation in this package.
type Element struct {
	A uint32
	B uint32
}

// Zero is the additive identity.
var Zero = Element{0, 0}

// One is the multiplicative identity.
var One = Element{1, 0}

// Phi is the generator x, used as the base of all keyed exponentiation.
var Phi = Element{PhiA, PhiB}

// New constructs an element from two (possibly unreduced) components.
func New(a, b uint64) Element {
	return Element{mersenne31.Reduce(a), mersenne31.Reduce(b)}
}

// FromScalar lifts a scalar into the base field embedded in GF(p²), i.e.
// (v mod p, 0).
func FromScalar(v uint64) Element {
	return Element{mersenne31.Reduce(v), 0}
}

// Add x + y.
func (x Element) Add(y Element) Element {
	return Element{mersenne31.Add(x.A, y.A), mersenne31.Add(x.B, y.B)}
}

// Sub x - y.
func (x Element) Sub(y Element) Element {
	return Element{mersenne31.Sub(x.A, y.A), mersenne31.Sub(x.B, y.B)}
}

// Neg computes -x, negating each component.
func (x Element) Neg() Element {
	return Element{mersenne31.Neg(x.A), mersenne31.Neg(x.B)}
}

// Mul x * y.  For x = a + bx and y = c + dx we have
//
//	(a + bx)(c + dx) = ac + (ad + bc)x + bd·x²
//	                 = (ac + bd) + (ad + bc + bd)x
//
// using x² = x + 1.
func (x Element) Mul(y Element) Element {
	var (
		ac   = mersenne31.Mul(x.A, y.A)
		bd   = mersenne31.Mul(x.B, y.B)
		adbc = mersenne31.Add(mersenne31.Mul(x.A, y.B), mersenne31.Mul(x.B, y.A))
	)
	//
	return Element{mersenne31.Add(ac, bd), mersenne31.Add(adbc, bd)}
}

// Square computes x * x.
func (x Element) Square() Element {
	return x.Mul(x)
}

// Equal checks whether two elements are identical.
func (x Element) Equal(y Element) bool {
	return x == y
}

// IsZero checks whether this is the additive identity.
func (x Element) IsZero() bool {
	return x.A == 0 && x.B == 0
}

// IsOne checks whether this is the multiplicative identity.
func (x Element) IsOne() bool {
	return x.A == 1 && x.B == 0
}

// IsReal checks whether this element lies in the base field, i.e. has no
// x component.
func (x Element) IsReal() bool {
	return x.B == 0
}

func (x Element) String() string {
	return fmt.Sprintf("(%d, %d)", x.A, x.B)
}

// Exp computes base^e by square-and-multiply, scanning e from its least
// significant bit.  The exponent is first reduced modulo GroupOrder and the loop
// runs exactly bits.Len64(e) times, hence an exponent of zero yields One
// immediately.
//
// On each step the product with the running square is always computed, and
// then blended into the accumulator through a bit mask rather than a branch.
// Note that the number of steps still leaks the bit length of the exponent.
func Exp(base Element, e uint64) Element {
	var (
		result  = One
		current = base
	)
	//
	e %= GroupOrder
	//
	for i := range bits.Len64(e) {
		// all ones when the bit is set, all zeros otherwise
		mask := -uint32((e >> i) & 1)
		tmp := result.Mul(current)
		//
		result = Element{
			(^mask & result.A) | (mask & tmp.A),
			(^mask & result.B) | (mask & tmp.B),
		}
		//
		current = current.Square()
	}
	// Done
	return result
}

// ExpInverse computes base^-e.  Since the order of any non-zero element divides
// GroupOrder, negating the exponent modulo GroupOrder yields the inverse power.
func ExpInverse(base Element, e uint64) Element {
	return Exp(base, NegateExponent(e))
}

// NegateExponent computes (GroupOrder - e) mod GroupOrder.
func NegateExponent(e uint64) uint64 {
	return (GroupOrder - e%GroupOrder) % GroupOrder
}

// Inverse computes x⁻¹ as x^(p²-2), or Zero if x is zero.
func (x Element) Inverse() Element {
	return Exp(x, GroupOrder-1)
}

// CheckIrreducible confirms that x² - x - 1 has no root in GF(p), and therefore
// that GF(p²) as constructed here is a field.  By Euler's criterion this holds
// iff the discriminant is a quadratic non-residue, i.e. 5^((p-1)/2) = -1.
func CheckIrreducible() bool {
	return mersenne31.Pow(Discriminant, EulerExponent) == Modulus-1
}
