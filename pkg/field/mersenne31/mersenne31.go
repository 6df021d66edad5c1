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

// Package mersenne31 implements arithmetic in the prime field GF(p) for the
// Mersenne prime p = 2³¹-1.  Values are plain uint32 words in canonical form,
// i.e. in [0,p).  Every operation accepts arbitrary words though, reducing them
// first where necessary.
package mersenne31

// Modulus is the Mersenne prime 2³¹-1.
const Modulus uint32 = 1<<31 - 1

// Bits is the number of bits required to hold a canonical element.
const Bits = 31

const mask uint64 = 1<<Bits - 1

// Reduce a 64-bit word into [0,p).  Since 2³¹ ≡ 1 (mod p) the high part can be
// folded onto the low part.  Two folds bring any 64-bit value below 2³¹+5, after
// which one conditional subtraction suffices.
func Reduce(x uint64) uint32 {
	r := (x >> Bits) + (x & mask)
	r = (r >> Bits) + (r & mask)
	//
	res := uint32(r)
	if res >= Modulus {
		res -= Modulus
	}
	//
	return res
}

// Add x + y (mod p).
func Add(x, y uint32) uint32 {
	return Reduce(uint64(x) + uint64(y))
}

// Sub x - y (mod p).
func Sub(x, y uint32) uint32 {
	x, y = canonical(x), canonical(y)
	//
	d := x - y
	// Wrapped around, so add the modulus back in.
	if d > x {
		d += Modulus
	}

	return d
}

// Neg computes -x (mod p).
func Neg(x uint32) uint32 {
	return Sub(0, x)
}

// Mul x * y (mod p).  The product of two words never exceeds 64 bits, hence a
// single reduction is enough.
func Mul(x, y uint32) uint32 {
	return Reduce(uint64(x) * uint64(y))
}

// Pow computes base^exp (mod p) by square-and-multiply.  This is not hardened
// against timing and must only be used with public exponents.
func Pow(base uint32, exp uint64) uint32 {
	var (
		result = uint32(1)
		acc    = canonical(base)
	)
	//
	for ; exp != 0; exp >>= 1 {
		if exp&1 == 1 {
			result = Mul(result, acc)
		}
		//
		acc = Mul(acc, acc)
	}
	// Done
	return result
}

// canonical maps an arbitrary word into [0,p).
func canonical(x uint32) uint32 {
	return Reduce(uint64(x))
}
