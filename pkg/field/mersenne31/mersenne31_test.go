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

package mersenne31

import (
	"math"
	"math/big"
	"math/rand/v2"
	"testing"

	"github.com/consensys/go-fore/pkg/util/assert"
)

var bigModulus = new(big.Int).SetUint64(uint64(Modulus))

func TestReduce_Edges(t *testing.T) {
	inputs := []uint64{
		0, 1, uint64(Modulus) - 1, uint64(Modulus), uint64(Modulus) + 1,
		1 << 31, 1 << 32, 1<<62 - 1, uint64(Modulus) * uint64(Modulus),
		math.MaxUint64 - 1, math.MaxUint64,
	}
	//
	for _, x := range inputs {
		checkReduce(t, x)
	}
}

func TestReduce_Random(t *testing.T) {
	for range 100000 {
		checkReduce(t, rand.Uint64())
	}
}

func TestReduce_Products(t *testing.T) {
	for range 100000 {
		a := uint64(rand.Uint32N(Modulus))
		b := uint64(rand.Uint32N(Modulus))
		checkReduce(t, a*b)
	}
}

func TestAdd_Random(t *testing.T) {
	var i, j big.Int
	//
	for range 10000 {
		a, b := rand.Uint32(), rand.Uint32()
		i.SetUint64(uint64(a)).Add(&i, j.SetUint64(uint64(b))).Mod(&i, bigModulus)
		assert.Equal(t, i.Uint64(), Add(a, b), "%d + %d", a, b)
	}
}

func TestSub_Random(t *testing.T) {
	var i, j big.Int
	//
	for range 10000 {
		a, b := rand.Uint32(), rand.Uint32()
		i.SetUint64(uint64(a)).Sub(&i, j.SetUint64(uint64(b))).Mod(&i, bigModulus)
		assert.Equal(t, i.Uint64(), Sub(a, b), "%d - %d", a, b)
	}
}

func TestSub_Underflow(t *testing.T) {
	assert.Equal(t, Modulus-1, Sub(0, 1))
	assert.Equal(t, uint32(0), Sub(Modulus, 0))
	assert.Equal(t, uint32(0), Neg(0))
	assert.Equal(t, uint32(1), Neg(Modulus-1))
}

func TestMul_Random(t *testing.T) {
	var i, j big.Int
	//
	for range 10000 {
		a, b := rand.Uint32(), rand.Uint32()
		i.SetUint64(uint64(a)).Mul(&i, j.SetUint64(uint64(b))).Mod(&i, bigModulus)
		assert.Equal(t, i.Uint64(), Mul(a, b), "%d * %d", a, b)
	}
}

func TestPow_Random(t *testing.T) {
	var i, e big.Int
	//
	for range 1000 {
		base, exp := rand.Uint32N(Modulus), rand.Uint64()
		i.SetUint64(uint64(base)).Exp(&i, e.SetUint64(exp), bigModulus)
		assert.Equal(t, i.Uint64(), Pow(base, exp), "%d^%d", base, exp)
	}
}

func TestPow_Fermat(t *testing.T) {
	for range 100 {
		base := 1 + rand.Uint32N(Modulus-1)
		assert.Equal(t, uint32(1), Pow(base, uint64(Modulus-1)), "%d^(p-1)", base)
	}
}

func checkReduce(t *testing.T, x uint64) {
	var i big.Int
	//
	r := Reduce(x)
	if r >= Modulus {
		t.Fatalf("reduce(%d) = %d not below modulus", x, r)
	}
	//
	i.SetUint64(x).Mod(&i, bigModulus)
	assert.Equal(t, i.Uint64(), r, "reduce(%d)", x)
}

func BenchmarkMul(b *testing.B) {
	x, y := rand.Uint32N(Modulus), rand.Uint32N(Modulus)
	//
	for range b.N {
		x = Mul(x, y)
	}
}
