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

package codec

import (
	"strings"
	"testing"

	"github.com/consensys/go-fore/pkg/field/gfp2"
	"github.com/consensys/go-fore/pkg/fore"
	"github.com/consensys/go-fore/pkg/util/assert"
)

func TestMarshal_Layout(t *testing.T) {
	data := Marshal([]gfp2.Element{{A: 1, B: 0x01020304}})
	//
	assert.Equal(t, []byte{1, 0, 0, 0, 4, 3, 2, 1}, data)
	assert.Equal(t, 0, len(Marshal(nil)))
}

func TestUnmarshal_Frame(t *testing.T) {
	sys := fore.New(0xDEADBEEF)
	seq := sys.ProcessData([]byte("Test message"))
	//
	data := Marshal(seq)
	assert.Equal(t, len(seq)*ElementSize, len(data))
	//
	decoded, err := Unmarshal(data)
	assert.True(t, err == nil, "%v", err)
	assert.Equal(t, seq, decoded)
	assert.Equal(t, "Test message", sys.Reconstruct(decoded))
}

func TestUnmarshal_BadLength(t *testing.T) {
	_, err := Unmarshal(make([]byte, 9))
	//
	assert.True(t, err != nil)
	assert.True(t, strings.Contains(err.Error(), "multiple of 8"), err.Error())
}

func TestUnmarshal_NotCanonical(t *testing.T) {
	data := Marshal([]gfp2.Element{gfp2.One, {A: gfp2.Modulus, B: 0}})
	//
	_, err := Unmarshal(data)
	assert.True(t, err != nil)
	assert.True(t, strings.Contains(err.Error(), "element 1"), err.Error())
	// Also in the second component
	data = Marshal([]gfp2.Element{{A: 0, B: 0xFFFFFFFF}})
	_, err = Unmarshal(data)
	assert.True(t, err != nil)
}

func TestHex(t *testing.T) {
	seq := fore.New(7).ProcessData([]byte("hex"))
	//
	decoded, err := UnmarshalHex("  " + MarshalHex(seq) + "\n")
	assert.True(t, err == nil, "%v", err)
	assert.Equal(t, seq, decoded)
	//
	_, err = UnmarshalHex("zz")
	assert.True(t, err != nil)
	assert.True(t, strings.Contains(err.Error(), "malformed hex"), err.Error())
}
