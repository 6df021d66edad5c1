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

// Package codec converts sequences of GF(p²) elements to and from bytes.  Each
// element occupies eight bytes: its A component followed by its B component,
// both as little-endian uint32 words.
package codec

import (
	"encoding/binary"
	"encoding/hex"
	"strings"

	"github.com/consensys/go-fore/pkg/field/gfp2"
	"github.com/pkg/errors"
)

// ElementSize is the number of bytes used to encode one element.
const ElementSize = 8

// Marshal encodes a sequence of elements.
func Marshal(seq []gfp2.Element) []byte {
	return Append(make([]byte, 0, len(seq)*ElementSize), seq)
}

// Append encodes a sequence of elements onto the end of dst.
func Append(dst []byte, seq []gfp2.Element) []byte {
	for _, e := range seq {
		dst = binary.LittleEndian.AppendUint32(dst, e.A)
		dst = binary.LittleEndian.AppendUint32(dst, e.B)
	}
	//
	return dst
}

// Unmarshal decodes a sequence of elements.  This fails if the data is not a
// whole number of elements, or if any component is not below the modulus.
func Unmarshal(data []byte) ([]gfp2.Element, error) {
	if len(data)%ElementSize != 0 {
		return nil, errors.Errorf("encoding length %d is not a multiple of %d", len(data), ElementSize)
	}
	//
	seq := make([]gfp2.Element, len(data)/ElementSize)
	//
	for i := range seq {
		var (
			offset = i * ElementSize
			a      = binary.LittleEndian.Uint32(data[offset:])
			b      = binary.LittleEndian.Uint32(data[offset+4:])
		)
		//
		if a >= gfp2.Modulus || b >= gfp2.Modulus {
			return nil, errors.Errorf("element %d at offset %d is not canonical: (%d, %d)", i, offset, a, b)
		}
		//
		seq[i] = gfp2.Element{A: a, B: b}
	}
	// Done
	return seq, nil
}

// MarshalHex encodes a sequence of elements as a hexadecimal string.
func MarshalHex(seq []gfp2.Element) string {
	return hex.EncodeToString(Marshal(seq))
}

// UnmarshalHex decodes a sequence of elements from a hexadecimal string, ignoring
// surrounding whitespace.
func UnmarshalHex(text string) ([]gfp2.Element, error) {
	data, err := hex.DecodeString(strings.TrimSpace(text))
	if err != nil {
		return nil, errors.Wrap(err, "malformed hex encoding")
	}
	//
	return Unmarshal(data)
}
