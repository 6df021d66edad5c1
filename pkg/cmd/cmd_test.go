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

package cmd

import (
	"testing"

	"github.com/consensys/go-fore/pkg/fore"
	"github.com/consensys/go-fore/pkg/util/assert"
)

func TestParseKey(t *testing.T) {
	for text, expected := range map[string]uint32{
		"0":          0,
		"42":         42,
		"0xDEADBEEF": 0xDEADBEEF,
		" 0x10 ":     16,
		"4294967295": 1<<32 - 1,
	} {
		key, err := parseKey(text)
		assert.True(t, err == nil, "%v", err)
		assert.Equal(t, expected, key, "key %q", text)
	}
	//
	for _, text := range []string{"", "-1", "4294967296", "0xZZ", "key"} {
		_, err := parseKey(text)
		assert.True(t, err != nil, "key %q accepted", text)
	}
}

func TestEditInBounds(t *testing.T) {
	assert.False(t, editInBounds(0, 0, 0))
	assert.True(t, editInBounds(1, 0, 0))
	assert.True(t, editInBounds(12, 1, 5))
	assert.False(t, editInBounds(12, 1, 6))
	assert.True(t, editInBounds(12, 3, 1))
	assert.False(t, editInBounds(12, 4, 1))
	assert.False(t, editInBounds(12, 63, 0))
}

func TestBenchSizes(t *testing.T) {
	assert.Equal(t, []uint{64 * 1024, 128 * 1024, 256 * 1024, 512 * 1024, 1024 * 1024}, benchSizes(1024))
	assert.Equal(t, []uint{1024, 2048}, benchSizes(2))
	assert.Equal(t, []uint{1024}, benchSizes(0))
}

func TestRunBenchmarks(t *testing.T) {
	results := runBenchmarks(fore.New(1), []uint{1024, 2048}, 2)
	//
	assert.Equal(t, 2, len(results))
	assert.Equal(t, uint(2048), results[1].size)
	//
	for _, r := range results {
		assert.True(t, r.encode >= 0 && r.decode >= 0)
	}
}
