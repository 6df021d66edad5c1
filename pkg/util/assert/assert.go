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

// Package assert provides the handful of test assertions used throughout the
// repository.
package assert

import (
	"fmt"
	"reflect"
	"testing"
)

// Equal fails the test immediately if actual is not equal to expected.  Integer
// values of differing types (e.g. uint32 against uint64) are compared by value.
func Equal(t *testing.T, expected, actual any, msg ...any) {
	t.Helper()
	//
	if reflect.DeepEqual(expected, actual) || sameInteger(expected, actual) {
		return
	}
	//
	t.Fatalf("expected: %v, actual: %v%s", expected, actual, context(msg))
}

// True fails the test immediately if the given condition does not hold.
func True(t *testing.T, cond bool, msg ...any) {
	t.Helper()
	//
	if !cond {
		t.Fatalf("condition does not hold%s", context(msg))
	}
}

// False fails the test immediately if the given condition holds.
func False(t *testing.T, cond bool, msg ...any) {
	t.Helper()
	//
	if cond {
		t.Fatalf("condition unexpectedly holds%s", context(msg))
	}
}

// Format optional trailing message arguments, where the first is a format
// string.
func context(msg []any) string {
	if len(msg) == 0 {
		return ""
	}
	//
	format, ok := msg[0].(string)
	if !ok {
		return " (" + fmt.Sprint(msg...) + ")"
	}
	//
	return " (" + fmt.Sprintf(format, msg[1:]...) + ")"
}

// sameInteger determines whether both values are integers with identical
// numerical values.
func sameInteger(expected, actual any) bool {
	a, aOk := toUint64(expected)
	b, bOk := toUint64(actual)
	//
	return aOk && bOk && a == b
}

// toUint64 converts any non-negative integer into a uint64.  Negative values
// are reported as not convertible, so they only ever match via DeepEqual.
func toUint64(x any) (uint64, bool) {
	var v int64
	//
	switch x := x.(type) {
	case uint:
		return uint64(x), true
	case uint8:
		return uint64(x), true
	case uint16:
		return uint64(x), true
	case uint32:
		return uint64(x), true
	case uint64:
		return x, true
	case int:
		v = int64(x)
	case int8:
		v = int64(x)
	case int16:
		v = int64(x)
	case int32:
		v = int64(x)
	case int64:
		v = x
	default:
		return 0, false
	}
	//
	if v < 0 {
		return 0, false
	}

	return uint64(v), true
}
