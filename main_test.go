/*
 * Rangecheck - Overflow-safe bounds for fixed-width integer arithmetic
 *
 * Copyright Flow Foundation
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *   http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package rangecheck

import (
	"math/big"
	"testing"

	"go.uber.org/goleak"

	"github.com/onflow/rangecheck/limits"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// bigValue returns v as a big.Int, the reference "wider type" for all integer types.
func bigValue[T limits.Integer](v T) *big.Int {
	if limits.IsSigned[T]() {
		return big.NewInt(int64(v))
	}
	return new(big.Int).SetUint64(uint64(v))
}

func bigInRange[T limits.Integer](v *big.Int, min, max T) bool {
	return v.Cmp(bigValue(min)) >= 0 &&
		v.Cmp(bigValue(max)) <= 0
}

func bigFits[T limits.Integer](v *big.Int) bool {
	return bigInRange(v, limits.Min[T](), limits.Max[T]())
}

func bigSum[T limits.Integer](a, b T) *big.Int {
	return new(big.Int).Add(bigValue(a), bigValue(b))
}

func bigDifference[T limits.Integer](a, b T) *big.Int {
	return new(big.Int).Sub(bigValue(a), bigValue(b))
}

// forAllInt8 calls f for every pair of int8 values.
func forAllInt8(f func(a, b int8)) {
	for a := int(limits.Min[int8]()); a <= int(limits.Max[int8]()); a++ {
		for b := int(limits.Min[int8]()); b <= int(limits.Max[int8]()); b++ {
			f(int8(a), int8(b))
		}
	}
}

// forAllUint8 calls f for every pair of uint8 values.
func forAllUint8(f func(a, b uint8)) {
	for a := 0; a <= int(limits.Max[uint8]()); a++ {
		for b := 0; b <= int(limits.Max[uint8]()); b++ {
			f(uint8(a), uint8(b))
		}
	}
}
