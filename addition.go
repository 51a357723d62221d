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
	"github.com/onflow/rangecheck/limits"
)

// MaxPositive returns the largest value that can be added to val
// without exceeding the maximum of T.
func MaxPositive[T limits.Integer](val T) T {
	return limits.Max[T]() - val
}

// MinNegative returns the smallest (most negative) value that can be added to val
// without falling below the minimum of T.
func MinNegative[T limits.Integer](val T) T {
	return limits.Min[T]() - val
}

// AdditionSafe returns true if a + b neither overflows nor underflows T.
func AdditionSafe[T limits.Integer](a, b T) bool {
	// INT32-C
	if b < 0 {
		return a >= limits.Min[T]()-b
	}
	return a <= limits.Max[T]()-b
}

// Add returns a + b, or an OverflowError or UnderflowError
// if the result is not representable by T.
func Add[T limits.Integer](a, b T) (T, error) {
	return Unbounded[T]().Add(a, b)
}

// SaturatingAdd returns a + b, clamped to the range of T.
func SaturatingAdd[T limits.Integer](a, b T) T {
	return Unbounded[T]().SaturatingAdd(a, b)
}

// CheckAddition checks that adding the operand to the variable with the given name and value
// results in a value representable by T.
func CheckAddition[T limits.Integer](name string, value T, operand Operand[T]) error {
	return Unbounded[T]().CheckAddition(name, value, operand)
}
