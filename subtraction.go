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

// MinPositive returns the smallest value that val can be at
// for subtracting it from a value of T to not fall below the minimum of T.
//
// Equivalently, a - val underflows iff a < MinPositive(val).
func MinPositive[T limits.Integer](val T) T {
	return limits.Min[T]() + val
}

// MaxNegative returns the largest value a value of T can be at
// for subtracting val from it to not exceed the maximum of T.
//
// Equivalently, a - val overflows iff a > MaxNegative(val).
func MaxNegative[T limits.Integer](val T) T {
	return limits.Max[T]() + val
}

// SubtractionSafe returns true if a - b neither overflows nor underflows T.
func SubtractionSafe[T limits.Integer](a, b T) bool {
	// INT32-C
	if b < 0 {
		return a <= limits.Max[T]()+b
	}
	return a >= limits.Min[T]()+b
}

// Sub returns a - b, or an OverflowError or UnderflowError
// if the result is not representable by T.
func Sub[T limits.Integer](a, b T) (T, error) {
	return Unbounded[T]().Sub(a, b)
}

// SaturatingSub returns a - b, clamped to the range of T.
func SaturatingSub[T limits.Integer](a, b T) T {
	return Unbounded[T]().SaturatingSub(a, b)
}

// CheckSubtraction checks that subtracting the operand from the variable with the given name and value
// results in a value representable by T.
func CheckSubtraction[T limits.Integer](name string, value T, operand Operand[T]) error {
	return Unbounded[T]().CheckSubtraction(name, value, operand)
}
