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

// Package limits provides the representable range of fixed-width integer types.
//
// Unlike the constants of the math package, the functions work
// for any integer type, including named types and int, uint, and uintptr,
// whose width depends on the platform.
package limits

import (
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Integer is the set of fixed-width integer types supported by the library.
type Integer interface {
	constraints.Integer
}

// IsSigned returns true if T is a signed integer type.
func IsSigned[T Integer]() bool {
	var zero T
	return ^zero < zero
}

// BitSize returns the width of T in bits.
func BitSize[T Integer]() int {
	var zero T
	return int(unsafe.Sizeof(zero)) * 8
}

// Min returns the smallest value representable by T.
func Min[T Integer]() T {
	if !IsSigned[T]() {
		return 0
	}
	// only the sign bit set
	return T(1) << (BitSize[T]() - 1)
}

// Max returns the largest value representable by T.
func Max[T Integer]() T {
	return ^Min[T]()
}
