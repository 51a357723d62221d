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
	"fmt"

	"github.com/onflow/rangecheck/errors"
	"github.com/onflow/rangecheck/limits"
)

// BoundsKind is the bound policy of Bounds,
// i.e. which of the limits of the integer type are replaced by custom limits.
type BoundsKind uint8

const (
	BoundsKindUnbounded BoundsKind = iota
	BoundsKindUpperBounded
	BoundsKindLowerBounded
	BoundsKindCustomBounded
)

func (k BoundsKind) String() string {
	switch k {
	case BoundsKindUnbounded:
		return "unbounded"
	case BoundsKindUpperBounded:
		return "upper-bounded"
	case BoundsKindLowerBounded:
		return "lower-bounded"
	case BoundsKindCustomBounded:
		return "custom-bounded"
	}

	panic(errors.NewUnreachableError())
}

// Bounds is the effective range [Min, Max] used for overflow calculations.
//
// Bounds are immutable values: construct them once, e.g. as a package-level variable,
// with Unbounded, UpperBounded, LowerBounded, or CustomBounded.
type Bounds[T limits.Integer] struct {
	Kind BoundsKind
	Min  T
	Max  T
}

// Unbounded returns the bounds of the representable range of T.
func Unbounded[T limits.Integer]() Bounds[T] {
	return Bounds[T]{
		Kind: BoundsKindUnbounded,
		Min:  limits.Min[T](),
		Max:  limits.Max[T](),
	}
}

// UpperBounded returns bounds with the custom maximum max
// and the minimum of T.
func UpperBounded[T limits.Integer](max T) Bounds[T] {
	return Bounds[T]{
		Kind: BoundsKindUpperBounded,
		Min:  limits.Min[T](),
		Max:  max,
	}
}

// LowerBounded returns bounds with the custom minimum min
// and the maximum of T.
func LowerBounded[T limits.Integer](min T) Bounds[T] {
	return Bounds[T]{
		Kind: BoundsKindLowerBounded,
		Min:  min,
		Max:  limits.Max[T](),
	}
}

// CustomBounded returns bounds with the custom minimum min and the custom maximum max.
//
// min must not be greater than max, otherwise CustomBounded panics with an InvalidBoundsError.
// Use NewCustomBounded if the bounds are not known to be valid.
func CustomBounded[T limits.Integer](min, max T) Bounds[T] {
	bounds, err := NewCustomBounded(min, max)
	if err != nil {
		panic(err)
	}
	return bounds
}

// NewCustomBounded returns bounds with the custom minimum min and the custom maximum max,
// or an InvalidBoundsError if min is greater than max.
func NewCustomBounded[T limits.Integer](min, max T) (Bounds[T], error) {
	if min > max {
		return Bounds[T]{}, InvalidBoundsError[T]{
			Min: min,
			Max: max,
		}
	}
	return Bounds[T]{
		Kind: BoundsKindCustomBounded,
		Min:  min,
		Max:  max,
	}, nil
}

func (b Bounds[T]) String() string {
	return fmt.Sprintf("%s range [%d, %d]", b.Kind, b.Min, b.Max)
}

// Contains returns true if v is in [Min, Max].
func (b Bounds[T]) Contains(v T) bool {
	return v >= b.Min && v <= b.Max
}

// MaxPositive returns the largest value that can be added to val
// without exceeding Max.
func (b Bounds[T]) MaxPositive(val T) T {
	return b.Max - val
}

// MinNegative returns the smallest (most negative) value that can be added to val
// without falling below Min.
func (b Bounds[T]) MinNegative(val T) T {
	return b.Min - val
}

// MinPositive returns the smallest value from which val can be subtracted
// without falling below Min.
func (b Bounds[T]) MinPositive(val T) T {
	return b.Min + val
}

// MaxNegative returns the largest value from which val can be subtracted
// without exceeding Max.
func (b Bounds[T]) MaxNegative(val T) T {
	return b.Max + val
}

// AdditionSafe returns true if x + y is representable by T and in [Min, Max].
func (b Bounds[T]) AdditionSafe(x, y T) bool {
	return b.additionViolation(x, y) == violationNone
}

// SubtractionSafe returns true if x - y is representable by T and in [Min, Max].
func (b Bounds[T]) SubtractionSafe(x, y T) bool {
	return b.subtractionViolation(x, y) == violationNone
}

// Add returns x + y, or an OverflowError or UnderflowError
// if the result is not in [Min, Max].
func (b Bounds[T]) Add(x, y T) (T, error) {
	if err := b.additionViolation(x, y).err(); err != nil {
		return 0, err
	}
	return x + y, nil
}

// Sub returns x - y, or an OverflowError or UnderflowError
// if the result is not in [Min, Max].
func (b Bounds[T]) Sub(x, y T) (T, error) {
	if err := b.subtractionViolation(x, y).err(); err != nil {
		return 0, err
	}
	return x - y, nil
}

// SaturatingAdd returns x + y, clamped to [Min, Max].
func (b Bounds[T]) SaturatingAdd(x, y T) T {
	switch b.additionViolation(x, y) {
	case violationOverflow:
		return b.Max
	case violationUnderflow:
		return b.Min
	default:
		return x + y
	}
}

// SaturatingSub returns x - y, clamped to [Min, Max].
func (b Bounds[T]) SaturatingSub(x, y T) T {
	switch b.subtractionViolation(x, y) {
	case violationOverflow:
		return b.Max
	case violationUnderflow:
		return b.Min
	default:
		return x - y
	}
}

type violation uint8

const (
	violationNone violation = iota
	violationOverflow
	violationUnderflow
)

func (v violation) err() error {
	switch v {
	case violationNone:
		return nil
	case violationOverflow:
		return OverflowError{}
	case violationUnderflow:
		return UnderflowError{}
	}

	panic(errors.NewUnreachableError())
}

// additionViolation determines if x + y leaves [Min, Max], without computing x + y.
//
// A threshold which is itself not representable by T
// lies beyond every value of T: the check it guards either always or never fails.
func (b Bounds[T]) additionViolation(x, y T) violation {
	if y < 0 {
		// x + y < Min <=> x < Min - y
		if !SubtractionSafe(b.Min, y) || x < b.MinNegative(y) {
			return violationUnderflow
		}
		// x + y > Max <=> x > Max - y
		if SubtractionSafe(b.Max, y) && x > b.MaxPositive(y) {
			return violationOverflow
		}
		return violationNone
	}

	if !SubtractionSafe(b.Max, y) || x > b.MaxPositive(y) {
		return violationOverflow
	}
	if SubtractionSafe(b.Min, y) && x < b.MinNegative(y) {
		return violationUnderflow
	}
	return violationNone
}

// subtractionViolation determines if x - y leaves [Min, Max], without computing x - y.
func (b Bounds[T]) subtractionViolation(x, y T) violation {
	if y < 0 {
		// x - y > Max <=> x > Max + y
		if !AdditionSafe(b.Max, y) || x > b.MaxNegative(y) {
			return violationOverflow
		}
		// x - y < Min <=> x < Min + y
		if AdditionSafe(b.Min, y) && x < b.MinPositive(y) {
			return violationUnderflow
		}
		return violationNone
	}

	if !AdditionSafe(b.Min, y) || x < b.MinPositive(y) {
		return violationUnderflow
	}
	if AdditionSafe(b.Max, y) && x > b.MaxNegative(y) {
		return violationOverflow
	}
	return violationNone
}
