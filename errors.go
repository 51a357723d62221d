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

// OverflowError is reported when the result of an operation
// is greater than the maximum of the range.
type OverflowError struct{}

var _ errors.UserError = OverflowError{}

func (OverflowError) IsUserError() {}

func (e OverflowError) Error() string {
	return "overflow"
}

// UnderflowError is reported when the result of an operation
// is less than the minimum of the range.
type UnderflowError struct{}

var _ errors.UserError = UnderflowError{}

func (UnderflowError) IsUserError() {}

func (e UnderflowError) Error() string {
	return "underflow"
}

// InvalidBoundsError is reported when custom bounds are constructed
// with a minimum greater than the maximum.
//
// It is an internal error: the bounds of a policy are chosen by the program, not its input.
type InvalidBoundsError[T limits.Integer] struct {
	Min T
	Max T
}

var _ errors.InternalError = InvalidBoundsError[int]{}

func (InvalidBoundsError[T]) IsInternalError() {}

func (e InvalidBoundsError[T]) Error() string {
	return fmt.Sprintf(
		"invalid bounds: minimum %d is greater than maximum %d",
		e.Min,
		e.Max,
	)
}

// VariableRangeError is reported when an operation on a checked variable
// would result in a value outside of the range.
//
// It wraps the OverflowError or UnderflowError describing the direction.
type VariableRangeError[T limits.Integer] struct {
	Err       error
	Name      string
	Operand   Operand[T]
	Bounds    Bounds[T]
	Value     T
	Operation Operation
}

var _ errors.UserError = &VariableRangeError[int]{}
var _ errors.SecondaryError = &VariableRangeError[int]{}

func (*VariableRangeError[T]) IsUserError() {}

func (e *VariableRangeError[T]) Unwrap() error {
	return e.Err
}

func (e *VariableRangeError[T]) Error() string {
	return fmt.Sprintf(
		"variable `%s` (value %d) would %s upon %s %s",
		e.Name,
		e.Value,
		e.Err,
		e.Operation.Verb(),
		e.Operand,
	)
}

func (e *VariableRangeError[T]) SecondaryError() string {
	return fmt.Sprintf("result must be in %s", e.Bounds)
}
