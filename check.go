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

// Operation is an arithmetic operation on a checked variable.
type Operation uint8

const (
	OperationUnknown Operation = iota
	OperationAddition
	OperationSubtraction
)

func (o Operation) Verb() string {
	switch o {
	case OperationAddition:
		return "adding"
	case OperationSubtraction:
		return "subtracting"
	}

	panic(errors.NewUnreachableError())
}

// Operand is the right-hand side of an operation on a checked variable:
// either a literal, or another variable.
type Operand[T limits.Integer] struct {
	// Name is the name of the variable, or empty for a literal
	Name  string
	Value T
}

func Literal[T limits.Integer](value T) Operand[T] {
	return Operand[T]{
		Value: value,
	}
}

func Variable[T limits.Integer](name string, value T) Operand[T] {
	return Operand[T]{
		Name:  name,
		Value: value,
	}
}

func (o Operand[T]) IsLiteral() bool {
	return o.Name == ""
}

func (o Operand[T]) String() string {
	if o.IsLiteral() {
		return fmt.Sprintf("%d", o.Value)
	}
	return fmt.Sprintf("variable `%s` (value %d)", o.Name, o.Value)
}

// CheckAddition checks that adding the operand to the variable with the given name and value
// results in a value in [Min, Max].
//
// It returns a *VariableRangeError if the result would be out of range.
func (b Bounds[T]) CheckAddition(name string, value T, operand Operand[T]) error {
	return b.check(
		name,
		value,
		OperationAddition,
		operand,
		b.additionViolation(value, operand.Value),
	)
}

// CheckSubtraction checks that subtracting the operand from the variable with the given name and value
// results in a value in [Min, Max].
//
// It returns a *VariableRangeError if the result would be out of range.
func (b Bounds[T]) CheckSubtraction(name string, value T, operand Operand[T]) error {
	return b.check(
		name,
		value,
		OperationSubtraction,
		operand,
		b.subtractionViolation(value, operand.Value),
	)
}

func (b Bounds[T]) check(
	name string,
	value T,
	operation Operation,
	operand Operand[T],
	v violation,
) error {
	err := v.err()
	if err == nil {
		return nil
	}

	return &VariableRangeError[T]{
		Err:       err,
		Name:      name,
		Value:     value,
		Operation: operation,
		Operand:   operand,
		Bounds:    b,
	}
}
