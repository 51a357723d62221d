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

package errors

import (
	"fmt"
	"runtime/debug"

	"golang.org/x/xerrors"
)

// InternalError is an implementation error, e.g. an unreachable code path (UnreachableError),
// or a misuse of the API by the calling code, e.g. a bound policy whose minimum exceeds its maximum.
//
// InternalErrors are usually panicked and should not be recovered by the caller.
type InternalError interface {
	error
	IsInternalError()
}

// UserError is an error caused by the values the caller operates on,
// e.g. an addition whose result does not fit the target type.
type UserError interface {
	error
	IsUserError()
}

// SecondaryError is an interface for errors that provide a secondary error message
type SecondaryError interface {
	SecondaryError() string
}

// UnreachableError

// UnreachableError is an internal error which should have never occurred
// due to a programming error in this library.
type UnreachableError struct {
	Stack []byte
}

var _ InternalError = UnreachableError{}

func (e UnreachableError) Error() string {
	return fmt.Sprintf("unreachable\n%s", e.Stack)
}

func (e UnreachableError) IsInternalError() {}

func NewUnreachableError() *UnreachableError {
	return &UnreachableError{Stack: debug.Stack()}
}

// IsInternalError checks whether a given error was caused by an InternalError.
// An error is an internal error if it has at least one InternalError in the error chain.
func IsInternalError(err error) bool {
	switch err := err.(type) {
	case InternalError:
		return true
	case xerrors.Wrapper:
		return IsInternalError(err.Unwrap())
	default:
		return false
	}
}

// IsUserError checks whether a given error was caused by a UserError.
// An error is a user error if it has at least one UserError in the error chain.
func IsUserError(err error) bool {
	switch err := err.(type) {
	case UserError:
		return true
	case xerrors.Wrapper:
		return IsUserError(err.Unwrap())
	default:
		return false
	}
}
