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

package common_utils

import (
	"strings"
	"testing"

	"github.com/k0kubun/pp/v3"
	"github.com/kr/pretty"
	"github.com/stretchr/testify/require"

	"github.com/onflow/rangecheck/errors"
)

func init() {
	pp.ColoringEnabled = false
}

// AssertEqualWithDiff asserts that two objects are equal.
//
// If the objects are not equal, this function prints a human-readable diff.
func AssertEqualWithDiff(t *testing.T, expected, actual any) {
	t.Helper()

	diff := pretty.Diff(expected, actual)

	if len(diff) != 0 {
		s := strings.Builder{}

		for i, d := range diff {
			if i == 0 {
				s.WriteString("diff    : ")
			} else {
				s.WriteString("          ")
			}

			s.WriteString(d)
			s.WriteString("\n")
		}

		t.Errorf(
			"Not equal: \n"+
				"expected: %s\n"+
				"actual  : %s\n\n"+
				"%s",
			pp.Sprint(expected),
			pp.Sprint(actual),
			s.String(),
		)
	}
}

// RequireError is a wrapper around require.Error which also ensures
// that the error message and the secondary message (if any)
// can be successfully produced
func RequireError(t *testing.T, err error) {
	t.Helper()

	require.Error(t, err)

	_ = err.Error()

	if hasSecondaryError, ok := err.(errors.SecondaryError); ok {
		_ = hasSecondaryError.SecondaryError()
	}
}

// RequireUserError requires err to be a user error, i.e. caused by the operands.
func RequireUserError(t *testing.T, err error) {
	t.Helper()

	RequireError(t, err)
	require.True(t, errors.IsUserError(err), "expected user error, got %T: %s", err, err)
	require.False(t, errors.IsInternalError(err), "unexpected internal error %T: %s", err, err)
}

// RequirePanicsWithInternalError requires f to panic with an internal error,
// and returns it for further inspection.
func RequirePanicsWithInternalError(t *testing.T, f func()) (err error) {
	t.Helper()

	require.Panics(t, func() {
		defer func() {
			r := recover()
			err, _ = r.(error)
			panic(r)
		}()
		f()
	})

	RequireError(t, err)
	require.True(t, errors.IsInternalError(err), "expected internal error, got %T: %s", err, err)

	return err
}
