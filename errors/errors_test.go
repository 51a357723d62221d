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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testUserError struct{}

func (testUserError) Error() string {
	return "user"
}

func (testUserError) IsUserError() {}

func TestIsUserError(t *testing.T) {

	t.Parallel()

	assert.True(t, IsUserError(testUserError{}))
	assert.True(t, IsUserError(fmt.Errorf("wrapped: %w", testUserError{})))
	assert.True(t, IsUserError(fmt.Errorf("outer: %w", fmt.Errorf("inner: %w", testUserError{}))))

	assert.False(t, IsUserError(fmt.Errorf("plain")))
	assert.False(t, IsUserError(NewUnreachableError()))
	assert.False(t, IsUserError(nil))
}

func TestIsInternalError(t *testing.T) {

	t.Parallel()

	assert.True(t, IsInternalError(NewUnreachableError()))
	assert.True(t, IsInternalError(fmt.Errorf("wrapped: %w", NewUnreachableError())))

	assert.False(t, IsInternalError(testUserError{}))
	assert.False(t, IsInternalError(fmt.Errorf("plain")))
	assert.False(t, IsInternalError(nil))
}

func TestUnreachableError(t *testing.T) {

	t.Parallel()

	err := NewUnreachableError()
	require.NotEmpty(t, err.Stack)
	assert.Contains(t, err.Error(), "unreachable\n")
	assert.Contains(t, err.Error(), "TestUnreachableError")
}
