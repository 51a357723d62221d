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

// Package rangecheck detects overflow of fixed-width integer additions and subtractions
// before they are performed.
//
// The bound calculators (MaxPositive, MinNegative, MinPositive, MaxNegative)
// return the threshold a value must not cross for an operation with a known operand to stay in range.
// The predicates AdditionSafe and SubtractionSafe check two arbitrary operands.
// Neither ever computes the potentially overflowing result.
//
// Bounds narrows the range to a custom lower and/or upper bound.
//
// Callers decide how to react to an unsafe operation:
// reject it (Add, Sub, CheckAddition, CheckSubtraction)
// or saturate the result (SaturatingAdd, SaturatingSub).
package rangecheck
