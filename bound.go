// Copyright 2026 Dolthub, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package numberline

import (
	"fmt"
	"math"
	"strconv"
)

// Bound is a single boundary point on the extended real number line, together
// with a flag saying whether the point itself belongs to the region it
// delimits. A bound at +Inf or -Inf is always stored as inclusive, regardless
// of the flag passed to NewBound; infinities are asymptotic limits, and
// collapsing them to a single form makes two infinite bounds of the same sign
// compare equal.
//
// Ordering between bounds is partial, not total. Two bounds with the same
// value but differing inclusivity are neither less than, greater than, nor
// equal to each other; NotComparable reports that case. It models a single
// point approached from the inclusive and exclusive side at once, e.g. an
// exclusive upper bound at 1 next to an inclusive lower bound at 1.
//
// When a bound is compared against a bare number, the number is treated as an
// inclusive bound at that value.
//
// Bound is immutable.
type Bound struct {
	value     float64
	inclusive bool
}

// NewBound returns a bound at value. Infinite values are always stored as
// inclusive.
func NewBound(value float64, inclusive bool) Bound {
	if math.IsInf(value, 0) {
		inclusive = true
	}
	return Bound{value: value, inclusive: inclusive}
}

var (
	// Infinity is the canonical inclusive bound at +Inf.
	Infinity = NewBound(math.Inf(1), true)

	// MinusInfinity is the canonical inclusive bound at -Inf.
	MinusInfinity = NewBound(math.Inf(-1), true)
)

// Value returns the position of the bound on the number line.
func (b Bound) Value() float64 {
	return b.value
}

// Inclusive returns whether the bound's own value belongs to the region it
// delimits.
func (b Bound) Inclusive() bool {
	return b.inclusive
}

// Equals returns true iff both bounds have the same value and the same
// inclusivity.
func (b Bound) Equals(other Bound) bool {
	return b.value == other.value && b.inclusive == other.inclusive
}

// EqualsValue compares the bound against a bare number, which counts as an
// inclusive bound at that value.
func (b Bound) EqualsValue(v float64) bool {
	return b.inclusive && b.value == v
}

// Less returns true iff b lies strictly below other on the number line.
// Inclusivity plays no part in strict ordering.
func (b Bound) Less(other Bound) bool {
	return b.value < other.value
}

// Greater returns true iff b lies strictly above other on the number line.
func (b Bound) Greater(other Bound) bool {
	return b.value > other.value
}

// LessOrEqual returns true iff b lies below other, or coincides with it in
// both value and inclusivity. Two bounds at the same value with differing
// inclusivity satisfy neither LessOrEqual nor GreaterOrEqual.
func (b Bound) LessOrEqual(other Bound) bool {
	return b.value < other.value || b.Equals(other)
}

// GreaterOrEqual returns true iff b lies above other, or coincides with it in
// both value and inclusivity.
func (b Bound) GreaterOrEqual(other Bound) bool {
	return b.value > other.value || b.Equals(other)
}

// LessValue compares the bound against a bare number.
func (b Bound) LessValue(v float64) bool {
	return b.value < v
}

// GreaterValue compares the bound against a bare number.
func (b Bound) GreaterValue(v float64) bool {
	return b.value > v
}

// LessOrEqualValue compares the bound against a bare number, which counts as
// an inclusive bound at that value.
func (b Bound) LessOrEqualValue(v float64) bool {
	return b.value < v || b.EqualsValue(v)
}

// GreaterOrEqualValue compares the bound against a bare number, which counts
// as an inclusive bound at that value.
func (b Bound) GreaterOrEqualValue(v float64) bool {
	return b.value > v || b.EqualsValue(v)
}

// NotComparable returns true iff b and other occupy the same value with
// differing inclusivity, in which case none of Less, Greater, or Equals holds
// between them in either direction.
func (b Bound) NotComparable(other Bound) bool {
	return b.value == other.value && b.inclusive != other.inclusive
}

// String returns a debug form of the bound, e.g. "Bound(1, inclusive)".
func (b Bound) String() string {
	kind := "exclusive"
	if b.inclusive {
		kind = "inclusive"
	}
	return fmt.Sprintf("Bound(%s, %s)", formatValue(b.value), kind)
}

func formatValue(v float64) string {
	if math.IsInf(v, 1) {
		return "inf"
	}
	if math.IsInf(v, -1) {
		return "-inf"
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}
