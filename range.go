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
)

// Range is a convex interval on the extended real number line, delimited by a
// lower and an upper Bound. Ranges are immutable; Union and Subtract return
// new ranges.
type Range struct {
	lower Bound
	upper Bound
}

var (
	// EmptyRange is the canonical empty interval, stored as the inverted
	// pair (+inf, -inf) so that no value satisfies lower <= v <= upper.
	EmptyRange = Range{lower: Infinity, upper: MinusInfinity}

	// FullRange covers the entire extended real number line.
	FullRange = Range{lower: MinusInfinity, upper: Infinity}
)

// NewRange returns the interval between lower and upper. It returns
// ErrInvertedBounds when lower lies above upper; equal values with equal
// inclusivity are allowed and describe a single point.
func NewRange(lower, upper Bound) (Range, error) {
	if !lower.LessOrEqual(upper) {
		return Range{}, ErrInvertedBounds.New(formatValue(lower.value), formatValue(upper.value))
	}
	return Range{lower: lower, upper: upper}, nil
}

// Lower returns the lower bound of the range.
func (r Range) Lower() Bound {
	return r.lower
}

// Upper returns the upper bound of the range.
func (r Range) Upper() Bound {
	return r.upper
}

// Equals returns true iff both ranges have equal lower and upper bounds.
func (r Range) Equals(other Range) bool {
	return r.lower.Equals(other.lower) && r.upper.Equals(other.upper)
}

// Contains reports whether v lies within the range. A bare number counts as
// an inclusive bound at that value.
func (r Range) Contains(v float64) bool {
	return r.lower.LessOrEqualValue(v) && r.upper.GreaterOrEqualValue(v)
}

// IsEmpty reports whether the range can contain no values, which is the case
// when its lower bound does not lie at or below its upper bound.
func (r Range) IsEmpty() bool {
	return !r.lower.LessOrEqual(r.upper)
}

// Union returns the union of r and other: both ranges unchanged when they are
// separated by a genuine gap, otherwise the single merged range. Two ranges
// touching at a value that both sides exclude are gap-separated; if either
// touching bound is inclusive the shared point connects them and they merge.
// When the merged endpoints tie on value, the inclusive side wins, so ranges
// touching at a shared inclusive point collapse into one continuous range.
func (r Range) Union(other Range) []Range {
	disjointBelow := r.upper.value < other.lower.value ||
		(r.upper.value == other.lower.value && !r.upper.inclusive && !other.lower.inclusive)
	disjointAbove := r.lower.value > other.upper.value ||
		(r.lower.value == other.upper.value && !r.lower.inclusive && !other.upper.inclusive)
	if disjointBelow || disjointAbove {
		return []Range{r, other}
	}

	var lower Bound
	switch {
	case r.lower.value < other.lower.value:
		lower = r.lower
	case r.lower.value > other.lower.value:
		lower = other.lower
	default:
		lower = NewBound(r.lower.value, r.lower.inclusive || other.lower.inclusive)
	}

	var upper Bound
	switch {
	case r.upper.value > other.upper.value:
		upper = r.upper
	case r.upper.value < other.upper.value:
		upper = other.upper
	default:
		upper = NewBound(r.upper.value, r.upper.inclusive || other.upper.inclusive)
	}

	return []Range{{lower: lower, upper: upper}}
}

// Subtract returns the parts of r not covered by other. The result has two
// elements when other is carved out of the middle of r, one element when a
// single remainder survives on the left or right (or when the ranges do not
// overlap at all), and a single EmptyRange element when other consumes r
// entirely.
func (r Range) Subtract(other Range) []Range {
	// The complements of other's bounds: everything up to but not including
	// other's lower edge, and everything from just past other's upper edge.
	lower := NewBound(other.lower.value, !other.lower.inclusive)
	upper := NewBound(other.upper.value, !other.upper.inclusive)

	switch {
	case r.lower.GreaterOrEqual(upper) || r.upper.LessOrEqual(lower):
		return []Range{r}
	case r.lower.LessOrEqual(lower) && r.upper.GreaterOrEqual(upper):
		return []Range{{lower: r.lower, upper: lower}, {lower: upper, upper: r.upper}}
	case r.lower.LessOrEqual(lower) && r.upper.LessOrEqual(other.upper):
		return []Range{{lower: r.lower, upper: lower}}
	case r.lower.GreaterOrEqual(other.lower) && r.upper.GreaterOrEqual(upper):
		return []Range{{lower: upper, upper: r.upper}}
	case r.lower.GreaterOrEqual(other.lower) && r.upper.LessOrEqual(other.upper):
		return []Range{EmptyRange}
	}

	// The five cases above are exhaustive for any pair of ranges satisfying
	// lower <= upper.
	panic(fmt.Sprintf("no subtraction case applies for %s - %s; range invariant violated", r, other))
}

// String renders the range in interval notation, e.g. "[0, 10)". A bound at
// an infinite value always renders with the exclusive-facing bracket even
// though it is stored as inclusive, matching mathematical convention.
func (r Range) String() string {
	left, right := "(", ")"
	if r.lower.inclusive && !math.IsInf(r.lower.value, 0) {
		left = "["
	}
	if r.upper.inclusive && !math.IsInf(r.upper.value, 0) {
		right = "]"
	}
	return fmt.Sprintf("%s%s, %s%s", left, formatValue(r.lower.value), formatValue(r.upper.value), right)
}
