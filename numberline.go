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

// Package numberline implements exact interval arithmetic over the extended
// real number line: membership queries and union, difference, and complement
// over arbitrary (possibly disjoint) subsets of the reals, kept in a
// canonical, maximally-merged form.
package numberline

import (
	"fmt"
	"sort"
	"strings"
)

// NumberLine is an ordered collection of ranges describing an arbitrary,
// possibly disjoint subset of the extended real number line. The zero value
// is the empty line.
//
// Combinators return new NumberLine instances; only Simplify mutates the
// receiver, by replacing its owned range sequence with the canonical form. A
// NumberLine is therefore not safe for mutation from multiple goroutines
// without external synchronization, while read-only queries on an
// already-simplified instance may be shared freely.
type NumberLine struct {
	ranges []Range
}

// NewNumberLine returns a number line covering the union of the given
// ranges, simplified to canonical form. With no arguments it covers the full
// line.
func NewNumberLine(ranges ...Range) NumberLine {
	if len(ranges) == 0 {
		return Full()
	}
	return NumberLine{ranges: simplify(ranges)}
}

// Full returns the number line covering all values.
func Full() NumberLine {
	return NumberLine{ranges: []Range{FullRange}}
}

// Empty returns the number line covering no values.
func Empty() NumberLine {
	return NumberLine{}
}

// Include returns the number line covering all values between start and end.
// It returns ErrInvertedBounds when start lies above end.
func Include(start, end Bound) (NumberLine, error) {
	r, err := NewRange(start, end)
	if err != nil {
		return NumberLine{}, err
	}
	return NumberLine{ranges: []Range{r}}, nil
}

// IncludeValues is the bare-number convenience form of Include.
func IncludeValues(start, end float64, startInclusive, endInclusive bool) (NumberLine, error) {
	return Include(NewBound(start, startInclusive), NewBound(end, endInclusive))
}

// Exclude returns the number line covering all values outside the region
// between start and end, built directly as the two-piece union of a lower and
// an upper half-line. The bounds keep their inclusivity: an inclusive start
// bound means the start value itself stays on the line. Excluding the full
// line collapses to Empty. It returns ErrInvertedBounds when start lies above
// end.
func Exclude(start, end Bound) (NumberLine, error) {
	if !start.LessOrEqual(end) {
		return NumberLine{}, ErrInvertedBounds.New(formatValue(start.value), formatValue(end.value))
	}
	if start.Equals(MinusInfinity) && end.Equals(Infinity) {
		return Empty(), nil
	}
	return NumberLine{ranges: []Range{
		{lower: MinusInfinity, upper: start},
		{lower: end, upper: Infinity},
	}}, nil
}

// ExcludeValues is the bare-number convenience form of Exclude.
func ExcludeValues(start, end float64, startInclusive, endInclusive bool) (NumberLine, error) {
	return Exclude(NewBound(start, startInclusive), NewBound(end, endInclusive))
}

// GreaterThan returns the half-line of all values above the given bound.
func GreaterThan(bound Bound) NumberLine {
	return NumberLine{ranges: []Range{{lower: bound, upper: Infinity}}}
}

// GreaterThanValue is the bare-number convenience form of GreaterThan.
func GreaterThanValue(v float64, inclusive bool) NumberLine {
	return GreaterThan(NewBound(v, inclusive))
}

// LessThan returns the half-line of all values below the given bound.
func LessThan(bound Bound) NumberLine {
	return NumberLine{ranges: []Range{{lower: MinusInfinity, upper: bound}}}
}

// LessThanValue is the bare-number convenience form of LessThan.
func LessThanValue(v float64, inclusive bool) NumberLine {
	return LessThan(NewBound(v, inclusive))
}

// Positive returns the half-line of all positive values.
func Positive(includeZero bool) NumberLine {
	return GreaterThanValue(0, includeZero)
}

// Negative returns the half-line of all negative values.
func Negative(includeZero bool) NumberLine {
	return LessThanValue(0, includeZero)
}

// simplify returns the canonical form of a range sequence: no empty members,
// no two members that could merge into one range, sorted ascending by lower
// bound value. It is a pure function; the input slice is never modified.
//
// The merge runs to a fixpoint: whenever a pair of members unions into a
// single range the pair is replaced by the merged range and the scan
// restarts, until a full scan changes nothing.
func simplify(ranges []Range) []Range {
	working := make([]Range, 0, len(ranges))
	for _, r := range ranges {
		if !r.Equals(EmptyRange) {
			working = append(working, r)
		}
	}

	for busy := true; busy; {
		busy = false
	scan:
		for i := 0; i < len(working); i++ {
			for j := i + 1; j < len(working); j++ {
				un := working[i].Union(working[j])
				if len(un) == 1 {
					working[i] = un[0]
					working = append(working[:j], working[j+1:]...)
					busy = true
					break scan
				}
			}
		}
	}

	sort.SliceStable(working, func(i, j int) bool {
		return working[i].lower.value < working[j].lower.value
	})
	return working
}

// Simplify replaces the owned range sequence with its canonical form: sorted
// ascending by lower bound value, free of empty members, with no two members
// that could merge into one range. Simplify is idempotent.
func (nl *NumberLine) Simplify() {
	nl.ranges = simplify(nl.ranges)
}

// Contains reports whether value lies anywhere on the number line. It is
// safe on unsimplified lines; overlapping or duplicate members do not affect
// the answer.
func (nl NumberLine) Contains(value float64) bool {
	for _, r := range nl.ranges {
		if r.Contains(value) {
			return true
		}
	}
	return false
}

// IsEmpty reports whether the line contains no values. It is computed over
// the simplified form without mutating the receiver.
func (nl NumberLine) IsEmpty() bool {
	return len(simplify(nl.ranges)) == 0
}

// Ranges returns a copy of the line's component ranges in their current
// order. Call Simplify first if the canonical order matters.
func (nl NumberLine) Ranges() []Range {
	out := make([]Range, len(nl.ranges))
	copy(out, nl.ranges)
	return out
}

// Union returns a new number line covering both lines, simplified.
func (nl NumberLine) Union(other NumberLine) NumberLine {
	combined := make([]Range, 0, len(nl.ranges)+len(other.ranges))
	combined = append(combined, nl.ranges...)
	combined = append(combined, other.ranges...)
	return NumberLine{ranges: simplify(combined)}
}

// UnionRange returns a new number line additionally covering r, simplified.
func (nl NumberLine) UnionRange(r Range) NumberLine {
	combined := make([]Range, 0, len(nl.ranges)+1)
	combined = append(combined, nl.ranges...)
	combined = append(combined, r)
	return NumberLine{ranges: simplify(combined)}
}

// UnionValue returns a new number line additionally covering the single
// point v, simplified.
func (nl NumberLine) UnionValue(v float64) NumberLine {
	return nl.UnionRange(pointRange(v))
}

// Subtract returns a new number line with every component of other removed,
// by subtracting each of other's ranges in sequence from every current
// member. The result is deliberately left unsimplified to avoid redundant
// merge passes when subtractions are chained; it is set-correct but may hold
// empty or adjacent members until the next Simplify.
func (nl NumberLine) Subtract(other NumberLine) NumberLine {
	working := nl.ranges
	for _, sub := range other.ranges {
		working = subtractFromAll(working, sub)
	}
	return NumberLine{ranges: working}
}

// SubtractRange returns a new number line with r removed, unsimplified.
func (nl NumberLine) SubtractRange(r Range) NumberLine {
	return NumberLine{ranges: subtractFromAll(nl.ranges, r)}
}

// SubtractValue returns a new number line with the single point v removed,
// unsimplified.
func (nl NumberLine) SubtractValue(v float64) NumberLine {
	return nl.SubtractRange(pointRange(v))
}

// Complement returns the number line covering exactly the values this line
// does not, as FullRange minus the line. Like Subtract, the result is left
// unsimplified.
func (nl NumberLine) Complement() NumberLine {
	return Full().Subtract(nl)
}

// String renders the simplified line as comma-joined interval notation, e.g.
// "(-inf, 0), (10, inf)", or "empty" for the empty line.
func (nl NumberLine) String() string {
	simplified := simplify(nl.ranges)
	if len(simplified) == 0 {
		return "empty"
	}
	parts := make([]string, len(simplified))
	for i, r := range simplified {
		parts[i] = r.String()
	}
	return strings.Join(parts, ", ")
}

// Union combines nl with an operand that may be a NumberLine, Range, float64,
// or int. Any other operand type is rejected with ErrUnsupportedOperand.
func Union(nl NumberLine, operand interface{}) (NumberLine, error) {
	switch v := operand.(type) {
	case NumberLine:
		return nl.Union(v), nil
	case Range:
		return nl.UnionRange(v), nil
	case float64:
		return nl.UnionValue(v), nil
	case int:
		return nl.UnionValue(float64(v)), nil
	default:
		return NumberLine{}, ErrUnsupportedOperand.New(fmt.Sprintf("%T", operand))
	}
}

// Difference removes an operand that may be a NumberLine, Range, float64, or
// int from nl. Any other operand type is rejected with ErrUnsupportedOperand.
func Difference(nl NumberLine, operand interface{}) (NumberLine, error) {
	switch v := operand.(type) {
	case NumberLine:
		return nl.Subtract(v), nil
	case Range:
		return nl.SubtractRange(v), nil
	case float64:
		return nl.SubtractValue(v), nil
	case int:
		return nl.SubtractValue(float64(v)), nil
	default:
		return NumberLine{}, ErrUnsupportedOperand.New(fmt.Sprintf("%T", operand))
	}
}

func subtractFromAll(ranges []Range, sub Range) []Range {
	out := make([]Range, 0, len(ranges))
	for _, r := range ranges {
		out = append(out, r.Subtract(sub)...)
	}
	return out
}

func pointRange(v float64) Range {
	b := NewBound(v, true)
	return Range{lower: b, upper: b}
}
