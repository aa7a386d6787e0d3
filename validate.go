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
	"strings"
)

// FailureKind classifies why a value fell outside a number line, so that a
// calling layer can phrase an appropriate message.
type FailureKind int

const (
	// FailureAboveThreshold: the line is a single range open towards minus
	// infinity, and the value lies above its upper bound. The value must be
	// smaller than (or equal to, when the bound is inclusive) the bound.
	FailureAboveThreshold FailureKind = iota

	// FailureBelowThreshold: the line is a single range open towards plus
	// infinity, and the value lies below its lower bound. The value must be
	// bigger than (or equal to, when the bound is inclusive) the bound.
	FailureBelowThreshold

	// FailureOutsideRange: the line is a single finite range and the value
	// lies outside it.
	FailureOutsideRange

	// FailureOutsideRanges: the line has multiple component ranges (or none)
	// and the value lies in none of them.
	FailureOutsideRanges
)

// ValidationError describes a value that fell outside a number line. Kind
// classifies the failure; Bound carries the violated threshold for the two
// threshold kinds, and Ranges always carries the simplified component ranges
// of the line.
type ValidationError struct {
	Value  float64
	Kind   FailureKind
	Bound  Bound
	Ranges []Range
}

var _ error = (*ValidationError)(nil)

func (e *ValidationError) Error() string {
	switch e.Kind {
	case FailureAboveThreshold:
		return fmt.Sprintf("%s should be smaller than %s%s",
			formatValue(e.Value), orEqualTo(e.Bound), formatValue(e.Bound.value))
	case FailureBelowThreshold:
		return fmt.Sprintf("%s should be bigger than %s%s",
			formatValue(e.Value), orEqualTo(e.Bound), formatValue(e.Bound.value))
	case FailureOutsideRange:
		return fmt.Sprintf("%s should be in the range %s", formatValue(e.Value), e.Ranges[0])
	default:
		parts := make([]string, len(e.Ranges))
		for i, r := range e.Ranges {
			parts[i] = r.String()
		}
		return fmt.Sprintf("%s should be in: %s", formatValue(e.Value), strings.Join(parts, ", "))
	}
}

func orEqualTo(b Bound) string {
	if b.inclusive {
		return "or equal to "
	}
	return ""
}

// Validate reports nil when value lies on the number line, and otherwise a
// *ValidationError classifying the failure. Membership itself never errors;
// use Contains when no explanation is needed.
func (nl NumberLine) Validate(value float64) error {
	if nl.Contains(value) {
		return nil
	}

	simplified := simplify(nl.ranges)
	if len(simplified) == 1 {
		r := simplified[0]
		switch {
		case r.lower.Equals(MinusInfinity):
			return &ValidationError{Value: value, Kind: FailureAboveThreshold, Bound: r.upper, Ranges: simplified}
		case r.upper.Equals(Infinity):
			return &ValidationError{Value: value, Kind: FailureBelowThreshold, Bound: r.lower, Ranges: simplified}
		default:
			return &ValidationError{Value: value, Kind: FailureOutsideRange, Ranges: simplified}
		}
	}
	return &ValidationError{Value: value, Kind: FailureOutsideRanges, Ranges: simplified}
}
