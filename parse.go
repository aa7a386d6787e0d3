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
	"math"
	"strconv"
	"strings"
)

// ParseRange parses interval notation such as "[0, 10)" or "(-inf, 5]".
// Square brackets mark inclusive bounds and parentheses exclusive ones;
// infinite endpoints ("inf", "+inf", "-inf") canonicalize to inclusive
// storage whichever bracket is written. The inverted pair "(inf, -inf)"
// parses to EmptyRange; any other inverted pair is ErrInvertedBounds.
func ParseRange(s string) (Range, error) {
	t := strings.TrimSpace(s)
	if len(t) < 2 {
		return Range{}, ErrInvalidRangeSyntax.New(s)
	}

	first, last := t[0], t[len(t)-1]
	if (first != '[' && first != '(') || (last != ']' && last != ')') {
		return Range{}, ErrInvalidRangeSyntax.New(s)
	}

	parts := strings.Split(t[1:len(t)-1], ",")
	if len(parts) != 2 {
		return Range{}, ErrInvalidRangeSyntax.New(s)
	}

	lowerVal, err := parseEndpoint(parts[0], s)
	if err != nil {
		return Range{}, err
	}
	upperVal, err := parseEndpoint(parts[1], s)
	if err != nil {
		return Range{}, err
	}

	lower := NewBound(lowerVal, first == '[')
	upper := NewBound(upperVal, last == ']')
	if lower.Equals(Infinity) && upper.Equals(MinusInfinity) {
		return EmptyRange, nil
	}
	return NewRange(lower, upper)
}

// ParseNumberLine parses comma-joined interval notation such as
// "[0, 10), (12, inf)", the form String renders, and returns the simplified
// line. The literal "empty" parses to the empty line.
func ParseNumberLine(s string) (NumberLine, error) {
	t := strings.TrimSpace(s)
	if t == "empty" {
		return Empty(), nil
	}

	var ranges []Range
	rest := t
	for {
		rest = strings.TrimLeft(rest, ", \t")
		if rest == "" {
			break
		}
		if rest[0] != '[' && rest[0] != '(' {
			return NumberLine{}, ErrInvalidRangeSyntax.New(s)
		}
		end := strings.IndexAny(rest, "])")
		if end < 0 {
			return NumberLine{}, ErrInvalidRangeSyntax.New(s)
		}
		r, err := ParseRange(rest[:end+1])
		if err != nil {
			return NumberLine{}, err
		}
		ranges = append(ranges, r)
		rest = rest[end+1:]
	}

	if len(ranges) == 0 {
		return NumberLine{}, ErrInvalidRangeSyntax.New(s)
	}
	return NewNumberLine(ranges...), nil
}

func parseEndpoint(part, whole string) (float64, error) {
	switch strings.ToLower(strings.TrimSpace(part)) {
	case "inf", "+inf":
		return math.Inf(1), nil
	case "-inf":
		return math.Inf(-1), nil
	}

	v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
	if err != nil || math.IsNaN(v) {
		return 0, ErrInvalidRangeSyntax.New(whole)
	}
	return v, nil
}
