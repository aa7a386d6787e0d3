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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRangeRoundTrip(t *testing.T) {
	// Canonical renderings parse back to themselves.
	notations := []string{
		"[0, 10)",
		"(0, 10]",
		"(0, 10)",
		"[2.5, 7.25]",
		"(-inf, 0]",
		"[10, inf)",
		"(-inf, inf)",
		"[5, 5]",
	}

	for _, notation := range notations {
		r, err := ParseRange(notation)
		require.NoError(t, err, notation)
		assert.Equal(t, notation, r.String())
	}
}

func TestParseRangeCanonicalizesInfiniteBrackets(t *testing.T) {
	// An infinite endpoint is stored inclusive whichever bracket is
	// written, and always renders with the exclusive-facing bracket.
	r, err := ParseRange("[-inf, 0]")
	require.NoError(t, err)
	assert.True(t, r.Lower().Inclusive())
	assert.Equal(t, "(-inf, 0]", r.String())

	r, err = ParseRange("(0, +inf]")
	require.NoError(t, err)
	assert.True(t, r.Upper().Inclusive())
	assert.Equal(t, "(0, inf)", r.String())
}

func TestParseRangeEmpty(t *testing.T) {
	r, err := ParseRange("(inf, -inf)")
	require.NoError(t, err)
	assert.True(t, r.Equals(EmptyRange))
}

func TestParseRangeErrors(t *testing.T) {
	syntaxErrors := []string{
		"",
		"0, 10",
		"[0 10]",
		"[0, 10",
		"[a, b]",
		"[0, 10, 20]",
		"[nan, 1]",
	}
	for _, notation := range syntaxErrors {
		_, err := ParseRange(notation)
		require.Error(t, err, "%q should not parse", notation)
		assert.True(t, ErrInvalidRangeSyntax.Is(err), "%q: %v", notation, err)
	}

	_, err := ParseRange("[10, 0]")
	require.Error(t, err)
	assert.True(t, ErrInvertedBounds.Is(err))
}

func TestParseNumberLine(t *testing.T) {
	line, err := ParseNumberLine("[0, 10), (12, inf)")
	require.NoError(t, err)
	require.Len(t, line.Ranges(), 2)
	assert.True(t, line.Contains(0))
	assert.False(t, line.Contains(10))
	assert.False(t, line.Contains(11))
	assert.True(t, line.Contains(13))

	empty, err := ParseNumberLine("empty")
	require.NoError(t, err)
	assert.True(t, empty.IsEmpty())
}

func TestParseNumberLineSimplifies(t *testing.T) {
	line, err := ParseNumberLine("[5, 10], [0, 5]")
	require.NoError(t, err)
	assert.Equal(t, "[0, 10]", line.String())
}

func TestParseNumberLineRoundTrip(t *testing.T) {
	lines := []NumberLine{
		Full(),
		Empty(),
		Positive(false),
		mustInclude(t, 0, 10, true, false),
		Full().Subtract(mustInclude(t, 0, 10, true, true)),
		NewNumberLine(mustRange(t, "[0, 1]"), mustRange(t, "(2, 3)")),
	}

	for _, line := range lines {
		parsed, err := ParseNumberLine(line.String())
		require.NoError(t, err, line.String())
		assert.Equal(t, line.String(), parsed.String())
	}
}

func TestParseNumberLineErrors(t *testing.T) {
	for _, notation := range []string{"", "bogus", "[0, 1] junk", "[0, 1], [oops]"} {
		_, err := ParseNumberLine(notation)
		require.Error(t, err, "%q should not parse", notation)
		assert.True(t, ErrInvalidRangeSyntax.Is(err), "%q: %v", notation, err)
	}
}
