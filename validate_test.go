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

func TestValidateContainedValue(t *testing.T) {
	assert.NoError(t, Positive(true).Validate(1))
	assert.NoError(t, Full().Validate(-1e18))
	line := mustInclude(t, 0, 10, true, false)
	assert.NoError(t, line.Validate(0))
	assert.NoError(t, line.Validate(9.999))
}

func TestValidateClassification(t *testing.T) {
	tests := []struct {
		name     string
		line     NumberLine
		value    float64
		kind     FailureKind
		expected string
	}{
		{
			"above an inclusive cap",
			LessThanValue(10, true),
			11,
			FailureAboveThreshold,
			"11 should be smaller than or equal to 10",
		},
		{
			"above an exclusive cap",
			LessThanValue(10, false),
			10,
			FailureAboveThreshold,
			"10 should be smaller than 10",
		},
		{
			"below an exclusive floor",
			GreaterThanValue(0, false),
			-1,
			FailureBelowThreshold,
			"-1 should be bigger than 0",
		},
		{
			"below an inclusive floor",
			GreaterThanValue(0, true),
			-0.5,
			FailureBelowThreshold,
			"-0.5 should be bigger than or equal to 0",
		},
		{
			"outside a finite range",
			mustInclude(t, 0, 1, true, true),
			5,
			FailureOutsideRange,
			"5 should be in the range [0, 1]",
		},
		{
			"outside multiple ranges",
			NewNumberLine(mustRange(t, "[0, 1]"), mustRange(t, "[2, 3]")),
			1.5,
			FailureOutsideRanges,
			"1.5 should be in: [0, 1], [2, 3]",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := test.line.Validate(test.value)
			require.Error(t, err)

			verr, ok := err.(*ValidationError)
			require.True(t, ok)
			assert.Equal(t, test.kind, verr.Kind)
			assert.Equal(t, test.value, verr.Value)
			assert.Equal(t, test.expected, err.Error())
		})
	}
}

func TestValidateThresholdCarriesBound(t *testing.T) {
	err := LessThanValue(10, false).Validate(12)
	verr := err.(*ValidationError)
	assert.Equal(t, 10.0, verr.Bound.Value())
	assert.False(t, verr.Bound.Inclusive())
	require.Len(t, verr.Ranges, 1)

	err = GreaterThanValue(3, true).Validate(1)
	verr = err.(*ValidationError)
	assert.Equal(t, 3.0, verr.Bound.Value())
	assert.True(t, verr.Bound.Inclusive())
}

func TestValidateClassifiesSimplifiedForm(t *testing.T) {
	// Two member ranges that merge into a single half-line classify as a
	// threshold failure, not a multi-range failure.
	line := GreaterThanValue(5, true).Union(GreaterThanValue(0, true))

	err := line.Validate(-1)
	require.Error(t, err)
	verr := err.(*ValidationError)
	assert.Equal(t, FailureBelowThreshold, verr.Kind)
	assert.Equal(t, 0.0, verr.Bound.Value())
}

func TestValidateEmptyLine(t *testing.T) {
	err := Empty().Validate(1)
	require.Error(t, err)

	verr := err.(*ValidationError)
	assert.Equal(t, FailureOutsideRanges, verr.Kind)
	assert.Empty(t, verr.Ranges)
}
