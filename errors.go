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
	"gopkg.in/src-d/go-errors.v1"
)

// ErrInvertedBounds is returned when a range or an Include/Exclude number
// line is constructed with a lower bound above its upper bound.
var ErrInvertedBounds = errors.NewKind("lower bound (%s) cannot be bigger than upper bound (%s)")

// ErrUnsupportedOperand is returned by the generic Union and Difference
// dispatch functions when the operand is not a NumberLine, Range, or number.
var ErrUnsupportedOperand = errors.NewKind("unsupported operand type %s for number line operation")

// ErrInvalidRangeSyntax is returned when ParseRange or ParseNumberLine is
// given text that does not describe an interval.
var ErrInvalidRangeSyntax = errors.NewKind("could not parse range from '%s'")
