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

// Package constraints loads named numeric constraints from YAML documents
// and answers validation queries against them using numberline arithmetic.
package constraints

import (
	"math"
	"os"
	"sort"

	"github.com/sirupsen/logrus"
	"gopkg.in/src-d/go-errors.v1"
	"gopkg.in/yaml.v2"

	"github.com/dolthub/numberline"
)

// ErrUnknownConstraint is returned when a validation query names a
// constraint the set does not contain.
var ErrUnknownConstraint = errors.NewKind("unknown constraint '%s'")

// ErrBadConstraintSpec is returned when a constraint spec is contradictory
// or malformed.
var ErrBadConstraintSpec = errors.NewKind("constraint '%s': %s")

// Spec is the YAML form of a single named constraint. Exactly one of the
// base forms may be used: positive, negative, intervals, or a min/max pair
// (either side may be omitted for a half-line). The not list subtracts
// regions, written in interval notation, from the base.
type Spec struct {
	Min          *float64 `yaml:"min,omitempty"`
	Max          *float64 `yaml:"max,omitempty"`
	MinExclusive *bool    `yaml:"min_exclusive,omitempty"`
	MaxExclusive *bool    `yaml:"max_exclusive,omitempty"`
	Positive     *bool    `yaml:"positive,omitempty"`
	Negative     *bool    `yaml:"negative,omitempty"`
	IncludeZero  *bool    `yaml:"include_zero,omitempty"`
	Intervals    []string `yaml:"intervals,omitempty"`
	Not          []string `yaml:"not,omitempty"`
}

// Set holds named constraints resolved to number lines.
type Set struct {
	lines map[string]numberline.NumberLine
}

// Parse builds a constraint set from a YAML document mapping constraint
// names to specs.
func Parse(data []byte) (*Set, error) {
	var doc map[string]Spec
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}

	lines := make(map[string]numberline.NumberLine, len(doc))
	for name, spec := range doc {
		line, err := spec.numberLine(name)
		if err != nil {
			return nil, err
		}
		lines[name] = line
	}

	logrus.WithField("constraints", len(lines)).Debug("parsed constraint set")
	return &Set{lines: lines}, nil
}

// Load reads a YAML constraint file from disk and parses it.
func Load(path string) (*Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	set, err := Parse(data)
	if err != nil {
		return nil, err
	}

	logrus.WithField("path", path).Debug("loaded constraint file")
	return set, nil
}

// Get returns the number line behind a named constraint.
func (s *Set) Get(name string) (numberline.NumberLine, bool) {
	line, ok := s.lines[name]
	return line, ok
}

// Names returns the constraint names in sorted order.
func (s *Set) Names() []string {
	names := make([]string, 0, len(s.lines))
	for name := range s.lines {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Validate reports nil when value satisfies the named constraint, a
// *numberline.ValidationError when it does not, and ErrUnknownConstraint
// when the name is not in the set.
func (s *Set) Validate(name string, value float64) error {
	line, ok := s.lines[name]
	if !ok {
		return ErrUnknownConstraint.New(name)
	}
	return line.Validate(value)
}

func (sp Spec) numberLine(name string) (numberline.NumberLine, error) {
	base, err := sp.baseLine(name)
	if err != nil {
		return numberline.NumberLine{}, err
	}

	for _, notation := range sp.Not {
		r, err := numberline.ParseRange(notation)
		if err != nil {
			return numberline.NumberLine{}, ErrBadConstraintSpec.New(name, err.Error())
		}
		base = base.SubtractRange(r)
	}
	base.Simplify()
	return base, nil
}

func (sp Spec) baseLine(name string) (numberline.NumberLine, error) {
	forms := 0
	if sp.Positive != nil {
		forms++
	}
	if sp.Negative != nil {
		forms++
	}
	if len(sp.Intervals) > 0 {
		forms++
	}
	if sp.Min != nil || sp.Max != nil {
		forms++
	}
	if forms > 1 {
		return numberline.NumberLine{}, ErrBadConstraintSpec.New(name,
			"positive, negative, intervals, and min/max are mutually exclusive")
	}

	switch {
	case sp.Positive != nil && *sp.Positive:
		return numberline.Positive(sp.includeZero()), nil
	case sp.Negative != nil && *sp.Negative:
		return numberline.Negative(sp.includeZero()), nil
	case len(sp.Intervals) > 0:
		line := numberline.Empty()
		for _, notation := range sp.Intervals {
			r, err := numberline.ParseRange(notation)
			if err != nil {
				return numberline.NumberLine{}, ErrBadConstraintSpec.New(name, err.Error())
			}
			line = line.UnionRange(r)
		}
		return line, nil
	case sp.Min != nil || sp.Max != nil:
		min, max := math.Inf(-1), math.Inf(1)
		if sp.Min != nil {
			min = *sp.Min
		}
		if sp.Max != nil {
			max = *sp.Max
		}
		line, err := numberline.IncludeValues(min, max, !sp.minExclusive(), !sp.maxExclusive())
		if err != nil {
			return numberline.NumberLine{}, ErrBadConstraintSpec.New(name, err.Error())
		}
		return line, nil
	default:
		return numberline.Full(), nil
	}
}

func (sp Spec) includeZero() bool {
	return sp.IncludeZero == nil || *sp.IncludeZero
}

func (sp Spec) minExclusive() bool {
	return sp.MinExclusive != nil && *sp.MinExclusive
}

func (sp Spec) maxExclusive() bool {
	return sp.MaxExclusive != nil && *sp.MaxExclusive
}
