// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
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

package version

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEmptyConstraint is returned when a constraint expression has no terms.
var ErrEmptyConstraint = errors.New("constraint expression is empty")

// Operator represents a comparison operator in constraint expressions.
type Operator string

const (
	// OperatorGTE represents ">=" (greater than or equal).
	OperatorGTE Operator = ">="
	// OperatorLTE represents "<=" (less than or equal).
	OperatorLTE Operator = "<="
	// OperatorGT represents ">" (greater than).
	OperatorGT Operator = ">"
	// OperatorLT represents "<" (less than).
	OperatorLT Operator = "<"
	// OperatorEQ represents "==" (equal). A bare version implies it.
	OperatorEQ Operator = "=="
	// OperatorNE represents "!=" (not equal).
	OperatorNE Operator = "!="
)

// operators is ordered longest first so ">=" wins over ">".
var operators = []Operator{OperatorGTE, OperatorLTE, OperatorNE, OperatorEQ, OperatorGT, OperatorLT}

// Term is a single operator/version comparison.
type Term struct {
	Operator Operator
	Version  Version
}

// String returns the term in compact form, e.g. ">=1.83.0".
func (t Term) String() string {
	return string(t.Operator) + t.Version.String()
}

// Matches reports whether v satisfies the term.
func (t Term) Matches(v Version) bool {
	c := v.Compare(t.Version)
	switch t.Operator {
	case OperatorGTE:
		return c >= 0
	case OperatorLTE:
		return c <= 0
	case OperatorGT:
		return c > 0
	case OperatorLT:
		return c < 0
	case OperatorNE:
		return c != 0
	default:
		return c == 0
	}
}

// Constraint is a conjunction of terms. A version satisfies the constraint
// when it matches every term.
type Constraint struct {
	Terms []Term
}

// ParseConstraint parses version range expressions such as ">=1.83.0",
// "[>=1.83.0 <2]", ">=1.53.0, <3" or "1.84.0". Terms are separated by
// whitespace or commas; surrounding square brackets are optional.
func ParseConstraint(expr string) (Constraint, error) {
	s := strings.TrimSpace(expr)
	s = strings.TrimPrefix(s, "[")
	s = strings.TrimSuffix(s, "]")

	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	if len(fields) == 0 {
		return Constraint{}, ErrEmptyConstraint
	}

	// Rejoin a dangling operator with its version: ">= 1.83" splits in two.
	terms := make([]Term, 0, len(fields))
	for i := 0; i < len(fields); i++ {
		field := fields[i]
		if isOperator(field) && i+1 < len(fields) {
			field += fields[i+1]
			i++
		}
		term, err := parseTerm(field)
		if err != nil {
			return Constraint{}, fmt.Errorf("invalid constraint %q: %w", expr, err)
		}
		terms = append(terms, term)
	}

	return Constraint{Terms: terms}, nil
}

// MustParseConstraint parses a constraint and panics if parsing fails.
func MustParseConstraint(expr string) Constraint {
	c, err := ParseConstraint(expr)
	if err != nil {
		panic(fmt.Sprintf("MustParseConstraint: %v", err))
	}
	return c
}

func isOperator(s string) bool {
	for _, op := range operators {
		if s == string(op) {
			return true
		}
	}
	return false
}

func parseTerm(s string) (Term, error) {
	op := OperatorEQ
	for _, candidate := range operators {
		if strings.HasPrefix(s, string(candidate)) {
			op = candidate
			s = strings.TrimPrefix(s, string(candidate))
			break
		}
	}
	// A single "=" is accepted as equality.
	if op == OperatorEQ {
		s = strings.TrimPrefix(s, "=")
	}

	v, err := ParseVersion(s)
	if err != nil {
		return Term{}, err
	}
	return Term{Operator: op, Version: v}, nil
}

// Satisfied reports whether v matches every term of the constraint.
func (c Constraint) Satisfied(v Version) bool {
	for _, t := range c.Terms {
		if !t.Matches(v) {
			return false
		}
	}
	return len(c.Terms) > 0
}

// String returns the terms joined by a single space.
func (c Constraint) String() string {
	parts := make([]string, len(c.Terms))
	for i, t := range c.Terms {
		parts[i] = t.String()
	}
	return strings.Join(parts, " ")
}
