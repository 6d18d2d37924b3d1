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
	"strconv"
	"strings"
)

// Error types for version parsing failures
var (
	ErrEmptyVersion      = errors.New("version string is empty")
	ErrNonNumeric        = errors.New("version component is not numeric")
	ErrNegativeComponent = errors.New("version component cannot be negative")
)

// Version is a dotted numeric version token such as a compiler version
// ("5", "190", "15.0.0") or a library version ("1.83.0").
// Any number of numeric components is accepted. Components missing on one
// side of a comparison count as zero, so "6" and "6.0.0" are equal.
type Version struct {
	// Components holds the numeric parts in order of significance.
	Components []int `json:"components" yaml:"components"`

	// Extras stores a trailing pre-release ("-beta") or build ("+local") suffix.
	Extras string `json:"extras,omitempty" yaml:"extras,omitempty"`
}

// NewVersion creates a Version from numeric components.
func NewVersion(components ...int) Version {
	c := make([]int, len(components))
	copy(c, components)
	return Version{Components: c}
}

// Major returns the first component, or 0 when absent.
func (v Version) Major() int { return v.component(0) }

// Minor returns the second component, or 0 when absent.
func (v Version) Minor() int { return v.component(1) }

// Patch returns the third component, or 0 when absent.
func (v Version) Patch() int { return v.component(2) }

func (v Version) component(i int) int {
	if i < len(v.Components) {
		return v.Components[i]
	}
	return 0
}

// String returns the dotted form followed by any extras.
func (v Version) String() string {
	parts := make([]string, len(v.Components))
	for i, c := range v.Components {
		parts[i] = strconv.Itoa(c)
	}
	return strings.Join(parts, ".") + v.Extras
}

// ParseVersion parses a version string into a Version struct.
// Supported formats: "5", "6.3", "1.83.0", "v1.2.3", "19.29.30133",
// "15.0.0-beta", "1.2.3+local". The "v" prefix is optional and stripped.
// Surrounding whitespace is trimmed.
func ParseVersion(s string) (Version, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Version{}, ErrEmptyVersion
	}

	s = strings.TrimPrefix(s, "v")
	var v Version

	// Extras start at the first '-' or '+' that follows a digit; a leading
	// '-' is a negative component, not a suffix.
	mainPart := s
	for i := 1; i < len(s); i++ {
		ch := s[i]
		if (ch == '-' || ch == '+') && s[i-1] >= '0' && s[i-1] <= '9' {
			mainPart = s[:i]
			v.Extras = s[i:]
			break
		}
	}

	parts := strings.Split(mainPart, ".")
	v.Components = make([]int, 0, len(parts))
	for _, part := range parts {
		if part == "" {
			return Version{}, fmt.Errorf("%w: empty component", ErrNonNumeric)
		}
		num, err := strconv.Atoi(part)
		if err != nil {
			return Version{}, fmt.Errorf("%w: %q", ErrNonNumeric, part)
		}
		if num < 0 {
			return Version{}, fmt.Errorf("%w: %d", ErrNegativeComponent, num)
		}
		v.Components = append(v.Components, num)
	}

	return v, nil
}

// MustParseVersion parses a version string and panics if parsing fails.
// Only use this for hardcoded strings or in tests.
func MustParseVersion(s string) Version {
	v, err := ParseVersion(s)
	if err != nil {
		panic(fmt.Sprintf("MustParseVersion: %v", err))
	}
	return v
}

// IsPrerelease reports whether the extras carry a pre-release tag.
func (v Version) IsPrerelease() bool {
	return strings.HasPrefix(v.Extras, "-")
}

// Compare returns -1 if v < other, 0 if v == other, 1 if v > other.
// Numeric components are compared first; on a tie a pre-release sorts
// before the corresponding release and pre-release tags compare
// lexically. Build metadata after '+' is ignored.
func (v Version) Compare(other Version) int {
	n := max(len(v.Components), len(other.Components))
	for i := range n {
		a, b := v.component(i), other.component(i)
		switch {
		case a < b:
			return -1
		case a > b:
			return 1
		}
	}

	vp, op := v.IsPrerelease(), other.IsPrerelease()
	switch {
	case vp && !op:
		return -1
	case !vp && op:
		return 1
	case vp && op:
		return strings.Compare(prereleaseTag(v.Extras), prereleaseTag(other.Extras))
	}
	return 0
}

// prereleaseTag strips build metadata from a pre-release suffix.
func prereleaseTag(extras string) string {
	if i := strings.IndexByte(extras, '+'); i >= 0 {
		return extras[:i]
	}
	return extras
}

// LessThan returns true if v is strictly older than other.
func (v Version) LessThan(other Version) bool {
	return v.Compare(other) < 0
}

// EqualsOrNewer returns true if v is equal to or newer than other.
func (v Version) EqualsOrNewer(other Version) bool {
	return v.Compare(other) >= 0
}

// Equals returns true if v and other compare equal.
func (v Version) Equals(other Version) bool {
	return v.Compare(other) == 0
}

// IsValid returns true if the version has at least one component and no
// negative components.
func (v Version) IsValid() bool {
	if len(v.Components) == 0 {
		return false
	}
	for _, c := range v.Components {
		if c < 0 {
			return false
		}
	}
	return true
}
