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

package recipe

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/boostorg/scope/pkg/errors"
)

// MinCppStd is the lowest C++ standard the library compiles with.
const MinCppStd = 11

// knownCppStd lists the accepted standard values, without a gnu prefix.
var knownCppStd = map[string]int{
	"98": 1998,
	"03": 2003,
	"11": 2011,
	"14": 2014,
	"17": 2017,
	"20": 2020,
	"23": 2023,
	"26": 2026,
}

// CppStd is a parsed language standard value.
type CppStd struct {
	// Year is the four-digit publication year, e.g. 2011.
	Year int
	// GNU marks the GNU dialect ("gnu17").
	GNU bool
}

// String returns the setting form of the standard, e.g. "gnu17".
func (c CppStd) String() string {
	s := fmt.Sprintf("%02d", c.Year%100)
	if c.GNU {
		return "gnu" + s
	}
	return s
}

// ParseCppStd parses a standard setting such as "11", "gnu14" or "98".
func ParseCppStd(s string) (CppStd, error) {
	raw := strings.ToLower(strings.TrimSpace(s))
	std := CppStd{}
	if rest, ok := strings.CutPrefix(raw, "gnu"); ok {
		std.GNU = true
		raw = rest
	}
	year, ok := knownCppStd[raw]
	if !ok {
		return CppStd{}, errors.New(errors.ErrCodeInvalidConfiguration,
			fmt.Sprintf("invalid C++ standard %q", s))
	}
	std.Year = year
	return std, nil
}

// AtLeast reports whether c is the two-digit standard min or newer.
func (c CppStd) AtLeast(min int) bool {
	return c.Year >= standardYear(min)
}

// standardYear maps a two-digit standard number to its year: 98 is 1998,
// everything else is 20xx.
func standardYear(n int) int {
	if n >= 98 {
		return 1900 + n
	}
	return 2000 + n
}

// CheckMinCppStd fails with a configuration error when cppstd is older than
// the two-digit standard min or cannot be parsed.
func CheckMinCppStd(cppstd string, min int) error {
	std, err := ParseCppStd(cppstd)
	if err != nil {
		return err
	}
	if !std.AtLeast(min) {
		return errors.NewWithContext(errors.ErrCodeInvalidConfiguration,
			fmt.Sprintf("current cppstd (%s) is lower than the required C++ standard (%s)", cppstd, strconv.Itoa(min)),
			map[string]any{"cppstd": cppstd, "required": min})
	}
	return nil
}
