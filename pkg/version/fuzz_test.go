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
	"testing"
)

// FuzzParseVersion performs fuzz testing on ParseVersion to find edge cases
func FuzzParseVersion(f *testing.F) {
	// Seed corpus with compiler versions and edge cases
	f.Add("5")
	f.Add("190")
	f.Add("6.3")
	f.Add("v1.83.0")
	f.Add("19.29.30133")
	f.Add("15.0.0-beta")
	f.Add("1.2.3+local")
	f.Add("")
	f.Add(".")
	f.Add("1.")
	f.Add(".1")
	f.Add("1..2")
	f.Add("v")
	f.Add("vv1")
	f.Add("-1")
	f.Add("1.-2")
	f.Add("a.b.c")
	f.Add("   1.2.3")
	f.Add("1. 2.3")

	f.Fuzz(func(t *testing.T, input string) {
		// ParseVersion should never panic
		v, err := ParseVersion(input)
		if err != nil {
			return
		}

		if !v.IsValid() {
			t.Errorf("ParseVersion(%q) returned invalid version: %+v", input, v)
		}

		// Re-parsing the string form should produce an equal version
		s := v.String()
		v2, err := ParseVersion(s)
		if err != nil {
			t.Fatalf("Re-parsing %q (from %q) failed: %v", s, input, err)
		}
		if v.Compare(v2) != 0 || v.Extras != v2.Extras {
			t.Errorf("Round-trip mismatch for %q: %+v != %+v", input, v, v2)
		}

		// Comparison must be antisymmetric
		other := NewVersion(6)
		if v.Compare(other) != -other.Compare(v) {
			t.Errorf("Compare is not antisymmetric for %q", input)
		}
	})
}
