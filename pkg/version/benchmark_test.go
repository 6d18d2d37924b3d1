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

func BenchmarkParseVersion(b *testing.B) {
	tests := []string{
		"5",
		"190",
		"6.3",
		"v1.83.0",
		"19.29.30133",
		"15.0.0-beta",
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		input := tests[i%len(tests)]
		_, _ = ParseVersion(input)
	}
}

func BenchmarkVersionString(b *testing.B) {
	v := NewVersion(1, 83, 0)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = v.String()
	}
}

func BenchmarkCompareMixedLength(b *testing.B) {
	v1 := MustParseVersion("6")
	v2 := MustParseVersion("6.0.1")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = v1.Compare(v2)
	}
}

func BenchmarkParseConstraint(b *testing.B) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = ParseConstraint("[>=1.83.0 <2]")
	}
}

func BenchmarkConstraintSatisfied(b *testing.B) {
	c := MustParseConstraint(">=1.83.0, <2")
	v := MustParseVersion("1.84.0")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = c.Satisfied(v)
	}
}
