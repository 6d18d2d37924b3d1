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
	"maps"
	"slices"

	"github.com/boostorg/scope/pkg/version"
)

// minCompilerVersionDefaultCxx11 maps a compiler family to the first version
// that defaults to C++11 or newer when no standard is configured.
var minCompilerVersionDefaultCxx11 = map[string]version.Version{
	// apple-clang is assumed to keep an older default for the foreseeable future
	"apple-clang":   version.NewVersion(99),
	"gcc":           version.NewVersion(6),
	"clang":         version.NewVersion(6),
	"Visual Studio": version.NewVersion(14),  // guess
	"msvc":          version.NewVersion(190), // guess
}

// MinCompilerVersionDefaultCxx11 returns the first version of compiler that
// defaults to C++11, and false when the compiler is not in the table.
func MinCompilerVersionDefaultCxx11(compiler string) (version.Version, bool) {
	v, ok := minCompilerVersionDefaultCxx11[compiler]
	return v, ok
}

// KnownCompilers returns the compiler families in the table, sorted.
func KnownCompilers() []string {
	return slices.Sorted(maps.Keys(minCompilerVersionDefaultCxx11))
}
