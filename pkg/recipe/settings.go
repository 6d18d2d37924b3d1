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
	"strings"
)

// Setting keys as they appear in package identity records.
const (
	SettingCompiler        = "compiler"
	SettingCompilerVersion = "compiler.version"
	SettingCompilerCppStd  = "compiler.cppstd"
	SettingBuildType       = "build_type"
)

// Compiler identifies the toolchain the orchestrator builds with.
type Compiler struct {
	// Name is the compiler family, e.g. "gcc", "clang", "apple-clang", "msvc".
	Name string `json:"name" yaml:"name"`

	// Version is the compiler version token, e.g. "7", "14.2", "193".
	Version string `json:"version" yaml:"version"`

	// CppStd is the explicitly configured language standard, e.g. "17" or
	// "gnu14". Empty means the compiler default applies.
	CppStd string `json:"cppstd,omitempty" yaml:"cppstd,omitempty"`
}

// Settings is the build configuration supplied by the orchestrator.
type Settings struct {
	Compiler  Compiler `json:"compiler" yaml:"compiler"`
	BuildType string   `json:"buildType,omitempty" yaml:"build_type,omitempty"`
}

// Merge returns a copy of s with every non-empty field of override applied.
func (s Settings) Merge(override Settings) Settings {
	out := s
	if v := strings.TrimSpace(override.Compiler.Name); v != "" {
		out.Compiler.Name = v
	}
	if v := strings.TrimSpace(override.Compiler.Version); v != "" {
		out.Compiler.Version = v
	}
	if v := strings.TrimSpace(override.Compiler.CppStd); v != "" {
		out.Compiler.CppStd = v
	}
	if v := strings.TrimSpace(override.BuildType); v != "" {
		out.BuildType = v
	}
	return out
}

// Values flattens the settings into the dotted keys used by package
// identity records. Empty fields are omitted.
func (s Settings) Values() map[string]string {
	values := make(map[string]string, 4)
	set := func(k, v string) {
		if v = strings.TrimSpace(v); v != "" {
			values[k] = v
		}
	}
	set(SettingCompiler, s.Compiler.Name)
	set(SettingCompilerVersion, s.Compiler.Version)
	set(SettingCompilerCppStd, s.Compiler.CppStd)
	set(SettingBuildType, s.BuildType)
	return values
}
