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
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/boostorg/scope/pkg/errors"
	"github.com/boostorg/scope/pkg/header"
	"github.com/boostorg/scope/pkg/version"
)

// WarnAssumedCxx11 is emitted when the compiler is not in the minimum
// version table.
const WarnAssumedCxx11 = "Assuming the compiler supports c++11 by default"

// Basis records which rule decided a validation.
type Basis string

const (
	// BasisExplicitCppStd means the configured standard was checked.
	BasisExplicitCppStd Basis = "cppstd"
	// BasisCompilerDefault means the compiler version was checked against the table.
	BasisCompilerDefault Basis = "compiler-default"
	// BasisAssumed means the compiler is unknown and C++11 was assumed.
	BasisAssumed Basis = "assumed"
)

// Validation is the outcome of the validate hook.
type Validation struct {
	header.Header `json:",inline" yaml:",inline"`

	Settings Settings `json:"settings" yaml:"settings"`
	Basis    Basis    `json:"basis" yaml:"basis"`
	Passed   bool     `json:"passed" yaml:"passed"`

	// MinCompilerVersion is the table entry used, when one applied.
	MinCompilerVersion string `json:"minCompilerVersion,omitempty" yaml:"minCompilerVersion,omitempty"`

	Warnings []string `json:"warnings,omitempty" yaml:"warnings,omitempty"`
	Error    string   `json:"error,omitempty" yaml:"error,omitempty"`
}

// Validate decides whether the settings can build the library.
//
// An explicitly configured standard must be C++11 or newer. Without one the
// compiler version is compared with the minimum version table; compilers
// missing from the table pass with a warning. Failures are configuration
// errors. The returned Validation is never nil and has Passed set to false
// when an error is returned.
func (r *Recipe) Validate(ctx context.Context, s Settings) (*Validation, error) {
	res := &Validation{Settings: s}
	res.Init(header.KindValidationResult, header.APIVersion, r.toolVersion)

	err := r.observe(ctx, HookValidate, func(ctx context.Context) error {
		return r.validate(res, s)
	})
	if err != nil {
		res.Error = err.Error()
		return res, err
	}
	res.Passed = true
	return res, nil
}

func (r *Recipe) validate(res *Validation, s Settings) error {
	if cppstd := strings.TrimSpace(s.Compiler.CppStd); cppstd != "" {
		res.Basis = BasisExplicitCppStd
		return CheckMinCppStd(cppstd, MinCppStd)
	}

	minVersion, ok := MinCompilerVersionDefaultCxx11(s.Compiler.Name)
	if !ok {
		res.Basis = BasisAssumed
		res.Warnings = append(res.Warnings, WarnAssumedCxx11)
		r.logger.Warn(WarnAssumedCxx11,
			slog.String("compiler", s.Compiler.Name),
			slog.String("compilerVersion", s.Compiler.Version))
		return nil
	}

	res.Basis = BasisCompilerDefault
	res.MinCompilerVersion = minVersion.String()

	got, err := version.ParseVersion(s.Compiler.Version)
	if err != nil {
		return errors.WrapWithContext(errors.ErrCodeInvalidConfiguration,
			fmt.Sprintf("invalid %s version %q", s.Compiler.Name, s.Compiler.Version), err,
			map[string]any{"compiler": s.Compiler.Name})
	}
	if got.LessThan(minVersion) {
		return errors.NewWithContext(errors.ErrCodeInvalidConfiguration, "Boost.Scope requires C++11",
			map[string]any{
				"compiler":        s.Compiler.Name,
				"compilerVersion": s.Compiler.Version,
				"minVersion":      minVersion.String(),
			})
	}
	return nil
}

// IsConfigurationError reports whether err is a configuration error raised
// by the validate hook.
func IsConfigurationError(err error) bool {
	return errors.HasCode(err, errors.ErrCodeInvalidConfiguration)
}
