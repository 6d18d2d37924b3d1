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
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/boostorg/scope/pkg/errors"
	"github.com/boostorg/scope/pkg/header"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		settings Settings
		wantErr  bool
		basis    Basis
		warned   bool
	}{
		{
			name:     "gcc 5 without cppstd fails",
			settings: Settings{Compiler: Compiler{Name: "gcc", Version: "5"}},
			wantErr:  true,
			basis:    BasisCompilerDefault,
		},
		{
			name:     "gcc 5.4 without cppstd fails",
			settings: Settings{Compiler: Compiler{Name: "gcc", Version: "5.4"}},
			wantErr:  true,
			basis:    BasisCompilerDefault,
		},
		{
			name:     "gcc 6 is the first passing version",
			settings: Settings{Compiler: Compiler{Name: "gcc", Version: "6"}},
			basis:    BasisCompilerDefault,
		},
		{
			name:     "gcc 7 passes",
			settings: Settings{Compiler: Compiler{Name: "gcc", Version: "7"}},
			basis:    BasisCompilerDefault,
		},
		{
			name:     "clang 5 fails",
			settings: Settings{Compiler: Compiler{Name: "clang", Version: "5"}},
			wantErr:  true,
			basis:    BasisCompilerDefault,
		},
		{
			name:     "msvc 190 passes",
			settings: Settings{Compiler: Compiler{Name: "msvc", Version: "190"}},
			basis:    BasisCompilerDefault,
		},
		{
			name:     "msvc 180 fails",
			settings: Settings{Compiler: Compiler{Name: "msvc", Version: "180"}},
			wantErr:  true,
			basis:    BasisCompilerDefault,
		},
		{
			name:     "Visual Studio 15 passes",
			settings: Settings{Compiler: Compiler{Name: "Visual Studio", Version: "15"}},
			basis:    BasisCompilerDefault,
		},
		{
			name:     "apple-clang without cppstd fails",
			settings: Settings{Compiler: Compiler{Name: "apple-clang", Version: "15.0"}},
			wantErr:  true,
			basis:    BasisCompilerDefault,
		},
		{
			name:     "apple-clang with cppstd 17 passes",
			settings: Settings{Compiler: Compiler{Name: "apple-clang", Version: "15.0", CppStd: "17"}},
			basis:    BasisExplicitCppStd,
		},
		{
			name:     "old gcc with explicit cppstd 11 passes",
			settings: Settings{Compiler: Compiler{Name: "gcc", Version: "4.8", CppStd: "11"}},
			basis:    BasisExplicitCppStd,
		},
		{
			name:     "gnu14 passes",
			settings: Settings{Compiler: Compiler{Name: "gcc", Version: "5", CppStd: "gnu14"}},
			basis:    BasisExplicitCppStd,
		},
		{
			name:     "cppstd 98 fails on a new compiler",
			settings: Settings{Compiler: Compiler{Name: "gcc", Version: "13", CppStd: "98"}},
			wantErr:  true,
			basis:    BasisExplicitCppStd,
		},
		{
			name:     "cppstd gnu03 fails",
			settings: Settings{Compiler: Compiler{Name: "clang", Version: "17", CppStd: "gnu03"}},
			wantErr:  true,
			basis:    BasisExplicitCppStd,
		},
		{
			name:     "invalid cppstd fails",
			settings: Settings{Compiler: Compiler{Name: "gcc", Version: "13", CppStd: "c++17"}},
			wantErr:  true,
			basis:    BasisExplicitCppStd,
		},
		{
			name:     "unknown compiler passes with warning",
			settings: Settings{Compiler: Compiler{Name: "unknown-compiler", Version: "1"}},
			basis:    BasisAssumed,
			warned:   true,
		},
		{
			name:     "unknown compiler with unparseable version passes with warning",
			settings: Settings{Compiler: Compiler{Name: "intel-cc", Version: "2021.x"}},
			basis:    BasisAssumed,
			warned:   true,
		},
		{
			name:     "tabled compiler with unparseable version fails",
			settings: Settings{Compiler: Compiler{Name: "gcc", Version: "seven"}},
			wantErr:  true,
			basis:    BasisCompilerDefault,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, logs := newTestRecipe(WithToolVersion("v1.0.0"))

			res, err := r.Validate(context.Background(), tt.settings)
			require.NotNil(t, res)
			assert.Equal(t, tt.basis, res.Basis)
			assert.Equal(t, header.KindValidationResult, res.Kind)
			assert.Equal(t, "v1.0.0", res.Metadata["version"])

			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, IsConfigurationError(err), "expected configuration error, got %v", err)
				assert.False(t, res.Passed)
				assert.NotEmpty(t, res.Error)
				return
			}
			require.NoError(t, err)
			assert.True(t, res.Passed)

			if tt.warned {
				assert.Equal(t, []string{WarnAssumedCxx11}, res.Warnings)
				assert.Contains(t, logs.String(), WarnAssumedCxx11)
			} else {
				assert.Empty(t, res.Warnings)
				assert.NotContains(t, logs.String(), WarnAssumedCxx11)
			}
		})
	}
}

func TestValidateRequiresCxx11Message(t *testing.T) {
	r, _ := newTestRecipe()
	_, err := r.Validate(context.Background(), Settings{Compiler: Compiler{Name: "gcc", Version: "5"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Boost.Scope requires C++11")

	var se *errors.StructuredError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "6", se.Context["minVersion"])
}

// Every tabled compiler fails strictly below its entry and passes at it.
func TestValidateTableBoundaries(t *testing.T) {
	r, _ := newTestRecipe()
	for _, name := range KnownCompilers() {
		minVersion, ok := MinCompilerVersionDefaultCxx11(name)
		require.True(t, ok)

		t.Run(name, func(t *testing.T) {
			below := minVersion.Major() - 1
			_, err := r.Validate(context.Background(), Settings{Compiler: Compiler{Name: name, Version: strconv.Itoa(below)}})
			assert.True(t, IsConfigurationError(err), "version %d should fail", below)

			_, err = r.Validate(context.Background(), Settings{Compiler: Compiler{Name: name, Version: minVersion.String()}})
			assert.NoError(t, err)

			// An explicit standard overrides the table in both directions.
			_, err = r.Validate(context.Background(), Settings{Compiler: Compiler{Name: name, Version: strconv.Itoa(below), CppStd: "20"}})
			assert.NoError(t, err)
			_, err = r.Validate(context.Background(), Settings{Compiler: Compiler{Name: name, Version: minVersion.String(), CppStd: "98"}})
			assert.True(t, IsConfigurationError(err))
		})
	}
}

func TestValidateCanceledContext(t *testing.T) {
	r, _ := newTestRecipe()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := r.Validate(ctx, Settings{Compiler: Compiler{Name: "gcc", Version: "13"}})
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrCodeCanceled))
}

func TestKnownCompilers(t *testing.T) {
	got := KnownCompilers()
	assert.Equal(t, []string{"Visual Studio", "apple-clang", "clang", "gcc", "msvc"}, got)
}
