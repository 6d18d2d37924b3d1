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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseVersion(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		components []int
		extras     string
		wantErr    error
	}{
		{name: "major only", input: "5", components: []int{5}},
		{name: "msvc toolset", input: "190", components: []int{190}},
		{name: "major minor", input: "6.3", components: []int{6, 3}},
		{name: "v prefix", input: "v1.83.0", components: []int{1, 83, 0}},
		{name: "four components", input: "19.29.30133.0", components: []int{19, 29, 30133, 0}},
		{name: "prerelease", input: "15.0.0-beta", components: []int{15, 0, 0}, extras: "-beta"},
		{name: "build metadata", input: "1.2.3+local", components: []int{1, 2, 3}, extras: "+local"},
		{name: "dotted extras", input: "1.28.0-gke.1337000", components: []int{1, 28, 0}, extras: "-gke.1337000"},
		{name: "whitespace trimmed", input: "  7  ", components: []int{7}},
		{name: "empty", input: "", wantErr: ErrEmptyVersion},
		{name: "blank", input: "   ", wantErr: ErrEmptyVersion},
		{name: "trailing dot", input: "1.", wantErr: ErrNonNumeric},
		{name: "double dot", input: "1..2", wantErr: ErrNonNumeric},
		{name: "letters", input: "a.b", wantErr: ErrNonNumeric},
		{name: "negative", input: "-1", wantErr: ErrNegativeComponent},
		{name: "negative minor", input: "1.-2", wantErr: ErrNegativeComponent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := ParseVersion(tt.input)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.wantErr), "got %v, want %v", err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.components, v.Components)
			assert.Equal(t, tt.extras, v.Extras)
		})
	}
}

func TestVersionAccessors(t *testing.T) {
	v := MustParseVersion("14.2")
	assert.Equal(t, 14, v.Major())
	assert.Equal(t, 2, v.Minor())
	assert.Equal(t, 0, v.Patch())
	assert.Equal(t, "14.2", v.String())
}

func TestVersionCompare(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"5", "6", -1},
		{"7", "6", 1},
		{"6", "6", 0},
		{"6", "6.0.0", 0},
		{"6.0.1", "6", 1},
		{"5.4.0", "6", -1},
		{"189", "190", -1},
		{"98", "99", -1},
		{"1.83.0", "1.84", -1},
		{"15.0.0-beta", "15.0.0", -1},
		{"15.0.0-alpha", "15.0.0-beta", -1},
		{"1.2.3+local", "1.2.3", 0},
	}

	for _, tt := range tests {
		t.Run(tt.a+"_vs_"+tt.b, func(t *testing.T) {
			a, b := MustParseVersion(tt.a), MustParseVersion(tt.b)
			assert.Equal(t, tt.want, a.Compare(b))
			assert.Equal(t, -tt.want, b.Compare(a))
			assert.Equal(t, tt.want < 0, a.LessThan(b))
			assert.Equal(t, tt.want >= 0, a.EqualsOrNewer(b))
			assert.Equal(t, tt.want == 0, a.Equals(b))
		})
	}
}

func TestMustParseVersionPanics(t *testing.T) {
	assert.Panics(t, func() { MustParseVersion("not-a-version") })
}

func TestIsValid(t *testing.T) {
	assert.True(t, NewVersion(1).IsValid())
	assert.False(t, Version{}.IsValid())
	assert.False(t, Version{Components: []int{1, -1}}.IsValid())
}
