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

package oci

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOutputTarget(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantIsOCI bool
		wantReg   string
		wantRepo  string
		wantTag   string
		wantDir   string
		wantErr   bool
	}{
		{
			name:    "local directory",
			input:   "./out",
			wantDir: "./out",
		},
		{
			name:      "OCI with tag",
			input:     "oci://ghcr.io/boostorg/boost_scope:1.0.0",
			wantIsOCI: true,
			wantReg:   "ghcr.io",
			wantRepo:  "boostorg/boost_scope",
			wantTag:   "1.0.0",
		},
		{
			name:      "OCI without tag",
			input:     "oci://ghcr.io/boostorg/boost_scope",
			wantIsOCI: true,
			wantReg:   "ghcr.io",
			wantRepo:  "boostorg/boost_scope",
		},
		{
			name:      "OCI with port",
			input:     "oci://localhost:5000/conan/boost_scope:dev",
			wantIsOCI: true,
			wantReg:   "localhost:5000",
			wantRepo:  "conan/boost_scope",
			wantTag:   "dev",
		},
		{
			name:      "OCI short name normalizes to docker hub",
			input:     "oci://boost_scope:1.0.0",
			wantIsOCI: true,
			wantReg:   "docker.io",
			wantRepo:  "library/boost_scope",
			wantTag:   "1.0.0",
		},
		{
			name:    "OCI empty",
			input:   "oci://",
			wantErr: true,
		},
		{
			name:    "OCI uppercase",
			input:   "oci://ghcr.io/BoostOrg/Scope:v1",
			wantErr: true,
		},
		{
			name:    "OCI digest",
			input:   "oci://ghcr.io/boostorg/scope@sha256:" + "0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ref, err := ParseOutputTarget(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantIsOCI, ref.IsOCI)
			assert.Equal(t, tt.wantReg, ref.Registry)
			assert.Equal(t, tt.wantRepo, ref.Repository)
			assert.Equal(t, tt.wantTag, ref.Tag)
			assert.Equal(t, tt.wantDir, ref.LocalPath)
		})
	}
}

func TestValidateRegistryReference(t *testing.T) {
	tests := []struct {
		name       string
		registry   string
		repository string
		wantErr    bool
	}{
		{name: "ghcr", registry: "ghcr.io", repository: "boostorg/boost_scope"},
		{name: "localhost with port", registry: "localhost:5000", repository: "test/repo"},
		{name: "https prefix", registry: "https://ghcr.io", repository: "boostorg/boost_scope"},
		{name: "nested repository", registry: "registry.example.com:5000", repository: "org/team/project"},
		{name: "spaces", registry: "invalid registry", repository: "test/repo", wantErr: true},
		{name: "uppercase", registry: "ghcr.io", repository: "Boost/Scope", wantErr: true},
		{name: "special chars", registry: "ghcr.io", repository: "test/repo@latest", wantErr: true},
		{name: "tag in repository", registry: "ghcr.io", repository: "test/repo:v1", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRegistryReference(tt.registry, tt.repository)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestReference_Strings(t *testing.T) {
	ref := &Reference{IsOCI: true, Registry: "ghcr.io", Repository: "boostorg/boost_scope"}
	assert.Equal(t, "oci://ghcr.io/boostorg/boost_scope", ref.String())
	assert.Equal(t, "ghcr.io/boostorg/boost_scope", ref.ImageReference())

	tagged := ref.WithTag("1.0.0")
	assert.Equal(t, "oci://ghcr.io/boostorg/boost_scope:1.0.0", tagged.String())
	assert.Empty(t, ref.Tag, "WithTag must not modify the receiver")

	local := &Reference{LocalPath: "/tmp/out"}
	assert.Equal(t, "/tmp/out", local.String())
	assert.Empty(t, local.ImageReference())
	assert.Same(t, local, local.WithTag("x"))
}

func TestStripProtocol(t *testing.T) {
	assert.Equal(t, "ghcr.io", stripProtocol("https://ghcr.io"))
	assert.Equal(t, "localhost:5000", stripProtocol("http://localhost:5000"))
	assert.Equal(t, "ghcr.io", stripProtocol("ghcr.io"))
}
