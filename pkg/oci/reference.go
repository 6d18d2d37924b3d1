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
	"fmt"
	"strings"

	"github.com/distribution/reference"

	"github.com/boostorg/scope/pkg/errors"
)

// URIScheme is the URI scheme for OCI registry targets, e.g.
// "oci://ghcr.io/boostorg/boost_scope:1.0.0".
const URIScheme = "oci://"

// Reference is a parsed output target: either an OCI registry reference or
// a local directory path.
type Reference struct {
	// IsOCI is true for oci:// targets.
	IsOCI bool
	// Registry is the registry host, e.g. "ghcr.io" or "localhost:5000".
	Registry string
	// Repository is the repository path, e.g. "boostorg/boost_scope".
	Repository string
	// Tag is empty when the target carries none; callers apply a default.
	Tag string
	// LocalPath is set for non-OCI targets.
	LocalPath string
}

// ParseOutputTarget parses an "oci://registry/repository[:tag]" URI. Any
// other string is treated as a local directory.
func ParseOutputTarget(target string) (*Reference, error) {
	if !strings.HasPrefix(target, URIScheme) {
		return &Reference{LocalPath: target}, nil
	}

	ref, err := reference.ParseNormalizedNamed(strings.TrimPrefix(target, URIScheme))
	if err != nil {
		return nil, errors.WrapWithContext(errors.ErrCodeInvalidRequest, "invalid OCI reference", err,
			map[string]any{"target": target})
	}
	if _, ok := ref.(reference.Digested); ok {
		return nil, errors.NewWithContext(errors.ErrCodeInvalidRequest, "OCI target must not carry a digest",
			map[string]any{"target": target})
	}

	out := &Reference{
		IsOCI:      true,
		Registry:   reference.Domain(ref),
		Repository: reference.Path(ref),
	}
	if tagged, ok := ref.(reference.Tagged); ok {
		out.Tag = tagged.Tag()
	}
	return out, nil
}

// ValidateRegistryReference checks that registry and repository form a
// valid image name. A leading http:// or https:// on registry is ignored.
func ValidateRegistryReference(registry, repository string) error {
	name := fmt.Sprintf("%s/%s", stripProtocol(registry), repository)
	ref, err := reference.ParseNormalizedNamed(name)
	if err != nil {
		return errors.WrapWithContext(errors.ErrCodeInvalidRequest, "invalid registry reference", err,
			map[string]any{"registry": registry, "repository": repository})
	}
	if _, ok := ref.(reference.NamedTagged); ok {
		return errors.NewWithContext(errors.ErrCodeInvalidRequest, "repository must not carry a tag",
			map[string]any{"repository": repository})
	}
	return nil
}

// String returns the oci:// form of the reference, or the local path.
func (r *Reference) String() string {
	if !r.IsOCI {
		return r.LocalPath
	}
	return URIScheme + r.ImageReference()
}

// ImageReference returns "registry/repository[:tag]", or an empty string
// for local paths.
func (r *Reference) ImageReference() string {
	if !r.IsOCI {
		return ""
	}
	if r.Tag == "" {
		return fmt.Sprintf("%s/%s", r.Registry, r.Repository)
	}
	return fmt.Sprintf("%s/%s:%s", r.Registry, r.Repository, r.Tag)
}

// WithTag returns a copy of the reference with tag set. Local paths are
// returned unchanged.
func (r *Reference) WithTag(tag string) *Reference {
	if !r.IsOCI {
		return r
	}
	out := *r
	out.Tag = tag
	return &out
}

// stripProtocol removes an http:// or https:// prefix from a registry URL.
func stripProtocol(registry string) string {
	registry = strings.TrimPrefix(registry, "https://")
	registry = strings.TrimPrefix(registry, "http://")
	return registry
}
