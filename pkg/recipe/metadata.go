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
	"strings"

	"github.com/boostorg/scope/pkg/errors"
	"github.com/boostorg/scope/pkg/version"
)

// Declared package metadata.
const (
	PackageName    = "boost_scope"
	PackageVersion = "1.0.0"
	PackageLicense = "BSL-1.0"
	PackageURL     = "https://github.com/Lastique/scope"

	// RequiredOrchestratorVersion is the oldest package manager release the
	// recipe supports.
	RequiredOrchestratorVersion = ">=1.53.0"

	// BoostRequirement is the upstream dependency and its accepted range.
	BoostRequirement = "boost/[>=1.83.0]"
)

// PackageDescription is the one-line summary shown by package indexes.
const PackageDescription = "Boost.Scope provides a number of scope guard utilities described " +
	"in C++ Extensions for Library Fundamentals, Version 3"

// Requirement is a dependency reference of the form "name/[range]" or
// "name/version".
type Requirement struct {
	Name  string `json:"name" yaml:"name"`
	Range string `json:"range" yaml:"range"`
}

// ParseRequirement splits a dependency reference into name and version range.
func ParseRequirement(ref string) (Requirement, error) {
	name, rng, ok := strings.Cut(strings.TrimSpace(ref), "/")
	if !ok || name == "" || rng == "" {
		return Requirement{}, errors.New(errors.ErrCodeInvalidRequest,
			fmt.Sprintf("invalid requirement reference %q: expected name/range", ref))
	}
	if _, err := version.ParseConstraint(rng); err != nil {
		return Requirement{}, errors.Wrap(errors.ErrCodeInvalidRequest,
			fmt.Sprintf("invalid version range in requirement %q", ref), err)
	}
	return Requirement{Name: name, Range: rng}, nil
}

// String returns the reference form, e.g. "boost/[>=1.83.0]".
func (r Requirement) String() string {
	return r.Name + "/" + r.Range
}

// SatisfiedBy reports whether the resolved dependency version v falls
// within the requirement's range.
func (r Requirement) SatisfiedBy(v string) (bool, error) {
	c, err := version.ParseConstraint(r.Range)
	if err != nil {
		return false, errors.Wrap(errors.ErrCodeInvalidRequest, "invalid requirement range", err)
	}
	resolved, err := version.ParseVersion(v)
	if err != nil {
		return false, errors.Wrap(errors.ErrCodeInvalidRequest,
			fmt.Sprintf("invalid %s version %q", r.Name, v), err)
	}
	return c.Satisfied(resolved), nil
}

// Metadata is the static, non-behavioral part of the recipe.
type Metadata struct {
	Name                        string        `json:"name" yaml:"name"`
	Version                     string        `json:"version" yaml:"version"`
	Description                 string        `json:"description" yaml:"description"`
	License                     string        `json:"license" yaml:"license"`
	URL                         string        `json:"url" yaml:"url"`
	Homepage                    string        `json:"homepage" yaml:"homepage"`
	Topics                      []string      `json:"topics" yaml:"topics"`
	Settings                    []string      `json:"settings" yaml:"settings"`
	Requires                    []Requirement `json:"requires" yaml:"requires"`
	RequiredOrchestratorVersion string        `json:"requiredOrchestratorVersion" yaml:"requiredOrchestratorVersion"`
}

// DefaultMetadata returns the metadata declared for Boost.Scope.
func DefaultMetadata() Metadata {
	return Metadata{
		Name:                        PackageName,
		Version:                     PackageVersion,
		Description:                 PackageDescription,
		License:                     PackageLicense,
		URL:                         PackageURL,
		Homepage:                    PackageURL,
		Topics:                      []string{"cpp"},
		Settings:                    []string{SettingCompiler, SettingBuildType},
		Requires:                    []Requirement{{Name: "boost", Range: "[>=1.83.0]"}},
		RequiredOrchestratorVersion: RequiredOrchestratorVersion,
	}
}

// Reference returns the "name/version" reference of the package.
func (m Metadata) Reference() string {
	return m.Name + "/" + m.Version
}

// CheckOrchestrator fails with a configuration error when the package
// manager version v is older than RequiredOrchestratorVersion.
// An empty RequiredOrchestratorVersion accepts any version.
func (m Metadata) CheckOrchestrator(v string) error {
	if m.RequiredOrchestratorVersion == "" {
		return nil
	}
	c, err := version.ParseConstraint(m.RequiredOrchestratorVersion)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, "invalid required orchestrator version", err)
	}
	got, err := version.ParseVersion(v)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfiguration,
			fmt.Sprintf("invalid orchestrator version %q", v), err)
	}
	if !c.Satisfied(got) {
		return errors.NewWithContext(errors.ErrCodeInvalidConfiguration,
			fmt.Sprintf("%s requires orchestrator version %s, got %s", m.Reference(), m.RequiredOrchestratorVersion, v),
			map[string]any{"required": m.RequiredOrchestratorVersion, "actual": v})
	}
	return nil
}
