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
	"crypto/sha1" //nolint:gosec // package ids are content addresses, not security boundaries
	"encoding/hex"
	"maps"
	"slices"
	"strings"

	"github.com/boostorg/scope/pkg/header"
)

// Info is the identity record of a package binary. Two builds with equal
// Info share a package id.
type Info struct {
	Settings map[string]string `json:"settings" yaml:"settings"`
	Options  map[string]string `json:"options" yaml:"options"`
	Requires []string          `json:"requires" yaml:"requires"`
}

// NewInfo derives the default identity record from the build settings and
// the declared requirements.
func NewInfo(s Settings, m Metadata) *Info {
	info := &Info{
		Settings: s.Values(),
		Options:  map[string]string{},
		Requires: make([]string, 0, len(m.Requires)),
	}
	for _, req := range m.Requires {
		info.Requires = append(info.Requires, req.String())
	}
	return info
}

// Clear removes every settings, options and requirements entry.
func (i *Info) Clear() {
	i.Settings = map[string]string{}
	i.Options = map[string]string{}
	i.Requires = []string{}
}

// IsEmpty reports whether the record carries no identity fields.
func (i *Info) IsEmpty() bool {
	return len(i.Settings) == 0 && len(i.Options) == 0 && len(i.Requires) == 0
}

// Text renders the canonical, sorted form hashed by ID.
func (i *Info) Text() string {
	var b strings.Builder
	writeSection := func(name string, m map[string]string) {
		b.WriteString("[" + name + "]\n")
		for _, k := range slices.Sorted(maps.Keys(m)) {
			b.WriteString(k + "=" + m[k] + "\n")
		}
	}
	writeSection("settings", i.Settings)
	writeSection("options", i.Options)
	b.WriteString("[requires]\n")
	reqs := slices.Clone(i.Requires)
	slices.Sort(reqs)
	for _, r := range reqs {
		b.WriteString(r + "\n")
	}
	return b.String()
}

// ID returns the package id: the hex SHA-1 of Text.
func (i *Info) ID() string {
	sum := sha1.Sum([]byte(i.Text())) //nolint:gosec
	return hex.EncodeToString(sum[:])
}

// PackageInfo is the document written next to a package as conaninfo.yaml.
type PackageInfo struct {
	header.Header `json:",inline" yaml:",inline"`

	Reference string `json:"reference" yaml:"reference"`
	PackageID string `json:"packageId" yaml:"packageId"`
	Info      *Info  `json:"info" yaml:"info"`
}

// NewPackageInfo wraps info into a document stamped with toolVersion.
func NewPackageInfo(m Metadata, info *Info, toolVersion string) *PackageInfo {
	doc := &PackageInfo{
		Reference: m.Reference(),
		PackageID: info.ID(),
		Info:      info,
	}
	doc.Init(header.KindPackageInfo, header.APIVersion, toolVersion)
	return doc
}
