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

// Package header provides the common document header for recipe tool output.
//
// Every document the tool writes (package info, validation and create
// results, recipe metadata) starts with a Kind, an APIVersion and a
// free-form Metadata map:
//
//	kind: PackageInfo
//	apiVersion: scope.boost.org/v1alpha1
//	metadata:
//	  timestamp: "2025-12-30T10:30:00Z"
//	  version: v1.0.0
//
// Usage:
//
//	var h header.Header
//	h.Init(header.KindPackageInfo, header.APIVersion, version)
package header
