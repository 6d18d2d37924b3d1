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

// Package oci publishes package folders to OCI registries with ORAS.
//
// A package folder is stored as a single reproducible gzip tar layer under
// an OCI 1.1 manifest whose artifact type is ArtifactType:
//
//	ref, err := oci.ParseOutputTarget("oci://ghcr.io/boostorg/boost_scope:1.0.0")
//	if err != nil {
//	    return err
//	}
//	res, err := oci.Push(ctx, oci.PushOptions{
//	    SourceDir: "build/package",
//	    Reference: ref,
//	})
//
// Registry credentials are read from the Docker configuration through the
// ORAS credentials package. PlainHTTP and InsecureTLS serve local test
// registries.
package oci
