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

// Package defaults provides centralized configuration constants for scopepkg.
//
// This package defines concurrency limits, timeouts and size bounds used across
// the codebase, so tuning happens in one place.
//
// # Categories
//
//   - Recipe: file staging concurrency for the export, source and package hooks
//   - HTTP client: fetching remote settings profiles
//   - Registry: publishing packages as OCI artifacts
//
// # Usage
//
//	g.SetLimit(defaults.CopyConcurrency)
//
//	ctx, cancel := context.WithTimeout(ctx, defaults.RegistryPushTimeout)
//	defer cancel()
//
// Timeouts are upper bounds; callers respect shorter parent context deadlines.
package defaults
