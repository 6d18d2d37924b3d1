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

package defaults

import "time"

// Recipe hook defaults.
const (
	// CopyConcurrency is the number of files copied in parallel by a hook.
	CopyConcurrency = 8
)

// HTTP client timeouts for remote settings profiles.
const (
	// HTTPClientTimeout is the total timeout for a profile request.
	HTTPClientTimeout = 30 * time.Second

	// HTTPConnectTimeout is the timeout for establishing connections.
	HTTPConnectTimeout = 5 * time.Second

	// HTTPTLSHandshakeTimeout is the timeout for the TLS handshake.
	HTTPTLSHandshakeTimeout = 10 * time.Second

	// HTTPKeepAlive is the keep-alive duration for connections.
	HTTPKeepAlive = 30 * time.Second

	// HTTPMaxBodySize bounds remote profile documents, in bytes.
	HTTPMaxBodySize = 4 << 20
)

// Registry timeouts for OCI publication.
const (
	// RegistryPushTimeout bounds copying a package to a registry.
	RegistryPushTimeout = 5 * time.Minute

	// RegistryResponseHeaderTimeout is the timeout for registry response headers.
	RegistryResponseHeaderTimeout = 30 * time.Second
)
