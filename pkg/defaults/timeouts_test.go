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

import (
	"testing"
	"time"
)

func TestTimeoutConstants(t *testing.T) {
	tests := []struct {
		name     string
		timeout  time.Duration
		minValue time.Duration
		maxValue time.Duration
	}{
		// HTTP client timeouts
		{"HTTPClientTimeout", HTTPClientTimeout, 10 * time.Second, 60 * time.Second},
		{"HTTPConnectTimeout", HTTPConnectTimeout, 1 * time.Second, 15 * time.Second},
		{"HTTPTLSHandshakeTimeout", HTTPTLSHandshakeTimeout, 1 * time.Second, 30 * time.Second},
		{"HTTPKeepAlive", HTTPKeepAlive, 10 * time.Second, 120 * time.Second},

		// Registry timeouts
		{"RegistryPushTimeout", RegistryPushTimeout, 1 * time.Minute, 30 * time.Minute},
		{"RegistryResponseHeaderTimeout", RegistryResponseHeaderTimeout, 5 * time.Second, 2 * time.Minute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.timeout < tt.minValue {
				t.Errorf("%s (%v) is below minimum expected value (%v)", tt.name, tt.timeout, tt.minValue)
			}
			if tt.timeout > tt.maxValue {
				t.Errorf("%s (%v) exceeds maximum expected value (%v)", tt.name, tt.timeout, tt.maxValue)
			}
		})
	}
}

func TestTimeoutRelationships(t *testing.T) {
	if HTTPConnectTimeout >= HTTPClientTimeout {
		t.Errorf("HTTPConnectTimeout (%v) should be less than HTTPClientTimeout (%v)",
			HTTPConnectTimeout, HTTPClientTimeout)
	}
	if RegistryResponseHeaderTimeout >= RegistryPushTimeout {
		t.Errorf("RegistryResponseHeaderTimeout (%v) should be less than RegistryPushTimeout (%v)",
			RegistryResponseHeaderTimeout, RegistryPushTimeout)
	}
}

func TestLimits(t *testing.T) {
	if CopyConcurrency < 1 {
		t.Errorf("CopyConcurrency (%d) must be at least 1", CopyConcurrency)
	}
	if HTTPMaxBodySize < 1<<10 {
		t.Errorf("HTTPMaxBodySize (%d) is too small for a settings profile", HTTPMaxBodySize)
	}
}
