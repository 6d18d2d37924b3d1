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
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Hook execution metrics
	hookDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "scopepkg_hook_duration_seconds",
			Help:    "Duration of recipe hook execution in seconds",
			Buckets: []float64{0.001, 0.01, 0.1, 0.5, 1, 5, 30},
		},
		[]string{"hook"},
	)
	hookFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "scopepkg_hook_failures_total",
			Help: "Total number of failed recipe hook executions",
		},
		[]string{"hook"},
	)

	// File staging metrics
	filesCopied = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "scopepkg_files_copied_total",
			Help: "Total number of files copied by recipe hooks",
		},
		[]string{"hook"},
	)
)
