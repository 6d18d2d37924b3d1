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

// Package serializer writes result documents as JSON, YAML or a flattened
// table, and reads JSON or YAML documents back.
//
// Writing:
//
//	w := serializer.NewFileWriterOrStdout(serializer.FormatYAML, outPath)
//	defer w.Close()
//	if err := w.Serialize(ctx, result); err != nil {
//		return err
//	}
//
// Reading a settings profile from a file or an http(s) URL:
//
//	s, err := serializer.FromFile[recipe.Settings](ctx, "gcc13.yaml")
//
// The table format flattens nested values into dotted keys named after
// their yaml tags. It cannot be read back.
package serializer
