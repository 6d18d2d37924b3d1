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
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/boostorg/scope/pkg/logging"
)

const testConfigHeader = `#ifndef BOOST_SCOPE_DETAIL_CONFIG_HPP_INCLUDED_
#define BOOST_SCOPE_DETAIL_CONFIG_HPP_INCLUDED_

#include <boost/config.hpp>

#endif // BOOST_SCOPE_DETAIL_CONFIG_HPP_INCLUDED_
`

const testPatchedConfigHeader = `#ifndef BOOST_SCOPE_DETAIL_CONFIG_HPP_INCLUDED_
#define BOOST_SCOPE_DETAIL_CONFIG_HPP_INCLUDED_

#include <boost/config.hpp>
#include <boost/scope/detail/compat_1_83.hpp>

#endif // BOOST_SCOPE_DETAIL_CONFIG_HPP_INCLUDED_
`

const testCompatHeader = "#pragma once\n#define BOOST_SCOPE_COMPAT_1_83 1\n"

const testPatch = "diff --git a/include/boost/scope/detail/config.hpp b/include/boost/scope/detail/config.hpp\n" +
	"index 1111111..2222222 100644\n" +
	"--- a/include/boost/scope/detail/config.hpp\n" +
	"+++ b/include/boost/scope/detail/config.hpp\n" +
	"@@ -1,6 +1,7 @@\n" +
	" #ifndef BOOST_SCOPE_DETAIL_CONFIG_HPP_INCLUDED_\n" +
	" #define BOOST_SCOPE_DETAIL_CONFIG_HPP_INCLUDED_\n" +
	" \n" +
	" #include <boost/config.hpp>\n" +
	"+#include <boost/scope/detail/compat_1_83.hpp>\n" +
	" \n" +
	" #endif // BOOST_SCOPE_DETAIL_CONFIG_HPP_INCLUDED_\n" +
	"diff --git a/include/boost/scope/detail/compat_1_83.hpp b/include/boost/scope/detail/compat_1_83.hpp\n" +
	"new file mode 100644\n" +
	"index 0000000..3333333\n" +
	"--- /dev/null\n" +
	"+++ b/include/boost/scope/detail/compat_1_83.hpp\n" +
	"@@ -0,0 +1,2 @@\n" +
	"+#pragma once\n" +
	"+#define BOOST_SCOPE_COMPAT_1_83 1\n"

// testSources lists the files of the fixture tree relative to its root.
var testSources = map[string]string{
	"LICENSE":                                 "Boost Software License - Version 1.0 - August 17th, 2003\n",
	"README.md":                               "# Boost.Scope\n",
	"include/boost/scope/scope_exit.hpp":      "#pragma once\n// scope_exit\n",
	"include/boost/scope/unique_resource.hpp": "#pragma once\n// unique_resource\n",
	"include/boost/scope/detail/config.hpp":   testConfigHeader,
	"test/run/scope_exit.cpp":                 "int main() {}\n",
	"conan/conanfile.py":                      "# recipe\n",
	CompatPatch:                               testPatch,
}

// newSourceTree writes the fixture tree and returns its root and the
// recipe folder inside it.
func newSourceTree(t *testing.T) (root, recipeFolder string) {
	t.Helper()
	root = t.TempDir()
	writeFiles(t, root, testSources)
	return root, filepath.Join(root, "conan")
}

func writeFiles(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for rel, content := range files {
		p := filepath.Join(root, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
			t.Fatalf("failed to create dir for %s: %v", rel, err)
		}
		if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
			t.Fatalf("failed to write %s: %v", rel, err)
		}
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read %s: %v", path, err)
	}
	return string(data)
}

// newTestRecipe returns a recipe logging into the returned buffer.
func newTestRecipe(opts ...Option) (*Recipe, *bytes.Buffer) {
	var buf bytes.Buffer
	logger := logging.NewStructuredLoggerWithWriter(&buf, "scopepkg", "test", "debug")
	return New(append([]Option{WithLogger(logger)}, opts...)...), &buf
}

