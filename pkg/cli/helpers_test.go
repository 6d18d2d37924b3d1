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

package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const fixtureConfigHeader = `#ifndef BOOST_SCOPE_DETAIL_CONFIG_HPP_INCLUDED_
#define BOOST_SCOPE_DETAIL_CONFIG_HPP_INCLUDED_

#include <boost/config.hpp>

#endif // BOOST_SCOPE_DETAIL_CONFIG_HPP_INCLUDED_
`

const fixturePatch = "diff --git a/include/boost/scope/detail/config.hpp b/include/boost/scope/detail/config.hpp\n" +
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
	" #endif // BOOST_SCOPE_DETAIL_CONFIG_HPP_INCLUDED_\n"

// newFixture writes a minimal Boost.Scope checkout and returns its root.
// The recipe folder is root/conan.
func newFixture(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	writeFixtureFiles(t, root, map[string]string{
		"LICENSE":                               "Boost Software License - Version 1.0\n",
		"README.md":                             "# Boost.Scope\n",
		"include/boost/scope/scope_exit.hpp":    "#pragma once\n",
		"include/boost/scope/detail/config.hpp": fixtureConfigHeader,
		"conan/conanfile.py":                    "# recipe\n",
		"conan/1.83_compat.patch":               fixturePatch,
	})
	return root
}

func writeFixtureFiles(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for rel, content := range files {
		p := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	}
}

// runCLI runs the root command with args and returns what it wrote.
func runCLI(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.Writer = &out
	cmd.ErrWriter = &errOut
	err = cmd.Run(context.Background(), append([]string{name}, args...))
	return out.String(), errOut.String(), err
}
