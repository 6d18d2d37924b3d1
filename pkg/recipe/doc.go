/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

// Package recipe implements the Boost.Scope package recipe.
//
// A Recipe exposes the hooks a package manager invokes, in order:
//
//	validate        Validate checks the compiler and C++ standard
//	export_sources  ExportSources copies LICENSE, include/** and the patch
//	build           Build applies the Boost 1.83 compatibility patch
//	package         Package copies include/** and LICENSE
//	package_id      PackageID clears the configuration from the identity
//
// Validation accepts an explicitly configured standard of C++11 or newer.
// Without one, the compiler version is compared with a table of the first
// versions that default to C++11. Compilers missing from the table pass
// with a warning.
//
// Create runs every hook against a work directory:
//
//	r := recipe.New(recipe.WithLogger(logger))
//	res, err := r.Create(ctx, recipe.CreateOptions{
//	    RecipeFolder: "conan",
//	    WorkDir:      "build",
//	    Settings: recipe.Settings{
//	        Compiler: recipe.Compiler{Name: "gcc", Version: "13"},
//	    },
//	})
//
// The package folder receives the headers, the license, conaninfo.yaml
// and checksums.txt.
//
// Errors are pkg/errors StructuredErrors: INVALID_CONFIGURATION for
// rejected settings, PATCH_FAILED for patches that do not apply, and
// NOT_FOUND for missing export sources.
package recipe
