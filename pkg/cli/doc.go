// Package cli implements the scopepkg command-line interface for the Boost.Scope package recipe.
//
// # Overview
//
// scopepkg exposes each recipe hook as a subcommand so a package manager, a CI job or a
// developer can run them one at a time, and provides a create command that runs every hook
// in the order the package manager would.
//
// # Commands
//
// validate - Check compiler settings:
//
//	scopepkg validate --compiler gcc --compiler-version 13 [--cppstd 17]
//
// Fails when the settings cannot build Boost.Scope. Compilers missing from the minimum
// version table pass with a warning.
//
// export, build, package - Run a single hook:
//
//	scopepkg export --recipe-folder conan --dest build/export
//	scopepkg build --source build/export
//	scopepkg package --source build/export --dest build/package
//
// id - Print the package identity:
//
//	scopepkg id --compiler msvc --compiler-version 193
//
// create - Run every hook into a work directory, optionally publishing the result:
//
//	scopepkg create --profile gcc13.yaml --work-dir build [--push oci://ghcr.io/org/boost_scope]
//
// verify - Check a package folder against its checksums.txt:
//
//	scopepkg verify --dir build/package
//
// info - Print the recipe metadata, or the conaninfo.yaml of a package:
//
//	scopepkg info [--package build/package]
//
// # Output Formats
//
// Result documents are written to stdout, or to --output, as yaml (default), json or table.
// Logs are written to stderr as JSON.
//
// # Environment Variables
//
//	LOG_LEVEL                      Set logging verbosity (debug, info, warn, error)
//	SCOPEPKG_PROFILE               Settings profile path or URL
//	SCOPEPKG_COMPILER              Compiler family
//	SCOPEPKG_COMPILER_VERSION      Compiler version
//	SCOPEPKG_CPPSTD                C++ standard
//	SCOPEPKG_BUILD_TYPE            Build type
//	SCOPEPKG_ORCHESTRATOR_VERSION  Package manager version checked by create
//
// Flags take precedence over environment variables, which take precedence over the profile.
//
// # Exit Codes
//
//	0  Success
//	1  General error (invalid arguments, validation or hook failure)
//	2  Context canceled or timeout
//
// # Architecture
//
// The CLI uses the urfave/cli/v3 framework and delegates to specialized packages:
//   - pkg/recipe - Recipe hooks and the create pipeline
//   - pkg/checksum - checksums.txt generation and verification
//   - pkg/oci - OCI artifact publication
//   - pkg/serializer - Output formatting and profile loading
//   - pkg/logging - Structured logging
//
// Version information is embedded at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/boostorg/scope/pkg/cli.version=1.0.0'"
package cli
