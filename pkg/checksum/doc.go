/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

// Package checksum provides SHA256 checksum generation and verification for
// package folders.
//
// The create pipeline writes checksums.txt into every package folder; the
// verify command checks a folder against it.
//
// Usage:
//
//	files, err := checksum.CollectFiles(pkgDir)
//	if err != nil {
//	    return err
//	}
//	if err := checksum.GenerateChecksums(ctx, pkgDir, files); err != nil {
//	    return err
//	}
//
// The checksums.txt file format is compatible with sha256sum:
//
//	sha256sum -c checksums.txt
package checksum
