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

package oci

import (
	"context"
	"crypto/tls"
	"fmt"
	"log/slog"
	"net/http"
	"path/filepath"

	ociv1 "github.com/opencontainers/image-spec/specs-go/v1"
	oras "oras.land/oras-go/v2"
	"oras.land/oras-go/v2/content/file"
	"oras.land/oras-go/v2/registry/remote"
	"oras.land/oras-go/v2/registry/remote/auth"
	"oras.land/oras-go/v2/registry/remote/credentials"

	"github.com/boostorg/scope/pkg/defaults"
	"github.com/boostorg/scope/pkg/errors"
)

// ArtifactType is the media type of published Boost.Scope packages.
const ArtifactType = "application/vnd.boost.scope.package"

// PushOptions configures the OCI push operation.
type PushOptions struct {
	// SourceDir is the package folder to publish.
	SourceDir string
	// Reference is the destination; its Tag is required.
	Reference *Reference
	// Annotations are added to the manifest.
	Annotations map[string]string
	// ReproducibleTimestamp, when set, is used as the created annotation
	// so repeated pushes of the same folder yield the same digest.
	ReproducibleTimestamp string
	// PlainHTTP uses HTTP instead of HTTPS for the registry connection.
	PlainHTTP bool
	// InsecureTLS skips TLS certificate verification.
	InsecureTLS bool
	// Target overrides the destination repository. When nil a remote
	// repository is built from Reference.
	Target oras.Target
	// Logger defaults to slog.Default().
	Logger *slog.Logger
}

// PushResult contains the result of a successful OCI push.
type PushResult struct {
	// Digest is the digest of the pushed manifest.
	Digest string `json:"digest" yaml:"digest"`
	// Reference is the image reference, registry/repository:tag.
	Reference string `json:"reference" yaml:"reference"`
	// Size is the manifest size in bytes.
	Size int64 `json:"size" yaml:"size"`
}

// Push publishes SourceDir as a single gzip tar layer under an OCI 1.1
// manifest of type ArtifactType.
func Push(ctx context.Context, opts PushOptions) (*PushResult, error) {
	if opts.Reference == nil || !opts.Reference.IsOCI {
		return nil, errors.New(errors.ErrCodeInvalidRequest, "an oci:// reference is required to push")
	}
	if opts.Reference.Tag == "" {
		return nil, errors.New(errors.ErrCodeInvalidRequest, "tag is required to push OCI artifact")
	}
	if err := ValidateRegistryReference(opts.Reference.Registry, opts.Reference.Repository); err != nil {
		return nil, err
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	absDir, err := filepath.Abs(opts.SourceDir)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, "failed to resolve source directory", err)
	}

	store, err := file.New(absDir)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, "failed to create file store", err)
	}
	defer func() { _ = store.Close() }()

	// Deterministic tar headers keep the layer digest stable.
	store.TarReproducible = true

	layer, err := store.Add(ctx, ".", ociv1.MediaTypeImageLayerGzip, absDir)
	if err != nil {
		return nil, errors.WrapWithContext(errors.ErrCodeNotFound, "failed to add package folder to store", err,
			map[string]any{"dir": absDir})
	}

	annotations := make(map[string]string, len(opts.Annotations)+1)
	for k, v := range opts.Annotations {
		annotations[k] = v
	}
	if opts.ReproducibleTimestamp != "" {
		annotations[ociv1.AnnotationCreated] = opts.ReproducibleTimestamp
	}

	manifest, err := oras.PackManifest(ctx, store, oras.PackManifestVersion1_1, ArtifactType, oras.PackManifestOptions{
		Layers:              []ociv1.Descriptor{layer},
		ManifestAnnotations: annotations,
	})
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, "failed to pack manifest", err)
	}

	tag := opts.Reference.Tag
	if err := store.Tag(ctx, manifest, tag); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, "failed to tag manifest in local store", err)
	}

	dst := opts.Target
	if dst == nil {
		repo, err := remote.NewRepository(fmt.Sprintf("%s/%s", opts.Reference.Registry, opts.Reference.Repository))
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidRequest, "failed to initialize remote repository", err)
		}
		repo.PlainHTTP = opts.PlainHTTP
		repo.Client = createAuthClient(opts.PlainHTTP, opts.InsecureTLS)
		dst = repo
	}

	logger.Info("pushing package",
		slog.String("reference", opts.Reference.ImageReference()),
		slog.String("layerDigest", layer.Digest.String()),
		slog.Int64("layerSize", layer.Size))

	pushCtx, cancel := context.WithTimeout(ctx, defaults.RegistryPushTimeout)
	defer cancel()

	desc, err := oras.Copy(pushCtx, store, tag, dst, tag, oras.DefaultCopyOptions)
	if err != nil {
		return nil, errors.WrapWithContext(errors.ErrCodeInternal, "failed to push artifact to registry", err,
			map[string]any{"reference": opts.Reference.ImageReference()})
	}

	return &PushResult{
		Digest:    desc.Digest.String(),
		Reference: opts.Reference.ImageReference(),
		Size:      desc.Size,
	}, nil
}

// createAuthClient returns a registry client using Docker credentials when
// they are available.
func createAuthClient(plainHTTP, insecureTLS bool) *auth.Client {
	credStore, err := credentials.NewStoreFromDocker(credentials.StoreOptions{})
	if err != nil {
		slog.Debug("docker credentials unavailable", "error", err)
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.ResponseHeaderTimeout = defaults.RegistryResponseHeaderTimeout
	if !plainHTTP && insecureTLS {
		if transport.TLSClientConfig == nil {
			transport.TLSClientConfig = &tls.Config{} //nolint:gosec
		}
		transport.TLSClientConfig.InsecureSkipVerify = true //nolint:gosec
	}

	client := &auth.Client{
		Client: &http.Client{Transport: transport},
		Cache:  auth.NewCache(),
	}
	if credStore != nil {
		client.Credential = credentials.Credential(credStore)
	}
	return client
}
