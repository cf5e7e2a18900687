package ports

import (
	"context"

	"go.trai.ch/pymod2pkg/internal/core/domain"
)

// ManifestReader reads requirements manifests.
//
//go:generate mockgen -source=manifest_reader.go -destination=mocks/mock_manifest_reader.go -package=mocks
type ManifestReader interface {
	// Read parses the requirements file at path.
	// A missing file yields an error wrapping domain.ErrManifestNotFound.
	Read(ctx context.Context, path string) (*domain.Manifest, error)
}
