package ports

import "go.trai.ch/pymod2pkg/internal/core/domain"

// Renderer writes translated manifests for build tool consumption.
//
//go:generate mockgen -source=renderer.go -destination=mocks/mock_renderer.go -package=mocks
type Renderer interface {
	// RenderManifest writes the packages of one manifest.
	RenderManifest(report domain.ManifestReport) error
}
