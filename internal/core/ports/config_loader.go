package ports

import "go.trai.ch/pymod2pkg/internal/core/domain"

// ConfigLoader defines the interface for loading user configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load walks up from cwd to find the configuration file and reads it.
	// It returns an empty configuration if no file is found.
	Load(cwd string) (*domain.Config, error)

	// LoadFile reads the configuration file at path.
	LoadFile(path string) (*domain.Config, error)
}
