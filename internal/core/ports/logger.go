// Package ports defines the interfaces the application depends on.
package ports

import "go.trai.ch/pymod2pkg/internal/core/domain"

// Logger defines the interface for logging.
//
//go:generate mockgen -source=logger.go -destination=mocks/mock_logger.go -package=mocks
type Logger interface {
	// Info logs an informational message.
	Info(msg string)
	// Warn logs a warning about loc. A zero Location logs msg alone.
	Warn(loc domain.Location, msg string)
	// Error logs an error with its cause chain.
	Error(err error)
}
