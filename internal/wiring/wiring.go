// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/pymod2pkg/internal/adapters/config"
	_ "go.trai.ch/pymod2pkg/internal/adapters/detector"
	_ "go.trai.ch/pymod2pkg/internal/adapters/logger"
	_ "go.trai.ch/pymod2pkg/internal/adapters/requirements"
	// Register app nodes.
	_ "go.trai.ch/pymod2pkg/internal/app"
)
