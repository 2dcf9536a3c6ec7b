// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/embedstr/internal/adapters/config"
	_ "go.trai.ch/embedstr/internal/adapters/fs"
	_ "go.trai.ch/embedstr/internal/adapters/logger"
	_ "go.trai.ch/embedstr/internal/adapters/telemetry/progrock"
	// Register app and engine nodes.
	_ "go.trai.ch/embedstr/internal/app"
	_ "go.trai.ch/embedstr/internal/engine/scanner"
)
