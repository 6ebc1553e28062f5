// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/runx/internal/adapters/logger"
	_ "go.trai.ch/runx/internal/adapters/shell"
	_ "go.trai.ch/runx/internal/adapters/workspace"
	// Register app and engine nodes.
	_ "go.trai.ch/runx/internal/app"
	_ "go.trai.ch/runx/internal/engine/flags"
)
