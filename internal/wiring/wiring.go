// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/responsive/internal/adapters/config"
	_ "go.trai.ch/responsive/internal/adapters/logger"
	_ "go.trai.ch/responsive/internal/adapters/telemetry"
	_ "go.trai.ch/responsive/internal/adapters/telemetry/progrock"
	_ "go.trai.ch/responsive/internal/adapters/terminal"
	// Register app nodes.
	_ "go.trai.ch/responsive/internal/app"
)
