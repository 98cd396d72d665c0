// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/famsnap/internal/adapters/cas"
	_ "go.trai.ch/famsnap/internal/adapters/config"
	_ "go.trai.ch/famsnap/internal/adapters/fs"
	_ "go.trai.ch/famsnap/internal/adapters/gedcom"
	_ "go.trai.ch/famsnap/internal/adapters/logger"
	_ "go.trai.ch/famsnap/internal/adapters/selection"
	_ "go.trai.ch/famsnap/internal/adapters/sqlite"
	// Register app nodes.
	_ "go.trai.ch/famsnap/internal/app"
)
