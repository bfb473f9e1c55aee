package io

import (
	"github.com/ecopia-map/export3ds/internal/exporter"
)

// Contains the minimal data needed to export a single scene file into a 3ds file
type WorkUnit struct {
	InputPath  string
	OutputPath string
	Opts       *exporter.Options
}
