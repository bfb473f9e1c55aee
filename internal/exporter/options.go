package exporter

import (
	"strings"

	"github.com/ecopia-map/export3ds/internal/mesh"
)

type UpAxis string

const (
	// Input coordinates are already Z-up, as 3DS expects
	UpAxisZ UpAxis = "Z"

	// Input coordinates are Y-up (Wavefront convention) and are rotated to Z-up while reading
	UpAxisY UpAxis = "Y"
)

func (a UpAxis) String() string {
	if a == UpAxisY {
		return "Y"
	} else if a == UpAxisZ {
		return "Z"
	}
	return ""
}

func ParseUpAxis(value string) UpAxis {
	normalizedValue := strings.Trim(strings.ToUpper(value), " ")
	if normalizedValue == "Y" {
		return UpAxisY
	} else if normalizedValue == "Z" {
		return UpAxisZ
	}
	return ""
}

// Contains the options needed for an export run
type Options struct {
	Input            string  // Input scene file/folder
	Output           string  // Output 3ds file, or folder when FolderProcessing is enabled
	FolderProcessing bool    // Enables the processing of all scene files in folder
	Recursive        bool    // Recursive lookup of scene files in subfolders
	UpAxis           UpAxis  // Up axis of the input coordinates
	ZOffset          float64 // Offset to add to the Z coordinate of every vertex, after axis conversion
	Compress         bool    // Writes gzip compressed .3ds.gz files

	Mesh mesh.Settings
}

func DefaultOptions() *Options {
	return &Options{
		UpAxis: UpAxisZ,
		Mesh:   mesh.DefaultSettings(),
	}
}

func (opt *Options) Copy() *Options {
	newOpt := *opt
	return &newOpt
}
