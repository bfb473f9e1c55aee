package tools

import (
	"os"
	"path/filepath"

	"github.com/ecopia-map/export3ds/internal/exporter"
	"github.com/ecopia-map/export3ds/internal/reader"
)

type FileFinder interface {
	GetSceneFilesToProcess(opts *exporter.Options) ([]string, error)
}

type StandardFileFinder struct{}

func NewStandardFileFinder() FileFinder {
	return &StandardFileFinder{}
}

func (f *StandardFileFinder) GetSceneFilesToProcess(opts *exporter.Options) ([]string, error) {
	// If folder processing is not enabled then the scene file is given by -input flag, otherwise look for scene files
	// in -input folder eventually excluding nested folders if Recursive flag is disabled
	if !opts.FolderProcessing {
		return []string{opts.Input}, nil
	}

	return f.getSceneFilesFromInputFolder(opts)
}

func (f *StandardFileFinder) getSceneFilesFromInputFolder(opts *exporter.Options) ([]string, error) {
	var sceneFiles = make([]string, 0)

	baseInfo, err := os.Stat(opts.Input)
	if err != nil {
		return nil, err
	}
	err = filepath.Walk(
		opts.Input,
		func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if info.IsDir() {
				if !opts.Recursive && !os.SameFile(info, baseInfo) {
					return filepath.SkipDir
				}
			} else if reader.IsSceneFile(info.Name()) {
				sceneFiles = append(sceneFiles, path)
			}
			return nil
		},
	)
	if err != nil {
		return nil, err
	}

	return sceneFiles, nil
}
