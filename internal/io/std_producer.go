package io

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/ecopia-map/export3ds/internal/exporter"
	"github.com/ecopia-map/export3ds/tools"
)

const (
	extension3ds     = ".3ds"
	extension3dsGzip = ".3ds.gz"
)

type StandardProducer struct {
	options *exporter.Options
}

func NewStandardProducer(options *exporter.Options) *StandardProducer {
	return &StandardProducer{
		options: options,
	}
}

// Submits a WorkUnit for each input scene file to the provided work channel.
// Closes the channel when all work is submitted.
func (p *StandardProducer) Produce(work chan *WorkUnit, wg *sync.WaitGroup, inputPaths []string) {
	for _, inputPath := range inputPaths {
		work <- &WorkUnit{
			InputPath:  inputPath,
			OutputPath: p.OutputPath(inputPath),
			Opts:       p.options.Copy(),
		}
	}
	close(work)
	wg.Done()
}

// Computes where the 3ds file of the given scene file is written. With folder processing the folder
// structure below the input folder is mirrored in the output folder. Otherwise the output option is
// the destination file, or the folder to write into when it is an existing directory or empty.
func (p *StandardProducer) OutputPath(inputPath string) string {
	extension := extension3ds
	if p.options.Compress {
		extension = extension3dsGzip
	}
	fileName := tools.GetFilenameWithoutExtension(inputPath) + extension

	if p.options.FolderProcessing {
		relativeFolder, err := filepath.Rel(p.options.Input, filepath.Dir(inputPath))
		if err != nil {
			relativeFolder = ""
		}
		return filepath.Join(p.options.Output, relativeFolder, fileName)
	}

	if p.options.Output == "" {
		return filepath.Join(filepath.Dir(inputPath), fileName)
	}
	if info, err := os.Stat(p.options.Output); err == nil && info.IsDir() {
		return filepath.Join(p.options.Output, fileName)
	}
	return p.options.Output
}
