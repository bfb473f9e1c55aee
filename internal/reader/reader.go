package reader

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"

	"github.com/ecopia-map/export3ds/internal/converters"
	"github.com/ecopia-map/export3ds/internal/scene"
)

// Reads the objects of a scene file
type SceneReader interface {
	Read(path string) ([]scene.Object, error)
}

// Lists the extensions of the supported scene files, without any .gz suffix
var SupportedExtensions = []string{".obj", ".yaml", ".yml", ".toml"}

// Returns the extension of the file, lower cased and ignoring a trailing .gz
func SceneExtension(path string) string {
	name := strings.ToLower(filepath.Base(path))
	name = strings.TrimSuffix(name, ".gz")
	return filepath.Ext(name)
}

func IsSceneFile(path string) bool {
	ext := SceneExtension(path)
	for _, supported := range SupportedExtensions {
		if ext == supported {
			return true
		}
	}
	return false
}

// Returns the reader for the given scene file, chosen by extension
func NewSceneReader(path string, converter converters.VertexConverter) (SceneReader, error) {
	switch SceneExtension(path) {
	case ".obj":
		return NewWavefrontReader(converter), nil
	case ".yaml", ".yml":
		return NewManifestReader(ManifestYAML, converter), nil
	case ".toml":
		return NewManifestReader(ManifestTOML, converter), nil
	}
	return nil, fmt.Errorf("unsupported scene file %q", path)
}

type gzipFile struct {
	*gzip.Reader
	file *os.File
}

func (g *gzipFile) Close() error {
	err := g.Reader.Close()
	if fileErr := g.file.Close(); err == nil {
		err = fileErr
	}
	return err
}

// Opens a file for reading, decompressing it if its name ends in .gz
func OpenInput(path string) (io.ReadCloser, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	if !strings.HasSuffix(strings.ToLower(path), ".gz") {
		return file, nil
	}

	zr, err := gzip.NewReader(bufio.NewReader(file))
	if err != nil {
		_ = file.Close()
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &gzipFile{Reader: zr, file: file}, nil
}
