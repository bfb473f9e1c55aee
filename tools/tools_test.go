package tools

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecopia-map/export3ds/internal/exporter"
)

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, nil, 0644))
}

func TestGetSceneFilesToProcess(t *testing.T) {
	root := t.TempDir()
	touch(t, filepath.Join(root, "a.obj"))
	touch(t, filepath.Join(root, "b.YAML"))
	touch(t, filepath.Join(root, "c.toml.gz"))
	touch(t, filepath.Join(root, "notes.txt"))
	touch(t, filepath.Join(root, "nested", "d.yml"))

	opts := exporter.DefaultOptions()
	opts.Input = root
	opts.FolderProcessing = true

	files, err := NewStandardFileFinder().GetSceneFilesToProcess(opts)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{
		filepath.Join(root, "a.obj"),
		filepath.Join(root, "b.YAML"),
		filepath.Join(root, "c.toml.gz"),
	}, files)

	opts.Recursive = true
	files, err = NewStandardFileFinder().GetSceneFilesToProcess(opts)
	require.NoError(t, err)
	assert.Len(t, files, 4)
	assert.Contains(t, files, filepath.Join(root, "nested", "d.yml"))
}

func TestGetSceneFilesToProcessSingleFile(t *testing.T) {
	opts := exporter.DefaultOptions()
	opts.Input = "scene.obj"
	files, err := NewStandardFileFinder().GetSceneFilesToProcess(opts)
	require.NoError(t, err)
	assert.Equal(t, []string{"scene.obj"}, files)
}

func TestGetSceneFilesToProcessMissingFolder(t *testing.T) {
	opts := exporter.DefaultOptions()
	opts.Input = filepath.Join(t.TempDir(), "missing")
	opts.FolderProcessing = true
	_, err := NewStandardFileFinder().GetSceneFilesToProcess(opts)
	assert.Error(t, err)
}

func TestGetFilenameWithoutExtension(t *testing.T) {
	assert.Equal(t, "scene", GetFilenameWithoutExtension("/data/scene.obj"))
	assert.Equal(t, "scene", GetFilenameWithoutExtension("scene.yaml.GZ"))
	assert.Equal(t, "scene.v2", GetFilenameWithoutExtension("scene.v2.toml"))
}

func TestCreateDirectoryIfDoesNotExist(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")
	require.NoError(t, CreateDirectoryIfDoesNotExist(dir))
	assert.DirExists(t, dir)
	require.NoError(t, CreateDirectoryIfDoesNotExist(dir))
}

func TestParseFlagsForCommandExportUpAxis(t *testing.T) {
	flags := ParseFlagsForCommandExport([]string{"-i", "scene.obj"})
	assert.Equal(t, "Z", *flags.UpAxis)
	assert.Equal(t, exporter.UpAxisZ, exporter.ParseUpAxis(*flags.UpAxis))

	flags = ParseFlagsForCommandExport([]string{"-u", "y", "-i", "scene.obj"})
	assert.Equal(t, exporter.UpAxisY, exporter.ParseUpAxis(*flags.UpAxis))

	validate := ParseFlagsForCommandValidate([]string{"-up", "x"})
	assert.Equal(t, exporter.UpAxis(""), exporter.ParseUpAxis(*validate.UpAxis))
}
