package io

import (
	"bytes"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecopia-map/export3ds/internal/exporter"
	"github.com/ecopia-map/export3ds/internal/reader"
	"github.com/ecopia-map/export3ds/pkg/algorithm_manager/std_algorithm_manager"
)

func TestOutputPathSingleFile(t *testing.T) {
	dir := t.TempDir()
	opts := exporter.DefaultOptions()
	opts.Input = "/scenes/model.obj"

	producer := NewStandardProducer(opts)
	assert.Equal(t, filepath.Join("/scenes", "model.3ds"), producer.OutputPath(opts.Input))

	opts.Output = dir
	assert.Equal(t, filepath.Join(dir, "model.3ds"), producer.OutputPath(opts.Input))

	opts.Output = filepath.Join(dir, "custom.3ds")
	assert.Equal(t, opts.Output, producer.OutputPath(opts.Input))
}

func TestOutputPathFolderProcessing(t *testing.T) {
	opts := exporter.DefaultOptions()
	opts.Input = filepath.Join("in")
	opts.Output = filepath.Join("out")
	opts.FolderProcessing = true
	opts.Compress = true

	producer := NewStandardProducer(opts)
	assert.Equal(t, filepath.Join("out", "a.3ds.gz"), producer.OutputPath(filepath.Join("in", "a.yaml")))
	assert.Equal(t, filepath.Join("out", "sub", "b.3ds.gz"), producer.OutputPath(filepath.Join("in", "sub", "b.obj.gz")))
}

func TestProduceClosesChannel(t *testing.T) {
	opts := exporter.DefaultOptions()
	opts.Output = "out.3ds"
	work := make(chan *WorkUnit, 2)
	var wg sync.WaitGroup
	wg.Add(1)

	NewStandardProducer(opts).Produce(work, &wg, []string{"a.obj", "b.obj"})
	wg.Wait()

	units := make([]*WorkUnit, 0)
	for unit := range work {
		units = append(units, unit)
	}
	require.Len(t, units, 2)
	assert.Equal(t, "a.obj", units[0].InputPath)
	assert.Equal(t, "out.3ds", units[0].OutputPath)
	assert.NotSame(t, opts, units[1].Opts)
	assert.Equal(t, opts, units[1].Opts)

	units[0].Opts.Mesh.Tolerance = 1
	assert.NotEqual(t, units[0].Opts.Mesh.Tolerance, units[1].Opts.Mesh.Tolerance)
	assert.NotEqual(t, units[0].Opts.Mesh.Tolerance, opts.Mesh.Tolerance)
}

func TestConsumeExportsAndReportsErrors(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.yaml")
	require.NoError(t, os.WriteFile(good, []byte(`objects:
  - name: Tri
    vertices: [[0, 0, 0], [1, 0, 0], [0, 1, 0]]
    faces: [[0, 1, 2]]
    color: [1, 0, 0]
`), 0644))
	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("objects: 3\n"), 0644))

	opts := exporter.DefaultOptions()
	work := make(chan *WorkUnit, 2)
	errchan := make(chan error, 2)
	work <- &WorkUnit{InputPath: bad, OutputPath: filepath.Join(dir, "out", "bad.3ds"), Opts: opts}
	work <- &WorkUnit{InputPath: good, OutputPath: filepath.Join(dir, "out", "good.3ds"), Opts: opts}
	close(work)

	var wg sync.WaitGroup
	wg.Add(1)
	NewStandardConsumer(std_algorithm_manager.NewAlgorithmManager(opts)).Consume(work, errchan, &wg)
	wg.Wait()
	close(errchan)

	errs := make([]error, 0)
	for err := range errchan {
		errs = append(errs, err)
	}
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "bad.yaml")

	assert.FileExists(t, filepath.Join(dir, "out", "good.3ds"))
	assert.NoFileExists(t, filepath.Join(dir, "out", "bad.3ds"))
}

func TestConsumeAppliesManagerConverter(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "tri.yaml")
	require.NoError(t, os.WriteFile(input, []byte(`objects:
  - name: Tri
    vertices: [[0, 0, 0], [1, 0, 0], [0, 1, 0]]
    faces: [[0, 1, 2]]
    color: [1, 0, 0]
`), 0644))
	lifted := filepath.Join(dir, "lifted.yaml")
	require.NoError(t, os.WriteFile(lifted, []byte(`objects:
  - name: Tri
    vertices: [[0, 0, 5], [1, 0, 5], [0, 1, 5]]
    faces: [[0, 1, 2]]
    color: [1, 0, 0]
`), 0644))

	opts := exporter.DefaultOptions()
	opts.ZOffset = 5
	output := filepath.Join(dir, "tri.3ds")
	work := make(chan *WorkUnit, 1)
	errchan := make(chan error, 1)
	work <- &WorkUnit{InputPath: input, OutputPath: output, Opts: opts}
	close(work)

	var wg sync.WaitGroup
	wg.Add(1)
	NewStandardConsumer(std_algorithm_manager.NewAlgorithmManager(opts)).Consume(work, errchan, &wg)
	wg.Wait()
	close(errchan)
	for err := range errchan {
		require.NoError(t, err)
	}

	objects, err := reader.NewManifestReader(reader.ManifestYAML, nil).Read(lifted)
	require.NoError(t, err)
	var expected bytes.Buffer
	require.NoError(t, exporter.ExportTo(objects, &expected, opts.Mesh))

	written, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Equal(t, expected.Bytes(), written)
}
