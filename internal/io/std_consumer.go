package io

import (
	"fmt"
	"path/filepath"
	"sync"

	"github.com/golang/glog"

	"github.com/ecopia-map/export3ds/internal/exporter"
	"github.com/ecopia-map/export3ds/internal/reader"
	"github.com/ecopia-map/export3ds/pkg/algorithm_manager"
	"github.com/ecopia-map/export3ds/tools"
)

type StandardConsumer struct {
	algorithmManager algorithm_manager.AlgorithmManager
}

func NewStandardConsumer(algorithmManager algorithm_manager.AlgorithmManager) *StandardConsumer {
	return &StandardConsumer{
		algorithmManager: algorithmManager,
	}
}

// Continually consumes WorkUnits submitted to a work channel, writing one 3ds file per unit.
// Continues working until the work channel is closed. A failing unit submits its error to the error
// channel, which must be able to buffer one error per unit, and the consumer moves on to the next one.
func (c *StandardConsumer) Consume(workchan chan *WorkUnit, errchan chan error, waitGroup *sync.WaitGroup) {
	defer waitGroup.Done()

	for work := range workchan {
		if err := c.doWork(work); err != nil {
			glog.Errorf("exporting %s failed: %v", work.InputPath, err)
			errchan <- fmt.Errorf("%s: %w", work.InputPath, err)
		}
	}
}

// Reads the scene of the work unit and writes it as a 3ds file
func (c *StandardConsumer) doWork(workUnit *WorkUnit) error {
	sceneReader, err := reader.NewSceneReader(workUnit.InputPath, c.algorithmManager.GetVertexConverterAlgorithm())
	if err != nil {
		return err
	}

	objects, err := sceneReader.Read(workUnit.InputPath)
	if err != nil {
		return err
	}

	if err := tools.CreateDirectoryIfDoesNotExist(filepath.Dir(workUnit.OutputPath)); err != nil {
		return err
	}

	if err := exporter.Export(objects, workUnit.OutputPath, workUnit.Opts.Mesh); err != nil {
		return err
	}

	tools.LogOutput("> exported", filepath.Base(workUnit.InputPath), "to", workUnit.OutputPath)
	return nil
}
