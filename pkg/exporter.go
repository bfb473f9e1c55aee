package pkg

import (
	"errors"
	"fmt"
	"runtime"
	"strconv"
	"sync"

	"github.com/ecopia-map/export3ds/internal/exporter"
	"github.com/ecopia-map/export3ds/internal/io"
	"github.com/ecopia-map/export3ds/pkg/algorithm_manager"
	"github.com/ecopia-map/export3ds/tools"
)

type IExporter interface {
	RunExporter(opts *exporter.Options) error
}

type Exporter struct {
	fileFinder       tools.FileFinder
	algorithmManager algorithm_manager.AlgorithmManager
}

func NewExporter(fileFinder tools.FileFinder, algorithmManager algorithm_manager.AlgorithmManager) IExporter {
	return &Exporter{
		fileFinder:       fileFinder,
		algorithmManager: algorithmManager,
	}
}

// Starts the export process: every scene file found from the options is written as its own 3ds file
func (e *Exporter) RunExporter(opts *exporter.Options) error {
	tools.LogOutput("Preparing list of files to process...")

	sceneFiles, err := e.fileFinder.GetSceneFilesToProcess(opts)
	if err != nil {
		return err
	}
	if len(sceneFiles) == 0 {
		return fmt.Errorf("no scene files found in %s", opts.Input)
	}

	producer := io.NewStandardProducer(opts)
	if err := checkOutputCollisions(producer, sceneFiles); err != nil {
		return err
	}

	tools.LogOutput("Processing " + strconv.Itoa(len(sceneFiles)) + " files")

	// a consumer goroutine per CPU
	numConsumers := runtime.NumCPU()
	if numConsumers > len(sceneFiles) {
		numConsumers = len(sceneFiles)
	}

	// init channel where to submit work with a buffer 5 times greater than the number of consumer
	workChannel := make(chan *io.WorkUnit, numConsumers*5)

	// every unit can fail at most once
	errorChannel := make(chan error, len(sceneFiles))

	var waitGroup sync.WaitGroup

	// add producer to waitgroup and launch producer goroutine
	waitGroup.Add(1)
	go producer.Produce(workChannel, &waitGroup, sceneFiles)

	// add consumers to waitgroup and launch them
	for i := 0; i < numConsumers; i++ {
		waitGroup.Add(1)
		consumer := io.NewStandardConsumer(e.algorithmManager)
		go consumer.Consume(workChannel, errorChannel, &waitGroup)
	}

	// wait for producers and consumers to finish
	waitGroup.Wait()

	close(errorChannel)

	errs := make([]error, 0)
	for err := range errorChannel {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return fmt.Errorf("%d of %d files failed: %w", len(errs), len(sceneFiles), errors.Join(errs...))
	}

	return nil
}

// Two inputs mapping to the same output would be written concurrently
func checkOutputCollisions(producer *io.StandardProducer, sceneFiles []string) error {
	outputs := make(map[string]string, len(sceneFiles))
	for _, sceneFile := range sceneFiles {
		output := producer.OutputPath(sceneFile)
		if other, ok := outputs[output]; ok {
			return fmt.Errorf("%s and %s would both be written to %s", other, sceneFile, output)
		}
		outputs[output] = sceneFile
	}
	return nil
}
