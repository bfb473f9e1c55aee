package pkg

import (
	"errors"
	"fmt"
	"io"

	"github.com/golang/glog"

	"github.com/ecopia-map/export3ds/internal/exporter"
	"github.com/ecopia-map/export3ds/internal/reader"
	"github.com/ecopia-map/export3ds/pkg/algorithm_manager"
	"github.com/ecopia-map/export3ds/tools"
)

// Outcome of the validation of one scene file
type SceneReport struct {
	Path      string
	Objects   int
	Materials int
	Size      int64 // bytes of the 3ds document the scene would produce
	Err       error
}

type Validator struct {
	fileFinder       tools.FileFinder
	algorithmManager algorithm_manager.AlgorithmManager
}

func NewValidator(fileFinder tools.FileFinder, algorithmManager algorithm_manager.AlgorithmManager) *Validator {
	return &Validator{
		fileFinder:       fileFinder,
		algorithmManager: algorithmManager,
	}
}

// Reads every scene file and builds its 3ds document in memory without writing any file.
// Returns one report per scene file and an error joining the failures.
func (v *Validator) RunValidator(opts *exporter.Options) ([]SceneReport, error) {
	sceneFiles, err := v.fileFinder.GetSceneFilesToProcess(opts)
	if err != nil {
		return nil, err
	}

	reports := make([]SceneReport, 0, len(sceneFiles))
	errs := make([]error, 0)
	for _, sceneFile := range sceneFiles {
		report := v.validateScene(sceneFile, opts)
		reports = append(reports, report)
		if report.Err != nil {
			glog.Errorf("%s is not valid: %v", sceneFile, report.Err)
			errs = append(errs, fmt.Errorf("%s: %w", sceneFile, report.Err))
			continue
		}
		tools.LogOutput(fmt.Sprintf("> %s: %d objects, %d materials, %d bytes", sceneFile, report.Objects, report.Materials, report.Size))
	}

	return reports, errors.Join(errs...)
}

func (v *Validator) validateScene(sceneFile string, opts *exporter.Options) SceneReport {
	report := SceneReport{Path: sceneFile}

	sceneReader, err := reader.NewSceneReader(sceneFile, v.algorithmManager.GetVertexConverterAlgorithm())
	if err != nil {
		report.Err = err
		return report
	}
	objects, err := sceneReader.Read(sceneFile)
	if err != nil {
		report.Err = err
		return report
	}

	doc, err := exporter.BuildDocument(objects, opts.Mesh)
	if err != nil {
		report.Err = err
		return report
	}

	report.Size, report.Err = doc.WriteTo(io.Discard)
	report.Objects = doc.ObjectCount()
	report.Materials = doc.MaterialCount()
	return report
}
