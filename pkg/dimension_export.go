package pkg

import (
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/ecopia-map/dimexport/internal/data"
	"github.com/ecopia-map/dimexport/internal/exporter"
	"github.com/ecopia-map/dimexport/internal/host"
	"github.com/ecopia-map/dimexport/internal/scene"
	"github.com/ecopia-map/dimexport/pkg/loader_manager"
	"github.com/ecopia-map/dimexport/tools"
	"github.com/golang/glog"
)

type IDimensionExport interface {
	RunExport(opts *scene.LoadOptions, settings *exporter.ExportSettings, reporter host.Reporter) (host.Status, error)
	LoadSelection(opts *scene.LoadOptions) ([]*data.SceneObject, []string, error)
}

type DimensionExport struct {
	fileFinder    tools.FileFinder
	loaderManager loader_manager.LoaderManager
}

func NewDimensionExport(fileFinder tools.FileFinder, loaderManager loader_manager.LoaderManager) IDimensionExport {
	return &DimensionExport{
		fileFinder:    fileFinder,
		loaderManager: loaderManager,
	}
}

// Builds the selection out of the scene files and exports its dimensions. Errors are returned only
// for scene discovery and loading, export failures are reported through the reporter.
func (d *DimensionExport) RunExport(opts *scene.LoadOptions, settings *exporter.ExportSettings, reporter host.Reporter) (host.Status, error) {
	selection, sceneFiles, err := d.LoadSelection(opts)
	if err != nil {
		return host.Cancelled, err
	}

	baseDir := tools.GetSceneFolder("")
	if len(sceneFiles) > 0 {
		baseDir = tools.GetSceneFolder(sceneFiles[0])
	}

	tools.LogOutput("> exporting", len(selection), "selected objects...")
	return host.RunExport(exporter.NewDimensionExporter(baseDir), selection, settings, reporter), nil
}

// Loads every scene file in order and returns the objects matching the selection patterns along
// with the list of scene files read
func (d *DimensionExport) LoadSelection(opts *scene.LoadOptions) ([]*data.SceneObject, []string, error) {
	tools.LogOutput("Preparing list of files to process...")

	sceneFiles, err := d.fileFinder.GetSceneFilesToProcess(opts)
	if err != nil {
		return nil, nil, err
	}
	for i, filePath := range sceneFiles {
		glog.V(1).Infof("scene_file path %d [%s]", i+1, filePath)
	}

	var objects []*data.SceneObject
	for i, filePath := range sceneFiles {
		tools.LogOutput("Processing file " + strconv.Itoa(i+1) + "/" + strconv.Itoa(len(sceneFiles)))

		loader, err := d.loaderManager.GetLoader(filePath)
		if err != nil {
			return nil, nil, err
		}

		fileObjects, err := loader.Load(filePath)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot load scene: %w", err)
		}
		objects = append(objects, fileObjects...)

		tools.LogOutput("> done reading", filepath.Base(filePath), "objects:", len(fileObjects))
	}

	selection, err := scene.Select(objects, opts.Select)
	if err != nil {
		return nil, nil, err
	}

	return selection, sceneFiles, nil
}
