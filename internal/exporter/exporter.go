package exporter

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ecopia-map/dimexport/internal/data"
	"github.com/golang/glog"
)

// Prefix marking an export path relative to the directory of the scene
const SceneRelativePrefix = "//"

type IExporter interface {
	Export(selectedObjects []*data.SceneObject, settings *ExportSettings) (string, error)
}

// Writes the dimensions of the selected meshes to a text file. It holds no state besides the
// directory used to resolve scene relative export paths.
type DimensionExporter struct {
	baseDir string
}

func NewDimensionExporter(baseDir string) *DimensionExporter {
	return &DimensionExporter{
		baseDir: baseDir,
	}
}

// Formats the dimensions of the mesh objects among selectedObjects and writes them to the file
// configured in settings, overwriting it. Returns the path of the written file, ErrNoMeshSelected
// if the selection holds no mesh (nothing is written) or a *WriteFailedError.
func (e *DimensionExporter) Export(selectedObjects []*data.SceneObject, settings *ExportSettings) (string, error) {
	meshes, skipped := FilterMeshes(selectedObjects)
	if skipped > 0 {
		glog.V(1).Infof("skipping %d non mesh objects", skipped)
	}
	if len(meshes) == 0 {
		return "", ErrNoMeshSelected
	}

	report := FormatReport(meshes, settings)
	fullPath := ResolveOutputPath(settings, e.baseDir)

	if err := os.WriteFile(fullPath, []byte(report), 0644); err != nil {
		return "", &WriteFailedError{Path: fullPath, Err: err}
	}

	return fullPath, nil
}

// Writes the report of the selected meshes to a stream instead of a file, as used by dry runs.
// The name stands for the destination in the returned path and in errors.
type ReportWriter struct {
	w    io.Writer
	name string
}

func NewReportWriter(w io.Writer, name string) *ReportWriter {
	return &ReportWriter{
		w:    w,
		name: name,
	}
}

func (e *ReportWriter) Export(selectedObjects []*data.SceneObject, settings *ExportSettings) (string, error) {
	meshes, _ := FilterMeshes(selectedObjects)
	if len(meshes) == 0 {
		return "", ErrNoMeshSelected
	}

	if _, err := io.WriteString(e.w, FormatReport(meshes, settings)); err != nil {
		return "", &WriteFailedError{Path: e.name, Err: err}
	}
	return e.name, nil
}

// Returns the mesh objects in their original order and the number of discarded objects
func FilterMeshes(objects []*data.SceneObject) ([]*data.SceneObject, int) {
	meshes := make([]*data.SceneObject, 0, len(objects))
	for _, obj := range objects {
		if obj.IsMesh() {
			meshes = append(meshes, obj)
		}
	}
	return meshes, len(objects) - len(meshes)
}

// Joins the export directory and the file name. A directory starting with "//" is resolved
// against baseDir and an absolute file name replaces the directory entirely.
func ResolveOutputPath(settings *ExportSettings, baseDir string) string {
	if filepath.IsAbs(settings.FileName) {
		return filepath.Clean(settings.FileName)
	}

	dir := settings.ExportPath
	if strings.HasPrefix(dir, SceneRelativePrefix) {
		if baseDir == "" {
			baseDir = "."
		}
		dir = filepath.Join(baseDir, strings.TrimPrefix(dir, SceneRelativePrefix))
	}

	return filepath.Join(dir, settings.FileName)
}
