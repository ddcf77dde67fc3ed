package host

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ecopia-map/dimexport/internal/data"
	"github.com/ecopia-map/dimexport/internal/exporter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingExporter struct {
	err error
}

func (e *failingExporter) Export([]*data.SceneObject, *exporter.ExportSettings) (string, error) {
	return "", e.err
}

func TestRunExport_Finished(t *testing.T) {
	dir := t.TempDir()
	settings := exporter.DefaultExportSettings()
	settings.ExportPath = dir
	reporter := NewRecordingReporter()

	status := RunExport(exporter.NewDimensionExporter(""), []*data.SceneObject{
		data.NewSceneObject("Cube", data.Mesh, 1, 1, 1),
	}, settings, reporter)

	expectedPath := filepath.Join(dir, exporter.DefaultFileName)
	assert.Equal(t, Finished, status)
	assert.Equal(t, []Message{{Level: Info, Message: "Dimensions exported to " + expectedPath}}, reporter.Messages())
	assert.FileExists(t, expectedPath)
}

func TestRunExport_NoMeshSelected(t *testing.T) {
	dir := t.TempDir()
	settings := exporter.DefaultExportSettings()
	settings.ExportPath = dir
	reporter := NewRecordingReporter()

	status := RunExport(exporter.NewDimensionExporter(""), []*data.SceneObject{
		data.NewSceneObject("Camera", data.Camera, 0, 0, 0),
	}, settings, reporter)

	assert.Equal(t, Cancelled, status)
	assert.Equal(t, []Message{{Level: Warning, Message: MsgNoMeshSelected}}, reporter.Messages())
	assert.NoFileExists(t, filepath.Join(dir, exporter.DefaultFileName))
}

func TestRunExport_WriteFailed(t *testing.T) {
	settings := exporter.DefaultExportSettings()
	settings.ExportPath = filepath.Join(t.TempDir(), "missing")
	reporter := NewRecordingReporter()

	status := RunExport(exporter.NewDimensionExporter(""), []*data.SceneObject{
		data.NewSceneObject("Cube", data.Mesh, 1, 1, 1),
	}, settings, reporter)

	assert.Equal(t, Cancelled, status)
	messages := reporter.Messages()
	require.Len(t, messages, 1)
	assert.Equal(t, Warning, messages[0].Level)
	assert.True(t, strings.HasPrefix(messages[0].Message, "Failed to export dimensions: open "))
	assert.Contains(t, messages[0].Message, "missing")
	assert.NotContains(t, messages[0].Message, "cannot write dimensions")
}

func TestRunExport_WriteFailedReportsCauseOnce(t *testing.T) {
	reporter := NewRecordingReporter()
	exp := &failingExporter{err: &exporter.WriteFailedError{Path: "/out/dims.txt", Err: errors.New("disk full")}}

	status := RunExport(exp, nil, exporter.DefaultExportSettings(), reporter)

	assert.Equal(t, Cancelled, status)
	assert.Equal(t, []Message{{Level: Warning, Message: "Failed to export dimensions: disk full"}}, reporter.Messages())
}

func TestRunExport_InvalidSettings(t *testing.T) {
	settings := exporter.DefaultExportSettings()
	settings.FileName = ""
	reporter := NewRecordingReporter()

	status := RunExport(&failingExporter{err: errors.New("must not be called")}, nil, settings, reporter)

	assert.Equal(t, Cancelled, status)
	messages := reporter.Messages()
	require.Len(t, messages, 1)
	assert.Equal(t, Warning, messages[0].Level)
	assert.Contains(t, messages[0].Message, "file_name")
}

func TestRunExport_UnexpectedError(t *testing.T) {
	reporter := NewRecordingReporter()

	status := RunExport(&failingExporter{err: os.ErrPermission}, nil, exporter.DefaultExportSettings(), reporter)

	assert.Equal(t, Cancelled, status)
	assert.Equal(t, []Message{{Level: Warning, Message: "Failed to export dimensions: " + os.ErrPermission.Error()}}, reporter.Messages())
}

func TestMessage_String(t *testing.T) {
	assert.Equal(t, "[WARNING] No mesh objects selected", Message{Level: Warning, Message: MsgNoMeshSelected}.String())
}

func TestGlogReporter_Report(t *testing.T) {
	// glog output is not captured, the reporter must only accept every level
	for _, quiet := range []bool{false, true} {
		reporter := NewGlogReporter(quiet)
		reporter.Report(Info, "info")
		reporter.Report(Warning, "warning")
		reporter.Report(Error, "error")
	}
}
