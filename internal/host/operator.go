package host

import (
	"errors"

	"github.com/ecopia-map/dimexport/internal/data"
	"github.com/ecopia-map/dimexport/internal/exporter"
)

type Status string

const (
	Finished  Status = "FINISHED"
	Cancelled Status = "CANCELLED"
)

const MsgNoMeshSelected = "No mesh objects selected"

// Runs an export on behalf of the user and turns its outcome into a notification and a
// completion status. Errors never escape: they are reported as warnings and cancel the action.
func RunExport(exp exporter.IExporter, selectedObjects []*data.SceneObject, settings *exporter.ExportSettings, reporter Reporter) Status {
	if err := settings.Validate(); err != nil {
		reporter.Report(Warning, err.Error())
		return Cancelled
	}

	fullPath, err := exp.Export(selectedObjects, settings)
	if err != nil {
		var writeErr *exporter.WriteFailedError
		switch {
		case errors.Is(err, exporter.ErrNoMeshSelected):
			reporter.Report(Warning, MsgNoMeshSelected)
		case errors.As(err, &writeErr):
			reporter.Report(Warning, "Failed to export dimensions: "+writeErr.Err.Error())
		default:
			reporter.Report(Warning, "Failed to export dimensions: "+err.Error())
		}
		return Cancelled
	}

	reporter.Report(Info, "Dimensions exported to "+fullPath)
	return Finished
}
