package exporter

import (
	"errors"
	"fmt"
)

var ErrNoMeshSelected = errors.New("no mesh objects selected")

// Returned when the report could not be written to its destination
type WriteFailedError struct {
	Path string
	Err  error
}

func (e *WriteFailedError) Error() string {
	return fmt.Sprintf("cannot write dimensions to %s: %s", e.Path, e.Err.Error())
}

func (e *WriteFailedError) Unwrap() error {
	return e.Err
}
